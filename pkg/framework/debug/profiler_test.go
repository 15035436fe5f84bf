package debug

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiler(t *testing.T) {
	t.Run("Record", func(t *testing.T) {
		p := NewProfiler(4)
		p.Record("mix", 2*time.Millisecond)
		p.Record("mix", 4*time.Millisecond)
		p.Record("mix", 6*time.Millisecond)

		m, ok := p.Measurement("mix")
		require.True(t, ok)
		assert.Equal(t, uint64(3), m.Count)
		assert.Equal(t, 2*time.Millisecond, m.Min)
		assert.Equal(t, 6*time.Millisecond, m.Max)
		assert.Equal(t, 6*time.Millisecond, m.Last)
		assert.Equal(t, 4*time.Millisecond, m.Average())
		assert.Equal(t, 6*time.Millisecond, m.Percentile(100))
		assert.Equal(t, 2*time.Millisecond, m.Percentile(0))
	})

	t.Run("SampleWindow", func(t *testing.T) {
		p := NewProfiler(2)
		for i := 1; i <= 5; i++ {
			p.Record("x", time.Duration(i))
		}
		m, _ := p.Measurement("x")
		assert.Equal(t, uint64(5), m.Count)
		assert.Equal(t, time.Duration(5), m.Percentile(100))
		assert.Equal(t, time.Duration(1), m.Min)
	})

	t.Run("Disabled", func(t *testing.T) {
		p := NewProfiler(10)
		p.SetEnabled(false)
		called := false
		p.Time("off", func() { called = true })
		assert.True(t, called)
		_, ok := p.Measurement("off")
		assert.False(t, ok)
	})

	t.Run("Report", func(t *testing.T) {
		p := NewProfiler(10)
		assert.Equal(t, "No measurements recorded", p.Report())
		p.Record("b", time.Millisecond)
		p.Record("a", time.Millisecond)
		report := p.Report()
		assert.Contains(t, report, "a: count=1")
		assert.Less(t, indexOf(report, "a:"), indexOf(report, "b:"))

		p.Reset()
		assert.Equal(t, "No measurements recorded", p.Report())
	})
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestRenderProfiler(t *testing.T) {
	r := NewRenderProfiler()
	assert.Equal(t, 44100.0, r.SampleRate())

	r.SetSampleRate(48000)
	assert.Equal(t, 48000.0, r.SampleRate())

	// 480 frames at 48 kHz is 10ms; 1ms of work is 10% load.
	r.record(480, time.Millisecond)
	assert.InDelta(t, 10.0, r.Load(), 0.01)

	m, ok := r.Measurement(RenderSection)
	require.True(t, ok)
	assert.Equal(t, uint64(1), m.Count)
	assert.Contains(t, r.RenderReport(), "sample rate: 48000 Hz")

	ran := false
	r.Measure(0, func() { ran = true })
	assert.True(t, ran)
	m, _ = r.Measurement(RenderSection)
	assert.Equal(t, uint64(1), m.Count, "empty renders are not recorded")
}
