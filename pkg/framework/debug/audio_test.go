package debug

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudioAnalyzer(t *testing.T) {
	a := NewAudioAnalyzer()

	t.Run("Silence", func(t *testing.T) {
		r := a.Analyze(make([][2]float32, 64))
		assert.True(t, r.Silent)
		assert.Zero(t, r.Peak)
		assert.Empty(t, a.Check(make([][2]float32, 64), "out"))
	})

	t.Run("Sine", func(t *testing.T) {
		frames := make([][2]float32, 1000)
		for i := range frames {
			s := float32(0.5 * math.Sin(2*math.Pi*float64(i)/100))
			frames[i] = [2]float32{s, s}
		}
		r := a.Analyze(frames)
		assert.InDelta(t, 0.5, r.Peak, 0.001)
		assert.InDelta(t, 0.5/math.Sqrt2, r.RMS, 0.001)
		assert.InDelta(t, 0, r.DC, 0.001)
		assert.False(t, r.Clipping())
		assert.False(t, r.Silent)
	})

	t.Run("Problems", func(t *testing.T) {
		frames := [][2]float32{
			{float32(math.NaN()), 0.5},
			{1.5, 0.5},
			{0.5, float32(math.Inf(1))},
		}
		r := a.Analyze(frames)
		assert.Equal(t, 2, r.NaNCount)
		assert.Equal(t, float32(1.5), r.Peak)

		issues := a.Check(frames, "out")
		assert.Len(t, issues, 3)
		assert.Contains(t, issues[0], "NaN")
		assert.Contains(t, issues[1], "peak exceeds")
		assert.Contains(t, issues[2], "DC offset")
	})
}

func TestOutputMonitor(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", FlagLevel)
	entry := logger.WithFields(Fields{"function": "Gen_Render"})
	m := NewOutputMonitor()

	m.Observe(make([][2]float32, 8), "output")
	m.Observe([][2]float32{{2, -2}}, "output")
	assert.Zero(t, buf.Len(), "observing must not log")

	assert.Equal(t, 1, m.Flush(entry))
	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "output: peak exceeds 1.0")
	assert.Contains(t, out, "function=Gen_Render")

	buf.Reset()
	assert.Zero(t, m.Flush(entry))
	assert.Zero(t, buf.Len())

	for i := 0; i < maxPendingIssues+4; i++ {
		m.Observe([][2]float32{{2, -2}}, "output")
	}
	assert.Equal(t, maxPendingIssues+4, m.Flush(entry))
	assert.Contains(t, buf.String(), "4 more output problems not shown")
}
