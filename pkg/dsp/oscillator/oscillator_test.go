package oscillator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaveforms(t *testing.T) {
	// Four samples per cycle: phases 0, 0.25, 0.5, 0.75.
	tests := []struct {
		waveform Waveform
		want     []float32
	}{
		{Sine, []float32{0, 1, 0, -1}},
		{Saw, []float32{-1, -0.5, 0, 0.5}},
		{Square, []float32{1, 1, -1, -1}},
		{Triangle, []float32{-1, 0, 1, 0}},
	}

	for _, tt := range tests {
		o := New(4)
		o.SetFrequency(1)
		o.SetWaveform(tt.waveform)
		buf := make([]float32, 4)
		o.Process(buf)
		for i := range buf {
			assert.InDelta(t, tt.want[i], buf[i], 1e-6, "waveform %d sample %d", tt.waveform, i)
		}
	}
}

func TestPhase(t *testing.T) {
	o := New(4)
	o.SetFrequency(1)
	o.SetWaveform(Saw)

	o.SetPhase(1.5)
	assert.InDelta(t, 0, o.Next(), 1e-6)

	o.Reset()
	assert.InDelta(t, -1, o.Next(), 1e-6)
}

func TestSampleRate(t *testing.T) {
	o := New(44100)
	o.SetFrequency(441)
	o.SetSampleRate(0)
	assert.Equal(t, 441.0, o.Frequency())

	o.SetSampleRate(4)
	o.SetFrequency(1)
	o.SetWaveform(Square)
	buf := make([]float32, 8)
	o.Process(buf)
	assert.Equal(t, []float32{1, 1, -1, -1, 1, 1, -1, -1}, buf)
}
