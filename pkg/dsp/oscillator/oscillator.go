// Package oscillator provides audio oscillators for synthesis
package oscillator

import "math"

// Waveform selects the shape Next produces.
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Square
	Triangle
)

// Oscillator generates periodic waveforms. Phase runs from 0 to 1.
type Oscillator struct {
	sampleRate float64
	frequency  float64
	phase      float64
	phaseInc   float64
	waveform   Waveform
}

// New creates a new oscillator
func New(sampleRate float64) *Oscillator {
	o := &Oscillator{sampleRate: sampleRate}
	o.SetFrequency(440.0)
	return o
}

// SetSampleRate changes the sample rate and keeps the frequency.
func (o *Oscillator) SetSampleRate(sampleRate float64) {
	if sampleRate <= 0 {
		return
	}
	o.sampleRate = sampleRate
	o.SetFrequency(o.frequency)
}

// SetFrequency sets the oscillator frequency
func (o *Oscillator) SetFrequency(freq float64) {
	o.frequency = freq
	o.phaseInc = freq / o.sampleRate
}

func (o *Oscillator) Frequency() float64 { return o.frequency }

func (o *Oscillator) SetWaveform(w Waveform) { o.waveform = w }

// SetPhase sets the oscillator phase, wrapped to 0..1.
func (o *Oscillator) SetPhase(phase float64) {
	o.phase = phase - math.Floor(phase)
}

// Reset resets the oscillator phase to 0
func (o *Oscillator) Reset() {
	o.phase = 0.0
}

func (o *Oscillator) advance() {
	o.phase += o.phaseInc
	if o.phase >= 1.0 {
		o.phase -= math.Floor(o.phase)
	}
}

// Next returns the next sample of the selected waveform.
func (o *Oscillator) Next() float32 {
	var sample float32
	switch o.waveform {
	case Saw:
		sample = float32(2.0*o.phase - 1.0)
	case Square:
		if o.phase < 0.5 {
			sample = 1.0
		} else {
			sample = -1.0
		}
	case Triangle:
		if o.phase < 0.5 {
			sample = float32(4.0*o.phase - 1.0)
		} else {
			sample = float32(3.0 - 4.0*o.phase)
		}
	default:
		sample = float32(math.Sin(2.0 * math.Pi * o.phase))
	}
	o.advance()
	return sample
}

// Process fills buffer - no allocations
func (o *Oscillator) Process(buffer []float32) {
	for i := range buffer {
		buffer[i] = o.Next()
	}
}
