package param

import "math"

// SmoothingType defines different parameter smoothing algorithms.
type SmoothingType int

const (
	// LinearSmoothing ramps to the target in a fixed number of samples.
	LinearSmoothing SmoothingType = iota
	// ExponentialSmoothing uses a one-pole filter.
	ExponentialSmoothing
)

// Smoother removes zipper noise from parameter changes that arrive once per
// ProcessParam call but are applied per sample.
type Smoother struct {
	smoothingType SmoothingType
	current       float64
	target        float64
	rate          float64
	threshold     float64
	step          float64
	isSmoothing   bool
}

// NewSmoother creates a new parameter smoother.
// rate: samples for linear, coefficient (0.9-0.999) for exponential.
func NewSmoother(smoothingType SmoothingType, rate float64) *Smoother {
	return &Smoother{
		smoothingType: smoothingType,
		rate:          rate,
		threshold:     0.0001,
	}
}

// SetTarget sets the target value for smoothing.
func (s *Smoother) SetTarget(target float64) {
	if math.Abs(target-s.target) < s.threshold {
		return
	}
	s.target = target
	s.isSmoothing = true

	if s.smoothingType == LinearSmoothing {
		if s.rate > 0 {
			s.step = (target - s.current) / s.rate
		} else {
			s.current = target
			s.isSmoothing = false
		}
	}
}

// Next returns the next smoothed value.
func (s *Smoother) Next() float64 {
	if !s.isSmoothing {
		return s.current
	}

	switch s.smoothingType {
	case ExponentialSmoothing:
		s.current += (s.target - s.current) * (1.0 - s.rate)
		if math.Abs(s.current-s.target) < s.threshold {
			s.current = s.target
			s.isSmoothing = false
		}
	default:
		s.current += s.step
		if (s.step > 0 && s.current >= s.target) || (s.step <= 0 && s.current <= s.target) {
			s.current = s.target
			s.isSmoothing = false
		}
	}
	return s.current
}

// IsSmoothing returns true if the smoother is currently smoothing.
func (s *Smoother) IsSmoothing() bool {
	return s.isSmoothing
}

// Reset jumps to value.
func (s *Smoother) Reset(value float64) {
	s.current = value
	s.target = value
	s.isSmoothing = false
}

// SetRate updates the smoothing rate.
func (s *Smoother) SetRate(rate float64) {
	s.rate = rate
}

// SmoothedParameter wraps a Parameter with smoothing of its plain value.
type SmoothedParameter struct {
	*Parameter
	smoother *Smoother
}

// NewSmoothedParameter creates a parameter with built-in smoothing.
func NewSmoothedParameter(p *Parameter, smoothingType SmoothingType, rate float64) *SmoothedParameter {
	sp := &SmoothedParameter{
		Parameter: p,
		smoother:  NewSmoother(smoothingType, rate),
	}
	sp.smoother.Reset(p.GetPlainValue())
	return sp
}

// Next follows the parameter's current value and returns the next smoothed
// plain value. Call it once per sample from the render thread.
func (sp *SmoothedParameter) Next() float64 {
	sp.smoother.SetTarget(sp.GetPlainValue())
	return sp.smoother.Next()
}

// Snap jumps to the current value, as after loading state.
func (sp *SmoothedParameter) Snap() {
	sp.smoother.Reset(sp.GetPlainValue())
}

// UpdateSampleRate sets the rate so a change settles in about targetTimeMs.
func (sp *SmoothedParameter) UpdateSampleRate(sampleRate float64, targetTimeMs float64) {
	samples := sampleRate * targetTimeMs / 1000.0
	switch sp.smoother.smoothingType {
	case LinearSmoothing:
		sp.smoother.SetRate(samples)
	case ExponentialSmoothing:
		// -60dB in targetTimeMs
		sp.smoother.SetRate(math.Exp(-6.908 / samples))
	}
}
