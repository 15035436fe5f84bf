// Package pan provides stereo panning laws.
package pan

import "math"

// Law represents different panning laws
type Law int

const (
	// Linear uses linear panning (constant power not maintained)
	Linear Law = iota
	// ConstantPower uses sine/cosine panning (maintains constant power)
	ConstantPower
	// Balanced uses -4.5dB center compensation
	Balanced
)

// Gains returns the left and right gains for pan in -1 (hard left) to 1
// (hard right). FL Studio's voice and channel levels use the same range.
func Gains(pan float32, law Law) (left, right float32) {
	pan = clamp(pan)
	switch law {
	case Linear:
		return linearPan(pan)
	case Balanced:
		return balancedPan(pan)
	default:
		return constantPowerPan(pan)
	}
}

// Mono adds mono panned by pan to out.
func Mono(mono []float32, pan float32, law Law, out [][2]float32) {
	l, r := Gains(pan, law)
	n := min(len(mono), len(out))
	for i := 0; i < n; i++ {
		out[i][0] += mono[i] * l
		out[i][1] += mono[i] * r
	}
}

// Balance attenuates the channel opposite to balance in place.
func Balance(frames [][2]float32, balance float32) {
	balance = clamp(balance)
	l, r := float32(1), float32(1)
	if balance < 0 {
		r = 1 + balance
	} else {
		l = 1 - balance
	}
	for i := range frames {
		frames[i][0] *= l
		frames[i][1] *= r
	}
}

// Width scales the side signal: 0 is mono, 1 unchanged, 2 extra wide.
func Width(frames [][2]float32, width float32) {
	for i := range frames {
		mid := (frames[i][0] + frames[i][1]) * 0.5
		side := (frames[i][0] - frames[i][1]) * 0.5 * width
		frames[i][0] = mid + side
		frames[i][1] = mid - side
	}
}

func clamp(pan float32) float32 {
	if pan < -1 {
		return -1
	}
	if pan > 1 {
		return 1
	}
	return pan
}

func linearPan(pan float32) (left, right float32) {
	return (1 - pan) * 0.5, (1 + pan) * 0.5
}

func constantPowerPan(pan float32) (left, right float32) {
	angle := float64(pan+1) * math.Pi / 4
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}

// balancedPan is constant power with the center pulled down to -4.5dB.
func balancedPan(pan float32) (left, right float32) {
	left, right = constantPowerPan(pan)
	compensation := 0.841 + 0.159*pan*pan
	return left * compensation, right * compensation
}
