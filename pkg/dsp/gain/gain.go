// Package gain provides amplitude and gain operations on interleaved stereo
// frames.
package gain

import "math"

// MinDB is the dB value treated as silence.
const MinDB = -200.0

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// Apply multiplies every sample of frames by gain in place.
func Apply(frames [][2]float32, gain float32) {
	for i := range frames {
		frames[i][0] *= gain
		frames[i][1] *= gain
	}
}

// ApplyTo writes src scaled by gain to dst. Only the frames both hold are
// written.
func ApplyTo(dst, src [][2]float32, gain float32) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] = src[i][0] * gain
		dst[i][1] = src[i][1] * gain
	}
}

// Fade applies a linear ramp from startGain to endGain across frames.
func Fade(frames [][2]float32, startGain, endGain float32) {
	if len(frames) == 0 {
		return
	}
	if len(frames) == 1 {
		frames[0][0] *= startGain
		frames[0][1] *= startGain
		return
	}

	step := (endGain - startGain) / float32(len(frames)-1)
	g := startGain
	for i := range frames {
		frames[i][0] *= g
		frames[i][1] *= g
		g += step
	}
}

// Peak returns the largest absolute sample in frames.
func Peak(frames [][2]float32) float32 {
	var peak float32
	for _, f := range frames {
		for _, s := range f {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
	}
	return peak
}

// SoftClip limits input to threshold with a tanh-like curve.
func SoftClip(input, threshold float32) float32 {
	abs := input
	if abs < 0 {
		abs = -abs
	}
	if abs <= threshold {
		return input
	}
	return threshold * fastTanh32(input/threshold)
}

// SoftClipFrames applies SoftClip to every sample of frames.
func SoftClipFrames(frames [][2]float32, threshold float32) {
	for i := range frames {
		frames[i][0] = SoftClip(frames[i][0], threshold)
		frames[i][1] = SoftClip(frames[i][1], threshold)
	}
}

// fastTanh32 approximates tanh for soft clipping.
func fastTanh32(x float32) float32 {
	if x < -3 {
		return -1
	}
	if x > 3 {
		return 1
	}
	x2 := x * x
	return x * (27 + x2) / (27 + 9*x2)
}
