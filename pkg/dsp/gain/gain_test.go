package gain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDbConversion(t *testing.T) {
	tests := []struct {
		db     float64
		linear float64
	}{
		{0, 1.0},
		{-6.0206, 0.5},
		{6.0206, 2.0},
		{-20, 0.1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.linear, DbToLinear(tt.db), 0.0001, "DbToLinear(%v)", tt.db)
		assert.InDelta(t, tt.db, LinearToDb(tt.linear), 0.0001, "LinearToDb(%v)", tt.linear)
	}

	assert.Equal(t, MinDB, LinearToDb(0))
	assert.Equal(t, MinDB, LinearToDb(-1))
	assert.Zero(t, DbToLinear(MinDB))
}

func TestApply(t *testing.T) {
	frames := [][2]float32{{1, -1}, {0.5, 0.25}}
	Apply(frames, 0.5)
	assert.Equal(t, [][2]float32{{0.5, -0.5}, {0.25, 0.125}}, frames)

	dst := make([][2]float32, 1)
	ApplyTo(dst, frames, 2)
	assert.Equal(t, [][2]float32{{1, -1}}, dst)
}

func TestFade(t *testing.T) {
	frames := [][2]float32{{1, 1}, {1, 1}, {1, 1}}
	Fade(frames, 0, 1)
	assert.Equal(t, [][2]float32{{0, 0}, {0.5, 0.5}, {1, 1}}, frames)

	single := [][2]float32{{1, 1}}
	Fade(single, 0.25, 1)
	assert.Equal(t, [][2]float32{{0.25, 0.25}}, single)

	assert.NotPanics(t, func() { Fade(nil, 0, 1) })
}

func TestPeakAndClip(t *testing.T) {
	assert.Equal(t, float32(0.75), Peak([][2]float32{{0.1, -0.75}, {0.5, 0}}))
	assert.Zero(t, Peak(nil))

	assert.Equal(t, float32(0.5), SoftClip(0.5, 0.8))
	clipped := SoftClip(4, 0.8)
	assert.LessOrEqual(t, clipped, float32(0.8))
	assert.Greater(t, clipped, float32(0.7))

	frames := [][2]float32{{-4, 4}}
	SoftClipFrames(frames, 1)
	assert.Equal(t, [][2]float32{{-1, 1}}, frames)
}
