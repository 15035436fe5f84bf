package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flvoice "github.com/justyntemme/flsdk/pkg/voice"
)

type testVoice struct {
	active     bool
	releasing  bool
	amplitude  float64
	params     *flvoice.Params
	starts     int
	retriggers int
}

func (v *testVoice) Start(params *flvoice.Params) {
	v.active = true
	v.releasing = false
	v.params = params
	v.starts++
}

func (v *testVoice) Release()           { v.releasing = true }
func (v *testVoice) Stop()              { v.active = false; v.releasing = false }
func (v *testVoice) IsActive() bool     { return v.active }
func (v *testVoice) Amplitude() float64 { return v.amplitude }

func (v *testVoice) Render(out [][2]float32) {
	for i := range out {
		out[i][0] += 1
		out[i][1] += 1
	}
}

type retriggerVoice struct{ testVoice }

func (v *retriggerVoice) Retrigger() { v.retriggers++ }

func newTestPool(count int) (*Pool, []*testVoice) {
	tv := make([]*testVoice, count)
	voices := make([]Voice, count)
	for i := range tv {
		tv[i] = &testVoice{}
		voices[i] = tv[i]
	}
	return NewPool(voices), tv
}

func pitch(cents float32) flvoice.Params {
	return flvoice.Params{InitLevels: flvoice.LevelParams{Pitch: cents, Vol: 1}}
}

func TestPoolTrigger(t *testing.T) {
	pool, voices := newTestPool(4)

	for tag := 1; tag <= 3; tag++ {
		v := pool.Trigger(pitch(6000), flvoice.Tag(tag))
		require.NotNil(t, v)
		assert.Equal(t, flvoice.Tag(tag), v.Tag())
	}
	assert.Equal(t, 3, pool.ActiveCount())
	assert.True(t, voices[0].active)
	assert.Equal(t, float32(6000), voices[0].params.InitLevels.Pitch)

	pool.Release(2)
	assert.True(t, voices[1].releasing)
	assert.Equal(t, 3, pool.ActiveCount())

	pool.Kill(2)
	assert.False(t, voices[1].active)
	assert.Equal(t, 2, pool.ActiveCount())

	pool.Release(42)
	pool.Kill(42)
	assert.Equal(t, 2, pool.ActiveCount())

	pool.Reset()
	assert.Zero(t, pool.ActiveCount())
	for _, v := range voices {
		assert.False(t, v.active)
	}
}

func TestPoolSameTagRestarts(t *testing.T) {
	pool, voices := newTestPool(2)
	pool.Trigger(pitch(6000), 7)
	pool.Trigger(pitch(6100), 7)

	assert.Equal(t, 1, pool.ActiveCount())
	assert.Equal(t, 2, voices[0].starts)
}

func TestPoolStealing(t *testing.T) {
	tests := []struct {
		name   string
		mode   StealingMode
		victim int
	}{
		{"Oldest", StealOldest, 0},
		{"Quietest", StealQuietest, 1},
		{"Highest", StealHighest, 2},
		{"Lowest", StealLowest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, voices := newTestPool(3)
			pool.SetStealingMode(tt.mode)
			pool.Trigger(pitch(5000), 1)
			pool.Trigger(pitch(6000), 2)
			pool.Trigger(pitch(7000), 3)
			voices[0].amplitude = 0.5
			voices[1].amplitude = 0.1
			voices[2].amplitude = 0.9

			v := pool.Trigger(pitch(6500), 4)
			require.NotNil(t, v)
			assert.Equal(t, 2, voices[tt.victim].starts)
			assert.Equal(t, 3, pool.ActiveCount())

			// the stolen tag is gone
			pool.Kill(flvoice.Tag(tt.victim + 1))
			assert.Equal(t, 3, pool.ActiveCount())
		})
	}

	t.Run("None", func(t *testing.T) {
		pool, _ := newTestPool(1)
		pool.SetStealingMode(StealNone)
		require.NotNil(t, pool.Trigger(pitch(6000), 1))
		assert.Nil(t, pool.Trigger(pitch(6000), 2))
	})

	t.Run("SilentFirst", func(t *testing.T) {
		pool, voices := newTestPool(2)
		pool.Trigger(pitch(6000), 1)
		pool.Trigger(pitch(6000), 2)
		voices[1].active = false

		pool.Trigger(pitch(6000), 3)
		assert.Equal(t, 1, voices[0].starts)
		assert.Equal(t, 2, voices[1].starts)
	})
}

func TestPoolStealReportsTag(t *testing.T) {
	pool, voices := newTestPool(2)
	var finished []flvoice.Tag
	pool.OnFinished(func(tag flvoice.Tag) {
		finished = append(finished, tag)
		pool.Kill(tag)
	})

	pool.Trigger(pitch(6000), 1)
	pool.Trigger(pitch(6000), 2)
	require.NotNil(t, pool.Trigger(pitch(6000), 3))
	assert.Equal(t, []flvoice.Tag{1}, finished)
	assert.Equal(t, 2, pool.ActiveCount(), "the kill for the stolen tag must not free the new voice")

	// a voice already reported by Render is not reported again
	voices[1].active = false
	pool.Render(make([][2]float32, 2))
	assert.Equal(t, []flvoice.Tag{1, 2}, finished)
	assert.Equal(t, 1, pool.ActiveCount())

	pool.OnFinished(func(tag flvoice.Tag) { finished = append(finished, tag) })
	voices[0].active = false
	pool.Render(make([][2]float32, 2))
	assert.Equal(t, []flvoice.Tag{1, 2, 3}, finished)
	pool.Trigger(pitch(6000), 4)
	pool.Trigger(pitch(6000), 5)
	assert.Equal(t, []flvoice.Tag{1, 2, 3}, finished)
}

func TestPoolMaxVoices(t *testing.T) {
	pool, voices := newTestPool(4)
	pool.SetMaxVoices(2)

	pool.Trigger(pitch(6000), 1)
	pool.Trigger(pitch(6000), 2)
	pool.Trigger(pitch(6000), 3)

	assert.Equal(t, 2, pool.ActiveCount())
	assert.False(t, voices[2].active)
	assert.Equal(t, 2, voices[0].starts)

	pool.SetMaxVoices(100)
	assert.Equal(t, 4, pool.maxVoices)
	pool.SetMaxVoices(0)
	assert.Equal(t, 1, pool.maxVoices)
}

func TestPoolRender(t *testing.T) {
	pool, voices := newTestPool(3)
	var finished []flvoice.Tag
	pool.OnFinished(func(tag flvoice.Tag) {
		finished = append(finished, tag)
		// the host answers with a kill from inside the callback
		pool.Kill(tag)
	})

	pool.Trigger(pitch(6000), 1)
	pool.Trigger(pitch(6000), 2)

	out := make([][2]float32, 4)
	pool.Render(out)
	assert.Equal(t, [2]float32{2, 2}, out[0])
	assert.Empty(t, finished)

	voices[0].active = false
	out = make([][2]float32, 4)
	pool.Render(out)
	assert.Equal(t, [2]float32{1, 1}, out[3])
	assert.Equal(t, []flvoice.Tag{1}, finished)
	assert.Equal(t, 1, pool.ActiveCount())

	pool.Render(out)
	assert.Equal(t, []flvoice.Tag{1}, finished)
}

func TestPoolEvents(t *testing.T) {
	rv := &retriggerVoice{}
	pool := NewPool([]Voice{rv, &testVoice{}})

	pool.Trigger(pitch(6000), 1)
	pool.Trigger(pitch(6000), 2)

	assert.Equal(t, 1, pool.OnEvent(1, flvoice.EventRetrigger))
	assert.Equal(t, 1, rv.retriggers)
	assert.Equal(t, 0, pool.OnEvent(2, flvoice.EventRetrigger))
	assert.Equal(t, 0, pool.OnEvent(1, flvoice.EventUnknown))
	assert.Equal(t, 0, pool.OnEvent(9, flvoice.EventRetrigger))

	levels := flvoice.LevelParams{Vol: 0.5, Pan: -1}
	pool.SetLevels(1, levels)
	assert.Equal(t, levels, rv.params.FinalLevels)
}
