package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/flsdk/pkg/fl"
)

type testVoice struct{ tag Tag }

func (v *testVoice) Tag() Tag { return v.tag }

type recordingHandler struct {
	triggered []Tag
	released  []Tag
	killed    []Tag
	events    []Event
	refuse    bool
}

func (h *recordingHandler) Trigger(_ Params, tag Tag) Voice {
	if h.refuse {
		return nil
	}
	h.triggered = append(h.triggered, tag)
	return &testVoice{tag: tag}
}

func (h *recordingHandler) Release(tag Tag) { h.released = append(h.released, tag) }
func (h *recordingHandler) Kill(tag Tag)    { h.killed = append(h.killed, tag) }

func (h *recordingHandler) OnEvent(_ Tag, e Event) int {
	h.events = append(h.events, e)
	return 7
}

func TestTableLifecycle(t *testing.T) {
	h := &recordingHandler{}
	table := NewTable()

	handle := table.Trigger(h, Params{}, 42)
	require.NotEqual(t, fl.VoiceHandleNull, handle)
	assert.Equal(t, 1, table.Len())

	table.Release(h, handle)
	assert.Equal(t, []Tag{42}, h.released)
	assert.Equal(t, 1, table.Len(), "release must not free the handle")

	assert.Equal(t, 7, table.OnEvent(h, handle, EventRetrigger))

	table.Kill(h, handle)
	assert.Equal(t, []Tag{42}, h.killed)
	assert.Equal(t, 0, table.Len())

	// A second kill of the same handle is ignored.
	table.Kill(h, handle)
	assert.Len(t, h.killed, 1)
}

func TestTableUnknownHandle(t *testing.T) {
	h := &recordingHandler{}
	table := NewTable()

	table.Release(h, 99)
	table.Kill(h, 99)
	assert.Equal(t, 0, table.OnEvent(h, 99, EventRetrigger))
	assert.Empty(t, h.released)
	assert.Empty(t, h.killed)
	assert.Empty(t, h.events)
}

func TestTableRefusedTrigger(t *testing.T) {
	h := &recordingHandler{refuse: true}
	table := NewTable()
	assert.Equal(t, fl.VoiceHandleNull, table.Trigger(h, Params{}, 1))
	assert.Equal(t, 0, table.Len())
}

func TestDecodeEvent(t *testing.T) {
	assert.Equal(t, EventRetrigger, DecodeEvent(fl.Message{ID: 0}))
	assert.Equal(t, EventUnknown, DecodeEvent(fl.Message{ID: 3}))
}

func TestHostEventMessage(t *testing.T) {
	assert.Equal(t, fl.Message{ID: 6, Index: 1}, LinkVelocity(true).Message())
	assert.Equal(t, fl.Message{ID: 3}, HostEvent{ID: GetVelocity}.Message())
	assert.Equal(t, float32(0.5), HostEvent{ID: GetVelocity}.FloatResult(fl.FloatBits(0.5)))
}
