package voice

import (
	"sync"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Table maps the TVoiceHandle values handed to the host to voices. Handles
// are small integers so no Go pointer crosses into C.
type Table struct {
	mu     sync.RWMutex
	voices map[int]Voice
	nextID int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{voices: make(map[int]Voice), nextID: 1}
}

// Trigger asks h for a voice and returns its handle. A nil voice yields
// fl.VoiceHandleNull.
func (t *Table) Trigger(h Handler, params Params, tag Tag) int {
	v := h.Trigger(params, tag)
	if v == nil {
		return fl.VoiceHandleNull
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	if t.nextID <= 0 {
		t.nextID = 1
	}
	t.voices[id] = v
	return id
}

// Get returns the voice behind handle.
func (t *Table) Get(handle int) (Voice, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.voices[handle]
	return v, ok
}

// Release forwards a note off. The handle stays valid: the host follows up
// with Kill.
func (t *Table) Release(h Handler, handle int) {
	if v, ok := t.Get(handle); ok {
		h.Release(v.Tag())
	}
}

// Kill forwards the kill and frees the handle.
func (t *Table) Kill(h Handler, handle int) {
	t.mu.Lock()
	v, ok := t.voices[handle]
	delete(t.voices, handle)
	t.mu.Unlock()
	if ok {
		h.Kill(v.Tag())
	}
}

// OnEvent forwards a voice event. Unknown handles answer 0.
func (t *Table) OnEvent(h Handler, handle int, event Event) int {
	if v, ok := t.Get(handle); ok {
		return h.OnEvent(v.Tag(), event)
	}
	return 0
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.voices)
}
