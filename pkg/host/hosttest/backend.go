// Package hosttest provides a recording host.Backend for tests.
package hosttest

import (
	"sync"
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Call is one recorded backend call.
type Call struct {
	Method string
	Sender fl.Tag
	Args   []int
	Text   string
}

// Backend records every call. Hooks, when set, compute answers.
type Backend struct {
	mu    sync.Mutex
	calls []Call

	HostVersion int

	// OnDispatch answers Dispatcher. It may write through pointers in m.
	OnDispatch func(sender fl.Tag, m fl.Message) int
	// OnPrompt answers PromptEdit.
	OnPrompt func(caption string, value unsafe.Pointer, color *int32) bool
	// OnTriggerOutput answers TriggerOutputVoice. The default returns
	// fl.VoiceHandleNull.
	OnTriggerOutput func(params unsafe.Pointer, index, tag int) int
	// InBuffers and OutBuffers back GetInBuffer and GetOutBuffer, keyed by
	// index.
	InBuffers  map[int]fl.IOBuffer
	OutBuffers map[int]fl.IOBuffer
	// Buffers backs GetInsBuffer, GetMixBuffer and GetSendBuffer.
	Buffers map[int]unsafe.Pointer
	// EventResult is returned by the voice event calls.
	EventResult int
}

// New creates an empty recording backend.
func New() *Backend {
	return &Backend{HostVersion: 21002003}
}

func (b *Backend) record(c Call) {
	b.mu.Lock()
	b.calls = append(b.calls, c)
	b.mu.Unlock()
}

// Calls returns a copy of the recorded calls.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// Find returns the recorded calls of method.
func (b *Backend) Find(method string) []Call {
	var out []Call
	for _, c := range b.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets all recorded calls.
func (b *Backend) Reset() {
	b.mu.Lock()
	b.calls = nil
	b.mu.Unlock()
}

func (b *Backend) Version() int { return b.HostVersion }

func (b *Backend) Dispatcher(sender fl.Tag, m fl.Message) int {
	b.record(Call{Method: "Dispatcher", Sender: sender, Args: []int{m.ID, m.Index, m.Value}})
	if b.OnDispatch != nil {
		return b.OnDispatch(sender, m)
	}
	return 0
}

func (b *Backend) OnParamChanged(sender fl.Tag, index, value int) {
	b.record(Call{Method: "OnParamChanged", Sender: sender, Args: []int{index, value}})
}

func (b *Backend) OnControllerChanged(sender fl.Tag, index, value int) {
	b.record(Call{Method: "OnControllerChanged", Sender: sender, Args: []int{index, value}})
}

func (b *Backend) OnHint(sender fl.Tag, text unsafe.Pointer) {
	b.record(Call{Method: "OnHint", Sender: sender, Text: fl.GoString(text)})
}

func (b *Backend) MIDIOut(sender fl.Tag, msg int) {
	b.record(Call{Method: "MIDIOut", Sender: sender, Args: []int{msg}})
}

func (b *Backend) MIDIOutDelayed(sender fl.Tag, msg int) {
	b.record(Call{Method: "MIDIOutDelayed", Sender: sender, Args: []int{msg}})
}

func (b *Backend) PlugMsgDelayed(sender fl.Tag, msg int) {
	b.record(Call{Method: "PlugMsgDelayed", Sender: sender, Args: []int{msg}})
}

func (b *Backend) PlugMsgKill(sender fl.Tag, msg int) {
	b.record(Call{Method: "PlugMsgKill", Sender: sender, Args: []int{msg}})
}

func (b *Backend) LockMix()                   { b.record(Call{Method: "LockMix"}) }
func (b *Backend) UnlockMix()                 { b.record(Call{Method: "UnlockMix"}) }
func (b *Backend) LockPlugin(sender fl.Tag)   { b.record(Call{Method: "LockPlugin", Sender: sender}) }
func (b *Backend) UnlockPlugin(sender fl.Tag) { b.record(Call{Method: "UnlockPlugin", Sender: sender}) }
func (b *Backend) SuspendOutput()             { b.record(Call{Method: "SuspendOutput"}) }
func (b *Backend) ResumeOutput()              { b.record(Call{Method: "ResumeOutput"}) }

func (b *Backend) GetInBuffer(sender fl.Tag, index int, buf unsafe.Pointer) bool {
	b.record(Call{Method: "GetInBuffer", Sender: sender, Args: []int{index}})
	return fillIOBuffer(b.InBuffers, index, buf)
}

func (b *Backend) GetOutBuffer(sender fl.Tag, index int, buf unsafe.Pointer) bool {
	b.record(Call{Method: "GetOutBuffer", Sender: sender, Args: []int{index}})
	return fillIOBuffer(b.OutBuffers, index, buf)
}

func fillIOBuffer(m map[int]fl.IOBuffer, index int, buf unsafe.Pointer) bool {
	src, ok := m[index]
	if !ok {
		return false
	}
	*(*fl.IOBuffer)(buf) = src
	return true
}

func (b *Backend) GetInsBuffer(sender fl.Tag, offset int) unsafe.Pointer {
	b.record(Call{Method: "GetInsBuffer", Sender: sender, Args: []int{offset}})
	return b.Buffers[offset]
}

func (b *Backend) GetMixBuffer(offset int) unsafe.Pointer {
	b.record(Call{Method: "GetMixBuffer", Args: []int{offset}})
	return b.Buffers[offset]
}

func (b *Backend) GetSendBuffer(num int) unsafe.Pointer {
	b.record(Call{Method: "GetSendBuffer", Args: []int{num}})
	return b.Buffers[num]
}

func (b *Backend) PromptEdit(x, y int, caption, value unsafe.Pointer, color *int32) bool {
	b.record(Call{Method: "PromptEdit", Args: []int{x, y, int(*color)}, Text: fl.GoString(caption)})
	if b.OnPrompt != nil {
		return b.OnPrompt(fl.GoString(caption), value, color)
	}
	return false
}

func (b *Backend) VoiceRelease(handle int) {
	b.record(Call{Method: "VoiceRelease", Args: []int{handle}})
}

func (b *Backend) VoiceKill(handle int, killHandle bool) {
	b.record(Call{Method: "VoiceKill", Args: []int{handle, fl.BoolValue(killHandle)}})
}

func (b *Backend) VoiceProcessEvent(handle int, m fl.Message) int {
	b.record(Call{Method: "VoiceProcessEvent", Args: []int{handle, m.ID, m.Index, m.Value}})
	return b.EventResult
}

func (b *Backend) TriggerOutputVoice(params unsafe.Pointer, index, tag int) int {
	b.record(Call{Method: "TriggerOutputVoice", Args: []int{index, tag}})
	if b.OnTriggerOutput != nil {
		return b.OnTriggerOutput(params, index, tag)
	}
	return fl.VoiceHandleNull
}

func (b *Backend) OutputVoiceRelease(handle int) {
	b.record(Call{Method: "OutputVoiceRelease", Args: []int{handle}})
}

func (b *Backend) OutputVoiceKill(handle int) {
	b.record(Call{Method: "OutputVoiceKill", Args: []int{handle}})
}

func (b *Backend) OutputVoiceProcessEvent(handle int, m fl.Message) int {
	b.record(Call{Method: "OutputVoiceProcessEvent", Args: []int{handle, m.ID, m.Index, m.Value}})
	return b.EventResult
}
