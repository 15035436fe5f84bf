package host

import (
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Backend is the part of the TFruityPlugHost vtable the SDK calls. The cgo
// bridge implements it on top of the real host object; tests use a fake.
//
// Handles and intptr_t payloads are Go ints. Pointers passed in are owned by
// the caller and only valid for the duration of the call.
type Backend interface {
	// Version is HostVersion: 1.2.3 is stored as 1002003.
	Version() int

	Dispatcher(sender fl.Tag, m fl.Message) int
	OnParamChanged(sender fl.Tag, index, value int)
	OnControllerChanged(sender fl.Tag, index, value int)
	OnHint(sender fl.Tag, text unsafe.Pointer)

	MIDIOut(sender fl.Tag, msg int)
	MIDIOutDelayed(sender fl.Tag, msg int)
	PlugMsgDelayed(sender fl.Tag, msg int)
	PlugMsgKill(sender fl.Tag, msg int)

	LockMix()
	UnlockMix()
	LockPlugin(sender fl.Tag)
	UnlockPlugin(sender fl.Tag)
	SuspendOutput()
	ResumeOutput()

	GetInBuffer(sender fl.Tag, index int, buf unsafe.Pointer) bool
	GetOutBuffer(sender fl.Tag, index int, buf unsafe.Pointer) bool
	GetInsBuffer(sender fl.Tag, offset int) unsafe.Pointer
	GetMixBuffer(offset int) unsafe.Pointer
	GetSendBuffer(num int) unsafe.Pointer

	// PromptEdit shows a text prompt. value must hold at least 256 bytes.
	PromptEdit(x, y int, caption, value unsafe.Pointer, color *int32) bool

	VoiceRelease(handle int)
	VoiceKill(handle int, killHandle bool)
	VoiceProcessEvent(handle int, m fl.Message) int

	// TriggerOutputVoice returns fl.VoiceHandleNull when the output has no
	// destination. params points to a voice.Params that must stay alive until
	// the voice is killed.
	TriggerOutputVoice(params unsafe.Pointer, index, tag int) int
	OutputVoiceRelease(handle int)
	OutputVoiceKill(handle int)
	OutputVoiceProcessEvent(handle int, m fl.Message) int
}
