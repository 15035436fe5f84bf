package cbridge

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import (
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/host"
	"github.com/justyntemme/flsdk/pkg/plugin"
)

var (
	_ host.Backend  = cHost{}
	_ fl.Memory     = cMemory{}
	_ plugin.Stream = cStream{}
)

func cMessage(m fl.Message) C.FlMessage {
	return C.FlMessage{id: C.intptr_t(m.ID), index: C.intptr_t(m.Index), value: C.intptr_t(m.Value)}
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// cHost calls the TFruityPlugHost the instance was created with.
type cHost struct {
	ptr unsafe.Pointer
}

func (h cHost) Version() int { return int(C.fl_host_version(h.ptr)) }

func (h cHost) Dispatcher(sender fl.Tag, m fl.Message) int {
	return int(C.fl_host_dispatcher(h.ptr, C.intptr_t(sender), cMessage(m)))
}

func (h cHost) OnParamChanged(sender fl.Tag, index, value int) {
	C.fl_host_on_param_changed(h.ptr, C.intptr_t(sender), C.int(index), C.int(value))
}

func (h cHost) OnControllerChanged(sender fl.Tag, index, value int) {
	C.fl_host_on_controller_changed(h.ptr, C.intptr_t(sender), C.intptr_t(index), C.intptr_t(value))
}

func (h cHost) OnHint(sender fl.Tag, text unsafe.Pointer) {
	C.fl_host_on_hint(h.ptr, C.intptr_t(sender), (*C.char)(text))
}

func (h cHost) MIDIOut(sender fl.Tag, msg int) {
	C.fl_host_midi_out(h.ptr, C.intptr_t(sender), C.intptr_t(msg))
}

func (h cHost) MIDIOutDelayed(sender fl.Tag, msg int) {
	C.fl_host_midi_out_delayed(h.ptr, C.intptr_t(sender), C.intptr_t(msg))
}

func (h cHost) PlugMsgDelayed(sender fl.Tag, msg int) {
	C.fl_host_plug_msg_delayed(h.ptr, C.intptr_t(sender), C.intptr_t(msg))
}

func (h cHost) PlugMsgKill(sender fl.Tag, msg int) {
	C.fl_host_plug_msg_kill(h.ptr, C.intptr_t(sender), C.intptr_t(msg))
}

func (h cHost) LockMix()   { C.fl_host_lock_mix(h.ptr) }
func (h cHost) UnlockMix() { C.fl_host_unlock_mix(h.ptr) }

func (h cHost) LockPlugin(sender fl.Tag) {
	C.fl_host_lock_plugin(h.ptr, C.intptr_t(sender))
}

func (h cHost) UnlockPlugin(sender fl.Tag) {
	C.fl_host_unlock_plugin(h.ptr, C.intptr_t(sender))
}

func (h cHost) SuspendOutput() { C.fl_host_suspend_output(h.ptr) }
func (h cHost) ResumeOutput()  { C.fl_host_resume_output(h.ptr) }

func (h cHost) GetInBuffer(sender fl.Tag, index int, buf unsafe.Pointer) bool {
	return C.fl_host_get_in_buffer(h.ptr, C.intptr_t(sender), C.intptr_t(index), buf) != 0
}

func (h cHost) GetOutBuffer(sender fl.Tag, index int, buf unsafe.Pointer) bool {
	return C.fl_host_get_out_buffer(h.ptr, C.intptr_t(sender), C.intptr_t(index), buf) != 0
}

func (h cHost) GetInsBuffer(sender fl.Tag, offset int) unsafe.Pointer {
	return C.fl_host_get_ins_buffer(h.ptr, C.intptr_t(sender), C.int(offset))
}

func (h cHost) GetMixBuffer(offset int) unsafe.Pointer {
	return C.fl_host_get_mix_buffer(h.ptr, C.int(offset))
}

func (h cHost) GetSendBuffer(num int) unsafe.Pointer {
	return C.fl_host_get_send_buffer(h.ptr, C.intptr_t(num))
}

func (h cHost) PromptEdit(x, y int, caption, value unsafe.Pointer, color *int32) bool {
	c := C.int(*color)
	ok := C.fl_host_prompt_edit(h.ptr, C.int(x), C.int(y), (*C.char)(caption), (*C.char)(value), &c)
	*color = int32(c)
	return ok != 0
}

func (h cHost) VoiceRelease(handle int) {
	C.fl_host_voice_release(h.ptr, C.intptr_t(handle))
}

func (h cHost) VoiceKill(handle int, killHandle bool) {
	C.fl_host_voice_kill(h.ptr, C.intptr_t(handle), cBool(killHandle))
}

func (h cHost) VoiceProcessEvent(handle int, m fl.Message) int {
	return int(C.fl_host_voice_process_event(h.ptr, C.intptr_t(handle), cMessage(m)))
}

func (h cHost) TriggerOutputVoice(params unsafe.Pointer, index, tag int) int {
	return int(C.fl_host_trigger_output_voice(h.ptr, params, C.intptr_t(index), C.intptr_t(tag)))
}

func (h cHost) OutputVoiceRelease(handle int) {
	C.fl_host_output_voice_release(h.ptr, C.intptr_t(handle))
}

func (h cHost) OutputVoiceKill(handle int) {
	C.fl_host_output_voice_kill(h.ptr, C.intptr_t(handle))
}

func (h cHost) OutputVoiceProcessEvent(handle int, m fl.Message) int {
	return int(C.fl_host_output_voice_process_event(h.ptr, C.intptr_t(handle), cMessage(m)))
}

// cMemory hands out C heap memory the host may keep reading after a call.
type cMemory struct{}

func (cMemory) Alloc(size int) unsafe.Pointer {
	return C.calloc(1, C.size_t(size))
}

func (cMemory) Free(p unsafe.Pointer) {
	C.free(p)
}

// cStream is the IStream passed to SaveRestoreState.
type cStream struct {
	ptr unsafe.Pointer
}

func (s cStream) Read(p []byte) (int, int32) {
	var data unsafe.Pointer
	if len(p) > 0 {
		data = unsafe.Pointer(&p[0])
	}
	var n C.uint32_t
	hr := C.fl_istream_read(s.ptr, data, C.uint32_t(len(p)), &n)
	return int(n), int32(hr)
}

func (s cStream) Write(p []byte) (int, int32) {
	var data unsafe.Pointer
	if len(p) > 0 {
		data = unsafe.Pointer(&p[0])
	}
	var n C.uint32_t
	hr := C.fl_istream_write(s.ptr, data, C.uint32_t(len(p)), &n)
	return int(n), int32(hr)
}
