// Package cbridge links a Go plugin into an FL Studio plugin DLL.
//
// It exports CreatePlugInstance and the Go side of every TFruityPlug virtual.
// Plugins import it for its side effects:
//
//	import _ "github.com/justyntemme/flsdk/pkg/plugin/cbridge"
//
// and are built with -buildmode=c-shared.
package cbridge

/*
#cgo CFLAGS: -I${SRCDIR}/../../../include
#cgo CXXFLAGS: -I${SRCDIR}/../../../include
#cgo LDFLAGS: -lstdc++
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import (
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/framework/debug"
	"github.com/justyntemme/flsdk/pkg/host"
	"github.com/justyntemme/flsdk/pkg/plugin"
	"github.com/justyntemme/flsdk/pkg/voice"
)

func goMessage(m C.FlMessage) fl.Message {
	return fl.Message{ID: int(m.id), Index: int(m.index), Value: int(m.value)}
}

func instance(handle C.intptr_t) *plugin.Adapter {
	return plugin.Instance(uintptr(handle))
}

//export GoCreateInstance
func GoCreateInstance(hostPtr unsafe.Pointer, tag C.intptr_t) (handle C.intptr_t) {
	defer plugin.Recover("GoCreateInstance")

	if hostPtr == nil {
		debug.WithFields(debug.Fields{"tag": int(tag)}).Error("CreatePlugInstance: %v", fl.ErrNoHost)
		return 0
	}
	h := host.New(cHost{ptr: hostPtr}, cMemory{})
	id, err := plugin.NewInstance(h, fl.Tag(tag))
	if err != nil {
		debug.WithFields(debug.Fields{"tag": int(tag)}).Error("CreatePlugInstance: %v", err)
		return 0
	}
	return C.intptr_t(id)
}

// GoInstanceInfo fills info. The C side owns the strings and frees them with
// the instance.
//
//export GoInstanceInfo
func GoInstanceInfo(handle C.intptr_t, info *C.FlInfo) {
	defer plugin.Recover("GoInstanceInfo")

	a := instance(handle)
	if a == nil || info == nil {
		return
	}
	i := a.Info()
	info.sdk_version = C.int(i.SDKVersion)
	info.long_name = C.CString(i.LongName)
	info.short_name = C.CString(i.ShortName)
	info.flags = C.int(i.Flags)
	info.num_params = C.int(i.NumParams)
	info.def_poly = C.int(i.DefPoly)
	info.num_out_ctrls = C.int(i.NumOutCtrls)
	info.num_out_voices = C.int(i.NumOutVoices)
}

//export GoDestroyInstance
func GoDestroyInstance(handle C.intptr_t) {
	defer plugin.Recover("GoDestroyInstance")
	plugin.ReleaseInstance(uintptr(handle))
}

//export GoDispatcher
func GoDispatcher(handle C.intptr_t, m C.FlMessage) C.intptr_t {
	defer plugin.Recover("GoDispatcher")

	if a := instance(handle); a != nil {
		return C.intptr_t(a.Dispatch(goMessage(m)))
	}
	return 0
}

//export GoIdle
func GoIdle(handle C.intptr_t) {
	defer plugin.Recover("GoIdle")

	if a := instance(handle); a != nil {
		a.Idle()
	}
}

//export GoSaveRestoreState
func GoSaveRestoreState(handle C.intptr_t, stream unsafe.Pointer, save C.int) {
	defer plugin.Recover("GoSaveRestoreState")

	a := instance(handle)
	if a == nil || stream == nil {
		return
	}
	s := cStream{ptr: stream}
	if save != 0 {
		a.SaveState(s)
	} else {
		a.LoadState(s)
	}
}

//export GoGetName
func GoGetName(handle C.intptr_t, m C.FlMessage, name *C.char) {
	defer plugin.Recover("GoGetName")

	a := instance(handle)
	if a == nil {
		fl.CopyCString(unsafe.Pointer(name), plugin.NameBufferSize, "")
		return
	}
	a.WriteName(goMessage(m), unsafe.Pointer(name))
}

//export GoProcessEvent
func GoProcessEvent(handle C.intptr_t, m C.FlMessage) C.int {
	defer plugin.Recover("GoProcessEvent")

	if a := instance(handle); a != nil {
		return C.int(a.ProcessEvent(goMessage(m)))
	}
	return 0
}

//export GoProcessParam
func GoProcessParam(handle C.intptr_t, m C.FlMessage) C.int {
	defer plugin.Recover("GoProcessParam")

	if a := instance(handle); a != nil {
		return C.int(a.ProcessParam(goMessage(m)))
	}
	return 0
}

//export GoEffRender
func GoEffRender(handle C.intptr_t, source, dest unsafe.Pointer, length C.int) {
	defer plugin.Recover("GoEffRender")

	if a := instance(handle); a != nil {
		a.EffRender(fl.FramesAt(source, int(length)), fl.FramesAt(dest, int(length)))
	}
}

//export GoGenRender
func GoGenRender(handle C.intptr_t, dest unsafe.Pointer, length C.int) {
	defer plugin.Recover("GoGenRender")

	if a := instance(handle); a != nil {
		a.GenRender(fl.FramesAt(dest, int(length)))
	}
}

//export GoTriggerVoice
func GoTriggerVoice(handle C.intptr_t, params unsafe.Pointer, tag C.intptr_t) (result C.intptr_t) {
	result = fl.VoiceHandleNull
	defer plugin.Recover("GoTriggerVoice")

	a := instance(handle)
	if a == nil || params == nil {
		return result
	}
	return C.intptr_t(a.TriggerVoice(*(*voice.Params)(params), int(tag)))
}

//export GoVoiceRelease
func GoVoiceRelease(handle, v C.intptr_t) {
	defer plugin.Recover("GoVoiceRelease")

	if a := instance(handle); a != nil {
		a.VoiceRelease(int(v))
	}
}

//export GoVoiceKill
func GoVoiceKill(handle, v C.intptr_t) {
	defer plugin.Recover("GoVoiceKill")

	if a := instance(handle); a != nil {
		a.VoiceKill(int(v))
	}
}

//export GoVoiceProcessEvent
func GoVoiceProcessEvent(handle, v C.intptr_t, m C.FlMessage) C.int {
	defer plugin.Recover("GoVoiceProcessEvent")

	if a := instance(handle); a != nil {
		return C.int(a.VoiceProcessEvent(int(v), goMessage(m)))
	}
	return 0
}

//export GoNewTick
func GoNewTick(handle C.intptr_t) {
	defer plugin.Recover("GoNewTick")

	if a := instance(handle); a != nil {
		a.Tick()
	}
}

//export GoMIDITick
func GoMIDITick(handle C.intptr_t) {
	defer plugin.Recover("GoMIDITick")

	if a := instance(handle); a != nil {
		a.MidiTick()
	}
}

//export GoMIDIIn
func GoMIDIIn(handle C.intptr_t, msg *C.int) {
	defer plugin.Recover("GoMIDIIn")

	a := instance(handle)
	if a == nil || msg == nil {
		return
	}
	*msg = C.int(a.MidiIn(int(*msg)))
}

//export GoMsgIn
func GoMsgIn(handle, msg C.intptr_t) {
	defer plugin.Recover("GoMsgIn")

	if a := instance(handle); a != nil {
		a.LoopIn(int(msg))
	}
}

//export GoOutputVoiceProcessEvent
func GoOutputVoiceProcessEvent(handle, tag C.intptr_t, m C.FlMessage) C.int {
	defer plugin.Recover("GoOutputVoiceProcessEvent")

	if a := instance(handle); a != nil {
		return C.int(a.OutputVoiceProcessEvent(int(tag), goMessage(m)))
	}
	return 0
}

//export GoOutputVoiceKill
func GoOutputVoiceKill(handle, tag C.intptr_t) {
	defer plugin.Recover("GoOutputVoiceKill")

	if a := instance(handle); a != nil {
		a.OutputVoiceKill(int(tag))
	}
}
