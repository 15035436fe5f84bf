package plugin

import (
	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/voice"
)

// EffRender handles TFruityPlug.Eff_Render.
func (a *Adapter) EffRender(input, output [][2]float32) {
	a.render("Eff_Render", input, output)
}

// GenRender handles TFruityPlug.Gen_Render. The input is empty.
func (a *Adapter) GenRender(output [][2]float32) {
	a.render("Gen_Render", nil, output)
}

func (a *Adapter) render(function string, input, output [][2]float32) {
	if a.renderer == nil {
		return
	}
	if a.profiler != nil {
		a.profiler.Measure(len(output), func() { a.renderer.Render(input, output) })
	} else {
		a.renderer.Render(input, output)
	}
	if a.monitor != nil {
		a.monitor.Observe(output, function)
	}
}

// MidiIn handles TFruityPlug.MIDIIn and returns the message to leave in the
// host's variable: fl.MIDIMsgNull kills it.
func (a *Adapter) MidiIn(dword int) int {
	if a.midi == nil {
		return dword
	}
	if !a.midi.MidiIn(fl.MidiMessageFromDword(dword)) {
		return fl.MIDIMsgNull
	}
	return dword
}

// TriggerVoice handles TFruityPlug.TriggerVoice and returns the voice handle.
func (a *Adapter) TriggerVoice(params voice.Params, tag int) int {
	if a.voices == nil {
		return fl.VoiceHandleNull
	}
	return a.table.Trigger(a.voices, params, voice.Tag(tag))
}

func (a *Adapter) VoiceRelease(handle int) {
	if a.voices != nil {
		a.table.Release(a.voices, handle)
	}
}

func (a *Adapter) VoiceKill(handle int) {
	if a.voices != nil {
		a.table.Kill(a.voices, handle)
	}
}

func (a *Adapter) VoiceProcessEvent(handle int, m fl.Message) int {
	if a.voices == nil {
		return 0
	}
	return a.table.OnEvent(a.voices, handle, voice.DecodeEvent(m))
}

// Voices returns the number of live voice handles.
func (a *Adapter) Voices() int { return a.table.Len() }

// OutputVoiceKill handles TFruityPlug.OutputVoice_Kill for an output voice
// the plugin triggered with tag.
func (a *Adapter) OutputVoiceKill(tag int) {
	if a.outVoices != nil {
		a.outVoices.KillOutput(voice.Tag(tag))
	}
	a.host.OutVoicer().Forget(voice.Tag(tag))
}

func (a *Adapter) OutputVoiceProcessEvent(tag int, m fl.Message) int {
	if a.outVoices == nil {
		return 0
	}
	return a.outVoices.OnOutputEvent(voice.Tag(tag), voice.DecodeEvent(m))
}
