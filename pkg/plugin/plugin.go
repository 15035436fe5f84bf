// Package plugin is the plugin side of the FL Studio ABI: the interfaces a
// plugin implements and the adapter the C bridge drives.
package plugin

import (
	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/host"
	"github.com/justyntemme/flsdk/pkg/voice"
)

// Plugin is the main interface that users implement.
type Plugin interface {
	// Info returns the plugin description. It is read once per instance.
	Info() Info

	SaveState(w *StateWriter)
	LoadState(r *StateReader)

	// OnMessage answers a Dispatcher call. Called from the GUI or mixer
	// thread.
	OnMessage(msg host.Message) fl.Value

	// NameOf returns the text the host asks for. Called from the GUI or mixer
	// thread.
	NameOf(name host.GetName) string
}

// Factory creates a plugin instance. tag identifies the instance in every
// call to h.
type Factory func(h *host.Host, tag fl.Tag) Plugin

// The interfaces below are optional. The adapter checks for them once, when
// the instance is created.

// EventProcessor receives ProcessEvent calls.
type EventProcessor interface {
	ProcessEvent(ev host.Event)
}

// ParamProcessor handles ProcessParam. When flags has fl.ParamGetValue the
// answer is the parameter value.
type ParamProcessor interface {
	ProcessParam(index, value int, flags fl.ProcessParamFlags) fl.Value
}

// Idler is called continuously from the GUI thread for quick, non
// time-critical work such as hints.
type Idler interface {
	Idle()
}

// Ticker is called before each mixed tick when the plugin was built with
// WantNewTick. Internal controllers call Host.OnController from here.
type Ticker interface {
	Tick()
}

// MidiTicker is called before each played MIDI tick.
type MidiTicker interface {
	MidiTick()
}

// Renderer processes interleaved stereo float32 audio on the mixer thread.
// Generators receive an empty input.
type Renderer interface {
	Render(input, output [][2]float32)
}

// VoiceHandlerProvider is implemented by generators. If the handler also
// implements voice.OutputHandler it receives output voice calls.
type VoiceHandlerProvider interface {
	VoiceHandler() voice.Handler
}

// MidiReceiver receives MIDI input once the plugin sent
// message.WantMidiInput. Returning false kills the message.
type MidiReceiver interface {
	MidiIn(msg fl.MidiMessage) bool
}

// LoopReceiver receives the messages sent with Host.LoopOut.
type LoopReceiver interface {
	LoopIn(msg int)
}
