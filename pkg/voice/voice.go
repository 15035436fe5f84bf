// Package voice models the voices a generator plays for the host.
//
// All handler methods can be called from either the GUI or the mixer thread.
package voice

import (
	"fmt"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Tag identifies a voice. The host picks it in TriggerVoice (SetTag) and the
// plugin picks it for output voices.
type Tag int

// LevelParams holds channel or voice levels (TLevelParams). All of them can go
// outside their nominal range.
type LevelParams struct {
	Pan   float32 // -1..1
	Vol   float32 // 0..1
	Pitch float32 // cents
	ModX  float32 // modulation X or filter cutoff, -1..1
	ModY  float32 // modulation Y or filter resonance, -1..1
}

// Params is TVoiceParams. InitLevels are meant to be read once when the voice
// is triggered, FinalLevels (voice levels altered by the channel) every time.
type Params struct {
	InitLevels  LevelParams
	FinalLevels LevelParams
}

// Event is a voice event received from the host (FPV_*).
type Event int

const (
	// EventRetrigger lets monophonic mode retrigger a releasing voice.
	EventRetrigger Event = 0
	EventUnknown   Event = -1
)

// DecodeEvent maps a raw event message to an Event.
func DecodeEvent(m fl.Message) Event {
	if m.ID == int(EventRetrigger) {
		return EventRetrigger
	}
	return EventUnknown
}

func (e Event) String() string {
	if e == EventRetrigger {
		return "Retrigger"
	}
	return "Unknown"
}

// HostEventID is a voice event sent to the host (FPV_*).
type HostEventID int

const (
	GetLength       HostEventID = 1 // length in ticks, -1 if undefined
	GetColor        HostEventID = 2 // 0..15, maps to a MIDI channel
	GetVelocity     HostEventID = 3 // float 0..1
	GetRelVelocity  HostEventID = 4 // float 0..1, from Release
	GetRelTime      HostEventID = 5 // float 0..2, from Release
	SetLinkVelocity HostEventID = 6
)

// HostEvent is a voice event the plugin sends to the host.
type HostEvent struct {
	ID    HostEventID
	Value int
}

// LinkVelocity sets whether velocity is linked to volume.
func LinkVelocity(linked bool) HostEvent {
	return HostEvent{ID: SetLinkVelocity, Value: fl.BoolValue(linked)}
}

// Message encodes the event for Voice_ProcessEvent.
func (e HostEvent) Message() fl.Message {
	return fl.Message{ID: int(e.ID), Index: e.Value}
}

// FloatResult reinterprets the result of a float-valued query.
func (e HostEvent) FloatResult(result int) float32 {
	return fl.FloatFromBits(result)
}

func (e HostEvent) String() string {
	return fmt.Sprintf("HostEvent{id: %d, value: %d}", e.ID, e.Value)
}

// Voice is a playing voice owned by the plugin.
type Voice interface {
	Tag() Tag
}

// Handler is implemented by generators.
type Handler interface {
	// Trigger creates a voice. The host uses tag to identify it.
	Trigger(params Params, tag Tag) Voice
	// Release is called when the voice enters its release state (note off).
	Release(tag Tag)
	// Kill is called when the voice has to be discarded.
	Kill(tag Tag)
	// OnEvent processes a voice event and returns the result for the host.
	OnEvent(tag Tag, event Event) int
}

// OutputHandler is implemented by plugins that receive output voice calls
// back from the host.
type OutputHandler interface {
	KillOutput(tag Tag)
	OnOutputEvent(tag Tag, event Event) int
}
