package host

import "github.com/justyntemme/flsdk/pkg/fl"

// Event is a decoded TFruityPlug.ProcessEvent call (FPE_*). Every event can
// arrive on the mixer thread.
type Event interface {
	hostEvent()
}

type (
	// EventTempo carries the new tempo and the average samples per tick.
	EventTempo struct {
		Tempo          float32
		SamplesPerTick uint32
	}
	// EventMaxPoly sets the maximum polyphony; <= 0 means infinite.
	EventMaxPoly struct{ Max int32 }
	// EventMidiPan carries the channel pan as 0..127 and as -64..64.
	EventMidiPan struct {
		Pan      uint8
		Centered int8
	}
	// EventMidiVol carries the channel volume as 0..127 and as 0..1.
	EventMidiVol struct {
		Vol        uint8
		Normalized float32
	}
	// EventMidiPitch is the channel pitch in cents, to be scaled by the
	// current pitch bend range.
	EventMidiPitch struct{ Cents int32 }
	EventUnknown   struct{ Raw fl.Message }
)

func (EventTempo) hostEvent()     {}
func (EventMaxPoly) hostEvent()   {}
func (EventMidiPan) hostEvent()   {}
func (EventMidiVol) hostEvent()   {}
func (EventMidiPitch) hostEvent() {}
func (EventUnknown) hostEvent()   {}

// DecodeEvent decodes ProcessEvent(EventID, EventValue, Flags) carried as
// (ID, Index, Value).
func DecodeEvent(m fl.Message) Event {
	switch m.ID {
	case 0:
		return EventTempo{Tempo: fl.FloatFromBits(m.Index), SamplesPerTick: uint32(m.Value)}
	case 1:
		return EventMaxPoly{Max: int32(m.Index)}
	case 2:
		return EventMidiPan{Pan: uint8(m.Index), Centered: int8(m.Value)}
	case 3:
		return EventMidiVol{Vol: uint8(m.Index), Normalized: fl.FloatFromBits(m.Value)}
	case 4:
		return EventMidiPitch{Cents: int32(m.Index)}
	default:
		return EventUnknown{Raw: m}
	}
}
