// Package midi decodes the short MIDI messages FL Studio passes to MIDIIn and
// encodes the ones a plugin sends with host.MidiOut.
package midi

import (
	"fmt"
	"math"

	"github.com/justyntemme/flsdk/pkg/fl"
)

type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
	EventTypePolyPressure
	EventTypeControlChange
	EventTypeProgramChange
	EventTypeChannelPressure
	EventTypePitchBend
	EventTypeClock
	EventTypeStart
	EventTypeStop
	EventTypeContinue
	EventTypeUnknown
)

// Status bytes, channel nibble cleared.
const (
	StatusNoteOff         uint8 = 0x80
	StatusNoteOn          uint8 = 0x90
	StatusPolyPressure    uint8 = 0xA0
	StatusControlChange   uint8 = 0xB0
	StatusProgramChange   uint8 = 0xC0
	StatusChannelPressure uint8 = 0xD0
	StatusPitchBend       uint8 = 0xE0
	StatusClock           uint8 = 0xF8
	StatusStart           uint8 = 0xFA
	StatusContinue        uint8 = 0xFB
	StatusStop            uint8 = 0xFC
)

type Event interface {
	Type() EventType
	Channel() uint8
	// Port is the MIDI output port, -1 when it does not apply.
	Port() int32
	String() string
}

type BaseEvent struct {
	EventChannel uint8
	EventPort    int32
}

func (e BaseEvent) Channel() uint8 {
	return e.EventChannel
}

func (e BaseEvent) Port() int32 {
	return e.EventPort
}

type NoteOnEvent struct {
	BaseEvent
	NoteNumber uint8
	Velocity   uint8
}

func (e NoteOnEvent) Type() EventType {
	return EventTypeNoteOn
}

func (e NoteOnEvent) String() string {
	return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d}", e.EventChannel, e.NoteNumber, e.Velocity)
}

type NoteOffEvent struct {
	BaseEvent
	NoteNumber uint8
	Velocity   uint8
}

func (e NoteOffEvent) Type() EventType {
	return EventTypeNoteOff
}

func (e NoteOffEvent) String() string {
	return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d}", e.EventChannel, e.NoteNumber, e.Velocity)
}

type ControlChangeEvent struct {
	BaseEvent
	Controller uint8
	Value      uint8
}

func (e ControlChangeEvent) Type() EventType {
	return EventTypeControlChange
}

func (e ControlChangeEvent) String() string {
	return fmt.Sprintf("CC{ch:%d, ctrl:%d, val:%d}", e.EventChannel, e.Controller, e.Value)
}

const (
	CCModWheel       uint8 = 1
	CCBreath         uint8 = 2
	CCFoot           uint8 = 4
	CCPortamentoTime uint8 = 5
	CCVolume         uint8 = 7
	CCBalance        uint8 = 8
	CCPan            uint8 = 10
	CCExpression     uint8 = 11
	CCSustain        uint8 = 64
	CCPortamento     uint8 = 65
	CCSostenuto      uint8 = 66
	CCSoft           uint8 = 67
	CCLegato         uint8 = 68
	CCAllSoundOff    uint8 = 120
	CCResetAll       uint8 = 121
	CCAllNotesOff    uint8 = 123
)

type PitchBendEvent struct {
	BaseEvent
	Value int16 // -8192 to 8191, 0 is center
}

func (e PitchBendEvent) Type() EventType {
	return EventTypePitchBend
}

func (e PitchBendEvent) String() string {
	return fmt.Sprintf("PitchBend{ch:%d, val:%d}", e.EventChannel, e.Value)
}

func (e PitchBendEvent) NormalizedValue() float64 {
	return float64(e.Value) / 8192.0
}

type PolyPressureEvent struct {
	BaseEvent
	NoteNumber uint8
	Pressure   uint8
}

func (e PolyPressureEvent) Type() EventType {
	return EventTypePolyPressure
}

func (e PolyPressureEvent) String() string {
	return fmt.Sprintf("PolyPressure{ch:%d, note:%d, pressure:%d}", e.EventChannel, e.NoteNumber, e.Pressure)
}

type ChannelPressureEvent struct {
	BaseEvent
	Pressure uint8
}

func (e ChannelPressureEvent) Type() EventType {
	return EventTypeChannelPressure
}

func (e ChannelPressureEvent) String() string {
	return fmt.Sprintf("ChannelPressure{ch:%d, pressure:%d}", e.EventChannel, e.Pressure)
}

type ProgramChangeEvent struct {
	BaseEvent
	Program uint8
}

func (e ProgramChangeEvent) Type() EventType {
	return EventTypeProgramChange
}

func (e ProgramChangeEvent) String() string {
	return fmt.Sprintf("ProgramChange{ch:%d, prog:%d}", e.EventChannel, e.Program)
}

// RealtimeEvent is a system realtime message (clock, start, stop, continue).
type RealtimeEvent struct {
	BaseEvent
	Status uint8
}

func (e RealtimeEvent) Type() EventType {
	switch e.Status {
	case StatusClock:
		return EventTypeClock
	case StatusStart:
		return EventTypeStart
	case StatusStop:
		return EventTypeStop
	case StatusContinue:
		return EventTypeContinue
	default:
		return EventTypeUnknown
	}
}

func (e RealtimeEvent) String() string {
	return fmt.Sprintf("Realtime{status:%#02x}", e.Status)
}

// RawEvent carries a message Decode does not model.
type RawEvent struct {
	BaseEvent
	Message fl.MidiMessage
}

func (e RawEvent) Type() EventType {
	return EventTypeUnknown
}

func (e RawEvent) String() string {
	return e.Message.String()
}

// Decode converts a host MIDI message. A note on with velocity 0 is decoded
// as a note off.
func Decode(m fl.MidiMessage) Event {
	base := BaseEvent{EventChannel: m.Channel(), EventPort: m.Port}
	data1, data2 := m.Data1&0x7F, m.Data2&0x7F

	if m.Status >= 0xF0 {
		switch m.Status {
		case StatusClock, StatusStart, StatusStop, StatusContinue:
			return RealtimeEvent{BaseEvent: BaseEvent{EventPort: m.Port}, Status: m.Status}
		}
		return RawEvent{BaseEvent: BaseEvent{EventPort: m.Port}, Message: m}
	}

	switch m.Status & 0xF0 {
	case StatusNoteOff:
		return NoteOffEvent{BaseEvent: base, NoteNumber: data1, Velocity: data2}
	case StatusNoteOn:
		if data2 == 0 {
			return NoteOffEvent{BaseEvent: base, NoteNumber: data1}
		}
		return NoteOnEvent{BaseEvent: base, NoteNumber: data1, Velocity: data2}
	case StatusPolyPressure:
		return PolyPressureEvent{BaseEvent: base, NoteNumber: data1, Pressure: data2}
	case StatusControlChange:
		return ControlChangeEvent{BaseEvent: base, Controller: data1, Value: data2}
	case StatusProgramChange:
		return ProgramChangeEvent{BaseEvent: base, Program: data1}
	case StatusChannelPressure:
		return ChannelPressureEvent{BaseEvent: base, Pressure: data1}
	case StatusPitchBend:
		return PitchBendEvent{BaseEvent: base, Value: int16(int(data2)<<7|int(data1)) - 8192}
	}
	return RawEvent{BaseEvent: base, Message: m}
}

// Encode converts an event into a message for host.MidiOut.
func Encode(e Event) fl.MidiMessage {
	ch := e.Channel() & 0x0F
	m := fl.MidiMessage{Port: e.Port()}
	switch ev := e.(type) {
	case NoteOnEvent:
		m.Status, m.Data1, m.Data2 = StatusNoteOn|ch, ev.NoteNumber&0x7F, ev.Velocity&0x7F
	case NoteOffEvent:
		m.Status, m.Data1, m.Data2 = StatusNoteOff|ch, ev.NoteNumber&0x7F, ev.Velocity&0x7F
	case PolyPressureEvent:
		m.Status, m.Data1, m.Data2 = StatusPolyPressure|ch, ev.NoteNumber&0x7F, ev.Pressure&0x7F
	case ControlChangeEvent:
		m.Status, m.Data1, m.Data2 = StatusControlChange|ch, ev.Controller&0x7F, ev.Value&0x7F
	case ProgramChangeEvent:
		m.Status, m.Data1 = StatusProgramChange|ch, ev.Program&0x7F
	case ChannelPressureEvent:
		m.Status, m.Data1 = StatusChannelPressure|ch, ev.Pressure&0x7F
	case PitchBendEvent:
		v := int(ev.Value) + 8192
		if v < 0 {
			v = 0
		} else if v > 0x3FFF {
			v = 0x3FFF
		}
		m.Status, m.Data1, m.Data2 = StatusPitchBend|ch, uint8(v&0x7F), uint8(v>>7)
	case RealtimeEvent:
		m.Status = ev.Status
	case RawEvent:
		m = ev.Message
	}
	return m
}

// NoteToFrequency returns the frequency of a MIDI note. tuningA4 of 0 means
// 440 Hz.
func NoteToFrequency(note uint8, tuningA4 float64) float64 {
	if tuningA4 == 0 {
		tuningA4 = 440.0
	}
	return tuningA4 * math.Exp2((float64(note)-69.0)/12.0)
}

// CentsToFrequency converts the pitch of an FL voice, in cents where note
// 60 is 6000, to a frequency.
func CentsToFrequency(cents float64, tuningA4 float64) float64 {
	if tuningA4 == 0 {
		tuningA4 = 440.0
	}
	return tuningA4 * math.Exp2((cents-6900.0)/1200.0)
}

func FrequencyToNote(freq, tuningA4 float64) uint8 {
	if tuningA4 == 0 {
		tuningA4 = 440.0
	}
	if freq <= 0 {
		return 0
	}
	note := 69.0 + 12.0*math.Log2(freq/tuningA4)
	if note < 0 {
		return 0
	}
	if note > 127 {
		return 127
	}
	return uint8(note + 0.5)
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteNumberToName names a note the way FL Studio does: 60 is C5.
func NoteNumberToName(note uint8) string {
	return fmt.Sprintf("%s%d", noteNames[note%12], note/12)
}
