package fl

import "fmt"

// MidiMessage is a short MIDI message. Port is -1 when it does not apply.
type MidiMessage struct {
	Status uint8
	Data1  uint8
	Data2  uint8
	Port   int32
}

// MidiMessageFromDword decodes the packed status | data1<<8 | data2<<16 dword
// the host sends to MIDIIn and FPD_MIDIIn.
func MidiMessageFromDword(v int) MidiMessage {
	return MidiMessage{
		Status: uint8(v),
		Data1:  uint8(v >> 8),
		Data2:  uint8(v >> 16),
		Port:   -1,
	}
}

// Dword packs the message without the port.
func (m MidiMessage) Dword() int {
	return int(m.Status) | int(m.Data1)<<8 | int(m.Data2)<<16
}

// Packed lays the message out as TMIDIOutMsg (status, data1, data2, port)
// read as a little-endian int. A port of -1 packs as 255.
func (m MidiMessage) Packed() int {
	return int(uint32(m.Status) | uint32(m.Data1)<<8 | uint32(m.Data2)<<16 | uint32(uint8(m.Port))<<24)
}

// Channel is the low nibble of the status byte.
func (m MidiMessage) Channel() uint8 { return m.Status & 0x0F }

func (m MidiMessage) String() string {
	return fmt.Sprintf("MidiMessage{status: %#02x, data1: %d, data2: %d, port: %d}",
		m.Status, m.Data1, m.Data2, m.Port)
}
