// Package fl holds the binary-level types shared by the host and plugin sides
// of the FL Studio plugin ABI (TFruityPlug / TFruityPlugHost).
package fl

import "fmt"

// CurrentSDKVersion is written into every TFruityPlugInfo.
const CurrentSDKVersion = 1

// WavetableSize is the number of float32 samples in an FL wavetable.
const WavetableSize = 16384

// Special handle and message values.
const (
	VoiceHandleNull = -1
	MIDIMsgNull     = -1
)

// Message is the raw (ID, Index, Value) triple used by every dispatcher,
// event, GetName and voice event call. Fields are intptr_t on the C side.
type Message struct {
	ID    int
	Index int
	Value int
}

func (m Message) String() string {
	return fmt.Sprintf("Message{id: %d, index: %d, value: %d}", m.ID, m.Index, m.Value)
}

// Tag identifies a plugin instance to the host (TPluginTag). It is passed back
// as Sender on every host call.
type Tag int

// NameSection selects what TFruityPlug.GetName is asked about (FPN_*).
type NameSection int

const (
	NameParam          NameSection = 0
	NameParamValue     NameSection = 1
	NameSemitone       NameSection = 2
	NamePatch          NameSection = 3
	NameVoiceLevel     NameSection = 4
	NameVoiceLevelHint NameSection = 5
	NamePreset         NameSection = 6
	NameOutCtrl        NameSection = 7
	NameVoiceColor     NameSection = 8
	NameOutVoice       NameSection = 9
)

// Error codes
type Error int

const (
	ErrNullPointer   Error = -1
	ErrStream        Error = -2
	ErrNoHost        Error = -3
	ErrUnknownHandle Error = -4
	ErrNotRegistered Error = -5
)

func (e Error) Error() string {
	switch e {
	case ErrNullPointer:
		return "null pointer"
	case ErrStream:
		return "stream error"
	case ErrNoHost:
		return "no host"
	case ErrUnknownHandle:
		return "unknown handle"
	case ErrNotRegistered:
		return "no plugin registered"
	default:
		return "unknown error"
	}
}

// HRESULT values returned by IStream.
const (
	SOK      int32 = 0
	EPointer int32 = -2147467261 // 0x80004003
	EFail    int32 = -2147467259 // 0x80004005
)

// HResultError is a failed COM status code.
type HResultError int32

func (e HResultError) Error() string {
	return fmt.Sprintf("HRESULT 0x%08X", uint32(e))
}

// CheckHResult returns nil for success codes (sign bit clear).
func CheckHResult(hr int32) error {
	if hr < 0 {
		return HResultError(hr)
	}
	return nil
}
