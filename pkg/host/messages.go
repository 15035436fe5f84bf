package host

import (
	"fmt"
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Message is a decoded TFruityPlug.Dispatcher call (FPD_*).
type Message interface {
	hostMessage()
}

type (
	// ShowEditor shows the editor in Parent, or hides it when HasParent is
	// false.
	ShowEditor struct {
		Parent    uintptr
		HasParent bool
	}
	// ProcessMode changes the processing mode flags. It can be ignored.
	ProcessMode struct{ Flags fl.ProcessModeFlags }
	// Flush breaks continuity: empty delay buffers and filter memories. Can
	// be called from the mixer thread.
	Flush struct{}
	// SetBlockSize sets the maximum processing length in samples.
	SetBlockSize  struct{ Size uint32 }
	SetSampleRate struct{ Rate uint32 }
	// WindowMinMax lets the editor define its resizing bounds: MinMax is a
	// PRect, Snap a PPoint.
	WindowMinMax struct{ MinMax, Snap unsafe.Pointer }
	// KillVoice asks the plugin to kill its weakest voice; answer true if it
	// did something.
	KillVoice struct{}
	// UseVoiceLevels: answer 0 if per-voice levels are not supported, 1 for
	// the default cutoff/resonance use, 2 for custom names.
	UseVoiceLevels struct{ Index uint8 }
	SetPreset      struct{ Index int }
	// ChanSampleChanged carries a copy of the sample loaded into the parent
	// channel, as a wavetable. Wavetable is nil if the host sent none.
	ChanSampleChanged struct{ Wavetable []float32 }
	SetEnabled        struct{ Enabled bool }
	SetPlaying        struct{ Playing bool }
	SongPosChanged    struct{}
	SetTimeSig        struct{ fl.TimeSignature }
	// CollectFile asks for file Index to collect. Answer a String until
	// there are no more files, then 0.
	CollectFile       struct{ Index int }
	SetInternalParam  struct{}
	SetNumSends       struct{ Count int }
	LoadFile          struct{ Path string }
	SetFitTime        struct{ Beats float32 }
	SetSamplesPerTick struct{ Samples float32 }
	SetIdleTime       struct{ Milliseconds int }
	SetFocus          struct{ Focused bool }
	// Transport is a controller transport message. Answer true if handled.
	Transport struct{ fl.Transport }
	// MidiIn previews live MIDI input. Answer true to steal it.
	MidiIn         struct{ fl.MidiMessage }
	RoutingChanged struct{}
	// GetParamInfo asks for the fl.ParameterFlags of parameter Index.
	GetParamInfo     struct{ Index int }
	ProjLoaded       struct{}
	WrapperLoadState struct {
		Data   unsafe.Pointer
		Length int
	}
	ShowSettings struct{ Active bool }
	SetIoLatency struct{ Input, Output uint32 }
	// PreferredNumIo asks for the preferred number of audio inputs (Kind 0),
	// audio outputs (1) or voice outputs (2). Answer 0 for the default, -1
	// for none.
	PreferredNumIo struct{ Kind uint8 }
	UnknownMessage struct{ Raw fl.Message }
)

func (ShowEditor) hostMessage()        {}
func (ProcessMode) hostMessage()       {}
func (Flush) hostMessage()             {}
func (SetBlockSize) hostMessage()      {}
func (SetSampleRate) hostMessage()     {}
func (WindowMinMax) hostMessage()      {}
func (KillVoice) hostMessage()         {}
func (UseVoiceLevels) hostMessage()    {}
func (SetPreset) hostMessage()         {}
func (ChanSampleChanged) hostMessage() {}
func (SetEnabled) hostMessage()        {}
func (SetPlaying) hostMessage()        {}
func (SongPosChanged) hostMessage()    {}
func (SetTimeSig) hostMessage()        {}
func (CollectFile) hostMessage()       {}
func (SetInternalParam) hostMessage()  {}
func (SetNumSends) hostMessage()       {}
func (LoadFile) hostMessage()          {}
func (SetFitTime) hostMessage()        {}
func (SetSamplesPerTick) hostMessage() {}
func (SetIdleTime) hostMessage()       {}
func (SetFocus) hostMessage()          {}
func (Transport) hostMessage()         {}
func (MidiIn) hostMessage()            {}
func (RoutingChanged) hostMessage()    {}
func (GetParamInfo) hostMessage()      {}
func (ProjLoaded) hostMessage()        {}
func (WrapperLoadState) hostMessage()  {}
func (ShowSettings) hostMessage()      {}
func (SetIoLatency) hostMessage()      {}
func (PreferredNumIo) hostMessage()    {}
func (UnknownMessage) hostMessage()    {}

// FPD_* ids.
const (
	FPDShowEditor        = 0
	FPDProcessMode       = 1
	FPDFlush             = 2
	FPDSetBlockSize      = 3
	FPDSetSampleRate     = 4
	FPDWindowMinMax      = 5
	FPDKillAVoice        = 6
	FPDUseVoiceLevels    = 7
	FPDSetPreset         = 9
	FPDChanSampleChanged = 10
	FPDSetEnabled        = 11
	FPDSetPlaying        = 12
	FPDSongPosChanged    = 13
	FPDSetTimeSig        = 14
	FPDCollectFile       = 15
	FPDSetInternalParam  = 16
	FPDSetNumSends       = 17
	FPDLoadFile          = 18
	FPDSetFitTime        = 19
	FPDSetSamplesPerTick = 20
	FPDSetIdleTime       = 21
	FPDSetFocus          = 22
	FPDTransport         = 23
	FPDMIDIIn            = 24
	FPDRoutingChanged    = 25
	FPDGetParamInfo      = 26
	FPDProjLoaded        = 27
	FPDWrapperLoadState  = 28
	FPDShowSettings      = 29
	FPDSetIOLatency      = 30
	FPDPreferredNumIO    = 32
)

// DecodeMessage decodes a Dispatcher call.
func DecodeMessage(m fl.Message) Message {
	switch m.ID {
	case FPDShowEditor:
		if m.Value == 1 {
			return ShowEditor{}
		}
		return ShowEditor{Parent: uintptr(m.Value), HasParent: true}
	case FPDProcessMode:
		return ProcessMode{Flags: fl.ProcessModeFlags(m.Value)}
	case FPDFlush:
		return Flush{}
	case FPDSetBlockSize:
		return SetBlockSize{Size: uint32(m.Value)}
	case FPDSetSampleRate:
		return SetSampleRate{Rate: uint32(m.Value)}
	case FPDWindowMinMax:
		return WindowMinMax{MinMax: fl.Pointer(m.Index), Snap: fl.Pointer(m.Value)}
	case FPDKillAVoice:
		return KillVoice{}
	case FPDUseVoiceLevels:
		return UseVoiceLevels{Index: uint8(m.Index)}
	case FPDSetPreset:
		return SetPreset{Index: m.Index}
	case FPDChanSampleChanged:
		return ChanSampleChanged{Wavetable: copyWavetable(fl.Pointer(m.Value))}
	case FPDSetEnabled:
		return SetEnabled{Enabled: m.Value != 0}
	case FPDSetPlaying:
		return SetPlaying{Playing: m.Value != 0}
	case FPDSongPosChanged:
		return SongPosChanged{}
	case FPDSetTimeSig:
		return SetTimeSig{fl.TimeSignatureAt(fl.Pointer(m.Value))}
	case FPDCollectFile:
		return CollectFile{Index: m.Index}
	case FPDSetInternalParam:
		return SetInternalParam{}
	case FPDSetNumSends:
		return SetNumSends{Count: m.Value}
	case FPDLoadFile:
		return LoadFile{Path: fl.GoString(fl.Pointer(m.Value))}
	case FPDSetFitTime:
		return SetFitTime{Beats: fl.FloatFromBits(m.Value)}
	case FPDSetSamplesPerTick:
		return SetSamplesPerTick{Samples: fl.FloatFromBits(m.Value)}
	case FPDSetIdleTime:
		return SetIdleTime{Milliseconds: m.Value}
	case FPDSetFocus:
		return SetFocus{Focused: m.Value != 0}
	case FPDTransport:
		return Transport{fl.DecodeTransport(m.Index, m.Value)}
	case FPDMIDIIn:
		return MidiIn{fl.MidiMessageFromDword(m.Value)}
	case FPDRoutingChanged:
		return RoutingChanged{}
	case FPDGetParamInfo:
		return GetParamInfo{Index: m.Index}
	case FPDProjLoaded:
		return ProjLoaded{}
	case FPDWrapperLoadState:
		return WrapperLoadState{Data: fl.Pointer(m.Index), Length: m.Value}
	case FPDShowSettings:
		return ShowSettings{Active: m.Value != 0}
	case FPDSetIOLatency:
		return SetIoLatency{Input: uint32(m.Index), Output: uint32(m.Value)}
	case FPDPreferredNumIO:
		return PreferredNumIo{Kind: uint8(m.Index)}
	default:
		return UnknownMessage{Raw: m}
	}
}

func copyWavetable(p unsafe.Pointer) []float32 {
	if p == nil {
		return nil
	}
	out := make([]float32, fl.WavetableSize)
	copy(out, unsafe.Slice((*float32)(p), fl.WavetableSize))
	return out
}

func (m ShowEditor) String() string {
	if !m.HasParent {
		return "ShowEditor{hide}"
	}
	return fmt.Sprintf("ShowEditor{parent: %#x}", m.Parent)
}
