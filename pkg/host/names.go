package host

import "github.com/justyntemme/flsdk/pkg/fl"

// GetName is a decoded TFruityPlug.GetName request (FPN_*).
type GetName interface {
	Section() fl.NameSection
}

type (
	// ParamName asks for the name of parameter Index.
	ParamName struct{ Index int }
	// ParamValueName asks for the text of parameter Index at Value, as used
	// in the event editor.
	ParamValueName struct{ Index, Value int }
	// SemitoneName asks for the name of a piano roll note for a color (MIDI
	// channel).
	SemitoneName struct{ Note, Color uint8 }
	PatchName    struct{ Index int }
	// VoiceLevelName asks for the name of a per-voice parameter. The
	// defaults are filter cutoff (0) and resonance (1).
	VoiceLevelName     struct{ Index int }
	VoiceLevelHintName struct{ Index int }
	PresetName         struct{ Index int }
	OutCtrlName        struct{ Index int }
	VoiceColorName     struct{ Color uint8 }
	OutVoiceName       struct{ Index int }
	UnknownName        struct{ Raw fl.Message }
)

func (ParamName) Section() fl.NameSection          { return fl.NameParam }
func (ParamValueName) Section() fl.NameSection     { return fl.NameParamValue }
func (SemitoneName) Section() fl.NameSection       { return fl.NameSemitone }
func (PatchName) Section() fl.NameSection          { return fl.NamePatch }
func (VoiceLevelName) Section() fl.NameSection     { return fl.NameVoiceLevel }
func (VoiceLevelHintName) Section() fl.NameSection { return fl.NameVoiceLevelHint }
func (PresetName) Section() fl.NameSection         { return fl.NamePreset }
func (OutCtrlName) Section() fl.NameSection        { return fl.NameOutCtrl }
func (VoiceColorName) Section() fl.NameSection     { return fl.NameVoiceColor }
func (OutVoiceName) Section() fl.NameSection       { return fl.NameOutVoice }
func (n UnknownName) Section() fl.NameSection      { return fl.NameSection(n.Raw.ID) }

// DecodeGetName decodes GetName(Section, Index, Value).
func DecodeGetName(m fl.Message) GetName {
	switch fl.NameSection(m.ID) {
	case fl.NameParam:
		return ParamName{Index: m.Index}
	case fl.NameParamValue:
		return ParamValueName{Index: m.Index, Value: m.Value}
	case fl.NameSemitone:
		return SemitoneName{Note: uint8(m.Index), Color: uint8(m.Value)}
	case fl.NamePatch:
		return PatchName{Index: m.Index}
	case fl.NameVoiceLevel:
		return VoiceLevelName{Index: m.Index}
	case fl.NameVoiceLevelHint:
		return VoiceLevelHintName{Index: m.Index}
	case fl.NamePreset:
		return PresetName{Index: m.Index}
	case fl.NameOutCtrl:
		return OutCtrlName{Index: m.Index}
	case fl.NameVoiceColor:
		return VoiceColorName{Color: uint8(m.Index)}
	case fl.NameOutVoice:
		return OutVoiceName{Index: m.Index}
	default:
		return UnknownName{Raw: m}
	}
}
