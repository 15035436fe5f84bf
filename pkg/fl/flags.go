package fl

import "strings"

// PluginFlags describe the plugin type and capabilities (FPF_*).
type PluginFlags uint32

const (
	FlagGenerator          PluginFlags = 1
	FlagRenderVoice        PluginFlags = 1 << 1
	FlagUseSampler         PluginFlags = 1 << 2
	FlagGetChanCustomShape PluginFlags = 1 << 3
	FlagGetNoteInput       PluginFlags = 1 << 4
	FlagWantNewTick        PluginFlags = 1 << 5
	FlagNoProcess          PluginFlags = 1 << 6
	FlagNoWindow           PluginFlags = 1 << 10
	FlagInterfaceless      PluginFlags = 1 << 11
	FlagTimeWarp           PluginFlags = 1 << 13
	FlagMIDIOut            PluginFlags = 1 << 14
	FlagDemoVersion        PluginFlags = 1 << 15
	FlagCanSend            PluginFlags = 1 << 16
	FlagMsgOut             PluginFlags = 1 << 17
	FlagHybridCanRelease   PluginFlags = 1 << 18
	FlagGetChanSample      PluginFlags = 1 << 19
	FlagWantFitTime        PluginFlags = 1 << 20
	FlagNewVoiceParams     PluginFlags = 1 << 21
	FlagCantSmartDisable   PluginFlags = 1 << 23
	FlagWantSettingsBtn    PluginFlags = 1 << 24
)

// Common flag combinations.
const (
	TypeEffect    = FlagNewVoiceParams
	TypeFullGen   = FlagGenerator | FlagGetNoteInput | FlagNewVoiceParams
	TypeHybridGen = TypeFullGen | FlagUseSampler
	TypeVisual    = FlagNoProcess | FlagNewVoiceParams
)

var pluginFlagNames = []struct {
	flag PluginFlags
	name string
}{
	{FlagGenerator, "Generator"},
	{FlagRenderVoice, "RenderVoice"},
	{FlagUseSampler, "UseSampler"},
	{FlagGetChanCustomShape, "GetChanCustomShape"},
	{FlagGetNoteInput, "GetNoteInput"},
	{FlagWantNewTick, "WantNewTick"},
	{FlagNoProcess, "NoProcess"},
	{FlagNoWindow, "NoWindow"},
	{FlagInterfaceless, "Interfaceless"},
	{FlagTimeWarp, "TimeWarp"},
	{FlagMIDIOut, "MIDIOut"},
	{FlagDemoVersion, "DemoVersion"},
	{FlagCanSend, "CanSend"},
	{FlagMsgOut, "MsgOut"},
	{FlagHybridCanRelease, "HybridCanRelease"},
	{FlagGetChanSample, "GetChanSample"},
	{FlagWantFitTime, "WantFitTime"},
	{FlagNewVoiceParams, "NewVoiceParams"},
	{FlagCantSmartDisable, "CantSmartDisable"},
	{FlagWantSettingsBtn, "WantSettingsBtn"},
}

// Has reports whether all bits of o are set.
func (f PluginFlags) Has(o PluginFlags) bool { return f&o == o }

func (f PluginFlags) String() string {
	var parts []string
	for _, n := range pluginFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

// ProcessModeFlags are sent with FPD_ProcessMode (PM_*).
type ProcessModeFlags int

const (
	ProcessNormal        ProcessModeFlags = 0
	ProcessHQRealtime    ProcessModeFlags = 1
	ProcessHQNonRealtime ProcessModeFlags = 2
	ProcessIsRendering   ProcessModeFlags = 16
	ProcessIPMask        ProcessModeFlags = 0xFFFF << 8
)

// Has reports whether all bits of o are set.
func (f ProcessModeFlags) Has(o ProcessModeFlags) bool { return f&o == o }

// InterpolationPoints returns the number of interpolation points encoded in
// the mode.
func (f ProcessModeFlags) InterpolationPoints() int {
	return int(f&ProcessIPMask) >> 8
}

// ProcessParamFlags tell ProcessParam what to do (REC_*).
type ProcessParamFlags int

const (
	ParamUpdateValue   ProcessParamFlags = 1
	ParamGetValue      ProcessParamFlags = 2
	ParamShowHint      ProcessParamFlags = 4
	ParamUpdateControl ProcessParamFlags = 16
	ParamFromMIDI      ProcessParamFlags = 32
	ParamNoLink        ProcessParamFlags = 1024
	ParamInternalCtrl  ProcessParamFlags = 2048
	ParamPlugReserved  ProcessParamFlags = 4096
)

// Has reports whether all bits of o are set.
func (f ProcessParamFlags) Has(o ProcessParamFlags) bool { return f&o == o }

// MIDIParamRange is the upper bound of a REC_FromMIDI value.
const MIDIParamRange = 65536

// ParamMenuItemFlags describe a host popup menu entry (FHP_*).
type ParamMenuItemFlags int

const (
	MenuItemDisabled ParamMenuItemFlags = 1
	MenuItemChecked  ParamMenuItemFlags = 2
)

// SampleLoadFlags (FHLS_*).
type SampleLoadFlags int

const (
	SampleShowDialog   SampleLoadFlags = 1
	SampleForceReload  SampleLoadFlags = 2
	SampleGetName      SampleLoadFlags = 4
	SampleNoResampling SampleLoadFlags = 8
)

// NotesParamsFlags control FHD_AddNotesToPR (NPF_*).
type NotesParamsFlags int

const (
	NotesEmptyFirst   NotesParamsFlags = 1
	NotesUseSelection NotesParamsFlags = 2
)

// ParameterFlags answer FPD_GetParamInfo (PI_*).
type ParameterFlags int

const (
	ParamCantInterpolate ParameterFlags = 1
	ParamFloat           ParameterFlags = 2
	ParamCentered        ParameterFlags = 4
)

// IO buffer flags for GetInBuffer / GetOutBuffer.
const (
	IOLock   = 0
	IOUnlock = 1
	IOFilled = 1
)

// MessageBoxFlags are the Windows MB_* flags accepted by FHD_MsgBox.
type MessageBoxFlags int

const (
	MBOk               MessageBoxFlags = 0x0
	MBOkCancel         MessageBoxFlags = 0x1
	MBAbortRetryIgnore MessageBoxFlags = 0x2
	MBYesNoCancel      MessageBoxFlags = 0x3
	MBYesNo            MessageBoxFlags = 0x4
	MBRetryCancel      MessageBoxFlags = 0x5
	MBIconHand         MessageBoxFlags = 0x10
	MBIconQuestion     MessageBoxFlags = 0x20
	MBIconExclamation  MessageBoxFlags = 0x30
	MBIconAsterisk     MessageBoxFlags = 0x40
	MBDefButton2       MessageBoxFlags = 0x100
	MBDefButton3       MessageBoxFlags = 0x200
	MBSystemModal      MessageBoxFlags = 0x1000
	MBTaskModal        MessageBoxFlags = 0x2000
)

// MessageBoxResult is the button the user pressed (ID*).
type MessageBoxResult int

const (
	MBResultNone     MessageBoxResult = 0
	MBResultOk       MessageBoxResult = 1
	MBResultCancel   MessageBoxResult = 2
	MBResultAbort    MessageBoxResult = 3
	MBResultRetry    MessageBoxResult = 4
	MBResultIgnore   MessageBoxResult = 5
	MBResultYes      MessageBoxResult = 6
	MBResultNo       MessageBoxResult = 7
	MBResultTryAgain MessageBoxResult = 10
	MBResultContinue MessageBoxResult = 11
)

func (r MessageBoxResult) String() string {
	switch r {
	case MBResultOk:
		return "Ok"
	case MBResultCancel:
		return "Cancel"
	case MBResultAbort:
		return "Abort"
	case MBResultRetry:
		return "Retry"
	case MBResultIgnore:
		return "Ignore"
	case MBResultYes:
		return "Yes"
	case MBResultNo:
		return "No"
	case MBResultTryAgain:
		return "TryAgain"
	case MBResultContinue:
		return "Continue"
	default:
		return "None"
	}
}
