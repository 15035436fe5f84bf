package message

import (
	"github.com/justyntemme/flsdk/pkg/fl"
)

// FHD_* message ids.
const (
	idParamMenu         = 0
	idEditorResized     = 2
	idNamesChanged      = 3
	idActivateMIDI      = 4
	idWantMIDIInput     = 5
	idWantMIDITick      = 6
	idKillAutomation    = 8
	idSetNumPresets     = 9
	idSetNewName        = 10
	idVSTiIdle          = 11
	idSelectChanSample  = 12
	idWantIdle          = 13
	idLocateDataFile    = 14
	idTicksToTime       = 16
	idAddNotesToPR      = 17
	idGetParamMenuEntry = 18
	idMsgBox            = 19
	idNoteOn            = 20
	idNoteOff           = 21
	idOnHintDirect      = 22
	idSetNewColor       = 23
	idGetInstance       = 24
	idKillIntCtrl       = 25
	idSetNumParams      = 27
	idPackDataFile      = 28
	idGetProgPath       = 29
	idSetLatency        = 30
	idCallDownloader    = 31
	idEditSample        = 32
	idSetThreadSafe     = 33
	idSmartDisable      = 34
	idSetUID            = 35
	idGetMixingTime     = 36
	idGetPlaybackTime   = 37
	idGetSelTime        = 38
	idGetTimeMul        = 39
	idCaptionize        = 40
	idSendSysEx         = 41
	idLoadAudioClip     = 42
	idLoadInChannel     = 43
	idShowInBrowser     = 44
	idDebugLogMsg       = 45
	idGetMainFormHandle = 46
	idGetProjDataPath   = 47
	idSetDirty          = 48
	idAddToRecent       = 49
	idGetNumInOut       = 50
	idGetInName         = 51
	idGetOutName        = 52
	idShowEditor        = 53
	idFloatAutomation   = 54
	idShowSettings      = 55
	idNoteOnOff         = 56
	idShowPicker        = 57
	idGetIdleOverflow   = 58
	idModalIdle         = 59
	idRenderProject     = 60
	idGetProjectInfo    = 61
)

// ParamMenu tells the host the user clicked item Item of the popup menu of
// parameter Param.
type ParamMenu struct {
	noResult
	Param int
	Item  int
}

func (r ParamMenu) Encode(*Arena) fl.Message { return msg(idParamMenu, r.Param, r.Item) }

// EditorResized notifies the host that the editor window has been resized.
type EditorResized struct{ noResult }

func (EditorResized) Encode(*Arena) fl.Message { return msg(idEditorResized, 0, 0) }

// NamesChanged notifies the host that the names of Section have changed.
type NamesChanged struct {
	noResult
	Section fl.NameSection
}

func (r NamesChanged) Encode(*Arena) fl.Message {
	return msg(idNamesChanged, 0, int(r.Section))
}

// ActivateMidi makes the host enable its MIDI output.
type ActivateMidi struct{ noResult }

func (ActivateMidi) Encode(*Arena) fl.Message { return msg(idActivateMIDI, 0, 0) }

// WantMidiInput asks for MIDIIn calls.
type WantMidiInput struct {
	noResult
	Enabled bool
}

func (r WantMidiInput) Encode(*Arena) fl.Message {
	return msg(idWantMIDIInput, 0, fl.BoolValue(r.Enabled))
}

// WantMidiTick asks for MIDITick calls.
type WantMidiTick struct {
	noResult
	Enabled bool
}

func (r WantMidiTick) Encode(*Arena) fl.Message {
	return msg(idWantMIDITick, 0, fl.BoolValue(r.Enabled))
}

// KillAutomation kills the automation of parameters First..Last (inclusive).
type KillAutomation struct {
	noResult
	First int
	Last  int
}

func (r KillAutomation) Encode(*Arena) fl.Message { return msg(idKillAutomation, r.First, r.Last) }

// SetNumPresets tells the host how many internal presets there are.
type SetNumPresets struct {
	noResult
	Count int
}

func (r SetNumPresets) Encode(*Arena) fl.Message { return msg(idSetNumPresets, 0, r.Count) }

// SetNewName sets a new short name for the parent channel.
type SetNewName struct {
	noResult
	Name string
}

func (r SetNewName) Encode(a *Arena) fl.Message { return msg(idSetNewName, 0, a.String(r.Name)) }

// VstiIdle is used by wrappers whose GUI needs idling.
type VstiIdle struct{ noResult }

func (VstiIdle) Encode(*Arena) fl.Message { return msg(idVSTiIdle, 0, 0) }

// SelectChanSample opens the channel sample selector.
type SelectChanSample struct{ noResult }

func (SelectChanSample) Encode(*Arena) fl.Message { return msg(idSelectChanSample, 0, 0) }

// IdleMode selects when Idle is called.
type IdleMode int

const (
	IdleDisabled      IdleMode = 0
	IdleWhenVisible   IdleMode = 1 // default
	IdleAlwaysEnabled IdleMode = 2
)

// WantIdle sets when the plugin receives Idle calls.
type WantIdle struct {
	noResult
	Mode IdleMode
}

func (r WantIdle) Encode(*Arena) fl.Message { return msg(idWantIdle, 0, int(r.Mode)) }

// LocateDataFile asks the host to search FileName in its search paths. The
// result is the full path, or "" if the file was not found.
type LocateDataFile struct {
	stringResult
	FileName string
}

func (r LocateDataFile) Encode(a *Arena) fl.Message {
	return msg(idLocateDataFile, 0, a.String(r.FileName))
}

// AddToPianoRoll adds notes to the piano roll.
type AddToPianoRoll struct {
	noResult
	Notes fl.Notes
}

func (r AddToPianoRoll) Encode(a *Arena) fl.Message {
	return msg(idAddNotesToPR, 0, fl.Addr(fl.NewNotesParams(a, r.Notes)))
}

// GetParamMenuEntry reads entry Item of the popup menu of parameter Param.
// The result is nil when there are no more entries.
type GetParamMenuEntry struct {
	Param int
	Item  int
}

func (r GetParamMenuEntry) Encode(*Arena) fl.Message {
	return msg(idGetParamMenuEntry, r.Param, r.Item)
}

func (GetParamMenuEntry) Decode(_ fl.Message, result int) *fl.ParamMenuEntry {
	if result == 0 {
		return nil
	}
	entry := fl.ParamMenuEntryAt(fl.Pointer(result))
	return &entry
}

// MessageBox shows a modal message box.
type MessageBox struct {
	Title   string
	Message string
	Flags   fl.MessageBoxFlags
}

func (r MessageBox) Encode(a *Arena) fl.Message {
	return msg(idMsgBox, a.String(r.Title+"|"+r.Message), int(r.Flags))
}

func (MessageBox) Decode(_ fl.Message, result int) fl.MessageBoxResult {
	return fl.MessageBoxResult(result)
}

// NoteOn turns a preview note on. Channel is the note color (0 = default).
type NoteOn struct {
	noResult
	Note     uint8
	Channel  uint8
	Velocity uint8
}

func (r NoteOn) Encode(*Arena) fl.Message {
	return msg(idNoteOn, dwordFromNoteAndChannel(r.Note, r.Channel), int(r.Velocity))
}

// NoteOff turns a preview note off.
type NoteOff struct {
	noResult
	Note uint8
}

func (r NoteOff) Encode(*Arena) fl.Message { return msg(idNoteOff, int(r.Note), 0) }

// OnHintDirect shows a hint immediately.
type OnHintDirect struct {
	noResult
	Text string
}

func (r OnHintDirect) Encode(a *Arena) fl.Message {
	return msg(idOnHintDirect, 0, a.String(r.Text))
}

// SetNewColor sets a new color for the parent channel.
type SetNewColor struct {
	noResult
	Color int32
}

func (r SetNewColor) Encode(*Arena) fl.Message { return msg(idSetNewColor, 0, int(r.Color)) }

// GetInstance returns the module instance of the host (Windows).
type GetInstance struct{ intResult }

func (GetInstance) Encode(*Arena) fl.Message { return msg(idGetInstance, 0, 0) }

// KillIntCtrl kills anything linked to internal controllers First..Last.
type KillIntCtrl struct {
	noResult
	First int
	Last  int
}

func (r KillIntCtrl) Encode(*Arena) fl.Message { return msg(idKillIntCtrl, r.First, r.Last) }

// SetNumParams overrides the number of parameters of this instance.
type SetNumParams struct {
	noResult
	Count int
}

func (r SetNumParams) Encode(*Arena) fl.Message { return msg(idSetNumParams, 0, r.Count) }

// PackDataFile asks the host to pack an absolute path into a local one.
type PackDataFile struct {
	stringResult
	FileName string
}

func (r PackDataFile) Encode(a *Arena) fl.Message {
	return msg(idPackDataFile, 0, a.String(r.FileName))
}

// GetProgPath returns where the engine data path is.
type GetProgPath struct{ stringResult }

func (GetProgPath) Encode(*Arena) fl.Message { return msg(idGetProgPath, 0, 0) }

// SetLatency sets the plugin latency in samples.
type SetLatency struct {
	noResult
	Samples uint32
}

func (r SetLatency) Encode(*Arena) fl.Message { return msg(idSetLatency, 0, int(r.Samples)) }

// CallDownloader calls the presets downloader, optionally for PluginName.
type CallDownloader struct {
	noResult
	PluginName string
}

func (r CallDownloader) Encode(a *Arena) fl.Message {
	if r.PluginName == "" {
		return msg(idCallDownloader, 0, 0)
	}
	return msg(idCallDownloader, 0, a.String(r.PluginName))
}

// EditSample opens Path in Edison. Reuse lets an existing Edison be used.
type EditSample struct {
	noResult
	Path  string
	Reuse bool
}

func (r EditSample) Encode(a *Arena) fl.Message {
	return msg(idEditSample, fl.BoolValue(r.Reuse), a.String(r.Path))
}

// SetThreadSafe declares the plugin thread-safe (it syncs with LockMix_Shared).
type SetThreadSafe struct {
	noResult
	Enabled bool
}

func (r SetThreadSafe) Encode(*Arena) fl.Message {
	return msg(idSetThreadSafe, 0, fl.BoolValue(r.Enabled))
}

// SmartDisable asks FL to enter (true) or exit smart disabling.
type SmartDisable struct {
	noResult
	Enabled bool
}

func (r SmartDisable) Encode(*Arena) fl.Message {
	return msg(idSmartDisable, 0, fl.BoolValue(r.Enabled))
}

// SetUid sets a unique identifying string used to save custom data.
type SetUid struct {
	noResult
	UID string
}

func (r SetUid) Encode(a *Arena) fl.Message { return msg(idSetUID, 0, a.String(r.UID)) }

// Captionize captionizes the plugin (useful when dragging).
type Captionize struct {
	noResult
	Enabled bool
}

func (r Captionize) Encode(*Arena) fl.Message {
	return msg(idCaptionize, 0, fl.BoolValue(r.Enabled))
}

// SendSysEx sends Data through Port immediately.
type SendSysEx struct {
	noResult
	Port int
	Data []byte
}

func (r SendSysEx) Encode(a *Arena) fl.Message {
	p := a.Alloc(4 + len(r.Data))
	*(*int32)(p) = int32(len(r.Data))
	if len(r.Data) > 0 {
		copy(unsafeBytes(p, 4, len(r.Data)), r.Data)
	}
	return msg(idSendSysEx, r.Port, fl.Addr(p))
}

// LoadAudioClip sends a file to the playlist as an audio clip.
type LoadAudioClip struct {
	noResult
	FileName string
}

func (r LoadAudioClip) Encode(a *Arena) fl.Message {
	return msg(idLoadAudioClip, 0, a.String(r.FileName))
}

// LoadInChannel sends a file to the selected channels.
type LoadInChannel struct {
	noResult
	FileName string
}

func (r LoadInChannel) Encode(a *Arena) fl.Message {
	return msg(idLoadInChannel, 0, a.String(r.FileName))
}

// ShowInBrowser locates a file in the browser.
type ShowInBrowser struct {
	noResult
	FileName string
}

func (r ShowInBrowser) Encode(a *Arena) fl.Message {
	return msg(idShowInBrowser, 0, a.String(r.FileName))
}

// DebugLogMsg adds Text to the host debug log.
type DebugLogMsg struct {
	noResult
	Text string
}

func (r DebugLogMsg) Encode(a *Arena) fl.Message {
	return msg(idDebugLogMsg, 0, a.String(r.Text))
}

// GetMainFormHandle returns the main window handle, or 0 if there is none.
type GetMainFormHandle struct{}

func (GetMainFormHandle) Encode(*Arena) fl.Message { return msg(idGetMainFormHandle, 0, 0) }

func (GetMainFormHandle) Decode(_ fl.Message, result int) uintptr {
	return uintptr(result)
}

// GetProjDataPath returns where project data is stored.
type GetProjDataPath struct{ stringResult }

func (GetProjDataPath) Encode(*Arena) fl.Message { return msg(idGetProjDataPath, 0, 0) }

// SetDirty marks the project as dirty.
type SetDirty struct{ noResult }

func (SetDirty) Encode(*Arena) fl.Message { return msg(idSetDirty, 0, 0) }

// AddToRecent adds a file to the recent files.
type AddToRecent struct {
	noResult
	FileName string
}

func (r AddToRecent) Encode(a *Arena) fl.Message {
	return msg(idAddToRecent, 0, a.String(r.FileName))
}

// Direction selects inputs or outputs of GetNumInOut.
type Direction int

const (
	Inputs  Direction = 0
	Outputs Direction = 1
)

// GetNumInOut returns how many inputs are routed to this effect, or how many
// outputs it is routed to.
type GetNumInOut struct {
	intResult
	Direction Direction
}

func (r GetNumInOut) Encode(*Arena) fl.Message { return msg(idGetNumInOut, int(r.Direction), 0) }

// GetInName returns the name of input Index (the first input is 1), or nil if
// Index is out of range.
type GetInName struct{ Index int }

func (r GetInName) Encode(a *Arena) fl.Message {
	return msg(idGetInName, r.Index, fl.Addr(fl.NewNameColor(a, r.Index)))
}

func (GetInName) Decode(sent fl.Message, result int) *fl.NameColor {
	return decodeNameColor(sent, result)
}

// GetOutName returns the name of output Index (the first output is 1), or nil
// if Index is out of range.
type GetOutName struct{ Index int }

func (r GetOutName) Encode(a *Arena) fl.Message {
	return msg(idGetOutName, r.Index, fl.Addr(fl.NewNameColor(a, r.Index)))
}

func (GetOutName) Decode(sent fl.Message, result int) *fl.NameColor {
	return decodeNameColor(sent, result)
}

func decodeNameColor(sent fl.Message, result int) *fl.NameColor {
	if result == 0 {
		return nil
	}
	nc := fl.NameColorAt(fl.Pointer(sent.Value))
	return &nc
}

// EditorVisibility is the argument of ShowEditor.
type EditorVisibility int

const (
	EditorHide   EditorVisibility = 0
	EditorShow   EditorVisibility = 1
	EditorToggle EditorVisibility = -1
)

// ShowEditor makes the host show, hide or toggle the editor.
type ShowEditor struct {
	noResult
	Visibility EditorVisibility
}

func (r ShowEditor) Encode(*Arena) fl.Message { return msg(idShowEditor, 0, int(r.Visibility)) }

// FloatAutomation asks the host to turn 0..65536 automation into 0..1 floats
// for parameters First..Last.
type FloatAutomation struct {
	noResult
	First int
	Last  int
}

func (r FloatAutomation) Encode(*Arena) fl.Message { return msg(idFloatAutomation, r.First, r.Last) }

// ShowSettings updates the titlebar settings button.
type ShowSettings struct {
	noResult
	Active bool
}

func (r ShowSettings) Encode(*Arena) fl.Message {
	return msg(idShowSettings, 0, fl.BoolValue(r.Active))
}

// NoteOnOff sends a note on, or a note off when Velocity is 0.
type NoteOnOff struct {
	noResult
	Note        uint8
	Channel     uint8
	Velocity    uint8
	NotRecorded bool
}

const notRecordedBit = 1 << 30

func (r NoteOnOff) Encode(*Arena) fl.Message {
	index := dwordFromNoteAndChannel(r.Note, r.Channel)
	if r.NotRecorded {
		index |= notRecordedBit
	}
	return msg(idNoteOnOff, index, int(r.Velocity))
}

// PickerMode selects what the picker lists.
type PickerMode int

const (
	PickPlugins PickerMode = 0
	PickProject PickerMode = 1
)

// PickerFilter selects which categories the picker shows.
type PickerFilter int

const (
	FilterGenerators PickerFilter = 0
	FilterEffects    PickerFilter = 1
	FilterBoth       PickerFilter = -1
	FilterPatcher    PickerFilter = -2 // includes VFX
)

// ShowPicker shows the plugin or project picker.
type ShowPicker struct {
	noResult
	Mode   PickerMode
	Filter PickerFilter
}

func (r ShowPicker) Encode(*Arena) fl.Message { return msg(idShowPicker, int(r.Mode), int(r.Filter)) }

// GetIdleOverflow returns the number of extra frames Idle should process.
type GetIdleOverflow struct{ intResult }

func (GetIdleOverflow) Encode(*Arena) fl.Message { return msg(idGetIdleOverflow, 0, 0) }

// ModalIdle is sent when idling from a modal window.
type ModalIdle struct{ noResult }

func (ModalIdle) Encode(*Arena) fl.Message { return msg(idModalIdle, 0, 0) }

// RenderProject prompts the rendering dialog in song mode.
type RenderProject struct{ noResult }

func (RenderProject) Encode(*Arena) fl.Message { return msg(idRenderProject, 0, 0) }

// ProjectField selects what GetProjectInfo returns.
type ProjectField int

const (
	ProjectTitle    ProjectField = 0
	ProjectAuthor   ProjectField = 1
	ProjectComments ProjectField = 2
	ProjectURL      ProjectField = 3
)

// GetProjectInfo returns the project title, author, comments or URL.
type GetProjectInfo struct{ Field ProjectField }

func (r GetProjectInfo) Encode(*Arena) fl.Message { return msg(idGetProjectInfo, int(r.Field), 0) }

func (GetProjectInfo) Decode(_ fl.Message, result int) string {
	return fl.GoWideString(fl.Pointer(result))
}
