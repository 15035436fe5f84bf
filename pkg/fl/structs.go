package fl

import (
	"fmt"
	"unsafe"
)

// The raw* types mirror the C layouts in include/fp_def.h and
// include/fp_plugclass.h field for field.

type rawTimeSigInfo struct {
	StepsPerBar  int32
	StepsPerBeat int32
	PPQ          int32
}

type rawNameColor struct {
	Name    [256]byte
	VisName [256]byte
	Color   int32
	Index   int32
}

type rawParamMenuEntry struct {
	Name  unsafe.Pointer
	Flags int32
}

type rawIOBuffer struct {
	Buffer unsafe.Pointer
	Flags  uint32
}

type rawNotesHeader struct {
	Target  int32
	Flags   int32
	PatNum  int32
	ChanNum int32
	Count   int32
}

// TimeSignature is sent with FPD_SetTimeSig.
type TimeSignature struct {
	StepsPerBar  uint32
	StepsPerBeat uint32
	PPQ          uint32
}

func (t TimeSignature) String() string {
	return fmt.Sprintf("TimeSignature{steps_per_bar: %d, steps_per_beat: %d, ppq: %d}",
		t.StepsPerBar, t.StepsPerBeat, t.PPQ)
}

// TimeSignatureAt reads a PTimeSigInfo.
func TimeSignatureAt(p unsafe.Pointer) TimeSignature {
	if p == nil {
		return TimeSignature{}
	}
	raw := (*rawTimeSigInfo)(p)
	return TimeSignature{
		StepsPerBar:  uint32(raw.StepsPerBar),
		StepsPerBeat: uint32(raw.StepsPerBeat),
		PPQ:          uint32(raw.PPQ),
	}
}

// SongTime is Bar:Step:Tick (not Bar:Beat:Tick). Same layout as TSongTime.
type SongTime struct {
	Bar  int32
	Step int32
	Tick int32
}

// Time is a pair of times in the format requested (TFPTime).
type Time struct {
	T  float64
	T2 float64
}

// TimeFormat selects the unit of FHD_GetMixingTime and friends.
type TimeFormat int

const (
	TimeBeats TimeFormat = iota
	TimeAbsoluteMs
	TimeRunningMs
	TimeRestartMs
)

// NameColor describes a mixer input or output (TNameColor).
type NameColor struct {
	Name        string
	VisibleName string
	Color       int32
	Index       int32
}

// NameColorSize is sizeof(TNameColor).
const NameColorSize = int(unsafe.Sizeof(rawNameColor{}))

// NewNameColor allocates a TNameColor with Index preset.
func NewNameColor(mem Memory, index int) unsafe.Pointer {
	raw := Alloc[rawNameColor](mem)
	raw.Index = int32(index)
	return unsafe.Pointer(raw)
}

// NameColorAt reads a PNameColor.
func NameColorAt(p unsafe.Pointer) NameColor {
	raw := (*rawNameColor)(p)
	return NameColor{
		Name:        GoStringN(unsafe.Pointer(&raw.Name[0]), len(raw.Name)),
		VisibleName: GoStringN(unsafe.Pointer(&raw.VisName[0]), len(raw.VisName)),
		Color:       raw.Color,
		Index:       raw.Index,
	}
}

// ParamMenuEntry is one entry of a parameter popup menu. A Name of "-" is a
// separator.
type ParamMenuEntry struct {
	Name  string
	Flags ParamMenuItemFlags
}

// ParamMenuEntryAt reads a PParamMenuEntry.
func ParamMenuEntryAt(p unsafe.Pointer) ParamMenuEntry {
	raw := (*rawParamMenuEntry)(p)
	return ParamMenuEntry{Name: GoString(raw.Name), Flags: ParamMenuItemFlags(raw.Flags)}
}

// IOBuffer is a multi-in/output buffer returned by GetInBuffer/GetOutBuffer.
type IOBuffer struct {
	Buffer unsafe.Pointer
	Flags  uint32
}

// IOBufferSize is large enough to hold a TIOBuffer.
const IOBufferSize = int(unsafe.Sizeof(rawIOBuffer{}))

// IOBufferAt reads a PIOBuffer.
func IOBufferAt(p unsafe.Pointer) IOBuffer {
	raw := (*rawIOBuffer)(p)
	return IOBuffer{Buffer: raw.Buffer, Flags: raw.Flags}
}

// Filled reports IO_Filled on an input buffer.
func (b IOBuffer) Filled() bool { return b.Flags&IOFilled != 0 }

// Frames views the buffer as length interleaved stereo frames.
func (b IOBuffer) Frames(length int) [][2]float32 {
	return FramesAt(b.Buffer, length)
}

// FramesAt views a PWAV32FS of length frames. A nil pointer gives nil.
func FramesAt(p unsafe.Pointer, length int) [][2]float32 {
	if p == nil || length <= 0 {
		return nil
	}
	return unsafe.Slice((*[2]float32)(p), length)
}

// Note is a piano roll note (TNoteParams).
type Note struct {
	Position int32 // PPQ
	Length   int32 // PPQ
	Pan      int32
	Vol      int32
	Note     int16
	Color    int16 // 0..15, MIDI channel
	Pitch    int32
	FCut     float32
	FRes     float32
}

// DefaultNote returns a note with the host defaults.
func DefaultNote() Note {
	return Note{Vol: 100, Note: 60}
}

// Notes is a batch of notes added with FHD_AddNotesToPR. Pattern and Channel
// are -1 for the current pattern and the plugin's own channel.
type Notes struct {
	Notes   []Note
	Flags   NotesParamsFlags
	Pattern int
	Channel int
}

// PianoRollTarget is the only supported TNotesParams target.
const PianoRollTarget = 1

// NewNotesParams allocates a TNotesParams holding n.
func NewNotesParams(mem Memory, n Notes) unsafe.Pointer {
	headerSize := int(unsafe.Sizeof(rawNotesHeader{}))
	noteSize := int(unsafe.Sizeof(Note{}))
	count := len(n.Notes)
	size := headerSize + noteSize*count
	if count == 0 {
		size += noteSize
	}
	p := mem.Alloc(size)
	hdr := (*rawNotesHeader)(p)
	hdr.Target = PianoRollTarget
	hdr.Flags = int32(n.Flags)
	hdr.PatNum = int32(n.Pattern)
	hdr.ChanNum = int32(n.Channel)
	hdr.Count = int32(count)
	if count > 0 {
		dst := unsafe.Slice((*Note)(unsafe.Add(p, headerSize)), count)
		copy(dst, n.Notes)
	}
	return p
}
