package fl

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/flsdk/pkg/fl/fltest"
)

func TestPluginFlagsString(t *testing.T) {
	assert.Equal(t, "0", PluginFlags(0).String())
	assert.Equal(t, "Generator|GetNoteInput|NewVoiceParams", TypeFullGen.String())
	assert.True(t, TypeHybridGen.Has(FlagUseSampler))
	assert.False(t, TypeEffect.Has(FlagGenerator))
}

func TestProcessModeInterpolation(t *testing.T) {
	mode := ProcessHQRealtime | ProcessIsRendering | ProcessModeFlags(4<<8)
	assert.True(t, mode.Has(ProcessIsRendering))
	assert.Equal(t, 4, mode.InterpolationPoints())
}

func TestMidiMessageFromDword(t *testing.T) {
	msg := MidiMessageFromDword(0x7F3C90)
	assert.Equal(t, uint8(0x90), msg.Status)
	assert.Equal(t, uint8(60), msg.Data1)
	assert.Equal(t, uint8(127), msg.Data2)
	assert.Equal(t, int32(-1), msg.Port)
	assert.Equal(t, 0x7F3C90, msg.Dword())
	assert.Equal(t, 0xFF7F3C90, msg.Packed())

	msg.Port = 2
	assert.Equal(t, 0x027F3C90, msg.Packed())
}

func TestDecodeTransport(t *testing.T) {
	tests := []struct {
		name  string
		index int
		value int
		want  Transport
	}{
		{"jog", 0, -3, Transport{Control: TransportJog, Kind: KindJog, Jog: -3}},
		{"play", 10, 2, Transport{Control: TransportPlay, Kind: KindButton, Button: 2}},
		{"rewind", 13, 1, Transport{Control: TransportRewind, Kind: KindHold, Hold: true}},
		{"punch release", 30, 0, Transport{Control: TransportPunch, Kind: KindHold}},
		{"window jog", 59, 4, Transport{Control: TransportWindowJog, Kind: KindJog, Jog: 4}},
		{"f5", 64, 1, Transport{Control: 64, Kind: KindButton, Button: 1}},
		{"gap", 9, 1, Transport{Control: TransportUnknown}},
		{"beyond", 100, 1, Transport{Control: TransportUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeTransport(tt.index, tt.value))
		})
	}
	assert.Equal(t, 5, DecodeTransport(64, 1).FunctionKey())
	assert.Equal(t, 0, DecodeTransport(10, 1).FunctionKey())
}

func TestFloatBits(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 140.25} {
		assert.Equal(t, f, FloatFromBits(FloatBits(f)))
	}
	raw, owned := Float(-2.5).Encode(nil)
	assert.Nil(t, owned)
	assert.Equal(t, float32(-2.5), FloatFromBits(raw))
}

func TestStringValue(t *testing.T) {
	mem := fltest.NewMemory()
	raw, owned := String("Cutoff").Encode(mem)
	require.NotNil(t, owned)
	assert.Equal(t, Addr(owned), raw)
	assert.Equal(t, "Cutoff", GoString(Pointer(raw)))
	mem.Free(owned)
	assert.Equal(t, 0, mem.Live())
}

func TestCString(t *testing.T) {
	mem := fltest.NewMemory()
	p := CString(mem, "abc\x00def")
	assert.Equal(t, "abc", GoString(p))
	assert.Equal(t, "", GoString(nil))
	assert.Equal(t, "ab", GoStringN(p, 2))
}

func TestCopyCString(t *testing.T) {
	var buf [4]byte
	CopyCString(unsafe.Pointer(&buf[0]), len(buf), "hello")
	assert.Equal(t, [4]byte{'h', 'e', 'l', 0}, buf)

	CopyCString(unsafe.Pointer(&buf[0]), len(buf), "x")
	assert.Equal(t, "x", GoString(unsafe.Pointer(&buf[0])))

	// the 2-byte ü does not fit after "ab"
	CopyCString(unsafe.Pointer(&buf[0]), len(buf), "abü")
	assert.Equal(t, "ab", GoString(unsafe.Pointer(&buf[0])))

	CopyCString(unsafe.Pointer(&buf[0]), len(buf), "€x")
	assert.Equal(t, "€", GoString(unsafe.Pointer(&buf[0])))

	CopyCString(unsafe.Pointer(&buf[0]), len(buf), "a€")
	assert.Equal(t, "a", GoString(unsafe.Pointer(&buf[0])))
	assert.True(t, utf8.ValidString(GoString(unsafe.Pointer(&buf[0]))))
}

func TestGoWideString(t *testing.T) {
	units := append(utf16.Encode([]rune("Projekt ü")), 0)
	assert.Equal(t, "Projekt ü", GoWideString(unsafe.Pointer(&units[0])))
}

func TestNameColorRoundTrip(t *testing.T) {
	mem := fltest.NewMemory()
	p := NewNameColor(mem, 3)
	raw := (*rawNameColor)(p)
	CopyCString(unsafe.Pointer(&raw.Name[0]), len(raw.Name), "Insert 3")
	raw.Color = 0x00FF00

	nc := NameColorAt(p)
	assert.Equal(t, NameColor{Name: "Insert 3", Color: 0x00FF00, Index: 3}, nc)
}

func TestNotesParamsLayout(t *testing.T) {
	assert.Equal(t, uintptr(32), unsafe.Sizeof(Note{}))
	assert.Equal(t, uintptr(20), unsafe.Sizeof(rawNotesHeader{}))

	mem := fltest.NewMemory()
	n := DefaultNote()
	n.Length = 96
	p := NewNotesParams(mem, Notes{Notes: []Note{n, n}, Flags: NotesEmptyFirst, Pattern: -1, Channel: -1})
	hdr := (*rawNotesHeader)(p)
	assert.Equal(t, int32(PianoRollTarget), hdr.Target)
	assert.Equal(t, int32(2), hdr.Count)
	assert.Equal(t, int32(-1), hdr.ChanNum)
	second := (*Note)(unsafe.Add(p, 20+32))
	assert.Equal(t, int16(60), second.Note)
	assert.Equal(t, int32(96), second.Length)
}

func TestCheckHResult(t *testing.T) {
	assert.NoError(t, CheckHResult(SOK))
	err := CheckHResult(EPointer)
	require.Error(t, err)
	assert.Equal(t, "HRESULT 0x80004003", err.Error())
}
