package message

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/fl/fltest"
)

func TestDwordFromNoteAndChannel(t *testing.T) {
	value := dwordFromNoteAndChannel(60, 15)
	assert.Equal(t, 60, value&0xff)
	assert.Equal(t, 15, (value>>16)&0xff)
}

func TestArenaRelease(t *testing.T) {
	mem := fltest.NewMemory()
	a := NewArena(mem)
	a.String("one")
	p := a.Alloc(8)
	assert.Equal(t, 2, a.Len())

	a.Free(p)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, mem.Live())

	a.Release()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, mem.Live())
}

func TestSimpleEncodings(t *testing.T) {
	tests := []struct {
		name string
		req  interface{ Encode(*Arena) fl.Message }
		want fl.Message
	}{
		{"param menu", ParamMenu{Param: 3, Item: 5}, fl.Message{ID: 0, Index: 3, Value: 5}},
		{"names changed", NamesChanged{Section: fl.NameOutCtrl}, fl.Message{ID: 3, Value: 7}},
		{"want midi input", WantMidiInput{Enabled: true}, fl.Message{ID: 5, Value: 1}},
		{"kill automation", KillAutomation{First: 2, Last: 4}, fl.Message{ID: 8, Index: 2, Value: 4}},
		{"want idle", WantIdle{Mode: IdleAlwaysEnabled}, fl.Message{ID: 13, Value: 2}},
		{"note on", NoteOn{Note: 60, Channel: 2, Velocity: 100}, fl.Message{ID: 20, Index: 60 | 2<<16, Value: 100}},
		{"note off", NoteOff{Note: 60}, fl.Message{ID: 21, Index: 60}},
		{"set latency", SetLatency{Samples: 512}, fl.Message{ID: 30, Value: 512}},
		{"num in out", GetNumInOut{Direction: Outputs}, fl.Message{ID: 50, Index: 1}},
		{"show editor toggle", ShowEditor{Visibility: EditorToggle}, fl.Message{ID: 53, Value: -1}},
		{"note on off", NoteOnOff{Note: 64, Channel: 1, Velocity: 0, NotRecorded: true},
			fl.Message{ID: 56, Index: 64 | 1<<16 | 1<<30}},
		{"picker", ShowPicker{Mode: PickProject, Filter: FilterPatcher}, fl.Message{ID: 57, Index: 1, Value: -2}},
		{"project info", GetProjectInfo{Field: ProjectURL}, fl.Message{ID: 61, Index: 3}},
		{"render", RenderProject{}, fl.Message{ID: 60}},
	}
	mem := fltest.NewMemory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(mem)
			defer a.Release()
			assert.Equal(t, tt.want, tt.req.Encode(a))
			assert.Equal(t, 0, a.Len())
		})
	}
}

func TestMessageBoxEncoding(t *testing.T) {
	a := NewArena(fltest.NewMemory())
	defer a.Release()

	req := MessageBox{Title: "Title", Message: "Body", Flags: fl.MBYesNo | fl.MBIconQuestion}
	sent := req.Encode(a)
	assert.Equal(t, 19, sent.ID)
	assert.Equal(t, "Title|Body", fl.GoString(fl.Pointer(sent.Index)))
	assert.Equal(t, 0x24, sent.Value)
	assert.Equal(t, fl.MBResultYes, req.Decode(sent, 6))
}

func TestTicksToTime(t *testing.T) {
	a := NewArena(fltest.NewMemory())
	defer a.Release()

	req := TicksToTime{Ticks: 384}
	sent := req.Encode(a)
	assert.Equal(t, 16, sent.ID)
	assert.Equal(t, 384, sent.Value)

	// The host fills the PSongTime in Index.
	*(*fl.SongTime)(fl.Pointer(sent.Index)) = fl.SongTime{Bar: 2, Step: 1, Tick: 0}
	assert.Equal(t, fl.SongTime{Bar: 2, Step: 1}, req.Decode(sent, 0))
}

func TestTimeRequests(t *testing.T) {
	a := NewArena(fltest.NewMemory())
	defer a.Release()

	sent := GetMixingTime{Format: fl.TimeAbsoluteMs, Offset: 128}.Encode(a)
	assert.Equal(t, 36, sent.ID)
	assert.Equal(t, 1, sent.Index)
	assert.Equal(t, fl.Time{T: 128, T2: 128}, GetMixingTime{}.Decode(sent, 0))

	sel := GetSelTime{Format: fl.TimeBeats}
	sent = sel.Encode(a)
	*(*fl.Time)(fl.Pointer(sent.Value)) = fl.Time{T: 4, T2: 8}
	got := sel.Decode(sent, 1)
	assert.True(t, got.Selected)
	assert.Equal(t, 8.0, got.T2)
	assert.False(t, sel.Decode(sent, 0).Selected)

	assert.Equal(t, float32(2), GetTimeMul{}.Decode(fl.Message{}, fl.FloatBits(2)))
}

func TestSendSysEx(t *testing.T) {
	a := NewArena(fltest.NewMemory())
	defer a.Release()

	sent := SendSysEx{Port: 2, Data: []byte{0xF0, 0x7E, 0xF7}}.Encode(a)
	assert.Equal(t, 41, sent.ID)
	assert.Equal(t, 2, sent.Index)
	raw := unsafe.Slice((*byte)(fl.Pointer(sent.Value)), 7)
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(raw[:4]))
	assert.Equal(t, []byte{0xF0, 0x7E, 0xF7}, raw[4:])
}

func TestGetInName(t *testing.T) {
	a := NewArena(fltest.NewMemory())
	defer a.Release()

	req := GetInName{Index: 1}
	sent := req.Encode(a)
	assert.Equal(t, 51, sent.ID)
	require.NotZero(t, sent.Value)

	assert.Nil(t, req.Decode(sent, 0))

	name := fl.NameColorAt(fl.Pointer(sent.Value))
	assert.Equal(t, int32(1), name.Index)
	got := req.Decode(sent, 1)
	require.NotNil(t, got)
	assert.Equal(t, int32(1), got.Index)
}

func TestGetParamMenuEntry(t *testing.T) {
	assert.Nil(t, GetParamMenuEntry{}.Decode(fl.Message{}, 0))

	name := []byte("Link to controller\x00")
	entry := struct {
		Name  unsafe.Pointer
		Flags int32
	}{unsafe.Pointer(&name[0]), int32(fl.MenuItemChecked)}
	got := GetParamMenuEntry{}.Decode(fl.Message{}, fl.Addr(unsafe.Pointer(&entry)))
	require.NotNil(t, got)
	assert.Equal(t, "Link to controller", got.Name)
	assert.Equal(t, fl.MenuItemChecked, got.Flags)
}

func TestStringResults(t *testing.T) {
	path := []byte("C:\\data\\file.wav\x00")
	result := fl.Addr(unsafe.Pointer(&path[0]))
	assert.Equal(t, "C:\\data\\file.wav", LocateDataFile{}.Decode(fl.Message{}, result))
	assert.Equal(t, "", GetProgPath{}.Decode(fl.Message{}, 0))

	wide := append(utf16.Encode([]rune("My Song")), 0)
	assert.Equal(t, "My Song", GetProjectInfo{}.Decode(fl.Message{}, fl.Addr(unsafe.Pointer(&wide[0]))))
}

func TestAddToPianoRoll(t *testing.T) {
	mem := fltest.NewMemory()
	a := NewArena(mem)

	sent := AddToPianoRoll{Notes: fl.Notes{Notes: []fl.Note{fl.DefaultNote()}, Pattern: -1, Channel: -1}}.Encode(a)
	assert.Equal(t, 17, sent.ID)
	assert.Equal(t, 1, a.Len())
	target := *(*int32)(fl.Pointer(sent.Value))
	assert.Equal(t, int32(fl.PianoRollTarget), target)

	a.Release()
	assert.Equal(t, 0, mem.Live())
}
