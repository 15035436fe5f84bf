package host

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/flsdk/pkg/fl"
)

func TestDecodeMessage(t *testing.T) {
	sig := [3]int32{16, 4, 96}
	file := []byte("C:\\drop.wav\x00")

	tests := []struct {
		name string
		msg  fl.Message
		want Message
	}{
		{"show editor", fl.Message{ID: 0, Value: 0x1234}, ShowEditor{Parent: 0x1234, HasParent: true}},
		{"hide editor", fl.Message{ID: 0, Value: 1}, ShowEditor{}},
		{"process mode", fl.Message{ID: 1, Value: 2}, ProcessMode{Flags: fl.ProcessHQNonRealtime}},
		{"flush", fl.Message{ID: 2}, Flush{}},
		{"block size", fl.Message{ID: 3, Value: 512}, SetBlockSize{Size: 512}},
		{"sample rate", fl.Message{ID: 4, Value: 48000}, SetSampleRate{Rate: 48000}},
		{"voice levels", fl.Message{ID: 7, Index: 1}, UseVoiceLevels{Index: 1}},
		{"preset", fl.Message{ID: 9, Index: 3}, SetPreset{Index: 3}},
		{"null sample", fl.Message{ID: 10}, ChanSampleChanged{}},
		{"enabled", fl.Message{ID: 11, Value: 1}, SetEnabled{Enabled: true}},
		{"playing", fl.Message{ID: 12}, SetPlaying{}},
		{"time sig", fl.Message{ID: 14, Value: fl.Addr(unsafe.Pointer(&sig))},
			SetTimeSig{fl.TimeSignature{StepsPerBar: 16, StepsPerBeat: 4, PPQ: 96}}},
		{"collect", fl.Message{ID: 15, Index: 2}, CollectFile{Index: 2}},
		{"load file", fl.Message{ID: 18, Value: fl.Addr(unsafe.Pointer(&file[0]))}, LoadFile{Path: "C:\\drop.wav"}},
		{"fit time", fl.Message{ID: 19, Value: fl.FloatBits(4)}, SetFitTime{Beats: 4}},
		{"samples per tick", fl.Message{ID: 20, Value: fl.FloatBits(91.875)}, SetSamplesPerTick{Samples: 91.875}},
		{"idle time", fl.Message{ID: 21, Value: 33}, SetIdleTime{Milliseconds: 33}},
		{"transport", fl.Message{ID: 23, Index: 10, Value: 1},
			Transport{fl.Transport{Control: fl.TransportPlay, Kind: fl.KindButton, Button: 1}}},
		{"midi in", fl.Message{ID: 24, Value: 0x7F3C90}, MidiIn{fl.MidiMessage{Status: 0x90, Data1: 60, Data2: 127, Port: -1}}},
		{"param info", fl.Message{ID: 26, Index: 4}, GetParamInfo{Index: 4}},
		{"latency", fl.Message{ID: 30, Index: 64, Value: 128}, SetIoLatency{Input: 64, Output: 128}},
		{"preferred io", fl.Message{ID: 32, Index: 2}, PreferredNumIo{Kind: 2}},
		{"unknown", fl.Message{ID: 31, Index: 1, Value: 2}, UnknownMessage{Raw: fl.Message{ID: 31, Index: 1, Value: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeMessage(tt.msg))
		})
	}
}

func TestChanSampleChangedCopies(t *testing.T) {
	table := make([]float32, fl.WavetableSize)
	table[0] = 1
	table[fl.WavetableSize-1] = -1

	msg := DecodeMessage(fl.Message{ID: 10, Value: fl.Addr(unsafe.Pointer(&table[0]))})
	got, ok := msg.(ChanSampleChanged)
	require.True(t, ok)
	require.Len(t, got.Wavetable, fl.WavetableSize)
	assert.Equal(t, float32(-1), got.Wavetable[fl.WavetableSize-1])

	table[0] = 5
	assert.Equal(t, float32(1), got.Wavetable[0], "wavetable must be a copy")
}

func TestDecodeGetName(t *testing.T) {
	tests := []struct {
		msg     fl.Message
		want    GetName
		section fl.NameSection
	}{
		{fl.Message{ID: 0, Index: 2}, ParamName{Index: 2}, fl.NameParam},
		{fl.Message{ID: 1, Index: 2, Value: 300}, ParamValueName{Index: 2, Value: 300}, fl.NameParamValue},
		{fl.Message{ID: 2, Index: 60, Value: 3}, SemitoneName{Note: 60, Color: 3}, fl.NameSemitone},
		{fl.Message{ID: 3, Index: 1}, PatchName{Index: 1}, fl.NamePatch},
		{fl.Message{ID: 4, Index: 0}, VoiceLevelName{Index: 0}, fl.NameVoiceLevel},
		{fl.Message{ID: 5, Index: 1}, VoiceLevelHintName{Index: 1}, fl.NameVoiceLevelHint},
		{fl.Message{ID: 6, Index: 7}, PresetName{Index: 7}, fl.NamePreset},
		{fl.Message{ID: 7, Index: 0}, OutCtrlName{Index: 0}, fl.NameOutCtrl},
		{fl.Message{ID: 8, Index: 9}, VoiceColorName{Color: 9}, fl.NameVoiceColor},
		{fl.Message{ID: 9, Index: 1}, OutVoiceName{Index: 1}, fl.NameOutVoice},
		{fl.Message{ID: 42}, UnknownName{Raw: fl.Message{ID: 42}}, fl.NameSection(42)},
	}
	for _, tt := range tests {
		got := DecodeGetName(tt.msg)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.section, got.Section())
	}
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		msg  fl.Message
		want Event
	}{
		{fl.Message{ID: 0, Index: fl.FloatBits(140), Value: 945}, EventTempo{Tempo: 140, SamplesPerTick: 945}},
		{fl.Message{ID: 1, Index: -1}, EventMaxPoly{Max: -1}},
		{fl.Message{ID: 2, Index: 127, Value: 64}, EventMidiPan{Pan: 127, Centered: 64}},
		{fl.Message{ID: 2, Index: 0, Value: -64}, EventMidiPan{Pan: 0, Centered: -64}},
		{fl.Message{ID: 3, Index: 100, Value: fl.FloatBits(0.5)}, EventMidiVol{Vol: 100, Normalized: 0.5}},
		{fl.Message{ID: 4, Index: -200}, EventMidiPitch{Cents: -200}},
		{fl.Message{ID: 5}, EventUnknown{Raw: fl.Message{ID: 5}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeEvent(tt.msg))
	}
}
