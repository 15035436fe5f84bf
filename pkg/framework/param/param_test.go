package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/host"
)

func newTestRegistry(t *testing.T) (*Registry, *Parameter, *Parameter) {
	t.Helper()
	gain := GainParameter(10, "Gain").Build()
	mode := Choice(20, "Mode", []ChoiceOption{
		{Value: 0, Name: "A"},
		{Value: 1, Name: "B"},
		{Value: 2, Name: "C"},
	}).Build()

	r := NewRegistry()
	require.NoError(t, r.Add(gain, mode))
	return r, gain, mode
}

func TestParameterValues(t *testing.T) {
	p := New(1, "Cutoff").Range(20, 20020).Default(10020).Build()

	assert.InDelta(t, 0.5, p.GetValue(), 1e-9)
	assert.InDelta(t, 10020, p.GetPlainValue(), 1e-6)

	p.SetValue(2)
	assert.Equal(t, 1.0, p.GetValue())
	p.SetValue(-1)
	assert.Equal(t, 0.0, p.GetValue())

	p.SetPlainValue(5020)
	assert.InDelta(t, 0.25, p.GetValue(), 1e-9)

	p.Reset()
	assert.InDelta(t, 0.5, p.GetValue(), 1e-9)

	empty := New(2, "Empty").Range(1, 1).Build()
	assert.Equal(t, 0.0, empty.Normalize(5))
}

func TestParameterEncoding(t *testing.T) {
	_, gain, mode := newTestRegistry(t)

	assert.False(t, gain.Discrete())
	assert.Equal(t, fl.FloatBits(0.5), gain.Encode(0.5))
	assert.Equal(t, 0.5, gain.Decode(fl.FloatBits(0.5)))
	assert.Equal(t, 1.0, gain.Decode(fl.FloatBits(3)))

	assert.True(t, mode.Discrete())
	assert.Equal(t, 2, mode.Encode(1))
	assert.Equal(t, 1, mode.Encode(0.5))
	assert.Equal(t, 0.5, mode.Decode(1))
	assert.Equal(t, 0, mode.Wire())
}

func TestParameterInfo(t *testing.T) {
	_, gain, mode := newTestRegistry(t)

	assert.Equal(t, fl.ParamFloat, gain.Info())
	assert.Equal(t, fl.ParamCantInterpolate, mode.Info())
	assert.Equal(t, fl.ParamFloat|fl.ParamCentered, PanParameter(3, "Pan").Build().Info())
	assert.NotZero(t, mode.Flags&IsList)
}

func TestFormatValue(t *testing.T) {
	_, gain, mode := newTestRegistry(t)

	assert.Equal(t, "-24.0 dB", gain.FormatValue(0.5))
	assert.Equal(t, "-inf dB", gain.FormatValue(0))
	assert.Equal(t, "C", mode.FormatValue(1))

	plain := New(4, "Amount").Range(0, 10).Unit("x").Build()
	assert.Equal(t, "5.00 x", plain.FormatValue(0.5))

	steps := New(5, "Voices").Range(1, 16).Steps(15).Build()
	assert.Equal(t, "16", steps.FormatValue(1))

	toggle := New(6, "Enabled").Toggle().Build()
	assert.Equal(t, "Off", toggle.FormatValue(0))
	assert.Equal(t, "On", toggle.FormatValue(1))
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{FrequencyFormatter(440), "440.0 Hz"},
		{FrequencyFormatter(2500), "2.50 kHz"},
		{DecibelFormatter(-6), "-6.0 dB"},
		{PercentFormatter(42), "42%"},
		{TimeFormatter(12.5), "12.5 ms"},
		{TimeFormatter(1500), "1.50 s"},
		{PanFormatter(0), "Centered"},
		{PanFormatter(-50), "50% left"},
		{PanFormatter(25), "25% right"},
		{NoteFormatter(60), "C5"},
		{NoteFormatter(61), "C#5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}

func TestRegistry(t *testing.T) {
	r, gain, mode := newTestRegistry(t)

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, 0, gain.Index)
	assert.Equal(t, 1, mode.Index)
	assert.Same(t, mode, r.Get(20))
	assert.Same(t, gain, r.GetByIndex(0))
	assert.Nil(t, r.GetByIndex(2))
	assert.Nil(t, r.GetByIndex(-1))
	assert.Equal(t, []*Parameter{gain, mode}, r.All())

	err := r.Add(New(10, "Duplicate").Build())
	assert.Error(t, err)
	assert.Equal(t, 2, r.Count())

	gain.SetValue(0)
	r.ResetAll()
	assert.InDelta(t, gain.DefaultValue, gain.GetValue(), 1e-9)
}

func TestProcessParam(t *testing.T) {
	r, gain, mode := newTestRegistry(t)

	t.Run("UpdateAndGet", func(t *testing.T) {
		v := r.ProcessParam(1, 2, fl.ParamUpdateValue|fl.ParamGetValue)
		assert.Equal(t, fl.Int(2), v)
		assert.Equal(t, 1.0, mode.GetValue())
	})

	t.Run("UpdateOnly", func(t *testing.T) {
		v := r.ProcessParam(0, fl.FloatBits(0.5), fl.ParamUpdateValue)
		assert.Equal(t, fl.Int(fl.FloatBits(0.5)), v)
		assert.Equal(t, 0.5, gain.GetValue())
	})

	t.Run("GetOnly", func(t *testing.T) {
		v := r.ProcessParam(1, 0, fl.ParamGetValue)
		assert.Equal(t, fl.Int(2), v)
		assert.Equal(t, 1.0, mode.GetValue())
	})

	t.Run("FromMIDI", func(t *testing.T) {
		v := r.ProcessParam(0, fl.MIDIParamRange/4, fl.ParamUpdateValue|fl.ParamFromMIDI|fl.ParamGetValue)
		assert.Equal(t, fl.Int(fl.FloatBits(0.25)), v)
		assert.Equal(t, 0.25, gain.GetValue())
	})

	t.Run("ReadOnly", func(t *testing.T) {
		meter := New(30, "Meter").ReadOnly().Build()
		require.NoError(t, r.Add(meter))
		r.ProcessParam(meter.Index, fl.FloatBits(1), fl.ParamUpdateValue)
		assert.Equal(t, 0.0, meter.GetValue())
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Equal(t, fl.Zero, r.ProcessParam(99, 5, fl.ParamGetValue))
	})
}

func TestRegistryNames(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	name, ok := r.Name(host.ParamName{Index: 0})
	assert.True(t, ok)
	assert.Equal(t, "Gain", name)

	name, ok = r.Name(host.ParamValueName{Index: 1, Value: 1})
	assert.True(t, ok)
	assert.Equal(t, "B", name)

	_, ok = r.Name(host.ParamName{Index: 7})
	assert.False(t, ok)
	_, ok = r.Name(host.PresetName{Index: 0})
	assert.False(t, ok)

	assert.Equal(t, fl.ParamFloat, r.ParamInfo(0))
	assert.Equal(t, fl.ParameterFlags(0), r.ParamInfo(9))
}
