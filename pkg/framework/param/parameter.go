// Package param provides parameter management for FL Studio plugins.
package param

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Parameter represents a plugin parameter. The host addresses parameters by
// position (Index); ID is a stable key used when saving state.
type Parameter struct {
	ID           uint32
	Index        int
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64 // normalized
	StepCount    int32
	Flags        uint32

	// normalized value, float64 bits
	value atomic.Uint64

	formatFunc func(float64) string
}

// Flags for parameters
const (
	CanAutomate uint32 = 1 << 0
	IsReadOnly  uint32 = 1 << 1
	IsList      uint32 = 1 << 3
	IsHidden    uint32 = 1 << 4
	IsBypass    uint32 = 1 << 16
)

// GetValue returns the current normalized value (0-1)
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetValue sets the normalized value, clamped to 0-1.
func (p *Parameter) SetValue(value float64) {
	p.value.Store(math.Float64bits(clamp01(value)))
}

// GetPlainValue converts normalized to plain value
func (p *Parameter) GetPlainValue() float64 {
	return p.Denormalize(p.GetValue())
}

// SetPlainValue converts plain to normalized value
func (p *Parameter) SetPlainValue(plain float64) {
	p.SetValue(p.Normalize(plain))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.SetValue(p.DefaultValue)
}

// Discrete reports whether the parameter has a fixed number of steps. The
// host exchanges discrete values as integers and continuous ones as
// normalized float32 bits.
func (p *Parameter) Discrete() bool {
	return p.StepCount > 0
}

// Info answers FPD_GetParamInfo.
func (p *Parameter) Info() fl.ParameterFlags {
	var flags fl.ParameterFlags
	if p.Discrete() {
		flags |= fl.ParamCantInterpolate
	} else {
		flags |= fl.ParamFloat
	}
	if p.Min < 0 && p.Max > 0 && p.Min == -p.Max {
		flags |= fl.ParamCentered
	}
	return flags
}

// Encode converts a normalized value to the integer the host stores.
func (p *Parameter) Encode(normalized float64) int {
	if p.Discrete() {
		return int(math.Round(p.Denormalize(normalized)))
	}
	return fl.FloatBits(float32(clamp01(normalized)))
}

// Decode converts a host value back to a normalized value.
func (p *Parameter) Decode(value int) float64 {
	if p.Discrete() {
		return p.Normalize(float64(value))
	}
	return clamp01(float64(fl.FloatFromBits(value)))
}

// Wire returns the current value encoded for the host, as passed to
// host.OnParameter.
func (p *Parameter) Wire() int {
	return p.Encode(p.GetValue())
}

// SetFormatter sets custom value formatting
func (p *Parameter) SetFormatter(format func(float64) string) {
	p.formatFunc = format
}

// FormatValue returns formatted parameter value
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)
	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	var s string
	if p.Discrete() {
		s = fmt.Sprintf("%.0f", plain)
	} else {
		s = fmt.Sprintf("%.2f", plain)
	}
	if p.Unit != "" {
		s += " " + p.Unit
	}
	return s
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	return clamp01((plain - p.Min) / (p.Max - p.Min))
}

// Denormalize converts normalized (0-1) to plain value
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + normalized*(p.Max-p.Min)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
