package param

import "fmt"

// ChoiceOption represents a single choice in a list parameter
type ChoiceOption struct {
	Value float64
	Name  string
}

// Choice creates a parameter builder for a multiple choice parameter. The
// host sees the option index.
func Choice(id uint32, name string, options []ChoiceOption) *Builder {
	formatter := func(value float64) string {
		for _, opt := range options {
			if opt.Value == value {
				return opt.Name
			}
		}
		index := int(value)
		if index >= 0 && index < len(options) {
			return options[index].Name
		}
		return "Unknown"
	}

	minVal, maxVal, def := 0.0, 0.0, 0.0
	if len(options) > 0 {
		minVal = options[0].Value
		maxVal = options[len(options)-1].Value
		def = options[0].Value
	}

	b := New(id, name).
		Range(minVal, maxVal).
		Steps(int32(len(options))).
		Default(def).
		Formatter(formatter)
	b.param.Flags |= IsList
	return b
}

// GainParameter creates a standard gain parameter (-inf to +12dB)
func GainParameter(id uint32, name string) *Builder {
	return New(id, name).
		Range(-60, 12).
		Default(0).
		Unit("dB").
		Formatter(DecibelFormatter)
}

// MixParameter creates a standard mix/blend parameter (0-100%)
func MixParameter(id uint32, name string) *Builder {
	return New(id, name).
		Range(0, 100).
		Default(100).
		Unit("%").
		Formatter(PercentFormatter)
}

// FrequencyParameter creates a frequency parameter
func FrequencyParameter(id uint32, name string, min, max, defaultVal float64) *Builder {
	return New(id, name).
		Range(min, max).
		Default(defaultVal).
		Unit("Hz").
		Formatter(FrequencyFormatter)
}

// TimeParameter creates a time parameter in milliseconds
func TimeParameter(id uint32, name string, minMs, maxMs, defaultMs float64) *Builder {
	return New(id, name).
		Range(minMs, maxMs).
		Default(defaultMs).
		Unit("ms").
		Formatter(TimeFormatter)
}

// AttackParameter creates an attack time parameter
func AttackParameter(id uint32, name string, maxMs float64) *Builder {
	return TimeParameter(id, name, 0.1, maxMs, 10.0)
}

// ReleaseParameter creates a release time parameter
func ReleaseParameter(id uint32, name string, maxMs float64) *Builder {
	return TimeParameter(id, name, 1.0, maxMs, 100.0)
}

// PanParameter creates a stereo pan parameter. It reports PI_Centered.
func PanParameter(id uint32, name string) *Builder {
	return New(id, name).
		Range(-100, 100).
		Default(0).
		Formatter(PanFormatter)
}

// SemitoneParameter creates an integer transpose parameter.
func SemitoneParameter(id uint32, name string, semitones int) *Builder {
	return New(id, name).
		Range(float64(-semitones), float64(semitones)).
		Steps(int32(2 * semitones)).
		Default(0).
		Formatter(func(v float64) string {
			return fmt.Sprintf("%+.0f st", v)
		})
}

// BypassParameter creates a bypass on/off switch
func BypassParameter(id uint32, name string) *Builder {
	return Choice(id, name, []ChoiceOption{
		{Value: 0, Name: "Active"},
		{Value: 1, Name: "Bypassed"},
	}).Bypass()
}
