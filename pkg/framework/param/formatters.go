package param

import (
	"fmt"
	"math"

	"github.com/justyntemme/flsdk/pkg/midi"
)

// Formatters for the text the host shows next to a parameter (FPN_ParamValue).

// FrequencyFormatter formats frequency values with Hz/kHz
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// DecibelFormatter formats dB values. -60 dB and below is shown as silence.
func DecibelFormatter(db float64) string {
	if db <= -60 {
		return "-inf dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// PercentFormatter formats percentage values
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// TimeFormatter formats milliseconds with ms or s
func TimeFormatter(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.1f ms", ms)
	}
	return fmt.Sprintf("%.2f s", ms/1000)
}

// PanFormatter formats a -100..100 pan position the way the channel rack
// does.
func PanFormatter(pan float64) string {
	switch {
	case math.Abs(pan) < 0.5:
		return "Centered"
	case pan < 0:
		return fmt.Sprintf("%.0f%% left", -pan)
	default:
		return fmt.Sprintf("%.0f%% right", pan)
	}
}

// NoteFormatter formats MIDI note numbers, C5 being 60 as in FL Studio.
func NoteFormatter(noteNumber float64) string {
	n := math.Round(noteNumber)
	if n < 0 {
		n = 0
	} else if n > 127 {
		n = 127
	}
	return midi.NoteNumberToName(uint8(n))
}

// OnOffFormatter formats boolean as On/Off
func OnOffFormatter(value float64) string {
	if value > 0.5 {
		return "On"
	}
	return "Off"
}
