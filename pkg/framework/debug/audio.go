package debug

import (
	"fmt"
	"math"
	"sync"
)

// AudioAnalyzer inspects rendered stereo frames.
type AudioAnalyzer struct {
	ClippingThreshold float32
	DCThreshold       float32
	SilenceThreshold  float32
}

// NewAudioAnalyzer creates a new audio analyzer with default settings.
func NewAudioAnalyzer() *AudioAnalyzer {
	return &AudioAnalyzer{
		ClippingThreshold: 0.99,
		DCThreshold:       0.01,
		SilenceThreshold:  0.0001,
	}
}

// AnalysisResult contains the results of audio buffer analysis. Both
// channels are pooled.
type AnalysisResult struct {
	Peak           float32
	RMS            float32
	DC             float32
	ClippedSamples int
	NaNCount       int
	Silent         bool
}

// Clipping reports whether any sample reached the clipping threshold.
func (r AnalysisResult) Clipping() bool { return r.ClippedSamples > 0 }

// Analyze measures frames. NaN and infinite samples are counted and left
// out of the other statistics.
func (a *AudioAnalyzer) Analyze(frames [][2]float32) AnalysisResult {
	var result AnalysisResult
	var sum, sumSquares float64
	n := 0

	for _, frame := range frames {
		for _, sample := range frame {
			f := float64(sample)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				result.NaNCount++
				continue
			}
			abs := float32(math.Abs(f))
			if abs > result.Peak {
				result.Peak = abs
			}
			if abs >= a.ClippingThreshold {
				result.ClippedSamples++
			}
			sum += f
			sumSquares += f * f
			n++
		}
	}

	if n > 0 {
		result.RMS = float32(math.Sqrt(sumSquares / float64(n)))
		result.DC = float32(sum / float64(n))
	}
	result.Silent = result.RMS < a.SilenceThreshold
	return result
}

// Check returns a description of every problem found in frames.
func (a *AudioAnalyzer) Check(frames [][2]float32, name string) []string {
	result := a.Analyze(frames)
	var issues []string

	if result.NaNCount > 0 {
		issues = append(issues, fmt.Sprintf("%s: contains %d NaN or infinite values", name, result.NaNCount))
	}
	if result.Peak > 1.0 {
		issues = append(issues, fmt.Sprintf("%s: peak exceeds 1.0 (%.3f)", name, result.Peak))
	} else if result.Clipping() {
		issues = append(issues, fmt.Sprintf("%s: clipping detected (%d samples)", name, result.ClippedSamples))
	}
	if math.Abs(float64(result.DC)) > float64(a.DCThreshold) {
		issues = append(issues, fmt.Sprintf("%s: DC offset detected (%.3f)", name, result.DC))
	}
	return issues
}

// maxPendingIssues bounds what an OutputMonitor holds between flushes.
const maxPendingIssues = 16

// OutputMonitor checks frames on the render thread and hands the problems
// it found to another thread for logging.
type OutputMonitor struct {
	analyzer *AudioAnalyzer

	mu      sync.Mutex
	pending []string
	dropped int
}

// NewOutputMonitor creates a monitor using the default analyzer settings.
func NewOutputMonitor() *OutputMonitor {
	return &OutputMonitor{analyzer: NewAudioAnalyzer()}
}

// Observe checks frames and keeps the problems found until Flush. It does
// no I/O.
func (m *OutputMonitor) Observe(frames [][2]float32, name string) {
	issues := m.analyzer.Check(frames, name)
	if len(issues) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, issue := range issues {
		if len(m.pending) >= maxPendingIssues {
			m.dropped++
			continue
		}
		m.pending = append(m.pending, issue)
	}
}

// Flush logs the kept problems as warnings on entry and returns how many
// were found since the last flush.
func (m *OutputMonitor) Flush(entry *Entry) int {
	m.mu.Lock()
	pending, dropped := m.pending, m.dropped
	m.pending, m.dropped = nil, 0
	m.mu.Unlock()

	for _, issue := range pending {
		entry.Warn("%s", issue)
	}
	if dropped > 0 {
		entry.Warn("%d more output problems not shown", dropped)
	}
	return len(pending) + dropped
}
