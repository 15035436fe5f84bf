package debug

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Profiler records how long named sections take.
type Profiler struct {
	mu           sync.RWMutex
	measurements map[string]*Measurement
	enabled      atomic.Bool
	maxSamples   int
}

// Measurement holds timing statistics for a profiled section.
type Measurement struct {
	Count     uint64
	Total     time.Duration
	Min       time.Duration
	Max       time.Duration
	Last      time.Duration
	samples   []time.Duration
	sampleIdx int
}

// DefaultProfiler is the global profiler instance.
var DefaultProfiler = NewProfiler(1000)

// NewProfiler creates a profiler keeping the last maxSamples timings of each
// section for percentiles.
func NewProfiler(maxSamples int) *Profiler {
	if maxSamples < 1 {
		maxSamples = 1
	}
	p := &Profiler{
		measurements: make(map[string]*Measurement),
		maxSamples:   maxSamples,
	}
	p.enabled.Store(true)
	return p
}

// SetEnabled enables or disables profiling.
func (p *Profiler) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

// IsEnabled returns whether profiling is enabled.
func (p *Profiler) IsEnabled() bool {
	return p.enabled.Load()
}

// Start begins timing a named section. Call the returned function to stop.
func (p *Profiler) Start(name string) func() {
	if !p.enabled.Load() {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.Record(name, time.Since(start))
	}
}

// Time measures the execution time of a function.
func (p *Profiler) Time(name string, fn func()) {
	stop := p.Start(name)
	defer stop()
	fn()
}

// Record adds a timing for name.
func (p *Profiler) Record(name string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.measurements[name]
	if !ok {
		m = &Measurement{
			Min:     elapsed,
			Max:     elapsed,
			samples: make([]time.Duration, 0, p.maxSamples),
		}
		p.measurements[name] = m
	}

	m.Count++
	m.Total += elapsed
	m.Last = elapsed
	if elapsed < m.Min {
		m.Min = elapsed
	}
	if elapsed > m.Max {
		m.Max = elapsed
	}

	if len(m.samples) < p.maxSamples {
		m.samples = append(m.samples, elapsed)
	} else {
		m.samples[m.sampleIdx] = elapsed
	}
	m.sampleIdx = (m.sampleIdx + 1) % p.maxSamples
}

// Measurement returns a copy of the measurement for name.
func (p *Profiler) Measurement(name string) (Measurement, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, ok := p.measurements[name]
	if !ok {
		return Measurement{}, false
	}
	c := *m
	c.samples = append([]time.Duration(nil), m.samples...)
	return c, true
}

// Reset clears all measurements.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.measurements = make(map[string]*Measurement)
}

// Report formats every measurement, sorted by name.
func (p *Profiler) Report() string {
	p.mu.RLock()
	names := make([]string, 0, len(p.measurements))
	for name := range p.measurements {
		names = append(names, name)
	}
	p.mu.RUnlock()

	if len(names) == 0 {
		return "No measurements recorded"
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		m, _ := p.Measurement(name)
		fmt.Fprintf(&sb, "%s: count=%d avg=%v min=%v max=%v p99=%v\n",
			name, m.Count, m.Average(), m.Min, m.Max, m.Percentile(99))
	}
	return sb.String()
}

// Average returns the average time for this measurement.
func (m Measurement) Average() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.Total / time.Duration(m.Count)
}

// Percentile returns the p-th percentile of the recent samples.
func (m Measurement) Percentile(p float64) time.Duration {
	if len(m.samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), m.samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	index := int(float64(len(sorted)-1) * p / 100.0)
	return sorted[index]
}

// RenderProfiler measures Eff_Render/Gen_Render calls against the time the
// rendered frames last at the host's sample rate.
type RenderProfiler struct {
	*Profiler
	sampleRate atomic.Uint64 // float64 bits
	load       atomic.Uint64 // percent * 100 of the last call
}

// RenderSection is the Profiler section RenderProfiler records into.
const RenderSection = "Render"

// NewRenderProfiler creates a render profiler. FL Studio defaults to 44100 Hz
// until it sends FPD_SetSampleRate.
func NewRenderProfiler() *RenderProfiler {
	r := &RenderProfiler{Profiler: NewProfiler(1000)}
	r.SetSampleRate(44100)
	return r
}

// SetSampleRate sets the rate the frames are played at.
func (r *RenderProfiler) SetSampleRate(rate float64) {
	r.sampleRate.Store(uint64(rate * 1000))
}

// SampleRate returns the sample rate in Hz.
func (r *RenderProfiler) SampleRate() float64 {
	return float64(r.sampleRate.Load()) / 1000
}

// Measure times fn rendering frames frames.
func (r *RenderProfiler) Measure(frames int, fn func()) {
	if !r.IsEnabled() || frames <= 0 {
		fn()
		return
	}
	start := time.Now()
	fn()
	r.record(frames, time.Since(start))
}

func (r *RenderProfiler) record(frames int, elapsed time.Duration) {
	r.Record(RenderSection, elapsed)
	budget := float64(frames) / r.SampleRate() * float64(time.Second)
	r.load.Store(uint64(float64(elapsed) / budget * 100 * 100))
}

// Load returns the last render time as a percentage of its real-time budget.
func (r *RenderProfiler) Load() float64 {
	return float64(r.load.Load()) / 100.0
}

// RenderReport is Report with the sample rate and load.
func (r *RenderProfiler) RenderReport() string {
	return fmt.Sprintf("%ssample rate: %.0f Hz, load: %.2f%%\n", r.Report(), r.SampleRate(), r.Load())
}

// Global profiling functions

// Start begins timing a named section using the default profiler.
func Start(name string) func() {
	return DefaultProfiler.Start(name)
}

// Time measures the execution time of a function using the default profiler.
func Time(name string, fn func()) {
	DefaultProfiler.Time(name, fn)
}

// ProfilingReport returns a performance report from the default profiler.
func ProfilingReport() string {
	return DefaultProfiler.Report()
}
