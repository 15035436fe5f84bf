package plugin

import (
	"io"
	"sync"
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/framework/debug"
	"github.com/justyntemme/flsdk/pkg/host"
	"github.com/justyntemme/flsdk/pkg/voice"
)

// NameBufferSize is the size of the buffer TFruityPlug.GetName writes into,
// terminator included.
const NameBufferSize = 256

// Adapter drives one plugin instance on behalf of the C bridge. Methods
// mirror the TFruityPlug virtuals and take raw values.
type Adapter struct {
	plugin Plugin
	host   *host.Host
	tag    fl.Tag
	mem    fl.Memory
	info   Info
	log    *debug.Entry

	events     EventProcessor
	params     ParamProcessor
	idler      Idler
	ticker     Ticker
	midiTicker MidiTicker
	renderer   Renderer
	midi       MidiReceiver
	loop       LoopReceiver
	voices     voice.Handler
	outVoices  voice.OutputHandler
	table      *voice.Table

	profiler *debug.RenderProfiler
	monitor  *debug.OutputMonitor

	// Dispatcher runs on the GUI thread and ProcessParam on the mixer
	// thread. Each keeps its own last answer.
	dispatchAnswer answerSlot
	paramAnswer    answerSlot
}

// answerSlot holds the memory behind the last answer of one entry point
// until the next answer of that entry point.
type answerSlot struct {
	mu sync.Mutex
	p  unsafe.Pointer
}

// swap stores p and returns the pointer it replaces.
func (s *answerSlot) swap(p unsafe.Pointer) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.p
	s.p = p
	return prev
}

// NewAdapter wraps p. The optional interfaces p implements are resolved here.
func NewAdapter(p Plugin, h *host.Host, tag fl.Tag) *Adapter {
	a := &Adapter{
		plugin: p,
		host:   h,
		tag:    tag,
		mem:    h.Memory(),
		info:   p.Info(),
		table:  voice.NewTable(),
	}
	a.log = debug.WithFields(debug.Fields{"tag": int(tag), "name": a.info.ShortName})

	cfg := CurrentConfig()
	if cfg.Profile {
		a.profiler = debug.NewRenderProfiler()
	}
	if cfg.CheckOutput {
		a.monitor = debug.NewOutputMonitor()
	}

	a.events, _ = p.(EventProcessor)
	a.params, _ = p.(ParamProcessor)
	a.idler, _ = p.(Idler)
	a.ticker, _ = p.(Ticker)
	a.midiTicker, _ = p.(MidiTicker)
	a.renderer, _ = p.(Renderer)
	a.midi, _ = p.(MidiReceiver)
	a.loop, _ = p.(LoopReceiver)
	if vp, ok := p.(VoiceHandlerProvider); ok {
		a.voices = vp.VoiceHandler()
		a.outVoices, _ = a.voices.(voice.OutputHandler)
	}
	return a
}

// Info returns the Info read when the instance was created.
func (a *Adapter) Info() Info { return a.info }

// Plugin returns the wrapped plugin.
func (a *Adapter) Plugin() Plugin { return a.plugin }

// Host returns the host the instance talks to.
func (a *Adapter) Host() *host.Host { return a.host }

// Tag returns the instance tag.
func (a *Adapter) Tag() fl.Tag { return a.tag }

// Dispatch handles TFruityPlug.Dispatcher.
func (a *Adapter) Dispatch(m fl.Message) int {
	msg := host.DecodeMessage(m)
	a.log.Debug("dispatch %T %v", msg, m)
	if sr, ok := msg.(host.SetSampleRate); ok && a.profiler != nil && sr.Rate > 0 {
		a.profiler.SetSampleRate(float64(sr.Rate))
	}
	return a.reply(&a.dispatchAnswer, a.plugin.OnMessage(msg))
}

// reply encodes v into slot. Memory behind the previous answer of the same
// slot is released: the host copies answers before calling that entry point
// again.
func (a *Adapter) reply(slot *answerSlot, v fl.Value) int {
	if v == nil {
		v = fl.Zero
	}
	raw, owned := v.Encode(a.mem)
	if prev := slot.swap(owned); prev != nil {
		a.mem.Free(prev)
	}
	return raw
}

// Profiler returns the render profiler, or nil when Config.Profile was off
// when the instance was created.
func (a *Adapter) Profiler() *debug.RenderProfiler { return a.profiler }

// Name handles TFruityPlug.GetName.
func (a *Adapter) Name(m fl.Message) string {
	return a.plugin.NameOf(host.DecodeGetName(m))
}

// WriteName writes the answer to GetName into dst, a buffer of
// NameBufferSize bytes. Longer names are truncated.
func (a *Adapter) WriteName(m fl.Message, dst unsafe.Pointer) {
	fl.CopyCString(dst, NameBufferSize, a.Name(m))
}

// ProcessEvent handles TFruityPlug.ProcessEvent. The result is always 0.
func (a *Adapter) ProcessEvent(m fl.Message) int {
	if a.events != nil {
		a.events.ProcessEvent(host.DecodeEvent(m))
	}
	return 0
}

// ProcessParam handles TFruityPlug.ProcessParam carried as (Index, Value,
// RECFlags).
func (a *Adapter) ProcessParam(m fl.Message) int {
	if a.params == nil {
		return 0
	}
	return a.reply(&a.paramAnswer, a.params.ProcessParam(m.ID, m.Index, fl.ProcessParamFlags(m.Value)))
}

// Idle handles TFruityPlug.Idle_Public. Output problems found while
// rendering are logged here.
func (a *Adapter) Idle() {
	if a.monitor != nil {
		a.monitor.Flush(a.log)
	}
	if a.idler != nil {
		a.idler.Idle()
	}
}

func (a *Adapter) Tick() {
	if a.ticker != nil {
		a.ticker.Tick()
	}
}

func (a *Adapter) MidiTick() {
	if a.midiTicker != nil {
		a.midiTicker.MidiTick()
	}
}

// LoopIn handles TFruityPlug.MsgIn.
func (a *Adapter) LoopIn(msg int) {
	if a.loop != nil {
		a.loop.LoopIn(msg)
	}
}

// SaveState handles SaveRestoreState with Save set.
func (a *Adapter) SaveState(s Stream) {
	a.plugin.SaveState(NewStateWriter(s))
}

// LoadState handles SaveRestoreState with Save cleared.
func (a *Adapter) LoadState(s Stream) {
	a.plugin.LoadState(NewStateReader(s))
}

// Destroy releases what the adapter still holds. Plugins implementing
// io.Closer are closed.
func (a *Adapter) Destroy() {
	for _, slot := range []*answerSlot{&a.dispatchAnswer, &a.paramAnswer} {
		if prev := slot.swap(nil); prev != nil {
			a.mem.Free(prev)
		}
	}

	if a.monitor != nil {
		a.monitor.Flush(a.log)
	}
	if a.profiler != nil {
		a.log.Info("render profile\n%s", a.profiler.RenderReport())
	}

	if c, ok := a.plugin.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.log.Warn("close failed: %v", err)
		}
	}
}
