// Package host is the plugin's view of FL Studio: typed calls into the
// TFruityPlugHost object and decoding of what the host sends back.
package host

import (
	"fmt"
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/message"
)

// Host wraps a Backend. It is shared by every instance of a plugin module and
// is safe for concurrent use as long as the Backend is.
type Host struct {
	backend   Backend
	mem       fl.Memory
	voicer    *Voicer
	outVoicer *OutVoicer
}

// New creates a Host. mem allocates everything the host reads.
func New(backend Backend, mem fl.Memory) *Host {
	return &Host{
		backend:   backend,
		mem:       mem,
		voicer:    &Voicer{backend: backend},
		outVoicer: newOutVoicer(backend, mem),
	}
}

// Backend returns the underlying backend.
func (h *Host) Backend() Backend { return h.backend }

// Memory returns the allocator shared with the bridge.
func (h *Host) Memory() fl.Memory { return h.mem }

// Version returns the FL Studio version, 1.2.3 being 1002003.
func (h *Host) Version() int { return h.backend.Version() }

// VersionString formats Version as major.minor.build.
func (h *Host) VersionString() string {
	v := h.Version()
	return fmt.Sprintf("%d.%d.%d", v/1000000, v/1000%1000, v%1000)
}

// Send dispatches a request to the host and decodes the answer. Memory the
// request allocated is released before Send returns.
func Send[R any](h *Host, tag fl.Tag, req message.Request[R]) R {
	arena := message.NewArena(h.mem)
	defer arena.Release()

	sent := req.Encode(arena)
	result := h.backend.Dispatcher(tag, sent)
	return req.Decode(sent, result)
}

// OnParameter notifies the host that parameter index changed to value. Call
// it whenever the plugin itself changes a parameter so it can be recorded.
func (h *Host) OnParameter(tag fl.Tag, index, value int) {
	h.backend.OnParamChanged(tag, index, value)
}

// OnController notifies the host that internal controller index changed.
func (h *Host) OnController(tag fl.Tag, index, value int) {
	h.backend.OnControllerChanged(tag, index, value)
}

// OnHint shows a hint. A leading "^a".."^j" adds an icon, e.g. "^a" for a
// parameter that can be linked to a MIDI controller.
func (h *Host) OnHint(tag fl.Tag, text string) {
	p := fl.CString(h.mem, text)
	defer h.mem.Free(p)
	h.backend.OnHint(tag, p)
}

// MidiOut sends a MIDI message immediately. The plugin needs the MIDIOut flag
// and must send message.ActivateMidi first.
func (h *Host) MidiOut(tag fl.Tag, msg fl.MidiMessage) {
	h.backend.MIDIOut(tag, msg.Packed())
}

// MidiOutDelayed sends a MIDI message when the MIDI tick reaches the current
// mixer tick.
func (h *Host) MidiOutDelayed(tag fl.Tag, msg fl.MidiMessage) {
	h.backend.MIDIOutDelayed(tag, msg.Packed())
}

// LoopOut asks for msg to be dispatched back to the plugin (MsgIn) when the
// current mixing tick is played. It is sent immediately when it can't be
// buffered.
func (h *Host) LoopOut(tag fl.Tag, msg int) {
	h.backend.PlugMsgDelayed(tag, msg)
}

// LoopKill removes a message scheduled with LoopOut.
func (h *Host) LoopKill(tag fl.Tag, msg int) {
	h.backend.PlugMsgKill(tag, msg)
}

// LockMix stops voice creation and rendering until UnlockMix.
func (h *Host) LockMix() { h.backend.LockMix() }

// UnlockMix releases LockMix.
func (h *Host) UnlockMix() { h.backend.UnlockMix() }

// LockPlugin is a slower alternative to LockMix that doesn't freeze audio.
// GUI thread only.
func (h *Host) LockPlugin(tag fl.Tag) { h.backend.LockPlugin(tag) }

// UnlockPlugin releases LockPlugin.
func (h *Host) UnlockPlugin(tag fl.Tag) { h.backend.UnlockPlugin(tag) }

// SuspendOutput silences the plugin output. It must be paired with
// ResumeOutput.
func (h *Host) SuspendOutput() { h.backend.SuspendOutput() }

// ResumeOutput resumes output after SuspendOutput.
func (h *Host) ResumeOutput() { h.backend.ResumeOutput() }

// InBuffer returns input index (the first is 1) of a multi-input effect. ok
// is false when the input does not exist.
func (h *Host) InBuffer(tag fl.Tag, index int) (buf fl.IOBuffer, ok bool) {
	return h.ioBuffer(tag, index, h.backend.GetInBuffer)
}

// OutBuffer returns output index (the first is 1) of a multi-output effect.
func (h *Host) OutBuffer(tag fl.Tag, index int) (buf fl.IOBuffer, ok bool) {
	return h.ioBuffer(tag, index, h.backend.GetOutBuffer)
}

func (h *Host) ioBuffer(tag fl.Tag, index int, get func(fl.Tag, int, unsafe.Pointer) bool) (fl.IOBuffer, bool) {
	p := h.mem.Alloc(fl.IOBufferSize)
	defer h.mem.Free(p)
	if !get(tag, index, p) {
		return fl.IOBuffer{}, false
	}
	return fl.IOBufferAt(p), true
}

// InsertBuffer returns the buffer of the insert track at offset relative to
// the plugin's track, or nil.
func (h *Host) InsertBuffer(tag fl.Tag, offset int, length int) [][2]float32 {
	return fl.FramesAt(h.backend.GetInsBuffer(tag, offset), length)
}

// MixBuffer returns mixer track buffer at offset (0 = master), or nil.
func (h *Host) MixBuffer(offset int, length int) [][2]float32 {
	return fl.FramesAt(h.backend.GetMixBuffer(offset), length)
}

// SendBuffer returns send buffer num, or nil.
func (h *Host) SendBuffer(num int, length int) [][2]float32 {
	return fl.FramesAt(h.backend.GetSendBuffer(num), length)
}

// Voicer returns the handler for voices the host owns.
func (h *Host) Voicer() *Voicer { return h.voicer }

// OutVoicer returns the handler for output voices.
func (h *Host) OutVoicer() *OutVoicer { return h.outVoicer }

// Prompt starts building a text prompt.
func (h *Host) Prompt() *PromptBuilder {
	return &PromptBuilder{host: h, x: -1, y: -1}
}
