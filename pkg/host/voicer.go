package host

import (
	"sync"
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/framework/debug"
	"github.com/justyntemme/flsdk/pkg/voice"
)

// Voicer releases, kills and queries voices the host tracks for the plugin.
type Voicer struct {
	backend Backend
}

// Release tells the host that the voice should be silent (note off).
func (v *Voicer) Release(tag voice.Tag) {
	v.backend.VoiceRelease(int(tag))
}

// Kill tells the host that the voice can be freed. The host then asks the
// plugin to destroy it.
func (v *Voicer) Kill(tag voice.Tag) {
	v.backend.VoiceKill(int(tag), true)
}

// OnEvent sends a voice event to the host and returns its answer.
func (v *Voicer) OnEvent(tag voice.Tag, event voice.HostEvent) int {
	return v.backend.VoiceProcessEvent(int(tag), event.Message())
}

// OutVoice is an output voice triggered through the host, for example a VFX
// inside Patcher.
type OutVoice struct {
	tag      voice.Tag
	params   *voice.Params
	innerTag voice.Tag
}

// Tag is the tag the plugin gave the voice.
func (o *OutVoice) Tag() voice.Tag { return o.tag }

// InnerTag is the handle the host returned.
func (o *OutVoice) InnerTag() voice.Tag { return o.innerTag }

// Params returns the current parameters of the voice.
func (o *OutVoice) Params() voice.Params { return *o.params }

// SetParams updates the parameters the host reads for the voice.
func (o *OutVoice) SetParams(p voice.Params) { *o.params = p }

// OutVoicer triggers and tracks output voices.
type OutVoicer struct {
	backend Backend
	mem     fl.Memory

	mu     sync.Mutex
	voices map[voice.Tag]*OutVoice
}

func newOutVoicer(backend Backend, mem fl.Memory) *OutVoicer {
	return &OutVoicer{
		backend: backend,
		mem:     mem,
		voices:  make(map[voice.Tag]*OutVoice),
	}
}

// Trigger starts output voice index. It returns nil if the output has no
// destination.
func (o *OutVoicer) Trigger(params voice.Params, index int, tag voice.Tag) *OutVoice {
	p := fl.Alloc[voice.Params](o.mem)
	*p = params

	inner := o.backend.TriggerOutputVoice(unsafe.Pointer(p), index, int(tag))
	if inner == fl.VoiceHandleNull {
		o.mem.Free(unsafe.Pointer(p))
		debug.Debug("output voice %d has no destination", tag)
		return nil
	}

	ov := &OutVoice{tag: tag, params: p, innerTag: voice.Tag(inner)}
	o.mu.Lock()
	if old, ok := o.voices[tag]; ok {
		o.mem.Free(unsafe.Pointer(old.params))
	}
	o.voices[tag] = ov
	o.mu.Unlock()
	return ov
}

// Get returns the output voice with tag.
func (o *OutVoicer) Get(tag voice.Tag) (*OutVoice, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	ov, ok := o.voices[tag]
	return ov, ok
}

// Release releases the voice. Unknown tags are ignored.
func (o *OutVoicer) Release(tag voice.Tag) {
	if ov, ok := o.Get(tag); ok {
		o.backend.OutputVoiceRelease(int(ov.innerTag))
	}
}

// Kill kills the voice and frees its parameters. Unknown tags are ignored.
func (o *OutVoicer) Kill(tag voice.Tag) {
	ov, ok := o.remove(tag)
	if !ok {
		return
	}
	o.backend.OutputVoiceKill(int(ov.innerTag))
	o.mem.Free(unsafe.Pointer(ov.params))
}

// Forget drops a voice the host killed on its own (OutputVoice_Kill) and
// frees its parameters.
func (o *OutVoicer) Forget(tag voice.Tag) {
	if ov, ok := o.remove(tag); ok {
		o.mem.Free(unsafe.Pointer(ov.params))
	}
}

func (o *OutVoicer) remove(tag voice.Tag) (*OutVoice, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	ov, ok := o.voices[tag]
	delete(o.voices, tag)
	return ov, ok
}

// OnEvent sends a voice event for an output voice. ok is false for unknown
// tags.
func (o *OutVoicer) OnEvent(tag voice.Tag, event voice.HostEvent) (result int, ok bool) {
	ov, found := o.Get(tag)
	if !found {
		return 0, false
	}
	return o.backend.OutputVoiceProcessEvent(int(ov.innerTag), event.Message()), true
}

// Len returns the number of live output voices.
func (o *OutVoicer) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.voices)
}
