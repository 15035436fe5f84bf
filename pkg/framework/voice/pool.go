// Package voice provides a fixed-size voice pool for generators.
//
// The host allocates notes: it calls TriggerVoice once per note and tells
// the plugin when to release and kill it. The pool maps those calls onto a
// fixed set of synthesis voices and steals one when they are all busy.
package voice

import (
	"sync"

	flvoice "github.com/justyntemme/flsdk/pkg/voice"
)

// StealingMode defines how voices are stolen when all are in use
type StealingMode int

const (
	// StealOldest steals the oldest playing voice
	StealOldest StealingMode = iota
	// StealQuietest steals the voice with lowest amplitude
	StealQuietest
	// StealHighest steals the highest pitched voice
	StealHighest
	// StealLowest steals the lowest pitched voice
	StealLowest
	// StealNone doesn't steal: new notes are ignored when full
	StealNone
)

// Voice is a single synthesis voice.
type Voice interface {
	// Start begins a note. Params.InitLevels holds the note's initial
	// levels; FinalLevels is updated by the host while the note plays.
	Start(params *flvoice.Params)
	// Release enters the release stage.
	Release()
	// Stop silences the voice immediately.
	Stop()
	// IsActive returns true while the voice produces sound, including
	// its release tail.
	IsActive() bool
	// Amplitude is the current output level, used by StealQuietest.
	Amplitude() float64
	// Render adds the voice's output to out.
	Render(out [][2]float32)
}

// Retriggerer is implemented by voices that can restart a releasing note
// (FPV_Retrigger, used in monophonic mode).
type Retriggerer interface {
	Retrigger()
}

type slot struct {
	voice  Voice
	tag    flvoice.Tag
	params flvoice.Params
	used   bool
	done   bool
	age    uint64
}

// Pool manages a fixed set of voices and implements voice.Handler.
//
// Pool methods are safe for concurrent use: the host triggers voices from
// the GUI thread and renders them from the mixer thread.
type Pool struct {
	mu           sync.Mutex
	slots        []slot
	tags         map[flvoice.Tag]int
	stealingMode StealingMode
	maxVoices    int
	counter      uint64
	onFinished   func(tag flvoice.Tag)
}

var _ flvoice.Handler = (*Pool)(nil)

// NewPool creates a pool over voices.
func NewPool(voices []Voice) *Pool {
	p := &Pool{
		slots:     make([]slot, len(voices)),
		tags:      make(map[flvoice.Tag]int),
		maxVoices: len(voices),
	}
	for i, v := range voices {
		p.slots[i].voice = v
	}
	return p
}

// SetStealingMode sets the voice stealing mode
func (p *Pool) SetStealingMode(mode StealingMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stealingMode = mode
}

// SetMaxVoices limits the number of voices in use, between 1 and the pool
// size.
func (p *Pool) SetMaxVoices(max int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if max > len(p.slots) {
		max = len(p.slots)
	}
	if max < 1 {
		max = 1
	}
	p.maxVoices = max
}

// OnFinished sets the function called, outside the pool lock, for each
// voice whose release tail has ended in Render and for each sounding voice
// stolen by Trigger. Generators use it to tell the host to kill the voice.
func (p *Pool) OnFinished(fn func(tag flvoice.Tag)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFinished = fn
}

type handle flvoice.Tag

func (h handle) Tag() flvoice.Tag { return flvoice.Tag(h) }

// Trigger starts a voice for tag, stealing one if needed. It returns nil
// when no voice could be found. The tag of a stolen voice that was still
// sounding is reported through OnFinished, outside the pool lock, so the
// host can drop it.
func (p *Pool) Trigger(params flvoice.Params, tag flvoice.Tag) flvoice.Voice {
	v, stolen, ok := p.trigger(params, tag)
	if ok {
		if fn := p.finishedFunc(); fn != nil {
			fn(stolen)
		}
	}
	return v
}

func (p *Pool) trigger(params flvoice.Params, tag flvoice.Tag) (v flvoice.Voice, stolen flvoice.Tag, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if old, found := p.tags[tag]; found {
		p.slots[old].voice.Stop()
		p.free(old)
	}

	i := p.findFree()
	if i < 0 {
		i = p.steal()
		if i < 0 {
			return nil, 0, false
		}
		victim := &p.slots[i]
		if !victim.done {
			stolen, ok = victim.tag, true
		}
		victim.voice.Stop()
		p.free(i)
	}

	p.counter++
	s := &p.slots[i]
	s.tag = tag
	s.params = params
	s.used = true
	s.age = p.counter
	p.tags[tag] = i
	s.voice.Start(&s.params)
	return handle(tag), stolen, ok
}

func (p *Pool) finishedFunc() func(tag flvoice.Tag) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.onFinished
}

// Release releases the voice playing tag. Unknown tags are ignored.
func (p *Pool) Release(tag flvoice.Tag) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i, ok := p.tags[tag]; ok {
		p.slots[i].voice.Release()
	}
}

// Kill stops the voice playing tag and frees its slot.
func (p *Pool) Kill(tag flvoice.Tag) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i, ok := p.tags[tag]; ok {
		p.slots[i].voice.Stop()
		p.free(i)
	}
}

// OnEvent handles FPV_Retrigger for voices implementing Retriggerer and
// answers 1 when the voice was retriggered.
func (p *Pool) OnEvent(tag flvoice.Tag, event flvoice.Event) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	i, ok := p.tags[tag]
	if !ok || event != flvoice.EventRetrigger {
		return 0
	}
	if r, ok := p.slots[i].voice.(Retriggerer); ok {
		r.Retrigger()
		return 1
	}
	return 0
}

// SetLevels updates the final levels of the voice playing tag, as the host
// does while a note plays.
func (p *Pool) SetLevels(tag flvoice.Tag, levels flvoice.LevelParams) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i, ok := p.tags[tag]; ok {
		p.slots[i].params.FinalLevels = levels
	}
}

// Render adds every active voice to out. Voices that went silent are
// reported through OnFinished once; their slots stay reserved until Kill.
func (p *Pool) Render(out [][2]float32) {
	var finished []flvoice.Tag

	p.mu.Lock()
	for i := range p.slots {
		s := &p.slots[i]
		if !s.used {
			continue
		}
		if s.voice.IsActive() {
			s.voice.Render(out)
		}
		if !s.done && !s.voice.IsActive() {
			s.done = true
			finished = append(finished, s.tag)
		}
	}
	fn := p.onFinished
	p.mu.Unlock()

	if fn != nil {
		for _, tag := range finished {
			fn(tag)
		}
	}
}

// ActiveCount returns the number of slots in use.
func (p *Pool) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tags)
}

// Reset stops every voice.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.slots {
		if p.slots[i].used {
			p.slots[i].voice.Stop()
			p.free(i)
		}
	}
}

func (p *Pool) free(i int) {
	s := &p.slots[i]
	if s.used {
		delete(p.tags, s.tag)
	}
	*s = slot{voice: s.voice}
}

func (p *Pool) findFree() int {
	if len(p.tags) >= p.maxVoices {
		return -1
	}
	for i := range p.slots[:p.maxVoices] {
		if !p.slots[i].used {
			return i
		}
	}
	return -1
}

// steal picks the slot to reuse. Voices that already went silent are taken
// first whatever the mode.
func (p *Pool) steal() int {
	if p.stealingMode == StealNone {
		return -1
	}
	best := -1
	for i := range p.slots[:p.maxVoices] {
		s := &p.slots[i]
		if !s.used {
			continue
		}
		if !s.voice.IsActive() {
			return i
		}
		if best < 0 {
			best = i
			continue
		}
		b := &p.slots[best]
		switch p.stealingMode {
		case StealQuietest:
			if s.voice.Amplitude() < b.voice.Amplitude() {
				best = i
			}
		case StealHighest:
			if s.params.InitLevels.Pitch > b.params.InitLevels.Pitch {
				best = i
			}
		case StealLowest:
			if s.params.InitLevels.Pitch < b.params.InitLevels.Pitch {
				best = i
			}
		default:
			if s.age < b.age {
				best = i
			}
		}
	}
	return best
}
