package midi

import (
	"sync/atomic"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Queue is a single-producer single-consumer ring of MIDI messages. MIDIIn
// pushes from the host's MIDI thread and the render thread pops, without
// locks or allocation.
type Queue struct {
	buf  []fl.MidiMessage
	mask uint64
	head atomic.Uint64 // next read
	tail atomic.Uint64 // next write
}

// NewQueue creates a queue holding at least capacity messages. The capacity
// is rounded up to a power of two.
func NewQueue(capacity int) *Queue {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &Queue{
		buf:  make([]fl.MidiMessage, size),
		mask: uint64(size - 1),
	}
}

// Push appends m. It returns false, dropping m, when the queue is full.
func (q *Queue) Push(m fl.MidiMessage) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() == uint64(len(q.buf)) {
		return false
	}
	q.buf[tail&q.mask] = m
	q.tail.Store(tail + 1)
	return true
}

// Pop removes the oldest message.
func (q *Queue) Pop() (fl.MidiMessage, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return fl.MidiMessage{}, false
	}
	m := q.buf[head&q.mask]
	q.head.Store(head + 1)
	return m, true
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return len(q.buf)
}

type EventProcessor interface {
	ProcessEvent(event Event)
}

// Drain decodes every queued message into p and returns how many were
// processed. Only the consumer may call it.
func (q *Queue) Drain(p EventProcessor) int {
	n := 0
	for {
		m, ok := q.Pop()
		if !ok {
			return n
		}
		p.ProcessEvent(Decode(m))
		n++
	}
}
