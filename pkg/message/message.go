// Package message holds the typed requests a plugin sends to the host through
// TFruityPlugHost.Dispatcher (FHD_*).
//
// A request encodes itself into an fl.Message, allocating whatever the host
// needs to read from an Arena, and decodes the host's answer. The arena is
// released once the synchronous call has returned, so decoders copy any data
// they want to keep.
package message

import (
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Request is a plugin to host message with a result of type R.
type Request[R any] interface {
	Encode(a *Arena) fl.Message
	Decode(sent fl.Message, result int) R
}

// Arena records the allocations made while encoding one request.
type Arena struct {
	mem   fl.Memory
	owned []unsafe.Pointer
}

// NewArena creates an arena allocating from mem.
func NewArena(mem fl.Memory) *Arena {
	return &Arena{mem: mem}
}

// Alloc implements fl.Memory.
func (a *Arena) Alloc(size int) unsafe.Pointer {
	p := a.mem.Alloc(size)
	a.owned = append(a.owned, p)
	return p
}

// Free implements fl.Memory. Pointers not owned by the arena are ignored.
func (a *Arena) Free(p unsafe.Pointer) {
	for i, o := range a.owned {
		if o == p {
			a.owned = append(a.owned[:i], a.owned[i+1:]...)
			a.mem.Free(p)
			return
		}
	}
}

// String allocates s as a C string and returns its address.
func (a *Arena) String(s string) int {
	return fl.Addr(fl.CString(a, s))
}

// Len returns the number of live allocations.
func (a *Arena) Len() int { return len(a.owned) }

// Release frees everything the arena allocated.
func (a *Arena) Release() {
	for _, p := range a.owned {
		a.mem.Free(p)
	}
	a.owned = nil
}

// noResult is embedded by requests the host does not answer.
type noResult struct{}

func (noResult) Decode(fl.Message, int) struct{} { return struct{}{} }

// stringResult decodes a PChar answer.
type stringResult struct{}

func (stringResult) Decode(_ fl.Message, result int) string {
	return fl.GoString(fl.Pointer(result))
}

// intResult decodes an integer answer.
type intResult struct{}

func (intResult) Decode(_ fl.Message, result int) int { return result }

func dwordFromNoteAndChannel(note, channel uint8) int {
	return int(uint32(note) | uint32(channel)<<16)
}

func msg(id, index, value int) fl.Message {
	return fl.Message{ID: id, Index: index, Value: value}
}
