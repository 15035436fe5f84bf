// Package fltest provides in-process fakes for testing code built on pkg/fl
// without cgo.
package fltest

import (
	"sync"
	"unsafe"
)

// Memory is a fl.Memory backed by Go slices that stay referenced until Free,
// so addresses handed out as integers remain valid.
type Memory struct {
	mu     sync.Mutex
	blocks map[uintptr][]byte
	allocs int
	frees  int
}

// NewMemory creates an empty allocator.
func NewMemory() *Memory {
	return &Memory{blocks: make(map[uintptr][]byte)}
}

func (m *Memory) Alloc(size int) unsafe.Pointer {
	if size < 1 {
		size = 1
	}
	buf := make([]byte, size)
	p := unsafe.Pointer(&buf[0])
	m.mu.Lock()
	m.blocks[uintptr(p)] = buf
	m.allocs++
	m.mu.Unlock()
	return p
}

func (m *Memory) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blocks[uintptr(p)]; ok {
		delete(m.blocks, uintptr(p))
		m.frees++
	}
}

// Live returns the number of blocks not yet freed.
func (m *Memory) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blocks)
}

// Allocs returns the total number of allocations.
func (m *Memory) Allocs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocs
}

// Owns reports whether p is a live block.
func (m *Memory) Owns(p unsafe.Pointer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blocks[uintptr(p)]
	return ok
}
