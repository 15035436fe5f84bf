package fl

import (
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// Memory allocates memory the host is allowed to read after the call that
// received it returns. Go memory must never be handed to the host as an
// integer, so every pointer that travels inside a Message comes from here.
type Memory interface {
	// Alloc returns size zeroed bytes.
	Alloc(size int) unsafe.Pointer
	Free(p unsafe.Pointer)
}

// Pointer converts an intptr_t payload into a pointer.
func Pointer(v int) unsafe.Pointer {
	return unsafe.Pointer(uintptr(v))
}

// Addr converts a pointer into an intptr_t payload.
func Addr(p unsafe.Pointer) int {
	return int(uintptr(p))
}

// CString copies s into a NUL-terminated buffer from mem. Bytes after an
// embedded NUL are dropped.
func CString(mem Memory, s string) unsafe.Pointer {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			s = s[:i]
			break
		}
	}
	p := mem.Alloc(len(s) + 1)
	buf := unsafe.Slice((*byte)(p), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return p
}

// GoString reads a NUL-terminated string. A nil pointer yields "".
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// GoStringN reads at most limit bytes of a NUL-terminated string.
func GoStringN(p unsafe.Pointer, limit int) string {
	if p == nil {
		return ""
	}
	n := 0
	for n < limit && *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// GoWideString reads a NUL-terminated UTF-16 string (PWideChar).
func GoWideString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	var units []uint16
	for i := 0; ; i++ {
		u := *(*uint16)(unsafe.Add(p, i*2))
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

// CopyCString writes s into the size-byte buffer at dst, truncating so the
// terminating NUL always fits. Truncation never splits a UTF-8 sequence.
func CopyCString(dst unsafe.Pointer, size int, s string) {
	if dst == nil || size <= 0 {
		return
	}
	if len(s) > size-1 {
		cut := size - 1
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	buf := unsafe.Slice((*byte)(dst), size)
	n := copy(buf[:size-1], s)
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			n = i
			break
		}
	}
	buf[n] = 0
}

// Alloc allocates a zeroed T from mem.
func Alloc[T any](mem Memory) *T {
	var zero T
	return (*T)(mem.Alloc(int(unsafe.Sizeof(zero))))
}
