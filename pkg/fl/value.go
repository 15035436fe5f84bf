package fl

import (
	"math"
	"unsafe"
)

// Value is a plugin answer to the host, encoded into an intptr_t.
//
// Encode returns the raw value and, when the answer points into memory
// allocated from mem, that allocation. The caller keeps the allocation alive
// until the host can no longer read it.
type Value interface {
	Encode(mem Memory) (raw int, owned unsafe.Pointer)
}

// Int is an integer answer.
type Int int

func (v Int) Encode(Memory) (int, unsafe.Pointer) { return int(v), nil }

// Bool answers 1 or 0.
type Bool bool

func (v Bool) Encode(Memory) (int, unsafe.Pointer) {
	if v {
		return 1, nil
	}
	return 0, nil
}

// Float answers the bit pattern of a float32.
type Float float32

func (v Float) Encode(Memory) (int, unsafe.Pointer) {
	return FloatBits(float32(v)), nil
}

// String answers a PChar.
type String string

func (v String) Encode(mem Memory) (int, unsafe.Pointer) {
	p := CString(mem, string(v))
	return Addr(p), p
}

// Ptr answers a raw address the plugin owns.
type Ptr uintptr

func (v Ptr) Encode(Memory) (int, unsafe.Pointer) { return int(v), nil }

// Zero is the neutral answer.
var Zero Value = Int(0)

// FloatBits packs a float32 the way the host typecasts FLOAT values.
func FloatBits(f float32) int {
	return int(int32(math.Float32bits(f)))
}

// FloatFromBits unpacks a float32 sent inside an intptr_t.
func FloatFromBits(v int) float32 {
	return math.Float32frombits(uint32(int32(v)))
}

// Float64FromBits unpacks a float64 sent inside an intptr_t.
func Float64FromBits(v int) float64 {
	return math.Float64frombits(uint64(int64(v)))
}

// BoolValue converts a bool for Message.Value.
func BoolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
