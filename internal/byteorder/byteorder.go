// Package byteorder provides the native byte order of the target platform as
// a build-time constant, along with generic byte-reversal and fixed-width
// encode/decode primitives covering all of Go's primitive integer kinds.
//
// Width dispatch happens on the size of the concrete type argument, which the
// compiler resolves per instantiation; there is no runtime detection of the
// platform byte order anywhere in this package.
package byteorder

import (
	"encoding/binary"
	"golang.org/x/exp/constraints"
	"golang.org/x/sys/cpu"
	"math/bits"
	"unsafe"
)

// IsBig reports whether the target platform stores multi-byte integers
// most-significant byte first. It is a constant resolved at build time, so
// branches on it cost nothing at runtime.
const IsBig = cpu.IsBigEndian

// Width returns the size of T in bytes.
func Width[T constraints.Integer]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Swap returns v with the order of its bytes reversed. Reversing a one-byte
// integer is the identity; there is no special case.
func Swap[T constraints.Integer](v T) T {
	switch unsafe.Sizeof(v) {
	case 1:
		return v
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	default:
		return T(bits.ReverseBytes64(uint64(v)))
	}
}

// Little decodes the first [Width] bytes of b as a little-endian integer.
// It panics if b is too short.
func Little[T constraints.Integer](b []byte) T {
	switch Width[T]() {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.LittleEndian.Uint16(b))
	case 4:
		return T(binary.LittleEndian.Uint32(b))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}

// Big decodes the first [Width] bytes of b as a big-endian integer.
// It panics if b is too short.
func Big[T constraints.Integer](b []byte) T {
	switch Width[T]() {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.BigEndian.Uint16(b))
	case 4:
		return T(binary.BigEndian.Uint32(b))
	default:
		return T(binary.BigEndian.Uint64(b))
	}
}

// PutLittle encodes v into the first [Width] bytes of b in little-endian
// order. It panics if b is too short.
func PutLittle[T constraints.Integer](b []byte, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, uint64(v))
	}
}

// PutBig encodes v into the first [Width] bytes of b in big-endian order.
// It panics if b is too short.
func PutBig[T constraints.Integer](b []byte, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(b, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(b, uint32(v))
	default:
		binary.BigEndian.PutUint64(b, uint64(v))
	}
}

// AppendLittle appends v to b in little-endian order and returns the extended
// slice.
func AppendLittle[T constraints.Integer](b []byte, v T) []byte {
	switch unsafe.Sizeof(v) {
	case 1:
		return append(b, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(b, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(b, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(b, uint64(v))
	}
}

// AppendBig appends v to b in big-endian order and returns the extended
// slice.
func AppendBig[T constraints.Integer](b []byte, v T) []byte {
	switch unsafe.Sizeof(v) {
	case 1:
		return append(b, byte(v))
	case 2:
		return binary.BigEndian.AppendUint16(b, uint16(v))
	case 4:
		return binary.BigEndian.AppendUint32(b, uint32(v))
	default:
		return binary.BigEndian.AppendUint64(b, uint64(v))
	}
}
