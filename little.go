package endian

import (
	"cmp"
	"fmt"
	"github.com/davejbax/go-endian/internal/byteorder"
	"github.com/lunixbochs/struc"
	"io"
)

// LittleEndian is an integer of underlying type T whose in-memory
// representation is guaranteed to be in little-endian byte order, regardless
// of the byte order of the platform. Its size and layout are identical to a
// bare T, so the raw bytes of a LittleEndian value are exactly the
// little-endian encoding of the integer it represents.
//
// The zero value represents zero. Values of the same instantiation are
// comparable with ==, and may be used as map keys.
type LittleEndian[T Integer] struct {
	bits T
}

// AsLittleEndian encodes a native-order integer as a [LittleEndian] value.
func AsLittleEndian[T Integer](value T) LittleEndian[T] {
	if byteorder.IsBig {
		value = byteorder.Swap(value)
	}

	return LittleEndian[T]{bits: value}
}

// LittleEndianFromBits wraps a bit pattern that is already in little-endian
// byte order, without transforming it. This is intended for values whose
// bytes were produced by -- or read straight out of -- a little-endian
// format.
//
// No validation is performed: it is the caller's responsibility to ensure
// that bits really is little-endian-ordered. Passing a native-order value on
// a big-endian platform silently yields a wrapper whose [LittleEndian.Native]
// result is byte-reversed. Use [AsLittleEndian] to encode a native value.
func LittleEndianFromBits[T Integer](bits T) LittleEndian[T] {
	return LittleEndian[T]{bits: bits}
}

// LittleEndianFromBytes wraps an integer whose little-endian encoding is held
// in the leading bytes of b. It panics if b is shorter than the width of T.
//
// As with [LittleEndianFromBits], the bytes are taken verbatim and are not
// validated.
func LittleEndianFromBytes[T Integer](b []byte) LittleEndian[T] {
	return AsLittleEndian(byteorder.Little[T](b))
}

// Native returns the value in the platform's native byte order. On
// little-endian platforms this is the identity; on big-endian platforms it
// reverses the stored bytes. The choice is made at build time, not at
// runtime.
func (v LittleEndian[T]) Native() T {
	if byteorder.IsBig {
		return byteorder.Swap(v.bits)
	}

	return v.bits
}

// Bits returns the stored bit pattern verbatim, i.e. the value as a
// little-endian-ordered T.
func (v LittleEndian[T]) Bits() T {
	return v.bits
}

// Big returns the same integer held in big-endian byte order. This reverses
// the stored bytes directly, which is equivalent to re-encoding the native
// value via [AsBigEndian].
func (v LittleEndian[T]) Big() BigEndian[T] {
	return BigEndian[T]{bits: byteorder.Swap(v.bits)}
}

// PutBytes copies the value's little-endian encoding into the leading bytes
// of b. It panics if b is shorter than the width of T.
func (v LittleEndian[T]) PutBytes(b []byte) {
	byteorder.PutLittle(b, v.Native())
}

// Append appends the value's little-endian encoding to b and returns the
// extended slice.
func (v LittleEndian[T]) Append(b []byte) []byte {
	return byteorder.AppendLittle(b, v.Native())
}

func (v LittleEndian[T]) String() string {
	return fmt.Sprint(v.Native())
}

var _ struc.Custom = LittleEndian[uint32]{}

// Pack implements [struc.Custom], so that LittleEndian fields can sit inside
// structures serialised with [struc.Pack]. The field packs to exactly the
// width of T.
func (v LittleEndian[T]) Pack(p []byte, _ *struc.Options) (int, error) {
	width := byteorder.Width[T]()
	if len(p) < width {
		return 0, errBufferTooSmall
	}

	v.PutBytes(p)

	return width, nil
}

// Unpack implements [struc.Custom]. Decoding from a stream is not supported;
// construct values from already-read bytes with [LittleEndianFromBytes]
// instead.
func (v LittleEndian[T]) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	return errUnimplemented
}

// Size implements [struc.Custom]. It reports the width of T in bytes.
func (v LittleEndian[T]) Size(_ *struc.Options) int {
	return byteorder.Width[T]()
}

// Equal reports whether v and o represent the same integer.
func (v LittleEndian[T]) Equal(o LittleEndian[T]) bool {
	return v.Native() == o.Native()
}

// EqualBig reports whether v and the big-endian o represent the same integer.
func (v LittleEndian[T]) EqualBig(o BigEndian[T]) bool {
	return v.Native() == o.Native()
}

// EqualNative reports whether v represents the native-order integer o.
func (v LittleEndian[T]) EqualNative(o T) bool {
	return v.Native() == o
}

// Compare returns -1 if v is less than o, 0 if equal, and +1 if greater.
// Values are compared as integers, never as raw stored bytes.
func (v LittleEndian[T]) Compare(o LittleEndian[T]) int {
	return cmp.Compare(v.Native(), o.Native())
}

// CompareBig compares v with the big-endian o; see [LittleEndian.Compare].
func (v LittleEndian[T]) CompareBig(o BigEndian[T]) int {
	return cmp.Compare(v.Native(), o.Native())
}

// CompareNative compares v with a native-order integer; see
// [LittleEndian.Compare].
func (v LittleEndian[T]) CompareNative(o T) int {
	return cmp.Compare(v.Native(), o)
}

// And returns the bitwise AND of v and o, stored little-endian.
func (v LittleEndian[T]) And(o LittleEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() & o.Native())
}

// AndBig returns the bitwise AND of v and the big-endian o, stored in the
// byte order of the left operand (little-endian).
func (v LittleEndian[T]) AndBig(o BigEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() & o.Native())
}

// AndNative returns the bitwise AND of v and a native-order integer, stored
// little-endian.
func (v LittleEndian[T]) AndNative(o T) LittleEndian[T] {
	return AsLittleEndian(v.Native() & o)
}

// Or returns the bitwise OR of v and o, stored little-endian.
func (v LittleEndian[T]) Or(o LittleEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() | o.Native())
}

// OrBig returns the bitwise OR of v and the big-endian o, stored in the byte
// order of the left operand (little-endian).
func (v LittleEndian[T]) OrBig(o BigEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() | o.Native())
}

// OrNative returns the bitwise OR of v and a native-order integer, stored
// little-endian.
func (v LittleEndian[T]) OrNative(o T) LittleEndian[T] {
	return AsLittleEndian(v.Native() | o)
}

// Xor returns the bitwise XOR of v and o, stored little-endian.
func (v LittleEndian[T]) Xor(o LittleEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() ^ o.Native())
}

// XorBig returns the bitwise XOR of v and the big-endian o, stored in the
// byte order of the left operand (little-endian).
func (v LittleEndian[T]) XorBig(o BigEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() ^ o.Native())
}

// XorNative returns the bitwise XOR of v and a native-order integer, stored
// little-endian.
func (v LittleEndian[T]) XorNative(o T) LittleEndian[T] {
	return AsLittleEndian(v.Native() ^ o)
}

// Add returns v + o, stored little-endian. Overflow wraps around, exactly as
// it does for Go's built-in integer types; the wrapper adds no overflow
// policy of its own.
func (v LittleEndian[T]) Add(o LittleEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() + o.Native())
}

// AddBig returns v + o for a big-endian o, stored in the byte order of the
// left operand (little-endian).
func (v LittleEndian[T]) AddBig(o BigEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() + o.Native())
}

// AddNative returns v + o for a native-order integer o, stored little-endian.
func (v LittleEndian[T]) AddNative(o T) LittleEndian[T] {
	return AsLittleEndian(v.Native() + o)
}

// Sub returns v - o, stored little-endian. Underflow wraps around, exactly as
// it does for Go's built-in integer types.
func (v LittleEndian[T]) Sub(o LittleEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() - o.Native())
}

// SubBig returns v - o for a big-endian o, stored in the byte order of the
// left operand (little-endian).
func (v LittleEndian[T]) SubBig(o BigEndian[T]) LittleEndian[T] {
	return AsLittleEndian(v.Native() - o.Native())
}

// SubNative returns v - o for a native-order integer o, stored little-endian.
func (v LittleEndian[T]) SubNative(o T) LittleEndian[T] {
	return AsLittleEndian(v.Native() - o)
}
