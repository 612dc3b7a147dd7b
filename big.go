package endian

import (
	"cmp"
	"fmt"
	"github.com/davejbax/go-endian/internal/byteorder"
	"github.com/lunixbochs/struc"
	"io"
)

// BigEndian is an integer of underlying type T whose in-memory representation
// is guaranteed to be in big-endian byte order, regardless of the byte order
// of the platform. Its size and layout are identical to a bare T, so the raw
// bytes of a BigEndian value are exactly the big-endian encoding of the
// integer it represents.
//
// The zero value represents zero. Values of the same instantiation are
// comparable with ==, and may be used as map keys.
type BigEndian[T Integer] struct {
	bits T
}

// AsBigEndian encodes a native-order integer as a [BigEndian] value.
func AsBigEndian[T Integer](value T) BigEndian[T] {
	if !byteorder.IsBig {
		value = byteorder.Swap(value)
	}

	return BigEndian[T]{bits: value}
}

// BigEndianFromBits wraps a bit pattern that is already in big-endian byte
// order, without transforming it. This is intended for values whose bytes
// were produced by -- or read straight out of -- a big-endian format, such as
// a network protocol header.
//
// No validation is performed: it is the caller's responsibility to ensure
// that bits really is big-endian-ordered. Passing a native-order value on a
// little-endian platform silently yields a wrapper whose [BigEndian.Native]
// result is byte-reversed. Use [AsBigEndian] to encode a native value.
func BigEndianFromBits[T Integer](bits T) BigEndian[T] {
	return BigEndian[T]{bits: bits}
}

// BigEndianFromBytes wraps an integer whose big-endian encoding is held in
// the leading bytes of b. It panics if b is shorter than the width of T.
//
// As with [BigEndianFromBits], the bytes are taken verbatim and are not
// validated.
func BigEndianFromBytes[T Integer](b []byte) BigEndian[T] {
	return AsBigEndian(byteorder.Big[T](b))
}

// Native returns the value in the platform's native byte order. On big-endian
// platforms this is the identity; on little-endian platforms it reverses the
// stored bytes. The choice is made at build time, not at runtime.
func (v BigEndian[T]) Native() T {
	if byteorder.IsBig {
		return v.bits
	}

	return byteorder.Swap(v.bits)
}

// Bits returns the stored bit pattern verbatim, i.e. the value as a
// big-endian-ordered T.
func (v BigEndian[T]) Bits() T {
	return v.bits
}

// Little returns the same integer held in little-endian byte order. This
// reverses the stored bytes directly, which is equivalent to re-encoding the
// native value via [AsLittleEndian].
func (v BigEndian[T]) Little() LittleEndian[T] {
	return LittleEndian[T]{bits: byteorder.Swap(v.bits)}
}

// PutBytes copies the value's big-endian encoding into the leading bytes of
// b. It panics if b is shorter than the width of T.
func (v BigEndian[T]) PutBytes(b []byte) {
	byteorder.PutBig(b, v.Native())
}

// Append appends the value's big-endian encoding to b and returns the
// extended slice.
func (v BigEndian[T]) Append(b []byte) []byte {
	return byteorder.AppendBig(b, v.Native())
}

func (v BigEndian[T]) String() string {
	return fmt.Sprint(v.Native())
}

var _ struc.Custom = BigEndian[uint32]{}

// Pack implements [struc.Custom], so that BigEndian fields can sit inside
// structures serialised with [struc.Pack]. The field packs to exactly the
// width of T.
func (v BigEndian[T]) Pack(p []byte, _ *struc.Options) (int, error) {
	width := byteorder.Width[T]()
	if len(p) < width {
		return 0, errBufferTooSmall
	}

	v.PutBytes(p)

	return width, nil
}

// Unpack implements [struc.Custom]. Decoding from a stream is not supported;
// construct values from already-read bytes with [BigEndianFromBytes] instead.
func (v BigEndian[T]) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	return errUnimplemented
}

// Size implements [struc.Custom]. It reports the width of T in bytes.
func (v BigEndian[T]) Size(_ *struc.Options) int {
	return byteorder.Width[T]()
}

// Equal reports whether v and o represent the same integer.
func (v BigEndian[T]) Equal(o BigEndian[T]) bool {
	return v.Native() == o.Native()
}

// EqualLittle reports whether v and the little-endian o represent the same
// integer.
func (v BigEndian[T]) EqualLittle(o LittleEndian[T]) bool {
	return v.Native() == o.Native()
}

// EqualNative reports whether v represents the native-order integer o.
func (v BigEndian[T]) EqualNative(o T) bool {
	return v.Native() == o
}

// Compare returns -1 if v is less than o, 0 if equal, and +1 if greater.
// Values are compared as integers, never as raw stored bytes.
func (v BigEndian[T]) Compare(o BigEndian[T]) int {
	return cmp.Compare(v.Native(), o.Native())
}

// CompareLittle compares v with the little-endian o; see [BigEndian.Compare].
func (v BigEndian[T]) CompareLittle(o LittleEndian[T]) int {
	return cmp.Compare(v.Native(), o.Native())
}

// CompareNative compares v with a native-order integer; see
// [BigEndian.Compare].
func (v BigEndian[T]) CompareNative(o T) int {
	return cmp.Compare(v.Native(), o)
}

// And returns the bitwise AND of v and o, stored big-endian.
func (v BigEndian[T]) And(o BigEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() & o.Native())
}

// AndLittle returns the bitwise AND of v and the little-endian o, stored in
// the byte order of the left operand (big-endian).
func (v BigEndian[T]) AndLittle(o LittleEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() & o.Native())
}

// AndNative returns the bitwise AND of v and a native-order integer, stored
// big-endian.
func (v BigEndian[T]) AndNative(o T) BigEndian[T] {
	return AsBigEndian(v.Native() & o)
}

// Or returns the bitwise OR of v and o, stored big-endian.
func (v BigEndian[T]) Or(o BigEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() | o.Native())
}

// OrLittle returns the bitwise OR of v and the little-endian o, stored in the
// byte order of the left operand (big-endian).
func (v BigEndian[T]) OrLittle(o LittleEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() | o.Native())
}

// OrNative returns the bitwise OR of v and a native-order integer, stored
// big-endian.
func (v BigEndian[T]) OrNative(o T) BigEndian[T] {
	return AsBigEndian(v.Native() | o)
}

// Xor returns the bitwise XOR of v and o, stored big-endian.
func (v BigEndian[T]) Xor(o BigEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() ^ o.Native())
}

// XorLittle returns the bitwise XOR of v and the little-endian o, stored in
// the byte order of the left operand (big-endian).
func (v BigEndian[T]) XorLittle(o LittleEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() ^ o.Native())
}

// XorNative returns the bitwise XOR of v and a native-order integer, stored
// big-endian.
func (v BigEndian[T]) XorNative(o T) BigEndian[T] {
	return AsBigEndian(v.Native() ^ o)
}

// Add returns v + o, stored big-endian. Overflow wraps around, exactly as it
// does for Go's built-in integer types; the wrapper adds no overflow policy
// of its own.
func (v BigEndian[T]) Add(o BigEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() + o.Native())
}

// AddLittle returns v + o for a little-endian o, stored in the byte order of
// the left operand (big-endian).
func (v BigEndian[T]) AddLittle(o LittleEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() + o.Native())
}

// AddNative returns v + o for a native-order integer o, stored big-endian.
func (v BigEndian[T]) AddNative(o T) BigEndian[T] {
	return AsBigEndian(v.Native() + o)
}

// Sub returns v - o, stored big-endian. Underflow wraps around, exactly as it
// does for Go's built-in integer types.
func (v BigEndian[T]) Sub(o BigEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() - o.Native())
}

// SubLittle returns v - o for a little-endian o, stored in the byte order of
// the left operand (big-endian).
func (v BigEndian[T]) SubLittle(o LittleEndian[T]) BigEndian[T] {
	return AsBigEndian(v.Native() - o.Native())
}

// SubNative returns v - o for a native-order integer o, stored big-endian.
func (v BigEndian[T]) SubNative(o T) BigEndian[T] {
	return AsBigEndian(v.Native() - o)
}
