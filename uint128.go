package endian

import (
	"encoding/binary"
	"github.com/lunixbochs/struc"
	"io"
	"lukechampine.com/uint128"
)

// UInt128LE is an unsigned 128-bit integer held in little-endian byte order.
// Go has no built-in 128-bit integer type, so the native form of the value
// is a [uint128.Uint128] rather than a type parameter, and the stored
// representation is the raw 16-byte encoding.
//
// As with [LittleEndian], the bytes of a UInt128LE are exactly the
// little-endian encoding of the integer it represents, and the zero value
// represents zero.
type UInt128LE struct {
	bits [16]byte
}

// AsUInt128LE encodes a native 128-bit integer as a [UInt128LE] value.
func AsUInt128LE(value uint128.Uint128) UInt128LE {
	var v UInt128LE
	value.PutBytes(v.bits[:])

	return v
}

// UInt128LEFromBits wraps a 16-byte pattern that is already in little-endian
// byte order, without transforming it. No validation is performed; see
// [LittleEndianFromBits].
func UInt128LEFromBits(bits [16]byte) UInt128LE {
	return UInt128LE{bits: bits}
}

// UInt128LEFromBytes wraps an integer whose little-endian encoding is held in
// the leading 16 bytes of b. It panics if b is shorter than 16 bytes.
func UInt128LEFromBytes(b []byte) UInt128LE {
	_ = b[15]

	var v UInt128LE
	copy(v.bits[:], b)

	return v
}

// Native returns the value as a native 128-bit integer.
func (v UInt128LE) Native() uint128.Uint128 {
	return uint128.FromBytes(v.bits[:])
}

// Bits returns the stored 16-byte pattern verbatim.
func (v UInt128LE) Bits() [16]byte {
	return v.bits
}

// Big returns the same integer held in big-endian byte order, by reversing
// the stored bytes.
func (v UInt128LE) Big() UInt128BE {
	return UInt128BE{bits: reverse16(v.bits)}
}

// PutBytes copies the value's little-endian encoding into the leading 16
// bytes of b. It panics if b is shorter than 16 bytes.
func (v UInt128LE) PutBytes(b []byte) {
	_ = b[15]
	copy(b, v.bits[:])
}

// Append appends the value's little-endian encoding to b and returns the
// extended slice.
func (v UInt128LE) Append(b []byte) []byte {
	return append(b, v.bits[:]...)
}

func (v UInt128LE) String() string {
	return v.Native().String()
}

var _ struc.Custom = UInt128LE{}

// Pack implements [struc.Custom]. The field packs to 16 bytes.
func (v UInt128LE) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < 16 {
		return 0, errBufferTooSmall
	}

	v.PutBytes(p)

	return 16, nil
}

// Unpack implements [struc.Custom]. Decoding from a stream is not supported;
// construct values from already-read bytes with [UInt128LEFromBytes] instead.
func (v UInt128LE) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	return errUnimplemented
}

// Size implements [struc.Custom]. It always reports 16 bytes.
func (v UInt128LE) Size(_ *struc.Options) int {
	return 16
}

// Equal reports whether v and o represent the same integer.
func (v UInt128LE) Equal(o UInt128LE) bool {
	return v.bits == o.bits
}

// EqualBig reports whether v and the big-endian o represent the same integer.
func (v UInt128LE) EqualBig(o UInt128BE) bool {
	return v.Native().Equals(o.Native())
}

// EqualNative reports whether v represents the native integer o.
func (v UInt128LE) EqualNative(o uint128.Uint128) bool {
	return v.Native().Equals(o)
}

// Compare returns -1 if v is less than o, 0 if equal, and +1 if greater.
// Values are compared as integers, never as raw stored bytes.
func (v UInt128LE) Compare(o UInt128LE) int {
	return v.Native().Cmp(o.Native())
}

// CompareBig compares v with the big-endian o; see [UInt128LE.Compare].
func (v UInt128LE) CompareBig(o UInt128BE) int {
	return v.Native().Cmp(o.Native())
}

// CompareNative compares v with a native integer; see [UInt128LE.Compare].
func (v UInt128LE) CompareNative(o uint128.Uint128) int {
	return v.Native().Cmp(o)
}

// And returns the bitwise AND of v and o, stored little-endian.
func (v UInt128LE) And(o UInt128LE) UInt128LE {
	return AsUInt128LE(v.Native().And(o.Native()))
}

// AndBig returns the bitwise AND of v and the big-endian o, stored in the
// byte order of the left operand (little-endian).
func (v UInt128LE) AndBig(o UInt128BE) UInt128LE {
	return AsUInt128LE(v.Native().And(o.Native()))
}

// AndNative returns the bitwise AND of v and a native integer, stored
// little-endian.
func (v UInt128LE) AndNative(o uint128.Uint128) UInt128LE {
	return AsUInt128LE(v.Native().And(o))
}

// Or returns the bitwise OR of v and o, stored little-endian.
func (v UInt128LE) Or(o UInt128LE) UInt128LE {
	return AsUInt128LE(v.Native().Or(o.Native()))
}

// OrBig returns the bitwise OR of v and the big-endian o, stored in the byte
// order of the left operand (little-endian).
func (v UInt128LE) OrBig(o UInt128BE) UInt128LE {
	return AsUInt128LE(v.Native().Or(o.Native()))
}

// OrNative returns the bitwise OR of v and a native integer, stored
// little-endian.
func (v UInt128LE) OrNative(o uint128.Uint128) UInt128LE {
	return AsUInt128LE(v.Native().Or(o))
}

// Xor returns the bitwise XOR of v and o, stored little-endian.
func (v UInt128LE) Xor(o UInt128LE) UInt128LE {
	return AsUInt128LE(v.Native().Xor(o.Native()))
}

// XorBig returns the bitwise XOR of v and the big-endian o, stored in the
// byte order of the left operand (little-endian).
func (v UInt128LE) XorBig(o UInt128BE) UInt128LE {
	return AsUInt128LE(v.Native().Xor(o.Native()))
}

// XorNative returns the bitwise XOR of v and a native integer, stored
// little-endian.
func (v UInt128LE) XorNative(o uint128.Uint128) UInt128LE {
	return AsUInt128LE(v.Native().Xor(o))
}

// Add returns v + o, stored little-endian. Overflow wraps around, matching
// the behaviour of the fixed-width wrappers.
func (v UInt128LE) Add(o UInt128LE) UInt128LE {
	return AsUInt128LE(v.Native().AddWrap(o.Native()))
}

// AddBig returns v + o for a big-endian o, stored in the byte order of the
// left operand (little-endian).
func (v UInt128LE) AddBig(o UInt128BE) UInt128LE {
	return AsUInt128LE(v.Native().AddWrap(o.Native()))
}

// AddNative returns v + o for a native integer o, stored little-endian.
func (v UInt128LE) AddNative(o uint128.Uint128) UInt128LE {
	return AsUInt128LE(v.Native().AddWrap(o))
}

// Sub returns v - o, stored little-endian. Underflow wraps around, matching
// the behaviour of the fixed-width wrappers.
func (v UInt128LE) Sub(o UInt128LE) UInt128LE {
	return AsUInt128LE(v.Native().SubWrap(o.Native()))
}

// SubBig returns v - o for a big-endian o, stored in the byte order of the
// left operand (little-endian).
func (v UInt128LE) SubBig(o UInt128BE) UInt128LE {
	return AsUInt128LE(v.Native().SubWrap(o.Native()))
}

// SubNative returns v - o for a native integer o, stored little-endian.
func (v UInt128LE) SubNative(o uint128.Uint128) UInt128LE {
	return AsUInt128LE(v.Native().SubWrap(o))
}

// UInt128BE is an unsigned 128-bit integer held in big-endian byte order.
// See [UInt128LE] for why the native form of the value is a
// [uint128.Uint128].
type UInt128BE struct {
	bits [16]byte
}

// AsUInt128BE encodes a native 128-bit integer as a [UInt128BE] value.
func AsUInt128BE(value uint128.Uint128) UInt128BE {
	var v UInt128BE
	binary.BigEndian.PutUint64(v.bits[:8], value.Hi)
	binary.BigEndian.PutUint64(v.bits[8:], value.Lo)

	return v
}

// UInt128BEFromBits wraps a 16-byte pattern that is already in big-endian
// byte order, without transforming it. No validation is performed; see
// [BigEndianFromBits].
func UInt128BEFromBits(bits [16]byte) UInt128BE {
	return UInt128BE{bits: bits}
}

// UInt128BEFromBytes wraps an integer whose big-endian encoding is held in
// the leading 16 bytes of b. It panics if b is shorter than 16 bytes.
func UInt128BEFromBytes(b []byte) UInt128BE {
	_ = b[15]

	var v UInt128BE
	copy(v.bits[:], b)

	return v
}

// Native returns the value as a native 128-bit integer.
func (v UInt128BE) Native() uint128.Uint128 {
	return uint128.New(
		binary.BigEndian.Uint64(v.bits[8:]),
		binary.BigEndian.Uint64(v.bits[:8]),
	)
}

// Bits returns the stored 16-byte pattern verbatim.
func (v UInt128BE) Bits() [16]byte {
	return v.bits
}

// Little returns the same integer held in little-endian byte order, by
// reversing the stored bytes.
func (v UInt128BE) Little() UInt128LE {
	return UInt128LE{bits: reverse16(v.bits)}
}

// PutBytes copies the value's big-endian encoding into the leading 16 bytes
// of b. It panics if b is shorter than 16 bytes.
func (v UInt128BE) PutBytes(b []byte) {
	_ = b[15]
	copy(b, v.bits[:])
}

// Append appends the value's big-endian encoding to b and returns the
// extended slice.
func (v UInt128BE) Append(b []byte) []byte {
	return append(b, v.bits[:]...)
}

func (v UInt128BE) String() string {
	return v.Native().String()
}

var _ struc.Custom = UInt128BE{}

// Pack implements [struc.Custom]. The field packs to 16 bytes.
func (v UInt128BE) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < 16 {
		return 0, errBufferTooSmall
	}

	v.PutBytes(p)

	return 16, nil
}

// Unpack implements [struc.Custom]. Decoding from a stream is not supported;
// construct values from already-read bytes with [UInt128BEFromBytes] instead.
func (v UInt128BE) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	return errUnimplemented
}

// Size implements [struc.Custom]. It always reports 16 bytes.
func (v UInt128BE) Size(_ *struc.Options) int {
	return 16
}

// Equal reports whether v and o represent the same integer.
func (v UInt128BE) Equal(o UInt128BE) bool {
	return v.bits == o.bits
}

// EqualLittle reports whether v and the little-endian o represent the same
// integer.
func (v UInt128BE) EqualLittle(o UInt128LE) bool {
	return v.Native().Equals(o.Native())
}

// EqualNative reports whether v represents the native integer o.
func (v UInt128BE) EqualNative(o uint128.Uint128) bool {
	return v.Native().Equals(o)
}

// Compare returns -1 if v is less than o, 0 if equal, and +1 if greater.
// Values are compared as integers, never as raw stored bytes.
func (v UInt128BE) Compare(o UInt128BE) int {
	return v.Native().Cmp(o.Native())
}

// CompareLittle compares v with the little-endian o; see [UInt128BE.Compare].
func (v UInt128BE) CompareLittle(o UInt128LE) int {
	return v.Native().Cmp(o.Native())
}

// CompareNative compares v with a native integer; see [UInt128BE.Compare].
func (v UInt128BE) CompareNative(o uint128.Uint128) int {
	return v.Native().Cmp(o)
}

// And returns the bitwise AND of v and o, stored big-endian.
func (v UInt128BE) And(o UInt128BE) UInt128BE {
	return AsUInt128BE(v.Native().And(o.Native()))
}

// AndLittle returns the bitwise AND of v and the little-endian o, stored in
// the byte order of the left operand (big-endian).
func (v UInt128BE) AndLittle(o UInt128LE) UInt128BE {
	return AsUInt128BE(v.Native().And(o.Native()))
}

// AndNative returns the bitwise AND of v and a native integer, stored
// big-endian.
func (v UInt128BE) AndNative(o uint128.Uint128) UInt128BE {
	return AsUInt128BE(v.Native().And(o))
}

// Or returns the bitwise OR of v and o, stored big-endian.
func (v UInt128BE) Or(o UInt128BE) UInt128BE {
	return AsUInt128BE(v.Native().Or(o.Native()))
}

// OrLittle returns the bitwise OR of v and the little-endian o, stored in
// the byte order of the left operand (big-endian).
func (v UInt128BE) OrLittle(o UInt128LE) UInt128BE {
	return AsUInt128BE(v.Native().Or(o.Native()))
}

// OrNative returns the bitwise OR of v and a native integer, stored
// big-endian.
func (v UInt128BE) OrNative(o uint128.Uint128) UInt128BE {
	return AsUInt128BE(v.Native().Or(o))
}

// Xor returns the bitwise XOR of v and o, stored big-endian.
func (v UInt128BE) Xor(o UInt128BE) UInt128BE {
	return AsUInt128BE(v.Native().Xor(o.Native()))
}

// XorLittle returns the bitwise XOR of v and the little-endian o, stored in
// the byte order of the left operand (big-endian).
func (v UInt128BE) XorLittle(o UInt128LE) UInt128BE {
	return AsUInt128BE(v.Native().Xor(o.Native()))
}

// XorNative returns the bitwise XOR of v and a native integer, stored
// big-endian.
func (v UInt128BE) XorNative(o uint128.Uint128) UInt128BE {
	return AsUInt128BE(v.Native().Xor(o))
}

// Add returns v + o, stored big-endian. Overflow wraps around, matching the
// behaviour of the fixed-width wrappers.
func (v UInt128BE) Add(o UInt128BE) UInt128BE {
	return AsUInt128BE(v.Native().AddWrap(o.Native()))
}

// AddLittle returns v + o for a little-endian o, stored in the byte order of
// the left operand (big-endian).
func (v UInt128BE) AddLittle(o UInt128LE) UInt128BE {
	return AsUInt128BE(v.Native().AddWrap(o.Native()))
}

// AddNative returns v + o for a native integer o, stored big-endian.
func (v UInt128BE) AddNative(o uint128.Uint128) UInt128BE {
	return AsUInt128BE(v.Native().AddWrap(o))
}

// Sub returns v - o, stored big-endian. Underflow wraps around, matching the
// behaviour of the fixed-width wrappers.
func (v UInt128BE) Sub(o UInt128BE) UInt128BE {
	return AsUInt128BE(v.Native().SubWrap(o.Native()))
}

// SubLittle returns v - o for a little-endian o, stored in the byte order of
// the left operand (big-endian).
func (v UInt128BE) SubLittle(o UInt128LE) UInt128BE {
	return AsUInt128BE(v.Native().SubWrap(o.Native()))
}

// SubNative returns v - o for a native integer o, stored big-endian.
func (v UInt128BE) SubNative(o uint128.Uint128) UInt128BE {
	return AsUInt128BE(v.Native().SubWrap(o))
}

func reverse16(b [16]byte) [16]byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}
