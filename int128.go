package endian

import (
	"encoding/binary"
	"github.com/lunixbochs/struc"
	"io"
	"lukechampine.com/uint128"
)

// Int128LE is a signed 128-bit integer held in little-endian byte order.
//
// Go has no built-in 128-bit integer type, so values are interchanged as
// [uint128.Uint128] bit patterns interpreted as two's complement: the
// Uint128 carries the raw 128 bits, and this type supplies the signed
// comparison and formatting semantics. Addition, subtraction and the bitwise
// operations act identically on signed and unsigned two's complement bits,
// so only [Int128LE.Compare] and [Int128LE.String] differ from [UInt128LE].
type Int128LE struct {
	bits [16]byte
}

// AsInt128LE encodes the two's complement bits of a native 128-bit integer
// as an [Int128LE] value.
func AsInt128LE(value uint128.Uint128) Int128LE {
	var v Int128LE
	value.PutBytes(v.bits[:])

	return v
}

// Int128LEFromBits wraps a 16-byte pattern that is already in little-endian
// byte order, without transforming it. No validation is performed; see
// [LittleEndianFromBits].
func Int128LEFromBits(bits [16]byte) Int128LE {
	return Int128LE{bits: bits}
}

// Int128LEFromBytes wraps an integer whose little-endian encoding is held in
// the leading 16 bytes of b. It panics if b is shorter than 16 bytes.
func Int128LEFromBytes(b []byte) Int128LE {
	_ = b[15]

	var v Int128LE
	copy(v.bits[:], b)

	return v
}

// Native returns the value's two's complement bits in native order.
func (v Int128LE) Native() uint128.Uint128 {
	return uint128.FromBytes(v.bits[:])
}

// Bits returns the stored 16-byte pattern verbatim.
func (v Int128LE) Bits() [16]byte {
	return v.bits
}

// Big returns the same integer held in big-endian byte order, by reversing
// the stored bytes.
func (v Int128LE) Big() Int128BE {
	return Int128BE{bits: reverse16(v.bits)}
}

// PutBytes copies the value's little-endian encoding into the leading 16
// bytes of b. It panics if b is shorter than 16 bytes.
func (v Int128LE) PutBytes(b []byte) {
	_ = b[15]
	copy(b, v.bits[:])
}

// Append appends the value's little-endian encoding to b and returns the
// extended slice.
func (v Int128LE) Append(b []byte) []byte {
	return append(b, v.bits[:]...)
}

func (v Int128LE) String() string {
	return int128String(v.Native())
}

var _ struc.Custom = Int128LE{}

// Pack implements [struc.Custom]. The field packs to 16 bytes.
func (v Int128LE) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < 16 {
		return 0, errBufferTooSmall
	}

	v.PutBytes(p)

	return 16, nil
}

// Unpack implements [struc.Custom]. Decoding from a stream is not supported;
// construct values from already-read bytes with [Int128LEFromBytes] instead.
func (v Int128LE) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	return errUnimplemented
}

// Size implements [struc.Custom]. It always reports 16 bytes.
func (v Int128LE) Size(_ *struc.Options) int {
	return 16
}

// Equal reports whether v and o represent the same integer.
func (v Int128LE) Equal(o Int128LE) bool {
	return v.bits == o.bits
}

// EqualBig reports whether v and the big-endian o represent the same integer.
func (v Int128LE) EqualBig(o Int128BE) bool {
	return v.Native().Equals(o.Native())
}

// EqualNative reports whether v represents the integer with native two's
// complement bits o.
func (v Int128LE) EqualNative(o uint128.Uint128) bool {
	return v.Native().Equals(o)
}

// Compare returns -1 if v is less than o, 0 if equal, and +1 if greater.
// Values are compared as signed integers, never as raw stored bytes.
func (v Int128LE) Compare(o Int128LE) int {
	return int128Cmp(v.Native(), o.Native())
}

// CompareBig compares v with the big-endian o; see [Int128LE.Compare].
func (v Int128LE) CompareBig(o Int128BE) int {
	return int128Cmp(v.Native(), o.Native())
}

// CompareNative compares v with a native integer; see [Int128LE.Compare].
func (v Int128LE) CompareNative(o uint128.Uint128) int {
	return int128Cmp(v.Native(), o)
}

// And returns the bitwise AND of v and o, stored little-endian.
func (v Int128LE) And(o Int128LE) Int128LE {
	return AsInt128LE(v.Native().And(o.Native()))
}

// AndBig returns the bitwise AND of v and the big-endian o, stored in the
// byte order of the left operand (little-endian).
func (v Int128LE) AndBig(o Int128BE) Int128LE {
	return AsInt128LE(v.Native().And(o.Native()))
}

// AndNative returns the bitwise AND of v and a native integer, stored
// little-endian.
func (v Int128LE) AndNative(o uint128.Uint128) Int128LE {
	return AsInt128LE(v.Native().And(o))
}

// Or returns the bitwise OR of v and o, stored little-endian.
func (v Int128LE) Or(o Int128LE) Int128LE {
	return AsInt128LE(v.Native().Or(o.Native()))
}

// OrBig returns the bitwise OR of v and the big-endian o, stored in the byte
// order of the left operand (little-endian).
func (v Int128LE) OrBig(o Int128BE) Int128LE {
	return AsInt128LE(v.Native().Or(o.Native()))
}

// OrNative returns the bitwise OR of v and a native integer, stored
// little-endian.
func (v Int128LE) OrNative(o uint128.Uint128) Int128LE {
	return AsInt128LE(v.Native().Or(o))
}

// Xor returns the bitwise XOR of v and o, stored little-endian.
func (v Int128LE) Xor(o Int128LE) Int128LE {
	return AsInt128LE(v.Native().Xor(o.Native()))
}

// XorBig returns the bitwise XOR of v and the big-endian o, stored in the
// byte order of the left operand (little-endian).
func (v Int128LE) XorBig(o Int128BE) Int128LE {
	return AsInt128LE(v.Native().Xor(o.Native()))
}

// XorNative returns the bitwise XOR of v and a native integer, stored
// little-endian.
func (v Int128LE) XorNative(o uint128.Uint128) Int128LE {
	return AsInt128LE(v.Native().Xor(o))
}

// Add returns v + o, stored little-endian. Overflow wraps around, matching
// the behaviour of the fixed-width wrappers; two's complement addition is
// the same bit operation for signed and unsigned operands.
func (v Int128LE) Add(o Int128LE) Int128LE {
	return AsInt128LE(v.Native().AddWrap(o.Native()))
}

// AddBig returns v + o for a big-endian o, stored in the byte order of the
// left operand (little-endian).
func (v Int128LE) AddBig(o Int128BE) Int128LE {
	return AsInt128LE(v.Native().AddWrap(o.Native()))
}

// AddNative returns v + o for a native integer o, stored little-endian.
func (v Int128LE) AddNative(o uint128.Uint128) Int128LE {
	return AsInt128LE(v.Native().AddWrap(o))
}

// Sub returns v - o, stored little-endian. Underflow wraps around, matching
// the behaviour of the fixed-width wrappers.
func (v Int128LE) Sub(o Int128LE) Int128LE {
	return AsInt128LE(v.Native().SubWrap(o.Native()))
}

// SubBig returns v - o for a big-endian o, stored in the byte order of the
// left operand (little-endian).
func (v Int128LE) SubBig(o Int128BE) Int128LE {
	return AsInt128LE(v.Native().SubWrap(o.Native()))
}

// SubNative returns v - o for a native integer o, stored little-endian.
func (v Int128LE) SubNative(o uint128.Uint128) Int128LE {
	return AsInt128LE(v.Native().SubWrap(o))
}

// Int128BE is a signed 128-bit integer held in big-endian byte order. See
// [Int128LE] for how signed values are interchanged as [uint128.Uint128]
// bit patterns.
type Int128BE struct {
	bits [16]byte
}

// AsInt128BE encodes the two's complement bits of a native 128-bit integer
// as an [Int128BE] value.
func AsInt128BE(value uint128.Uint128) Int128BE {
	var v Int128BE
	binary.BigEndian.PutUint64(v.bits[:8], value.Hi)
	binary.BigEndian.PutUint64(v.bits[8:], value.Lo)

	return v
}

// Int128BEFromBits wraps a 16-byte pattern that is already in big-endian
// byte order, without transforming it. No validation is performed; see
// [BigEndianFromBits].
func Int128BEFromBits(bits [16]byte) Int128BE {
	return Int128BE{bits: bits}
}

// Int128BEFromBytes wraps an integer whose big-endian encoding is held in
// the leading 16 bytes of b. It panics if b is shorter than 16 bytes.
func Int128BEFromBytes(b []byte) Int128BE {
	_ = b[15]

	var v Int128BE
	copy(v.bits[:], b)

	return v
}

// Native returns the value's two's complement bits in native order.
func (v Int128BE) Native() uint128.Uint128 {
	return uint128.New(
		binary.BigEndian.Uint64(v.bits[8:]),
		binary.BigEndian.Uint64(v.bits[:8]),
	)
}

// Bits returns the stored 16-byte pattern verbatim.
func (v Int128BE) Bits() [16]byte {
	return v.bits
}

// Little returns the same integer held in little-endian byte order, by
// reversing the stored bytes.
func (v Int128BE) Little() Int128LE {
	return Int128LE{bits: reverse16(v.bits)}
}

// PutBytes copies the value's big-endian encoding into the leading 16 bytes
// of b. It panics if b is shorter than 16 bytes.
func (v Int128BE) PutBytes(b []byte) {
	_ = b[15]
	copy(b, v.bits[:])
}

// Append appends the value's big-endian encoding to b and returns the
// extended slice.
func (v Int128BE) Append(b []byte) []byte {
	return append(b, v.bits[:]...)
}

func (v Int128BE) String() string {
	return int128String(v.Native())
}

var _ struc.Custom = Int128BE{}

// Pack implements [struc.Custom]. The field packs to 16 bytes.
func (v Int128BE) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < 16 {
		return 0, errBufferTooSmall
	}

	v.PutBytes(p)

	return 16, nil
}

// Unpack implements [struc.Custom]. Decoding from a stream is not supported;
// construct values from already-read bytes with [Int128BEFromBytes] instead.
func (v Int128BE) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	return errUnimplemented
}

// Size implements [struc.Custom]. It always reports 16 bytes.
func (v Int128BE) Size(_ *struc.Options) int {
	return 16
}

// Equal reports whether v and o represent the same integer.
func (v Int128BE) Equal(o Int128BE) bool {
	return v.bits == o.bits
}

// EqualLittle reports whether v and the little-endian o represent the same
// integer.
func (v Int128BE) EqualLittle(o Int128LE) bool {
	return v.Native().Equals(o.Native())
}

// EqualNative reports whether v represents the integer with native two's
// complement bits o.
func (v Int128BE) EqualNative(o uint128.Uint128) bool {
	return v.Native().Equals(o)
}

// Compare returns -1 if v is less than o, 0 if equal, and +1 if greater.
// Values are compared as signed integers, never as raw stored bytes.
func (v Int128BE) Compare(o Int128BE) int {
	return int128Cmp(v.Native(), o.Native())
}

// CompareLittle compares v with the little-endian o; see [Int128BE.Compare].
func (v Int128BE) CompareLittle(o Int128LE) int {
	return int128Cmp(v.Native(), o.Native())
}

// CompareNative compares v with a native integer; see [Int128BE.Compare].
func (v Int128BE) CompareNative(o uint128.Uint128) int {
	return int128Cmp(v.Native(), o)
}

// And returns the bitwise AND of v and o, stored big-endian.
func (v Int128BE) And(o Int128BE) Int128BE {
	return AsInt128BE(v.Native().And(o.Native()))
}

// AndLittle returns the bitwise AND of v and the little-endian o, stored in
// the byte order of the left operand (big-endian).
func (v Int128BE) AndLittle(o Int128LE) Int128BE {
	return AsInt128BE(v.Native().And(o.Native()))
}

// AndNative returns the bitwise AND of v and a native integer, stored
// big-endian.
func (v Int128BE) AndNative(o uint128.Uint128) Int128BE {
	return AsInt128BE(v.Native().And(o))
}

// Or returns the bitwise OR of v and o, stored big-endian.
func (v Int128BE) Or(o Int128BE) Int128BE {
	return AsInt128BE(v.Native().Or(o.Native()))
}

// OrLittle returns the bitwise OR of v and the little-endian o, stored in
// the byte order of the left operand (big-endian).
func (v Int128BE) OrLittle(o Int128LE) Int128BE {
	return AsInt128BE(v.Native().Or(o.Native()))
}

// OrNative returns the bitwise OR of v and a native integer, stored
// big-endian.
func (v Int128BE) OrNative(o uint128.Uint128) Int128BE {
	return AsInt128BE(v.Native().Or(o))
}

// Xor returns the bitwise XOR of v and o, stored big-endian.
func (v Int128BE) Xor(o Int128BE) Int128BE {
	return AsInt128BE(v.Native().Xor(o.Native()))
}

// XorLittle returns the bitwise XOR of v and the little-endian o, stored in
// the byte order of the left operand (big-endian).
func (v Int128BE) XorLittle(o Int128LE) Int128BE {
	return AsInt128BE(v.Native().Xor(o.Native()))
}

// XorNative returns the bitwise XOR of v and a native integer, stored
// big-endian.
func (v Int128BE) XorNative(o uint128.Uint128) Int128BE {
	return AsInt128BE(v.Native().Xor(o))
}

// Add returns v + o, stored big-endian. Overflow wraps around, matching the
// behaviour of the fixed-width wrappers; two's complement addition is the
// same bit operation for signed and unsigned operands.
func (v Int128BE) Add(o Int128BE) Int128BE {
	return AsInt128BE(v.Native().AddWrap(o.Native()))
}

// AddLittle returns v + o for a little-endian o, stored in the byte order of
// the left operand (big-endian).
func (v Int128BE) AddLittle(o Int128LE) Int128BE {
	return AsInt128BE(v.Native().AddWrap(o.Native()))
}

// AddNative returns v + o for a native integer o, stored big-endian.
func (v Int128BE) AddNative(o uint128.Uint128) Int128BE {
	return AsInt128BE(v.Native().AddWrap(o))
}

// Sub returns v - o, stored big-endian. Underflow wraps around, matching the
// behaviour of the fixed-width wrappers.
func (v Int128BE) Sub(o Int128BE) Int128BE {
	return AsInt128BE(v.Native().SubWrap(o.Native()))
}

// SubLittle returns v - o for a little-endian o, stored in the byte order of
// the left operand (big-endian).
func (v Int128BE) SubLittle(o Int128LE) Int128BE {
	return AsInt128BE(v.Native().SubWrap(o.Native()))
}

// SubNative returns v - o for a native integer o, stored big-endian.
func (v Int128BE) SubNative(o uint128.Uint128) Int128BE {
	return AsInt128BE(v.Native().SubWrap(o))
}

// int128SignBit is the two's complement sign bit of a 128-bit integer.
var int128SignBit = uint128.New(0, 1<<63)

// int128Cmp compares two's complement bit patterns as signed integers.
// Flipping the sign bit of both operands maps the signed range onto the
// unsigned range order-preservingly.
func int128Cmp(a, b uint128.Uint128) int {
	return a.Xor(int128SignBit).Cmp(b.Xor(int128SignBit))
}

// int128String formats a two's complement bit pattern as a signed decimal.
func int128String(v uint128.Uint128) string {
	if v.Hi&(1<<63) == 0 {
		return v.String()
	}

	// Negating the two's complement gives the magnitude; this also holds
	// for the minimum value, whose magnitude 2^127 is representable
	// unsigned.
	magnitude := v.Xor(uint128.New(^uint64(0), ^uint64(0))).AddWrap(uint128.From64(1))

	return "-" + magnitude.String()
}
