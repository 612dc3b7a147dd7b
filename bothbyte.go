package endian

import (
	"fmt"
	"github.com/lunixbochs/struc"
	"io"
)

// UInt16BothByte is an unsigned 16-bit integer represented in both little
// endian and big endian, in a 32-bit container. Both-byte order is used by
// formats that must be readable on either kind of platform without byte
// swapping; ISO 9660 volume descriptors are the classic example.
//
// The encoding is [ <little endian unsigned 16-bit integer>, <big endian
// unsigned 16-bit integer> ]
//
// UInt16BothByte can be encoded by the [struc] library.
type UInt16BothByte struct {
	little LittleEndian[uint16]
	big    BigEndian[uint16]
}

// AsUInt16BothByte creates a [UInt16BothByte] from an unsigned 16-bit integer.
func AsUInt16BothByte(value uint16) UInt16BothByte {
	return UInt16BothByte{
		little: AsLittleEndian(value),
		big:    AsBigEndian(value),
	}
}

// UInt16BothByteFromBytes wraps an integer whose both-byte encoding is held
// in the leading four bytes of b. It panics if b is shorter than four bytes.
//
// Both halves are taken verbatim and are not checked against each other; if
// the two halves of a malformed encoding disagree, the little-endian half is
// the one reported by [UInt16BothByte.Native].
func UInt16BothByteFromBytes(b []byte) UInt16BothByte {
	return UInt16BothByte{
		little: LittleEndianFromBytes[uint16](b),
		big:    BigEndianFromBytes[uint16](b[2:]),
	}
}

// Native returns the value in the platform's native byte order.
func (v UInt16BothByte) Native() uint16 {
	return v.little.Native()
}

// Little returns the little-endian half of the encoding.
func (v UInt16BothByte) Little() LittleEndian[uint16] {
	return v.little
}

// Big returns the big-endian half of the encoding.
func (v UInt16BothByte) Big() BigEndian[uint16] {
	return v.big
}

// PutBytes copies the value's both-byte encoding into the leading four bytes
// of b. It panics if b is shorter than four bytes.
func (v UInt16BothByte) PutBytes(b []byte) {
	v.little.PutBytes(b)
	v.big.PutBytes(b[2:])
}

// Append appends the value's both-byte encoding to b and returns the
// extended slice.
func (v UInt16BothByte) Append(b []byte) []byte {
	b = v.little.Append(b)
	return v.big.Append(b)
}

func (v UInt16BothByte) String() string {
	return fmt.Sprint(v.Native())
}

var _ struc.Custom = UInt16BothByte{}

// Pack implements [struc.Custom]. The field packs to four bytes: the
// little-endian half followed by the big-endian half.
func (v UInt16BothByte) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < 4 {
		return 0, errBufferTooSmall
	}

	v.PutBytes(p)

	return 4, nil
}

// Unpack implements [struc.Custom]. Decoding from a stream is not supported;
// construct values from already-read bytes with [UInt16BothByteFromBytes]
// instead.
func (v UInt16BothByte) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	return errUnimplemented
}

// Size implements [struc.Custom]. It always reports four bytes.
func (v UInt16BothByte) Size(_ *struc.Options) int {
	return 4
}

// UInt32BothByte is an unsigned 32-bit integer represented in both little
// endian and big endian, in a 64-bit container.
//
// The encoding is [ <little endian unsigned 32-bit integer>, <big endian
// unsigned 32-bit integer> ]
//
// UInt32BothByte can be encoded by the [struc] library.
type UInt32BothByte struct {
	little LittleEndian[uint32]
	big    BigEndian[uint32]
}

// AsUInt32BothByte creates a [UInt32BothByte] from an unsigned 32-bit integer.
func AsUInt32BothByte(value uint32) UInt32BothByte {
	return UInt32BothByte{
		little: AsLittleEndian(value),
		big:    AsBigEndian(value),
	}
}

// UInt32BothByteFromBytes wraps an integer whose both-byte encoding is held
// in the leading eight bytes of b. It panics if b is shorter than eight
// bytes.
//
// Both halves are taken verbatim and are not checked against each other; if
// the two halves of a malformed encoding disagree, the little-endian half is
// the one reported by [UInt32BothByte.Native].
func UInt32BothByteFromBytes(b []byte) UInt32BothByte {
	return UInt32BothByte{
		little: LittleEndianFromBytes[uint32](b),
		big:    BigEndianFromBytes[uint32](b[4:]),
	}
}

// Native returns the value in the platform's native byte order.
func (v UInt32BothByte) Native() uint32 {
	return v.little.Native()
}

// Little returns the little-endian half of the encoding.
func (v UInt32BothByte) Little() LittleEndian[uint32] {
	return v.little
}

// Big returns the big-endian half of the encoding.
func (v UInt32BothByte) Big() BigEndian[uint32] {
	return v.big
}

// PutBytes copies the value's both-byte encoding into the leading eight
// bytes of b. It panics if b is shorter than eight bytes.
func (v UInt32BothByte) PutBytes(b []byte) {
	v.little.PutBytes(b)
	v.big.PutBytes(b[4:])
}

// Append appends the value's both-byte encoding to b and returns the
// extended slice.
func (v UInt32BothByte) Append(b []byte) []byte {
	b = v.little.Append(b)
	return v.big.Append(b)
}

func (v UInt32BothByte) String() string {
	return fmt.Sprint(v.Native())
}

var _ struc.Custom = UInt32BothByte{}

// Pack implements [struc.Custom]. The field packs to eight bytes: the
// little-endian half followed by the big-endian half.
func (v UInt32BothByte) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < 8 {
		return 0, errBufferTooSmall
	}

	v.PutBytes(p)

	return 8, nil
}

// Unpack implements [struc.Custom]. Decoding from a stream is not supported;
// construct values from already-read bytes with [UInt32BothByteFromBytes]
// instead.
func (v UInt32BothByte) Unpack(_ io.Reader, _ int, _ *struc.Options) error {
	return errUnimplemented
}

// Size implements [struc.Custom]. It always reports eight bytes.
func (v UInt32BothByte) Size(_ *struc.Options) int {
	return 8
}
