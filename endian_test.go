package endian

import (
	"bytes"
	"fmt"
	"github.com/davejbax/go-endian/internal/byteorder"
	"github.com/lunixbochs/struc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"unsafe"
)

func TestAsLittleEndian(t *testing.T) {
	cases := []struct {
		input    uint32
		expected [4]byte
	}{
		{0x00000000, [4]byte{0x00, 0x00, 0x00, 0x00}},
		{0x000000FF, [4]byte{0xFF, 0x00, 0x00, 0x00}},
		{0x12345678, [4]byte{0x78, 0x56, 0x34, 0x12}},
		{0xDEADBEEF, [4]byte{0xEF, 0xBE, 0xAD, 0xDE}},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%08x", c.input), func(t *testing.T) {
			t.Parallel()

			v := AsLittleEndian(c.input)

			var buff [4]byte
			v.PutBytes(buff[:])

			assert.Equal(t, c.expected, buff, "value should encode least significant byte first")
			assert.Equal(t, c.input, v.Native(), "Native should return the original value")
		})
	}
}

func TestAsBigEndian(t *testing.T) {
	cases := []struct {
		input    uint32
		expected [4]byte
	}{
		{0x00000000, [4]byte{0x00, 0x00, 0x00, 0x00}},
		{0x000000FF, [4]byte{0x00, 0x00, 0x00, 0xFF}},
		{0x12345678, [4]byte{0x12, 0x34, 0x56, 0x78}},
		{0xDEADBEEF, [4]byte{0xDE, 0xAD, 0xBE, 0xEF}},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%08x", c.input), func(t *testing.T) {
			t.Parallel()

			v := AsBigEndian(c.input)

			var buff [4]byte
			v.PutBytes(buff[:])

			assert.Equal(t, c.expected, buff, "value should encode most significant byte first")
			assert.Equal(t, c.input, v.Native(), "Native should return the original value")
		})
	}
}

func testRoundTrip[T Integer](t *testing.T, values ...T) {
	t.Helper()

	for _, value := range values {
		assert.Equal(t, value, AsLittleEndian(value).Native(), "little-endian round trip should return the original value")
		assert.Equal(t, value, AsBigEndian(value).Native(), "big-endian round trip should return the original value")
	}
}

func TestNative_RoundTrip(t *testing.T) {
	testRoundTrip(t, uint8(0), uint8(1), uint8(0xFF))
	testRoundTrip(t, int8(-128), int8(-1), int8(127))
	testRoundTrip(t, uint16(0), uint16(0xABCD), uint16(0xFFFF))
	testRoundTrip(t, int16(-32768), int16(-2), int16(32767))
	testRoundTrip(t, uint32(0xDEADBEEF), uint32(0xFFFFFFFF))
	testRoundTrip(t, int32(-2147483648), int32(2147483647))
	testRoundTrip(t, uint64(0x0102030405060708), uint64(0xFFFFFFFFFFFFFFFF))
	testRoundTrip(t, int64(-9223372036854775808), int64(9223372036854775807))
	testRoundTrip(t, uint(1), uint(0xDEAD))
	testRoundTrip(t, int(-42), int(42))
	testRoundTrip(t, uintptr(0xBEEF))
}

func TestConversion(t *testing.T) {
	le := AsLittleEndian(uint32(0xDEADBEEF))
	be := le.Big()

	var buff [4]byte
	be.PutBytes(buff[:])

	assert.Equal(t, [4]byte{0xDE, 0xAD, 0xBE, 0xEF}, buff, "converting to big endian should reverse the encoded bytes")
	assert.Equal(t, uint32(0xDEADBEEF), be.Native(), "conversion should preserve the represented value")
	assert.True(t, le.EqualBig(be), "a value should equal its own conversion")
	assert.Equal(t, le, be.Little(), "converting back to little endian should return the original wrapper")
}

func TestLittleEndianFromBits(t *testing.T) {
	v := LittleEndianFromBits(uint16(0x0102))

	assert.Equal(t, uint16(0x0102), v.Bits(), "FromBits should store the bit pattern verbatim")

	expected := uint16(0x0102)
	if byteorder.IsBig {
		expected = 0x0201
	}

	assert.Equal(t, expected, v.Native(), "Native should reinterpret the stored bits as little endian")
}

func TestBigEndianFromBits(t *testing.T) {
	v := BigEndianFromBits(uint16(0x0102))

	assert.Equal(t, uint16(0x0102), v.Bits(), "FromBits should store the bit pattern verbatim")

	expected := uint16(0x0201)
	if byteorder.IsBig {
		expected = 0x0102
	}

	assert.Equal(t, expected, v.Native(), "Native should reinterpret the stored bits as big endian")
}

func TestFromBytes(t *testing.T) {
	le := LittleEndianFromBytes[uint32]([]byte{0xEF, 0xBE, 0xAD, 0xDE})
	assert.Equal(t, uint32(0xDEADBEEF), le.Native(), "FromBytes should decode least significant byte first")

	be := BigEndianFromBytes[uint32]([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.Equal(t, uint32(0xDEADBEEF), be.Native(), "FromBytes should decode most significant byte first")

	assert.True(t, le.EqualBig(be), "the two decodings should represent the same value")
}

func TestFromBytes_ShortBuffer(t *testing.T) {
	assert.Panics(t, func() {
		LittleEndianFromBytes[uint64](make([]byte, 4))
	}, "FromBytes should panic when given fewer bytes than the width of the integer")

	assert.Panics(t, func() {
		BigEndianFromBytes[uint32](make([]byte, 2))
	}, "FromBytes should panic when given fewer bytes than the width of the integer")
}

func TestLayout(t *testing.T) {
	assert.EqualValues(t, 1, unsafe.Sizeof(UInt8LE{}), "a wrapper should be exactly the size of the integer it wraps")
	assert.EqualValues(t, 2, unsafe.Sizeof(UInt16LE{}), "a wrapper should be exactly the size of the integer it wraps")
	assert.EqualValues(t, 4, unsafe.Sizeof(UInt32LE{}), "a wrapper should be exactly the size of the integer it wraps")
	assert.EqualValues(t, 8, unsafe.Sizeof(UInt64LE{}), "a wrapper should be exactly the size of the integer it wraps")
	assert.EqualValues(t, 1, unsafe.Sizeof(Int8BE{}), "a wrapper should be exactly the size of the integer it wraps")
	assert.EqualValues(t, 2, unsafe.Sizeof(Int16BE{}), "a wrapper should be exactly the size of the integer it wraps")
	assert.EqualValues(t, 4, unsafe.Sizeof(Int32BE{}), "a wrapper should be exactly the size of the integer it wraps")
	assert.EqualValues(t, 8, unsafe.Sizeof(Int64BE{}), "a wrapper should be exactly the size of the integer it wraps")
	assert.Equal(t, unsafe.Sizeof(uint(0)), unsafe.Sizeof(UIntLE{}), "a platform-width wrapper should be exactly the size of uint")
	assert.Equal(t, unsafe.Sizeof(int(0)), unsafe.Sizeof(IntBE{}), "a platform-width wrapper should be exactly the size of int")
	assert.EqualValues(t, 16, unsafe.Sizeof(UInt128LE{}), "a 128-bit wrapper should be exactly 16 bytes")
	assert.EqualValues(t, 16, unsafe.Sizeof(UInt128BE{}), "a 128-bit wrapper should be exactly 16 bytes")
	assert.EqualValues(t, 16, unsafe.Sizeof(Int128LE{}), "a 128-bit wrapper should be exactly 16 bytes")
	assert.EqualValues(t, 16, unsafe.Sizeof(Int128BE{}), "a 128-bit wrapper should be exactly 16 bytes")
	assert.EqualValues(t, 4, unsafe.Sizeof(UInt16BothByte{}), "a both-byte wrapper should be exactly twice the size of the integer it wraps")
	assert.EqualValues(t, 8, unsafe.Sizeof(UInt32BothByte{}), "a both-byte wrapper should be exactly twice the size of the integer it wraps")
}

func TestLayout_Representation(t *testing.T) {
	be := AsBigEndian(uint32(0xDEADBEEF))
	assert.Equal(t, [4]byte{0xDE, 0xAD, 0xBE, 0xEF}, *(*[4]byte)(unsafe.Pointer(&be)), "the in-memory bytes of a wrapper should be its encoding")

	le := AsLittleEndian(uint32(0xDEADBEEF))
	assert.Equal(t, [4]byte{0xEF, 0xBE, 0xAD, 0xDE}, *(*[4]byte)(unsafe.Pointer(&le)), "the in-memory bytes of a wrapper should be its encoding")

	// The layout guarantee is what makes overlaying a wrapper on a raw
	// buffer -- e.g. a mapped file or packet -- well defined.
	buff := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	view := (*UInt32BE)(unsafe.Pointer(&buff[0]))
	assert.Equal(t, uint32(0xDEADBEEF), view.Native(), "a wrapper pointer overlaid on encoded bytes should read the encoded value")
}

func TestAppend(t *testing.T) {
	b := []byte{0x00}
	b = AsBigEndian(uint16(0xABCD)).Append(b)
	b = AsLittleEndian(uint16(0xABCD)).Append(b)

	assert.Equal(t, []byte{0x00, 0xAB, 0xCD, 0xCD, 0xAB}, b, "Append should append each encoding after the existing bytes")
}

func TestPutBytes_ShortBuffer(t *testing.T) {
	assert.Panics(t, func() {
		AsLittleEndian(uint32(1)).PutBytes(make([]byte, 2))
	}, "PutBytes should panic when the buffer is shorter than the integer")
}

func TestString(t *testing.T) {
	assert.Equal(t, "48879", AsLittleEndian(uint32(0xBEEF)).String(), "String should print the represented value, not the stored bits")
	assert.Equal(t, "-2", AsBigEndian(int16(-2)).String(), "String should print signed values with their sign")
}

func testCustomField(t *testing.T, field struc.Custom, expected []byte, expectedSize int) {
	t.Helper()

	size := field.Size(&struc.Options{})
	assert.Equal(t, expectedSize, size, "Size method of field should be correct")

	buff := make([]byte, size)
	written, err := field.Pack(buff, &struc.Options{})

	require.NoError(t, err, "Pack should not return an error")
	assert.Equal(t, size, written, "Pack should write <size> bytes")
	assert.Equal(t, expected, buff, "field should encode to the correct value")
}

func TestLittleEndian_Pack(t *testing.T) {
	testCustomField(t, AsLittleEndian(uint16(0xABCD)), []byte{0xCD, 0xAB}, 2)
	testCustomField(t, AsLittleEndian(uint32(0xDEADBEEF)), []byte{0xEF, 0xBE, 0xAD, 0xDE}, 4)
	testCustomField(t, AsLittleEndian(uint64(0x0102030405060708)), []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, 8)
}

func TestBigEndian_Pack(t *testing.T) {
	testCustomField(t, AsBigEndian(uint16(0xABCD)), []byte{0xAB, 0xCD}, 2)
	testCustomField(t, AsBigEndian(uint32(0xDEADBEEF)), []byte{0xDE, 0xAD, 0xBE, 0xEF}, 4)
	testCustomField(t, AsBigEndian(uint64(0x0102030405060708)), []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, 8)
}

func TestLittleEndian_Pack_InvalidArgs(t *testing.T) {
	v := AsLittleEndian(uint32(0x1234))
	written, err := v.Pack(nil, &struc.Options{})
	assert.Error(t, err, "Pack should return an error when the buffer is too small")
	assert.Equal(t, 0, written, "Pack should not write any bytes when buffer is too small")
}

func TestBigEndian_Pack_InvalidArgs(t *testing.T) {
	v := AsBigEndian(uint32(0x1234))
	written, err := v.Pack(nil, &struc.Options{})
	assert.Error(t, err, "Pack should return an error when the buffer is too small")
	assert.Equal(t, 0, written, "Pack should not write any bytes when buffer is too small")
}

func TestUnpack(t *testing.T) {
	err := AsBigEndian(uint16(1)).Unpack(bytes.NewReader([]byte{0x00, 0x01}), 2, &struc.Options{})
	assert.Error(t, err, "Unpack should report that stream decoding is not supported")
}
