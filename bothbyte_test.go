package endian

import (
	"fmt"
	"github.com/lunixbochs/struc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestUInt16BothByte(t *testing.T) {
	cases := []struct {
		input    uint16
		expected [4]byte
	}{
		{0x00, [4]byte{0x00, 0x00, 0x00, 0x00}},
		{0xABCD, [4]byte{0xCD, 0xAB, 0xAB, 0xCD}},
		{0x00F7, [4]byte{0xF7, 0x00, 0x00, 0xF7}},
		{0x7F00, [4]byte{0x00, 0x7F, 0x7F, 0x00}},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%02x", c.input), func(t *testing.T) {
			t.Parallel()

			field := AsUInt16BothByte(c.input)
			testCustomField(t, field, c.expected[:], 4)

			assert.Equal(t, c.input, field.Native(), "Native should return the original value")
			assert.Equal(t, c.input, field.Little().Native(), "the little-endian half should hold the value")
			assert.Equal(t, c.input, field.Big().Native(), "the big-endian half should hold the value")
		})
	}
}

func TestUInt16BothByte_Pack_InvalidArgs(t *testing.T) {
	bothByte := AsUInt16BothByte(0x1234)
	written, err := bothByte.Pack(nil, &struc.Options{})
	assert.Error(t, err, "Pack should return an error when the buffer is too small")
	assert.Equal(t, 0, written, "Pack should not write any bytes when buffer is too small")
}

func TestUInt32BothByte(t *testing.T) {
	cases := []struct {
		input    uint32
		expected [8]byte
	}{
		{0x00, [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{0xABCD, [8]byte{0xCD, 0xAB, 0x00, 0x00, 0x00, 0x00, 0xAB, 0xCD}},
		{0x00F7, [8]byte{0xF7, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF7}},
		{0x7F00, [8]byte{0x00, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x7F, 0x00}},
		{0x123456, [8]byte{0x56, 0x34, 0x12, 0x00, 0x00, 0x12, 0x34, 0x56}},
		{0x12345678, [8]byte{0x78, 0x56, 0x34, 0x12, 0x12, 0x34, 0x56, 0x78}},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%02x", c.input), func(t *testing.T) {
			t.Parallel()

			field := AsUInt32BothByte(c.input)
			testCustomField(t, field, c.expected[:], 8)

			assert.Equal(t, c.input, field.Native(), "Native should return the original value")
			assert.Equal(t, c.input, field.Little().Native(), "the little-endian half should hold the value")
			assert.Equal(t, c.input, field.Big().Native(), "the big-endian half should hold the value")
		})
	}
}

func TestUInt32BothByte_Pack_InvalidArgs(t *testing.T) {
	bothByte := AsUInt32BothByte(0x1234)
	written, err := bothByte.Pack(nil, &struc.Options{})
	assert.Error(t, err, "Pack should return an error when the buffer is too small")
	assert.Equal(t, 0, written, "Pack should not write any bytes when buffer is too small")
}

func TestUInt16BothByteFromBytes(t *testing.T) {
	v := UInt16BothByteFromBytes([]byte{0xCD, 0xAB, 0xAB, 0xCD})

	assert.Equal(t, uint16(0xABCD), v.Native(), "FromBytes should decode the little-endian half")
	assert.Equal(t, AsUInt16BothByte(0xABCD), v, "FromBytes should reproduce the encoded value exactly")
}

func TestUInt32BothByteFromBytes(t *testing.T) {
	v := UInt32BothByteFromBytes([]byte{0x78, 0x56, 0x34, 0x12, 0x12, 0x34, 0x56, 0x78})

	assert.Equal(t, uint32(0x12345678), v.Native(), "FromBytes should decode the little-endian half")
	assert.Equal(t, AsUInt32BothByte(0x12345678), v, "FromBytes should reproduce the encoded value exactly")
}

func TestUInt16BothByte_Append(t *testing.T) {
	b := AsUInt16BothByte(0xABCD).Append([]byte{0xFF})

	assert.Equal(t, []byte{0xFF, 0xCD, 0xAB, 0xAB, 0xCD}, b, "Append should append the full both-byte encoding after the existing bytes")
}
