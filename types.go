package endian

// This file declares fixed-order aliases for every built-in integer type.
// Because they are aliases rather than defined types, each one carries the
// full method set of its [LittleEndian] or [BigEndian] instantiation, and
// values convert freely to and from the generic form.

// UInt8LE is an unsigned 8-bit integer held in little-endian byte order.
type UInt8LE = LittleEndian[uint8]

// UInt16LE is an unsigned 16-bit integer held in little-endian byte order.
type UInt16LE = LittleEndian[uint16]

// UInt32LE is an unsigned 32-bit integer held in little-endian byte order.
type UInt32LE = LittleEndian[uint32]

// UInt64LE is an unsigned 64-bit integer held in little-endian byte order.
type UInt64LE = LittleEndian[uint64]

// UIntLE is an unsigned platform-width integer held in little-endian byte
// order. Its encoded width is the width of uint, and so varies with the
// platform.
type UIntLE = LittleEndian[uint]

// Int8LE is a signed 8-bit integer held in little-endian byte order.
type Int8LE = LittleEndian[int8]

// Int16LE is a signed 16-bit integer held in little-endian byte order.
type Int16LE = LittleEndian[int16]

// Int32LE is a signed 32-bit integer held in little-endian byte order.
type Int32LE = LittleEndian[int32]

// Int64LE is a signed 64-bit integer held in little-endian byte order.
type Int64LE = LittleEndian[int64]

// IntLE is a signed platform-width integer held in little-endian byte order.
// Its encoded width is the width of int, and so varies with the platform.
type IntLE = LittleEndian[int]

// UInt8BE is an unsigned 8-bit integer held in big-endian byte order.
type UInt8BE = BigEndian[uint8]

// UInt16BE is an unsigned 16-bit integer held in big-endian byte order.
type UInt16BE = BigEndian[uint16]

// UInt32BE is an unsigned 32-bit integer held in big-endian byte order.
type UInt32BE = BigEndian[uint32]

// UInt64BE is an unsigned 64-bit integer held in big-endian byte order.
type UInt64BE = BigEndian[uint64]

// UIntBE is an unsigned platform-width integer held in big-endian byte
// order. Its encoded width is the width of uint, and so varies with the
// platform.
type UIntBE = BigEndian[uint]

// Int8BE is a signed 8-bit integer held in big-endian byte order.
type Int8BE = BigEndian[int8]

// Int16BE is a signed 16-bit integer held in big-endian byte order.
type Int16BE = BigEndian[int16]

// Int32BE is a signed 32-bit integer held in big-endian byte order.
type Int32BE = BigEndian[int32]

// Int64BE is a signed 64-bit integer held in big-endian byte order.
type Int64BE = BigEndian[int64]

// IntBE is a signed platform-width integer held in big-endian byte order.
// Its encoded width is the width of int, and so varies with the platform.
type IntBE = BigEndian[int]
