// Package endian provides integer wrapper types that are pinned to a specific
// byte order, so that values laid out in a binary format can be stored,
// compared, and operated on without manual byte swapping at every use site.
//
// A [LittleEndian] or [BigEndian] value holds one integer whose in-memory bit
// pattern is always the integer encoded in the wrapper's declared byte order
// -- never the platform's byte order, unless the two happen to coincide. The
// wrapper is a single field of the underlying type, so it has exactly the
// same size and alignment as that type, with no hidden tag bits or padding.
// This makes the wrappers safe to place directly inside wire-format structs:
// the raw bytes of a wrapper are the encoded form of the value.
//
// Wrappers convert freely to and from native integers and to the
// opposite-endian wrapper, and every comparison and arithmetic method accepts
// a same-endian wrapper, an opposite-endian wrapper, or a native integer on
// the right-hand side. The byte-order tag describes storage only; it never
// changes what a value means, so mixed-endian operands always produce the
// mathematically correct result:
//
//	a := endian.AsLittleEndian(uint32(1))
//	b := endian.AsBigEndian(uint32(2))
//	a.AddBig(b).Native() // == 3, stored little-endian
//
// Operations with a native integer on the left-hand side need no support from
// this package: x + w.Native() already has the required semantics (a native
// result, with no re-encoding).
//
// All operations are total: nothing in this package returns an error or
// panics for any well-typed input, with the sole exception of the byte-slice
// helpers, which follow [encoding/binary]'s convention of panicking when the
// provided slice is too short.
package endian

import (
	"errors"
	"golang.org/x/exp/constraints"
)

// Integer is the constraint satisfied by the underlying types a wrapper can
// hold: every primitive integer kind -- 8-, 16-, 32- and 64-bit widths in
// both signednesses, plus the platform-native-width int, uint and uintptr --
// and any type defined on top of one. Go has no primitive 128-bit integer;
// see [UInt128LE], [UInt128BE], [Int128LE] and [Int128BE] for that width.
type Integer = constraints.Integer

var (
	errUnimplemented  = errors.New("method is not implemented")
	errBufferTooSmall = errors.New("provided slice buffer is not big enough to pack all data into")
)
