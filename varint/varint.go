// Package varint implements the VarInt/VarLong 7-bit continuation integer
// encoding used by the Minecraft wire protocol: consecutive 7-bit groups,
// least-significant first, with the high bit set on every byte but the last.
//
// VarInt wraps a signed 32-bit integer; VarLong wraps a signed 64-bit
// integer. Both treat the value as an unsigned bit pattern of its native
// width during encode, so negative values always use the maximum byte width
// (5 for VarInt, 10 for VarLong) because sign extension fills the high bits.
package varint

import (
	"io"

	"github.com/oakmoss/mcwire/errs"
)

const (
	// MaxVarIntBytes is the maximum number of bytes a VarInt can occupy.
	MaxVarIntBytes = 5
	// MaxVarLongBytes is the maximum number of bytes a VarLong can occupy.
	MaxVarLongBytes = 10

	continuationBit = 0x80
	payloadMask     = 0x7F
)

// EncodeVarInt appends the VarInt encoding of v to dst and returns the
// extended slice.
func EncodeVarInt(dst []byte, v int32) []byte {
	return encode(dst, uint64(uint32(v)), MaxVarIntBytes)
}

// EncodeVarLong appends the VarLong encoding of v to dst and returns the
// extended slice.
func EncodeVarLong(dst []byte, v int64) []byte {
	return encode(dst, uint64(v), MaxVarLongBytes)
}

func encode(dst []byte, v uint64, maxBytes int) []byte {
	if v == 0 {
		return append(dst, 0x00)
	}

	for i := 0; i < maxBytes; i++ {
		rest := v >> 7
		b := byte(v&payloadMask) | continuationBit
		v = rest
		if rest == 0 {
			dst = append(dst, b&^continuationBit)
			return dst
		}
		dst = append(dst, b)
	}

	// Unreachable for well-formed 32/64-bit inputs: maxBytes already
	// covers ceil(width/7) groups, so the loop always terminates above.
	return dst
}

// WriteVarInt writes the VarInt encoding of v to w.
func WriteVarInt(w io.Writer, v int32) error {
	return writeBytes(w, EncodeVarInt(nil, v))
}

// WriteVarLong writes the VarLong encoding of v to w.
func WriteVarLong(w io.Writer, v int64) error {
	return writeBytes(w, EncodeVarLong(nil, v))
}

func writeBytes(w io.Writer, buf []byte) error {
	if _, err := w.Write(buf); err != nil {
		return errs.WrapIO(err)
	}
	return nil
}

// ReadVarInt reads and decodes a VarInt from r.
func ReadVarInt(r io.ByteReader) (int32, error) {
	v, err := decode(r, MaxVarIntBytes, 32)
	return int32(uint32(v)), err
}

// ReadVarLong reads and decodes a VarLong from r.
func ReadVarLong(r io.ByteReader) (int64, error) {
	v, err := decode(r, MaxVarLongBytes, 64)
	return int64(v), err
}

func decode(r io.ByteReader, maxBytes int, width uint) (uint64, error) {
	var result uint64
	var shift uint

	for i := 0; i < maxBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, errs.WrapIO(err)
		}

		if shift >= width {
			return 0, errs.HumongousVarIntErr
		}

		result |= uint64(b&payloadMask) << shift

		if b&continuationBit == 0 {
			return result, nil
		}

		shift += 7
	}

	return 0, errs.HumongousVarIntErr
}

// SizeVarInt reports the number of bytes EncodeVarInt(nil, v) would produce,
// without allocating.
func SizeVarInt(v int32) int { return size(uint64(uint32(v))) }

// SizeVarLong reports the number of bytes EncodeVarLong(nil, v) would
// produce, without allocating.
func SizeVarLong(v int64) int { return size(uint64(v)) }

func size(v uint64) int {
	if v == 0 {
		return 1
	}
	n := 0
	for v != 0 {
		n++
		v >>= 7
	}
	return n
}
