// Package mcwire implements the Minecraft client/server wire protocol's
// primitive codec: fixed-width big-endian integers and floats (§4.1),
// VarInt-prefixed strings of 32-bit code points (§4.3), and the bit-packed
// Position type (§4.4). It composes package varint for the VarInt/VarLong
// length prefixes; its Encoder implements value.Sink and its Decoder can
// deliver a sequence to a value.Builder, so application values can be threaded
// through the same generic traversal the nbt package uses.
package mcwire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/oakmoss/mcwire/errs"
)

// WriteBool writes v as a single byte: 0x01 for true, 0x00 for false.
func WriteBool(w io.Writer, v bool) error {
	b := byte(0x00)
	if v {
		b = 0x01
	}
	return writeAll(w, []byte{b})
}

// ReadBool reads a single byte and interprets it as a boolean. Any byte
// value other than 0x00/0x01 fails with InvalidBooleanValue.
func ReadBool(r io.Reader) (bool, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return false, err
	}
	switch buf[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errs.InvalidBoolean(buf[0])
	}
}

// WriteInt8 writes a signed 8-bit integer.
func WriteInt8(w io.Writer, v int8) error { return writeAll(w, []byte{byte(v)}) }

// ReadInt8 reads a signed 8-bit integer.
func ReadInt8(r io.Reader) (int8, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int8(buf[0]), nil
}

// WriteInt16 writes a big-endian signed 16-bit integer.
func WriteInt16(w io.Writer, v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	return writeAll(w, buf[:])
}

// ReadInt16 reads a big-endian signed 16-bit integer.
func ReadInt16(r io.Reader) (int16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

// WriteInt32 writes a big-endian signed 32-bit integer.
func WriteInt32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	return writeAll(w, buf[:])
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func ReadInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

// WriteInt64 writes a big-endian signed 64-bit integer.
func WriteInt64(w io.Writer, v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	return writeAll(w, buf[:])
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func ReadInt64(r io.Reader) (int64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// WriteFloat32 writes the big-endian byte pattern of v's IEEE-754 bits.
func WriteFloat32(w io.Writer, v float32) error {
	return WriteInt32(w, int32(math.Float32bits(v)))
}

// ReadFloat32 reads a float32 from its big-endian IEEE-754 bit pattern. NaN
// bit patterns round-trip verbatim; no NaN equality guarantee is made.
func ReadFloat32(r io.Reader) (float32, error) {
	bits, err := ReadInt32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// WriteFloat64 writes the big-endian byte pattern of v's IEEE-754 bits.
func WriteFloat64(w io.Writer, v float64) error {
	return WriteInt64(w, int64(math.Float64bits(v)))
}

// ReadFloat64 reads a float64 from its big-endian IEEE-754 bit pattern.
func ReadFloat64(r io.Reader) (float64, error) {
	bits, err := ReadInt64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

func writeAll(w io.Writer, buf []byte) error {
	if _, err := w.Write(buf); err != nil {
		return errs.WrapIO(err)
	}
	return nil
}

func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return errs.WrapIO(err)
	}
	return nil
}
