package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

func writeInt8Payload(w io.Writer, v int8) error { return writeAll(w, []byte{byte(v)}) }

func readInt8Payload(r io.Reader) (int8, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int8(buf[0]), nil
}

func writeInt16Payload(w io.Writer, v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	return writeAll(w, buf[:])
}

func readInt16Payload(r io.Reader) (int16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func writeInt32Payload(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	return writeAll(w, buf[:])
}

func readInt32Payload(r io.Reader) (int32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func writeInt64Payload(w io.Writer, v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	return writeAll(w, buf[:])
}

func readInt64Payload(r io.Reader) (int64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func writeFloat32Payload(w io.Writer, v float32) error {
	return writeInt32Payload(w, int32(math.Float32bits(v)))
}

func readFloat32Payload(r io.Reader) (float32, error) {
	bits, err := readInt32Payload(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

func writeFloat64Payload(w io.Writer, v float64) error {
	return writeInt64Payload(w, int64(math.Float64bits(v)))
}

func readFloat64Payload(r io.Reader) (float64, error) {
	bits, err := readInt64Payload(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

func writeTypeID(w io.Writer, t TypeID) error { return writeAll(w, []byte{byte(t)}) }

func readTypeID(r io.Reader) (TypeID, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return TypeID(buf[0]), nil
}
