package nbt

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/oakmoss/mcwire/errs"
	"github.com/oakmoss/mcwire/internal/cesu8"
)

// writeStringPayload writes an NBT string payload: a big-endian u16 byte
// length followed by CESU-8 bytes (§4.5). Strings whose CESU-8 encoding
// exceeds 65535 bytes fail with HumongousString.
func writeStringPayload(w io.Writer, s string) error {
	buf := cesu8.Encode(s)
	if len(buf) > math.MaxUint16 {
		return errs.HumongousStringErr
	}

	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(buf)))
	if err := writeAll(w, lenBuf[:]); err != nil {
		return err
	}
	return writeAll(w, buf)
}

// readStringPayload reads an NBT string payload.
func readStringPayload(r io.Reader) (string, error) {
	var lenBuf [2]byte
	if err := readFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(lenBuf[:])

	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return "", err
	}

	s, ok := cesu8.Decode(buf)
	if !ok {
		return "", errs.InvalidStringErr
	}
	return s, nil
}

// writeByteArrayPayload writes an NBT byte array payload: a big-endian i32
// length followed by the raw bytes (§4.5).
func writeByteArrayPayload(w io.Writer, buf []byte) error {
	if len(buf) > math.MaxInt32 {
		return errs.Customf("byte array too long for NBT format")
	}

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(buf)))
	if err := writeAll(w, lenBuf[:]); err != nil {
		return err
	}
	return writeAll(w, buf)
}

// readByteArrayPayload reads an NBT byte array payload. A negative decoded
// length fails with SizeOverflow.
func readByteArrayPayload(r io.Reader) ([]byte, error) {
	n, err := readInt32Payload(r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.NegativeSize(int64(n))
	}

	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
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
