package mcwire

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/oakmoss/mcwire/errs"
	"github.com/oakmoss/mcwire/varint"
)

// WriteString writes s as a VarInt code-point count followed by that many
// big-endian 32-bit Unicode code point values.
//
// This is §4.3's documented wire format, which spec.md's own design notes
// flag as likely a divergence from the real Minecraft protocol (which is
// VarInt *byte*-length-prefixed UTF-8): it is preserved here for fidelity to
// the source this module was built from, not because it is believed to be
// protocol-correct.
func WriteString(w io.Writer, s string) error {
	runes := []rune(s)
	if len(runes) > math.MaxInt32 {
		return errs.HumongousStringErr
	}

	if err := varint.WriteVarInt(w, int32(len(runes))); err != nil {
		return err
	}

	for _, r := range runes {
		if err := WriteInt32(w, int32(uint32(r))); err != nil {
			return err
		}
	}
	return nil
}

// ReadString reads a VarInt code-point count followed by that many
// big-endian 32-bit code point values, decoding each as a Unicode scalar
// value. A code point outside [0, 0x10FFFF] or within the surrogate range
// fails with InvalidString.
func ReadString(r io.Reader) (string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		return "", errs.Customf("ReadString requires an io.ByteReader for its VarInt length prefix")
	}

	n, err := varint.ReadVarInt(br)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errs.NegativeSize(int64(n))
	}

	runes := make([]rune, 0, n)
	for i := int32(0); i < n; i++ {
		cp, err := ReadInt32(r)
		if err != nil {
			return "", err
		}
		u := uint32(cp)
		if u > utf8.MaxRune || (u >= 0xD800 && u <= 0xDFFF) {
			return "", errs.InvalidStringErr
		}
		runes = append(runes, rune(u))
	}

	return string(runes), nil
}
