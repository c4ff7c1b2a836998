package mcwire

import (
	"bufio"
	"io"

	"github.com/oakmoss/mcwire/errs"
	"github.com/oakmoss/mcwire/value"
	"github.com/oakmoss/mcwire/varint"
)

// Encoder drives a value.Value (or any type implementing value.Value's
// Emit contract) into the MC wire primitive encoding. Unlike the NBT
// encoder, it carries no framing state between calls: every MC wire value
// is self-contained, so Encoder implements value.Sink directly with no
// frame stack, composing the primitive and VarInt codecs (§4.1-§4.4).
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

func (e *Encoder) VisitInt8(v int8) error     { return WriteInt8(e.w, v) }
func (e *Encoder) VisitInt16(v int16) error   { return WriteInt16(e.w, v) }
func (e *Encoder) VisitInt32(v int32) error   { return WriteInt32(e.w, v) }
func (e *Encoder) VisitInt64(v int64) error   { return WriteInt64(e.w, v) }
func (e *Encoder) VisitFloat32(v float32) error { return WriteFloat32(e.w, v) }
func (e *Encoder) VisitFloat64(v float64) error { return WriteFloat64(e.w, v) }
func (e *Encoder) VisitBool(v bool) error     { return WriteBool(e.w, v) }
func (e *Encoder) VisitString(v string) error { return WriteString(e.w, v) }

// VisitBytes is unsupported at the MC primitive layer: the source this
// module was built from only ever serializes byte slices as VarInt/VarLong
// payloads (package varint), never as a generic "bytes" value.
func (e *Encoder) VisitBytes(v []byte) error {
	return errs.Customf("mcwire: raw byte slices are not a supported wire value")
}

// VisitSeq writes the sequence as a VarInt length prefix followed by each
// element in turn, mirroring the Rust source's SerializeSeq (which requires
// a known length up front).
func (e *Encoder) VisitSeq(seq value.SeqEmitter) error {
	n := seq.Len()
	if err := varint.WriteVarInt(e.w, int32(n)); err != nil {
		return err
	}
	for {
		ok, err := seq.Next(e)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// VisitMap is unsupported: the MC coder this module is grounded on never
// implements serialize_map (it is left `unimplemented!()` in the source).
func (e *Encoder) VisitMap(m value.MapEmitter) error {
	return errs.Customf("mcwire: map values are not supported by the MC wire coder")
}

// VarInt and VarLong are convenience wrappers so callers can drive a VarInt
// or VarLong value through the same Encoder as everything else.
func (e *Encoder) VarInt(v int32) error  { return varint.WriteVarInt(e.w, v) }
func (e *Encoder) VarLong(v int64) error { return varint.WriteVarLong(e.w, v) }

// Position writes p's packed 64-bit encoding.
func (e *Encoder) Position(p Position) error { return WritePosition(e.w, p) }

// Decoder drives decoded MC wire bytes into a value.Builder. Like Encoder,
// it is stateless between calls: every MC value is self-describing only in
// the sense that the caller already knows what type to expect (the MC
// protocol is not self-describing the way NBT is), so Decoder exposes one
// typed Read method per primitive plus a generic Sequence helper.
type Decoder struct {
	r  io.Reader
	br *bufio.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br, br: br}
}

func (d *Decoder) Bool() (bool, error)       { return ReadBool(d.r) }
func (d *Decoder) Int8() (int8, error)       { return ReadInt8(d.r) }
func (d *Decoder) Int16() (int16, error)     { return ReadInt16(d.r) }
func (d *Decoder) Int32() (int32, error)     { return ReadInt32(d.r) }
func (d *Decoder) Int64() (int64, error)     { return ReadInt64(d.r) }
func (d *Decoder) Float32() (float32, error) { return ReadFloat32(d.r) }
func (d *Decoder) Float64() (float64, error) { return ReadFloat64(d.r) }
func (d *Decoder) String() (string, error)   { return ReadString(d.r) }
func (d *Decoder) VarInt() (int32, error)    { return varint.ReadVarInt(d.br) }
func (d *Decoder) VarLong() (int64, error)   { return varint.ReadVarLong(d.br) }
func (d *Decoder) Position() (Position, error) { return ReadPosition(d.r) }

// Sequence decodes a VarInt-prefixed sequence of length n, invoking
// decodeElement once per element with the fresh element Builder returned by
// the SeqBuilder that b.BeginSeq supplies.
func (d *Decoder) Sequence(b value.Builder, decodeElement func(*Decoder, value.Builder) error) error {
	n, err := d.VarInt()
	if err != nil {
		return err
	}
	if n < 0 {
		return errs.NegativeSize(int64(n))
	}

	seq, err := b.BeginSeq(int(n))
	if err != nil {
		return err
	}

	for i := int32(0); i < n; i++ {
		el, err := seq.Element()
		if err != nil {
			return err
		}
		if err := decodeElement(d, el); err != nil {
			return err
		}
	}

	return seq.End()
}
