package nbt

import (
	"io"

	"github.com/oakmoss/mcwire/errs"
	"github.com/oakmoss/mcwire/value"
)

// Decoder drives bytes read from r into a value.Builder by recursing on
// the TypeID it just read. Unlike Encoder, the deserializer controls its
// own call order — it reads a header, then decides what to do next — so
// its states (reading a list's declared size and element type before the
// first item, reading a compound entry's name before its payload) are
// realized as plain recursive calls and loop-local variables rather than
// an explicit frame stack.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// Unmarshal reads one complete named document from r: a TypeID byte, an
// NBT string name, and that TypeID's payload, decoded into a fresh
// value.TreeBuilder.
func Unmarshal(r io.Reader) (string, value.Value, error) {
	d := NewDecoder(r)

	tag, err := readTypeID(d.r)
	if err != nil {
		return "", nil, err
	}
	if !tag.valid() {
		return "", nil, errs.InvalidTag(byte(tag))
	}

	name, err := readStringPayload(d.r)
	if err != nil {
		return "", nil, err
	}

	tb := &value.TreeBuilder{}
	if err := d.decodePayload(tag, tb); err != nil {
		return "", nil, err
	}
	return name, tb.Result, nil
}

// Decode reads one complete named document from r into b, an arbitrary
// caller-supplied Builder, and returns the document's root name.
func (d *Decoder) Decode(b value.Builder) (string, error) {
	tag, err := readTypeID(d.r)
	if err != nil {
		return "", err
	}
	if !tag.valid() {
		return "", errs.InvalidTag(byte(tag))
	}

	name, err := readStringPayload(d.r)
	if err != nil {
		return "", err
	}

	return name, d.decodePayload(tag, b)
}

// decodePayload reads tag's payload and delivers it to b. tag must already
// be known valid.
func (d *Decoder) decodePayload(tag TypeID, b value.Builder) error {
	switch tag {
	case TagByte:
		v, err := readInt8Payload(d.r)
		if err != nil {
			return err
		}
		return b.Int8(v)
	case TagShort:
		v, err := readInt16Payload(d.r)
		if err != nil {
			return err
		}
		return b.Int16(v)
	case TagInt:
		v, err := readInt32Payload(d.r)
		if err != nil {
			return err
		}
		return b.Int32(v)
	case TagLong:
		v, err := readInt64Payload(d.r)
		if err != nil {
			return err
		}
		return b.Int64(v)
	case TagFloat:
		v, err := readFloat32Payload(d.r)
		if err != nil {
			return err
		}
		return b.Float32(v)
	case TagDouble:
		v, err := readFloat64Payload(d.r)
		if err != nil {
			return err
		}
		return b.Float64(v)
	case TagByteArray:
		v, err := readByteArrayPayload(d.r)
		if err != nil {
			return err
		}
		return b.Bytes(v)
	case TagString:
		v, err := readStringPayload(d.r)
		if err != nil {
			return err
		}
		return b.String(v)
	case TagList:
		return d.decodeListPayload(b)
	case TagCompound:
		return d.decodeCompoundPayload(b)
	case TagEnd:
		return errs.Customf("nbt: TAG_End cannot appear as a value's own TypeID")
	default:
		return errs.InvalidTag(byte(tag))
	}
}

// decodeListPayload reads a TAG_List payload: an element TypeID, an i32
// length, and that many elements of the declared type.
func (d *Decoder) decodeListPayload(b value.Builder) error {
	elemType, err := readTypeID(d.r)
	if err != nil {
		return err
	}

	size, err := readInt32Payload(d.r)
	if err != nil {
		return err
	}
	if size < 0 {
		return errs.NegativeSize(int64(size))
	}

	if elemType == TagEnd {
		if size != 0 {
			return errs.Customf("nbt: list declares TAG_End element type with nonzero size %d", size)
		}
	} else if !elemType.valid() {
		return errs.InvalidTag(byte(elemType))
	}

	seq, err := b.BeginSeq(int(size))
	if err != nil {
		return err
	}

	for i := int32(0); i < size; i++ {
		el, err := seq.Element()
		if err != nil {
			return err
		}
		if err := d.decodePayload(elemType, el); err != nil {
			return err
		}
	}

	return seq.End()
}

// decodeCompoundPayload reads a TAG_Compound payload: repeated
// (TypeID, name, payload) entries terminated by a single TAG_End byte.
func (d *Decoder) decodeCompoundPayload(b value.Builder) error {
	m, err := b.BeginMap()
	if err != nil {
		return err
	}

	for {
		tag, err := readTypeID(d.r)
		if err != nil {
			return err
		}
		if tag == TagEnd {
			break
		}
		if !tag.valid() {
			return errs.InvalidTag(byte(tag))
		}

		name, err := readStringPayload(d.r)
		if err != nil {
			return err
		}

		keyBuilder, err := m.Key()
		if err != nil {
			return err
		}
		if err := keyBuilder.String(name); err != nil {
			return err
		}

		valueBuilder, err := m.Value()
		if err != nil {
			return err
		}
		if err := d.decodePayload(tag, valueBuilder); err != nil {
			return err
		}
	}

	return m.End()
}
