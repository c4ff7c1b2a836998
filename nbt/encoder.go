package nbt

import (
	"io"

	"github.com/oakmoss/mcwire/errs"
	"github.com/oakmoss/mcwire/value"
)

// Encoder drives a value.Value through NBT's serializer state machine,
// writing the TypeID+name header for each named tag, the element-TypeID
// and length header for each list, and the TAG_End terminator for each
// compound. It implements value.Sink.
//
// An Encoder is single-use: construct one per document via NewEncoder.
type Encoder struct {
	w     io.Writer
	stack []frame
}

// NewEncoder returns an Encoder that writes a single root value named
// rootName to w.
func NewEncoder(w io.Writer, rootName string) *Encoder {
	return &Encoder{w: w, stack: []frame{&rootFrame{name: rootName}}}
}

func (e *Encoder) push(f frame) { e.stack = append(e.stack, f) }

func (e *Encoder) pop() {
	e.stack = e.stack[:len(e.stack)-1]
}

// beginValue writes whatever header the current frame requires for a value
// of the given tag arriving now (a named tag header, a list's element
// header, or nothing), and reports a Heterogeneous error if tag disagrees
// with an already-declared list element type.
func (e *Encoder) beginValue(tag TypeID) error {
	if len(e.stack) == 0 {
		return errs.Customf("nbt: encoder received a value with no active frame")
	}

	top := e.stack[len(e.stack)-1]
	switch f := top.(type) {
	case *rootFrame:
		if f.written {
			return errs.Customf("nbt: encoder already wrote its root value")
		}
		f.written = true
		e.pop()
		if err := writeTypeID(e.w, tag); err != nil {
			return err
		}
		return writeStringPayload(e.w, f.name)

	case *firstListItemFrame:
		e.stack[len(e.stack)-1] = &inListFrame{typeID: tag, remaining: int(f.size) - 1}
		if err := writeTypeID(e.w, tag); err != nil {
			return err
		}
		return writeInt32Payload(e.w, f.size)

	case *inListFrame:
		if f.typeID != tag {
			return errs.HeterogeneousList(byte(f.typeID), byte(tag))
		}
		f.remaining--
		return nil

	case *compoundBeforeEntryValueFrame:
		e.stack[len(e.stack)-1] = &compoundBeforeEntryFrame{}
		if err := writeTypeID(e.w, tag); err != nil {
			return err
		}
		return writeStringPayload(e.w, f.name)

	default:
		return errs.Customf("nbt: unexpected encoder frame %T", top)
	}
}

func (e *Encoder) VisitInt8(v int8) error {
	if err := e.beginValue(TagByte); err != nil {
		return err
	}
	return writeInt8Payload(e.w, v)
}

func (e *Encoder) VisitInt16(v int16) error {
	if err := e.beginValue(TagShort); err != nil {
		return err
	}
	return writeInt16Payload(e.w, v)
}

func (e *Encoder) VisitInt32(v int32) error {
	if err := e.beginValue(TagInt); err != nil {
		return err
	}
	return writeInt32Payload(e.w, v)
}

func (e *Encoder) VisitInt64(v int64) error {
	if err := e.beginValue(TagLong); err != nil {
		return err
	}
	return writeInt64Payload(e.w, v)
}

func (e *Encoder) VisitFloat32(v float32) error {
	if err := e.beginValue(TagFloat); err != nil {
		return err
	}
	return writeFloat32Payload(e.w, v)
}

func (e *Encoder) VisitFloat64(v float64) error {
	if err := e.beginValue(TagDouble); err != nil {
		return err
	}
	return writeFloat64Payload(e.w, v)
}

// VisitBool is unsupported: bool is one of the value-model variants the
// NBT serializer has no tag for (§4.6 "Unsupported model variants"),
// mirroring nbt/src/ser.rs's ser_unsupported!(serialize_bool: bool, ...)
// list. Callers that need a boolean in an NBT document should encode it as
// an explicit TAG_Byte (value.Int8) themselves, the way Minecraft's own
// data does.
func (e *Encoder) VisitBool(v bool) error {
	return errs.Customf("nbt: bool is not a supported NBT value")
}

func (e *Encoder) VisitBytes(v []byte) error {
	if err := e.beginValue(TagByteArray); err != nil {
		return err
	}
	return writeByteArrayPayload(e.w, v)
}

func (e *Encoder) VisitString(v string) error {
	if err := e.beginValue(TagString); err != nil {
		return err
	}
	return writeStringPayload(e.w, v)
}

// VisitSeq writes a TAG_List: an element TypeID, an i32 length, and each
// element's payload back to back with no further per-element framing. A
// zero-length list writes TypeID TAG_End per the empty-list edge case,
// since there is no first element to learn a real element type from.
func (e *Encoder) VisitSeq(seq value.SeqEmitter) error {
	n := seq.Len()
	if err := e.beginValue(TagList); err != nil {
		return err
	}

	if n == 0 {
		if err := writeTypeID(e.w, TagEnd); err != nil {
			return err
		}
		return writeInt32Payload(e.w, 0)
	}

	e.push(&firstListItemFrame{size: int32(n)})
	for {
		ok, err := seq.Next(e)
		if err != nil {
			e.pop()
			return err
		}
		if !ok {
			break
		}
	}
	e.pop()
	return nil
}

// VisitMap writes a TAG_Compound: each entry as a named-tag header plus
// payload, terminated by a single TAG_End byte.
func (e *Encoder) VisitMap(m value.MapEmitter) error {
	if err := e.beginValue(TagCompound); err != nil {
		return err
	}

	e.push(&compoundBeforeEntryFrame{})
	for {
		var key stringCapture
		ok, err := m.NextKey(&key)
		if err != nil {
			e.pop()
			return err
		}
		if !ok {
			break
		}

		e.stack[len(e.stack)-1] = &compoundBeforeEntryValueFrame{name: key.s}
		if err := m.NextValue(e); err != nil {
			e.pop()
			return err
		}
	}
	e.pop()

	return writeTypeID(e.w, TagEnd)
}

// stringCapture is a value.Sink that accepts only a single VisitString
// call, used to read a compound entry's key without writing it as a value.
type stringCapture struct {
	s string
}

func (c *stringCapture) VisitString(v string) error { c.s = v; return nil }

func (c *stringCapture) notAString() error {
	return errs.Customf("nbt: compound keys must be strings")
}

func (c *stringCapture) VisitInt8(int8) error       { return c.notAString() }
func (c *stringCapture) VisitInt16(int16) error     { return c.notAString() }
func (c *stringCapture) VisitInt32(int32) error     { return c.notAString() }
func (c *stringCapture) VisitInt64(int64) error     { return c.notAString() }
func (c *stringCapture) VisitFloat32(float32) error { return c.notAString() }
func (c *stringCapture) VisitFloat64(float64) error { return c.notAString() }
func (c *stringCapture) VisitBool(bool) error       { return c.notAString() }
func (c *stringCapture) VisitBytes([]byte) error    { return c.notAString() }
func (c *stringCapture) VisitSeq(value.SeqEmitter) error { return c.notAString() }
func (c *stringCapture) VisitMap(value.MapEmitter) error { return c.notAString() }
