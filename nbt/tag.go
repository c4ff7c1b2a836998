// Package nbt implements Minecraft's Named Binary Tag format: a
// self-describing, hierarchical binary document format built from the tag
// taxonomy in TypeID below. It provides a serializer (Encoder) and
// deserializer (Decoder) that drive the value.Sink/value.Builder visitor
// interfaces from package value, plus Marshal/Unmarshal convenience
// functions over the concrete value.Value tree.
//
// The tag set and the framing rules (who gets a TypeID byte, who gets a
// name, how lists declare their element type lazily) are grounded on
// landru27-nbt's NBTTAG/NBT types, generalized here into the state-machine
// form the specification this module implements requires: a real frame
// stack tracking FirstListItem/InList/CompoundBeforeEntry* transitions,
// rather than landru27-nbt's single recursive function with a sentinel
// "TAG_NULL means read the type from the stream" argument.
package nbt

import "fmt"

// TypeID identifies an NBT tag's payload shape.
type TypeID byte

// The eleven-wide tag taxonomy this module implements (§3). landru27-nbt's
// source additionally defines TAG_Int_Array (11) and TAG_Long_Array (12);
// those are not part of the specification this module targets (§3's table
// stops at Compound=10) and are intentionally not carried forward — see
// DESIGN.md.
const (
	TagEnd TypeID = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
)

var tagNames = map[TypeID]string{
	TagEnd:       "TAG_End",
	TagByte:      "TAG_Byte",
	TagShort:     "TAG_Short",
	TagInt:       "TAG_Int",
	TagLong:      "TAG_Long",
	TagFloat:     "TAG_Float",
	TagDouble:    "TAG_Double",
	TagByteArray: "TAG_Byte_Array",
	TagString:    "TAG_String",
	TagList:      "TAG_List",
	TagCompound:  "TAG_Compound",
}

// String implements fmt.Stringer, matching landru27-nbt's NBTTAG.String()
// convention of naming the tag alongside its numeric TypeID.
func (t TypeID) String() string {
	name, ok := tagNames[t]
	if !ok {
		name = "TAG_Unknown"
	}
	return fmt.Sprintf("%s (0x%02x)", name, byte(t))
}

// valid reports whether t is one of the eleven known tags.
func (t TypeID) valid() bool {
	_, ok := tagNames[t]
	return ok
}
