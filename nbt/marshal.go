package nbt

import (
	"io"

	"github.com/oakmoss/mcwire/value"
)

// Marshal writes v to w as a complete named NBT document: a TypeID byte,
// rootName, and v's payload, driving v.Emit through a fresh Encoder.
func Marshal(w io.Writer, rootName string, v value.Value) error {
	return v.Emit(NewEncoder(w, rootName))
}
