package value

import (
	"fmt"
	"strings"
)

// Format renders v as an indented, human-readable tree, the way
// landru27-nbt's NBTTAG.String() names a tag for debugging: every scalar
// shows its Kind and value (Bytes shows its length only), every
// List/Compound recurses one level deeper. This is a debugging aid, not a
// wire format.
func Format(v Value) string {
	var b strings.Builder
	writeValue(&b, v, 0)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := v.(type) {
	case Int8:
		fmt.Fprintf(b, "%sInt8(%d)\n", indent, int8(t))
	case Int16:
		fmt.Fprintf(b, "%sInt16(%d)\n", indent, int16(t))
	case Int32:
		fmt.Fprintf(b, "%sInt32(%d)\n", indent, int32(t))
	case Int64:
		fmt.Fprintf(b, "%sInt64(%d)\n", indent, int64(t))
	case Float32:
		fmt.Fprintf(b, "%sFloat32(%g)\n", indent, float32(t))
	case Float64:
		fmt.Fprintf(b, "%sFloat64(%g)\n", indent, float64(t))
	case Bool:
		fmt.Fprintf(b, "%sBool(%t)\n", indent, bool(t))
	case Bytes:
		fmt.Fprintf(b, "%sBytes(%d bytes)\n", indent, len(t))
	case String:
		fmt.Fprintf(b, "%sString(%q)\n", indent, string(t))
	case List:
		fmt.Fprintf(b, "%sList[%d]\n", indent, len(t))
		for _, item := range t {
			writeValue(b, item, depth+1)
		}
	case Compound:
		fmt.Fprintf(b, "%sCompound{%d}\n", indent, len(t))
		for _, entry := range t {
			fmt.Fprintf(b, "%s  %s:\n", indent, entry.Key)
			writeValue(b, entry.Value, depth+2)
		}
	default:
		fmt.Fprintf(b, "%s<unknown %T>\n", indent, v)
	}
}
