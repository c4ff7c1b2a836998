package nbt_test

import (
	"bytes"
	"testing"

	"github.com/oakmoss/mcwire/nbt"
	"github.com/oakmoss/mcwire/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGoldenFixture checks the serializer against a hand-computed byte
// fixture for a document with String, Double and Int entries plus a list
// of TAG_Byte elements, then
// checks the deserializer reconstructs the original tree from those same
// bytes — independent of whatever the serializer itself just produced.
func TestGoldenFixture(t *testing.T) {
	doc := value.Compound{
		{Key: "name", Value: value.String("cake")},
		{Key: "price", Value: value.Float64(2.5)},
		{Key: "count", Value: value.Int32(7)},
		{Key: "tags", Value: value.List{value.Int8(1), value.Int8(2), value.Int8(3)}},
	}

	want := []byte{
		0x0A, 0x00, 0x04, 'r', 'o', 'o', 't', // TAG_Compound, name "root"

		0x08, 0x00, 0x04, 'n', 'a', 'm', 'e', // TAG_String "name"
		0x00, 0x04, 'c', 'a', 'k', 'e', // "cake"

		0x06, 0x00, 0x05, 'p', 'r', 'i', 'c', 'e', // TAG_Double "price"
		0x40, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 2.5

		0x03, 0x00, 0x05, 'c', 'o', 'u', 'n', 't', // TAG_Int "count"
		0x00, 0x00, 0x00, 0x07, // 7

		0x09, 0x00, 0x04, 't', 'a', 'g', 's', // TAG_List "tags"
		0x01,                   // element TypeID TAG_Byte
		0x00, 0x00, 0x00, 0x03, // size 3
		0x01, 0x02, 0x03, // elements

		0x00, // TAG_End terminating the root compound
	}

	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "root", doc))
	assert.Equal(t, want, buf.Bytes())

	name, got, err := nbt.Unmarshal(bytes.NewReader(want))
	require.NoError(t, err)
	assert.Equal(t, "root", name)
	assert.Equal(t, doc, got)
}
