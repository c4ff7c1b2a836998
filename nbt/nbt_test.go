package nbt_test

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/oakmoss/mcwire/errs"
	"github.com/oakmoss/mcwire/nbt"
	"github.com/oakmoss/mcwire/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCakeScenario(t *testing.T) {
	doc := value.Compound{
		{Key: "name", Value: value.String("cake")},
		{Key: "price", Value: value.Float64(2.5)},
	}

	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "", doc))

	want := []byte{
		0x0A, 0x00, 0x00, // TAG_Compound, root name "" (len 0)
		0x08, 0x00, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x04, 'c', 'a', 'k', 'e',
		0x06, 0x00, 0x05, 'p', 'r', 'i', 'c', 'e', 0x40, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, // TAG_End
	}
	assert.Equal(t, want, buf.Bytes())

	name, got, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "", name)
	assert.Equal(t, doc, got)
}

func TestEmptyCompound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "root", value.Compound{}))
	assert.Equal(t, []byte{0x0A, 0x00, 0x04, 'r', 'o', 'o', 't', 0x00}, buf.Bytes())

	name, got, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "root", name)
	assert.Equal(t, value.Compound{}, got)
}

func TestEmptyListEdgeCase(t *testing.T) {
	doc := value.Compound{
		{Key: "items", Value: value.List{}},
	}

	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "", doc))

	want := []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x00, 0x05, 'i', 't', 'e', 'm', 's',
		0x00,             // element TypeID TAG_End
		0x00, 0x00, 0x00, 0x00, // size 0
		0x00, // TAG_End terminating the compound
	}
	assert.Equal(t, want, buf.Bytes())

	_, got, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestNonEmptyListOfInts(t *testing.T) {
	doc := value.List{value.Int32(1), value.Int32(2), value.Int32(3)}

	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "nums", doc))

	_, got, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestHeterogeneousListRejected(t *testing.T) {
	doc := value.List{value.Int32(1), value.String("two")}

	var buf bytes.Buffer
	err := nbt.Marshal(&buf, "bad", doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.New(errs.Heterogeneous, ""))
}

func TestNestedCompoundsAndLists(t *testing.T) {
	doc := value.Compound{
		{Key: "outer", Value: value.Compound{
			{Key: "inner", Value: value.List{
				value.Compound{{Key: "a", Value: value.Int8(1)}},
				value.Compound{{Key: "a", Value: value.Int8(2)}},
			}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "", doc))

	_, got, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDuplicateKeysPreservedInOrder(t *testing.T) {
	doc := value.Compound{
		{Key: "x", Value: value.Int32(1)},
		{Key: "x", Value: value.Int32(2)},
	}

	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "", doc))

	_, got, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	compound, ok := got.(value.Compound)
	require.True(t, ok)
	require.Len(t, compound, 2)
	assert.Equal(t, value.Int32(1), compound[0].Value)
	assert.Equal(t, value.Int32(2), compound[1].Value)
}

func TestInvalidTypeIDRejected(t *testing.T) {
	buf := []byte{0x7F, 0x00, 0x00}
	_, _, err := nbt.Unmarshal(bytes.NewReader(buf))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.New(errs.InvalidTypeID, ""))
}

func TestNegativeByteArrayLengthRejected(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x07, 0x00, 0x00})       // TAG_Byte_Array, name ""
	buf.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF}) // length -1

	_, _, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.New(errs.SizeOverflow, ""))
}

func TestScalarRoundTripProperty(t *testing.T) {
	f := func(i int32, s string, price float64) bool {
		doc := value.Compound{
			{Key: "i", Value: value.Int32(i)},
			{Key: "s", Value: value.String(s)},
			{Key: "price", Value: value.Float64(price)},
		}

		var buf bytes.Buffer
		if err := nbt.Marshal(&buf, "root", doc); err != nil {
			return false
		}
		_, got, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return false
		}

		gotCompound, ok := got.(value.Compound)
		return ok && len(gotCompound) == len(doc) &&
			gotCompound[0] == doc[0] &&
			gotCompound[1].Key == doc[1].Key &&
			gotCompound[2].Key == doc[2].Key
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 100}))
}

func TestByteArrayRoundTrip(t *testing.T) {
	doc := value.Bytes{0x01, 0x02, 0x03, 0xFF}

	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "blob", doc))

	_, got, err := nbt.Unmarshal(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}
