package value_test

import (
	"strings"
	"testing"

	"github.com/oakmoss/mcwire/value"
	"github.com/stretchr/testify/assert"
)

func TestStringRendersNestedTree(t *testing.T) {
	doc := value.Compound{
		{Key: "name", Value: value.String("cake")},
		{Key: "tags", Value: value.List{value.Int32(1), value.Int32(2)}},
	}

	out := value.Format(doc)
	assert.True(t, strings.Contains(out, "Compound{2}"))
	assert.True(t, strings.Contains(out, `String("cake")`))
	assert.True(t, strings.Contains(out, "List[2]"))
	assert.True(t, strings.Contains(out, "Int32(1)"))
}

func TestStringScalar(t *testing.T) {
	assert.Equal(t, "Int64(42)\n", value.Format(value.Int64(42)))
}
