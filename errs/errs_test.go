package errs_test

import (
	"errors"
	"testing"

	"github.com/oakmoss/mcwire/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	cases := map[errs.Kind]string{
		errs.IO:                  "io",
		errs.InvalidBooleanValue: "invalid boolean value",
		errs.HumongousVarInt:     "humongous varint",
		errs.HumongousString:     "humongous string",
		errs.InvalidString:       "invalid string",
		errs.InvalidTypeID:       "invalid type id",
		errs.Heterogeneous:       "heterogeneous list",
		errs.SizeOverflow:        "size overflow",
		errs.Custom:              "custom",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestErrorIs(t *testing.T) {
	err := errs.InvalidBoolean(0x05)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.New(errs.InvalidBooleanValue, "")))
	assert.False(t, errors.Is(err, errs.New(errs.HumongousVarInt, "")))
}

func TestWrapIOUnwraps(t *testing.T) {
	cause := errors.New("boom")
	wrapped := errs.WrapIO(cause)
	assert.Equal(t, cause, errors.Unwrap(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestHeterogeneousMessage(t *testing.T) {
	err := errs.HeterogeneousList(3, 8)
	assert.Contains(t, err.Error(), "0x03")
	assert.Contains(t, err.Error(), "0x08")
}

func TestNegativeSize(t *testing.T) {
	err := errs.NegativeSize(-5)
	assert.Equal(t, errs.SizeOverflow, err.Kind)
}
