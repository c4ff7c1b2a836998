package value_test

import (
	"testing"

	"github.com/oakmoss/mcwire/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink records every Visit* call it receives, driving nested
// seq/map emitters to exhaustion via a recursive walk.
type recordingSink struct {
	calls []string
}

func (s *recordingSink) VisitInt8(v int8) error    { s.calls = append(s.calls, "i8"); return nil }
func (s *recordingSink) VisitInt16(v int16) error  { s.calls = append(s.calls, "i16"); return nil }
func (s *recordingSink) VisitInt32(v int32) error  { s.calls = append(s.calls, "i32"); return nil }
func (s *recordingSink) VisitInt64(v int64) error  { s.calls = append(s.calls, "i64"); return nil }
func (s *recordingSink) VisitFloat32(v float32) error {
	s.calls = append(s.calls, "f32")
	return nil
}
func (s *recordingSink) VisitFloat64(v float64) error {
	s.calls = append(s.calls, "f64")
	return nil
}
func (s *recordingSink) VisitBool(v bool) error     { s.calls = append(s.calls, "bool"); return nil }
func (s *recordingSink) VisitBytes(v []byte) error  { s.calls = append(s.calls, "bytes"); return nil }
func (s *recordingSink) VisitString(v string) error { s.calls = append(s.calls, "str:"+v); return nil }

func (s *recordingSink) VisitSeq(e value.SeqEmitter) error {
	s.calls = append(s.calls, "seq-begin")
	for {
		ok, err := e.Next(s)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	s.calls = append(s.calls, "seq-end")
	return nil
}

func (s *recordingSink) VisitMap(e value.MapEmitter) error {
	s.calls = append(s.calls, "map-begin")
	for {
		ok, err := e.NextKey(s)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := e.NextValue(s); err != nil {
			return err
		}
	}
	s.calls = append(s.calls, "map-end")
	return nil
}

func TestEmitScalars(t *testing.T) {
	sink := &recordingSink{}
	require.NoError(t, value.Int32(5).Emit(sink))
	require.NoError(t, value.String("hi").Emit(sink))
	assert.Equal(t, []string{"i32", "str:hi"}, sink.calls)
}

func TestEmitListAndCompound(t *testing.T) {
	sink := &recordingSink{}
	doc := value.Compound{
		{Key: "name", Value: value.String("cake")},
		{Key: "tags", Value: value.List{value.Int8(1), value.Int8(2)}},
	}
	require.NoError(t, doc.Emit(sink))

	assert.Equal(t, []string{
		"map-begin",
		"str:name", "str:cake",
		"str:tags", "seq-begin", "i8", "i8", "seq-end",
		"map-end",
	}, sink.calls)
}

func TestTreeBuilderScalars(t *testing.T) {
	b := &value.TreeBuilder{}
	require.NoError(t, b.Int32(42))
	assert.Equal(t, value.Int32(42), b.Result)
}

func TestTreeBuilderSeq(t *testing.T) {
	b := &value.TreeBuilder{}
	seq, err := b.BeginSeq(2)
	require.NoError(t, err)

	el, err := seq.Element()
	require.NoError(t, err)
	require.NoError(t, el.Int8(1))

	el, err = seq.Element()
	require.NoError(t, err)
	require.NoError(t, el.Int8(2))

	require.NoError(t, seq.End())
	assert.Equal(t, value.List{value.Int8(1), value.Int8(2)}, b.Result)
}

func TestTreeBuilderMap(t *testing.T) {
	b := &value.TreeBuilder{}
	m, err := b.BeginMap()
	require.NoError(t, err)

	k, err := m.Key()
	require.NoError(t, err)
	require.NoError(t, k.String("price"))

	v, err := m.Value()
	require.NoError(t, err)
	require.NoError(t, v.Float64(2.5))

	require.NoError(t, m.End())
	assert.Equal(t, value.Compound{{Key: "price", Value: value.Float64(2.5)}}, b.Result)
}

func TestEmptyListRoundTripsThroughBuilder(t *testing.T) {
	b := &value.TreeBuilder{}
	seq, err := b.BeginSeq(0)
	require.NoError(t, err)
	require.NoError(t, seq.End())
	assert.Equal(t, value.List{}, b.Result)
}
