// Package value defines the value model that the mcwire and nbt codecs
// serialize and deserialize against: a small closed sum type (Value) plus
// the abstract Sink/Builder visitor interfaces the state machines in
// package nbt and package mcwire are actually written against.
//
// Value gives the module a ready-made, zero-ceremony document tree (modeled
// on landru27-nbt's own NBT struct, whose Data field holds either a
// primitive or a []NBT slice for List/Compound); Sink and Builder let a
// caller plug in their own application types without depending on Value at
// all, the way the CBOR example's Value interface separates "what shape of
// data exists" from "how it gets walked".
package value

// Kind identifies which alternative of the value model a Value holds.
type Kind int

const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBool
	KindBytes
	KindString
	KindList
	KindCompound
)

// Value is any node in the document tree. The set of implementations is
// closed: Int8, Int16, Int32, Int64, Float32, Float64, Bool, Bytes, String,
// List, and Compound.
type Value interface {
	Kind() Kind
	// Emit pushes this value to sink, calling exactly one of sink's Visit*
	// methods (or, for List/Compound, handing sink an access object).
	Emit(sink Sink) error
}

// Entry is one key/value pair of a Compound, kept in an ordered slice
// (rather than a Go map) so that decode can preserve encounter order and
// round-trip documents containing duplicate keys byte-for-byte — see
// DESIGN.md's decision on the Open Question of duplicate-key handling.
type Entry struct {
	Key   string
	Value Value
}

type (
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	Bool    bool
	Bytes   []byte
	String  string
	List    []Value
	// Compound is an ordered map: a string-keyed, insertion-ordered
	// sequence of entries.
	Compound []Entry
)

func (Int8) Kind() Kind    { return KindInt8 }
func (Int16) Kind() Kind   { return KindInt16 }
func (Int32) Kind() Kind   { return KindInt32 }
func (Int64) Kind() Kind   { return KindInt64 }
func (Float32) Kind() Kind { return KindFloat32 }
func (Float64) Kind() Kind { return KindFloat64 }
func (Bool) Kind() Kind    { return KindBool }
func (Bytes) Kind() Kind   { return KindBytes }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind    { return KindList }
func (Compound) Kind() Kind { return KindCompound }

func (v Int8) Emit(sink Sink) error    { return sink.VisitInt8(int8(v)) }
func (v Int16) Emit(sink Sink) error   { return sink.VisitInt16(int16(v)) }
func (v Int32) Emit(sink Sink) error   { return sink.VisitInt32(int32(v)) }
func (v Int64) Emit(sink Sink) error   { return sink.VisitInt64(int64(v)) }
func (v Float32) Emit(sink Sink) error { return sink.VisitFloat32(float32(v)) }
func (v Float64) Emit(sink Sink) error { return sink.VisitFloat64(float64(v)) }
func (v Bool) Emit(sink Sink) error    { return sink.VisitBool(bool(v)) }
func (v Bytes) Emit(sink Sink) error   { return sink.VisitBytes([]byte(v)) }
func (v String) Emit(sink Sink) error  { return sink.VisitString(string(v)) }

func (v List) Emit(sink Sink) error {
	return sink.VisitSeq(&listEmitter{items: v})
}

func (v Compound) Emit(sink Sink) error {
	return sink.VisitMap(&compoundEmitter{entries: v})
}

// Sink is implemented by codecs (the NBT serializer, the MC wire encoder)
// that consume a value-model traversal one typed call at a time.
type Sink interface {
	VisitInt8(int8) error
	VisitInt16(int16) error
	VisitInt32(int32) error
	VisitInt64(int64) error
	VisitFloat32(float32) error
	VisitFloat64(float64) error
	VisitBool(bool) error
	VisitBytes([]byte) error
	VisitString(string) error
	VisitSeq(SeqEmitter) error
	VisitMap(MapEmitter) error
}

// SeqEmitter feeds a sink one sequence element at a time until exhausted.
type SeqEmitter interface {
	// Len reports the number of elements remaining, for formats (like NBT)
	// that must frame a sequence with its length up front.
	Len() int
	// Next emits the next element to sink, or returns ok=false when the
	// sequence is exhausted.
	Next(sink Sink) (ok bool, err error)
}

// MapEmitter feeds a sink alternating key and value access until exhausted.
type MapEmitter interface {
	// NextKey emits the next entry's key (always a string) to sink, or
	// returns ok=false when the map is exhausted.
	NextKey(sink Sink) (ok bool, err error)
	// NextValue emits the value of the entry whose key was just emitted.
	NextValue(sink Sink) error
}

type listEmitter struct {
	items []Value
	pos   int
}

func (e *listEmitter) Len() int { return len(e.items) - e.pos }

func (e *listEmitter) Next(sink Sink) (bool, error) {
	if e.pos >= len(e.items) {
		return false, nil
	}
	item := e.items[e.pos]
	e.pos++
	if err := item.Emit(sink); err != nil {
		return false, err
	}
	return true, nil
}

type compoundEmitter struct {
	entries []Entry
	pos     int
}

func (e *compoundEmitter) NextKey(sink Sink) (bool, error) {
	if e.pos >= len(e.entries) {
		return false, nil
	}
	if err := sink.VisitString(e.entries[e.pos].Key); err != nil {
		return false, err
	}
	return true, nil
}

func (e *compoundEmitter) NextValue(sink Sink) error {
	v := e.entries[e.pos].Value
	e.pos++
	return v.Emit(sink)
}
