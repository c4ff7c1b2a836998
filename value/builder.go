package value

// Builder is the decode-direction counterpart of Sink: a deserializer state
// machine (package nbt's Decoder, package mcwire's Decoder) delivers
// each decoded primitive to a Builder instead of constructing a concrete
// Value tree directly, so callers can supply their own Builder to decode
// straight into an application type.
type Builder interface {
	Int8(int8) error
	Int16(int16) error
	Int32(int32) error
	Int64(int64) error
	Float32(float32) error
	Float64(float64) error
	Bool(bool) error
	Bytes([]byte) error
	String(string) error
	// BeginSeq is called with the sequence's declared length (or -1 if
	// unknown) and returns a SeqBuilder that receives one element Builder
	// per item.
	BeginSeq(size int) (SeqBuilder, error)
	// BeginMap returns a MapBuilder that receives one key/value Builder
	// pair per entry.
	BeginMap() (MapBuilder, error)
}

// SeqBuilder receives one element at a time. Element delivers the decoded
// element's Builder calls; End is invoked once every element has been
// delivered.
type SeqBuilder interface {
	Element() (Builder, error)
	End() error
}

// MapBuilder receives one key/value pair at a time. Key and Value each
// return a fresh Builder driven by the codec for that entry's key or value
// respectively.
type MapBuilder interface {
	Key() (Builder, error)
	Value() (Builder, error)
	End() error
}
