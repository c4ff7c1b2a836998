package value

// TreeBuilder is the default Builder: it accumulates decoded calls into a
// Value tree, giving callers a concrete document back without writing a
// custom Builder. Each TreeBuilder is single-use — it holds the result of
// exactly one value's worth of Builder calls.
type TreeBuilder struct {
	Result Value
}

func (b *TreeBuilder) Int8(v int8) error       { b.Result = Int8(v); return nil }
func (b *TreeBuilder) Int16(v int16) error     { b.Result = Int16(v); return nil }
func (b *TreeBuilder) Int32(v int32) error     { b.Result = Int32(v); return nil }
func (b *TreeBuilder) Int64(v int64) error     { b.Result = Int64(v); return nil }
func (b *TreeBuilder) Float32(v float32) error { b.Result = Float32(v); return nil }
func (b *TreeBuilder) Float64(v float64) error { b.Result = Float64(v); return nil }
func (b *TreeBuilder) Bool(v bool) error       { b.Result = Bool(v); return nil }
func (b *TreeBuilder) Bytes(v []byte) error {
	cp := make([]byte, len(v))
	copy(cp, v)
	b.Result = Bytes(cp)
	return nil
}
func (b *TreeBuilder) String(v string) error { b.Result = String(v); return nil }

func (b *TreeBuilder) BeginSeq(size int) (SeqBuilder, error) {
	cap := size
	if cap < 0 {
		cap = 0
	}
	tb := &treeSeqBuilder{parent: b, items: make([]Value, 0, cap)}
	return tb, nil
}

func (b *TreeBuilder) BeginMap() (MapBuilder, error) {
	return &treeMapBuilder{parent: b, entries: make([]Entry, 0)}, nil
}

type treeSeqBuilder struct {
	parent *TreeBuilder
	items  []Value
	cur    *TreeBuilder
}

func (s *treeSeqBuilder) Element() (Builder, error) {
	s.flush()
	s.cur = &TreeBuilder{}
	return s.cur, nil
}

func (s *treeSeqBuilder) flush() {
	if s.cur != nil {
		s.items = append(s.items, s.cur.Result)
		s.cur = nil
	}
}

func (s *treeSeqBuilder) End() error {
	s.flush()
	s.parent.Result = List(s.items)
	return nil
}

type treeMapBuilder struct {
	parent  *TreeBuilder
	entries []Entry
	key     *TreeBuilder
	val     *TreeBuilder
}

func (m *treeMapBuilder) Key() (Builder, error) {
	m.flush()
	m.key = &TreeBuilder{}
	return m.key, nil
}

func (m *treeMapBuilder) Value() (Builder, error) {
	m.val = &TreeBuilder{}
	return m.val, nil
}

// flush commits a completed key/value pair once both halves have arrived.
func (m *treeMapBuilder) flush() {
	if m.key != nil && m.val != nil {
		key, _ := m.key.Result.(String)
		m.entries = append(m.entries, Entry{Key: string(key), Value: m.val.Result})
		m.key, m.val = nil, nil
	}
}

func (m *treeMapBuilder) End() error {
	m.flush()
	m.parent.Result = Compound(m.entries)
	return nil
}
