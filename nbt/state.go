package nbt

// frame is one level of the encoder's state stack. The encoder does not
// control the order values arrive in — a value.Value drives it by calling
// Sink methods — so it needs explicit state to know, at each incoming call,
// whether to write a TypeID+name header, a list element header, or nothing
// at all. This mirrors the serializer state machine this package implements:
// a compound entry's name arrives one call before its value, and a list's
// element TypeID is not known until the first element actually arrives.
type frame interface{ isFrame() }

// rootFrame holds the name of the document's single root value. The root
// is always named (possibly the empty string), unlike list elements and
// unlike a compound's own entries are named via compoundBeforeEntryValueFrame.
type rootFrame struct {
	name    string
	written bool
}

// firstListItemFrame is the state before a list's first element has
// arrived: the list's length is already known (value.SeqEmitter reports it
// up front), but its element TypeID is not until that first element's Visit
// call tells us.
type firstListItemFrame struct {
	size int32
}

// inListFrame is the state once a list's element TypeID has been fixed by
// its first element. Every later element must present the same TypeID or
// the list is heterogeneous.
type inListFrame struct {
	typeID    TypeID
	remaining int
}

// compoundBeforeEntryFrame is the state between compound entries. VisitMap
// reads the next entry's name through a separate stringCapture sink passed
// to value.MapEmitter.NextKey, so no header is written here; a value that
// reaches the Encoder while this frame is on top is rejected.
type compoundBeforeEntryFrame struct{}

// compoundBeforeEntryValueFrame holds an entry's captured name while
// awaiting the Visit call that delivers its value (driven by
// value.MapEmitter.NextValue).
type compoundBeforeEntryValueFrame struct {
	name string
}

func (*rootFrame) isFrame()                     {}
func (*firstListItemFrame) isFrame()             {}
func (*inListFrame) isFrame()                    {}
func (*compoundBeforeEntryFrame) isFrame()       {}
func (*compoundBeforeEntryValueFrame) isFrame()  {}
