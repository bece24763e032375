package sfv

import "errors"

// Signal is returned by every Visitor method to tell the parser
// whether to keep going or stop.
type Signal int

const (
	// Continue tells the parser to proceed to the next event.
	Continue Signal = iota
	// Halt tells the parser to stop cleanly at the next event
	// boundary without treating the stop as an error.
	Halt
)

// Visitor receives semantic parse events instead of an owned value
// tree. It is the mode ParseWithVisitor drives; the tree-building
// entrypoints (ParseList, ParseDictionary, ParseItem) are themselves
// just the ordinary recursive-descent routines called with a nil
// Visitor, since the tree builder is a degenerate visitor that
// accumulates instead of emitting.
type Visitor interface {
	BeginList() Signal
	EndList() Signal

	BeginDict() Signal
	EndDict() Signal
	DictEntryBegin(key Key) Signal
	DictEntryEnd() Signal

	ListItemBegin() Signal
	ListItemEnd() Signal

	InnerListBegin() Signal
	InnerListEnd() Signal

	ItemBegin() Signal
	ItemEnd() Signal

	BareItem(item BareItem) Signal
	Parameter(key Key, value BareItem) Signal
}

// NopVisitor implements Visitor with every method returning Continue.
// Embed it to implement only the events a caller cares about, the way
// callers of go/ast.Visitor or similar tree-walking interfaces embed a
// no-op base.
type NopVisitor struct{}

func (NopVisitor) BeginList() Signal                 { return Continue }
func (NopVisitor) EndList() Signal                   { return Continue }
func (NopVisitor) BeginDict() Signal                 { return Continue }
func (NopVisitor) EndDict() Signal                   { return Continue }
func (NopVisitor) DictEntryBegin(Key) Signal         { return Continue }
func (NopVisitor) DictEntryEnd() Signal              { return Continue }
func (NopVisitor) ListItemBegin() Signal             { return Continue }
func (NopVisitor) ListItemEnd() Signal               { return Continue }
func (NopVisitor) InnerListBegin() Signal            { return Continue }
func (NopVisitor) InnerListEnd() Signal              { return Continue }
func (NopVisitor) ItemBegin() Signal                 { return Continue }
func (NopVisitor) ItemEnd() Signal                   { return Continue }
func (NopVisitor) BareItem(BareItem) Signal          { return Continue }
func (NopVisitor) Parameter(Key, BareItem) Signal    { return Continue }

// errHalt unwinds the recursive-descent parser back to
// ParseWithVisitor when a Visitor method returns Halt. It is never
// returned to a caller of ParseWithVisitor as an error.
var errHalt = errors.New("sfv: visitor halted")

// ParseWithVisitor parses data as topType, emitting events to v
// instead of building an owned tree. It returns the byte offset the
// parser reached and whether the sink halted the parse early. A halt
// is not itself an error: err is nil whenever the sink chose to stop.
func ParseWithVisitor(data []byte, topType TopType, v Visitor) (offset int, halted bool, err error) {
	s, err := newScanner(data)
	if err != nil {
		return 0, false, err
	}
	s.skipSP()

	switch topType {
	case TopList:
		_, err = parseListTop(s, v)
	case TopDictionary:
		_, err = parseDictionaryTop(s, v)
	case TopItem:
		_, err = parseItemEvent(s, v)
	default:
		return 0, false, parseErr(0, UnexpectedCharacter)
	}

	if err == errHalt {
		return s.pos, true, nil
	}
	if err != nil {
		return s.pos, false, err
	}

	if rerr := requireExhausted(s); rerr != nil {
		return s.pos, false, rerr
	}
	return s.pos, false, nil
}
