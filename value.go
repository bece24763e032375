package sfv

import (
	"strings"

	"github.com/barweiss/go-tuple"
)

// Encoder is implemented by every type that can produce its canonical
// Structured Field Value wire form.
type Encoder interface {
	Encode() string
}

// Parameters is an ordered Key -> BareItem map, used by both Item and
// InnerList. Keys are unique; when a key is set twice, the value at
// its first-occurrence position is replaced rather than a new entry
// appended, per RFC 8941 §3.1.2's "last value wins, first position
// kept" duplicate-key rule.
//
// Backed by go-tuple's T2, the same (key, value) pair type the
// rfc8941 reference parser in the retrieval pack returns from its
// parsing algorithms, instead of a hand-rolled pair struct.
type Parameters struct {
	entries []tuple.T2[Key, BareItem]
}

// Add sets key to value, replacing an existing entry's value in place
// or appending a new entry, and returns the receiver.
func (p Parameters) Add(key Key, value BareItem) Parameters {
	for i, e := range p.entries {
		if e.V1 == key {
			p.entries[i] = tuple.New2(key, value)
			return p
		}
	}
	p.entries = append(p.entries, tuple.New2(key, value))
	return p
}

// Get returns the value for key and whether it was present.
func (p Parameters) Get(key Key) (BareItem, bool) {
	for _, e := range p.entries {
		if e.V1 == key {
			return e.V2, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (p Parameters) Has(key Key) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of parameters.
func (p Parameters) Len() int { return len(p.entries) }

// Keys returns the parameter keys in insertion order.
func (p Parameters) Keys() []Key {
	keys := make([]Key, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.V1
	}
	return keys
}

// Encode serializes the parameter list: ";key" for a Boolean-true
// value, ";key=value" otherwise, concatenated with no separator
// between entries.
func (p Parameters) Encode() string {
	if len(p.entries) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, e := range p.entries {
		sb.WriteByte(';')
		sb.WriteString(string(e.V1))
		if b, ok := e.V2.(Boolean); !ok || !bool(b) {
			sb.WriteByte('=')
			sb.WriteString(e.V2.Encode())
		}
	}
	return sb.String()
}

// Item is a bare item together with its parameters.
type Item struct {
	Bare   BareItem
	Params Parameters
}

// Encode serializes the item: the bare item's wire form followed by
// its parameters.
func (i *Item) Encode() string {
	return i.Bare.Encode() + i.Params.Encode()
}

func (*Item) isMember() {}

// InnerList is an ordered, parenthesized sequence of Items, plus its
// own parameters.
type InnerList struct {
	Items  []Item
	Params Parameters
}

// Encode serializes the inner list: "(" + items joined by a single
// space + ")" + parameters.
func (l *InnerList) Encode() string {
	items := make([]string, len(l.Items))
	for i, it := range l.Items {
		items[i] = it.Encode()
	}
	return "(" + strings.Join(items, " ") + ")" + l.Params.Encode()
}

func (*InnerList) isMember() {}

// Member is a List element or Dict value: either an *Item or an
// *InnerList.
type Member interface {
	Encoder
	isMember()
}

// List is an ordered sequence of list members.
type List []Member

// Encode serializes the list: members joined by ", ". An empty List
// serializes to the empty string.
func (l List) Encode() string {
	if len(l) == 0 {
		return ""
	}
	members := make([]string, len(l))
	for i, m := range l {
		members[i] = m.Encode()
	}
	return strings.Join(members, ", ")
}

// Dict is an ordered Key -> Member map. Duplicate keys follow the
// same last-value/first-position rule as Parameters.
type Dict struct {
	entries []tuple.T2[Key, Member]
}

// Add sets key to value, replacing an existing entry's value in place
// or appending a new entry, and returns the receiver.
func (d Dict) Add(key Key, value Member) Dict {
	for i, e := range d.entries {
		if e.V1 == key {
			d.entries[i] = tuple.New2(key, value)
			return d
		}
	}
	d.entries = append(d.entries, tuple.New2(key, value))
	return d
}

// Get returns the value for key and whether it was present.
func (d Dict) Get(key Key) (Member, bool) {
	for _, e := range d.entries {
		if e.V1 == key {
			return e.V2, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (d Dict) Len() int { return len(d.entries) }

// Keys returns the dictionary keys in insertion order.
func (d Dict) Keys() []Key {
	keys := make([]Key, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.V1
	}
	return keys
}

// Encode serializes the dictionary: "key" alone (plus any parameters)
// when the value is an Item with a Boolean-true bare item, "key=value"
// otherwise, entries joined by ", ". An empty Dict serializes to the
// empty string.
func (d Dict) Encode() string {
	if len(d.entries) == 0 {
		return ""
	}
	pairs := make([]string, len(d.entries))
	for i, e := range d.entries {
		pairs[i] = encodeDictEntry(e.V1, e.V2)
	}
	return strings.Join(pairs, ", ")
}

// encodeDictEntry follows RFC 8941 §4.1.2: a Boolean-true item is
// rendered as the key plus its (possibly empty) serialized
// parameters, with no "=", even when parameters are present.
func encodeDictEntry(key Key, value Member) string {
	if it, ok := value.(*Item); ok {
		if b, ok := it.Bare.(Boolean); ok && bool(b) {
			return string(key) + it.Params.Encode()
		}
	}
	return string(key) + "=" + value.Encode()
}
