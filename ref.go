package sfv

import "unicode/utf8"

// Ref types are borrowed, non-owning views over a caller-held []byte,
// for building and emitting a Structured Field Value without copying
// the backing bytes into a String/Token/Key/ByteSequence/DisplayString
// first. Each Ref type has two constructors: a validating one that
// performs the same grammar check as its owned counterpart, and an
// Unchecked one that trusts the caller. Both paths feed into the same
// EncodeRef method, which re-validates at emit time regardless of how
// the Ref was built - so a Ref built Unchecked from bytes that are
// mutated out from under it, or that were never valid to begin with,
// fails at Encode time instead of producing malformed output.
//
// Ref cannot implement Encoder: unlike the owned types, encoding a Ref
// is fallible, so it exposes EncodeRef() (string, error) instead of
// Encode() string.

// StringRef is a borrowed view over bytes meant to serialize as a
// String item.
type StringRef struct {
	b []byte
}

// NewStringRef validates b against the String grammar (printable
// ASCII only) and returns a StringRef, or a ConstructError with Kind
// InvalidCharacter.
func NewStringRef(b []byte) (StringRef, error) {
	if !isPrintableASCIIBytes(b) {
		return StringRef{}, constructErr(InvalidCharacter)
	}
	return StringRef{b: b}, nil
}

// UncheckedStringRef wraps b without validation. EncodeRef still
// validates at emit time.
func UncheckedStringRef(b []byte) StringRef {
	return StringRef{b: b}
}

// EncodeRef serializes the referenced bytes as a String, re-validating
// them first regardless of how the StringRef was constructed.
func (r StringRef) EncodeRef() (string, error) {
	if !isPrintableASCIIBytes(r.b) {
		return "", serializeErr(InvalidCharacter)
	}
	return encodeStringBytes(r.b), nil
}

// TokenRef is a borrowed view over bytes meant to serialize as a
// Token item.
type TokenRef struct {
	b []byte
}

// NewTokenRef validates b against the Token grammar and returns a
// TokenRef, or a ConstructError with Kind InvalidCharacter /
// InvalidFormat.
func NewTokenRef(b []byte) (TokenRef, error) {
	if err := validateTokenBytes(b); err != nil {
		return TokenRef{}, err
	}
	return TokenRef{b: b}, nil
}

// UncheckedTokenRef wraps b without validation. EncodeRef still
// validates at emit time.
func UncheckedTokenRef(b []byte) TokenRef {
	return TokenRef{b: b}
}

// EncodeRef serializes the referenced bytes as a Token, re-validating
// them first regardless of how the TokenRef was constructed.
func (r TokenRef) EncodeRef() (string, error) {
	if err := validateTokenBytes(r.b); err != nil {
		return "", serializeErr(err.(*ConstructError).Kind)
	}
	return encodeTokenBytes(r.b), nil
}

// KeyRef is a borrowed view over bytes meant to serialize as a
// Parameters or Dict key.
type KeyRef struct {
	b []byte
}

// NewKeyRef validates b against the Key grammar and returns a KeyRef,
// or a ConstructError with Kind InvalidCharacter / InvalidFormat.
func NewKeyRef(b []byte) (KeyRef, error) {
	if err := validateKeyBytes(b); err != nil {
		return KeyRef{}, err
	}
	return KeyRef{b: b}, nil
}

// UncheckedKeyRef wraps b without validation. EncodeRef still
// validates at emit time.
func UncheckedKeyRef(b []byte) KeyRef {
	return KeyRef{b: b}
}

// EncodeRef serializes the referenced bytes as a key, re-validating
// them first regardless of how the KeyRef was constructed.
func (r KeyRef) EncodeRef() (string, error) {
	if err := validateKeyBytes(r.b); err != nil {
		return "", serializeErr(err.(*ConstructError).Kind)
	}
	return encodeTokenBytes(r.b), nil
}

// ByteSequenceRef is a borrowed view over bytes meant to serialize as
// a Byte Sequence item. Any byte slice is valid, so it has no
// validating constructor distinct from Unchecked.
type ByteSequenceRef struct {
	b []byte
}

// NewByteSequenceRef wraps b. It never fails: any byte slice is a
// valid Byte Sequence value.
func NewByteSequenceRef(b []byte) ByteSequenceRef {
	return ByteSequenceRef{b: b}
}

// UncheckedByteSequenceRef is an alias for NewByteSequenceRef, kept so
// every Ref type exposes the same two-constructor shape.
func UncheckedByteSequenceRef(b []byte) ByteSequenceRef {
	return ByteSequenceRef{b: b}
}

// EncodeRef serializes the referenced bytes as a Byte Sequence. It
// never fails.
func (r ByteSequenceRef) EncodeRef() (string, error) {
	return encodeByteSequenceBytes(r.b), nil
}

// DisplayStringRef is a borrowed view over bytes meant to serialize as
// a Display String item.
type DisplayStringRef struct {
	b []byte
}

// NewDisplayStringRef validates that b is valid UTF-8 and returns a
// DisplayStringRef, or a ConstructError with Kind InvalidUtf8.
func NewDisplayStringRef(b []byte) (DisplayStringRef, error) {
	if !utf8.Valid(b) {
		return DisplayStringRef{}, constructErr(InvalidUtf8)
	}
	return DisplayStringRef{b: b}, nil
}

// UncheckedDisplayStringRef wraps b without validation. EncodeRef
// still validates at emit time.
func UncheckedDisplayStringRef(b []byte) DisplayStringRef {
	return DisplayStringRef{b: b}
}

// EncodeRef serializes the referenced bytes as a Display String,
// re-validating them first regardless of how the DisplayStringRef was
// constructed.
func (r DisplayStringRef) EncodeRef() (string, error) {
	if !utf8.Valid(r.b) {
		return "", serializeErr(InvalidUtf8)
	}
	return encodeDisplayStringBytes(r.b), nil
}
