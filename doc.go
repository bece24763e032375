// Package sfv parses and serializes HTTP Structured Field Values, per
// RFC 8941 and the Date/Display String additions of RFC 9651.
//
// A field value is one of three top-level shapes, chosen by the
// caller rather than autodetected (the three grammars are ambiguous
// against each other): a List, a Dictionary, or an Item. Use
// ParseList, ParseDictionary, or ParseItem to parse bytes into the
// corresponding owned type, and Encode on any of List, Dict, or *Item
// to produce the canonical wire form back.
//
// For callers that want to observe a parse as a stream of events
// instead of building an owned tree — to halt early, or to skip
// building the top-level List or Dict — ParseWithVisitor drives the
// same grammar against a Visitor. Items, their parameters, and
// inner-list item slices are still built along the way.
//
// The StringRef/TokenRef/KeyRef/ByteSequenceRef/DisplayStringRef types
// let a caller build and emit a value over borrowed bytes without
// first copying them into an owned String/Token/Key/ByteSequence/
// DisplayString.
package sfv
