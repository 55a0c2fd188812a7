// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema provides the descriptor and value-shape model for the
// dynamic message engine: the closed set of field kinds, and the
// EnumDescriptor, FieldDescriptor, and MessageDescriptor types that
// describe a message's structure without any generated Go code.
//
// These are pure-data types, collapsed from an interface hierarchy
// (FileDescriptor, OneofDescriptor, ExtensionDescriptor, ServiceDescriptor,
// and Go-type-carrying MessageType/EnumType wrappers) down to the handful
// of concrete structs this engine's scope actually needs: descriptor
// loading from .proto files and extension/service/oneof support are out
// of scope.
package schema

import "fmt"

// Kind is the closed enumeration of protobuf scalar and composite field
// kinds.
type Kind int8

const (
	UnknownKind Kind = iota
	Int32Kind
	Int64Kind
	Uint32Kind
	Uint64Kind
	Sint32Kind
	Sint64Kind
	Fixed32Kind
	Fixed64Kind
	Sfixed32Kind
	Sfixed64Kind
	FloatKind
	DoubleKind
	BoolKind
	StringKind
	BytesKind
	MessageKind
	EnumKind
	GroupKind // legacy, recognized only for skipping
)

var kindNames = map[Kind]string{
	UnknownKind:  "unknown",
	Int32Kind:    "int32",
	Int64Kind:    "int64",
	Uint32Kind:   "uint32",
	Uint64Kind:   "uint64",
	Sint32Kind:   "sint32",
	Sint64Kind:   "sint64",
	Fixed32Kind:  "fixed32",
	Fixed64Kind:  "fixed64",
	Sfixed32Kind: "sfixed32",
	Sfixed64Kind: "sfixed64",
	FloatKind:    "float",
	DoubleKind:   "double",
	BoolKind:     "bool",
	StringKind:   "string",
	BytesKind:    "bytes",
	MessageKind:  "message",
	EnumKind:     "enum",
	GroupKind:    "group",
}

// String returns the kind's proto type name, e.g. "int32".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Description is an alias for String.
func (k Kind) Description() string { return k.String() }

// IsNumeric reports whether k is any integer or floating-point kind.
func (k Kind) IsNumeric() bool { return k.IsInteger() || k.IsFloating() }

// IsInteger reports whether k is one of the signed, unsigned, or
// zig-zag integer kinds (fixed-width included).
func (k Kind) IsInteger() bool {
	switch k {
	case Int32Kind, Int64Kind, Uint32Kind, Uint64Kind,
		Sint32Kind, Sint64Kind, Fixed32Kind, Fixed64Kind,
		Sfixed32Kind, Sfixed64Kind:
		return true
	default:
		return false
	}
}

// IsFloating reports whether k is float or double.
func (k Kind) IsFloating() bool {
	return k == FloatKind || k == DoubleKind
}

// IsStringOrBytes reports whether k is string or bytes.
func (k Kind) IsStringOrBytes() bool {
	return k == StringKind || k == BytesKind
}

// IsValid reports whether k is one of the recognized kinds.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok && k != UnknownKind
}
