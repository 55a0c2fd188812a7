// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import "github.com/dynproto/dynproto/internal/werrors"

// DefaultValue holds a field's declared default, stored as a small union
// of primitive Go types rather than a value.Value so that this package
// has no dependency on the value package (which in turn depends on
// schema for EnumDescriptor/MessageDescriptor references — see the
// package doc in value/value.go for the acyclic layering this enforces).
// Only the field matching the FieldDescriptor's Kind is meaningful.
type DefaultValue struct {
	Int    int64
	UInt   uint64
	Float  float32
	Double float64
	Bool   bool
	String string
	Bytes  []byte
}

// FieldDescriptor describes one field of a message: its number, kind,
// cardinality, and, for message- or enum-typed fields, the target
// descriptor.
type FieldDescriptor struct {
	name        string
	number      int32
	kind        Kind
	isRepeated  bool
	isMap       bool
	def         *DefaultValue
	messageType *MessageDescriptor
	enumType    *EnumDescriptor

	// mapKeyKind/mapValueField describe the synthetic {1: key, 2: value}
	// entry message a map field is modeled as internally on the wire.
	mapKeyKind    Kind
	mapValueField *FieldDescriptor
}

// FieldOptions configures NewFieldDescriptor.
type FieldOptions struct {
	Name        string
	Number      int32
	Kind        Kind
	IsRepeated  bool
	IsMap       bool
	Default     *DefaultValue
	MessageType *MessageDescriptor
	EnumType    *EnumDescriptor

	// MapKeyKind and MapValueField are required when IsMap is true; they
	// describe the synthetic map-entry shape.
	MapKeyKind    Kind
	MapValueField *FieldDescriptor
}

// NewFieldDescriptor validates opts and returns a FieldDescriptor.
func NewFieldDescriptor(opts FieldOptions) (*FieldDescriptor, error) {
	if opts.Name == "" {
		return nil, &werrors.InvalidDescriptor{Reason: "field name must not be empty"}
	}
	if opts.Number <= 0 {
		return nil, &werrors.InvalidDescriptor{Reason: "field " + opts.Name + " has non-positive number"}
	}
	if opts.IsRepeated && opts.IsMap {
		return nil, &werrors.InvalidDescriptor{Reason: "field " + opts.Name + " cannot be both repeated and map"}
	}
	if opts.Kind == MessageKind && opts.MessageType == nil {
		return nil, &werrors.InvalidDescriptor{Reason: "message field " + opts.Name + " has no target descriptor"}
	}
	if opts.Kind == EnumKind && opts.EnumType == nil {
		return nil, &werrors.InvalidDescriptor{Reason: "enum field " + opts.Name + " has no target descriptor"}
	}
	if opts.IsMap {
		if !opts.MapKeyKind.IsValid() {
			return nil, &werrors.InvalidDescriptor{Reason: "map field " + opts.Name + " has no key kind"}
		}
		if opts.MapValueField == nil {
			return nil, &werrors.InvalidDescriptor{Reason: "map field " + opts.Name + " has no value field"}
		}
	}
	return &FieldDescriptor{
		name:          opts.Name,
		number:        opts.Number,
		kind:          opts.Kind,
		isRepeated:    opts.IsRepeated,
		isMap:         opts.IsMap,
		def:           opts.Default,
		messageType:   opts.MessageType,
		enumType:      opts.EnumType,
		mapKeyKind:    opts.MapKeyKind,
		mapValueField: opts.MapValueField,
	}, nil
}

func (f *FieldDescriptor) Name() string   { return f.name }
func (f *FieldDescriptor) Number() int32  { return f.number }
func (f *FieldDescriptor) Kind() Kind     { return f.kind }
func (f *FieldDescriptor) IsRepeated() bool { return f.isRepeated }
func (f *FieldDescriptor) IsMap() bool      { return f.isMap }

// Default returns the field's declared default, or nil if it has none
// (the common proto3 case, where the default is implicitly the kind's
// zero value).
func (f *FieldDescriptor) Default() *DefaultValue { return f.def }

// MessageType returns the target MessageDescriptor for a message-kind
// field, or nil otherwise.
func (f *FieldDescriptor) MessageType() *MessageDescriptor { return f.messageType }

// EnumType returns the target EnumDescriptor for an enum-kind field, or
// nil otherwise.
func (f *FieldDescriptor) EnumType() *EnumDescriptor { return f.enumType }

// MapKeyKind returns the scalar kind of a map field's key. It is only
// meaningful when IsMap is true.
func (f *FieldDescriptor) MapKeyKind() Kind { return f.mapKeyKind }

// MapValueField returns the synthetic field-2 descriptor describing a map
// field's value shape. It is only meaningful when IsMap is true.
func (f *FieldDescriptor) MapValueField() *FieldDescriptor { return f.mapValueField }
