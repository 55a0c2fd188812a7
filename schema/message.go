// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import "github.com/dynproto/dynproto/internal/werrors"

// MessageDescriptor is an ordered field set plus nested message/enum
// tables, identified by a package-qualified full name. Lookups by name
// and by number are O(1).
type MessageDescriptor struct {
	fullName string
	fields   []*FieldDescriptor

	byName   map[string]*FieldDescriptor
	byNumber map[int32]*FieldDescriptor

	nestedMessages map[string]*MessageDescriptor
	nestedEnums    map[string]*EnumDescriptor

	placeholder bool
}

// MessageOptions configures NewMessageDescriptor.
type MessageOptions struct {
	FullName       string
	Fields         []*FieldDescriptor
	NestedMessages []*MessageDescriptor
	NestedEnums    []*EnumDescriptor
}

// NewMessageDescriptor validates opts and builds a MessageDescriptor.
// Fields must be unique by both name and number. A field whose message
// type is a placeholder carrying opts.FullName is resolved in place to the
// new descriptor, which makes the type self-referential; placeholders for
// other names are left as they are.
func NewMessageDescriptor(opts MessageOptions) (*MessageDescriptor, error) {
	if opts.FullName == "" {
		return nil, &werrors.InvalidDescriptor{Reason: "message full name must not be empty"}
	}
	m := &MessageDescriptor{
		fullName:       opts.FullName,
		fields:         append([]*FieldDescriptor(nil), opts.Fields...),
		byName:         make(map[string]*FieldDescriptor, len(opts.Fields)),
		byNumber:       make(map[int32]*FieldDescriptor, len(opts.Fields)),
		nestedMessages: make(map[string]*MessageDescriptor, len(opts.NestedMessages)),
		nestedEnums:    make(map[string]*EnumDescriptor, len(opts.NestedEnums)),
	}
	for _, f := range m.fields {
		if _, ok := m.byName[f.Name()]; ok {
			return nil, &werrors.InvalidDescriptor{Reason: "message " + opts.FullName + " has duplicate field name " + f.Name()}
		}
		if _, ok := m.byNumber[f.Number()]; ok {
			return nil, &werrors.InvalidDescriptor{Reason: "message " + opts.FullName + " has duplicate field number for " + f.Name()}
		}
		m.byName[f.Name()] = f
		m.byNumber[f.Number()] = f
		if mt := f.messageType; mt != nil && mt.placeholder && mt.fullName == opts.FullName {
			f.messageType = m
		}
	}
	for _, nm := range opts.NestedMessages {
		m.nestedMessages[nm.Name()] = nm
	}
	for _, ne := range opts.NestedEnums {
		m.nestedEnums[ne.Name()] = ne
	}
	return m, nil
}

// FullName returns the package-qualified message name.
func (m *MessageDescriptor) FullName() string { return m.fullName }

// Name returns the short name, the last dot-separated segment of
// FullName.
func (m *MessageDescriptor) Name() string {
	s := m.fullName
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}

// Fields returns the ordered, declaration-order field list. The caller
// must not mutate the returned slice.
func (m *MessageDescriptor) Fields() []*FieldDescriptor { return m.fields }

// FieldByName looks up a field by its declared name.
func (m *MessageDescriptor) FieldByName(s string) *FieldDescriptor { return m.byName[s] }

// FieldByNumber looks up a field by its wire number.
func (m *MessageDescriptor) FieldByNumber(n int32) *FieldDescriptor { return m.byNumber[n] }

// NestedMessage looks up a nested message declaration by its short name.
func (m *MessageDescriptor) NestedMessage(name string) *MessageDescriptor {
	return m.nestedMessages[name]
}

// NestedEnum looks up a nested enum declaration by its short name.
func (m *MessageDescriptor) NestedEnum(name string) *EnumDescriptor {
	return m.nestedEnums[name]
}

// NewPlaceholderMessage returns a MessageDescriptor that stands in for a
// forward-referenced type a caller building a descriptor graph has not
// yet resolved — e.g. a field whose message type is itself, or a type
// from a not-yet-processed definition. A placeholder has a full name and
// nothing else: no fields, no nested types.
func NewPlaceholderMessage(fullName string) *MessageDescriptor {
	return &MessageDescriptor{
		fullName:       fullName,
		byName:         make(map[string]*FieldDescriptor),
		byNumber:       make(map[int32]*FieldDescriptor),
		nestedMessages: make(map[string]*MessageDescriptor),
		nestedEnums:    make(map[string]*EnumDescriptor),
		placeholder:    true,
	}
}

// IsPlaceholder reports whether m is a stand-in awaiting a real
// definition rather than a fully built descriptor.
func (m *MessageDescriptor) IsPlaceholder() bool { return m.placeholder }

// NewMapEntryValueField is a convenience constructor for the synthetic
// {1: key, 2: value} field pair that backs a map field on the wire.
// It builds the field-2 "value" FieldDescriptor that FieldOptions.IsMap
// fields reference via MapValueField.
func NewMapEntryValueField(kind Kind, messageType *MessageDescriptor, enumType *EnumDescriptor) (*FieldDescriptor, error) {
	return NewFieldDescriptor(FieldOptions{
		Name:        "value",
		Number:      2,
		Kind:        kind,
		MessageType: messageType,
		EnumType:    enumType,
	})
}
