// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import "github.com/dynproto/dynproto/internal/werrors"

// EnumValue is a single name/number pair within an EnumDescriptor.
type EnumValue struct {
	Name   string
	Number int32
}

// EnumDescriptor is a named set of enum values with number and name
// lookup. At least one value is required for validity (the zero value of
// an EnumDescriptor is not usable; build one with NewEnumDescriptor).
type EnumDescriptor struct {
	name   string
	values []EnumValue

	byName   map[string]int32
	byNumber map[int32]string // first-declared wins on alias

	placeholder bool
}

// NewEnumDescriptor builds an EnumDescriptor from an ordered list of
// values. It fails if name is empty or values is empty.
func NewEnumDescriptor(name string, values []EnumValue) (*EnumDescriptor, error) {
	if name == "" {
		return nil, &werrors.InvalidDescriptor{Reason: "enum name must not be empty"}
	}
	if len(values) == 0 {
		return nil, &werrors.InvalidDescriptor{Reason: "enum " + name + " must declare at least one value"}
	}
	e := &EnumDescriptor{
		name:     name,
		values:   append([]EnumValue(nil), values...),
		byName:   make(map[string]int32, len(values)),
		byNumber: make(map[int32]string, len(values)),
	}
	for _, v := range e.values {
		if v.Name == "" {
			return nil, &werrors.InvalidDescriptor{Reason: "enum " + name + " has an unnamed value"}
		}
		if _, ok := e.byName[v.Name]; ok {
			return nil, &werrors.InvalidDescriptor{Reason: "enum " + name + " has duplicate value name " + v.Name}
		}
		e.byName[v.Name] = v.Number
		// Earlier-declared wins on alias: only record the number if unseen.
		if _, ok := e.byNumber[v.Number]; !ok {
			e.byNumber[v.Number] = v.Name
		}
	}
	return e, nil
}

// Name returns the enum's declared name.
func (e *EnumDescriptor) Name() string { return e.name }

// Values returns the ordered list of declared values. The caller must not
// mutate the returned slice.
func (e *EnumDescriptor) Values() []EnumValue { return e.values }

// ValueByName looks up a value by name, reporting whether it was found.
func (e *EnumDescriptor) ValueByName(s string) (int32, bool) {
	n, ok := e.byName[s]
	return n, ok
}

// ValueByNumber looks up a value's name by number, reporting whether it
// was found. When aliases share a number, the earliest-declared name
// wins.
func (e *EnumDescriptor) ValueByNumber(n int32) (string, bool) {
	s, ok := e.byNumber[n]
	return s, ok
}

// HasNumber reports whether n is a member of this enum.
func (e *EnumDescriptor) HasNumber(n int32) bool {
	_, ok := e.byNumber[n]
	return ok
}

// NewPlaceholderEnum returns an EnumDescriptor standing in for a
// forward-referenced enum the external descriptor loader has not yet
// resolved, mirroring NewPlaceholderMessage. It declares no values;
// HasNumber is false for every number until the loader replaces it with
// a real descriptor.
func NewPlaceholderEnum(fullName string) *EnumDescriptor {
	return &EnumDescriptor{
		name:        fullName,
		byName:      make(map[string]int32),
		byNumber:    make(map[int32]string),
		placeholder: true,
	}
}

// IsPlaceholder reports whether e is a stand-in awaiting a real
// definition rather than a fully built descriptor.
func (e *EnumDescriptor) IsPlaceholder() bool { return e.placeholder }
