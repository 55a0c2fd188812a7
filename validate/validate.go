// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"strconv"
	"unicode/utf8"

	"github.com/dynproto/dynproto/dynamicpb"
	"github.com/dynproto/dynproto/internal/werrors"
	"github.com/dynproto/dynproto/schema"
	"github.com/dynproto/dynproto/value"
)

// Message walks m and every nested message it reaches, checking each
// populated field's value against opts. It returns the first violation
// found; field iteration is in ascending field-number order so results
// are deterministic.
func Message(m *dynamicpb.DynamicMessage, opts Options) error {
	w := &walker{opts: opts}
	if opts.DetectCircularReferences {
		w.visited = make(map[*dynamicpb.DynamicMessage]bool)
	}
	return w.message(m, 0)
}

// Value checks a single field's populated value against opts, including
// recursing into a message-typed value. It is Message's per-field step,
// exposed standalone for callers validating one field at a time (e.g.
// fieldpath.Set callers that want to validate before committing).
func Value(v value.Value, fd *schema.FieldDescriptor, opts Options) error {
	w := &walker{opts: opts}
	if opts.DetectCircularReferences {
		w.visited = make(map[*dynamicpb.DynamicMessage]bool)
	}
	return w.value(v, fd, 0)
}

type walker struct {
	opts    Options
	visited map[*dynamicpb.DynamicMessage]bool
}

func (w *walker) maxDepth() int {
	if w.opts.MaxRecursionDepth > 0 {
		return w.opts.MaxRecursionDepth
	}
	return 100
}

func (w *walker) message(m *dynamicpb.DynamicMessage, depth int) error {
	if m == nil {
		return nil
	}
	if depth > w.maxDepth() {
		return &werrors.ValidationError{Field: m.Descriptor().FullName(), Reason: "max depth"}
	}
	if w.visited != nil {
		if w.visited[m] {
			return &werrors.ValidationError{Field: m.Descriptor().FullName(), Reason: "circular reference"}
		}
		w.visited[m] = true
		defer delete(w.visited, m)
	}
	var ferr error
	m.Range(func(fd *schema.FieldDescriptor, v value.Value) bool {
		if err := w.value(v, fd, depth); err != nil {
			ferr = err
			return false
		}
		return true
	})
	return ferr
}

func (w *walker) value(v value.Value, fd *schema.FieldDescriptor, depth int) error {
	switch {
	case fd.IsMap():
		m, ok := v.Map()
		if !ok {
			return typeErr(fd, v)
		}
		if !w.opts.ValidateMapEntries {
			return nil
		}
		vf := fd.MapValueField()
		for k, ev := range m {
			if err := validateMapKey(k, fd.MapKeyKind()); err != nil {
				return err
			}
			if err := w.singular(ev, vf, depth); err != nil {
				return err
			}
		}
		return nil
	case fd.IsRepeated():
		list, ok := v.List()
		if !ok {
			return typeErr(fd, v)
		}
		if !w.opts.ValidateRepeatedElements {
			return nil
		}
		for _, ev := range list {
			if err := w.singular(ev, fd, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return w.singular(v, fd, depth)
	}
}

// singular validates one non-repeated, non-map value against its field's
// declared kind.
func (w *walker) singular(v value.Value, fd *schema.FieldDescriptor, depth int) error {
	switch fd.Kind() {
	case schema.Int32Kind, schema.Sint32Kind, schema.Sfixed32Kind:
		if _, ok := v.AsInt32(); !ok {
			return typeErr(fd, v)
		}
	case schema.Int64Kind, schema.Sint64Kind, schema.Sfixed64Kind:
		if _, ok := v.AsInt64(); !ok {
			return typeErr(fd, v)
		}
	case schema.Uint32Kind, schema.Fixed32Kind:
		if i, ok := v.Int(); ok && i < 0 {
			return typeErr(fd, v)
		}
		if _, ok := v.AsUint32(); !ok {
			return typeErr(fd, v)
		}
	case schema.Uint64Kind, schema.Fixed64Kind:
		if i, ok := v.Int(); ok && i < 0 {
			return typeErr(fd, v)
		}
		if _, ok := v.AsUint64(); !ok {
			return typeErr(fd, v)
		}
	case schema.FloatKind:
		if _, ok := v.AsFloat32(); !ok {
			return typeErr(fd, v)
		}
	case schema.DoubleKind:
		if _, ok := v.AsFloat64(); !ok {
			return typeErr(fd, v)
		}
	case schema.BoolKind:
		if _, ok := v.AsBool(); !ok {
			return typeErr(fd, v)
		}
	case schema.StringKind:
		s, ok := stringOf(v)
		if !ok {
			return typeErr(fd, v)
		}
		if w.opts.ValidateUTF8 && !utf8.ValidString(s) {
			return &werrors.InvalidUTF8{Field: fd.Name()}
		}
	case schema.BytesKind:
		if _, ok := v.ToBytes(); !ok {
			return typeErr(fd, v)
		}
	case schema.MessageKind:
		msg, ok := v.Message()
		if !ok {
			return typeErr(fd, v)
		}
		dm, ok := msg.(*dynamicpb.DynamicMessage)
		if !ok {
			return typeErr(fd, v)
		}
		if fd.MessageType() != nil && dm.Descriptor().FullName() != fd.MessageType().FullName() {
			return &werrors.TypeMismatch{Field: fd.Name(), Expected: fd.MessageType().FullName(), Got: dm.Descriptor().FullName()}
		}
		return w.message(dm, depth+1)
	case schema.EnumKind:
		return w.enum(v, fd)
	default:
		return &werrors.UnsupportedType{Field: fd.Name(), Kind: fd.Kind().String()}
	}
	return nil
}

func (w *walker) enum(v value.Value, fd *schema.FieldDescriptor) error {
	e, ok := v.EnumValue()
	switch {
	case ok:
	case v.Variant() == value.IntVariant || v.Variant() == value.UIntVariant:
		n, _ := v.AsInt64()
		e = value.Enum{Number: int32(n)}
	case v.Variant() == value.StringVariant && fd.EnumType() != nil:
		s, _ := v.StringValue()
		n, found := fd.EnumType().ValueByName(s)
		if !found {
			return typeErr(fd, v)
		}
		e = value.Enum{Name: s, Number: n}
	default:
		return typeErr(fd, v)
	}
	if !w.opts.ValidateEnumValues || fd.EnumType() == nil {
		return nil
	}
	if !fd.EnumType().HasNumber(e.Number) {
		return &werrors.ValidationError{Field: fd.Name(), Reason: "enum value " + strconv.Itoa(int(e.Number)) + " is not a member of " + fd.EnumType().Name()}
	}
	return nil
}

func stringOf(v value.Value) (string, bool) {
	if s, ok := v.StringValue(); ok {
		return s, true
	}
	switch v.Variant() {
	case value.IntVariant, value.UIntVariant, value.FloatVariant, value.DoubleVariant, value.BoolVariant:
		return v.AsString(), true
	default:
		return "", false
	}
}

// validateMapKey checks that a map's string-rendered key is a valid
// textual rendering of the declared key kind. Map keys are stored as the
// textual rendering of the declared key scalar.
func validateMapKey(k string, kind schema.Kind) error {
	switch {
	case kind == schema.StringKind:
		return nil
	case kind == schema.BoolKind:
		if k != "true" && k != "false" {
			return &werrors.ValidationError{Reason: "invalid map key for bool: " + strconv.Quote(k)}
		}
	case kind.IsInteger():
		if _, err := strconv.ParseInt(k, 10, 64); err != nil {
			if _, err2 := strconv.ParseUint(k, 10, 64); err2 != nil {
				return &werrors.ValidationError{Reason: "invalid map key for " + kind.String() + ": " + strconv.Quote(k)}
			}
		}
	}
	return nil
}

func typeErr(fd *schema.FieldDescriptor, v value.Value) error {
	return &werrors.TypeMismatch{Field: fd.Name(), Expected: fd.Kind().String(), Got: v.Variant().String()}
}
