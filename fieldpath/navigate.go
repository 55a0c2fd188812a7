// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldpath

import (
	"github.com/dynproto/dynproto/dynamicpb"
	"github.com/dynproto/dynproto/internal/werrors"
	"github.com/dynproto/dynproto/schema"
	"github.com/dynproto/dynproto/value"
)

// Get returns the value addressed by path under root, and whether it was
// present. A missing intermediate or leaf value is reported as
// (invalid-Value, false, nil), not an error; an error is returned only
// for a malformed path or a path that addresses a field in a way its
// declared shape disallows (e.g. an index on a non-repeated field).
func Get(root *dynamicpb.DynamicMessage, path string) (value.Value, bool, error) {
	segs, err := Parse(path)
	if err != nil {
		return value.Value{}, false, err
	}
	parent, last, ok, err := walk(root, segs, false)
	if err != nil || !ok {
		return value.Value{}, false, err
	}
	return applyGet(parent, last)
}

// Has reports whether path addresses a populated value under root.
func Has(root *dynamicpb.DynamicMessage, path string) (bool, error) {
	segs, err := Parse(path)
	if err != nil {
		return false, err
	}
	parent, last, ok, err := walk(root, segs, false)
	if err != nil || !ok {
		return false, err
	}
	return applyHas(parent, last)
}

// Set installs v at path under root, auto-creating missing intermediate
// singular message fields along the way. Missing intermediate
// repeated/map elements are not auto-created and cause Set to fail.
func Set(root *dynamicpb.DynamicMessage, path string, v value.Value) error {
	segs, err := Parse(path)
	if err != nil {
		return err
	}
	parent, last, ok, err := walk(root, segs, true)
	if err != nil {
		return err
	}
	if !ok {
		return &werrors.ValidationError{Field: path, Reason: "path does not resolve; repeated elements and map entries are not auto-created"}
	}
	return applySet(parent, last, v)
}

// Clear removes the value addressed by path under root: a repeated
// element is removed and the remainder shifted, a map entry is removed,
// and a singular field is unset. It is a no-op if an intermediate value
// along the path is absent or the addressed field or map entry is unset;
// an out-of-range index on the last segment is an error.
func Clear(root *dynamicpb.DynamicMessage, path string) error {
	segs, err := Parse(path)
	if err != nil {
		return err
	}
	parent, last, ok, err := walk(root, segs, false)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return applyClear(parent, last)
}

// walk resolves every segment except the last, requiring each to produce
// a *dynamicpb.DynamicMessage to descend into. It returns the message the
// final segment should be applied against, the final segment itself, and
// whether the walk reached it (false without error means some
// intermediate value was simply absent).
func walk(root *dynamicpb.DynamicMessage, segs []Segment, create bool) (*dynamicpb.DynamicMessage, Segment, bool, error) {
	cur := root
	for i := 0; i < len(segs)-1; i++ {
		seg := segs[i]
		fd := cur.Descriptor().FieldByName(seg.Name)
		if fd == nil {
			return nil, Segment{}, false, &werrors.InvalidFieldKey{Reason: "unknown field " + seg.Name}
		}
		next, ok, err := descendOne(cur, fd, seg, create)
		if err != nil || !ok {
			return nil, Segment{}, false, err
		}
		cur = next
	}
	return cur, segs[len(segs)-1], true, nil
}

func descendOne(cur *dynamicpb.DynamicMessage, fd *schema.FieldDescriptor, seg Segment, create bool) (*dynamicpb.DynamicMessage, bool, error) {
	switch {
	case seg.HasIndex:
		if !fd.IsRepeated() || fd.Kind() != schema.MessageKind {
			return nil, false, &werrors.TypeMismatch{Field: fd.Name(), Expected: "repeated message", Got: fd.Kind().String()}
		}
		v, ok := cur.Get(fd)
		if !ok {
			return nil, false, nil
		}
		list, _ := v.List()
		if seg.Index < 0 || seg.Index >= len(list) {
			if create {
				return nil, false, &werrors.ValidationError{Field: fd.Name(), Reason: "index out of range; repeated elements are not auto-created"}
			}
			return nil, false, nil
		}
		msg, _ := list[seg.Index].Message()
		dm, _ := msg.(*dynamicpb.DynamicMessage)
		return dm, dm != nil, nil
	case seg.HasKey:
		if !fd.IsMap() {
			return nil, false, &werrors.TypeMismatch{Field: fd.Name(), Expected: "map", Got: fd.Kind().String()}
		}
		if fd.MapValueField().Kind() != schema.MessageKind {
			return nil, false, &werrors.TypeMismatch{Field: fd.Name(), Expected: "map<_, message>", Got: "map<_, " + fd.MapValueField().Kind().String() + ">"}
		}
		v, ok := cur.Get(fd)
		if !ok {
			return nil, false, nil
		}
		m, _ := v.Map()
		ev, ok := m[seg.Key]
		if !ok {
			if create {
				return nil, false, &werrors.ValidationError{Field: fd.Name(), Reason: "map entries are not auto-created"}
			}
			return nil, false, nil
		}
		msg, _ := ev.Message()
		dm, _ := msg.(*dynamicpb.DynamicMessage)
		return dm, dm != nil, nil
	default:
		if fd.Kind() != schema.MessageKind || fd.IsRepeated() || fd.IsMap() {
			return nil, false, &werrors.TypeMismatch{Field: fd.Name(), Expected: "message", Got: fd.Kind().String()}
		}
		v, ok := cur.Get(fd)
		if !ok {
			if !create {
				return nil, false, nil
			}
			if fd.MessageType() == nil {
				return nil, false, &werrors.InvalidMessageType{Field: fd.Name()}
			}
			nm := dynamicpb.New(fd.MessageType())
			if err := cur.Set(fd, value.MessageOf(nm)); err != nil {
				return nil, false, err
			}
			return nm, true, nil
		}
		msg, _ := v.Message()
		dm, _ := msg.(*dynamicpb.DynamicMessage)
		return dm, dm != nil, nil
	}
}

func applyGet(parent *dynamicpb.DynamicMessage, seg Segment) (value.Value, bool, error) {
	fd := parent.Descriptor().FieldByName(seg.Name)
	if fd == nil {
		return value.Value{}, false, &werrors.InvalidFieldKey{Reason: "unknown field " + seg.Name}
	}
	switch {
	case seg.HasIndex:
		if !fd.IsRepeated() {
			return value.Value{}, false, &werrors.TypeMismatch{Field: fd.Name(), Expected: "repeated", Got: fd.Kind().String()}
		}
		v, ok := parent.Get(fd)
		if !ok {
			return value.Value{}, false, nil
		}
		list, _ := v.List()
		if seg.Index < 0 || seg.Index >= len(list) {
			return value.Value{}, false, nil
		}
		return list[seg.Index], true, nil
	case seg.HasKey:
		if !fd.IsMap() {
			return value.Value{}, false, &werrors.TypeMismatch{Field: fd.Name(), Expected: "map", Got: fd.Kind().String()}
		}
		v, ok := parent.Get(fd)
		if !ok {
			return value.Value{}, false, nil
		}
		m, _ := v.Map()
		ev, ok := m[seg.Key]
		return ev, ok, nil
	default:
		v, ok := parent.Get(fd)
		return v, ok, nil
	}
}

func applyHas(parent *dynamicpb.DynamicMessage, seg Segment) (bool, error) {
	fd := parent.Descriptor().FieldByName(seg.Name)
	if fd == nil {
		return false, &werrors.InvalidFieldKey{Reason: "unknown field " + seg.Name}
	}
	switch {
	case seg.HasIndex:
		v, ok := parent.Get(fd)
		if !ok {
			return false, nil
		}
		list, _ := v.List()
		return seg.Index >= 0 && seg.Index < len(list), nil
	case seg.HasKey:
		v, ok := parent.Get(fd)
		if !ok {
			return false, nil
		}
		m, _ := v.Map()
		_, ok = m[seg.Key]
		return ok, nil
	default:
		return parent.Has(fd), nil
	}
}

func applySet(parent *dynamicpb.DynamicMessage, seg Segment, v value.Value) error {
	fd := parent.Descriptor().FieldByName(seg.Name)
	if fd == nil {
		return &werrors.InvalidFieldKey{Reason: "unknown field " + seg.Name}
	}
	switch {
	case seg.HasIndex:
		if !fd.IsRepeated() {
			return &werrors.TypeMismatch{Field: fd.Name(), Expected: "repeated", Got: fd.Kind().String()}
		}
		cv, err := value.ConvertTo(v, singularOf(fd))
		if err != nil {
			return err
		}
		cur, _ := parent.Get(fd)
		list, _ := cur.List()
		if seg.Index < 0 || seg.Index >= len(list) {
			return &werrors.ValidationError{Field: fd.Name(), Reason: "index out of range"}
		}
		out := append([]value.Value(nil), list...)
		out[seg.Index] = cv
		return parent.Set(fd, value.RepeatedOf(out))
	case seg.HasKey:
		if !fd.IsMap() {
			return &werrors.TypeMismatch{Field: fd.Name(), Expected: "map", Got: fd.Kind().String()}
		}
		cv, err := value.ConvertTo(v, fd.MapValueField())
		if err != nil {
			return err
		}
		cur, ok := parent.Get(fd)
		var out map[string]value.Value
		if ok {
			m, _ := cur.Map()
			out = make(map[string]value.Value, len(m)+1)
			for k, ev := range m {
				out[k] = ev
			}
		} else {
			out = make(map[string]value.Value, 1)
		}
		out[seg.Key] = cv
		return parent.Set(fd, value.MapOf(out))
	default:
		return parent.Set(fd, v)
	}
}

func applyClear(parent *dynamicpb.DynamicMessage, seg Segment) error {
	fd := parent.Descriptor().FieldByName(seg.Name)
	if fd == nil {
		return &werrors.InvalidFieldKey{Reason: "unknown field " + seg.Name}
	}
	switch {
	case seg.HasIndex:
		if !fd.IsRepeated() {
			return &werrors.TypeMismatch{Field: fd.Name(), Expected: "repeated", Got: fd.Kind().String()}
		}
		cur, ok := parent.Get(fd)
		if !ok {
			return nil
		}
		list, _ := cur.List()
		if seg.Index < 0 || seg.Index >= len(list) {
			return &werrors.ValidationError{Field: fd.Name(), Reason: "index out of range"}
		}
		out := make([]value.Value, 0, len(list)-1)
		out = append(out, list[:seg.Index]...)
		out = append(out, list[seg.Index+1:]...)
		return parent.Set(fd, value.RepeatedOf(out))
	case seg.HasKey:
		if !fd.IsMap() {
			return &werrors.TypeMismatch{Field: fd.Name(), Expected: "map", Got: fd.Kind().String()}
		}
		cur, ok := parent.Get(fd)
		if !ok {
			return nil
		}
		m, _ := cur.Map()
		if _, ok := m[seg.Key]; !ok {
			return nil
		}
		out := make(map[string]value.Value, len(m)-1)
		for k, ev := range m {
			if k != seg.Key {
				out[k] = ev
			}
		}
		return parent.Set(fd, value.MapOf(out))
	default:
		parent.Clear(fd)
		return nil
	}
}

// singularOf returns a FieldDescriptor describing the singular element
// shape of a repeated field, used to validate a single element written
// through an indexed path segment.
func singularOf(fd *schema.FieldDescriptor) *schema.FieldDescriptor {
	s, err := schema.NewFieldDescriptor(schema.FieldOptions{
		Name:        fd.Name(),
		Number:      fd.Number(),
		Kind:        fd.Kind(),
		MessageType: fd.MessageType(),
		EnumType:    fd.EnumType(),
	})
	if err != nil {
		// fd was already valid, so a singular projection of it is too.
		panic(err)
	}
	return s
}
