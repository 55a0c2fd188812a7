// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/dynproto/dynproto/dynamicpb"
	"github.com/dynproto/dynproto/internal/wire"
	"github.com/dynproto/dynproto/internal/werrors"
	"github.com/dynproto/dynproto/schema"
	"github.com/dynproto/dynproto/validate"
	"github.com/dynproto/dynproto/value"
)

// Marshal encodes m to canonical protobuf wire bytes using
// DefaultMarshalOptions.
func Marshal(m *dynamicpb.DynamicMessage) ([]byte, error) {
	return DefaultMarshalOptions().Marshal(m)
}

// Marshal encodes m per o: fields in ascending field-number order,
// proto3 scalar defaults elided unless PreserveProto3Defaults, map
// entries optionally key-sorted for determinism, and any preserved
// unknown-field segments appended after the known fields in ascending
// field-number order.
func (o MarshalOptions) Marshal(m *dynamicpb.DynamicMessage) ([]byte, error) {
	return o.marshalMessage(m, 0)
}

func (o MarshalOptions) marshalMessage(m *dynamicpb.DynamicMessage, depth int) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	if depth > o.maxDepth() {
		return nil, &werrors.ValidationError{Field: m.Descriptor().FullName(), Reason: "max depth"}
	}
	var b []byte
	var ferr error
	m.Range(func(fd *schema.FieldDescriptor, v value.Value) bool {
		nb, err := o.marshalField(b, fd, v, depth)
		if err != nil {
			ferr = err
			return false
		}
		b = nb
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	m.RangeUnknown(func(_ int32, segments [][]byte) bool {
		for _, seg := range segments {
			b = append(b, seg...)
		}
		return true
	})
	return b, nil
}

func (o MarshalOptions) marshalField(b []byte, fd *schema.FieldDescriptor, v value.Value, depth int) ([]byte, error) {
	if o.ValidateFields {
		if err := validate.Strict(v, fd); err != nil {
			return nil, err
		}
	}
	switch {
	case fd.IsMap():
		return o.marshalMap(b, fd, v, depth)
	case fd.IsRepeated():
		return o.marshalRepeated(b, fd, v, depth)
	default:
		if !o.PreserveProto3Defaults && fd.Kind() != schema.MessageKind && value.IsZero(v, fd) {
			return b, nil
		}
		return o.marshalSingular(b, fd, v, depth)
	}
}

func (o MarshalOptions) marshalRepeated(b []byte, fd *schema.FieldDescriptor, v value.Value, depth int) ([]byte, error) {
	list, _ := v.List()
	for _, ev := range list {
		nb, err := o.marshalSingular(b, fd, ev, depth)
		if err != nil {
			return nil, err
		}
		b = nb
	}
	return b, nil
}

func (o MarshalOptions) marshalMap(b []byte, fd *schema.FieldDescriptor, v value.Value, depth int) ([]byte, error) {
	m, _ := v.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if o.Deterministic {
		sort.Strings(keys)
	}
	keyField, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "key", Number: 1, Kind: fd.MapKeyKind()})
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		kv, err := mapKeyValue(k, fd.MapKeyKind())
		if err != nil {
			return nil, err
		}
		var entry []byte
		entry, err = o.marshalSingular(entry, keyField, kv, depth)
		if err != nil {
			return nil, err
		}
		entry, err = o.marshalSingular(entry, fd.MapValueField(), m[k], depth+1)
		if err != nil {
			return nil, err
		}
		b = wire.AppendTag(b, wire.Number(fd.Number()), wire.BytesType)
		b = wire.AppendBytes(b, entry)
	}
	return b, nil
}

func (o MarshalOptions) marshalSingular(b []byte, fd *schema.FieldDescriptor, v value.Value, depth int) ([]byte, error) {
	num := wire.Number(fd.Number())
	switch fd.Kind() {
	case schema.Int32Kind, schema.Int64Kind:
		i, _ := v.Int()
		b = wire.AppendTag(b, num, wire.VarintType)
		b = wire.AppendVarint(b, uint64(i))
	case schema.Sint32Kind:
		i, _ := v.Int()
		b = wire.AppendTag(b, num, wire.VarintType)
		b = wire.AppendVarint(b, uint64(wire.EncodeZigZag32(int32(i))))
	case schema.Sint64Kind:
		i, _ := v.Int()
		b = wire.AppendTag(b, num, wire.VarintType)
		b = wire.AppendVarint(b, wire.EncodeZigZag64(i))
	case schema.Uint32Kind, schema.Uint64Kind:
		u, _ := v.UInt()
		b = wire.AppendTag(b, num, wire.VarintType)
		b = wire.AppendVarint(b, u)
	case schema.Fixed32Kind:
		u, _ := v.UInt()
		b = wire.AppendTag(b, num, wire.Fixed32Type)
		b = wire.AppendFixed32(b, uint32(u))
	case schema.Sfixed32Kind:
		i, _ := v.Int()
		b = wire.AppendTag(b, num, wire.Fixed32Type)
		b = wire.AppendFixed32(b, uint32(i))
	case schema.Fixed64Kind:
		u, _ := v.UInt()
		b = wire.AppendTag(b, num, wire.Fixed64Type)
		b = wire.AppendFixed64(b, u)
	case schema.Sfixed64Kind:
		i, _ := v.Int()
		b = wire.AppendTag(b, num, wire.Fixed64Type)
		b = wire.AppendFixed64(b, uint64(i))
	case schema.FloatKind:
		f, _ := v.Float32()
		b = wire.AppendTag(b, num, wire.Fixed32Type)
		b = wire.AppendFixed32(b, math.Float32bits(f))
	case schema.DoubleKind:
		f, _ := v.Float64()
		b = wire.AppendTag(b, num, wire.Fixed64Type)
		b = wire.AppendFixed64(b, math.Float64bits(f))
	case schema.BoolKind:
		bl, _ := v.Bool()
		b = wire.AppendTag(b, num, wire.VarintType)
		if bl {
			b = wire.AppendVarint(b, 1)
		} else {
			b = wire.AppendVarint(b, 0)
		}
	case schema.StringKind:
		s, _ := v.StringValue()
		if o.ValidateUTF8 && !utf8.ValidString(s) {
			return nil, &werrors.InvalidUTF8{Field: fd.Name()}
		}
		b = wire.AppendTag(b, num, wire.BytesType)
		b = wire.AppendBytes(b, []byte(s))
	case schema.BytesKind:
		by, _ := v.Bytes()
		b = wire.AppendTag(b, num, wire.BytesType)
		b = wire.AppendBytes(b, by)
	case schema.MessageKind:
		msg, _ := v.Message()
		dm, ok := msg.(*dynamicpb.DynamicMessage)
		if !ok {
			return nil, &werrors.TypeMismatch{Field: fd.Name(), Expected: "message", Got: v.Variant().String()}
		}
		sub, err := o.marshalMessage(dm, depth+1)
		if err != nil {
			return nil, err
		}
		b = wire.AppendTag(b, num, wire.BytesType)
		b = wire.AppendBytes(b, sub)
	case schema.EnumKind:
		e, _ := v.EnumValue()
		b = wire.AppendTag(b, num, wire.VarintType)
		b = wire.AppendVarint(b, uint64(int64(e.Number)))
	default:
		return nil, &werrors.UnsupportedType{Field: fd.Name(), Kind: fd.Kind().String()}
	}
	return b, nil
}

// mapKeyValue parses a map's textually-rendered key back into a Value of
// the declared key kind, for encoding the synthetic entry's field 1.
func mapKeyValue(k string, kind schema.Kind) (value.Value, error) {
	v := value.StringOf(k)
	switch {
	case kind == schema.StringKind:
		return v, nil
	case kind == schema.BoolKind:
		b, ok := v.AsBool()
		if !ok {
			return value.Value{}, werrors.New("invalid map key %q for bool", k)
		}
		return value.BoolOf(b), nil
	case kind == schema.Uint32Kind || kind == schema.Uint64Kind ||
		kind == schema.Fixed32Kind || kind == schema.Fixed64Kind:
		if u, ok := v.AsUint64(); ok {
			return value.UIntOf(u), nil
		}
		return value.Value{}, werrors.New("invalid map key %q for %s", k, kind.String())
	case kind.IsInteger():
		if i, ok := v.AsInt64(); ok {
			return value.IntOf(i), nil
		}
		return value.Value{}, werrors.New("invalid map key %q for %s", k, kind.String())
	default:
		return value.Value{}, werrors.New("unsupported map key kind %s", kind.String())
	}
}
