// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"github.com/dynproto/dynproto/internal/werrors"
	"github.com/dynproto/dynproto/schema"
)

// ConvertTo produces a new Value compatible with fd's declared shape, or
// fails. Repeated→repeated requires every element convertible; map→map
// requires every value convertible to the map's value field. Map keys are
// copied unchanged; they are not checked against the declared key kind.
func ConvertTo(v Value, fd *schema.FieldDescriptor) (Value, error) {
	switch {
	case fd.IsMap():
		m, ok := v.Map()
		if !ok {
			return Value{}, &werrors.TypeMismatch{Field: fd.Name(), Expected: "map", Got: v.Variant().String()}
		}
		out := make(map[string]Value, len(m))
		for k, ev := range m {
			cv, err := convertScalarOrMessage(ev, fd.MapValueField())
			if err != nil {
				return Value{}, err
			}
			out[k] = cv
		}
		return MapOf(out), nil
	case fd.IsRepeated():
		list, ok := v.List()
		if !ok {
			return Value{}, &werrors.TypeMismatch{Field: fd.Name(), Expected: "repeated", Got: v.Variant().String()}
		}
		out := make([]Value, len(list))
		for i, ev := range list {
			cv, err := convertSingular(ev, fd)
			if err != nil {
				return Value{}, err
			}
			out[i] = cv
		}
		return RepeatedOf(out), nil
	default:
		return convertSingular(v, fd)
	}
}

func convertScalarOrMessage(v Value, fd *schema.FieldDescriptor) (Value, error) {
	return convertSingular(v, fd)
}

func convertSingular(v Value, fd *schema.FieldDescriptor) (Value, error) {
	switch fd.Kind() {
	case schema.Int32Kind, schema.Sint32Kind, schema.Sfixed32Kind:
		i, ok := v.AsInt32()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return IntOf(int64(i)), nil
	case schema.Int64Kind, schema.Sint64Kind, schema.Sfixed64Kind:
		i, ok := v.AsInt64()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return IntOf(i), nil
	case schema.Uint32Kind, schema.Fixed32Kind:
		u, ok := v.AsUint32()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return UIntOf(uint64(u)), nil
	case schema.Uint64Kind, schema.Fixed64Kind:
		u, ok := v.AsUint64()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return UIntOf(u), nil
	case schema.FloatKind:
		f, ok := v.AsFloat32()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return FloatOf(f), nil
	case schema.DoubleKind:
		f, ok := v.AsFloat64()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return DoubleOf(f), nil
	case schema.BoolKind:
		b, ok := v.AsBool()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return BoolOf(b), nil
	case schema.StringKind:
		if s, ok := v.StringValue(); ok {
			return StringOf(s), nil
		}
		switch v.Variant() {
		case IntVariant, UIntVariant, FloatVariant, DoubleVariant, BoolVariant:
			return StringOf(v.AsString()), nil
		default:
			return Value{}, convErr(fd, v)
		}
	case schema.BytesKind:
		b, ok := v.ToBytes()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return BytesOf(b), nil
	case schema.MessageKind:
		m, ok := v.Message()
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return MessageOf(m), nil
	case schema.EnumKind:
		return convertEnum(v, fd)
	default:
		return Value{}, &werrors.UnsupportedType{Field: fd.Name(), Kind: fd.Kind().String()}
	}
}

func convertEnum(v Value, fd *schema.FieldDescriptor) (Value, error) {
	switch v.Variant() {
	case EnumVariant:
		return v, nil
	case IntVariant:
		n := int32(v.i)
		name, _ := fd.EnumType().ValueByNumber(n)
		return EnumOf(Enum{Name: name, Number: n, Descriptor: fd.EnumType()}), nil
	case UIntVariant:
		n := int32(v.u)
		name, _ := fd.EnumType().ValueByNumber(n)
		return EnumOf(Enum{Name: name, Number: n, Descriptor: fd.EnumType()}), nil
	case StringVariant:
		n, ok := fd.EnumType().ValueByName(v.s)
		if !ok {
			return Value{}, convErr(fd, v)
		}
		return EnumOf(Enum{Name: v.s, Number: n, Descriptor: fd.EnumType()}), nil
	default:
		return Value{}, convErr(fd, v)
	}
}

func convErr(fd *schema.FieldDescriptor, v Value) error {
	return &werrors.TypeMismatch{Field: fd.Name(), Expected: fd.Kind().String(), Got: v.Variant().String()}
}
