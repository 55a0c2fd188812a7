// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/dynproto/dynproto/schema"

// Zero returns the proto3 zero value for a scalar kind: 0, 0.0, false,
// "", or an empty byte slice. It returns an Invalid Value for message,
// group, and unknown kinds (which have no scalar zero) and, for enum
// fields, the enum value numbered 0 if one is declared.
func Zero(k schema.Kind, enumType *schema.EnumDescriptor) Value {
	switch k {
	case schema.Int32Kind, schema.Int64Kind, schema.Sint32Kind, schema.Sint64Kind,
		schema.Sfixed32Kind, schema.Sfixed64Kind:
		return IntOf(0)
	case schema.Uint32Kind, schema.Uint64Kind, schema.Fixed32Kind, schema.Fixed64Kind:
		return UIntOf(0)
	case schema.FloatKind:
		return FloatOf(0)
	case schema.DoubleKind:
		return DoubleOf(0)
	case schema.BoolKind:
		return BoolOf(false)
	case schema.StringKind:
		return StringOf("")
	case schema.BytesKind:
		return BytesOf(nil)
	case schema.EnumKind:
		if enumType != nil {
			if name, ok := enumType.ValueByNumber(0); ok {
				return EnumOf(Enum{Name: name, Number: 0, Descriptor: enumType})
			}
		}
		return EnumOf(Enum{Number: 0, Descriptor: enumType})
	default:
		return Value{}
	}
}

// Default returns fd's declared default if one is present
// (schema.FieldDescriptor.Default), otherwise the proto3 zero value for
// fd's kind. Repeated and map fields have no singular default; Default
// returns an empty Repeated/Map Value for them.
func Default(fd *schema.FieldDescriptor) Value {
	if fd.IsRepeated() {
		return RepeatedOf(nil)
	}
	if fd.IsMap() {
		return MapOf(nil)
	}
	if d := fd.Default(); d != nil {
		switch fd.Kind() {
		case schema.Int32Kind, schema.Int64Kind, schema.Sint32Kind, schema.Sint64Kind,
			schema.Sfixed32Kind, schema.Sfixed64Kind:
			return IntOf(d.Int)
		case schema.Uint32Kind, schema.Uint64Kind, schema.Fixed32Kind, schema.Fixed64Kind:
			return UIntOf(d.UInt)
		case schema.FloatKind:
			return FloatOf(d.Float)
		case schema.DoubleKind:
			return DoubleOf(d.Double)
		case schema.BoolKind:
			return BoolOf(d.Bool)
		case schema.StringKind:
			return StringOf(d.String)
		case schema.BytesKind:
			return BytesOf(d.Bytes)
		case schema.EnumKind:
			name, _ := fd.EnumType().ValueByNumber(int32(d.Int))
			return EnumOf(Enum{Name: name, Number: int32(d.Int), Descriptor: fd.EnumType()})
		}
	}
	return Zero(fd.Kind(), fd.EnumType())
}

// IsZero reports whether v equals the proto3 default for fd, used by the
// Marshaller to elide default-valued scalar fields. A present message
// field is never considered default, regardless of its own contents.
func IsZero(v Value, fd *schema.FieldDescriptor) bool {
	if fd.IsRepeated() || fd.IsMap() {
		return false // emptiness is handled separately by the marshaller
	}
	if fd.Kind() == schema.MessageKind {
		return false
	}
	return Equal(v, Zero(fd.Kind(), fd.EnumType()))
}
