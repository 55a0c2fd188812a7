// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements Value, the tagged union of every representable
// protobuf field value: scalars, bytes, a sub-message, a repeated list, a
// map, and an enum.
//
// This package depends on schema (for EnumDescriptor and
// MessageDescriptor references inside the Enum and Message variants) but
// schema does not depend back on this package — a field's declared
// default is stored in schema as a small primitive union
// (schema.DefaultValue), not as a Value, precisely to keep this layering
// acyclic. The dynamic message implementation (package dynamicpb) depends
// on both schema and value and supplies the concrete type that satisfies
// the Message interface below, without this package ever importing
// dynamicpb.
package value

import (
	"fmt"

	"github.com/dynproto/dynproto/schema"
)

// Variant identifies which field of Value is inhabited.
type Variant int8

const (
	Invalid Variant = iota
	IntVariant
	UIntVariant
	FloatVariant
	DoubleVariant
	BoolVariant
	StringVariant
	BytesVariant
	MessageVariant
	RepeatedVariant
	MapVariant
	EnumVariant
)

func (v Variant) String() string {
	switch v {
	case Invalid:
		return "invalid"
	case IntVariant:
		return "int"
	case UIntVariant:
		return "uint"
	case FloatVariant:
		return "float"
	case DoubleVariant:
		return "double"
	case BoolVariant:
		return "bool"
	case StringVariant:
		return "string"
	case BytesVariant:
		return "bytes"
	case MessageVariant:
		return "message"
	case RepeatedVariant:
		return "repeated"
	case MapVariant:
		return "map"
	case EnumVariant:
		return "enum"
	default:
		return fmt.Sprintf("Variant(%d)", int8(v))
	}
}

// Message is the minimal reflective surface Value needs from a
// sub-message: enough to report its type for validation and to render a
// canonical string. Package dynamicpb's *DynamicMessage implements this.
type Message interface {
	Descriptor() *schema.MessageDescriptor
}

// Enum is the payload of an EnumVariant Value. Number is authoritative;
// Name is advisory and, when Descriptor is non-nil, must agree with it
// under validation.
type Enum struct {
	Name       string
	Number     int32
	Descriptor *schema.EnumDescriptor
}

// Value is the tagged union of every representable field value. The zero
// Value is Invalid and inhabits no variant.
type Value struct {
	variant Variant

	i   int64
	u   uint64
	f32 float32
	f64 float64
	b   bool
	s   string
	by  []byte

	msg  Message
	list []Value
	mp   map[string]Value
	enum Enum
}

// Variant reports which field of Value is populated.
func (v Value) Variant() Variant { return v.variant }

// IsValid reports whether v holds a variant (is not the zero Value).
func (v Value) IsValid() bool { return v.variant != Invalid }

// IntOf returns an Int-variant Value, covering the signed integer
// families (int32/int64/sint32/sint64/sfixed32/sfixed64).
func IntOf(i int64) Value { return Value{variant: IntVariant, i: i} }

// UIntOf returns a UInt-variant Value, covering the unsigned and
// fixed-unsigned families (uint32/uint64/fixed32/fixed64).
func UIntOf(u uint64) Value { return Value{variant: UIntVariant, u: u} }

// FloatOf returns a Float-variant Value.
func FloatOf(f float32) Value { return Value{variant: FloatVariant, f32: f} }

// DoubleOf returns a Double-variant Value.
func DoubleOf(f float64) Value { return Value{variant: DoubleVariant, f64: f} }

// BoolOf returns a Bool-variant Value.
func BoolOf(b bool) Value { return Value{variant: BoolVariant, b: b} }

// StringOf returns a String-variant Value.
func StringOf(s string) Value { return Value{variant: StringVariant, s: s} }

// BytesOf returns a Bytes-variant Value. The byte slice is stored by
// reference; callers that need independent ownership should copy first.
func BytesOf(b []byte) Value { return Value{variant: BytesVariant, by: b} }

// MessageOf returns a Message-variant Value wrapping a sub-message.
func MessageOf(m Message) Value { return Value{variant: MessageVariant, msg: m} }

// RepeatedOf returns a Repeated-variant Value. Each element must satisfy
// the singular form of the owning field; this constructor does not
// validate that (see package validate).
func RepeatedOf(elems []Value) Value {
	return Value{variant: RepeatedVariant, list: elems}
}

// MapOf returns a Map-variant Value keyed by the textual rendering of the
// declared key scalar.
func MapOf(m map[string]Value) Value {
	return Value{variant: MapVariant, mp: m}
}

// EnumOf returns an Enum-variant Value.
func EnumOf(e Enum) Value { return Value{variant: EnumVariant, enum: e} }

// Int returns the Int payload, or (0, false) if v is not IntVariant.
func (v Value) Int() (int64, bool) {
	if v.variant != IntVariant {
		return 0, false
	}
	return v.i, true
}

// UInt returns the UInt payload, or (0, false) if v is not UIntVariant.
func (v Value) UInt() (uint64, bool) {
	if v.variant != UIntVariant {
		return 0, false
	}
	return v.u, true
}

// Float32 returns the Float payload, or (0, false) if v is not
// FloatVariant.
func (v Value) Float32() (float32, bool) {
	if v.variant != FloatVariant {
		return 0, false
	}
	return v.f32, true
}

// Float64 returns the Double payload, or (0, false) if v is not
// DoubleVariant.
func (v Value) Float64() (float64, bool) {
	if v.variant != DoubleVariant {
		return 0, false
	}
	return v.f64, true
}

// Bool returns the Bool payload, or (false, false) if v is not
// BoolVariant.
func (v Value) Bool() (bool, bool) {
	if v.variant != BoolVariant {
		return false, false
	}
	return v.b, true
}

// StringValue returns the String payload, or ("", false) if v is not
// StringVariant. (Named StringValue, not String, so it does not collide
// with fmt.Stringer; use AsString for a total textual rendering.)
func (v Value) StringValue() (string, bool) {
	if v.variant != StringVariant {
		return "", false
	}
	return v.s, true
}

// Bytes returns the Bytes payload, or (nil, false) if v is not
// BytesVariant.
func (v Value) Bytes() ([]byte, bool) {
	if v.variant != BytesVariant {
		return nil, false
	}
	return v.by, true
}

// Message returns the Message payload, or (nil, false) if v is not
// MessageVariant.
func (v Value) Message() (Message, bool) {
	if v.variant != MessageVariant {
		return nil, false
	}
	return v.msg, true
}

// List returns the Repeated payload, or (nil, false) if v is not
// RepeatedVariant. The caller must not mutate the returned slice.
func (v Value) List() ([]Value, bool) {
	if v.variant != RepeatedVariant {
		return nil, false
	}
	return v.list, true
}

// Map returns the Map payload, or (nil, false) if v is not MapVariant.
// The caller must not mutate the returned map.
func (v Value) Map() (map[string]Value, bool) {
	if v.variant != MapVariant {
		return nil, false
	}
	return v.mp, true
}

// EnumValue returns the Enum payload, or (Enum{}, false) if v is not
// EnumVariant.
func (v Value) EnumValue() (Enum, bool) {
	if v.variant != EnumVariant {
		return Enum{}, false
	}
	return v.enum, true
}
