// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"math"
	"unicode/utf8"

	"github.com/dynproto/dynproto/dynamicpb"
	"github.com/dynproto/dynproto/internal/wire"
	"github.com/dynproto/dynproto/internal/werrors"
	"github.com/dynproto/dynproto/schema"
	"github.com/dynproto/dynproto/validate"
	"github.com/dynproto/dynproto/value"
)

// Unmarshal decodes b against desc using DefaultUnmarshalOptions.
func Unmarshal(b []byte, desc *schema.MessageDescriptor) (*dynamicpb.DynamicMessage, error) {
	return DefaultUnmarshalOptions().Unmarshal(b, desc)
}

// Unmarshal decodes b against desc per o: unknown field numbers are
// preserved verbatim unless SkipUnknownFields, a wire-type mismatch on a
// known field tolerantly skips just that field, a repeated singular field
// appearing more than once keeps the last occurrence, and nesting deeper
// than MaxDepth fails with ValidationError.
func (o UnmarshalOptions) Unmarshal(b []byte, desc *schema.MessageDescriptor) (*dynamicpb.DynamicMessage, error) {
	m, err := o.unmarshalMessage(b, desc, 0)
	if err != nil {
		return nil, err
	}
	if o.ValidateFields {
		if err := validate.Message(m, o.validatorOptions()); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (o UnmarshalOptions) unmarshalMessage(b []byte, desc *schema.MessageDescriptor, depth int) (*dynamicpb.DynamicMessage, error) {
	if depth > o.maxDepth() {
		return nil, &werrors.ValidationError{Field: desc.FullName(), Reason: "max depth"}
	}
	m := dynamicpb.New(desc)
	repeated := make(map[int32][]value.Value)

	for len(b) > 0 {
		start := b
		num, typ, tn := wire.ConsumeTag(b)
		if tn < 0 {
			return nil, wire.Error(tn)
		}
		rest := b[tn:]
		vn := wire.ConsumeFieldValue(num, typ, rest)
		if vn < 0 {
			return nil, wire.Error(vn)
		}
		payload := rest[:vn]
		b = rest[vn:]
		if typ == wire.BytesType {
			payload, _ = wire.ConsumeBytes(payload)
		}

		fd := desc.FieldByNumber(int32(num))
		if fd == nil {
			if !o.SkipUnknownFields {
				raw := append([]byte(nil), start[:tn+vn]...)
				m.SetUnknownField(int32(num), raw)
			}
			continue
		}

		if !wireTypeMatches(fd, typ) {
			continue // tolerant skip: wire-type mismatch is not surfaced
		}

		switch {
		case fd.IsMap():
			k, v, err := o.unmarshalMapEntry(fd, payload, depth)
			if err != nil {
				return nil, err
			}
			cur, _ := m.Get(fd)
			mp, _ := cur.Map()
			out := make(map[string]value.Value, len(mp)+1)
			for ek, ev := range mp {
				out[ek] = ev
			}
			out[k] = v
			if err := m.Set(fd, value.MapOf(out)); err != nil {
				return nil, err
			}
		case fd.IsRepeated():
			v, err := o.unmarshalScalar(fd, typ, payload, depth)
			if err != nil {
				return nil, err
			}
			repeated[int32(num)] = append(repeated[int32(num)], v)
		default:
			v, err := o.unmarshalScalar(fd, typ, payload, depth)
			if err != nil {
				return nil, err
			}
			if err := m.Set(fd, v); err != nil { // last-wins: Set replaces
				return nil, err
			}
		}
	}

	for num, list := range repeated {
		fd := desc.FieldByNumber(num)
		if err := m.Set(fd, value.RepeatedOf(list)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// wireTypeMatches reports whether typ is the wire type fd's kind expects.
// Map and message fields are always length-delimited.
func wireTypeMatches(fd *schema.FieldDescriptor, typ wire.Type) bool {
	if fd.IsMap() {
		return typ == wire.BytesType
	}
	switch fd.Kind() {
	case schema.Int32Kind, schema.Int64Kind, schema.Sint32Kind, schema.Sint64Kind,
		schema.Uint32Kind, schema.Uint64Kind, schema.BoolKind, schema.EnumKind:
		return typ == wire.VarintType
	case schema.Fixed32Kind, schema.Sfixed32Kind, schema.FloatKind:
		return typ == wire.Fixed32Type
	case schema.Fixed64Kind, schema.Sfixed64Kind, schema.DoubleKind:
		return typ == wire.Fixed64Type
	case schema.StringKind, schema.BytesKind, schema.MessageKind:
		return typ == wire.BytesType
	default:
		return false
	}
}

func (o UnmarshalOptions) unmarshalScalar(fd *schema.FieldDescriptor, typ wire.Type, payload []byte, depth int) (value.Value, error) {
	switch fd.Kind() {
	case schema.Int32Kind, schema.Int64Kind:
		u, _ := wire.ConsumeVarint(payload)
		return value.IntOf(int64(u)), nil
	case schema.Sint32Kind:
		u, _ := wire.ConsumeVarint(payload)
		return value.IntOf(int64(wire.DecodeZigZag32(uint32(u)))), nil
	case schema.Sint64Kind:
		u, _ := wire.ConsumeVarint(payload)
		return value.IntOf(wire.DecodeZigZag64(u)), nil
	case schema.Uint32Kind, schema.Uint64Kind:
		u, _ := wire.ConsumeVarint(payload)
		return value.UIntOf(u), nil
	case schema.Fixed32Kind:
		u, _ := wire.ConsumeFixed32(payload)
		return value.UIntOf(uint64(u)), nil
	case schema.Sfixed32Kind:
		u, _ := wire.ConsumeFixed32(payload)
		return value.IntOf(int64(int32(u))), nil
	case schema.Fixed64Kind:
		u, _ := wire.ConsumeFixed64(payload)
		return value.UIntOf(u), nil
	case schema.Sfixed64Kind:
		u, _ := wire.ConsumeFixed64(payload)
		return value.IntOf(int64(u)), nil
	case schema.FloatKind:
		u, _ := wire.ConsumeFixed32(payload)
		return value.FloatOf(math.Float32frombits(u)), nil
	case schema.DoubleKind:
		u, _ := wire.ConsumeFixed64(payload)
		return value.DoubleOf(math.Float64frombits(u)), nil
	case schema.BoolKind:
		u, _ := wire.ConsumeVarint(payload)
		return value.BoolOf(u != 0), nil
	case schema.StringKind:
		s := string(payload)
		if o.ValidateUTF8 && !utf8.ValidString(s) {
			return value.Value{}, &werrors.InvalidUTF8{Field: fd.Name()}
		}
		return value.StringOf(s), nil
	case schema.BytesKind:
		return value.BytesOf(append([]byte(nil), payload...)), nil
	case schema.EnumKind:
		u, _ := wire.ConsumeVarint(payload)
		n := int32(u)
		name, _ := fd.EnumType().ValueByNumber(n)
		return value.EnumOf(value.Enum{Name: name, Number: n, Descriptor: fd.EnumType()}), nil
	case schema.MessageKind:
		sub, err := o.unmarshalMessage(payload, fd.MessageType(), depth+1)
		if err != nil {
			return value.Value{}, err
		}
		return value.MessageOf(sub), nil
	default:
		return value.Value{}, &werrors.UnsupportedType{Field: fd.Name(), Kind: fd.Kind().String()}
	}
}

// unmarshalMapEntry decodes a synthetic {1: key, 2: value} map-entry
// sub-message, returning the key's textual rendering and the decoded
// value.
func (o UnmarshalOptions) unmarshalMapEntry(fd *schema.FieldDescriptor, payload []byte, depth int) (string, value.Value, error) {
	keyField, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "key", Number: 1, Kind: fd.MapKeyKind()})
	if err != nil {
		return "", value.Value{}, err
	}
	var keyVal value.Value
	var val value.Value
	b := payload
	for len(b) > 0 {
		num, typ, tn := wire.ConsumeTag(b)
		if tn < 0 {
			return "", value.Value{}, wire.Error(tn)
		}
		rest := b[tn:]
		vn := wire.ConsumeFieldValue(num, typ, rest)
		if vn < 0 {
			return "", value.Value{}, wire.Error(vn)
		}
		part := rest[:vn]
		b = rest[vn:]
		if typ == wire.BytesType {
			part, _ = wire.ConsumeBytes(part)
		}
		switch num {
		case 1:
			kv, err := o.unmarshalScalar(keyField, typ, part, depth+1)
			if err != nil {
				return "", value.Value{}, err
			}
			keyVal = kv
		case 2:
			vv, err := o.unmarshalScalar(fd.MapValueField(), typ, part, depth+1)
			if err != nil {
				return "", value.Value{}, err
			}
			val = vv
		}
	}
	if !keyVal.IsValid() {
		keyVal = value.Zero(fd.MapKeyKind(), nil)
	}
	if !val.IsValid() {
		val = value.Default(fd.MapValueField())
	}
	return keyVal.AsString(), val, nil
}
