// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"github.com/dynproto/dynproto/internal/werrors"
	"github.com/dynproto/dynproto/schema"
	"github.com/dynproto/dynproto/value"
)

// Strict checks that v is exactly the variant fd's kind demands, with no
// coercion. This is the narrower check the wire marshaller applies
// before encoding a field: ingestion accepts convertible data via Set,
// but the wire output only ever reflects an exact match.
func Strict(v value.Value, fd *schema.FieldDescriptor) error {
	switch {
	case fd.IsMap():
		m, ok := v.Map()
		if !ok {
			return typeErr(fd, v)
		}
		vf := fd.MapValueField()
		for _, ev := range m {
			if err := strictSingular(ev, vf); err != nil {
				return err
			}
		}
		return nil
	case fd.IsRepeated():
		list, ok := v.List()
		if !ok {
			return typeErr(fd, v)
		}
		for _, ev := range list {
			if err := strictSingular(ev, fd); err != nil {
				return err
			}
		}
		return nil
	default:
		return strictSingular(v, fd)
	}
}

func strictSingular(v value.Value, fd *schema.FieldDescriptor) error {
	want := strictVariant(fd.Kind())
	if want == value.Invalid {
		return &werrors.UnsupportedType{Field: fd.Name(), Kind: fd.Kind().String()}
	}
	if v.Variant() != want {
		return &werrors.TypeMismatch{Field: fd.Name(), Expected: want.String(), Got: v.Variant().String()}
	}
	if want == value.MessageVariant {
		msg, _ := v.Message()
		if fd.MessageType() != nil && msg != nil && msg.Descriptor().FullName() != fd.MessageType().FullName() {
			return &werrors.TypeMismatch{Field: fd.Name(), Expected: fd.MessageType().FullName(), Got: msg.Descriptor().FullName()}
		}
	}
	return nil
}

// strictVariant returns the single Variant a FieldDescriptor's Kind
// demands under exact-match validation, or value.Invalid for group/
// unknown kinds, which are always invalid under strict validation.
func strictVariant(k schema.Kind) value.Variant {
	switch k {
	case schema.Int32Kind, schema.Int64Kind, schema.Sint32Kind, schema.Sint64Kind, schema.Sfixed32Kind, schema.Sfixed64Kind:
		return value.IntVariant
	case schema.Uint32Kind, schema.Uint64Kind, schema.Fixed32Kind, schema.Fixed64Kind:
		return value.UIntVariant
	case schema.FloatKind:
		return value.FloatVariant
	case schema.DoubleKind:
		return value.DoubleVariant
	case schema.BoolKind:
		return value.BoolVariant
	case schema.StringKind:
		return value.StringVariant
	case schema.BytesKind:
		return value.BytesVariant
	case schema.MessageKind:
		return value.MessageVariant
	case schema.EnumKind:
		return value.EnumVariant
	default:
		return value.Invalid
	}
}
