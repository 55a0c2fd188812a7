// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// AsInt32 coerces v to int32: numeric narrowing is range-checked, bool
// maps to 0/1, strings are parsed as decimal. It returns (0, false) on
// overflow, sign conflict, or parse failure.
func (v Value) AsInt32() (int32, bool) {
	i, ok := v.AsInt64()
	if !ok || i < minInt32 || i > maxInt32 {
		return 0, false
	}
	return int32(i), true
}

// AsInt64 coerces v to int64.
func (v Value) AsInt64() (int64, bool) {
	switch v.variant {
	case IntVariant:
		return v.i, true
	case UIntVariant:
		if v.u > maxInt64 {
			return 0, false
		}
		return int64(v.u), true
	case FloatVariant:
		return int64(v.f32), true
	case DoubleVariant:
		return int64(v.f64), true
	case BoolVariant:
		if v.b {
			return 1, true
		}
		return 0, true
	case StringVariant:
		i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// AsUint32 coerces v to uint32.
func (v Value) AsUint32() (uint32, bool) {
	u, ok := v.AsUint64()
	if !ok || u > maxUint32 {
		return 0, false
	}
	return uint32(u), true
}

// AsUint64 coerces v to uint64. A negative Int is a sign conflict and
// yields (0, false).
func (v Value) AsUint64() (uint64, bool) {
	switch v.variant {
	case UIntVariant:
		return v.u, true
	case IntVariant:
		if v.i < 0 {
			return 0, false
		}
		return uint64(v.i), true
	case FloatVariant:
		if v.f32 < 0 {
			return 0, false
		}
		return uint64(v.f32), true
	case DoubleVariant:
		if v.f64 < 0 {
			return 0, false
		}
		return uint64(v.f64), true
	case BoolVariant:
		if v.b {
			return 1, true
		}
		return 0, true
	case StringVariant:
		u, err := strconv.ParseUint(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, false
		}
		return u, true
	default:
		return 0, false
	}
}

// AsFloat32 coerces v to float32.
func (v Value) AsFloat32() (float32, bool) {
	f, ok := v.AsFloat64()
	if !ok {
		return 0, false
	}
	return float32(f), true
}

// AsFloat64 coerces v to float64.
func (v Value) AsFloat64() (float64, bool) {
	switch v.variant {
	case DoubleVariant:
		return v.f64, true
	case FloatVariant:
		return float64(v.f32), true
	case IntVariant:
		return float64(v.i), true
	case UIntVariant:
		return float64(v.u), true
	case StringVariant:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AsBool coerces v to bool: non-zero numerics are true, and strings
// accept a case-insensitive "true"/"false"/"1"/"0".
func (v Value) AsBool() (bool, bool) {
	switch v.variant {
	case BoolVariant:
		return v.b, true
	case IntVariant:
		return v.i != 0, true
	case UIntVariant:
		return v.u != 0, true
	case FloatVariant:
		return v.f32 != 0, true
	case DoubleVariant:
		return v.f64 != 0, true
	case StringVariant:
		switch strings.ToLower(strings.TrimSpace(v.s)) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		default:
			return false, false
		}
	default:
		return false, false
	}
}

// AsString is total: it renders any Value to a canonical textual form —
// a numeric/bool literal, base64 for bytes, the enum's name,
// "Message(full_name)" for messages, and "[…]"/"{…}" structural
// renderings for repeated/map values.
func (v Value) AsString() string {
	switch v.variant {
	case Invalid:
		return ""
	case IntVariant:
		return strconv.FormatInt(v.i, 10)
	case UIntVariant:
		return strconv.FormatUint(v.u, 10)
	case FloatVariant:
		return strconv.FormatFloat(float64(v.f32), 'g', -1, 32)
	case DoubleVariant:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case BoolVariant:
		return strconv.FormatBool(v.b)
	case StringVariant:
		return v.s
	case BytesVariant:
		return base64.StdEncoding.EncodeToString(v.by)
	case MessageVariant:
		if v.msg == nil {
			return "Message(<nil>)"
		}
		return "Message(" + v.msg.Descriptor().FullName() + ")"
	case EnumVariant:
		return v.enum.Name
	case RepeatedVariant:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.list {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.AsString())
		}
		b.WriteByte(']')
		return b.String()
	case MapVariant:
		var b strings.Builder
		b.WriteByte('{')
		first := true
		for k, e := range v.mp {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(e.AsString())
		}
		b.WriteByte('}')
		return b.String()
	default:
		return ""
	}
}

// ToBytes is the String→Bytes coercion: the UTF-8 encoding of the string
// payload. It returns (nil, false) for any other variant.
func (v Value) ToBytes() ([]byte, bool) {
	switch v.variant {
	case BytesVariant:
		return v.by, true
	case StringVariant:
		return []byte(v.s), true
	default:
		return nil, false
	}
}

// AsStringFromBytes is the Bytes→String coercion: the base64 rendering
// of the byte payload. This is just AsString restricted to the Bytes
// variant, exposed under its own name for discoverability.
func (v Value) AsStringFromBytes() (string, bool) {
	if v.variant != BytesVariant {
		return "", false
	}
	return v.AsString(), true
}

const (
	minInt32  = -1 << 31
	maxInt32  = 1<<31 - 1
	maxInt64  = 1<<63 - 1
	maxUint32 = 1<<32 - 1
)
