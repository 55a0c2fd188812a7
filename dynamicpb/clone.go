// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamicpb

import "github.com/dynproto/dynproto/value"

// Clone returns a deep copy of m: nested DynamicMessage values, repeated
// lists, and maps are recursively copied rather than shared. This is the
// companion to DynamicMessage.Set's move semantics for message-typed
// fields — a caller that wants to keep its own copy after handing a
// sub-message to a parent clones it first.
func Clone(m *DynamicMessage) *DynamicMessage {
	if m == nil {
		return nil
	}
	out := New(m.desc)
	for n, v := range m.fields {
		out.fields[n] = cloneValue(v)
	}
	for n, segs := range m.unknown {
		cp := make([][]byte, len(segs))
		for i, s := range segs {
			b := make([]byte, len(s))
			copy(b, s)
			cp[i] = b
		}
		if out.unknown == nil {
			out.unknown = make(map[int32][][]byte)
		}
		out.unknown[n] = cp
	}
	return out
}

func cloneValue(v value.Value) value.Value {
	switch v.Variant() {
	case value.MessageVariant:
		msg, _ := v.Message()
		if dm, ok := msg.(*DynamicMessage); ok {
			return value.MessageOf(Clone(dm))
		}
		return v
	case value.RepeatedVariant:
		list, _ := v.List()
		out := make([]value.Value, len(list))
		for i, e := range list {
			out[i] = cloneValue(e)
		}
		return value.RepeatedOf(out)
	case value.MapVariant:
		mp, _ := v.Map()
		out := make(map[string]value.Value, len(mp))
		for k, e := range mp {
			out[k] = cloneValue(e)
		}
		return value.MapOf(out)
	case value.BytesVariant:
		b, _ := v.Bytes()
		cp := make([]byte, len(b))
		copy(cp, b)
		return value.BytesOf(cp)
	default:
		return v
	}
}
