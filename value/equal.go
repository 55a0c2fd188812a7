// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "bytes"

// Equal reports whether a and b are structurally equal, discriminated by
// variant tag first. Two MessageVariant values are equal if both are nil,
// or, when the first implements EqualMessage(Message) bool (as
// *dynamicpb.DynamicMessage does), if EqualMessage reports true;
// otherwise only if they wrap the identical Message value (==).
func Equal(a, b Value) bool {
	if a.variant != b.variant {
		return false
	}
	switch a.variant {
	case Invalid:
		return true
	case IntVariant:
		return a.i == b.i
	case UIntVariant:
		return a.u == b.u
	case FloatVariant:
		return a.f32 == b.f32
	case DoubleVariant:
		return a.f64 == b.f64
	case BoolVariant:
		return a.b == b.b
	case StringVariant:
		return a.s == b.s
	case BytesVariant:
		return bytes.Equal(a.by, b.by)
	case EnumVariant:
		return a.enum.Number == b.enum.Number
	case MessageVariant:
		if a.msg == nil || b.msg == nil {
			return a.msg == nil && b.msg == nil
		}
		if eq, ok := a.msg.(interface{ EqualMessage(Message) bool }); ok {
			return eq.EqualMessage(b.msg)
		}
		return a.msg == b.msg
	case RepeatedVariant:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case MapVariant:
		if len(a.mp) != len(b.mp) {
			return false
		}
		for k, av := range a.mp {
			bv, ok := b.mp[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
