// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "github.com/dynproto/dynproto/dynamicpb"

// Equal reports whether a and b are structurally equal: same message
// type, same populated fields, and equal values field-by-field,
// independent of map iteration order.
func Equal(a, b *dynamicpb.DynamicMessage) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.EqualMessage(b)
}

// Clone returns a deep copy of m.
func Clone(m *dynamicpb.DynamicMessage) *dynamicpb.DynamicMessage {
	return dynamicpb.Clone(m)
}

// Size returns the number of bytes Marshal(m) would produce, using
// DefaultMarshalOptions. It is computed by marshalling and measuring
// rather than a dedicated size pass; Size is a convenience wrapper, not
// a separate code path held to the same byte-exactness requirement the
// encoder itself must meet.
func Size(m *dynamicpb.DynamicMessage) (int, error) {
	b, err := Marshal(m)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
