// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamicpb

import "sort"

// SetUnknownField appends a raw wire segment (tag plus payload bytes,
// verbatim) to the ordered list kept for the given field number. The
// caller must not mutate raw after the call.
func (m *DynamicMessage) SetUnknownField(number int32, raw []byte) {
	if m.unknown == nil {
		m.unknown = make(map[int32][][]byte)
	}
	m.unknown[number] = append(m.unknown[number], raw)
}

// UnknownFields returns the raw segments recorded for the given field
// number, or nil if none were recorded. Segments are in the order they
// were encountered on the wire.
func (m *DynamicMessage) UnknownFields(number int32) [][]byte {
	return m.unknown[number]
}

// RangeUnknown calls f for every field number that has unknown segments,
// in ascending field-number order, matching the order unknown segments
// are re-appended on re-serialization. Iteration stops early if f
// returns false.
func (m *DynamicMessage) RangeUnknown(f func(number int32, segments [][]byte) bool) {
	nums := make([]int32, 0, len(m.unknown))
	for n := range m.unknown {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	for _, n := range nums {
		if !f(n, m.unknown[n]) {
			return
		}
	}
}

// HasUnknownFields reports whether m retained any unrecognized wire data.
func (m *DynamicMessage) HasUnknownFields() bool { return len(m.unknown) > 0 }
