// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package werrors

import "testing"

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		label string
		err   error
		want  string
	}{
		{"New", New("bad %s", "thing"), "proto: bad thing"},
		{"TypeMismatch", &TypeMismatch{Field: "age", Expected: "int32", Got: "string"},
			"proto: field age: type mismatch: expected int32, got string"},
		{"MalformedVarint", &MalformedVarint{}, "proto: malformed varint"},
		{"TruncatedMessageNoReason", &TruncatedMessage{}, "proto: truncated message"},
		{"TruncatedMessageWithReason", &TruncatedMessage{Reason: "short buffer"}, "proto: truncated message: short buffer"},
		{"InvalidUTF8WithField", &InvalidUTF8{Field: "name"}, "proto: field name contains invalid UTF-8"},
		{"InvalidUTF8NoField", &InvalidUTF8{}, "proto: invalid UTF-8 detected"},
		{"InvalidFieldKey", &InvalidFieldKey{Reason: "empty path"}, "proto: invalid field key: empty path"},
		{"ValidationError", &ValidationError{Field: "x", Reason: "max depth"}, "proto: validation error: field x: max depth"},
		{"InvalidDescriptor", &InvalidDescriptor{Reason: "empty name"}, "proto: invalid descriptor: empty name"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvalidUTF8MarkerInterface(t *testing.T) {
	var err error = &InvalidUTF8{Field: "x"}
	marker, ok := err.(interface{ InvalidUTF8() bool })
	if !ok || !marker.InvalidUTF8() {
		t.Error("*InvalidUTF8 should satisfy the InvalidUTF8() bool marker interface")
	}
}
