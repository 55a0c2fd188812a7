// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package werrors implements the error taxonomy used across the dynamic
// message, wire-codec, and validation layers. Every exported error type
// here is returned, never logged or panicked, at the public API boundary.
package werrors

import "fmt"

// New formats a string according to the format specifier and arguments and
// returns an error with a "proto: " prefix, matching the convention used
// throughout this module for ad-hoc errors that do not need a dedicated
// type.
func New(f string, x ...interface{}) error {
	return &prefixError{s: fmt.Sprintf(f, x...)}
}

type prefixError struct{ s string }

func (e *prefixError) Error() string { return "proto: " + e.s }

// TypeMismatch reports that a Value's variant does not match the shape
// required by a FieldDescriptor (singular scalar, repeated, map, message,
// or enum).
type TypeMismatch struct {
	Field    string
	Expected string
	Got      string
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("proto: field %s: type mismatch: expected %s, got %s", e.Field, e.Expected, e.Got)
}

// MalformedVarint reports that a varint could not be decoded because it
// overflows 64 bits. A varint cut off by the end of the input is reported
// as TruncatedMessage instead.
type MalformedVarint struct{}

func (e *MalformedVarint) Error() string { return "proto: malformed varint" }

// TruncatedMessage reports that the input ended before a length-delimited
// or fixed-width field's payload was fully read.
type TruncatedMessage struct {
	Reason string
}

func (e *TruncatedMessage) Error() string {
	if e.Reason == "" {
		return "proto: truncated message"
	}
	return "proto: truncated message: " + e.Reason
}

// InvalidUTF8 reports that a string field contains a byte sequence that is
// not valid UTF-8.
type InvalidUTF8 struct {
	Field string
}

func (e *InvalidUTF8) Error() string {
	if e.Field == "" {
		return "proto: invalid UTF-8 detected"
	}
	return fmt.Sprintf("proto: field %s contains invalid UTF-8", e.Field)
}
func (*InvalidUTF8) InvalidUTF8() bool { return true }

// InvalidFieldKey reports that a wire tag could not be decoded into a
// (field number, wire type) pair, or that the field number was out of the
// valid [1, 2^29-1] range.
type InvalidFieldKey struct {
	Reason string
}

func (e *InvalidFieldKey) Error() string {
	if e.Reason == "" {
		return "proto: invalid field key"
	}
	return "proto: invalid field key: " + e.Reason
}

// UnsupportedWireType reports that a tag's wire type is not one of the
// six recognized codes (0 through 5).
type UnsupportedWireType struct {
	WireType int
}

func (e *UnsupportedWireType) Error() string {
	return fmt.Sprintf("proto: unsupported wire type %d", e.WireType)
}

// ValidationError aggregates enum-membership, recursion-depth, UTF-8, and
// numeric-range failures surfaced with the offending field name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "proto: validation error: " + e.Reason
	}
	return fmt.Sprintf("proto: validation error: field %s: %s", e.Field, e.Reason)
}

// InvalidMessageType reports that a message-typed FieldDescriptor has no
// target MessageDescriptor. This is a schema construction bug, not an
// input-data problem.
type InvalidMessageType struct {
	Field string
}

func (e *InvalidMessageType) Error() string {
	return fmt.Sprintf("proto: field %s: message field has no target descriptor", e.Field)
}

// UnsupportedType reports an attempt to encode a group or unknown-kind
// field.
type UnsupportedType struct {
	Field string
	Kind  string
}

func (e *UnsupportedType) Error() string {
	return fmt.Sprintf("proto: field %s: unsupported field type %s", e.Field, e.Kind)
}

// InvalidDescriptor reports a failure constructing a descriptor: an empty
// name, a non-positive field number, a duplicate number or name within one
// message, or a message field lacking a target descriptor.
type InvalidDescriptor struct {
	Reason string
}

func (e *InvalidDescriptor) Error() string {
	return "proto: invalid descriptor: " + e.Reason
}
