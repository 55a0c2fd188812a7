// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto implements the wire-format Marshaller and Unmarshaller:
// encoding a DynamicMessage to canonical protobuf bytes and decoding
// bytes back against a schema.MessageDescriptor, plus the Equal/Clone/
// Size helpers a generated-code proto package would also export.
package proto

import "github.com/dynproto/dynproto/validate"

// MarshalOptions configures Marshal.
type MarshalOptions struct {
	// Deterministic sorts map entries by key so repeated calls on the
	// same logical content produce byte-identical output.
	Deterministic bool

	// PreserveProto3Defaults disables zero-value elision: every
	// populated scalar field is written even if it equals its kind's
	// zero value.
	PreserveProto3Defaults bool

	// ValidateUTF8 rejects string fields containing invalid UTF-8
	// instead of writing them as-is.
	ValidateUTF8 bool

	// ValidateFields runs strict (exact-variant) validation over every
	// set field before encoding it.
	ValidateFields bool

	// MaxDepth bounds nested-message recursion during encoding, mirroring
	// UnmarshalOptions.MaxDepth; 0 means the default of 100.
	MaxDepth int

	// UseBufferPool hints that the marshaller may reuse a pooled byte
	// buffer for the returned slice's backing array. This implementation
	// does not pool, but the field is kept so a caller's option struct
	// round-trips unchanged across a future pooling implementation.
	UseBufferPool bool
}

// DefaultMarshalOptions returns the option set Marshal uses: proto3
// default elision on, UTF-8 validated, fields strictly validated, depth
// bounded at 100.
func DefaultMarshalOptions() MarshalOptions {
	return MarshalOptions{
		ValidateUTF8:   true,
		ValidateFields: true,
		MaxDepth:       100,
	}
}

func (o MarshalOptions) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return 100
}

// UnmarshalOptions configures Unmarshal.
type UnmarshalOptions struct {
	// SkipUnknownFields discards fields whose number is not in the
	// descriptor instead of preserving them for re-serialization.
	SkipUnknownFields bool

	// MaxDepth bounds nested-message recursion during decoding; 0 means
	// the default of 100.
	MaxDepth int

	// ValidateFields runs the lenient Validator over the fully decoded
	// message before returning it.
	ValidateFields bool

	// ValidateUTF8 rejects string fields containing invalid UTF-8 bytes
	// with *werrors.InvalidUTF8 instead of producing a best-effort
	// string.
	ValidateUTF8 bool

	// ValidatorOptions, when ValidateFields is true, overrides the
	// Validator options used for the post-decode pass. The zero value
	// uses validate.DefaultOptions.
	ValidatorOptions *validate.Options
}

// DefaultUnmarshalOptions returns the option set Unmarshal uses: unknown
// fields preserved, depth bounded at 100, fields checked by the lenient
// Validator, UTF-8 enforced.
func DefaultUnmarshalOptions() UnmarshalOptions {
	return UnmarshalOptions{
		MaxDepth:       100,
		ValidateFields: true,
		ValidateUTF8:   true,
	}
}

func (o UnmarshalOptions) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return 100
}

func (o UnmarshalOptions) validatorOptions() validate.Options {
	if o.ValidatorOptions != nil {
		return *o.ValidatorOptions
	}
	return validate.DefaultOptions()
}
