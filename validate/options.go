// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate implements the Validator component: per-field-type
// acceptance rules (lenient, matching value.ConvertTo's coercions) plus
// the stricter exact-variant check the wire marshaller uses, and the
// recursive, depth- and cycle-bounded walk over a whole DynamicMessage.
package validate

// Options configures a validation pass. The zero Options turns every
// optional check off; a MaxRecursionDepth of 0 or less means the default
// bound of 100. Call DefaultOptions and override individual fields.
type Options struct {
	// ValidateEnumValues requires an enum's numeric value to be a member
	// of its descriptor; false accepts any int32.
	ValidateEnumValues bool

	// ValidateUTF8 requires string fields to hold valid UTF-8.
	ValidateUTF8 bool

	// MaxRecursionDepth bounds how deep nested messages may go before
	// validation fails with ValidationError{reason:"max depth"}.
	MaxRecursionDepth int

	// ValidateRepeatedElements, when false, checks only that a repeated
	// field holds a Repeated-variant Value, not each element.
	ValidateRepeatedElements bool

	// ValidateMapEntries, when false, checks only that a map field holds
	// a Map-variant Value, not each key/value pair.
	ValidateMapEntries bool

	// DetectCircularReferences maintains a traversal set of in-progress
	// messages (by identity) and fails if one is revisited, instead of
	// relying solely on MaxRecursionDepth.
	DetectCircularReferences bool
}

// DefaultOptions returns the option set used when a caller has no
// specific requirements: all checks enabled, depth bounded at 100,
// cycle detection off (depth bounding already prevents runaway
// recursion in the common case).
func DefaultOptions() Options {
	return Options{
		ValidateEnumValues:       true,
		ValidateUTF8:             true,
		MaxRecursionDepth:        100,
		ValidateRepeatedElements: true,
		ValidateMapEntries:       true,
		DetectCircularReferences: false,
	}
}
