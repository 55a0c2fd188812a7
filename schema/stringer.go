// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import "fmt"

// String renders a human-readable summary of the message descriptor:
// its full name and field count. Placeholders render distinctly so a
// caller printing a schema graph can tell a forward reference apart
// from a built-out message.
func (m *MessageDescriptor) String() string {
	if m.placeholder {
		return fmt.Sprintf("MessageDescriptor(%s, placeholder)", m.fullName)
	}
	return fmt.Sprintf("MessageDescriptor(%s, %d fields)", m.fullName, len(m.fields))
}

// String renders a human-readable summary of the enum descriptor.
func (e *EnumDescriptor) String() string {
	if e.placeholder {
		return fmt.Sprintf("EnumDescriptor(%s, placeholder)", e.name)
	}
	return fmt.Sprintf("EnumDescriptor(%s, %d values)", e.name, len(e.values))
}

// String renders a human-readable summary of the field descriptor:
// number, name, and kind, with cardinality annotations.
func (f *FieldDescriptor) String() string {
	switch {
	case f.isMap:
		return fmt.Sprintf("%d:%s map<%s, %s>", f.number, f.name, f.mapKeyKind, f.mapValueField.kind)
	case f.isRepeated:
		return fmt.Sprintf("%d:%s repeated %s", f.number, f.name, f.kind)
	default:
		return fmt.Sprintf("%d:%s %s", f.number, f.name, f.kind)
	}
}
