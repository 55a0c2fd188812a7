// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamicpb implements DynamicMessage, a message instance whose
// structure is discovered from a schema.MessageDescriptor at runtime
// rather than compiled into a Go struct.
//
// This collapses a KnownFields/UnknownFields interface pair and
// struct-tag, unsafe-pointer-based storage into one concrete type backed
// by a plain map: a single DynamicMessage type exposes a narrow trait
// (get/set/clear/has/descriptor) at the API boundary, and static variants
// inside Value replace runtime type introspection.
package dynamicpb

import (
	"sort"

	"github.com/dynproto/dynproto/internal/werrors"
	"github.com/dynproto/dynproto/schema"
	"github.com/dynproto/dynproto/value"
)

// DynamicMessage is one message instance built against a
// schema.MessageDescriptor. It exclusively owns its populated values;
// nested sub-messages are owned by their parent slot or container.
type DynamicMessage struct {
	desc   *schema.MessageDescriptor
	fields map[int32]value.Value

	// unknown holds, per field number, the ordered list of raw wire
	// segments (tag+payload bytes) captured verbatim during decode.
	unknown map[int32][][]byte
}

// New returns an empty DynamicMessage for desc. desc must not be nil.
func New(desc *schema.MessageDescriptor) *DynamicMessage {
	return &DynamicMessage{
		desc:   desc,
		fields: make(map[int32]value.Value),
	}
}

// Descriptor returns the message's schema. It implements value.Message.
func (m *DynamicMessage) Descriptor() *schema.MessageDescriptor { return m.desc }

// Has reports whether field has an explicitly populated value,
// independent of whether it equals the default.
func (m *DynamicMessage) Has(fd *schema.FieldDescriptor) bool {
	_, ok := m.fields[fd.Number()]
	return ok
}

// Get returns the set value for field, or an invalid Value if unset.
// Callers that want default materialization should use GetOrDefault.
func (m *DynamicMessage) Get(fd *schema.FieldDescriptor) (value.Value, bool) {
	v, ok := m.fields[fd.Number()]
	return v, ok
}

// GetOrDefault returns the set value for field, or the field's declared
// default if it is unset.
func (m *DynamicMessage) GetOrDefault(fd *schema.FieldDescriptor) value.Value {
	if v, ok := m.fields[fd.Number()]; ok {
		return v
	}
	return value.Default(fd)
}

// Set validates v's shape against fd (coercing where the shape allows —
// see value.ConvertTo) and installs it, replacing any previous value.
// For repeated fields this replaces the whole sequence; for map fields
// it replaces the whole map. It fails with *werrors.TypeMismatch if v
// cannot be made to fit fd's declared shape.
func (m *DynamicMessage) Set(fd *schema.FieldDescriptor, v value.Value) error {
	if fd.Kind() == schema.MessageKind && !fd.IsRepeated() && !fd.IsMap() {
		mv, ok := v.Message()
		if ok && mv != nil {
			if dm, ok := mv.(*DynamicMessage); ok && dm.desc != nil && fd.MessageType() != nil &&
				dm.desc.FullName() != fd.MessageType().FullName() {
				return &werrors.TypeMismatch{Field: fd.Name(), Expected: fd.MessageType().FullName(), Got: dm.desc.FullName()}
			}
		}
	}
	cv, err := value.ConvertTo(v, fd)
	if err != nil {
		return err
	}
	m.fields[fd.Number()] = cv
	return nil
}

// Clear removes field's value. A subsequent Get reports ok=false and Has
// reports false.
func (m *DynamicMessage) Clear(fd *schema.FieldDescriptor) {
	delete(m.fields, fd.Number())
}

// Len reports the number of populated known fields.
func (m *DynamicMessage) Len() int { return len(m.fields) }

// Range calls f for every populated known field in ascending field-number
// order, matching the order fields are serialized in. Iteration stops
// early if f returns false.
func (m *DynamicMessage) Range(f func(fd *schema.FieldDescriptor, v value.Value) bool) {
	nums := make([]int32, 0, len(m.fields))
	for n := range m.fields {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	for _, n := range nums {
		fd := m.desc.FieldByNumber(n)
		if fd == nil {
			continue // schema changed out from under a populated number; skip rather than panic
		}
		if !f(fd, m.fields[n]) {
			return
		}
	}
}

// EqualMessage reports whether m and other are structurally equal:
// same descriptor full name, same populated field numbers, and equal
// values field-by-field. It satisfies the optional interface that
// value.Equal looks for when comparing two MessageVariant Values.
func (m *DynamicMessage) EqualMessage(other value.Message) bool {
	om, ok := other.(*DynamicMessage)
	if !ok || om == nil {
		return false
	}
	if m.desc.FullName() != om.desc.FullName() {
		return false
	}
	if len(m.fields) != len(om.fields) {
		return false
	}
	for n, v := range m.fields {
		ov, ok := om.fields[n]
		if !ok || !value.Equal(v, ov) {
			return false
		}
	}
	return true
}
