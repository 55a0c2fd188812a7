// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/dynproto/dynproto/schema"
)

type fakeMessage struct {
	desc *schema.MessageDescriptor
	tag  int
}

func (f *fakeMessage) Descriptor() *schema.MessageDescriptor { return f.desc }

func (f *fakeMessage) EqualMessage(other Message) bool {
	o, ok := other.(*fakeMessage)
	return ok && o.tag == f.tag
}

func TestEqualScalars(t *testing.T) {
	tests := []struct {
		label string
		a, b  Value
		want  bool
	}{
		{"IntEqual", IntOf(5), IntOf(5), true},
		{"IntDiffer", IntOf(5), IntOf(6), false},
		{"StringEqual", StringOf("x"), StringOf("x"), true},
		{"BytesEqual", BytesOf([]byte("x")), BytesOf([]byte("x")), true},
		{"DifferentVariants", IntOf(5), UIntOf(5), false},
		{"InvalidEqualsInvalid", Value{}, Value{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualEnum(t *testing.T) {
	a := EnumOf(Enum{Name: "OK", Number: 0})
	b := EnumOf(Enum{Name: "DIFFERENT_NAME_SAME_NUMBER", Number: 0})
	if !Equal(a, b) {
		t.Error("enum equality should compare by number, not name")
	}
}

func TestEqualRepeatedAndMap(t *testing.T) {
	a := RepeatedOf([]Value{IntOf(1), IntOf(2)})
	b := RepeatedOf([]Value{IntOf(1), IntOf(2)})
	c := RepeatedOf([]Value{IntOf(2), IntOf(1)})
	if !Equal(a, b) {
		t.Error("identical repeated values should be equal")
	}
	if Equal(a, c) {
		t.Error("repeated equality should be order-sensitive")
	}

	m1 := MapOf(map[string]Value{"k": IntOf(1)})
	m2 := MapOf(map[string]Value{"k": IntOf(1)})
	m3 := MapOf(map[string]Value{"k": IntOf(2)})
	if !Equal(m1, m2) {
		t.Error("identical maps should be equal")
	}
	if Equal(m1, m3) {
		t.Error("maps with different values should not be equal")
	}
}

func TestEqualMessageDelegation(t *testing.T) {
	desc, err := schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.M"})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	a := Value{variant: MessageVariant, msg: &fakeMessage{desc: desc, tag: 1}}
	b := Value{variant: MessageVariant, msg: &fakeMessage{desc: desc, tag: 1}}
	c := Value{variant: MessageVariant, msg: &fakeMessage{desc: desc, tag: 2}}
	if !Equal(a, b) {
		t.Error("messages with matching EqualMessage should compare equal")
	}
	if Equal(a, c) {
		t.Error("messages with differing EqualMessage should not compare equal")
	}

	var nilA, nilB Value
	nilA.variant, nilB.variant = MessageVariant, MessageVariant
	if !Equal(nilA, nilB) {
		t.Error("two nil message values should be equal")
	}
}
