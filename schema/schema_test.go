// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Int32Kind, "int32"},
		{Sint64Kind, "sint64"},
		{MessageKind, "message"},
		{GroupKind, "group"},
		{UnknownKind, "unknown"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !Int32Kind.IsNumeric() || !Int32Kind.IsInteger() {
		t.Error("Int32Kind should be numeric and integer")
	}
	if !FloatKind.IsNumeric() || !FloatKind.IsFloating() {
		t.Error("FloatKind should be numeric and floating")
	}
	if StringKind.IsNumeric() {
		t.Error("StringKind should not be numeric")
	}
	if !StringKind.IsStringOrBytes() || !BytesKind.IsStringOrBytes() {
		t.Error("StringKind and BytesKind should report IsStringOrBytes")
	}
	if !Int32Kind.IsValid() || UnknownKind.IsValid() {
		t.Error("IsValid should accept declared kinds and reject UnknownKind")
	}
}

func TestNewEnumDescriptor(t *testing.T) {
	tests := []struct {
		label   string
		name    string
		values  []EnumValue
		wantErr bool
	}{
		{"Valid", "Status", []EnumValue{{"OK", 0}, {"FAIL", 1}}, false},
		{"EmptyName", "", []EnumValue{{"OK", 0}}, true},
		{"NoValues", "Status", nil, true},
		{"DuplicateName", "Status", []EnumValue{{"OK", 0}, {"OK", 1}}, true},
		{"UnnamedValue", "Status", []EnumValue{{"", 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			_, err := NewEnumDescriptor(tt.name, tt.values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEnumDescriptor(%q, %v) error = %v, wantErr %v", tt.name, tt.values, err, tt.wantErr)
			}
		})
	}
}

func TestEnumDescriptorAliasing(t *testing.T) {
	e, err := NewEnumDescriptor("Status", []EnumValue{{"OK", 0}, {"GOOD", 0}, {"FAIL", 1}})
	if err != nil {
		t.Fatalf("NewEnumDescriptor: %v", err)
	}
	if name, ok := e.ValueByNumber(0); !ok || name != "OK" {
		t.Errorf("ValueByNumber(0) = (%q, %v), want (\"OK\", true): earliest-declared alias should win", name, ok)
	}
	if n, ok := e.ValueByName("GOOD"); !ok || n != 0 {
		t.Errorf("ValueByName(\"GOOD\") = (%d, %v), want (0, true)", n, ok)
	}
	if !e.HasNumber(1) || e.HasNumber(2) {
		t.Error("HasNumber disagrees with the declared value set")
	}
}

func TestNewFieldDescriptor(t *testing.T) {
	msg, err := NewMessageDescriptor(MessageOptions{FullName: "pkg.Inner"})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	enum, err := NewEnumDescriptor("E", []EnumValue{{"A", 0}})
	if err != nil {
		t.Fatalf("NewEnumDescriptor: %v", err)
	}

	tests := []struct {
		label   string
		opts    FieldOptions
		wantErr bool
	}{
		{"Valid", FieldOptions{Name: "x", Number: 1, Kind: Int32Kind}, false},
		{"EmptyName", FieldOptions{Name: "", Number: 1, Kind: Int32Kind}, true},
		{"NonPositiveNumber", FieldOptions{Name: "x", Number: 0, Kind: Int32Kind}, true},
		{"RepeatedAndMap", FieldOptions{Name: "x", Number: 1, Kind: Int32Kind, IsRepeated: true, IsMap: true}, true},
		{"MessageWithoutTarget", FieldOptions{Name: "x", Number: 1, Kind: MessageKind}, true},
		{"MessageWithTarget", FieldOptions{Name: "x", Number: 1, Kind: MessageKind, MessageType: msg}, false},
		{"EnumWithoutTarget", FieldOptions{Name: "x", Number: 1, Kind: EnumKind}, true},
		{"EnumWithTarget", FieldOptions{Name: "x", Number: 1, Kind: EnumKind, EnumType: enum}, false},
		{"MapWithoutKeyKind", FieldOptions{Name: "x", Number: 1, IsMap: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			_, err := NewFieldDescriptor(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFieldDescriptor(%+v) error = %v, wantErr %v", tt.opts, err, tt.wantErr)
			}
		})
	}
}

func TestNewMessageDescriptor(t *testing.T) {
	f1, _ := NewFieldDescriptor(FieldOptions{Name: "a", Number: 1, Kind: Int32Kind})
	f2, _ := NewFieldDescriptor(FieldOptions{Name: "b", Number: 2, Kind: StringKind})

	if _, err := NewMessageDescriptor(MessageOptions{FullName: ""}); err == nil {
		t.Error("NewMessageDescriptor with empty full name should fail")
	}

	dup, _ := NewFieldDescriptor(FieldOptions{Name: "a", Number: 3, Kind: BoolKind})
	if _, err := NewMessageDescriptor(MessageOptions{FullName: "pkg.M", Fields: []*FieldDescriptor{f1, dup}}); err == nil {
		t.Error("duplicate field name should fail")
	}

	dupNum, _ := NewFieldDescriptor(FieldOptions{Name: "c", Number: 1, Kind: BoolKind})
	if _, err := NewMessageDescriptor(MessageOptions{FullName: "pkg.M", Fields: []*FieldDescriptor{f1, dupNum}}); err == nil {
		t.Error("duplicate field number should fail")
	}

	m, err := NewMessageDescriptor(MessageOptions{FullName: "pkg.Person", Fields: []*FieldDescriptor{f1, f2}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	if m.Name() != "Person" {
		t.Errorf("Name() = %q, want %q", m.Name(), "Person")
	}
	if got := m.FieldByName("a"); got != f1 {
		t.Errorf("FieldByName(\"a\") = %v, want %v", got, f1)
	}
	if got := m.FieldByNumber(2); got != f2 {
		t.Errorf("FieldByNumber(2) = %v, want %v", got, f2)
	}
	if m.FieldByName("missing") != nil {
		t.Error("FieldByName(\"missing\") should be nil")
	}
}

func TestPlaceholders(t *testing.T) {
	pm := NewPlaceholderMessage("pkg.Forward")
	if !pm.IsPlaceholder() {
		t.Error("NewPlaceholderMessage should report IsPlaceholder")
	}
	if len(pm.Fields()) != 0 {
		t.Error("a placeholder message should have no fields")
	}
	pe := NewPlaceholderEnum("pkg.ForwardEnum")
	if !pe.IsPlaceholder() {
		t.Error("NewPlaceholderEnum should report IsPlaceholder")
	}
	if pe.HasNumber(0) {
		t.Error("a placeholder enum should have no members")
	}
}
