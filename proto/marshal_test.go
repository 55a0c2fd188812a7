// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"bytes"
	"testing"

	"github.com/dynproto/dynproto/dynamicpb"
	"github.com/dynproto/dynproto/schema"
	"github.com/dynproto/dynproto/value"
)

func personDesc(t *testing.T) (*schema.MessageDescriptor, *schema.FieldDescriptor, *schema.FieldDescriptor) {
	t.Helper()
	nameF, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "name", Number: 1, Kind: schema.StringKind})
	if err != nil {
		t.Fatalf("NewFieldDescriptor(name): %v", err)
	}
	ageF, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "age", Number: 2, Kind: schema.Int32Kind})
	if err != nil {
		t.Fatalf("NewFieldDescriptor(age): %v", err)
	}
	desc, err := schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.Person", Fields: []*schema.FieldDescriptor{nameF, ageF}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	return desc, nameF, ageF
}

// Primitive round-trip with an exact expected byte sequence: name="Alice"
// (tag 0x0A, len 5), age=30 (tag 0x10, varint 0x1E).
func TestMarshalPrimitiveExactBytes(t *testing.T) {
	desc, nameF, ageF := personDesc(t)
	m := dynamicpb.New(desc)
	m.Set(nameF, value.StringOf("Alice"))
	m.Set(ageF, value.IntOf(30))

	got, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x0A, 0x05, 0x41, 0x6C, 0x69, 0x63, 0x65, 0x10, 0x1E}
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal = % X, want % X", got, want)
	}
}

// Repeated non-packed: each element re-emits its own tag.
func TestMarshalRepeatedNonPacked(t *testing.T) {
	xf, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "xs", Number: 1, Kind: schema.Int32Kind, IsRepeated: true})
	if err != nil {
		t.Fatalf("NewFieldDescriptor: %v", err)
	}
	desc, err := schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.Xs", Fields: []*schema.FieldDescriptor{xf}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	m := dynamicpb.New(desc)
	m.Set(xf, value.RepeatedOf([]value.Value{value.IntOf(1), value.IntOf(2)}))

	got, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x08, 0x01, 0x08, 0x02}
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal = % X, want % X", got, want)
	}
}

// Map entry with an exact expected byte sequence: {"k": "v"} encodes as
// one length-delimited field-1 entry containing key=1:"k", value=2:"v".
func TestMarshalMapExactBytes(t *testing.T) {
	vf, err := schema.NewMapEntryValueField(schema.StringKind, nil, nil)
	if err != nil {
		t.Fatalf("NewMapEntryValueField: %v", err)
	}
	mf, err := schema.NewFieldDescriptor(schema.FieldOptions{
		Name: "m", Number: 1, IsMap: true, MapKeyKind: schema.StringKind, MapValueField: vf,
	})
	if err != nil {
		t.Fatalf("NewFieldDescriptor: %v", err)
	}
	desc, err := schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.M", Fields: []*schema.FieldDescriptor{mf}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	m := dynamicpb.New(desc)
	m.Set(mf, value.MapOf(map[string]value.Value{"k": value.StringOf("v")}))

	got, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x0A, 0x06, 0x0A, 0x01, 'k', 0x12, 0x01, 'v'}
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal = % X, want % X", got, want)
	}
}

func TestMarshalDepthOverflow(t *testing.T) {
	selfF, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "next", Number: 1, Kind: schema.MessageKind, MessageType: schema.NewPlaceholderMessage("pkg.Node")})
	if err != nil {
		t.Fatalf("NewFieldDescriptor: %v", err)
	}
	desc, err := schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.Node", Fields: []*schema.FieldDescriptor{selfF}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	selfF, err = schema.NewFieldDescriptor(schema.FieldOptions{Name: "next", Number: 1, Kind: schema.MessageKind, MessageType: desc})
	if err != nil {
		t.Fatalf("NewFieldDescriptor: %v", err)
	}
	desc, err = schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.Node", Fields: []*schema.FieldDescriptor{selfF}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}

	build := func(depth int) *dynamicpb.DynamicMessage {
		head := dynamicpb.New(desc)
		cur := head
		for i := 1; i < depth; i++ {
			next := dynamicpb.New(desc)
			cur.Set(selfF, value.MessageOf(next))
			cur = next
		}
		return head
	}

	opts := DefaultMarshalOptions()
	opts.MaxDepth = 100
	if _, err := opts.Marshal(build(100)); err != nil {
		t.Errorf("a chain of depth 100 should marshal within MaxDepth=100: %v", err)
	}
	if _, err := opts.Marshal(build(102)); err == nil {
		t.Error("a chain exceeding MaxDepth should fail to marshal")
	}
}

func TestMarshalUTF8Rejection(t *testing.T) {
	nameF, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "name", Number: 1, Kind: schema.StringKind})
	if err != nil {
		t.Fatalf("NewFieldDescriptor: %v", err)
	}
	desc, err := schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.S", Fields: []*schema.FieldDescriptor{nameF}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	m := dynamicpb.New(desc)
	m.Set(nameF, value.StringOf(string([]byte{0xff, 0xfe})))

	strict := DefaultMarshalOptions()
	if _, err := strict.Marshal(m); err == nil {
		t.Error("invalid UTF-8 should fail to marshal when ValidateUTF8 is true")
	}

	lenient := DefaultMarshalOptions()
	lenient.ValidateUTF8 = false
	if _, err := lenient.Marshal(m); err != nil {
		t.Errorf("invalid UTF-8 should marshal when ValidateUTF8 is false: %v", err)
	}
}

func TestMarshalZigZagBoundaryValues(t *testing.T) {
	sf, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "s32", Number: 1, Kind: schema.Sint32Kind})
	if err != nil {
		t.Fatalf("NewFieldDescriptor: %v", err)
	}
	lf, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "s64", Number: 2, Kind: schema.Sint64Kind})
	if err != nil {
		t.Fatalf("NewFieldDescriptor: %v", err)
	}
	desc, err := schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.Sints", Fields: []*schema.FieldDescriptor{sf, lf}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	m := dynamicpb.New(desc)
	m.Set(sf, value.IntOf(int64(int32(-2147483648)))) // math.MinInt32
	m.Set(lf, value.IntOf(int64(-9223372036854775808))) // math.MinInt64

	b, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out, err := Unmarshal(b, desc)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	gotS32, _ := out.Get(sf)
	if i, _ := gotS32.Int(); i != -2147483648 {
		t.Errorf("round-tripped sint32 = %d, want -2147483648", i)
	}
	gotS64, _ := out.Get(lf)
	if i, _ := gotS64.Int(); i != -9223372036854775808 {
		t.Errorf("round-tripped sint64 = %d, want -9223372036854775808", i)
	}
}

func TestMarshalProto3DefaultElision(t *testing.T) {
	desc, nameF, ageF := personDesc(t)
	m := dynamicpb.New(desc)
	m.Set(nameF, value.StringOf(""))
	m.Set(ageF, value.IntOf(0))

	got, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Marshal of all-default scalars = % X, want empty", got)
	}

	preserve := DefaultMarshalOptions()
	preserve.PreserveProto3Defaults = true
	got, err = preserve.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(got) == 0 {
		t.Error("Marshal with PreserveProto3Defaults should emit default-valued scalars")
	}
}

func TestMarshalDeterministicMapOrdering(t *testing.T) {
	vf, err := schema.NewMapEntryValueField(schema.StringKind, nil, nil)
	if err != nil {
		t.Fatalf("NewMapEntryValueField: %v", err)
	}
	mf, err := schema.NewFieldDescriptor(schema.FieldOptions{Name: "m", Number: 1, IsMap: true, MapKeyKind: schema.StringKind, MapValueField: vf})
	if err != nil {
		t.Fatalf("NewFieldDescriptor: %v", err)
	}
	desc, err := schema.NewMessageDescriptor(schema.MessageOptions{FullName: "pkg.M", Fields: []*schema.FieldDescriptor{mf}})
	if err != nil {
		t.Fatalf("NewMessageDescriptor: %v", err)
	}
	m := dynamicpb.New(desc)
	m.Set(mf, value.MapOf(map[string]value.Value{"z": value.StringOf("1"), "a": value.StringOf("2"), "m": value.StringOf("3")}))

	opts := DefaultMarshalOptions()
	opts.Deterministic = true
	var first []byte
	for i := 0; i < 5; i++ {
		got, err := opts.Marshal(m)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if i == 0 {
			first = got
			continue
		}
		if !bytes.Equal(first, got) {
			t.Fatalf("Deterministic marshal produced different bytes across calls:\n%X\n%X", first, got)
		}
	}
}
