// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fieldpath

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		label   string
		path    string
		want    []Segment
		wantErr bool
	}{
		{"Simple", "name", []Segment{{Name: "name"}}, false},
		{"Dotted", "a.b.c", []Segment{{Name: "a"}, {Name: "b"}, {Name: "c"}}, false},
		{"Index", "items[3]", []Segment{{Name: "items", HasIndex: true, Index: 3}}, false},
		{"DoubleQuotedKey", `tags["k"]`, []Segment{{Name: "tags", HasKey: true, Key: "k"}}, false},
		{"SingleQuotedKey", "tags['k']", []Segment{{Name: "tags", HasKey: true, Key: "k"}}, false},
		{"IndexThenDotted", "a[0].b", []Segment{{Name: "a", HasIndex: true, Index: 0}, {Name: "b"}}, false},
		{"Empty", "", nil, true},
		{"TrailingDot", "a.", nil, true},
		{"EmptySegment", "a..b", nil, true},
		{"UnterminatedQuote", `tags["k`, nil, true},
		{"MalformedIndex", "items[x]", nil, true},
		{"MissingCloseBracket", "items[3", nil, true},
		{"NoDotBetweenSegments", "a b", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := Parse(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %+v, want %+v", tt.path, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{
		"name",
		"a.b.c",
		"items[3]",
		`tags["k"]`,
		"a[0].b",
	}
	for _, path := range tests {
		segs, err := Parse(path)
		if err != nil {
			t.Fatalf("Parse(%q): %v", path, err)
		}
		if got := String(segs); got != path {
			t.Errorf("String(Parse(%q)) = %q, want %q", path, got, path)
		}
	}
}
