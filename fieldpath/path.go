// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fieldpath parses and navigates dotted/bracketed field paths
// over a DynamicMessage:
//
//	path      := segment ("." segment)*
//	segment   := name | name "[" index "]" | name "[" quoted "]"
//	index     := digit+
//	quoted    := "'" any-but-' "'"  |  "\"" any-but-" "\""
//
// This package's lexer is a single-pass, quote-aware scanner in the
// style of a string-literal scanner: no backtracking, explicit
// quote-state tracking.
package fieldpath

import (
	"strconv"
	"strings"

	"github.com/dynproto/dynproto/internal/werrors"
)

// Segment is one dotted or bracketed component of a FieldPath.
type Segment struct {
	Name string

	HasIndex bool
	Index    int

	HasKey bool
	Key    string
}

// IsMapKey reports whether this segment addresses a map entry.
func (s Segment) IsMapKey() bool { return s.HasKey }

// IsRepeatedIndex reports whether this segment addresses a repeated
// element.
func (s Segment) IsRepeatedIndex() bool { return s.HasIndex }

// Parse splits path into its dotted segments. Dots inside a quoted map
// key or inside a bracketed index never split a segment. A name is a run
// of ASCII letters, digits, and underscores.
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return nil, &werrors.InvalidFieldKey{Reason: "empty field path"}
	}
	var segs []Segment
	i := 0
	n := len(path)
	for i < n {
		start := i
		for i < n && (path[i] == '_' || '0' <= path[i] && path[i] <= '9' ||
			'a' <= path[i] && path[i] <= 'z' || 'A' <= path[i] && path[i] <= 'Z') {
			i++
		}
		if i == start {
			return nil, &werrors.InvalidFieldKey{Reason: "empty path segment in " + strconv.Quote(path)}
		}
		seg := Segment{Name: path[start:i]}
		if i < n && path[i] == '[' {
			i++ // consume '['
			if i < n && (path[i] == '\'' || path[i] == '"') {
				quote := path[i]
				i++
				keyStart := i
				for i < n && path[i] != quote {
					i++
				}
				if i >= n {
					return nil, &werrors.InvalidFieldKey{Reason: "unterminated quoted key in " + strconv.Quote(path)}
				}
				seg.HasKey = true
				seg.Key = path[keyStart:i]
				i++ // consume closing quote
			} else {
				idxStart := i
				for i < n && path[i] != ']' {
					i++
				}
				if i >= n || idxStart == i {
					return nil, &werrors.InvalidFieldKey{Reason: "malformed index in " + strconv.Quote(path)}
				}
				idx, err := strconv.Atoi(path[idxStart:i])
				if err != nil || idx < 0 {
					return nil, &werrors.InvalidFieldKey{Reason: "malformed index in " + strconv.Quote(path)}
				}
				seg.HasIndex = true
				seg.Index = idx
			}
			if i >= n || path[i] != ']' {
				return nil, &werrors.InvalidFieldKey{Reason: "missing ']' in " + strconv.Quote(path)}
			}
			i++ // consume ']'
		}
		segs = append(segs, seg)
		if i < n {
			if path[i] != '.' {
				return nil, &werrors.InvalidFieldKey{Reason: "expected '.' after segment in " + strconv.Quote(path)}
			}
			i++ // consume '.'
			if i >= n {
				return nil, &werrors.InvalidFieldKey{Reason: "trailing '.' in " + strconv.Quote(path)}
			}
		}
	}
	return segs, nil
}

// String renders segs back into path syntax, quoting map keys with
// double quotes.
func String(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Name)
		if s.HasIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		} else if s.HasKey {
			b.WriteString("[\"")
			b.WriteString(s.Key)
			b.WriteString("\"]")
		}
	}
	return b.String()
}
