/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated error codes.
// Each node represents one segment; the wildcard "*" matches exactly one segment.
// The trie supports longest-prefix-match (LPM) with segment boundaries, so
// "User.Email" wins over "User" and never matches "User.EmailAddress".
//
// Segments are case-sensitive, like the codes themselves.
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the dotted prefix as inserted, set only when hasVal=true.
	// MatchWithPattern returns it so Explain() does not build strings.
	pattern string
	// size counts the values stored at or below this node. Only the root's
	// count is reported.
	size int
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, contains invalid characters, or consists only of wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert stores val under a dot-separated prefix such as "Storage.Pg",
// "Auth.Jwt.Verify" or "Auth.*.Verify". Inserting an existing prefix
// replaces its value.
//
// Prefixes made only of wildcards match everything and are rejected along
// with empty or malformed segments: Insert then returns ErrInvalidPrefix.
func (t *Trie[T]) Insert(prefix string, val T) error {
	segs, err := splitPrefix(prefix)
	if t == nil || err != nil {
		return ErrInvalidPrefix
	}

	n := t
	for _, s := range segs {
		if n.children[s] == nil {
			n.children[s] = New[T]()
		}
		n = n.children[s]
	}
	if !n.hasVal {
		t.size++
	}
	n.hasVal, n.val, n.pattern = true, val, prefix
	return nil
}

func splitPrefix(prefix string) ([]string, error) {
	if prefix == "" {
		return nil, ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := 0
	for _, s := range segs {
		if !validSegment(s, true) {
			return nil, ErrInvalidPrefix
		}
		if s != "*" {
			concrete++
		}
	}
	if concrete == 0 {
		return nil, ErrInvalidPrefix
	}
	return segs, nil
}

// Len returns the number of stored prefixes.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Match returns the value of the deepest prefix of code, trying exact
// segments and "*" branches alike. Malformed codes and codes without a
// matching prefix yield the zero value and false.
func (t *Trie[T]) Match(code string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(code)
	return v, ok
}

// MatchWithPattern is Match that also returns the prefix as inserted.
func (t *Trie[T]) MatchWithPattern(code string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	m := matcher[T]{code: code, depth: -1}
	m.walk(t, 0, 0)
	if m.best == nil {
		return zero, false, ""
	}
	return m.best.val, true, m.best.pattern
}

// matcher tracks the deepest valued node seen during a walk.
type matcher[T any] struct {
	code  string
	best  *Trie[T]
	depth int
}

func (m *matcher[T]) walk(n *Trie[T], off, depth int) {
	if n.hasVal && depth > m.depth {
		m.best, m.depth = n, depth
	}
	if off >= len(m.code) {
		return
	}
	seg, next, ok := nextSegment(m.code, off)
	if !ok {
		return
	}
	for _, key := range [...]string{seg, "*"} {
		if child := n.children[key]; child != nil {
			m.walk(child, next, depth+1)
		}
	}
}

// nextSegment scans the segment that starts at off. It returns the segment
// (a substring, no allocation), the offset of the following segment and
// whether the segment is well-formed: [A-Za-z][A-Za-z0-9_]*
func nextSegment(s string, off int) (seg string, next int, ok bool) {
	i := off
	if !isLetter(s[i]) {
		return "", 0, false
	}
	for i++; i < len(s) && s[i] != '.'; i++ {
		if c := s[i]; !isLetter(c) && !isDigit(c) && c != '_' {
			return "", 0, false
		}
	}
	next = i
	if next < len(s) {
		next++ // skip '.'
		if next == len(s) {
			return "", 0, false // trailing dot
		}
	}
	return s[off:i], next, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - when allowWildcard=true, the segment "*" is allowed;
//   - otherwise the segment must match: [A-Za-z][A-Za-z0-9_]*
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	if !isLetter(seg[0]) {
		return false
	}
	for i := 1; i < len(seg); i++ {
		if c := seg[i]; !isLetter(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
