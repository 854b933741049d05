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

// Package composite implements positional composite formatting for error
// messages.
//
// A template contains literal text and format items of the form
//
//	{index[,alignment][:format]}
//
// where index selects an argument (0-based), alignment is an optional signed
// field width (positive right-aligns, negative left-aligns) and format is an
// optional format string. Arguments are strings, so the format section is
// parsed and ignored. Literal braces are written as "{{" and "}}".
package composite

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrSyntax reports a malformed template: an empty or non-numeric hole,
	// an unclosed item or a stray closing brace.
	ErrSyntax = errors.New("dresult: malformed composite format")

	// ErrArgIndex reports a hole whose index has no matching argument.
	ErrArgIndex = errors.New("dresult: composite format index out of range")
)

// maxAlignment bounds the padding width an item can request.
const maxAlignment = 1 << 16

// Format substitutes args into template. Extra arguments are not an error.
//
// On failure the returned error wraps ErrSyntax or ErrArgIndex and the
// returned string is empty; callers decide what to show instead.
func Format(template string, args []string) (string, error) {
	// Fast path: nothing to substitute or unescape.
	if !strings.ContainsAny(template, "{}") {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template) + 8*len(args))

	n := len(template)
	for i := 0; i < n; {
		c := template[i]
		switch c {
		case '{':
			if i+1 < n && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed item at offset %d", ErrSyntax, i)
			}
			item := template[i+1 : i+1+end]
			s, err := formatItem(item, args)
			if err != nil {
				return "", fmt.Errorf("%w at offset %d", err, i)
			}
			b.WriteString(s)
			i += end + 2
		case '}':
			if i+1 < n && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("%w: unexpected '}' at offset %d", ErrSyntax, i)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

// MustFormat is like Format but panics on error. Intended for tests and
// static templates.
func MustFormat(template string, args ...string) string {
	s, err := Format(template, args)
	if err != nil {
		panic(err)
	}
	return s
}

// Holes returns the highest argument index referenced by template plus one,
// i.e. the minimum number of arguments it needs. Malformed templates return
// ErrSyntax.
func Holes(template string) (int, error) {
	need := 0
	n := len(template)
	for i := 0; i < n; i++ {
		switch template[i] {
		case '{':
			if i+1 < n && template[i+1] == '{' {
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return 0, fmt.Errorf("%w: unclosed item at offset %d", ErrSyntax, i)
			}
			idx, _, err := parseItem(template[i+1 : i+1+end])
			if err != nil {
				return 0, err
			}
			if idx+1 > need {
				need = idx + 1
			}
			i += end + 1
		case '}':
			if i+1 < n && template[i+1] == '}' {
				i++
				continue
			}
			return 0, fmt.Errorf("%w: unexpected '}' at offset %d", ErrSyntax, i)
		}
	}
	return need, nil
}

func formatItem(item string, args []string) (string, error) {
	idx, align, err := parseItem(item)
	if err != nil {
		return "", err
	}
	if idx >= len(args) {
		return "", fmt.Errorf("%w: {%d} with %d argument(s)", ErrArgIndex, idx, len(args))
	}
	return pad(args[idx], align), nil
}

// parseItem splits "index[,alignment][:format]".
func parseItem(item string) (index, align int, err error) {
	if c := strings.IndexByte(item, ':'); c >= 0 {
		item = item[:c]
	}
	idxPart, alignPart, hasAlign := strings.Cut(item, ",")

	idxPart = strings.TrimRight(idxPart, " ")
	if idxPart == "" {
		return 0, 0, fmt.Errorf("%w: empty item", ErrSyntax)
	}
	for i := 0; i < len(idxPart); i++ {
		if idxPart[i] < '0' || idxPart[i] > '9' {
			return 0, 0, fmt.Errorf("%w: non-numeric index %q", ErrSyntax, idxPart)
		}
	}
	index, err = strconv.Atoi(idxPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: index %q", ErrSyntax, idxPart)
	}

	if hasAlign {
		alignPart = strings.TrimSpace(alignPart)
		align, err = strconv.Atoi(alignPart)
		if err != nil || align > maxAlignment || align < -maxAlignment {
			return 0, 0, fmt.Errorf("%w: alignment %q", ErrSyntax, alignPart)
		}
	}
	return index, align, nil
}

func pad(s string, align int) string {
	width := align
	if width < 0 {
		width = -width
	}
	fill := width - utf8.RuneCountInString(s)
	if fill <= 0 {
		return s
	}
	if align > 0 {
		return strings.Repeat(" ", fill) + s
	}
	return s + strings.Repeat(" ", fill)
}
