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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
	"unicode"
)

// Category is the canonical representation of an error category.
//
// It is a separate type (not just string) so that APIs can declare that they
// expect one of the known categories and so that raw user input is not mixed
// with normalized values.
type Category string

var (
	// ErrCategoryInvalid is returned when a value cannot be parsed as one of
	// the known categories.
	ErrCategoryInvalid = errors.New("dresult: invalid category")
)

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config or API structs.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Parse takes a user-provided string, normalizes it and checks that it names
// a known category.
func Parse(s string) (Category, error) {
	c := Category(Normalize(s))
	if err := Validate(c); err != nil {
		return "", err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// package-level declarations.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to the canonical form.
//
// It performs only obvious transformations:
//
//   - trims surrounding spaces;
//   - splits CamelCase words ("NotFound" -> "not_found");
//   - lowercases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does NOT guarantee that the result is a known category.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	prevLower := false
	for _, r := range s {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}

// Validate checks whether c is one of the known categories.
func Validate(c Category) error {
	if _, ok := ordinals[c]; !ok {
		return ErrCategoryInvalid
	}
	return nil
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Ordinal returns the position of c in All, or -1 for unknown values.
func (c Category) Ordinal() int {
	if i, ok := ordinals[c]; ok {
		return i
	}
	return -1
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
