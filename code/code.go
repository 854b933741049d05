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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of an error code.
type Code string

// MaxLength is the maximum length of a valid code. MaxSegments is the
// maximum number of dot-separated segments.
const (
	MaxLength   = 128
	MaxSegments = 8
)

const (
	// codeFmt is the regular expression used to validate codes.
	//
	// Every segment:
	//
	//   - starts with an ASCII letter [A-Za-z]
	//   - continues with letters, digits or underscore [A-Za-z0-9_]*
	//
	// Examples that match:
	//
	//	"General.Null"
	//	"User.Email.Taken"
	//	"CustomCode"
	//
	// Examples that DO NOT match:
	//
	//	"General..Null" (empty segment)
	//	"1Bad.Start"    (digit first)
	//	"User.Email."   (trailing dot)
	//	"User-Email"    (dash)
	//
	// The segment count is checked separately against MaxSegments.
	codeFmt = `^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)*$`
)

var (
	codeRe = regexp.MustCompile(codeFmt)
)

var (
	// ErrCodeInvalidFormat is returned when a code does not match the
	// segment grammar.
	ErrCodeInvalidFormat = errors.New("dresult: invalid code format")
	// ErrCodeInvalidLength is returned when a code is too long or has too
	// many segments.
	ErrCodeInvalidLength = errors.New("dresult: invalid code length")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is only meaningful for the "no error"
// sentinel.
var Empty Code = ""

// Well-known codes shared by every application.
const (
	// Null signals that a null or missing value was coerced into a result.
	Null Code = "General.Null"

	// Validation is the fixed code of the validation aggregate.
	Validation Code = "General.Validation"
)

// Normalize performs conservative clean-up of user input:
//
//   - trims spaces (also around segments);
//   - converts "/" and ":" separators to ".".
//
// Case is preserved: codes are case-sensitive catalog keys.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.NewReplacer("/", ".", ":", ".").Replace(s)
	if strings.ContainsRune(s, ' ') {
		segs := strings.Split(s, ".")
		for i, seg := range segs {
			segs[i] = strings.TrimSpace(seg)
		}
		s = strings.Join(segs, ".")
	}
	return s
}

// Parse normalizes and validates s.
//
// The empty string is accepted and yields Empty, mirroring the None
// sentinel's code.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string, which in a declaration is almost always a mistake.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if c == Empty {
		panic("dresult: empty code in MustParse")
	}
	return c
}

// Validate checks whether c is in canonical form. Empty is valid.
func Validate(c Code) error {
	if c == Empty {
		return nil
	}
	return validate(string(c))
}

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// Segments splits the code on ".". Empty yields nil.
func (c Code) Segments() []string {
	if c == Empty {
		return nil
	}
	return strings.Split(string(c), ".")
}

// Parent returns the code without its last segment, or Empty for a
// single-segment code.
func (c Code) Parent() Code {
	i := strings.LastIndexByte(string(c), '.')
	if i < 0 {
		return Empty
	}
	return c[:i]
}

// HasPrefix reports whether prefix is c itself or one of its ancestors.
// Matching respects segment boundaries: "User.E" is not a prefix of
// "User.Email".
func (c Code) HasPrefix(prefix Code) bool {
	if prefix == Empty {
		return true
	}
	if !strings.HasPrefix(string(c), string(prefix)) {
		return false
	}
	return len(c) == len(prefix) || c[len(prefix)] == '.'
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if len(s) > MaxLength || strings.Count(s, ".")+1 > MaxSegments {
		return ErrCodeInvalidLength
	}
	if !codeRe.MatchString(s) {
		return ErrCodeInvalidFormat
	}
	return nil
}
