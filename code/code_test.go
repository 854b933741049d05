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
	"encoding"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim", "  General.Null  ", "General.Null"},
		{"slash to dot", "User/Email/Taken", "User.Email.Taken"},
		{"colon to dot", "User:Email", "User.Email"},
		{"inner spaces", "User . Email", "User.Email"},
		{"case preserved", "general.null", "general.null"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"General.Null", Null},
		{"General/Validation", Validation},
		{"CustomCode", Code("CustomCode")},
		{"Order.Line_2.TooLow", Code("Order.Line_2.TooLow")},
		{"", Empty},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"General..Null", ErrCodeInvalidFormat},
		{"1Bad.Start", ErrCodeInvalidFormat},
		{"User.Email.", ErrCodeInvalidFormat},
		{".Leading", ErrCodeInvalidFormat},
		{"User-Email", ErrCodeInvalidFormat},
		{"A.B.C.D.E.F.G.H.I", ErrCodeInvalidLength},
		{"A" + strings.Repeat("b", MaxLength), ErrCodeInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != tt.want {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("General.Null"); got != Null {
		t.Fatalf("MustParse = %q, want %q", got, Null)
	}
	for _, in := range []string{"", "General..Null"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("MustParse(%q) must panic", in)
				}
			}()
			_ = MustParse(in)
		}()
	}
}

func TestCode_Hierarchy(t *testing.T) {
	c := Code("User.Email.Taken")
	if got := c.Segments(); len(got) != 3 || got[0] != "User" || got[2] != "Taken" {
		t.Fatalf("Segments() = %v", got)
	}
	if got := c.Parent(); got != "User.Email" {
		t.Fatalf("Parent() = %q, want User.Email", got)
	}
	if got := Code("User").Parent(); got != Empty {
		t.Fatalf("Parent() of single segment = %q, want Empty", got)
	}
	if Empty.Segments() != nil {
		t.Fatal("Empty.Segments() must be nil")
	}

	if !c.HasPrefix("User.Email") || !c.HasPrefix(c) || !c.HasPrefix(Empty) {
		t.Fatal("HasPrefix must accept ancestors, itself and Empty")
	}
	if c.HasPrefix("User.E") {
		t.Fatal("HasPrefix must respect segment boundaries")
	}
	if c.HasPrefix("User.Email.Taken.Twice") {
		t.Fatal("HasPrefix must reject longer codes")
	}
}

func TestCode_Text(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)

	b, err := Null.MarshalText()
	if err != nil || string(b) != "General.Null" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	if _, err := Code("Bad..Code").MarshalText(); err == nil {
		t.Fatal("MarshalText must reject invalid codes")
	}

	var c Code
	if err := c.UnmarshalText([]byte(" User/Email ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != "User.Email" {
		t.Fatalf("UnmarshalText = %q, want User.Email", c)
	}
	if err := c.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatal("UnmarshalText must reject invalid input")
	}
}
