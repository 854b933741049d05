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

package dresult

import (
	"errors"
	"testing"
)

func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic value %v does not wrap %v", r, target)
		}
	}()
	fn()
}

func TestSuccess(t *testing.T) {
	r := Success()
	if !r.IsSuccess() || r.IsFailure() {
		t.Fatal("Success must be a success")
	}
	if !r.Err().IsNone() {
		t.Fatal("a success carries None")
	}
	if r.AsError() != nil {
		t.Fatal("AsError of a success must be nil")
	}
	if r.String() != "success" {
		t.Fatalf("String() = %q", r.String())
	}
}

func TestFail(t *testing.T) {
	e := NotFound("User.NotFound", WithDescription("gone"))
	r := Fail(e)
	if r.IsSuccess() || !r.IsFailure() {
		t.Fatal("Fail must be a failure")
	}
	if !r.Err().Equal(e) {
		t.Fatal("Err must return the given error")
	}
	if !errors.Is(r.AsError(), e) {
		t.Fatal("AsError must return the error")
	}
	if r.String() != "failure(not_found:User.NotFound: gone)" {
		t.Fatalf("String() = %q", r.String())
	}
	if !e.AsResult().Err().Equal(e) {
		t.Fatal("AsResult must build the same failure")
	}
}

func TestInvalidConstruction(t *testing.T) {
	mustPanicWith(t, ErrInvalidResult, func() { Fail(None) })
	mustPanicWith(t, ErrInvalidResult, func() { FailOf[int](None) })
	mustPanicWith(t, ErrInvalidResult, func() { ValidationFailure[string](None) })
	mustPanicWith(t, ErrInvalidResult, func() { None.AsResult() })
	mustPanicWith(t, ErrInvalidResult, func() { newResult(true, NullValue) })
}

func TestSuccessOf(t *testing.T) {
	r := SuccessOf(42)
	if !r.IsSuccess() || r.Value() != 42 {
		t.Fatalf("SuccessOf(42) = %v", r)
	}
	if v, ok := r.TryValue(); !ok || v != 42 {
		t.Fatal("TryValue on success")
	}
	if r.ValueOr(7) != 42 {
		t.Fatal("ValueOr on success")
	}
	if !r.Untyped().IsSuccess() {
		t.Fatal("Untyped keeps the outcome")
	}
	if r.String() != "success(42)" {
		t.Fatalf("String() = %q", r.String())
	}
}

func TestFailOf_ValueGuarded(t *testing.T) {
	e := Timeout("Upstream.Slow")
	r := FailOf[string](e)

	mustPanicWith(t, ErrFailureValue, func() { _ = r.Value() })

	if v, ok := r.TryValue(); ok || v != "" {
		t.Fatal("TryValue on failure must return zero, false")
	}
	if r.ValueOr("fallback") != "fallback" {
		t.Fatal("ValueOr on failure")
	}
	if u := r.Untyped(); !u.IsFailure() || !u.Err().Equal(e) {
		t.Fatal("Untyped keeps the error")
	}
	if !ValidationFailure[string](e).Err().Equal(e) {
		t.Fatal("ValidationFailure carries the error")
	}
}

func TestCreate(t *testing.T) {
	type user struct{ name string }
	var nilUser *user
	var nilMap map[string]int
	var nilSlice []int
	var nilFunc func()
	var nilIface error

	nullCases := map[string]Outcome{
		"nil pointer":   Create(nilUser),
		"nil map":       Create(nilMap),
		"nil slice":     Create(nilSlice),
		"nil func":      Create(nilFunc),
		"nil interface": Create(nilIface),
		"nil any":       Create[any](nil),
	}
	for name, r := range nullCases {
		if r.IsSuccess() || !r.Err().Equal(NullValue) {
			t.Fatalf("%s: Create must fail with NullValue, got %v", name, r.Err())
		}
	}

	u := &user{name: "ada"}
	if r := Create(u); !r.IsSuccess() || r.Value() != u {
		t.Fatal("Create(non-nil pointer) must succeed with the value")
	}
	if r := Create(0); !r.IsSuccess() || r.Value() != 0 {
		t.Fatal("zero values that cannot be nil are present")
	}
	if r := Create(""); !r.IsSuccess() {
		t.Fatal("empty string is present")
	}
	if r := Create([]int{}); !r.IsSuccess() {
		t.Fatal("empty non-nil slice is present")
	}
}
