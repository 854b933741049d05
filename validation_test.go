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
	"testing"

	"dirpx.dev/dresult/category"
	"github.com/google/go-cmp/cmp"
)

func TestNewValidationError(t *testing.T) {
	a := Validation("User.Name.Empty")
	b := Validation("User.Email.Invalid", WithArgs("x@"))
	in := []Error{a, b}

	v := NewValidationError(in)
	in[0] = NullValue

	if v.Category() != category.Validation || v.Code() != "General.Validation" {
		t.Fatalf("aggregate = %s/%s", v.Category(), v.Code())
	}
	if !v.IsValidationError() {
		t.Fatal("IsValidationError must be true")
	}
	if diff := cmp.Diff([]Error{a, b}, v.Errors()); diff != "" {
		t.Fatalf("Errors() mismatch (-want +got):\n%s", diff)
	}
	if got := v.Message(); got != "One or more validation errors occurred." {
		t.Fatalf("Message() = %q", got)
	}
	if Validation(ValidationCode).IsValidationError() {
		t.Fatal("a plain validation error is not an aggregate")
	}
}

func TestNewValidationError_Empty(t *testing.T) {
	v := NewValidationError(nil)
	if !v.IsValidationError() || len(v.Errors()) != 0 {
		t.Fatal("an empty aggregate is allowed")
	}
	if !v.Equal(NewValidationError([]Error{})) {
		t.Fatal("nil and empty cause lists are equal")
	}
}

func TestValidationErrorFromResults(t *testing.T) {
	a := BadRequest("A")
	b := Conflict("B")

	v := ValidationErrorFromResults(Fail(a), Success(), Fail(b))
	if diff := cmp.Diff([]Error{a, b}, v.Errors()); diff != "" {
		t.Fatalf("Errors() mismatch (-want +got):\n%s", diff)
	}

	mixed := ValidationErrorFromResults(SuccessOf("ok"), FailOf[int](b), Create[*int](nil), Fail(a))
	if diff := cmp.Diff([]Error{b, NullValue, a}, mixed.Errors()); diff != "" {
		t.Fatalf("Errors() mismatch (-want +got):\n%s", diff)
	}

	if len(ValidationErrorFromResults().Errors()) != 0 {
		t.Fatal("no results give an empty aggregate")
	}
}

func TestValidate(t *testing.T) {
	if r := Validate(Success(), SuccessOf(1)); !r.IsSuccess() {
		t.Fatal("all successes validate")
	}
	a := Validation("A")
	r := Validate(Success(), Fail(a))
	if !r.IsFailure() || !r.Err().IsValidationError() {
		t.Fatal("a failure produces an aggregate failure")
	}
	if diff := cmp.Diff([]Error{a}, r.Err().Errors()); diff != "" {
		t.Fatalf("Errors() mismatch (-want +got):\n%s", diff)
	}
}
