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
	"slices"

	"dirpx.dev/dresult/category"
	"dirpx.dev/dresult/code"
)

// ValidationCode is the code of every validation aggregate.
const ValidationCode = string(code.Validation)

// NewValidationError returns a validation aggregate of errs: an Error with
// category validation and code General.Validation whose Errors are errs in
// the given order. An empty list is allowed.
func NewValidationError(errs []Error) Error {
	return Error{
		category:  category.Validation,
		code:      ValidationCode,
		aggregate: true,
		errs:      slices.Clone(errs),
	}
}

// ValidationErrorFromResults collects the errors of the failed results, in
// order, into a validation aggregate. Successes are skipped.
func ValidationErrorFromResults(results ...Outcome) Error {
	var errs []Error
	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Err())
		}
	}
	return NewValidationError(errs)
}

// IsValidationError reports whether e is a validation aggregate.
func (e Error) IsValidationError() bool { return e.aggregate }

// Errors returns a copy of the causes of a validation aggregate, or nil.
func (e Error) Errors() []Error { return slices.Clone(e.errs) }

// Validate returns Success when every result succeeded and otherwise a
// failure carrying the aggregate of all failures.
func Validate(results ...Outcome) Result {
	agg := ValidationErrorFromResults(results...)
	if len(agg.errs) == 0 {
		return Success()
	}
	return Fail(agg)
}
