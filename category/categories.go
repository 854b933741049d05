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

// Generic categories
const (
	// Failure is a general failure that is not more specifically
	// categorized. The None and NullValue sentinels use it.
	Failure Category = "failure"

	// Validation indicates that user input or data failed validation.
	// The validation aggregate always carries this category.
	Validation Category = "validation"

	// Problem indicates a known problem or error state.
	Problem Category = "problem"
)

// Request and resource categories
const (
	// BadRequest indicates an invalid or poorly formatted request.
	BadRequest Category = "bad_request"

	// NotFound indicates that the requested resource or data does not exist.
	NotFound Category = "not_found"

	// Forbidden indicates that access to the requested resource is forbidden.
	Forbidden Category = "forbidden"

	// Conflict indicates a conflict in the request, such as a duplicate
	// resource or a concurrent modification.
	Conflict Category = "conflict"
)

// Identity categories
//
// Authentication answers "who are you?", Authorization answers "are you
// allowed to?". Transport layers typically map them to 401 and 403.
const (
	// Authentication indicates missing or invalid credentials.
	Authentication Category = "authentication"

	// Authorization indicates that the caller lacks permission.
	Authorization Category = "authorization"
)

// Runtime categories
const (
	// Timeout indicates that an operation or a dependency did not respond
	// in time.
	Timeout Category = "timeout"

	// ServiceUnavailable indicates that the requested service is
	// temporarily unavailable.
	ServiceUnavailable Category = "service_unavailable"
)

// all keeps the declaration order of the categories. It is the order used by
// All and Ordinal.
var all = []Category{
	Failure,
	Validation,
	Problem,
	BadRequest,
	NotFound,
	Forbidden,
	Conflict,
	Authentication,
	Authorization,
	Timeout,
	ServiceUnavailable,
}

var ordinals = func() map[Category]int {
	m := make(map[Category]int, len(all))
	for i, c := range all {
		m[c] = i
	}
	return m
}()

// All returns every known category in declaration order.
// The returned slice is a copy and may be modified by the caller.
func All() []Category {
	out := make([]Category, len(all))
	copy(out, all)
	return out
}
