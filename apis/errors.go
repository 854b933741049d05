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

package apis

import (
	"dirpx.dev/dresult/category"
)

// CategorizedError represents an error classified by a category and
// identified by a stable code.
//
// The category answers "what kind of failure is this?" (and is what
// transport adapters branch on), the code answers "which failure exactly?"
// (and is what message catalogs are keyed by).
//
// Examples:
//
//	category: not_found   code: "User.NotFound"
//	category: validation  code: "User.Email.Invalid"
//	category: failure     code: "General.Null"
type CategorizedError interface {
	error

	// ErrorCategory returns the failure category. Unknown categories should
	// be treated as internal failures at the boundary.
	ErrorCategory() category.Category

	// ErrorCode returns the code. It MAY be empty for the "no error"
	// sentinel only.
	ErrorCode() string

	// ErrorArgs returns the positional format arguments of the message.
	// May return nil.
	ErrorArgs() []string
}

// AggregateError represents an error that wraps several independent causes,
// typically one per failed field in validation scenarios.
//
// Implementations SHOULD return a fresh slice in discovery order. Returning
// nil means the error is not an aggregate.
type AggregateError interface {
	CategorizedError

	// ErrorCauses returns the aggregated causes.
	ErrorCauses() []CategorizedError
}
