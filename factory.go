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

import "dirpx.dev/dresult/category"

// Category factories. Each fixes the category and otherwise behaves like E.

// Failure returns a general failure.
func Failure(code string, opts ...Option) Error { return E(category.Failure, code, opts...) }

// Validation returns a validation failure for a single input.
func Validation(code string, opts ...Option) Error { return E(category.Validation, code, opts...) }

// Problem returns a known problem.
func Problem(code string, opts ...Option) Error { return E(category.Problem, code, opts...) }

// BadRequest returns an invalid request failure.
func BadRequest(code string, opts ...Option) Error { return E(category.BadRequest, code, opts...) }

// NotFound returns a missing resource failure.
func NotFound(code string, opts ...Option) Error { return E(category.NotFound, code, opts...) }

// Forbidden returns a forbidden access failure.
func Forbidden(code string, opts ...Option) Error { return E(category.Forbidden, code, opts...) }

// Conflict returns a conflict failure.
func Conflict(code string, opts ...Option) Error { return E(category.Conflict, code, opts...) }

// Authentication returns a failure for missing or invalid credentials.
func Authentication(code string, opts ...Option) Error {
	return E(category.Authentication, code, opts...)
}

// Authorization returns a failure for insufficient permissions.
func Authorization(code string, opts ...Option) Error {
	return E(category.Authorization, code, opts...)
}

// Timeout returns a timeout failure.
func Timeout(code string, opts ...Option) Error { return E(category.Timeout, code, opts...) }

// ServiceUnavailable returns a failure for an unavailable service.
func ServiceUnavailable(code string, opts ...Option) Error {
	return E(category.ServiceUnavailable, code, opts...)
}
