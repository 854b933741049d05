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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error.
//
// This is *not* the concrete error type used internally: it is the shape we
// are comfortable exposing over the wire or logging. Messages are already
// resolved, so a view is independent of any message registry.
type ErrorView struct {
	// Category is the canonical category, e.g. "validation", "not_found".
	Category string `json:"category" jsonschema:"enum=failure,enum=validation,enum=problem,enum=bad_request,enum=not_found,enum=forbidden,enum=conflict,enum=authentication,enum=authorization,enum=timeout,enum=service_unavailable"`

	// Code is the stable error code, e.g. "User.Email.Taken". Empty only for
	// the "no error" sentinel.
	Code string `json:"code"`

	// Message is the resolved, formatted display message.
	Message string `json:"message"`

	// Args are the positional format arguments the message was built from.
	Args []string `json:"args,omitempty"`

	// Errors holds the causes of a validation aggregate, in discovery order.
	Errors []ErrorView `json:"errors,omitempty"`
}
