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

// ErrorDescriptor is a flat, catalog-friendly description of a known
// (category, code) pair together with the transport statuses and default
// message template that apply to it.
//
// This type intentionally uses strings (not category.Category) so that it
// can be produced by tooling and marshaled without extra imports.
type ErrorDescriptor struct {
	// Category is the canonical category name.
	Category string `json:"category"`

	// Code is the stable error code.
	Code string `json:"code"`

	// HTTPStatus is the HTTP status this pair maps to. A value of 0 means
	// "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) this pair maps to.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the unformatted template, i.e. the custom message when one
	// was given, otherwise what the catalog returns for Code.
	Message string `json:"message,omitempty"`
}
