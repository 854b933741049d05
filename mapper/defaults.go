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

package mapper

import (
	"net/http"

	"dirpx.dev/dresult/category"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings per category.
// These are only defaults: callers adjust them at the boundary where HTTP is
// actually produced (REST gateway, HTTP handler, etc.).
var defaultHTTP = map[category.Category]int{
	// Generic failures do not expose details.
	category.Failure: http.StatusInternalServerError,
	category.Problem: http.StatusInternalServerError,

	// 4xx: client input and resources.
	category.Validation: http.StatusBadRequest,
	category.BadRequest: http.StatusBadRequest,
	category.NotFound:   http.StatusNotFound,
	category.Conflict:   http.StatusConflict,

	// AuthN / AuthZ.
	category.Authentication: http.StatusUnauthorized,
	category.Authorization:  http.StatusForbidden,
	category.Forbidden:      http.StatusForbidden,

	// Runtime.
	category.Timeout:            http.StatusGatewayTimeout,
	category.ServiceUnavailable: http.StatusServiceUnavailable,
}

// defaultGRPC defines the library's built-in gRPC mappings per category,
// aligned with the canonical gRPC status codes.
var defaultGRPC = map[category.Category]codes.Code{
	category.Failure: codes.Internal,
	category.Problem: codes.Internal,

	category.Validation: codes.InvalidArgument,
	category.BadRequest: codes.InvalidArgument,
	category.NotFound:   codes.NotFound,
	category.Conflict:   codes.Aborted, // concurrent updates, duplicates

	category.Authentication: codes.Unauthenticated,
	category.Authorization:  codes.PermissionDenied,
	category.Forbidden:      codes.PermissionDenied,

	category.Timeout:            codes.DeadlineExceeded,
	category.ServiceUnavailable: codes.Unavailable,
}
