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

type prefixRule struct {
	// prefix is the raw, dot-separated code prefix (may contain "*").
	// It is normalized and validated when the per-category trie is built.
	prefix string

	// val is the numeric transport status to apply when this prefix matches.
	// gRPC values are kept as int here and converted in New().
	val int
}

type builder struct {
	// per-category defaults, seeded from the library tables
	httpDefaults map[category.Category]int
	grpcDefaults map[category.Category]int

	// exact per-category overrides (beat prefix rules and defaults)
	httpOverride map[category.Category]int
	grpcOverride map[category.Category]int

	// per-category LPM rules on the error code
	httpPrefixes map[category.Category][]prefixRule
	grpcPrefixes map[category.Category][]prefixRule

	// used when a category has nothing at all
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[category.Category]int, len(defaultHTTP)),
		grpcDefaults: make(map[category.Category]int, len(defaultGRPC)),

		httpOverride: make(map[category.Category]int),
		grpcOverride: make(map[category.Category]int),
		httpPrefixes: make(map[category.Category][]prefixRule),
		grpcPrefixes: make(map[category.Category][]prefixRule),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	return b
}
