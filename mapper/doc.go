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

// Package mapper provides deterministic, immutable mappings from dresult
// error categories (dirpx.dev/dresult/category) and error codes to
// transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A dresult.Error carries two pieces a transport cares about:
//
//  1. a Category (e.g. category.NotFound, category.Validation),
//  2. a hierarchical Code (e.g. "Storage.Pg.ConnectTimeout").
//
// HTTP handlers, REST gateways and gRPC servers need to turn this pair into
// concrete status codes. The mapper is immutable once built, lets callers
// override the library defaults per category, and resolves HTTP and gRPC
// with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the category;
//  2. per-category longest-prefix-match (LPM) on the code;
//  3. per-category default (library or user-adjusted);
//  4. fallback (500 / codes.Internal unless configured).
//
// Prefix rules are segment-aware: codes are treated as "."-separated
// segments, and "*" matches exactly one segment:
//
//	WithHTTPPrefix(category.ServiceUnavailable, "Storage.Pg", http.StatusBadGateway)
//	WithHTTPPrefix(category.Problem, "Billing.*.Declined", http.StatusPaymentRequired)
//
// The more specific prefix wins. Segments are case-sensitive.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(category.Timeout, 408),
//	    mapper.WithHTTPPrefix(category.ServiceUnavailable, "Storage.Pg", 502),
//	)
//	if err != nil {
//	    // invalid prefix
//	}
//
//	st := m.Status(err.Category(), err.Code())
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (category, code)
// pair was resolved, including which tier matched and, for prefixes, which
// pattern was used.
package mapper
