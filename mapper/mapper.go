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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/category"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// ErrInvalidRule is returned by New when a prefix rule cannot be compiled.
var ErrInvalidRule = errors.New("mapper: invalid rule")

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all code prefixes (via code.Normalize).
//  4. Build per-category segment tries (HTTP & gRPC) supporting
//     longest-prefix-match with '*' as a single-segment wildcard.
//  5. Freeze all maps into private copies.
//
// Errors wrap ErrInvalidRule and name the offending prefix and category.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries(b.httpPrefixes, "HTTP", func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, "gRPC", func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is New that panics on error. It is meant for package-level
// variables built from literal rules.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func buildTries[T any](rules map[category.Category][]prefixRule, transport string, conv func(int) T) (map[category.Category]*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[category.Category]*segmenttrie.Trie[T], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[T]()
		for _, r := range rs {
			p, err := normalizePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("%w: %s prefix %q for category %q: %w", ErrInvalidRule, transport, r.prefix, c, err)
			}
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("%w: %s prefix %q for category %q: %w", ErrInvalidRule, transport, p, c, err)
			}
		}
		out[c] = t
	}
	return out, nil
}

// mapper combines per-category defaults, exact per-category overrides and
// per-category prefix tries over error codes. Lookups are O(depth) and safe
// for concurrent use once constructed.
type mapper struct {
	httpDefault map[category.Category]int
	grpcDefault map[category.Category]codes.Code

	// overrides beat prefix rules and defaults
	httpOverride map[category.Category]int
	grpcOverride map[category.Category]codes.Code

	// code prefix tries, "." separated with "*" for one segment
	httpTrie map[category.Category]*segmenttrie.Trie[int]
	grpcTrie map[category.Category]*segmenttrie.Trie[codes.Code]

	// used when a category has no rule at all
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// source names the tier that produced a status. Explain prints it.
type source string

const (
	sourceOverride source = "override"
	sourcePrefix   source = "prefix"
	sourceDefault  source = "default"
	sourceFallback source = "fallback"
)

// HTTPStatus resolves an HTTP status for the given category and code.
//
// Resolution order (highest to lowest):
//  1. exact per-category override;
//  2. per-category longest-prefix-match rule on the code;
//  3. per-category default (library or user adjusted);
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(c category.Category, errCode string) int {
	v, _, _ := resolve(c, errCode, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC status with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c category.Category, errCode string) codes.Code {
	v, _, _ := resolve(c, errCode, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(c category.Category, errCode string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, errCode),
		GRPC: m.GRPCStatus(c, errCode),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (category, code) pair.
//
// Example output:
//
//	category="service_unavailable" code="Storage.Pg.ConnectTimeout"
//	http: source=prefix pattern="Storage.Pg" -> 503
//	grpc: source=default -> UNAVAILABLE(14)
//
// The format is meant for people, not for parsing.
func (m *mapper) Explain(c category.Category, errCode string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "category=%q code=%q\n", c, errCode)

	hv, hsrc, hpat := resolve(c, errCode, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describe(hsrc, hpat), hv)

	gv, gsrc, gpat := resolve(c, errCode, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s", describe(gsrc, gpat), grpcName(gv))

	return b.String()
}

func describe(src source, pattern string) string {
	if src == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", src, pattern)
	}
	return "source=" + string(src)
}

// resolve walks the four tiers for one transport.
func resolve[T any](
	c category.Category,
	errCode string,
	override map[category.Category]T,
	tries map[category.Category]*segmenttrie.Trie[T],
	defaults map[category.Category]T,
	fallback T,
) (T, source, string) {
	if v, ok := override[c]; ok {
		return v, sourceOverride, ""
	}
	if t := tries[c]; t != nil && errCode != "" {
		if v, ok, pat := t.MatchWithPattern(errCode); ok {
			return v, sourcePrefix, pat
		}
	}
	if v, ok := defaults[c]; ok {
		return v, sourceDefault, ""
	}
	return fallback, sourceFallback, ""
}

// normalizePrefix makes a code prefix canonical. Structural checks are left
// to the trie; only the segment budget is checked here.
func normalizePrefix(raw string) (string, error) {
	p := code.Normalize(raw)
	if p == "" {
		return "", errors.New("empty prefix")
	}
	if n := strings.Count(p, ".") + 1; n > code.MaxSegments {
		return "", fmt.Errorf("%d segments, at most %d allowed", n, code.MaxSegments)
	}
	return p, nil
}
