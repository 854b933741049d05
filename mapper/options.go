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
	"dirpx.dev/dresult/category"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status of a category.
func WithHTTPDefault(c category.Category, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault replaces the default gRPC status of a category.
func WithGRPCDefault(c category.Category, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for a category.
// Overrides take precedence over code prefix rules and defaults.
func WithHTTPOverride(c category.Category, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for a category.
func WithGRPCOverride(c category.Category, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule on the error code
// for the given category. A more specific prefix wins. Use "*" to match a
// single segment.
func WithHTTPPrefix(c category.Category, prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes[c] = append(b.httpPrefixes[c], prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule on the error code
// for the given category.
func WithGRPCPrefix(c category.Category, prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes[c] = append(b.grpcPrefixes[c], prefixRule{prefix, grpc}) }
}

// WithFallback sets the statuses used for categories without any rule.
// Zero values keep the current fallback.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		if http != 0 {
			b.fallbackHTTP = http
		}
		if grpc != codes.OK {
			b.fallbackGRPC = grpc
		}
	}
}

// Rule is a declarative prefix rule, typically decoded from configuration.
// A zero HTTP leaves HTTP untouched; a nil GRPC leaves gRPC untouched.
type Rule struct {
	Category category.Category `mapstructure:"category" yaml:"category" validate:"required"`
	Prefix   string            `mapstructure:"prefix" yaml:"prefix" validate:"required"`
	HTTP     int               `mapstructure:"http" yaml:"http" validate:"omitempty,gte=100,lte=599"`
	GRPC     *int              `mapstructure:"grpc" yaml:"grpc" validate:"omitempty,gte=0,lte=16"`
}

// WithRules adds every rule as a prefix rule.
func WithRules(rules ...Rule) Option {
	return func(b *builder) {
		for _, r := range rules {
			if r.HTTP != 0 {
				WithHTTPPrefix(r.Category, r.Prefix, r.HTTP)(b)
			}
			if r.GRPC != nil {
				WithGRPCPrefix(r.Category, r.Prefix, *r.GRPC)(b)
			}
		}
	}
}
