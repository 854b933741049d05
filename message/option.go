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

package message

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger sets the logger used for registration and miss diagnostics.
// Misses are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithMetrics counts lookups in dresult_message_lookups_total{outcome}.
// A registration failure is logged and leaves the registry uninstrumented,
// so WithLogger should come first.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		if reg == nil {
			return
		}
		cv, err := newLookupsCounter(reg)
		if err != nil {
			r.log.Warn().Err(err).Msg("message lookup metrics disabled")
			return
		}
		r.lookups = cv
	}
}

// WithFallback replaces MissingLocalization as the text returned for
// unknown codes.
func WithFallback(fn func(code string) string) Option {
	return func(r *Registry) {
		if fn != nil {
			r.fallback = fn
		}
	}
}
