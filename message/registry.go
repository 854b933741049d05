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
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/dresult/apis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// MissingPrefix starts every fallback message produced by MissingLocalization.
const MissingPrefix = "Missing localization for key: "

// MissingLocalization returns the marker used when no source knows code.
func MissingLocalization(code string) string {
	return MissingPrefix + code
}

var (
	_ apis.Source   = (*Registry)(nil)
	_ apis.Resolver = (*Registry)(nil)
)

// Registry is an ordered, append-only chain of message sources.
//
// The zero value is not usable; construct registries with NewRegistry.
// A Registry is safe for concurrent use.
type Registry struct {
	// mu serializes Register. Lookups never take it.
	mu sync.Mutex
	// sources is replaced (never mutated) on every Register.
	sources atomic.Pointer[[]apis.Source]

	log      zerolog.Logger
	lookups  *prometheus.CounterVec
	fallback func(code string) string
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		log:      zerolog.Nop(),
		fallback: MissingLocalization,
	}
	for _, opt := range opts {
		opt(r)
	}
	empty := make([]apis.Source, 0)
	r.sources.Store(&empty)
	return r
}

// Register appends src to the chain. Sources are never deduplicated or
// removed; registering the same source twice queries it twice.
//
// Register panics if src is nil.
func (r *Registry) Register(src apis.Source) {
	if src == nil {
		panic("dresult: nil message source")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.sources.Load()
	next := make([]apis.Source, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, src)
	r.sources.Store(&next)

	r.log.Debug().Int("sources", len(next)).Msg("message source registered")
}

// Sources returns a snapshot of the registered sources in order.
func (r *Registry) Sources() []apis.Source {
	cur := *r.sources.Load()
	out := make([]apis.Source, len(cur))
	copy(out, cur)
	return out
}

// Len reports the number of registered sources.
func (r *Registry) Len() int {
	return len(*r.sources.Load())
}

// Lookup queries the sources in registration order and returns the first
// hit. It makes a Registry usable as a Source of another registry.
func (r *Registry) Lookup(code string, tag language.Tag) (string, bool) {
	for _, src := range *r.sources.Load() {
		if s, ok := src.Lookup(code, tag); ok {
			r.observe("hit")
			return s, true
		}
	}
	r.observe("miss")
	return "", false
}

// Resolve returns the first template any source has for code, or the
// fallback marker when none does. It never fails.
func (r *Registry) Resolve(code string, tag language.Tag) string {
	if s, ok := r.Lookup(code, tag); ok {
		return s
	}
	r.log.Debug().Str("code", code).Str("locale", tag.String()).Msg("missing localization")
	return r.fallback(code)
}

func (r *Registry) observe(outcome string) {
	if r.lookups != nil {
		r.lookups.WithLabelValues(outcome).Inc()
	}
}

// newLookupsCounter registers the lookup counter on reg, reusing an already
// registered collector with the same descriptor.
func newLookupsCounter(reg prometheus.Registerer) (*prometheus.CounterVec, error) {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dresult",
		Subsystem: "message",
		Name:      "lookups_total",
		Help:      "Message lookups by outcome (hit or miss).",
	}, []string{"outcome"})

	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return cv, nil
}
