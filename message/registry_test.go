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
	"fmt"
	"sync"
	"testing"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// mapSource is a fixed, locale-agnostic source.
type mapSource map[string]string

func (m mapSource) Lookup(code string, _ language.Tag) (string, bool) {
	s, ok := m[code]
	return s, ok
}

func TestResolve_MissingLocalization(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "Missing localization for key: Nonexistent.Key", r.Resolve("Nonexistent.Key", language.English))
	assert.Equal(t, "Missing localization for key: ", r.Resolve("", language.English))
	assert.Equal(t, MissingPrefix+"X", MissingLocalization("X"))
}

func TestResolve_FirstHitWins(t *testing.T) {
	r := NewRegistry()
	r.Register(mapSource{"A": "p1 A"})
	r.Register(mapSource{"A": "p2 A", "B": "p2 B"})
	r.Register(mapSource{"B": "p3 B", "C": "p3 C"})

	assert.Equal(t, "p1 A", r.Resolve("A", language.English))
	assert.Equal(t, "p2 B", r.Resolve("B", language.English))
	assert.Equal(t, "p3 C", r.Resolve("C", language.English))
	assert.Equal(t, MissingLocalization("D"), r.Resolve("D", language.English))
}

func TestResolve_EmptyTemplateIsAHit(t *testing.T) {
	r := NewRegistry()
	r.Register(mapSource{"A": ""})
	r.Register(mapSource{"A": "later"})
	assert.Equal(t, "", r.Resolve("A", language.English))
}

func TestResolve_PassesLocale(t *testing.T) {
	c := catalog.New(language.English)
	c.Set(language.English, "Hello", "Hello")
	c.Set(language.German, "Hello", "Hallo")

	r := NewRegistry()
	r.Register(c)
	assert.Equal(t, "Hallo", r.Resolve("Hello", language.MustParse("de-AT")))
	assert.Equal(t, "Hello", r.Resolve("Hello", language.Japanese))
}

func TestRegister_NoDedup(t *testing.T) {
	r := NewRegistry()
	src := mapSource{"A": "a"}
	r.Register(src)
	r.Register(src)
	assert.Equal(t, 2, r.Len())

	snap := r.Sources()
	snap[0] = nil
	assert.NotNil(t, r.Sources()[0], "Sources must return a copy")
}

func TestRegister_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewRegistry().Register(nil) })
}

func TestRegistry_AsNestedSource(t *testing.T) {
	inner := NewRegistry()
	inner.Register(mapSource{"A": "inner"})

	outer := NewRegistry()
	outer.Register(apis.SourceFunc(func(string, language.Tag) (string, bool) { return "", false }))
	outer.Register(inner)

	assert.Equal(t, "inner", outer.Resolve("A", language.English))
	_, ok := outer.Lookup("B", language.English)
	assert.False(t, ok)
}

func TestWithFallback(t *testing.T) {
	r := NewRegistry(WithFallback(func(code string) string { return "[" + code + "]" }))
	assert.Equal(t, "[X]", r.Resolve("X", language.English))
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(WithMetrics(reg))
	r.Register(mapSource{"A": "a"})

	_ = r.Resolve("A", language.English)
	_ = r.Resolve("A", language.English)
	_ = r.Resolve("B", language.English)

	cv, err := newLookupsCounter(reg)
	require.NoError(t, err, "second registration must reuse the collector")
	assert.Equal(t, 2.0, testutil.ToFloat64(cv.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(cv.WithLabelValues("miss")))

	// A second registry on the same Registerer shares the counter.
	r2 := NewRegistry(WithMetrics(reg))
	_ = r2.Resolve("C", language.English)
	assert.Equal(t, 2.0, testutil.ToFloat64(cv.WithLabelValues("miss")))
}

func TestConcurrentRegisterAndResolve(t *testing.T) {
	r := NewRegistry()
	r.Register(mapSource{"Base": "base"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Register(mapSource{fmt.Sprintf("K%d_%d", i, j): "v"})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got := r.Resolve("Base", language.English); got != "base" {
					t.Errorf("Resolve(Base) = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1+8*100, r.Len())
	assert.Equal(t, "v", r.Resolve("K7_99", language.English))
}

func TestDefault(t *testing.T) {
	d := Default()
	require.Same(t, d, Default())

	assert.Equal(t, "Null value was provided", Resolve("General.Null"))
	assert.Equal(t, "One or more validation errors occurred.", ResolveIn("General.Validation", language.English))
	assert.Equal(t, "Es wurde ein Nullwert übergeben", ResolveIn("General.Null", language.German))

	Register(mapSource{"Message.Test.Default": "registered"})
	assert.Equal(t, "registered", Resolve("Message.Test.Default"))
}

func TestDefaultLocale(t *testing.T) {
	assert.Equal(t, "en", DefaultLocale().String())

	SetDefaultLocale(language.German)
	t.Cleanup(func() { SetDefaultLocale(language.English) })

	assert.Equal(t, "de", DefaultLocale().String())
	assert.Equal(t, "Es wurde ein Nullwert übergeben", Resolve("General.Null"))
}
