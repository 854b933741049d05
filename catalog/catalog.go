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

package catalog

import (
	"sort"
	"sync"

	"dirpx.dev/dresult/apis"
	"golang.org/x/text/language"
)

var _ apis.Source = (*Catalog)(nil)

// Catalog is an in-memory message source. It is safe for concurrent use.
type Catalog struct {
	mu  sync.RWMutex
	def language.Tag
	// msgs maps a canonical locale string to its code -> template table.
	msgs map[string]map[string]string
}

// New creates an empty catalog whose lookups fall back to def.
func New(def language.Tag) *Catalog {
	return &Catalog{
		def:  def,
		msgs: make(map[string]map[string]string),
	}
}

// DefaultLocale returns the fallback locale of the catalog.
func (c *Catalog) DefaultLocale() language.Tag {
	return c.def
}

// Set stores a single template.
func (c *Catalog) Set(tag language.Tag, code, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tag.String()
	t, ok := c.msgs[key]
	if !ok {
		t = make(map[string]string)
		c.msgs[key] = t
	}
	t[code] = msg
}

// Merge adds msgs to the locale, overwriting templates with the same code.
func (c *Catalog) Merge(tag language.Tag, msgs map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tag.String()
	t, ok := c.msgs[key]
	if !ok {
		t = make(map[string]string, len(msgs))
		c.msgs[key] = t
	}
	for k, v := range msgs {
		t[k] = v
	}
}

// Replace swaps the whole table of a locale for msgs.
func (c *Catalog) Replace(tag language.Tag, msgs map[string]string) {
	t := make(map[string]string, len(msgs))
	for k, v := range msgs {
		t[k] = v
	}
	c.mu.Lock()
	c.msgs[tag.String()] = t
	c.mu.Unlock()
}

// Remove drops a locale.
func (c *Catalog) Remove(tag language.Tag) {
	c.mu.Lock()
	delete(c.msgs, tag.String())
	c.mu.Unlock()
}

// Lookup implements apis.Source.
func (c *Catalog) Lookup(code string, tag language.Tag) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, key := range Chain(tag, c.def) {
		if msg, ok := c.msgs[key][code]; ok {
			return msg, true
		}
	}
	return "", false
}

// Messages returns a copy of the exact table of a locale (no fallback).
func (c *Catalog) Messages(tag language.Tag) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	src := c.msgs[tag.String()]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Codes returns the sorted codes defined directly in a locale.
func (c *Catalog) Codes(tag language.Tag) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	src := c.msgs[tag.String()]
	out := make([]string, 0, len(src))
	for k := range src {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Missing returns the sorted codes the default locale defines and tag does
// not define directly.
func (c *Catalog) Missing(tag language.Tag) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	have := c.msgs[tag.String()]
	var out []string
	for k := range c.msgs[c.def.String()] {
		if _, ok := have[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Locales returns the loaded locales sorted by tag string.
func (c *Catalog) Locales() []language.Tag {
	c.mu.RLock()
	keys := make([]string, 0, len(c.msgs))
	for k := range c.msgs {
		keys = append(keys, k)
	}
	c.mu.RUnlock()

	sort.Strings(keys)
	out := make([]language.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, language.Make(k))
	}
	return out
}

// Chain returns the locale keys a lookup for tag visits: tag and its
// parents, then def and its parents. Duplicates and the root are skipped.
func Chain(tag, def language.Tag) []string {
	out := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	for _, start := range [...]language.Tag{tag, def} {
		for t := start; !t.IsRoot(); t = t.Parent() {
			k := t.String()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
