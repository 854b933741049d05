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

import "golang.org/x/text/language"

// Source is a single provider of localized message templates.
//
// Lookup returns the template registered for code in (or, at the provider's
// discretion, near) the requested locale. The boolean reports whether a
// template was found; an empty string with ok=true is a valid, deliberately
// empty message.
//
// Implementations must be safe for concurrent use.
type Source interface {
	Lookup(code string, tag language.Tag) (string, bool)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(code string, tag language.Tag) (string, bool)

// Lookup calls f(code, tag).
func (f SourceFunc) Lookup(code string, tag language.Tag) (string, bool) {
	return f(code, tag)
}

// Resolver turns a code into display text and never fails: when no template
// is known it returns a deterministic fallback that embeds the code.
type Resolver interface {
	Resolve(code string, tag language.Tag) string
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(code string, tag language.Tag) string

// Resolve calls f(code, tag).
func (f ResolverFunc) Resolve(code string, tag language.Tag) string {
	return f(code, tag)
}
