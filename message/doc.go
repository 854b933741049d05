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

// Package message resolves error codes to display text through an ordered
// chain of message sources.
//
// A Registry holds an append-only list of apis.Source providers. Resolve
// queries them in registration order and returns the first hit; when no
// source knows the code it returns a deterministic marker:
//
//	Missing localization for key: <code>
//
// Registration and resolution may interleave freely: appends are serialized
// by a mutex and lookups read an immutable snapshot of the source list.
//
// # Default registry
//
// Most programs configure one registry at startup. Default returns a
// process-wide registry, created on first use, that already contains the
// builtin catalog (General.Null, General.Validation). The package-level
// Register and Resolve functions operate on it, and DefaultLocale is the
// locale dresult.Error.Message resolves in.
//
// Libraries should prefer accepting an apis.Resolver and leave the choice of
// registry to the application.
package message
