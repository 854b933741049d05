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

// Package apis defines the public Go-level contracts of dresult.
//
// The goal of this package is to provide *small, composable* interfaces that
// the core value model, message catalogs and transport adapters can all
// depend on without importing each other:
//
//   - Source and Resolver describe message lookup by (code, locale). The
//     core only ever talks to a Resolver; catalogs implement Source.
//   - CategorizedError and AggregateError describe what adapters need to
//     know about a failure, without importing the concrete dresult.Error.
//   - Mapper, Status, ErrorView, ErrorDescriptor and Detail are the shapes
//     HTTP and gRPC adapters share.
//
// This package must remain lightweight: interfaces and very small view types
// only.
package apis
