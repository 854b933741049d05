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

// Package code provides parsing, normalization and validation for dresult
// error codes.
//
// A "code" is the stable identifier of one failure within an application's
// error catalog, such as "General.Null" or "User.Email.Taken". Codes are
// dot-separated, case-sensitive hierarchies. Each segment names an area,
// an entity or a condition:
//
//   - "General.Null"
//   - "General.Validation"
//   - "Order.Line.QuantityTooLow"
//
// The code is also the lookup key for message catalogs, which is why catalog
// files nest their tables the same way ([General] Null = "...").
//
// dresult.Error stores codes as plain strings and never validates them: the
// type only carries what the application gives it. This package is used at
// the edges where structure matters, e.g. when linting catalog files or
// declaring code-prefix rules in the status mapper.
//
// The empty code ("") is reserved for the dresult.None sentinel.
package code
