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

// Package category defines the closed set of error categories used by
// dresult errors.
//
// A category is the coarse, advisory classification of a failure, such as
// "validation", "not_found" or "timeout". It carries no behavior: callers
// branch on it (for example to pick a transport status) while the error code
// identifies the exact failure.
//
// Categories are:
//
//   - lowercased;
//   - underscore-separated;
//   - members of the fixed set returned by All.
//
// Parse accepts the usual spellings found in configuration files and APIs
// ("NotFound", "not-found", " NOT_FOUND ") and maps them to the canonical
// value.
package category
