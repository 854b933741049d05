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

// Detail describes one cause of an aggregate error in a shape that maps
// directly onto field violations (google.rpc.BadRequest) and JSON problem
// lists.
//
// Typical usages:
//   - report which field failed validation;
//   - report the rule (validator tag) that failed.
type Detail struct {
	// Field carries the logical path to the failing field, e.g.
	// "User.Email". For non-field errors this may be empty.
	Field string `json:"field,omitempty"`

	// Code is the code of the cause, e.g. "Validation.required".
	Code string `json:"code"`

	// Description is the resolved message of the cause.
	Description string `json:"description,omitempty"`
}
