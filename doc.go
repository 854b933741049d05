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

// Package dresult models the outcome of operations that can fail as plain
// values instead of control flow.
//
// # Errors
//
// An Error is an immutable descriptor of a failure:
//
//   - a category (category.NotFound, category.Validation, ...) that callers
//     and transport adapters branch on;
//   - a code ("User.NotFound") that identifies the failure and keys the
//     message catalogs;
//   - a message, either given explicitly or resolved from the code through
//     the message registry, formatted with positional arguments.
//
// Factories exist for every category:
//
//	dresult.NotFound("User.NotFound", dresult.WithArgs(id))
//	dresult.Conflict("User.Email.Taken", dresult.WithMessage("{0} is taken", email))
//
// Two sentinels have a fixed meaning: None (no error) and NullValue (a nil
// value was turned into a result).
//
// # Results
//
// Result and ResultOf[T] are either a success or a failure carrying an
// Error. The constructors enforce that a success carries None and a failure
// anything else; violating that is a programming error and panics.
//
//	func FindUser(id string) dresult.ResultOf[User] {
//	    u, ok := users[id]
//	    if !ok {
//	        return dresult.FailOf[User](dresult.NotFound("User.NotFound", dresult.WithArgs(id)))
//	    }
//	    return dresult.SuccessOf(u)
//	}
//
// Callers check IsSuccess or IsFailure before calling Value, or use
// TryValue. Ensure and Map chain steps without unwrapping.
//
// # Validation
//
// NewValidationError and ValidationErrorFromResults aggregate several
// failures into one Error with code General.Validation.
//
// # Messages
//
// Error.Message resolves through message.Default in message.DefaultLocale.
// Code that wants an explicit registry or locale uses Localize. Message
// resolution never fails: unknown codes yield
// "Missing localization for key: <code>" and templates that cannot be
// formatted are returned unformatted.
package dresult
