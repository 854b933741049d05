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

package dresult

// Ensure keeps a success whose value satisfies pred and turns any other
// success into a failure carrying err. Failures are returned unchanged and
// pred is not called.
func Ensure[T any](r ResultOf[T], pred func(T) bool, err Error) ResultOf[T] {
	if r.IsFailure() {
		return r
	}
	if pred(r.value) {
		return r
	}
	return FailOf[T](err)
}

// Map applies fn to the value of a success. A failure is carried over to
// the new type with its error untouched and fn is not called.
//
// fn must not fail; a variant taking a Result-returning function is not
// provided.
func Map[T, U any](r ResultOf[T], fn func(T) U) ResultOf[U] {
	if r.IsFailure() {
		return FailOf[U](r.err)
	}
	return SuccessOf(fn(r.value))
}
