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

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidResult is the panic value (wrapped) of a Result built with a
	// success flag that contradicts its error: a success must carry None and
	// a failure anything but None.
	ErrInvalidResult = errors.New("dresult: invalid result")

	// ErrFailureValue is the panic value (wrapped) of Value on a failure.
	ErrFailureValue = errors.New("dresult: the value of a failure result cannot be accessed")
)

// Outcome is implemented by Result and every ResultOf[T].
type Outcome interface {
	IsSuccess() bool
	IsFailure() bool
	Err() Error
}

var (
	_ Outcome = Result{}
	_ Outcome = ResultOf[int]{}
)

// Result is the outcome of an operation without a payload: a success, or a
// failure carrying an Error.
//
// Build results with Success, Fail or Error.AsResult. The zero value is not
// a valid Result.
type Result struct {
	isSuccess bool
	err       Error
}

func newResult(isSuccess bool, err Error) Result {
	if isSuccess != err.IsNone() {
		if isSuccess {
			panic(fmt.Errorf("%w: a success must carry dresult.None, got %s:%s", ErrInvalidResult, err.category, err.code))
		}
		panic(fmt.Errorf("%w: a failure cannot carry dresult.None", ErrInvalidResult))
	}
	return Result{isSuccess: isSuccess, err: err}
}

// Success returns a successful Result.
func Success() Result { return newResult(true, None) }

// Fail returns a failed Result carrying err. It panics if err is None.
func Fail(err Error) Result { return newResult(false, err) }

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool { return r.isSuccess }

// IsFailure reports whether the operation failed.
func (r Result) IsFailure() bool { return !r.isSuccess }

// Err returns the error of a failure, or None for a success.
func (r Result) Err() Error { return r.err }

// AsError returns the failure as a Go error, or nil for a success. It is
// the bridge to code that expects (T, error) pairs.
func (r Result) AsError() error {
	if r.isSuccess {
		return nil
	}
	return r.err
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.isSuccess {
		return "success"
	}
	return "failure(" + r.err.Error() + ")"
}

// ResultOf is a Result that carries a value of type T on success.
type ResultOf[T any] struct {
	Result
	value T
}

// SuccessOf returns a successful result carrying v.
func SuccessOf[T any](v T) ResultOf[T] {
	return ResultOf[T]{Result: newResult(true, None), value: v}
}

// FailOf returns a failed result carrying err. It panics if err is None.
func FailOf[T any](err Error) ResultOf[T] {
	return ResultOf[T]{Result: newResult(false, err)}
}

// ValidationFailure returns a failed result for a validation error. It is
// FailOf under a name that reads well at validation sites:
//
//	return dresult.ValidationFailure[User](dresult.NewValidationError(errs))
func ValidationFailure[T any](err Error) ResultOf[T] {
	return FailOf[T](err)
}

// Create returns a success carrying v, or a NullValue failure when v is nil.
// Nil pointers, maps, slices, channels, functions and interfaces count as
// nil.
func Create[T any](v T) ResultOf[T] {
	if isNil(v) {
		return FailOf[T](NullValue)
	}
	return SuccessOf(v)
}

// Value returns the payload of a success. Calling Value on a failure is a
// programming error and panics with an error wrapping ErrFailureValue.
func (r ResultOf[T]) Value() T {
	if !r.isSuccess {
		panic(fmt.Errorf("%w (%s:%s)", ErrFailureValue, r.err.category, r.err.code))
	}
	return r.value
}

// TryValue returns the payload and true on success, the zero value and
// false on failure.
func (r ResultOf[T]) TryValue() (T, bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// ValueOr returns the payload on success and def on failure.
func (r ResultOf[T]) ValueOr(def T) T {
	if !r.isSuccess {
		return def
	}
	return r.value
}

// Untyped drops the payload.
func (r ResultOf[T]) Untyped() Result { return r.Result }

// String implements fmt.Stringer.
func (r ResultOf[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return r.Result.String()
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
