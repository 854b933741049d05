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
	"fmt"
	"slices"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/category"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/internal/composite"
	"dirpx.dev/dresult/message"
	"golang.org/x/text/language"
)

// Error describes a failure: a category, a stable code and a display
// message that is resolved when asked for.
//
// Error is an immutable value. Its slices are copied on the way in and on
// the way out, and all WithX helpers return a modified copy, so Error
// values can be shared between goroutines and compared with Equal.
//
// The message is either the custom message given at construction or the
// template registered for the code in the message registry. In both cases
// it is composite-formatted with the error's arguments ("{0}", "{1}", ...).
type Error struct {
	category category.Category
	code     string

	// custom is the caller-provided message. hasCustom distinguishes an
	// explicitly empty message (None) from "resolve through the registry".
	custom    string
	hasCustom bool

	args []string

	// aggregate marks a validation aggregate; errs holds its causes.
	aggregate bool
	errs      []Error
}

var (
	_ error                 = Error{}
	_ apis.AggregateError   = Error{}
	_ apis.CategorizedError = Error{}
)

var (
	// None means "no error". It is the only error a successful Result
	// carries. Its message is the empty string.
	None = Error{category: category.Failure, code: "", custom: "", hasCustom: true}

	// NullValue signals that a nil value was turned into a Result.
	NullValue = Error{category: category.Failure, code: code.Null.String()}
)

// New returns an error whose message is always resolved through the
// message registry.
func New(c category.Category, code string) Error {
	return Error{category: c, code: code}
}

// E is the general constructor: New plus options.
//
// Usage:
//
//	return dresult.E(category.Conflict, "User.Email.Taken",
//	    dresult.WithArgs(email),
//	)
func E(c category.Category, code string, opts ...Option) Error {
	e := New(c, code)
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Category returns the error category.
func (e Error) Category() category.Category { return e.category }

// Code returns the error code.
func (e Error) Code() string { return e.code }

// Args returns a copy of the positional message arguments.
func (e Error) Args() []string { return slices.Clone(e.args) }

// CustomMessage returns the custom message and whether one was set.
func (e Error) CustomMessage() (string, bool) { return e.custom, e.hasCustom }

// Message returns the display message in the default locale of the
// default registry. It never fails: unknown codes produce the registry's
// missing-localization marker and a template that cannot be formatted is
// returned as is.
func (e Error) Message() string {
	return e.Localize(message.Default(), message.DefaultLocale())
}

// MessageIn is Message for an explicit locale.
func (e Error) MessageIn(tag language.Tag) string {
	return e.Localize(message.Default(), tag)
}

// Localize resolves the message through r. A nil r means the default
// registry.
func (e Error) Localize(r apis.Resolver, tag language.Tag) string {
	tmpl := e.Template(r, tag)
	s, err := composite.Format(tmpl, e.args)
	if err != nil {
		return tmpl
	}
	return s
}

// Template returns the unformatted message: the custom message when set,
// otherwise what r returns for the code.
func (e Error) Template(r apis.Resolver, tag language.Tag) string {
	if e.hasCustom {
		return e.custom
	}
	if r == nil {
		r = message.Default()
	}
	return r.Resolve(e.code, tag)
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<category>:<code>: <message>
//
// or, when the code is empty:
//
//	<category>: <message>
func (e Error) Error() string {
	if e.code == "" {
		return fmt.Sprintf("%s: %s", e.category, e.Message())
	}
	return fmt.Sprintf("%s:%s: %s", e.category, e.code, e.Message())
}

// Equal reports whether e and other are interchangeable: same category,
// code, custom message (presence and text), arguments and causes.
func (e Error) Equal(other Error) bool {
	if e.category != other.category ||
		e.code != other.code ||
		e.hasCustom != other.hasCustom ||
		e.custom != other.custom ||
		e.aggregate != other.aggregate ||
		!slices.Equal(e.args, other.args) {
		return false
	}
	return slices.EqualFunc(e.errs, other.errs, Error.Equal)
}

// IsNone reports whether e is the None sentinel.
func (e Error) IsNone() bool { return e.Equal(None) }

// Is reports whether target is an Error with the same category and code.
// Messages and arguments are ignored, so
//
//	errors.Is(err, dresult.NullValue)
//
// matches any General.Null failure.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return e.category == t.category && e.code == t.code
	case *Error:
		return t != nil && e.category == t.category && e.code == t.code
	}
	return false
}

// Unwrap exposes the causes of a validation aggregate to errors.Is and
// errors.As. It returns nil for other errors.
func (e Error) Unwrap() []error {
	if len(e.errs) == 0 {
		return nil
	}
	out := make([]error, len(e.errs))
	for i, x := range e.errs {
		out[i] = x
	}
	return out
}

// WithMessage returns a copy of e with a custom message. When args are
// given they replace the message arguments.
func (e Error) WithMessage(msg string, args ...string) Error {
	e.custom, e.hasCustom = msg, true
	if len(args) > 0 {
		e.args = slices.Clone(args)
	}
	return e
}

// WithArgs returns a copy of e with replaced message arguments.
func (e Error) WithArgs(args ...string) Error {
	e.args = slices.Clone(args)
	return e
}

// AsResult returns a failed Result carrying e. It panics for None, like
// Fail.
func (e Error) AsResult() Result { return Fail(e) }

// ErrorCategory implements apis.CategorizedError.
func (e Error) ErrorCategory() category.Category { return e.category }

// ErrorCode implements apis.CategorizedError.
func (e Error) ErrorCode() string { return e.code }

// ErrorArgs implements apis.CategorizedError.
func (e Error) ErrorArgs() []string { return e.Args() }

// ErrorCauses implements apis.AggregateError. It returns nil unless e is a
// validation aggregate.
func (e Error) ErrorCauses() []apis.CategorizedError {
	if !e.aggregate {
		return nil
	}
	out := make([]apis.CategorizedError, len(e.errs))
	for i, x := range e.errs {
		out[i] = x
	}
	return out
}
