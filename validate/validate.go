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

package validate

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/dresult"
	"github.com/go-playground/validator/v10"
)

// CodePrefix is the first segment of every code produced by FromError.
const CodePrefix = "Validation"

// InvalidInputCode is the code of the error returned when the validator
// cannot inspect its input (nil, not a struct).
const InvalidInputCode = CodePrefix + ".InvalidInput"

// validate is a package-level singleton; building a validator is expensive.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names, so field paths match what clients sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return v
}

// Validator returns the shared validator, e.g. to register custom rules.
// Registration is not safe to run concurrently with validation.
func Validator() *validator.Validate { return validate }

// Struct validates v and returns Success or a failure carrying a
// ValidationError with one cause per failed rule, in field order.
func Struct(v any) dresult.Result {
	if err := validate.Struct(v); err != nil {
		return FromError(err).AsResult()
	}
	return dresult.Success()
}

// StructOf is Struct for typed results: the success carries v.
func StructOf[T any](v T) dresult.ResultOf[T] {
	if err := validate.Struct(v); err != nil {
		return dresult.ValidationFailure[T](FromError(err))
	}
	return dresult.SuccessOf(v)
}

// FromError converts a validator error.
//
//   - validator.ValidationErrors becomes a ValidationError aggregate. Each
//     FieldError becomes Validation("Validation.<Tag>") with the arguments
//     [namespace, param], so templates read "{0} must be at least {1}".
//   - *validator.InvalidValidationError becomes a BadRequest with code
//     InvalidInputCode.
//   - Any other non-nil error becomes a Failure carrying its text.
//
// A nil error yields dresult.None.
func FromError(err error) dresult.Error {
	if err == nil {
		return dresult.None
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		causes := make([]dresult.Error, len(ves))
		for i, fe := range ves {
			causes[i] = fromFieldError(fe)
		}
		return dresult.NewValidationError(causes)
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return dresult.BadRequest(InvalidInputCode)
	}
	return dresult.Failure(CodePrefix+".Failed", dresult.WithDescription(err.Error()))
}

func fromFieldError(fe validator.FieldError) dresult.Error {
	return dresult.Validation(TagCode(fe.Tag()), dresult.WithArgs(fieldPath(fe.Namespace()), fe.Param()))
}

// TagCode returns the code of a validator tag: "required" becomes
// "Validation.Required", "required_if" becomes "Validation.RequiredIf".
func TagCode(tag string) string {
	var b strings.Builder
	b.WriteString(CodePrefix)
	b.WriteByte('.')
	for _, part := range strings.FieldsFunc(tag, func(r rune) bool { return r == '_' || r == '-' }) {
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// fieldPath drops the top-level struct name: "User.address.city" becomes
// "address.city".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
