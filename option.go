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

// Option is a functional option for constructing an Error with E or one
// of the category factories.
type Option func(Error) Error

// WithMessage sets a custom message and, when given, its arguments.
func WithMessage(msg string, args ...string) Option {
	return func(e Error) Error { return e.WithMessage(msg, args...) }
}

// WithDescription sets a custom message without touching the arguments.
func WithDescription(msg string) Option {
	return func(e Error) Error { return e.WithMessage(msg) }
}

// WithArgs sets the message arguments; the message itself still comes from
// the registry unless a custom message is set too.
func WithArgs(args ...string) Option {
	return func(e Error) Error { return e.WithArgs(args...) }
}
