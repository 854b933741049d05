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
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/message"
	"golang.org/x/text/language"
)

var _ apis.ViewProvider = Error{}

// ErrorView returns the transport view of e in the default locale of the
// default registry.
func (e Error) ErrorView() apis.ErrorView {
	return e.View(message.Default(), message.DefaultLocale())
}

// View resolves e and its causes through r in locale tag. A nil r means
// the default registry.
func (e Error) View(r apis.Resolver, tag language.Tag) apis.ErrorView {
	if r == nil {
		r = message.Default()
	}
	v := apis.ErrorView{
		Category: e.category.String(),
		Code:     e.code,
		Message:  e.Localize(r, tag),
		Args:     e.Args(),
	}
	if e.aggregate {
		v.Errors = make([]apis.ErrorView, len(e.errs))
		for i, c := range e.errs {
			v.Errors[i] = c.View(r, tag)
		}
	}
	return v
}
