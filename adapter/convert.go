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

package adapter

import (
	"errors"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/category"
	"golang.org/x/text/language"
)

// ToView converts any error into a public ErrorView.
//
// A dresult.Error anywhere in the chain is resolved through r in locale tag
// (nil r means the default registry). Other apis.ViewProvider errors render
// themselves. Everything else becomes a "failure" view whose message is
// err.Error(). A nil error yields the zero view.
//
// No redaction is performed: the view exposes exactly what the error holds.
func ToView(err error, r apis.Resolver, tag language.Tag) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var de dresult.Error
	if errors.As(err, &de) {
		return de.View(r, tag)
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}
	return apis.ErrorView{
		Category: category.Failure.String(),
		Message:  err.Error(),
	}
}

// ToDescriptor describes e together with its resolved transport statuses.
//
// The descriptor is intended for catalogs, structured logs and message bus
// propagation. Message holds the unformatted template, so one descriptor
// stands for every occurrence of the code.
func ToDescriptor(e dresult.Error, m apis.Mapper, r apis.Resolver, tag language.Tag) apis.ErrorDescriptor {
	d := apis.ErrorDescriptor{
		Category: e.Category().String(),
		Code:     e.Code(),
		Message:  e.Template(r, tag),
	}
	if m != nil {
		st := m.Status(e.Category(), e.Code())
		d.HTTPStatus = st.HTTP
		d.GRPCCode = int(st.GRPC)
	}
	return d
}

// Details flattens the causes of a validation aggregate into field
// violations. By convention the first argument of a cause names the field.
// Non-aggregates yield nil.
func Details(e dresult.Error, r apis.Resolver, tag language.Tag) []apis.Detail {
	if !e.IsValidationError() {
		return nil
	}
	causes := e.Errors()
	out := make([]apis.Detail, 0, len(causes))
	for _, c := range causes {
		d := apis.Detail{
			Code:        c.Code(),
			Description: c.Localize(r, tag),
		}
		if args := c.Args(); len(args) > 0 {
			d.Field = args[0]
		}
		out = append(out, d)
	}
	return out
}
