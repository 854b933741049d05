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
	"fmt"
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type templates map[string]string

func (t templates) Resolve(code string, _ language.Tag) string {
	if s, ok := t[code]; ok {
		return s
	}
	return "?" + code
}

var testResolver = templates{
	"User.Email.Invalid": "{0} must be a valid email",
	"User.Name.Empty":    "{0} is required",
	"General.Validation": "invalid input",
}

func TestToView(t *testing.T) {
	agg := dresult.NewValidationError([]dresult.Error{
		dresult.Validation("User.Email.Invalid", dresult.WithArgs("email")),
		dresult.Validation("User.Name.Empty", dresult.WithArgs("name")),
	})

	got := ToView(fmt.Errorf("signup: %w", agg), testResolver, language.English)
	want := apis.ErrorView{
		Category: "validation",
		Code:     "General.Validation",
		Message:  "invalid input",
		Errors: []apis.ErrorView{
			{Category: "validation", Code: "User.Email.Invalid", Message: "email must be a valid email", Args: []string{"email"}},
			{Category: "validation", Code: "User.Name.Empty", Message: "name is required", Args: []string{"name"}},
		},
	}
	assert.Equal(t, want, got)
}

func TestToView_ForeignErrors(t *testing.T) {
	assert.Equal(t, apis.ErrorView{}, ToView(nil, nil, language.English))
	assert.Equal(t,
		apis.ErrorView{Category: "failure", Message: "boom"},
		ToView(errors.New("boom"), nil, language.English))
}

func TestToDescriptor(t *testing.T) {
	m := mapper.MustNew(mapper.WithHTTPPrefix("validation", "User.Email", 422))
	e := dresult.Validation("User.Email.Invalid", dresult.WithArgs("email"))

	got := ToDescriptor(e, m, testResolver, language.English)
	assert.Equal(t, apis.ErrorDescriptor{
		Category:   "validation",
		Code:       "User.Email.Invalid",
		HTTPStatus: 422,
		GRPCCode:   3, // InvalidArgument
		Message:    "{0} must be a valid email",
	}, got)

	noMapper := ToDescriptor(e, nil, testResolver, language.English)
	assert.Zero(t, noMapper.HTTPStatus)
	assert.Zero(t, noMapper.GRPCCode)
}

func TestDetails(t *testing.T) {
	assert.Nil(t, Details(dresult.NotFound("User.NotFound"), testResolver, language.English))

	agg := dresult.NewValidationError([]dresult.Error{
		dresult.Validation("User.Email.Invalid", dresult.WithArgs("email")),
		dresult.Conflict("User.Duplicate", dresult.WithDescription("already registered")),
	})
	got := Details(agg, testResolver, language.English)
	require.Len(t, got, 2)
	assert.Equal(t, apis.Detail{Field: "email", Code: "User.Email.Invalid", Description: "email must be a valid email"}, got[0])
	assert.Equal(t, apis.Detail{Code: "User.Duplicate", Description: "already registered"}, got[1])

	assert.Empty(t, Details(dresult.NewValidationError(nil), testResolver, language.English))
}
