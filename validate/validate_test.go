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
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/category"
	"dirpx.dev/dresult/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type signup struct {
	Email   string   `json:"email" validate:"required,email"`
	Age     int      `json:"age" validate:"gte=18"`
	Plan    string   `json:"plan" validate:"oneof=free pro"`
	Address address  `json:"address"`
	Secret  string   `json:"-" validate:"required"`
	Tags    []string `validate:"max=2"`
}

func valid() signup {
	return signup{Email: "a@b.c", Age: 30, Plan: "pro", Address: address{City: "Berlin"}, Secret: "s"}
}

func TestStruct_Success(t *testing.T) {
	assert.True(t, Struct(valid()).IsSuccess())

	r := StructOf(valid())
	require.True(t, r.IsSuccess())
	assert.Equal(t, "Berlin", r.Value().Address.City)
}

func TestStruct_Failures(t *testing.T) {
	in := valid()
	in.Email = "nope"
	in.Age = 12
	in.Address.City = ""
	in.Tags = []string{"a", "b", "c"}

	r := Struct(in)
	require.True(t, r.IsFailure())
	agg := r.Err()
	require.True(t, agg.IsValidationError())
	assert.Equal(t, category.Validation, agg.Category())

	type cause struct {
		code string
		args []string
	}
	var got []cause
	for _, e := range agg.Errors() {
		assert.Equal(t, category.Validation, e.Category())
		got = append(got, cause{e.Code(), e.Args()})
	}
	assert.Equal(t, []cause{
		{"Validation.Email", []string{"email", ""}},
		{"Validation.Gte", []string{"age", "18"}},
		{"Validation.Required", []string{"address.city", ""}},
		{"Validation.Max", []string{"Tags", "2"}},
	}, got)
}

func TestStructOf_Failure(t *testing.T) {
	in := valid()
	in.Plan = "gold"
	r := StructOf(in)
	require.True(t, r.IsFailure())
	_, ok := r.TryValue()
	assert.False(t, ok)
	require.Len(t, r.Err().Errors(), 1)
	assert.Equal(t, []string{"plan", "free pro"}, r.Err().Errors()[0].Args())
}

func TestFromError(t *testing.T) {
	assert.True(t, FromError(nil).IsNone())

	inv := FromError(validate.Struct(42))
	assert.Equal(t, category.BadRequest, inv.Category())
	assert.Equal(t, InvalidInputCode, inv.Code())
	_, custom := inv.CustomMessage()
	assert.False(t, custom)
	msgs := message.NewRegistry()
	msgs.Register(Messages())
	assert.Equal(t, "The input cannot be validated.", inv.Localize(msgs, language.English))
	assert.Equal(t, "Die Eingabe kann nicht geprüft werden.", inv.Localize(msgs, language.German))

	other := FromError(errors.New("boom"))
	assert.Equal(t, category.Failure, other.Category())
	assert.Equal(t, "boom", other.Message())
}

func TestTagCode(t *testing.T) {
	tests := map[string]string{
		"required":    "Validation.Required",
		"required_if": "Validation.RequiredIf",
		"e164":        "Validation.E164",
		"oneof":       "Validation.Oneof",
	}
	for tag, want := range tests {
		assert.Equal(t, want, TagCode(tag), tag)
	}
}

func TestMessages(t *testing.T) {
	c := Messages()
	msg, ok := c.Lookup("Validation.Gte", language.English)
	require.True(t, ok)
	assert.Equal(t, "{0} must be greater than or equal to {1}", msg)

	msg, ok = c.Lookup("Validation.Required", language.MustParse("de-AT"))
	require.True(t, ok)
	assert.Equal(t, "{0} ist erforderlich", msg)

	assert.Empty(t, c.Missing(language.German))
}

func TestRegisterMessages(t *testing.T) {
	RegisterMessages()
	RegisterMessages()

	in := valid()
	in.Age = 3
	cause := Struct(in).Err().Errors()[0]
	assert.Equal(t, "age must be greater than or equal to 18", cause.Message())
	assert.Equal(t, "age muss größer oder gleich 18 sein", cause.MessageIn(language.German))
	assert.True(t, errors.Is(Struct(in).AsError(), dresult.Validation("Validation.Gte")))
}
