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

package dresult_test

import (
	"errors"
	"fmt"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/message"
	"golang.org/x/text/language"
)

type exampleSource map[string]string

func (s exampleSource) Lookup(code string, _ language.Tag) (string, bool) {
	t, ok := s[code]
	return t, ok
}

func ExampleError_Message() {
	message.Register(exampleSource{"Example.Order.TooLarge": "Order {0} exceeds {1} items"})

	err := dresult.Validation("Example.Order.TooLarge", dresult.WithArgs("A-17", "100"))
	fmt.Println(err.Message())
	fmt.Println(err)
	// Output:
	// Order A-17 exceeds 100 items
	// validation:Example.Order.TooLarge: Order A-17 exceeds 100 items
}

func ExampleCreate() {
	var missing *int
	r := dresult.Create(missing)
	fmt.Println(r.IsFailure(), r.Err().Code())
	fmt.Println(r.Err().Message())
	// Output:
	// true General.Null
	// Null value was provided
}

func ExampleValidate() {
	r := dresult.Validate(
		dresult.Success(),
		dresult.Fail(dresult.BadRequest("Example.Name.Empty", dresult.WithDescription("name is required"))),
	)
	for _, e := range r.Err().Errors() {
		fmt.Println(e)
	}
	fmt.Println(errors.Is(r.AsError(), dresult.BadRequest("Example.Name.Empty")))
	// Output:
	// bad_request:Example.Name.Empty: name is required
	// true
}

func ExampleMap() {
	parsed := dresult.Ensure(dresult.SuccessOf(12), func(n int) bool { return n > 0 }, dresult.BadRequest("Example.Negative"))
	doubled := dresult.Map(parsed, func(n int) int { return n * 2 })
	fmt.Println(doubled)
	// Output:
	// success(24)
}
