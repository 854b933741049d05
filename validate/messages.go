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
	"embed"
	"sync"

	"dirpx.dev/dresult/catalog"
	"dirpx.dev/dresult/message"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messagesFS embed.FS

// Messages returns a new catalog with templates for the common validator
// tags, in English and German.
func Messages() *catalog.Catalog {
	c := catalog.New(language.English)
	if _, err := c.LoadFS(messagesFS, "messages", catalog.FormatTOML); err != nil {
		panic("dresult: corrupt validation catalog: " + err.Error())
	}
	return c
}

var registerOnce sync.Once

// RegisterMessages registers Messages() with the default message registry.
// Calls after the first are no-ops.
func RegisterMessages() {
	registerOnce.Do(func() { message.Register(Messages()) })
}
