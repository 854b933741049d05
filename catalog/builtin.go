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

package catalog

import (
	"embed"

	"golang.org/x/text/language"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// Builtin returns a new catalog holding the templates every application
// needs: General.Null and General.Validation, in English and German.
// English is the default locale.
func Builtin() *Catalog {
	c := New(language.English)
	if _, err := c.LoadFS(builtinFS, "builtin", FormatTOML); err != nil {
		panic("dresult: corrupt builtin catalog: " + err.Error())
	}
	return c
}
