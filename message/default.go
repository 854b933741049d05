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

package message

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/catalog"
	"golang.org/x/text/language"
)

var (
	defaultOnce sync.Once
	defaultReg  *Registry

	defaultLocale atomic.Pointer[language.Tag]
)

// Default returns the process-wide registry. It is created on first use and
// starts with the builtin catalog registered.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		defaultReg.Register(catalog.Builtin())
	})
	return defaultReg
}

// Register appends src to the default registry.
func Register(src apis.Source) {
	Default().Register(src)
}

// Resolve resolves code through the default registry in DefaultLocale.
func Resolve(code string) string {
	return Default().Resolve(code, DefaultLocale())
}

// ResolveIn resolves code through the default registry in tag.
func ResolveIn(code string, tag language.Tag) string {
	return Default().Resolve(code, tag)
}

// DefaultLocale returns the locale used when no locale is given explicitly.
// It starts as English.
func DefaultLocale() language.Tag {
	if t := defaultLocale.Load(); t != nil {
		return *t
	}
	return language.English
}

// SetDefaultLocale changes the locale returned by DefaultLocale.
func SetDefaultLocale(tag language.Tag) {
	defaultLocale.Store(&tag)
}
