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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// ErrLocaleName is returned when a catalog file name is not a locale tag.
var ErrLocaleName = errors.New("dresult: catalog file name is not a locale")

// LocaleOf derives the locale from a catalog file name: "de-CH.toml" is
// de-CH. Underscores are accepted as separators ("de_CH.yaml").
func LocaleOf(name string) (language.Tag, error) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	tag, err := language.Parse(base)
	if err != nil || tag.IsRoot() {
		return language.Und, fmt.Errorf("%w: %q", ErrLocaleName, name)
	}
	return tag, nil
}

// LoadFile reads a single catalog file and replaces the table of its locale.
// The format is taken from the extension.
func (c *Catalog) LoadFile(name string) error {
	tag, err := LocaleOf(name)
	if err != nil {
		return err
	}
	return c.loadLocale(readFile, tag, []string{name}, FormatAuto)
}

// LoadDir loads every catalog file of dir. See LoadFS.
func (c *Catalog) LoadDir(dir string, f Format) (int, error) {
	return c.LoadFS(os.DirFS(dir), ".", f)
}

// LoadFS loads every file of dir in fsys whose extension matches f and
// returns the number of files loaded.
//
// The files of one locale ("de.toml" and "de.yaml") are merged in name
// order, later files winning on duplicate codes, and the result replaces
// the table of that locale. The first error stops loading; locales loaded
// before it stay in place.
func (c *Catalog) LoadFS(fsys fs.FS, dir string, f Format) (int, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("read catalog dir %q: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, path.Join(dir, e.Name()))
		}
	}

	read := func(name string) ([]byte, error) { return fs.ReadFile(fsys, name) }
	n := 0
	for _, group := range groupByLocale(names, f) {
		if group.err != nil {
			return n, group.err
		}
		if err := c.loadLocale(read, group.tag, group.files, f); err != nil {
			return n, err
		}
		n += len(group.files)
	}
	return n, nil
}

type localeFiles struct {
	tag   language.Tag
	files []string
	err   error
}

// groupByLocale keeps the names f accepts and groups them by locale, in
// order of first appearance. A name that is not a locale yields a group
// carrying only the error.
func groupByLocale(names []string, f Format) []localeFiles {
	var out []localeFiles
	index := make(map[string]int)
	for _, name := range names {
		if !f.Accepts(name) {
			continue
		}
		tag, err := LocaleOf(name)
		if err != nil {
			out = append(out, localeFiles{err: err})
			continue
		}
		if i, ok := index[tag.String()]; ok {
			out[i].files = append(out[i].files, name)
			continue
		}
		index[tag.String()] = len(out)
		out = append(out, localeFiles{tag: tag, files: []string{name}})
	}
	return out
}

// loadLocale decodes files, merges them in order and replaces the table of
// tag with the result. Nothing changes when any file fails.
func (c *Catalog) loadLocale(read func(string) ([]byte, error), tag language.Tag, files []string, f Format) error {
	msgs := make(map[string]string)
	for _, name := range files {
		ff, err := formatOf(name, f)
		if err != nil {
			return err
		}
		data, err := read(name)
		if err != nil {
			return fmt.Errorf("read catalog %q: %w", name, err)
		}
		decoded, err := Decode(data, ff)
		if err != nil {
			return fmt.Errorf("catalog %q: %w", name, err)
		}
		for k, v := range decoded {
			msgs[k] = v
		}
	}
	c.Replace(tag, msgs)
	return nil
}

func readFile(name string) ([]byte, error) { return os.ReadFile(name) }
