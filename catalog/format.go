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
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of catalog files.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatTOML reads .toml files.
	FormatTOML Format = "toml"
	// FormatYAML reads .yaml and .yml files.
	FormatYAML Format = "yaml"
)

var (
	// ErrCatalogFormat is returned for files whose content is not a
	// (nested) table of string templates.
	ErrCatalogFormat = errors.New("dresult: invalid catalog content")
	// ErrUnsupportedFormat is returned for unknown formats and extensions.
	ErrUnsupportedFormat = errors.New("dresult: unsupported catalog format")
)

// ParseFormat parses "auto", "toml", "yaml" or "yml" (case-insensitive).
// The empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// extensions returns the file extensions f accepts.
func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Accepts reports whether a file name has an extension f reads.
func (f Format) Accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range f.extensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// formatOf resolves FormatAuto against the extension of name.
func formatOf(name string, f Format) (Format, error) {
	if f != FormatAuto && f != "" {
		return f, nil
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

// Decode parses catalog content and flattens nested tables into dotted
// codes.
func Decode(data []byte, f Format) (map[string]string, error) {
	raw := make(map[string]any)
	switch f {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogFormat, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	out := make(map[string]string)
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode renders msgs as nested TOML tables, the inverse of Decode. Codes
// that are both a template and a table prefix (e.g. "A" and "A.B") cannot
// be represented and return ErrCatalogFormat.
func Encode(msgs map[string]string) ([]byte, error) {
	root := make(map[string]any)
	codes := make([]string, 0, len(msgs))
	for k := range msgs {
		codes = append(codes, k)
	}
	sort.Strings(codes)

	for _, c := range codes {
		segs := strings.Split(c, ".")
		node := root
		for _, s := range segs[:len(segs)-1] {
			next, ok := node[s]
			if !ok {
				m := make(map[string]any)
				node[s] = m
				node = m
				continue
			}
			m, ok := next.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %q is both a template and a table", ErrCatalogFormat, s)
			}
			node = m
		}
		leaf := segs[len(segs)-1]
		if _, ok := node[leaf]; ok {
			return nil, fmt.Errorf("%w: %q is both a template and a table", ErrCatalogFormat, c)
		}
		node[leaf] = msgs[c]
	}

	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(root); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func flatten(prefix string, v any, out map[string]string) error {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}

	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if err := flatten(join(k), child, out); err != nil {
				return err
			}
		}
	case map[any]any:
		for k, child := range t {
			if err := flatten(join(fmt.Sprint(k)), child, out); err != nil {
				return err
			}
		}
	case string:
		out[prefix] = t
	case bool, int, int64, uint64, float64:
		out[prefix] = fmt.Sprint(t)
	case nil:
		return fmt.Errorf("%w: %q has no value", ErrCatalogFormat, prefix)
	default:
		return fmt.Errorf("%w: %q has unsupported type %T", ErrCatalogFormat, prefix, v)
	}
	return nil
}
