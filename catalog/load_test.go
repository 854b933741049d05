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
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadDir_Auto(t *testing.T) {
	c := New(language.English)
	n, err := c.LoadDir(filepath.Join("testdata", "locales"), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, []string{"de", "de-CH", "en"}, tagStrings(c.Locales()))
	assert.Equal(t, []string{"Order.Empty", "User.Email.Invalid", "User.Email.Taken", "User.NotFound"}, c.Codes(language.English))

	tests := []struct {
		code string
		tag  language.Tag
		want string
	}{
		{"User.Email.Taken", swissGerman, "Die E-Mail-Adresse {0} ist bereits vergeben"},
		{"User.NotFound", swissGerman, "Benutzer {0} wurde nicht gefunden"},
		{"Order.Empty", swissGerman, "An order needs at least one line"},
		{"User.Email.Invalid", language.English, "'{0}' is not a valid e-mail address"},
	}
	for _, tt := range tests {
		got, ok := c.Lookup(tt.code, tt.tag)
		require.True(t, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}
}

func TestLoadDir_FormatFilter(t *testing.T) {
	c := New(language.English)
	n, err := c.LoadDir(filepath.Join("testdata", "locales"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"de"}, tagStrings(c.Locales()))
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"msgs/en.yml":    {Data: []byte("A:\n  B: ab\n  C: 3\n")},
		"msgs/fr.toml":   {Data: []byte("[A]\nB = \"ab fr\"\n")},
		"msgs/README.md": {Data: []byte("# ignored")},
	}
	c := New(language.English)
	n, err := c.LoadFS(fsys, "msgs", FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, _ := c.Lookup("A.C", language.English)
	assert.Equal(t, "3", got, "scalars are rendered as text")
	got, _ = c.Lookup("A.B", language.French)
	assert.Equal(t, "ab fr", got)
}

func TestLoadFS_SameLocaleMerged(t *testing.T) {
	fsys := fstest.MapFS{
		"d/de.toml": {Data: []byte("[A]\nX = \"x toml\"\nZ = \"z toml\"\n")},
		"d/de.yaml": {Data: []byte("B:\n  Y: y yaml\nA:\n  Z: z yaml\n")},
	}
	c := New(language.English)
	n, err := c.LoadFS(fsys, "d", FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, map[string]string{
		"A.X": "x toml",
		"A.Z": "z yaml",
		"B.Y": "y yaml",
	}, c.Messages(language.German))
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want error
	}{
		{"bad toml", fstest.MapFS{"d/en.toml": {Data: []byte("= nope")}}, ErrCatalogFormat},
		{"list value", fstest.MapFS{"d/en.yaml": {Data: []byte("A: [1, 2]\n")}}, ErrCatalogFormat},
		{"null value", fstest.MapFS{"d/en.yaml": {Data: []byte("A:\n")}}, ErrCatalogFormat},
		{"bad locale", fstest.MapFS{"d/not a locale.toml": {Data: []byte("A = \"a\"\n")}}, ErrLocaleName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(language.English).LoadFS(tt.fsys, "d", FormatAuto)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pt_BR.toml")
	require.NoError(t, os.WriteFile(p, []byte("X = \"xis\"\n"), 0o644))

	c := New(language.English)
	require.NoError(t, c.LoadFile(p))

	got, ok := c.Lookup("X", language.BrazilianPortuguese)
	require.True(t, ok)
	assert.Equal(t, "xis", got)

	require.ErrorIs(t, c.LoadFile(filepath.Join(dir, "en.ini")), ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatAuto, "AUTO": FormatAuto, "toml": FormatTOML, "yml": FormatYAML, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeDecode(t *testing.T) {
	in := map[string]string{
		"General.Null":       "Null value was provided",
		"General.Validation": "invalid",
		"Top":                "top level",
	}
	data, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(data, FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = Encode(map[string]string{"A": "leaf", "A.B": "child"})
	assert.ErrorIs(t, err, ErrCatalogFormat)
}
