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

package cli

import (
	"errors"
	"fmt"
	"io"

	"dirpx.dev/dresult/catalog"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/internal/composite"
	"dirpx.dev/dresult/validate"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ErrLintFailed is returned by the lint command when it reports problems.
var ErrLintFailed = errors.New("catalog lint failed")

// Problem is one lint finding.
type Problem struct {
	Locale string
	Code   string
	Issue  string
}

// Lint checks every locale of c: codes must be well-formed, templates must
// parse, and every code of the default locale must be translated.
func Lint(c *catalog.Catalog) []Problem {
	var out []Problem
	for _, tag := range c.Locales() {
		loc := tag.String()
		msgs := c.Messages(tag)
		for _, cd := range c.Codes(tag) {
			if err := code.Validate(code.Code(cd)); err != nil {
				out = append(out, Problem{loc, cd, "invalid code: " + err.Error()})
			}
			if _, err := composite.Holes(msgs[cd]); err != nil {
				out = append(out, Problem{loc, cd, "invalid template: " + err.Error()})
			}
		}
		for _, cd := range c.Missing(tag) {
			out = append(out, Problem{loc, cd, "missing translation"})
		}
	}
	return out
}

func (a *App) newLintCmd() *cobra.Command {
	var bundled bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the catalog files for bad codes, templates and gaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := []*catalog.Catalog{a.catalog}
			if bundled {
				cats = append(cats, catalog.Builtin(), validate.Messages())
			}
			var problems []Problem
			for _, c := range cats {
				problems = append(problems, Lint(c)...)
			}

			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				_, err := fmt.Fprintln(out, "no problems found")
				return err
			}
			if err := renderProblems(out, problems); err != nil {
				return err
			}
			return fmt.Errorf("%w: %d problem(s)", ErrLintFailed, len(problems))
		},
	}

	cmd.Flags().BoolVar(&bundled, "bundled", false, "Also lint the catalogs shipped with dresult")

	return cmd
}

func renderProblems(w io.Writer, problems []Problem) error {
	data := pterm.TableData{{"Locale", "Code", "Problem"}}
	for _, p := range problems {
		data = append(data, []string{p.Locale, p.Code, p.Issue})
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		WithWriter(w).
		Render()
}
