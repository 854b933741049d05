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
	"encoding/json"
	"fmt"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/category"
	"dirpx.dev/dresult/code"
	"github.com/spf13/cobra"
)

func (a *App) newResolveCmd() *cobra.Command {
	var (
		cat    string
		args   []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <code>",
		Short: "Resolve a code to its localized message",
		Long: `Resolve a code through the configured message sources and print the
formatted message. Positional arguments fill the {0}, {1}, ... holes of the
template. With --json the full error view is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			c, err := category.Parse(cat)
			if err != nil {
				return err
			}
			cd, err := code.Parse(pos[0])
			if err != nil {
				return err
			}
			e := dresult.E(c, cd.String(), dresult.WithArgs(args...))
			return a.printResolved(cmd, e, asJSON)
		},
	}

	cmd.Flags().StringVar(&cat, "category", category.Failure.String(), "Error category")
	cmd.Flags().StringArrayVar(&args, "arg", nil, "Message argument (repeatable, in order)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the error view as JSON")

	return cmd
}

func (a *App) printResolved(cmd *cobra.Command, e dresult.Error, asJSON bool) error {
	out := cmd.OutOrStdout()
	if !asJSON {
		_, err := fmt.Fprintln(out, e.Localize(a.registry, a.locale))
		return err
	}
	data, err := json.MarshalIndent(e.View(a.registry, a.locale), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal view: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
