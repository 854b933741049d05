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
	"fmt"

	"dirpx.dev/dresult/category"
	"dirpx.dev/dresult/code"
	"github.com/spf13/cobra"
)

func (a *App) newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <category> [code]",
		Short: "Show the HTTP and gRPC status of a category and code",
		Long: `Show which status rule applies to a category and an optional code.
Rules come from the built-in category defaults and the "rules" section of
the config file.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := category.Parse(args[0])
			if err != nil {
				return err
			}
			var cd string
			if len(args) == 2 {
				parsed, err := code.Parse(args[1])
				if err != nil {
					return err
				}
				cd = parsed.String()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.mapper.Explain(c, cd))
			return err
		},
	}
}
