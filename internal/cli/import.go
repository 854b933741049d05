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

	"github.com/spf13/cobra"
)

func (a *App) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Copy the catalog files into the SQL message table",
		Long: `Create the message table if needed and upsert every template of the
configured catalog directories into it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.store == nil {
				return ErrNoDatabase
			}
			n, err := a.store.Import(cmd.Context(), a.catalog)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d message(s)\n", n)
			return err
		},
	}
}
