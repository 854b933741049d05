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

	"dirpx.dev/dresult/apis"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

// Schema returns the JSON schema of the error view, or of the error
// descriptor when descriptor is true.
func Schema(descriptor bool) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	var s *jsonschema.Schema
	if descriptor {
		s = reflector.Reflect(&apis.ErrorDescriptor{})
	} else {
		s = reflector.Reflect(&apis.ErrorView{})
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

func (a *App) newSchemaCmd() *cobra.Command {
	var descriptor bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the wire error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := Schema(descriptor)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().BoolVar(&descriptor, "descriptor", false, "Print the schema of the error descriptor instead")

	return cmd
}
