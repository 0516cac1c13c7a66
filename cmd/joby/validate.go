package main

import (
	"fmt"

	"github.com/Pauuvl/JOBY/internal/inputs"
	"github.com/Pauuvl/JOBY/internal/schemas"
	embedded "github.com/Pauuvl/JOBY/schemas"
	"github.com/spf13/cobra"
)

func newValidateCmd(_ *rootOptions) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate <kind> <file>",
		Short: "Validate an input document",
		Long: fmt.Sprintf("Validates a JSON document against its schema and record rules. Kinds: %v. "+
			"With --schema, the file is checked against that schema file instead and kind is ignored.", embedded.Names),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, path := args[0], args[1]

			var err error
			if schemaPath != "" {
				err = schemas.ValidateJSON(schemaPath, path)
			} else {
				err = inputs.Validate(kind, path)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return err
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to a JSON Schema file to validate against")

	return cmd
}
