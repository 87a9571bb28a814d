package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLayoutCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout <name>",
		Short: "Describe the fields of a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			meta, err := app.deliverables.LayoutMetadata(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s: %d fields\n", args[0], len(meta.Fields))
			for _, field := range meta.Fields {
				_, _ = fmt.Fprintf(out, "  %-60s %s/%s\n", field.Name, field.Type, field.Result)
			}
			return nil
		},
	}

	return cmd
}
