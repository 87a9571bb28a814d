package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecordCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <id>",
		Short: "Fetch one deliverable by record id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			item, err := app.deliverables.GetDeliverable(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s  %s\n", item.ID, item.Title)
			if !item.DueDate.IsZero() {
				_, _ = fmt.Fprintf(out, "Due: %s\n", item.DueDate.Format("01/02/2006"))
			}
			_, _ = fmt.Fprintf(out, "Status: %s\n", item.EffectiveStatus())
			if item.ProjectName != "" {
				_, _ = fmt.Fprintf(out, "Project: %s\n", item.ProjectName)
			}
			if item.ClientName != "" {
				_, _ = fmt.Fprintf(out, "Client: %s\n", item.ClientName)
			}
			if item.Assignee != "" {
				_, _ = fmt.Fprintf(out, "Assignee: %s (%s)\n", item.Assignee, item.AssigneeDepartment)
			}
			if item.Notes != "" {
				_, _ = fmt.Fprintf(out, "Notes: %s\n", item.Notes)
			}
			return nil
		},
	}

	return cmd
}
