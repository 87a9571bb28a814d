package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPeopleCmd(app *app) *cobra.Command {
	var (
		loginUser string
		loginPass string
	)

	cmd := &cobra.Command{
		Use:   "people",
		Short: "Show departments and staff available in manager filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			caller, err := resolveCaller(cmd, app, loginUser, loginPass)
			if err != nil {
				return err
			}

			data, err := app.directory.ManagerData(cmd.Context(), caller)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Departments: %s\n", strings.Join(data.Departments, ", "))
			_, _ = fmt.Fprintf(out, "Staff (%d):\n", len(data.Employees))
			for _, employee := range data.Employees {
				_, _ = fmt.Fprintf(out, "  %s  %s (%s)\n", employee.ID, employee.Name, employee.Department)
			}
			return nil
		},
	}

	addLoginFlags(cmd, &loginUser, &loginPass)

	return cmd
}
