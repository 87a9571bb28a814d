package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Verify directory credentials and show the resulting identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			identity, err := app.directory.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Logged in as %s (%s)\n", identity.DisplayName, identity.Username)
			if identity.Department != "" {
				_, _ = fmt.Fprintf(out, "Department: %s\n", identity.Department)
			}
			_, _ = fmt.Fprintf(out, "Manager: %t  Designer: %t\n", identity.IsManager, identity.IsDesigner)
			if managed := identity.ManagedDepartments(); len(managed) > 0 {
				_, _ = fmt.Fprintf(out, "Manages: %s\n", strings.Join(managed, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "pass", envOrDefault("STUDIOHUB_LOGIN_PASSWORD", ""), "Directory password")

	return cmd
}
