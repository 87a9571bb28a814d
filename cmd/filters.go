package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studiohub/internal/domain"
)

func newFiltersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage saved filter defaults",
	}

	cmd.AddCommand(newFiltersShowCmd(app), newFiltersSaveCmd(app), newFiltersResetCmd(app))

	return cmd
}

func newFiltersShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved filter defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved, err := app.filters.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "view: %s\n", saved.View)
			_, _ = fmt.Fprintf(out, "departments: %s\n", joinOrNone(saved.Departments))
			_, _ = fmt.Fprintf(out, "people: %s\n", joinOrNone(saved.People))
			_, _ = fmt.Fprintf(out, "statuses: %s\n", joinOrNone(saved.Statuses))
			_, _ = fmt.Fprintf(out, "group-by: %s\n", saved.GroupBy)
			return nil
		},
	}
}

func newFiltersSaveCmd(app *app) *cobra.Command {
	var (
		view        string
		departments []string
		people      []string
		statuses    []string
		groupBy     string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save filter defaults for future runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaults := domain.FilterDefaults{
				View:        domain.ViewMode(view),
				Departments: departments,
				People:      people,
				Statuses:    statuses,
				GroupBy:     domain.GroupBy(groupBy),
			}
			if err := app.filters.Save(cmd.Context(), defaults); err != nil {
				return fmt.Errorf("save filters: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return err
		},
	}

	cmd.Flags().StringVar(&view, "view", string(domain.ViewMine), "View mode: mine, department, or all")
	cmd.Flags().StringSliceVar(&departments, "departments", nil, "Departments to include")
	cmd.Flags().StringSliceVar(&people, "people", nil, "People to include")
	cmd.Flags().StringSliceVar(&statuses, "statuses", nil, "Statuses to include")
	cmd.Flags().StringVar(&groupBy, "group-by", string(domain.GroupByStatus), "Group output by status or designer")

	return cmd
}

func newFiltersResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the saved filter defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.filters.Reset(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Reset.")
			return err
		},
	}
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
