package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	renderadapter "studiohub/internal/adapters/render/deliverables"
	"studiohub/internal/domain"
)

func newDeliverablesCmd(app *app) *cobra.Command {
	var (
		view        string
		departments []string
		people      []string
		statuses    []string
		groupBy     string
		page        int
		pageSize    int
		loginUser   string
		loginPass   string
	)

	cmd := &cobra.Command{
		Use:   "deliverables",
		Short: "List deliverables matching the current filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.ready(); err != nil {
				return err
			}

			saved, err := app.filters.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load saved filters: %w", err)
			}

			// Explicit flags win; saved defaults fill the gaps.
			if !cmd.Flags().Changed("view") && saved.View != "" {
				view = string(saved.View)
			}
			if !cmd.Flags().Changed("departments") {
				departments = saved.Departments
			}
			if !cmd.Flags().Changed("people") {
				people = saved.People
			}
			if !cmd.Flags().Changed("statuses") {
				statuses = saved.Statuses
			}
			if !cmd.Flags().Changed("group-by") && saved.GroupBy != "" {
				groupBy = string(saved.GroupBy)
			}

			caller, err := resolveCaller(cmd, app, loginUser, loginPass)
			if err != nil {
				return err
			}

			filter := domain.FilterContext{
				View:        domain.ViewMode(view),
				Departments: departments,
				People:      people,
				Statuses:    statuses,
				Caller:      caller,
			}

			result, summary, err := app.deliverables.ListDeliverables(cmd.Context(), filter, page, pageSize)
			if err != nil {
				return fmt.Errorf("list deliverables: %w", err)
			}

			groups, _ := app.deliverables.GroupAndSummarize(result.Items, domain.GroupBy(groupBy))
			output := renderadapter.Render(groups, summary, result, renderadapter.RenderOptions{Now: app.now()})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&view, "view", string(domain.ViewMine), "View mode: mine, department, or all")
	cmd.Flags().StringSliceVar(&departments, "departments", nil, "Departments to include (view=all)")
	cmd.Flags().StringSliceVar(&people, "people", nil, "People to include")
	cmd.Flags().StringSliceVar(&statuses, "statuses", nil, `Statuses to include (default "In Progress","Overdue")`)
	cmd.Flags().StringVar(&groupBy, "group-by", string(domain.GroupByStatus), "Group output by status or designer")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 200, "Records per page")
	addLoginFlags(cmd, &loginUser, &loginPass)

	return cmd
}

func addLoginFlags(cmd *cobra.Command, user, pass *string) {
	cmd.Flags().StringVar(user, "user", envOrDefault("STUDIOHUB_LOGIN_USER", ""), "Directory username")
	cmd.Flags().StringVar(pass, "pass", envOrDefault("STUDIOHUB_LOGIN_PASSWORD", ""), "Directory password")
}

// resolveCaller verifies directory credentials when supplied; without
// them queries run anonymously, which only suits status-wide views.
func resolveCaller(cmd *cobra.Command, app *app, user, pass string) (domain.CallerIdentity, error) {
	if user == "" {
		return domain.CallerIdentity{}, nil
	}

	caller, err := app.directory.Login(cmd.Context(), user, pass)
	if err != nil {
		return domain.CallerIdentity{}, fmt.Errorf("login as %s: %w", user, err)
	}
	return caller, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
