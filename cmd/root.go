package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "studiohub",
		Short:         "StudioHub deliverables client: query and summarize studio work from the terminal",
		Long:          "studiohub talks to a StudioHub record database, compiles filter selections into store queries, and prints normalized deliverables grouped by status or designer.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			app.shutdown(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&app.demo, "demo", false, "Use the built-in demo dataset instead of a live server")
	rootCmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDeliverablesCmd(app),
		newLoginCmd(app),
		newPeopleCmd(app),
		newRecordCmd(app),
		newLayoutCmd(app),
		newFiltersCmd(app),
	)

	return rootCmd
}
