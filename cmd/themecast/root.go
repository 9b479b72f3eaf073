package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	app := &AppContext{}
	var watch bool

	cmd := &cobra.Command{
		Use:           "themecast",
		Short:         "Toggle a light/dark theme shared by every view in the tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, app, watch)
		},
	}

	cmd.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "", "Path to a YAML or TOML config file")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Initial theme: light, dark or auto")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Follow theme changes in the config file")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
