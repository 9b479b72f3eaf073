package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themecast/internal/config"
	"github.com/alexisbeaulieu97/themecast/internal/server"
)

func newServeCmd(app *AppContext) *cobra.Command {
	var (
		address string
		hostKey string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the theme TUI over SSH, one registry per session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *app.Config
			if address != "" {
				cfg.Serve.Address = address
			}
			if hostKey != "" {
				cfg.Serve.HostKeyPath = hostKey
			}
			if err := config.Validate(&cfg); err != nil {
				return err
			}

			srv, err := server.New(cfg, app.Logger)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address (host:port)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to the SSH host key")

	return cmd
}
