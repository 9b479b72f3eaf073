package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themecast/internal/config"
	"github.com/alexisbeaulieu97/themecast/internal/theme"
	"github.com/alexisbeaulieu97/themecast/internal/tui"
)

func runInteractive(cmd *cobra.Command, app *AppContext, watch bool) error {
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		app.Logger.Debug("stdout is not a terminal, rendering once")
		return renderFrames(cmd.Context(), out, app, 0)
	}

	renderer := outputRenderer(out)
	initial, err := app.selector(out, renderer)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reg := theme.NewRegistry(theme.Options{
		Initial: initial,
		Table:   theme.NewTable(renderer, app.Config.ThemePalettes()),
		Logger:  app.Logger,
	})
	defer reg.Close()

	model := tui.NewModel(ctx, reg, tui.Options{Logger: app.Logger})
	program := tui.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(out))

	if watch && app.ConfigPath != "" {
		go func() {
			err := config.Watch(ctx, app.ConfigPath, app.Logger, func(cfg *config.Config) {
				sel, err := cfg.Selector(nil)
				if err != nil || cfg.Theme == config.ThemeAuto {
					return
				}
				program.Send(tui.SelectMsg{Selector: sel})
			})
			if err != nil {
				app.Logger.Error(err, "config watch stopped")
			}
		}()
	}

	app.Logger.WithFields(map[string]any{"theme": initial.String()}).Debug("launching tui")
	return program.Run()
}
