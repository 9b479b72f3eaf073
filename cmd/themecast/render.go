package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themecast/internal/theme"
	"github.com/alexisbeaulieu97/themecast/internal/view"
)

func newRenderCmd(app *AppContext) *cobra.Command {
	var toggles int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page, then once more after each toggle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if toggles < 0 {
				return fmt.Errorf("--toggles must not be negative, got %d", toggles)
			}
			return renderFrames(cmd.Context(), cmd.OutOrStdout(), app, toggles)
		},
	}

	cmd.Flags().IntVarP(&toggles, "toggles", "n", 0, "Number of times to press the toggle button")

	return cmd
}

// renderFrames mounts a registry for out, prints the first frame and lets a
// subscriber print one frame per toggle.
func renderFrames(ctx context.Context, out io.Writer, app *AppContext, toggles int) error {
	renderer := outputRenderer(out)
	initial, err := app.selector(out, renderer)
	if err != nil {
		return err
	}

	reg := theme.NewRegistry(theme.Options{
		Initial: initial,
		Table:   theme.NewTable(renderer, app.Config.ThemePalettes()),
		Logger:  app.Logger,
	})
	defer reg.Close()
	ctx = theme.WithRegistry(ctx, reg)

	button := view.NewButton(reg)

	var writeErr error
	emit := func(frame string) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintln(out, frame)
	}

	emit(view.Frame(ctx, button))
	sub := reg.Subscribe(func(b theme.StyleBundle) {
		emit(view.Page(b, button))
	})
	defer sub.Unsubscribe()

	for i := 0; i < toggles && writeErr == nil; i++ {
		button.Press()
	}
	return writeErr
}
