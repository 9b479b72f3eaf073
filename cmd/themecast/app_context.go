package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themecast/internal/config"
	"github.com/alexisbeaulieu97/themecast/internal/logger"
	"github.com/alexisbeaulieu97/themecast/internal/theme"
)

// AppContext bundles the state shared by every command once flags and the
// config file have been read.
type AppContext struct {
	ConfigPath string
	Theme      string
	Verbose    bool

	Config *config.Config
	Logger *logger.Logger
}

// load reads the config file, applies flag overrides and builds the logger.
func (a *AppContext) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	if a.Theme != "" {
		cfg.Theme = a.Theme
	}
	if a.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.Config = cfg
	a.Logger = log
	return nil
}

// outputRenderer returns a lipgloss renderer bound to out. Output that is
// not a terminal gets no colours.
func outputRenderer(out io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if !isTerminal(out) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// selector resolves the initial variant. "auto" asks the terminal behind
// out for its background; anything else resolves to light.
func (a *AppContext) selector(out io.Writer, r *lipgloss.Renderer) (theme.Selector, error) {
	return a.Config.Selector(func() bool {
		return isTerminal(out) && r.HasDarkBackground()
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
