package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themecast/internal/logger"
	"github.com/alexisbeaulieu97/themecast/internal/theme"
	"github.com/alexisbeaulieu97/themecast/internal/view"
)

// Options tunes the root model.
type Options struct {
	Logger *logger.Logger
}

// frame is shared between the model copies Bubble Tea passes around and
// the subscription callback.
type frame struct {
	page    string
	changes int
}

// Model is the root view. It owns one registry from NewModel until quit.
type Model struct {
	ctx      context.Context
	registry *theme.Registry
	sub      *theme.Subscription
	button   view.Button
	frame    *frame
	keys     keyMap
	help     help.Model
	log      *logger.Logger
	unmount  bool
}

// NewModel mounts reg: it becomes reachable through the model's context, a
// single re-render subscription is registered and the first frame is drawn.
// The model takes ownership of reg and closes it when it quits or when the
// Program hosting it exits.
func NewModel(ctx context.Context, reg *theme.Registry, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = theme.WithRegistry(ctx, reg)

	button := view.NewButton(reg)
	f := &frame{page: view.Frame(ctx, button)}
	log := opts.Logger.Component("tui")

	sub := reg.Subscribe(func(b theme.StyleBundle) {
		f.page = view.Page(b, button)
		f.changes++
		log.WithFields(map[string]any{"dark": b.Dark, "changes": f.changes}).Debug("frame re-rendered")
	})

	return Model{
		ctx:      ctx,
		registry: reg,
		sub:      sub,
		button:   button,
		frame:    f,
		keys:     defaultKeyMap(),
		help:     help.New(),
		log:      log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Context returns the context carrying the mounted registry.
func (m Model) Context() context.Context {
	return m.ctx
}

// Changes returns how many theme changes the model has re-rendered.
func (m Model) Changes() int {
	return m.frame.changes
}

// Unmounted reports whether the model has released its registry.
func (m Model) Unmounted() bool {
	return m.unmount
}

func (m *Model) teardown() {
	if m.unmount {
		return
	}
	m.sub.Unsubscribe()
	m.registry.Close()
	m.unmount = true
	m.log.Debug("unmounted")
}
