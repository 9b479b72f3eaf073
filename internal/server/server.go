// Package server hosts the theme TUI over SSH. Every session mounts its own
// registry, so toggling in one session never reaches another.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bts "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/alexisbeaulieu97/themecast/internal/config"
	"github.com/alexisbeaulieu97/themecast/internal/logger"
	"github.com/alexisbeaulieu97/themecast/internal/theme"
	"github.com/alexisbeaulieu97/themecast/internal/tui"
)

// Server wraps a Wish SSH server.
type Server struct {
	server *ssh.Server
	cfg    config.Config
	log    *logger.Logger
}

// New creates an SSH server for cfg.Serve.
func New(cfg config.Config, log *logger.Logger) (*Server, error) {
	if dir := filepath.Dir(cfg.Serve.HostKeyPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create host key directory: %w", err)
		}
	}

	log = log.Component("ssh")
	s, err := wish.NewServer(
		wish.WithAddress(cfg.Serve.Address),
		wish.WithHostKeyPath(cfg.Serve.HostKeyPath),
		wish.WithMiddleware(
			bts.Middleware(NewHandler(cfg, log)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}

	return &Server{server: s, cfg: cfg, log: log}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe serves until ctx is done, then shuts the server down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(map[string]any{"address": s.server.Addr}).Info("ssh server listening")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("ssh server shutting down")
		if err := s.server.Shutdown(context.Background()); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Serve serves on an existing listener.
func (s *Server) Serve(l net.Listener) error {
	return s.server.Serve(l)
}

// Close stops the SSH server.
func (s *Server) Close() error {
	return s.server.Close()
}

// NewHandler returns a Bubble Tea handler that mounts a fresh registry for
// each session, styled for that session's terminal.
func NewHandler(cfg config.Config, log *logger.Logger) bts.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		sessLog := log.WithFields(map[string]any{"user": sess.User(), "remote": sess.RemoteAddr().String()})
		model, _ := mountSession(sess.Context(), bts.MakeRenderer(sess), cfg, sessLog)
		opts := append([]tea.ProgramOption{tea.WithAltScreen()}, bts.MakeOptions(sess)...)
		return model, opts
	}
}

// mountSession builds the registry and root model for one session. The
// registry is closed once ctx is done, since a session can end without its
// model quitting.
func mountSession(ctx context.Context, renderer *lipgloss.Renderer, cfg config.Config, log *logger.Logger) (tui.Model, *theme.Registry) {
	initial, err := cfg.Selector(renderer.HasDarkBackground)
	if err != nil {
		initial = theme.Light
	}

	reg := theme.NewRegistry(theme.Options{
		Initial: initial,
		Table:   theme.NewTable(renderer, cfg.ThemePalettes()),
		Logger:  log,
	})
	go func() {
		<-ctx.Done()
		reg.Close()
	}()

	return tui.NewModel(ctx, reg, tui.Options{Logger: log}), reg
}
