// Package view renders the page regions from a theme.StyleBundle. Every
// function here is a pure function of the bundle it is given.
package view

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themecast/internal/theme"
)

const (
	lightTitle   = "We're safe, the sun is up!"
	darkTitle    = "Are you afraid of the dark!"
	lightContent = "This is light content."
	darkContent  = "This is Dark Content."
)

// Title renders the page heading.
func Title(b theme.StyleBundle) string {
	text := lightTitle
	if b.Dark {
		text = darkTitle
	}
	return b.Title.Render(text)
}

// Content renders the body copy.
func Content(b theme.StyleBundle) string {
	text := lightContent
	if b.Dark {
		text = darkContent
	}
	return b.Content.Render(text)
}

// Page lays out the button above the title and content, inside the body
// region.
func Page(b theme.StyleBundle, button Button) string {
	inner := lipgloss.JoinVertical(lipgloss.Left,
		button.Render(b),
		b.Content.Render(""),
		Title(b),
		Content(b),
	)
	return b.Body.Render(inner)
}

// Frame renders the page from the registry mounted in ctx. It panics with
// theme.ErrNotMounted when ctx carries no registry.
func Frame(ctx context.Context, button Button) string {
	return Page(theme.FromContext(ctx).Current(), button)
}
