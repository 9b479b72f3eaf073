package tui

import "github.com/alexisbeaulieu97/themecast/internal/theme"

// SelectMsg asks the model to show a specific variant. It toggles the
// registry only when the variant differs from the current one.
type SelectMsg struct {
	Selector theme.Selector
}
