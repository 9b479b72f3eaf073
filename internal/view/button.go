package view

import "github.com/alexisbeaulieu97/themecast/internal/theme"

// Toggler is the only capability the button receives.
type Toggler interface {
	Toggle()
}

// ToggleFunc adapts a plain function to Toggler.
type ToggleFunc func()

// Toggle calls f.
func (f ToggleFunc) Toggle() { f() }

// Button flips the theme when pressed.
type Button struct {
	toggler Toggler
}

// NewButton returns a button bound to t.
func NewButton(t Toggler) Button {
	return Button{toggler: t}
}

// Press invokes the toggle. A button built without a toggler does nothing.
func (b Button) Press() {
	if b.toggler == nil {
		return
	}
	b.toggler.Toggle()
}

// Label returns the button caption for the given variant.
func Label(dark bool) string {
	if dark {
		return "Toggle to Light"
	}
	return "Toggle to Dark"
}

// Render draws the button with the bundle's button style.
func (b Button) Render(bundle theme.StyleBundle) string {
	return bundle.Button.Render(Label(bundle.Dark))
}
