package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Selector picks one of the two theme variants. The zero value is Light.
type Selector int

const (
	Light Selector = iota
	Dark
)

// ErrUnknownSelector is returned when a string names neither variant.
var ErrUnknownSelector = errors.New("unknown theme selector")

// ParseSelector converts "light" or "dark" (any case) into a Selector.
func ParseSelector(s string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w: %q", ErrUnknownSelector, s)
	}
}

// Toggle returns the other variant.
func (s Selector) Toggle() Selector {
	if s == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether s selects the dark variant.
func (s Selector) IsDark() bool {
	return s == Dark
}

func (s Selector) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}
