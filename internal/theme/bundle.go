package theme

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const bodyWidth = 78

// Region names one styled area of the page.
type Region string

const (
	RegionBody    Region = "body"
	RegionButton  Region = "button"
	RegionContent Region = "content"
	RegionTitle   Region = "title"
)

// Regions lists every region a StyleBundle carries.
var Regions = [...]Region{RegionBody, RegionButton, RegionContent, RegionTitle}

// Palette holds the colours that differ between the two variants.
type Palette struct {
	Background string
	Foreground string
	Accent     string
	AccentText string
}

// Merge returns p with every non-empty field of override applied.
func (p Palette) Merge(override Palette) Palette {
	if override.Background != "" {
		p.Background = override.Background
	}
	if override.Foreground != "" {
		p.Foreground = override.Foreground
	}
	if override.Accent != "" {
		p.Accent = override.Accent
	}
	if override.AccentText != "" {
		p.AccentText = override.AccentText
	}
	return p
}

// Palettes pairs the palette of each variant.
type Palettes struct {
	Light Palette
	Dark  Palette
}

// DefaultPalettes returns the built-in colours.
func DefaultPalettes() Palettes {
	return Palettes{
		Light: Palette{Background: "#f2f7fa", Foreground: "#062540", Accent: "#016aff", AccentText: "#f2f7fa"},
		Dark:  Palette{Background: "#183d5d", Foreground: "#f2f7fa", Accent: "#94c3db", AccentText: "#062540"},
	}
}

// StyleBundle is the resolved, read-only styling for one variant.
type StyleBundle struct {
	Body    lipgloss.Style
	Button  lipgloss.Style
	Content lipgloss.Style
	Title   lipgloss.Style
	Palette Palette
	Dark    bool
}

// Selector returns the variant the bundle was built for.
func (b StyleBundle) Selector() Selector {
	if b.Dark {
		return Dark
	}
	return Light
}

// Style returns the style of a region. Unknown regions get an empty style.
func (b StyleBundle) Style(region Region) lipgloss.Style {
	switch region {
	case RegionBody:
		return b.Body
	case RegionButton:
		return b.Button
	case RegionContent:
		return b.Content
	case RegionTitle:
		return b.Title
	default:
		return lipgloss.NewStyle()
	}
}

// Table maps each Selector to its StyleBundle. Both bundles are built when
// the table is created and never change afterwards.
type Table struct {
	bundles [2]StyleBundle
}

// NewTable builds both bundles for a renderer, applying palette overrides
// on top of DefaultPalettes. A nil renderer means the default one.
func NewTable(r *lipgloss.Renderer, overrides Palettes) *Table {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	defaults := DefaultPalettes()

	t := &Table{}
	t.bundles[Light] = buildBundle(r, defaults.Light.Merge(overrides.Light), false)
	t.bundles[Dark] = buildBundle(r, defaults.Dark.Merge(overrides.Dark), true)
	return t
}

var (
	defaultTableOnce sync.Once
	defaultTable     *Table
)

// DefaultTable returns the process-wide table for the default renderer.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = NewTable(nil, Palettes{})
	})
	return defaultTable
}

// Bundle looks up the bundle for s.
func (t *Table) Bundle(s Selector) StyleBundle {
	if s == Dark {
		return t.bundles[Dark]
	}
	return t.bundles[Light]
}

func buildBundle(r *lipgloss.Renderer, p Palette, dark bool) StyleBundle {
	bg := lipgloss.Color(p.Background)
	fg := lipgloss.Color(p.Foreground)

	surface := r.NewStyle().
		Background(bg).
		Foreground(fg)

	return StyleBundle{
		Body: surface.
			Padding(1, 3).
			Width(bodyWidth),
		Button: r.NewStyle().
			Bold(true).
			Padding(0, 2).
			Transform(strings.ToUpper).
			Background(lipgloss.Color(p.Accent)).
			Foreground(lipgloss.Color(p.AccentText)),
		Content: surface,
		Title: surface.
			Bold(true).
			MarginBottom(1).
			MarginBackground(bg),
		Palette: p,
		Dark:    dark,
	}
}
