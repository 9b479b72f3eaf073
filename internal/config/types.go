package config

import (
	"github.com/alexisbeaulieu97/themecast/internal/theme"
)

// ThemeAuto asks the terminal whether its background is dark.
const ThemeAuto = "auto"

// Config represents the themecast configuration document.
type Config struct {
	Theme    string   `yaml:"theme" toml:"theme" validate:"omitempty,oneof=light dark auto"`
	Log      Log      `yaml:"log" toml:"log"`
	Palettes Palettes `yaml:"palettes" toml:"palettes"`
	Serve    Serve    `yaml:"serve" toml:"serve"`
}

// Log controls the zerolog output.
type Log struct {
	Level string `yaml:"level" toml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human" toml:"human"`
}

// Palettes holds colour overrides per variant.
type Palettes struct {
	Light Palette `yaml:"light" toml:"light"`
	Dark  Palette `yaml:"dark" toml:"dark"`
}

// Palette overrides individual colours; empty fields keep the defaults.
type Palette struct {
	Background string `yaml:"background" toml:"background" validate:"omitempty,hexcolor"`
	Foreground string `yaml:"foreground" toml:"foreground" validate:"omitempty,hexcolor"`
	Accent     string `yaml:"accent" toml:"accent" validate:"omitempty,hexcolor"`
	AccentText string `yaml:"accent_text" toml:"accent_text" validate:"omitempty,hexcolor"`
}

// Serve configures the SSH host.
type Serve struct {
	Address     string `yaml:"address" toml:"address" validate:"required,listen_addr"`
	HostKeyPath string `yaml:"host_key_path" toml:"host_key_path" validate:"required"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Theme: "light",
		Log:   Log{Level: "info", Human: true},
		Serve: Serve{
			Address:     ":2222",
			HostKeyPath: ".themecast/ssh_host_key",
		},
	}
}

// ThemePalettes converts the overrides for theme.NewTable.
func (c Config) ThemePalettes() theme.Palettes {
	return theme.Palettes{
		Light: c.Palettes.Light.theme(),
		Dark:  c.Palettes.Dark.theme(),
	}
}

// Selector resolves the configured theme. isDark is consulted only for
// "auto" and may be nil.
func (c Config) Selector(isDark func() bool) (theme.Selector, error) {
	if c.Theme == "" {
		return theme.Light, nil
	}
	if c.Theme == ThemeAuto {
		if isDark != nil && isDark() {
			return theme.Dark, nil
		}
		return theme.Light, nil
	}
	return theme.ParseSelector(c.Theme)
}

func (p Palette) theme() theme.Palette {
	return theme.Palette{
		Background: p.Background,
		Foreground: p.Foreground,
		Accent:     p.Accent,
		AccentText: p.AccentText,
	}
}
