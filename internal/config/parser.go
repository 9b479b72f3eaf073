package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themecast/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Load reads path, layering it over Default, and validates the result. An
// empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, "", 0, err)
	}

	if err := decode(path, data, &cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return themeerrors.NewParseError(path, "yaml", yamlLine(err), err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return themeerrors.NewParseError(path, "toml", tomlLine(err), err)
		}
	default:
		return themeerrors.NewParseError(path, "", 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}
	return nil
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}
