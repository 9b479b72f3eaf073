package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("themecast.yaml", "yaml", 4, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "themecast.yaml", parseErr.Path)
	require.Equal(t, 4, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "yaml parse error: themecast.yaml:4: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("themecast.toml", "", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: themecast.toml: boom", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palettes.dark.accent", "must be a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palettes.dark.accent", validationErr.Field)
	require.Contains(t, err.Error(), "must be a hex colour")
}

func TestWatchErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("too many open files")
	err := NewWatchError("/etc/themecast.yaml", "add", underlying)

	var watchErr *WatchError
	require.ErrorAs(t, err, &watchErr)
	require.Equal(t, "add", watchErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "/etc/themecast.yaml")
}
