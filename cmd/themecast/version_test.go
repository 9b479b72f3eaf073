package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func setBuildInfo(t *testing.T, v, c, d string) {
	t.Helper()

	prevVersion, prevCommit, prevDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = prevVersion, prevCommit, prevDate
	})
	version, commit, date = v, c, d
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abcdef1", "2026-10-18")

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "themecast 1.2.3")
	require.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
	require.Contains(t, out, "commit: abcdef1")
	require.Contains(t, out, "built:  2026-10-18")
}

func TestVersionShortPrintsOnlyVersion(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abcdef1", "2026-10-18")

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "1.2.3\n", out)
}

func TestVersionRejectsArguments(t *testing.T) {
	_, err := execute(t, "version", "extra")
	require.Error(t, err)
}
