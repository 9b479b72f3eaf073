package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion prefers the linker-provided version, then the module version
// recorded by `go install`.
func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the themecast build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(out, buildVersion())
				return err
			}
			_, err := fmt.Fprintf(out, "themecast %s (%s/%s, %s)\ncommit: %s\nbuilt:  %s\n",
				buildVersion(), runtime.GOOS, runtime.GOARCH, runtime.Version(), commit, date)
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")

	return cmd
}
