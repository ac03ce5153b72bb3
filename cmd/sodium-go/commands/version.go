package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coinbase/sodium-go/pkg/sodium"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wrapper and libsodium versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caps := sodium.Report()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sodium-go %s\n", sodium.WrapperVersion())
			fmt.Fprintf(out, "backend:   %s\n", sodium.Backend())
			if caps.VersionString == "" {
				fmt.Fprintln(out, "libsodium: unavailable")
				return nil
			}
			fmt.Fprintf(out, "libsodium: %s (library %d.%d)\n", caps.VersionString, caps.Major, caps.Minor)
			return nil
		},
	}
}
