package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coinbase/sodium-go/pkg/sodium/logging"
)

var (
	logLevel string
	logger   logging.Logger
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRoot(os.Stdout, os.Stderr).Execute()
}

func newRoot(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "sodium-go",
		Short:        "Inspect and initialize the linked libsodium",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = logging.NewText(stderr, level)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(versionCmd(), constantsCmd(), initCmd())
	return root
}
