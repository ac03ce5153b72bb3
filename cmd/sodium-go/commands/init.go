package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coinbase/sodium-go/pkg/sodium"
	"github.com/coinbase/sodium-go/pkg/sodium/bridge"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize libsodium and report the resulting state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := bridge.Init(cmd.Context(), logger)
			fmt.Fprintf(cmd.OutOrStdout(), "state: %s\n", sodium.CurrentState())
			return err
		},
	}
}
