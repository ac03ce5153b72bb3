package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coinbase/sodium-go/pkg/sodium/bridge"
)

func constantsCmd() *cobra.Command {
	var (
		pkg    string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print the constants published to the host runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := bridge.NewMapSink()
			bridge.RegisterConstants(pkg, sink)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Package   string            `json:"package"`
					Constants []bridge.Constant `json:"constants"`
				}{Package: sink.Package(), Constants: sink.Constants()})
			}

			for _, c := range sink.Constants() {
				fmt.Fprintf(out, "%s=%v\n", c.Name, c.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pkg, "package", "Crypt::Sodium", "host package the constants are registered for")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
