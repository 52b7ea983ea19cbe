package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcoan/airsoft-suitcase/circuits"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the diagram names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, dg := range circuits.Airsoft() {
				fmt.Fprintln(cmd.OutOrStdout(), dg.Name)
			}
			return nil
		},
	}
}
