package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// info <designation> [chord-mm]: report the encoded specifications.
func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <designation> [chord-mm]",
		Short: "Print airfoil specifications without writing a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var chord float64
			if len(args) == 2 {
				c, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("chord length %q is not a number", args[1])
				}
				chord = c
			}
			sum, err := appCtx.Airfoils.Describe(args[0], chord)
			if err != nil {
				return err
			}
			printSummary(sum)
			return nil
		},
	}
}
