package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// minPoints is the CLI floor for usable drawings; the core itself accepts
// down to 2.
const minPoints = 10

var (
	output string
	points int
)

// generate <designation> <chord-mm>: sample the airfoil and save a DXF.
func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <designation> <chord-mm>",
		Short: "Generate an airfoil and export it as a DXF drawing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			designation := args[0]
			chord, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("chord length %q is not a number", args[1])
			}
			if points < minPoints {
				return fmt.Errorf("number of points must be at least %d", minPoints)
			}
			if output == "" {
				output = fmt.Sprintf("naca_%s_%.0fmm.dxf", designation, chord)
			}

			sum, err := appCtx.Airfoils.Export(designation, chord, points, output)
			if err != nil {
				return err
			}
			fmt.Printf("Airfoil saved as: %s\n", output)
			printSummary(sum)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"output DXF filename (default naca_<designation>_<chord>mm.dxf)")
	cmd.Flags().IntVarP(&points, "points", "n", 100, "number of points along the chord")
	return cmd
}
