package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"airfoilgen/internal/app"
	"airfoilgen/internal/domain"
)

var (
	closeTol float64
	appCtx   *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "airfoilgen",
		Short: "NACA 4-digit airfoil to DXF generator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appCtx = app.NewWire(app.Config{CloseTolerance: closeTol})
			return nil
		},
	}

	root.PersistentFlags().Float64Var(&closeTol, "close-tolerance", 0,
		"edge gap above which closing segments are drawn (default 0.001)")

	root.AddCommand(generateCmd(), infoCmd())
	return root.Execute()
}

// printSummary mirrors the report block generate and info share.
func printSummary(s domain.Summary) {
	fmt.Printf("NACA %s specifications:\n", s.Designation)
	fmt.Printf("  Maximum camber: %d%% at %d%% chord\n", s.CamberPercent, s.CamberPositionPercent)
	fmt.Printf("  Maximum thickness: %d%%\n", s.ThicknessPercent)
	if s.ChordMM > 0 {
		fmt.Printf("  Chord length: %.1f mm\n", s.ChordMM)
	}
}
