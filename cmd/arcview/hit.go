package main

import (
	"fmt"
	"strconv"

	"github.com/gogpu/arcview"
	"github.com/spf13/cobra"
)

func newHitCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hit <x> <y>",
		Short: "Print the sector under a point",
		Long: `Lay the menu out and print the label of the sector containing (x, y),
followed by its angle span. Prints "none" when the point misses every sector.`,
		Example: `  arcview hit --config menu.yaml 200 40`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}

			l, err := loadLayout(g)
			if err != nil {
				return err
			}
			l.Arrange()

			out := cmd.OutOrStdout()
			s := l.HitTest(x, y)
			if s == nil {
				fmt.Fprintln(out, "none")
				return nil
			}
			fmt.Fprintf(out, "%s start=%g sweep=%g bearing=%.2f\n",
				s.Text(), s.StartAngle(), s.SweepAngle(), arcview.Bearing(s.Center(), arcview.Pt(x, y)))
			return nil
		},
	}
}
