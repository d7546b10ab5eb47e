package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCurveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Describe a curve: parameters, Hasse interval, points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nc, err := a.namedCurve()
			if err != nil {
				return err
			}
			c := nc.Curve
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "name: %s\n", nc.Name)
			fmt.Fprintf(out, "curve: %s\n", c)
			fmt.Fprintf(out, "generator: %s\n", nc.G)
			if nc.N != nil {
				fmt.Fprintf(out, "order: %s\n", nc.N)
			}

			lower, upper := c.HassesBound()
			fmt.Fprintf(out, "hasse bound: [%s, %s]\n", lower.Text('f', 4), upper.Text('f', 4))

			if s := a.v.GetString("points-at"); s != "" {
				x, err := parseInt("points-at", s)
				if err != nil {
					return err
				}
				p1, p2, err := c.PointsAt(x)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "points at x=%s: %s %s\n", x, p1, p2)
			}

			if a.v.GetBool("count") {
				n, err := c.CountPoints()
				if err != nil {
					return err
				}
				a.log.Debug("enumerated curve points", zap.Stringer("count", n))
				fmt.Fprintf(out, "points: %s\n", n)
			}
			return nil
		},
	}

	addCurveFlags(cmd.Flags())
	cmd.Flags().String("points-at", "", "list the curve points with this x-coordinate")
	cmd.Flags().Bool("count", false, "count the curve points (small moduli only)")
	return cmd
}
