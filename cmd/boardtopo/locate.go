package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boardtopo/planar"
)

func newLocateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate FILE X Y",
		Short: "Print the cell containing a point",
		Long: `Print the ID of the innermost cell containing (X, Y) in board coordinates,
or "none" when the point lies outside every cell. Flags must precede FILE,
so negative coordinates are read as arguments.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			_, b, err := a.loadBoard(args[0])
			if err != nil {
				return err
			}
			id, err := b.Locate(x, y)
			switch {
			case errors.Is(err, planar.ErrNotFound):
				a.log.Debug("point outside all cells", "x", x, "y", y)
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
