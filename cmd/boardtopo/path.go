package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE FROM TO",
		Short: "Print a shortest route of cells between two cells",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("to: %w", err)
			}
			_, b, err := a.loadBoard(args[0])
			if err != nil {
				return err
			}
			route, length, err := b.CellPath(from, to, nil)
			if err != nil {
				return err
			}
			if route == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "unreachable")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v length %g\n", route, length)
			return nil
		},
	}
}
