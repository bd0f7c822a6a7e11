package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that board files load and compute",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				_, b, err := a.loadBoard(path)
				if err != nil {
					failed++
					a.log.Warn("invalid board", "file", path, "err", err)
					fmt.Fprintf(w, "FAIL %s: %v\n", path, err)
					continue
				}
				st := b.Stats()
				fmt.Fprintf(w, "ok   %s: %d vertices, %d edges, %d cells\n", path, st.Vertices, st.Edges, st.Cells)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(args))
			}
			return nil
		},
	}
}
