package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boardtopo/planar"
)

// cellReport is the JSON form of one cell.
type cellReport struct {
	ID       int        `json:"id"`
	Vertices []int      `json:"vertices"`
	Edges    []int      `json:"edges"`
	Adjacent []int      `json:"adjacent"`
	Area     float64    `json:"area"`
	Centroid [2]float64 `json:"centroid"`
}

// boardReport is the JSON form of a computed board.
type boardReport struct {
	ID               string       `json:"id,omitempty"`
	Name             string       `json:"name,omitempty"`
	Vertices         int          `json:"vertices"`
	Edges            int          `json:"edges"`
	Components       int          `json:"components"`
	CyclicComponents int          `json:"cyclic_components"`
	FoldedEdges      int          `json:"folded_edges"`
	DanglingEdges    int          `json:"dangling_edges"`
	Cells            []cellReport `json:"cells"`
}

func newComputeCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "compute FILE",
		Short: "Compute cells and adjacency of a board file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, b, err := a.loadBoard(args[0])
			if err != nil {
				return err
			}
			cells, err := b.Cells()
			if err != nil {
				return err
			}
			st := b.Stats()
			rep := boardReport{
				ID:               doc.ID,
				Name:             doc.Name,
				Vertices:         st.Vertices,
				Edges:            st.Edges,
				Components:       st.Components,
				CyclicComponents: st.CyclicComponents,
				FoldedEdges:      st.FoldedEdges,
				DanglingEdges:    st.DanglingEdges,
				Cells:            make([]cellReport, len(cells)),
			}
			for i, c := range cells {
				rep.Cells[i] = toCellReport(c)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			fmt.Fprintf(w, "board: %s (%s)\n", rep.Name, rep.ID)
			fmt.Fprintf(w, "vertices: %d edges: %d cells: %d components: %d\n",
				rep.Vertices, rep.Edges, len(rep.Cells), rep.Components)
			fmt.Fprintf(w, "dangling edges: %d folded edges: %d\n", rep.DanglingEdges, rep.FoldedEdges)
			for _, c := range rep.Cells {
				fmt.Fprintf(w, "cell %d: vertices %v adjacent %v area %g\n", c.ID, c.Vertices, c.Adjacent, c.Area)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func toCellReport(c planar.Cell) cellReport {
	adj := c.Adjacent
	if adj == nil {
		adj = []int{}
	}
	return cellReport{
		ID:       c.ID,
		Vertices: c.Vertices,
		Edges:    c.Edges,
		Adjacent: adj,
		Area:     c.Area,
		Centroid: [2]float64{c.Centroid.X, c.Centroid.Y},
	}
}
