package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boardtopo/boardfile"
	"github.com/katalvlaran/boardtopo/builder"
)

// platonicNames maps CLI spellings to builder solids.
var platonicNames = map[string]builder.PlatonicName{
	"tetrahedron":  builder.Tetrahedron,
	"cube":         builder.Cube,
	"octahedron":   builder.Octahedron,
	"dodecahedron": builder.Dodecahedron,
	"icosahedron":  builder.Icosahedron,
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		out     string
		name    string
		spacing float64
		jitter  float64
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "generate KIND ARGS...",
		Short: "Write a generated board file",
		Long: `Generate a board and write it as YAML (or JSON for a .json output).

Kinds:
  grid ROWS COLS          square tiling
  hex ROWS COLS           pointy-top hexagonal tiling
  random ROWS COLS P      square tiling keeping interior edges with probability P
  cycle N | wheel N       regular polygon, optionally with a hub
  path N | star N         acyclic fixtures (no cells)
  platonic NAME           Schlegel diagram (tetrahedron, cube, octahedron,
                          dodecahedron, icosahedron)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.cfg.Generate
			if cmd.Flags().Changed("spacing") {
				g.Spacing = spacing
			}
			if cmd.Flags().Changed("jitter") {
				g.Jitter = jitter
			}
			if cmd.Flags().Changed("seed") {
				g.Seed = seed
			}
			opts, err := builderOptions(g)
			if err != nil {
				return err
			}
			ctor, err := parseKind(args[0], args[1:])
			if err != nil {
				return err
			}
			b, err := builder.BuildBoard(nil, opts, ctor)
			if err != nil {
				return err
			}
			if name == "" {
				name = strings.Join(args, " ")
			}
			doc := boardfile.FromBoard(b, name)
			a.log.Info("board generated", "kind", args[0], "vertices", b.NumVertices(), "edges", b.NumEdges())

			if out == "" {
				return boardfile.Encode(cmd.OutOrStdout(), doc, boardfile.FormatYAML)
			}
			if err := boardfile.SaveFile(out, doc); err != nil {
				return err
			}
			a.log.Info("board saved", "file", out, "id", doc.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.yaml, .yml, .json); stdout when empty")
	cmd.Flags().StringVar(&name, "name", "", "board name (default: the generate arguments)")
	cmd.Flags().Float64Var(&spacing, "spacing", 0, "world units per lattice unit")
	cmd.Flags().Float64Var(&jitter, "jitter", 0, "random vertex displacement in lattice units, at most 0.25")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for random kinds and jitter")
	return cmd
}

// builderOptions converts config values into builder options, rejecting
// values the option constructors would panic on.
func builderOptions(g GenerateConfig) ([]builder.BuilderOption, error) {
	if !(g.Spacing > 0) {
		return nil, fmt.Errorf("spacing must be > 0, got %g", g.Spacing)
	}
	if g.Jitter < 0 || g.Jitter > 0.25 {
		return nil, fmt.Errorf("jitter must be in [0, 0.25], got %g", g.Jitter)
	}
	opts := []builder.BuilderOption{builder.WithSpacing(g.Spacing), builder.WithSeed(g.Seed)}
	if g.Jitter > 0 {
		opts = append(opts, builder.WithJitter(g.Jitter))
	}
	return opts, nil
}

// parseKind maps a kind and its positional arguments to a constructor.
func parseKind(kind string, args []string) (builder.Constructor, error) {
	ints := func(n int) ([]int, error) {
		if len(args) < n {
			return nil, fmt.Errorf("%s: want %d integer arguments, got %d", kind, n, len(args))
		}
		out := make([]int, n)
		for i := range out {
			v, err := strconv.Atoi(args[i])
			if err != nil {
				return nil, fmt.Errorf("%s: argument %d: %w", kind, i+1, err)
			}
			out[i] = v
		}
		return out, nil
	}

	kind = strings.ToLower(kind)
	switch kind {
	case "grid", "hex":
		v, err := ints(2)
		if err != nil {
			return nil, err
		}
		if kind == "hex" {
			return builder.HexGrid(v[0], v[1]), nil
		}
		return builder.Grid(v[0], v[1]), nil
	case "random":
		v, err := ints(2)
		if err != nil {
			return nil, err
		}
		if len(args) < 3 {
			return nil, fmt.Errorf("random: missing probability argument")
		}
		p, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return nil, fmt.Errorf("random: probability: %w", err)
		}
		return builder.RandomGrid(v[0], v[1], p), nil
	case "cycle", "wheel", "path", "star":
		v, err := ints(1)
		if err != nil {
			return nil, err
		}
		return map[string]func(int) builder.Constructor{
			"cycle": builder.Cycle,
			"wheel": builder.Wheel,
			"path":  builder.Path,
			"star":  builder.Star,
		}[kind](v[0]), nil
	case "platonic":
		if len(args) < 1 {
			return nil, fmt.Errorf("platonic: missing solid name")
		}
		solid, ok := platonicNames[strings.ToLower(args[0])]
		if !ok {
			return nil, fmt.Errorf("platonic: unknown solid %q", args[0])
		}
		return builder.PlatonicSolid(solid), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}
