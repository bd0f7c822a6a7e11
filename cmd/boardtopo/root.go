package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boardtopo/boardfile"
	"github.com/katalvlaran/boardtopo/planar"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg Config
	log *slog.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree, which keeps tests free of shared flag state.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "boardtopo",
		Short:         "Compute cells and adjacency of planar game boards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with CLI defaults")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "text or json")

	root.AddCommand(
		newGenerateCmd(a),
		newComputeCmd(a),
		newLocateCmd(a),
		newPathCmd(a),
		newRenderCmd(a),
		newValidateCmd(a),
	)
	return root
}

// setup loads the config file and builds the logger. Logs go to the
// command's error stream.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	a.cfg = cfg

	log, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.log = log.With("run", uuid.NewString()[:8], "cmd", cmd.Name())
	return nil
}

// newLogger builds a text or JSON slog handler at the configured level.
func newLogger(w io.Writer, c LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", c.Format)
	}
}

// loadBoard reads a board file and computes it, logging through a.log.
func (a *app) loadBoard(path string) (*boardfile.Document, *planar.Board, error) {
	doc, err := boardfile.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	b, err := doc.Board(planar.WithLogger(a.log))
	if err != nil {
		return nil, nil, err
	}
	b.Compute()
	a.log.Info("board loaded", "file", path, "id", doc.ID, "name", doc.Name)
	return doc, b, nil
}
