package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes one command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateComputeLocate(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "grid.yaml")

	_, logs, err := run(t, "generate", "grid", "2", "3", "-o", board)
	require.NoError(t, err)
	assert.Contains(t, logs, "board saved")

	out, _, err := run(t, "compute", "--json", board)
	require.NoError(t, err)
	var rep boardReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 12, rep.Vertices)
	assert.Equal(t, 17, rep.Edges)
	assert.Len(t, rep.Cells, 6)
	assert.Equal(t, "grid 2 3", rep.Name)
	assert.NotEmpty(t, rep.ID)

	out, _, err = run(t, "compute", board)
	require.NoError(t, err)
	assert.Contains(t, out, "vertices: 12 edges: 17 cells: 6")

	out, _, err = run(t, "locate", board, "5", "5")
	require.NoError(t, err)
	assert.NotEqual(t, "none", strings.TrimSpace(out))

	out, _, err = run(t, "locate", board, "-5", "-5")
	require.NoError(t, err)
	assert.Equal(t, "none", strings.TrimSpace(out))
}

func TestLocate_NegativeCoordinates(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "cube.yaml")
	_, _, err := run(t, "generate", "platonic", "cube", "-o", board)
	require.NoError(t, err)

	// Schlegel cube centred on the origin: inner square to ±7.07, outer to ±14.14.
	inner, _, err := run(t, "locate", board, "-5", "-5")
	require.NoError(t, err)
	assert.NotEqual(t, "none", strings.TrimSpace(inner))

	side, _, err := run(t, "locate", board, "-10", "0")
	require.NoError(t, err)
	assert.NotEqual(t, "none", strings.TrimSpace(side))
	assert.NotEqual(t, strings.TrimSpace(inner), strings.TrimSpace(side))

	out, _, err := run(t, "--log-level=debug", "locate", board, "-20", "-20")
	require.NoError(t, err)
	assert.Equal(t, "none", strings.TrimSpace(out))
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := run(t, "generate", "cycle", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "name: cycle 3")
}

func TestGenerate_Errors(t *testing.T) {
	cases := [][]string{
		{"generate", "blob", "3"},
		{"generate", "grid", "2"},
		{"generate", "grid", "two", "3"},
		{"generate", "random", "2", "2"},
		{"generate", "platonic", "torus"},
		{"generate", "cycle", "2"},
		{"generate", "grid", "2", "2", "--jitter", "0.5"},
		{"generate", "grid", "2", "2", "--spacing", "0"},
	}
	for _, args := range cases {
		_, _, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "hex.yaml")
	_, _, err := run(t, "generate", "hex", "2", "2", "-o", good)
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: 1\nvertices: [[0, 0]]\nedges: [[0, 7]]\n"), 0o644))

	out, _, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   "+good)

	out, _, err = run(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "FAIL "+bad)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "wheel.yaml")
	_, _, err := run(t, "generate", "wheel", "6", "-o", board)
	require.NoError(t, err)

	_, _, err = run(t, "render", board, "--width", "120", "--height", "80", "--thumbnail", "30")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "wheel.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	_, err = os.Stat(filepath.Join(dir, "wheel.thumb.png"))
	assert.NoError(t, err)

	_, _, err = run(t, "render", board, "--width", "0")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "cli.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: warn\n  format: json\ngenerate:\n  spacing: 5\n"), 0o644))

	out, logs, err := run(t, "--config", cfg, "generate", "grid", "1", "1")
	require.NoError(t, err)
	assert.Empty(t, logs, "info records are below the configured level")
	assert.Contains(t, out, "[5, 5]")

	require.NoError(t, os.WriteFile(cfg, []byte("colour: red\n"), 0o644))
	_, _, err = run(t, "--config", cfg, "generate", "grid", "1", "1")
	assert.Error(t, err)

	_, _, err = run(t, "--log-format", "xml", "generate", "grid", "1", "1")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "strip.yaml")
	_, _, err := run(t, "generate", "grid", "1", "3", "-o", board)
	require.NoError(t, err)

	out, _, err := run(t, "path", board, "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "[0] length 0", strings.TrimSpace(out))

	_, _, err = run(t, "path", board, "0", "9")
	assert.Error(t, err)
}
