package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minefield/config"
	"github.com/katalvlaran/minefield/loader"
)

// Mutual pair (0, 1) plus an isolated mine.
const sampleField = `3
0 0 5
3 0 5
10 0 1
`

// Two overlapping radius-5 circles with centers 3 apart.
const lensUnionArea = 108.0835

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// setup returns a field file and a config file fixing seed and samples.
func setup(t *testing.T) (field, cfg string) {
	t.Helper()
	dir := t.TempDir()
	field = writeFile(t, dir, "field.txt", sampleField)
	cfg = writeFile(t, dir, "config.yaml", "samples: 20000\nseed: 1\nlog:\n  level: warn\n")
	return field, cfg
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(context.Background(), &Input{}, "test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEfficiency(t *testing.T) {
	field, cfg := setup(t)

	out, _, err := run(t, "efficiency", field, "0", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = run(t, "efficiency", field, "2", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, _, err = run(t, "efficiency", field, "x", "--config", cfg)
	assert.ErrorContains(t, err, "invalid index")

	_, _, err = run(t, "efficiency", field, "7", "--config", cfg)
	assert.Error(t, err)
}

func TestMax(t *testing.T) {
	field, cfg := setup(t)

	out, _, err := run(t, "max", field, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "0 2\n", out)
}

func TestExplode(t *testing.T) {
	field, cfg := setup(t)

	out, _, err := run(t, "explode", field, "0", "0", "0", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "0 1\n", out)

	out, _, err = run(t, "explode", field, "100", "100", "1", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "\n", out)

	_, _, err = run(t, "explode", field, "0", "zero", "0", "--config", cfg)
	assert.ErrorContains(t, err, "invalid coordinate")
}

func TestArea(t *testing.T) {
	field, cfg := setup(t)

	out, _, err := run(t, "area", field, "--config", cfg)
	require.NoError(t, err)
	area, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, lensUnionArea, area, 2.0)

	// Same seed, same estimate.
	again, _, err := run(t, "area", field, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	// Isolated mine 2 has radius 1.
	out, _, err = run(t, "area", field, "--index", "2", "--config", cfg, "--samples", "50000", "--workers", "3")
	require.NoError(t, err)
	area, err = strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, 3.14159, area, 0.1)
}

func TestArea_FlagValidation(t *testing.T) {
	field, cfg := setup(t)

	_, _, err := run(t, "area", field, "--config", cfg, "--samples", "0")
	assert.ErrorContains(t, err, "samples")
}

func TestMatrix(t *testing.T) {
	field, cfg := setup(t)

	out, _, err := run(t, "matrix", field, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "0 1 0\n1 0 0\n0 0 0\n\n", out)
}

func TestRounds(t *testing.T) {
	field, cfg := setup(t)

	out, _, err := run(t, "rounds", field, "1", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "0: 1\n1: 0\n", out)
}

func TestInput_Override(t *testing.T) {
	input := &Input{}
	cmd := newRootCommand(context.Background(), input, "test")
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--seed", "5", "--json-log"}))

	cfg := config.DefaultConfig()
	cfg.Workers = 3
	input.override(cfg, cmd.PersistentFlags())

	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, 3, cfg.Workers, "unset flag keeps the file value")
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)
}

func TestMissingFile(t *testing.T) {
	_, cfg := setup(t)

	_, _, err := run(t, "max", filepath.Join(t.TempDir(), "none.txt"), "--config", cfg)
	assert.ErrorIs(t, err, loader.ErrFileNotFound)
}

func TestStatsJSONLog(t *testing.T) {
	field, cfg := setup(t)

	_, errOut, err := run(t, "max", field, "--config", cfg, "--stats", "--json-log", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"stats"`)
	assert.Contains(t, errOut, `"run":`)
	assert.Contains(t, errOut, `minefield_queries_total{op=\"max\"}`)
	assert.Contains(t, errOut, `"msg":"minefield loaded"`)
}

func TestWatch(t *testing.T) {
	field, cfg := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out, errOut syncBuffer
	cmd := newRootCommand(ctx, &Input{}, "test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"watch", field, "--config", cfg, "--verbose"})

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()

	require.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "msg=watching")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "mines 3, max mine 0, efficiency 2")

	require.NoError(t, os.WriteFile(field, []byte("1\n0 0 1\n"), 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "mines 1, max mine 0, efficiency 1")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
