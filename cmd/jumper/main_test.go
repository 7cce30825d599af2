package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSimulatePrintsScreen(t *testing.T) {
	out := execute(t, "simulate", "--frames", "30", "--seed", "7", "--width", "30", "--height", "12",
		"--db", filepath.Join(t.TempDir(), "s.db"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Contains(t, lines[12], "seed=7 frames=30")
}

func TestSimulateIsDeterministic(t *testing.T) {
	args := []string{"simulate", "--frames", "90", "--seed", "11", "--width", "30", "--height", "14"}
	assert.Equal(t, execute(t, args...), execute(t, args...))
}

func TestScoresEmpty(t *testing.T) {
	out := execute(t, "scores", "jumper", "--db", filepath.Join(t.TempDir(), "s.db"))
	assert.Contains(t, out, "No scores recorded yet.")
}

func TestParseDirection(t *testing.T) {
	d, err := parseDirection("left")
	require.NoError(t, err)
	assert.Equal(t, core.DirLeft, d)

	_, err = parseDirection("down")
	assert.Error(t, err)
}
