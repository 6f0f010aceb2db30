package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifegame/pkg/life"

	"github.com/stretchr/testify/require"
)

func TestRunBlinkerOscillates(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-width", "3", "-height", "3", "-pattern", "blinker", "-generations", "1"})
	require.NoError(t, err)
	require.Equal(t, "paused  gen 1  pop 3  3x3\n...\nOOO\n...\n", out.String())
}

func TestRunPrintsEveryFrame(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-width", "4", "-height", "4", "-pattern", "Block", "-generations", "4", "-every", "2"})
	require.NoError(t, err)
	frames := strings.Count(out.String(), "pop 4")
	require.Equal(t, 2, frames)
}

func TestRunStopsWhenEmpty(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-width", "5", "-height", "5", "-pattern", "", "-generations", "50", "-stop-empty"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "paused  gen 1  pop 0"))
	require.Contains(t, logs.String(), "population died out")
}

func TestRunReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.hcl")
	src := `
settings {
  width   = 6
  height  = 6
  pattern = "Beehive"
}

pattern "Beehive" {
  rows = [".OO.", "O..O", ".OO."]
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-config", path, "-generations", "3"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "paused  gen 3  pop 6  6x6"), out.String())
}

func TestRunRejectsBadInput(t *testing.T) {
	var out, logs bytes.Buffer
	require.Error(t, run(&out, &logs, []string{"-generations", "-1"}))
	require.ErrorIs(t, run(&out, &logs, []string{"-width", "0"}), life.ErrInvalidConfiguration)
	require.ErrorIs(t, run(&out, &logs, []string{"-pattern", "nope"}), life.ErrInvalidConfiguration)
	require.Error(t, run(&out, &logs, []string{"-unknown"}))
}
