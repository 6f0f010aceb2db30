package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lifegame/pkg/life"
)

const beehive = `!Name: Beehive
!A still life.
.OO
O..O
.OO

`

func TestReadPattern(t *testing.T) {
	p, err := ReadPattern(strings.NewReader(beehive), "fallback")
	require.NoError(t, err)
	require.Equal(t, "Beehive", p.Name())
	require.Equal(t, 4, p.Width())
	require.Equal(t, 3, p.Height())
	require.Equal(t, 6, p.Population())
	require.Equal(t, ".OO.\nO..O\n.OO.\n", p.String())
}

func TestReadPatternFallbackNameAndErrors(t *testing.T) {
	p, err := ReadPattern(strings.NewReader("O\n"), "dot")
	require.NoError(t, err)
	require.Equal(t, "dot", p.Name())

	_, err = ReadPattern(strings.NewReader("!only comments\n\n"), "empty")
	require.ErrorIs(t, err, life.ErrInvalidConfiguration)

	_, err = ReadPattern(strings.NewReader("OxO\n"), "bad")
	require.ErrorIs(t, err, life.ErrInvalidConfiguration)
}

func TestResolvePatternFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hive.cells")
	require.NoError(t, os.WriteFile(path, []byte(".OO.\nO..O\n.OO.\n"), 0o644))

	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-pattern-file", path}))

	catalog, err := cfg.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, "hive", cfg.Pattern)
	_, ok := catalog.Lookup("HIVE")
	require.True(t, ok)
}

func TestResolvePatternFileKeepsExplicitPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hive.cells")
	require.NoError(t, os.WriteFile(path, []byte("OO\nOO\n"), 0o644))

	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-pattern-file", path, "-pattern", "glider"}))

	_, err := cfg.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, "glider", cfg.Pattern)
}

func TestLoadPatternFileMissing(t *testing.T) {
	_, err := LoadPatternFile(filepath.Join(t.TempDir(), "nope.cells"))
	require.ErrorIs(t, err, life.ErrInvalidConfiguration)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"width":    "30",
		"height":   "-4",
		"interval": "20ms",
		"p":        "1.5",
		"seed":     "9",
		"pattern":  "random",
		"scale":    "x",
	})
	want := Default()
	want.Width = 30
	want.Interval = 20 * time.Millisecond
	want.Seed = 9
	want.Pattern = PatternRandom
	require.Equal(t, want, cfg)
	require.Equal(t, Default(), FromMap(nil))
}
