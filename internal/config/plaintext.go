package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lifegame/pkg/life"
)

// LoadPatternFile reads a pattern in the plaintext .cells format. The name
// comes from a "!Name:" header, or from the file name without extension.
func LoadPatternFile(path string) (life.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return life.Pattern{}, fmt.Errorf("%w: %w", life.ErrInvalidConfiguration, err)
	}
	defer f.Close()

	base := filepath.Base(path)
	p, err := ReadPattern(f, strings.TrimSuffix(base, filepath.Ext(base)))
	if err != nil {
		return life.Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ReadPattern parses plaintext rows from r. Lines starting with '!' are
// comments, short rows are padded with dead cells and trailing blank lines
// are dropped.
func ReadPattern(r io.Reader, name string) (life.Pattern, error) {
	var rows []string
	width := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			if n, ok := strings.CutPrefix(line, "!Name:"); ok && strings.TrimSpace(n) != "" {
				name = strings.TrimSpace(n)
			}
			continue
		}
		rows = append(rows, line)
		width = max(width, len(line))
	}
	if err := sc.Err(); err != nil {
		return life.Pattern{}, fmt.Errorf("%w: %w", life.ErrInvalidConfiguration, err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		rows[i] = row + strings.Repeat(".", width-len(row))
	}
	return life.ParsePattern(name, rows)
}
