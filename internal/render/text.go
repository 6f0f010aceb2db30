package render

import (
	"bufio"
	"io"

	"lifegame/pkg/life"
)

// WriteText prints g one row per line using alive and dead runes.
func WriteText(w io.Writer, g life.Reader, alive, dead rune) error {
	bw := bufio.NewWriter(w)
	width := g.Width()
	g.ForEachCell(func(_, col int, c life.Cell) {
		if c == life.Alive {
			bw.WriteRune(alive)
		} else {
			bw.WriteRune(dead)
		}
		if col == width-1 {
			bw.WriteByte('\n')
		}
	})
	return bw.Flush()
}
