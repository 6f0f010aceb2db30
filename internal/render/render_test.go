package render

import (
	"bytes"
	"testing"

	"lifegame/pkg/life"
)

func pixel(buf []byte, pw, x, y int) [4]byte {
	i := (y*pw + x) * 4
	return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

func rgba(c interface{ RGBA() (r, g, b, a uint32) }) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
}

func TestFillRGBAWithGridLines(t *testing.T) {
	e, _ := life.New(3, 2)
	_ = e.Toggle(1, 2)
	pal := DefaultPalette()
	const scale = 4
	pw, ph := PixelSize(e.Grid(), scale)
	if pw != 12 || ph != 8 {
		t.Fatalf("pixel size = %dx%d", pw, ph)
	}
	buf := make([]byte, 4*pw*ph)
	if !FillRGBA(buf, e.Grid(), scale, pal) {
		t.Fatal("FillRGBA refused a correctly sized buffer")
	}

	checks := []struct {
		x, y int
		want [4]byte
	}{
		{0, 0, rgba(pal.Lines)},       // corner line
		{1, 1, rgba(pal.Background)},  // dead cell interior
		{8, 4, rgba(pal.Lines)},       // top-left line of cell (1,2)
		{9, 5, rgba(pal.Alive)},       // live interior
		{10, 6, rgba(pal.Alive)},      // live interior
		{11, 7, rgba(pal.Background)}, // inset gap
	}
	for _, c := range checks {
		if got := pixel(buf, pw, c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestFillRGBASmallScaleIsSolid(t *testing.T) {
	e, _ := life.New(2, 1)
	_ = e.Toggle(0, 1)
	pal := DefaultPalette()
	buf := make([]byte, 4*2*1)
	if !FillRGBA(buf, e.Grid(), 1, pal) {
		t.Fatal("FillRGBA failed")
	}
	if pixel(buf, 2, 0, 0) != rgba(pal.Background) || pixel(buf, 2, 1, 0) != rgba(pal.Alive) {
		t.Fatalf("buf = %v", buf)
	}
}

func TestFillRGBARejectsWrongBuffer(t *testing.T) {
	e, _ := life.New(2, 2)
	if FillRGBA(make([]byte, 3), e.Grid(), 2, DefaultPalette()) {
		t.Fatal("expected refusal")
	}
	if FillRGBA(nil, e.Grid(), 0, DefaultPalette()) {
		t.Fatal("expected refusal for zero scale")
	}
}

func TestCellAt(t *testing.T) {
	if r, c := CellAt(25, 13, 12); r != 1 || c != 2 {
		t.Fatalf("CellAt = %d,%d", r, c)
	}
	if r, c := CellAt(-1, 4, 12); r != -1 || c != -1 {
		t.Fatalf("negative pixel = %d,%d", r, c)
	}
}

func TestWriteText(t *testing.T) {
	e, _ := life.New(4, 3)
	if err := e.ApplyPattern(life.Blinker); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, e.Grid(), '#', '.'); err != nil {
		t.Fatal(err)
	}
	want := ".#..\n.#..\n.#..\n"
	if buf.String() != want {
		t.Fatalf("text = %q, want %q", buf.String(), want)
	}
}
