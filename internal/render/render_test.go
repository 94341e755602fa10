package render

import (
	"image"
	"image/color"
	"testing"

	"conway/internal/core"
)

type recorder struct {
	bg       color.Color
	fg       color.Color
	rects    []image.Rectangle
	presents int
}

func (r *recorder) Clear(bg color.Color) { r.bg = bg; r.rects = nil }

func (r *recorder) FillRects(fg color.Color, rects []image.Rectangle) {
	r.fg = fg
	r.rects = append(r.rects, rects...)
}

func (r *recorder) Present() error { r.presents++; return nil }

func TestPainterEmitsOneRectPerLiveCell(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.MaxX, cfg.MaxY = 9, 9
	cfg.CellWidth, cfg.CellHeight = 4, 3
	g := core.NewGrid(cfg.MaxX, cfg.MaxY)
	g.Set(0, 0, true)
	g.Set(2, 5, true)

	rec := &recorder{}
	if err := NewPainter(cfg).Draw(rec, g); err != nil {
		t.Fatal(err)
	}
	if rec.presents != 1 {
		t.Fatalf("presented %d times, expected 1", rec.presents)
	}
	if rec.bg != Background || rec.fg != Foreground {
		t.Fatalf("colors bg=%v fg=%v", rec.bg, rec.fg)
	}
	want := []image.Rectangle{image.Rect(0, 0, 4, 3), image.Rect(8, 15, 12, 18)}
	if len(rec.rects) != len(want) {
		t.Fatalf("got %d rects, expected %d", len(rec.rects), len(want))
	}
	for i := range want {
		if rec.rects[i] != want[i] {
			t.Fatalf("rect %d = %v, expected %v", i, rec.rects[i], want[i])
		}
	}
}

func TestPixelBufferPresent(t *testing.T) {
	b := NewPixelBuffer(4, 2)
	b.Clear(color.White)
	b.FillRects(color.Black, []image.Rectangle{image.Rect(1, 0, 3, 1), image.Rect(3, 1, 9, 9)})

	for _, px := range b.Pixels() {
		if px != 0 {
			t.Fatal("front buffer changed before Present")
		}
	}
	if err := b.Present(); err != nil {
		t.Fatal(err)
	}

	black := map[[2]int]bool{{1, 0}: true, {2, 0}: true, {3, 1}: true}
	pix := b.Pixels()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			base := 4 * (y*4 + x)
			want := byte(0xff)
			if black[[2]int{x, y}] {
				want = 0
			}
			if pix[base] != want || pix[base+1] != want || pix[base+2] != want || pix[base+3] != 0xff {
				t.Fatalf("pixel (%d,%d) = %v", x, y, pix[base:base+4])
			}
		}
	}
}
