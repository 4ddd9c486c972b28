package gridmap

import (
	"math"
	"testing"
)

func TestNewPathRejectsDiagonalSegments(t *testing.T) {
	g := NewGrid(10, 10, 20)
	if _, err := NewPath(g, []GridPos{{0, 0}, {2, 2}}); err == nil {
		t.Fatalf("expected error for diagonal segment")
	}
}

func TestNewPathMarksCells(t *testing.T) {
	g := NewGrid(10, 10, 20)
	p, err := NewPath(g, []GridPos{{Row: 1, Col: 0}, {Row: 1, Col: 4}, {Row: 5, Col: 4}})
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	for col := 0; col <= 4; col++ {
		if !g.IsPath(1, col) || !p.IsPathCell(1, col) {
			t.Fatalf("(1,%d) should be path", col)
		}
	}
	for row := 1; row <= 5; row++ {
		if !g.IsPath(row, 4) {
			t.Fatalf("(%d,4) should be path", row)
		}
	}
	if g.IsPath(0, 0) || p.IsPathCell(2, 2) {
		t.Fatalf("off-route cell marked as path")
	}
}

func TestWaypointPixelPastEnd(t *testing.T) {
	g := NewGrid(10, 10, 20)
	p, _ := NewPath(g, []GridPos{{0, 0}, {0, 3}})
	if pt, ok := p.WaypointPixel(1); !ok || pt.X != 70 || pt.Y != 10 {
		t.Fatalf("WaypointPixel(1) = %+v, %v", pt, ok)
	}
	if _, ok := p.WaypointPixel(2); ok {
		t.Fatalf("expected no waypoint past the final index")
	}
	if _, ok := p.WaypointPixel(-1); ok {
		t.Fatalf("expected no waypoint for negative index")
	}
}

func TestProgressAlongStraightSegment(t *testing.T) {
	g := NewGrid(20, 5, 20)
	p, _ := NewPath(g, []GridPos{{Row: 2, Col: 0}, {Row: 2, Col: 10}})
	start, _ := p.Start()
	end, _ := p.End()

	if got := p.Progress(start.X, start.Y); got != 0 {
		t.Fatalf("progress at start = %v", got)
	}
	if got := p.Progress(end.X, end.Y); got != 1 {
		t.Fatalf("progress at end = %v", got)
	}

	prev := -1.0
	for x := start.X - 30; x <= end.X+30; x += 3 {
		got := p.Progress(x, start.Y+7)
		if got < prev {
			t.Fatalf("progress decreased at x=%v: %v < %v", x, got, prev)
		}
		prev = got
	}
	if mid := p.Progress((start.X+end.X)/2, start.Y); math.Abs(mid-0.5) > 1e-9 {
		t.Fatalf("midpoint progress = %v", mid)
	}
}

func TestProgressPicksNearestSegment(t *testing.T) {
	g := NewGrid(20, 20, 20)
	// Г-образный путь: 200px вправо, затем 200px вниз
	p, _ := NewPath(g, []GridPos{{Row: 0, Col: 0}, {Row: 0, Col: 10}, {Row: 10, Col: 10}})
	corner, _ := p.WaypointPixel(1)

	if got := p.Progress(corner.X, corner.Y); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("corner progress = %v", got)
	}
	// точка возле второго отрезка
	if got := p.Progress(corner.X+3, corner.Y+100); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("second segment progress = %v", got)
	}
}

func TestProgressTieResolvesToEarlierSegment(t *testing.T) {
	g := NewGrid(20, 20, 20)
	// отрезки идут туда и обратно по одной линии
	p, _ := NewPath(g, []GridPos{{Row: 0, Col: 0}, {Row: 0, Col: 10}, {Row: 0, Col: 0}})
	start, _ := p.Start()
	if got := p.Progress(start.X+50, start.Y); math.Abs(got-0.125) > 1e-9 {
		t.Fatalf("expected earlier segment projection 0.125, got %v", got)
	}
}

func TestProgressZeroLengthPath(t *testing.T) {
	g := NewGrid(10, 10, 20)
	p, err := NewPath(g, []GridPos{{3, 3}, {3, 3}, {3, 3}})
	if err != nil {
		t.Fatalf("coincident waypoints should be accepted: %v", err)
	}
	if got := p.Progress(500, 500); got != 0 {
		t.Fatalf("zero-length path progress = %v", got)
	}
}

func TestDefaultPathOnStandardField(t *testing.T) {
	g := NewGrid(40, 18, 20)
	p := NewDefaultPath(g)
	if p.Len() != 10 {
		t.Fatalf("expected 10 waypoints, got %d", p.Len())
	}
	wps := p.Waypoints()
	if wps[0] != (GridPos{Row: 9, Col: 0}) || wps[9] != (GridPos{Row: 9, Col: 39}) {
		t.Fatalf("unexpected endpoints %+v %+v", wps[0], wps[9])
	}
	if !g.IsPath(4, 12) || !g.IsPath(13, 28) {
		t.Fatalf("expected interior segments to be marked")
	}
	if p.TotalLength() <= 0 {
		t.Fatalf("default path must have length")
	}
}

func TestRebuildClampsToSmallGrid(t *testing.T) {
	g := NewGrid(40, 18, 20)
	p := NewDefaultPath(g)
	g.Resize(20, 10)
	p.Rebuild(g)
	for _, wp := range p.Waypoints() {
		if !g.IsValidCell(wp.Row, wp.Col) {
			t.Fatalf("waypoint %+v outside resized grid", wp)
		}
	}
}
