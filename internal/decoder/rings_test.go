package decoder

import (
	"testing"
)

func ringOf(points [][2]float64) Ring {
	r := make(Ring, len(points))
	for i, p := range points {
		r[i] = Coordinate{X: p[0], Y: p[1]}
	}
	return r
}

func TestRingWinding(t *testing.T) {
	tests := []struct {
		name      string
		ring      Ring
		clockwise bool
	}{
		{name: "clockwise square", ring: ringOf(cwSquare), clockwise: true},
		{name: "counterclockwise square", ring: ringOf(ccwHole), clockwise: false},
		{name: "degenerate two points", ring: ringOf([][2]float64{{0, 0}, {1, 1}}), clockwise: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.Clockwise(); got != tt.clockwise {
				t.Errorf("Clockwise() = %v, want %v (area %v)", got, tt.clockwise, tt.ring.SignedArea())
			}
		})
	}
}

// TestRingSignedAreaUnclosed verifies the shoelace sum closes the ring
// implicitly when the last point does not repeat the first.
func TestRingSignedAreaUnclosed(t *testing.T) {
	closed := ringOf(cwSquare)
	open := closed[:len(closed)-1]
	if closed.SignedArea() != open.SignedArea() {
		t.Errorf("open ring area %v != closed ring area %v",
			open.SignedArea(), closed.SignedArea())
	}
}

func TestRingReversedFlipsWinding(t *testing.T) {
	ring := ringOf(cwSquare)
	rev := ring.Reversed()
	if rev.Clockwise() {
		t.Error("reversed clockwise ring should be counterclockwise")
	}
	if rev[0] != ring[len(ring)-1] {
		t.Errorf("reversed ring starts at %+v, want %+v", rev[0], ring[len(ring)-1])
	}
	// Original untouched.
	if !ring.Clockwise() {
		t.Error("Reversed mutated the receiver")
	}
}

func TestSplitParts(t *testing.T) {
	points := make([]Coordinate, 5)
	for i := range points {
		points[i] = Coordinate{X: float64(i)}
	}

	t.Run("two parts", func(t *testing.T) {
		parts, err := splitParts(points, []int32{0, 2})
		if err != nil {
			t.Fatalf("splitParts: %v", err)
		}
		if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 3 {
			t.Errorf("part sizes wrong: %v", parts)
		}
	})

	t.Run("single part extends to end", func(t *testing.T) {
		parts, err := splitParts(points, []int32{0})
		if err != nil {
			t.Fatalf("splitParts: %v", err)
		}
		if len(parts) != 1 || len(parts[0]) != 5 {
			t.Errorf("single part should span all points, got %v", parts)
		}
	})

	t.Run("empty middle part", func(t *testing.T) {
		parts, err := splitParts(points, []int32{0, 3, 3})
		if err != nil {
			t.Fatalf("splitParts: %v", err)
		}
		if len(parts[1]) != 0 {
			t.Errorf("repeated offset should yield an empty part, got %d points", len(parts[1]))
		}
	})

	t.Run("decreasing offsets rejected", func(t *testing.T) {
		if _, err := splitParts(points, []int32{3, 1}); err == nil {
			t.Error("expected error for decreasing offsets")
		}
	})

	t.Run("offset past end rejected", func(t *testing.T) {
		if _, err := splitParts(points, []int32{0, 7}); err == nil {
			t.Error("expected error for offset past point count")
		}
	})
}

// TestAssemblePolygonsSingleShellUnconditional: with exactly one shell,
// every hole attaches to it with no containment check at all.
func TestAssemblePolygonsSingleShellUnconditional(t *testing.T) {
	// Orphan hole is far outside the shell's envelope but still attaches
	// because the shell is the only candidate.
	polys := assemblePolygons([]Ring{ringOf(cwSquare), ringOf(ccwOrphan)})
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if len(polys[0].Holes) != 1 {
		t.Errorf("got %d holes, want 1", len(polys[0].Holes))
	}
}

// TestAssemblePolygonsMultiShellContainment: with several shells, holes
// go to a shell whose envelope contains theirs.
func TestAssemblePolygonsMultiShellContainment(t *testing.T) {
	polys := assemblePolygons([]Ring{
		ringOf(cwSquare),
		ringOf(cwSquareFar),
		ringOf(ccwHole), // inside cwSquare's envelope only
	})
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	if len(polys[0].Holes) != 1 {
		t.Errorf("first shell has %d holes, want 1", len(polys[0].Holes))
	}
	if len(polys[1].Holes) != 0 {
		t.Errorf("second shell has %d holes, want 0", len(polys[1].Holes))
	}
}

// TestAssemblePolygonsAllHoles: no shells at all promotes every ring,
// reversed to exterior winding.
func TestAssemblePolygonsAllHoles(t *testing.T) {
	polys := assemblePolygons([]Ring{ringOf(ccwHole), ringOf(ccwOrphan)})
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	for i, poly := range polys {
		if !poly.Shell.Clockwise() {
			t.Errorf("promoted polygon %d not reversed to clockwise", i)
		}
		if len(poly.Holes) != 0 {
			t.Errorf("promoted polygon %d has holes", i)
		}
	}
}

func TestAssemblePolygonsNoRings(t *testing.T) {
	if polys := assemblePolygons(nil); len(polys) != 0 {
		t.Errorf("expected no polygons from no rings, got %d", len(polys))
	}
}
