package decoder

import (
	"fmt"
	"math"
)

// validateCoordinate rejects NaN and infinite ordinates. Shapefiles use
// IEEE doubles, so corrupt or uninitialized records surface here rather
// than as absurd geometry downstream.
func validateCoordinate(c Coordinate) error {
	if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) {
		return fmt.Errorf("non-finite coordinate (%v, %v)", c.X, c.Y)
	}
	return nil
}

// validateGeometry checks a decoded geometry against basic structural
// rules: all coordinates finite, and every polygon hole inside its
// shell's bounding envelope. The envelope check mirrors the containment
// test used during ring assignment; it does not prove true nesting.
func validateGeometry(g *Geometry) error {
	var bad error
	g.eachCoordinate(func(c *Coordinate) {
		if bad == nil {
			bad = validateCoordinate(*c)
		}
	})
	if bad != nil {
		return &ErrInvalidGeometry{Type: g.Type, Reason: bad.Error()}
	}

	if g.Type == GeometryPolygon || g.Type == GeometryMultiPolygon {
		for pi, poly := range g.Polygons {
			shellEnv := poly.Shell.Envelope()
			for hi, hole := range poly.Holes {
				if !shellEnv.Contains(hole.Envelope()) {
					return &ErrInvalidGeometry{
						Type:   g.Type,
						Reason: fmt.Sprintf("polygon %d: hole %d outside shell envelope", pi, hi),
					}
				}
			}
		}
	}
	return nil
}
