package decoder

import "fmt"

// splitParts partitions a flat point array at the part-offset boundaries.
//
// ESRI Shapefile Technical Description, PolyLine/Polygon shapes: part i
// spans [offsets[i], offsets[i+1]); the last part extends to the total
// point count. Offsets must be non-decreasing and within range.
func splitParts(points []Coordinate, offsets []int32) ([][]Coordinate, error) {
	parts := make([][]Coordinate, len(offsets))
	for i := range offsets {
		start := int(offsets[i])
		end := len(points)
		if i < len(offsets)-1 {
			end = int(offsets[i+1])
		}
		switch {
		case start < 0:
			return nil, fmt.Errorf("part %d: negative offset %d", i, start)
		case start > end:
			return nil, fmt.Errorf("part %d: offset %d past next offset %d", i, start, end)
		case end > len(points):
			return nil, fmt.Errorf("part %d: offset %d past point count %d", i, end, len(points))
		}
		parts[i] = points[start:end]
	}
	return parts, nil
}

// assemblePolygons classifies rings into shells and holes by winding
// order and assigns each hole to an enclosing shell.
//
// Shapefiles store exterior rings clockwise and holes counterclockwise,
// with no explicit nesting structure; nesting is reconstructed here.
// Containment is judged on bounding envelopes only — necessary but not
// sufficient for true ring nesting. This matches how shapefile consumers
// conventionally resolve the format's ambiguity; a point-in-polygon
// check would be stricter but is deliberately not applied.
//
// Assignment rules:
//   - Exactly one shell: every hole belongs to it, no containment check.
//   - Multiple shells: each shell claims, scanning the remaining holes
//     in reverse, those whose envelope its own envelope contains.
//   - Holes left unclaimed are promoted to standalone shells: reversed
//     to exterior winding and appended after the original shells.
func assemblePolygons(rings []Ring) []Polygon {
	var shells, holes []Ring
	for _, ring := range rings {
		if ring.Clockwise() {
			shells = append(shells, ring)
		} else {
			holes = append(holes, ring)
		}
	}

	if len(shells) == 1 {
		return []Polygon{{Shell: shells[0], Holes: holes}}
	}

	polygons := make([]Polygon, 0, len(shells)+len(holes))
	for _, shell := range shells {
		poly := Polygon{Shell: shell}
		env := shell.Envelope()
		for i := len(holes) - 1; i >= 0; i-- {
			holeEnv := holes[i].Envelope()
			if env.Contains(holeEnv) {
				poly.Holes = append(poly.Holes, holes[i])
				holes = append(holes[:i], holes[i+1:]...)
			}
		}
		polygons = append(polygons, poly)
	}

	// Unclaimed holes become their own polygons with exterior winding.
	for _, hole := range holes {
		polygons = append(polygons, Polygon{Shell: hole.Reversed()})
	}

	return polygons
}
