package shp

// Bounds is an axis-aligned bounding box in the shapefile's coordinate
// system.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Intersects reports whether b and other overlap, boundaries included.
func (b Bounds) Intersects(other Bounds) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// Contains reports whether other lies entirely within b.
func (b Bounds) Contains(other Bounds) bool {
	return other.MinX >= b.MinX && other.MaxX <= b.MaxX &&
		other.MinY >= b.MinY && other.MaxY <= b.MaxY
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	out := b
	if other.MinX < out.MinX {
		out.MinX = other.MinX
	}
	if other.MaxX > out.MaxX {
		out.MaxX = other.MaxX
	}
	if other.MinY < out.MinY {
		out.MinY = other.MinY
	}
	if other.MaxY > out.MaxY {
		out.MaxY = other.MaxY
	}
	return out
}

// geometryBounds computes the bounding box of a geometry's coordinates.
// Returns ok=false for null and coordinate-free geometries.
func geometryBounds(g Geometry) (Bounds, bool) {
	var b Bounds
	seen := false
	expand := func(c Coordinate) {
		if !seen {
			b = Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			seen = true
			return
		}
		if c.X < b.MinX {
			b.MinX = c.X
		}
		if c.X > b.MaxX {
			b.MaxX = c.X
		}
		if c.Y < b.MinY {
			b.MinY = c.Y
		}
		if c.Y > b.MaxY {
			b.MaxY = c.Y
		}
	}

	switch g.Type {
	case GeometryPoint:
		expand(g.Point)
	case GeometryMultiPoint:
		for _, c := range g.Points {
			expand(c)
		}
	case GeometryLineString:
		for _, c := range g.Line {
			expand(c)
		}
	case GeometryMultiLineString:
		for _, line := range g.Lines {
			for _, c := range line {
				expand(c)
			}
		}
	case GeometryPolygon, GeometryMultiPolygon:
		// Holes lie within their shell, so shells alone bound the polygon.
		for _, poly := range g.Polygons {
			for _, c := range poly.Shell {
				expand(c)
			}
		}
	}
	return b, seen
}
