package decoder

// Coordinate is a single (x, y) position in the shapefile's planar
// coordinate system. Shapefiles carry no datum information in the .shp
// stream itself; interpretation is up to the caller (or the .prj file,
// which is outside this package's scope).
type Coordinate struct {
	X, Y float64
}

// Ring is an ordered, closed sequence of coordinates forming one polygon
// boundary. Orientation (clockwise vs. counterclockwise) is derived from
// the signed area, never stored.
type Ring []Coordinate

// SignedArea computes the shoelace signed area of the ring.
// Positive for counterclockwise winding, negative for clockwise.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < len(r)-1; i++ {
		sum += r[i].X*r[i+1].Y - r[i+1].X*r[i].Y
	}
	// Close the ring implicitly in case the last point doesn't repeat
	// the first. For a properly closed ring this term is zero.
	last, first := r[len(r)-1], r[0]
	sum += last.X*first.Y - first.X*last.Y
	return sum / 2
}

// Clockwise reports whether the ring winds clockwise.
//
// ESRI Shapefile Technical Description, Polygon shape: exterior rings
// are stored in clockwise order, interior rings (holes) counterclockwise.
func (r Ring) Clockwise() bool {
	return r.SignedArea() < 0
}

// Reversed returns a copy of the ring with the point order inverted,
// flipping its winding direction.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}

// Envelope returns the axis-aligned bounding box of the ring.
func (r Ring) Envelope() Envelope {
	var e Envelope
	e.Init()
	for _, c := range r {
		e.Expand(c.X, c.Y)
	}
	return e
}

// Polygon is one exterior shell with zero or more interior holes.
// All holes lie within the shell's bounding envelope (a necessary,
// not sufficient, condition for true containment).
type Polygon struct {
	Shell Ring
	Holes []Ring
}

// GeometryType tags the variant held by a Geometry.
type GeometryType int

const (
	GeometryNull GeometryType = iota
	GeometryPoint
	GeometryMultiPoint
	GeometryLineString
	GeometryMultiLineString
	GeometryPolygon
	GeometryMultiPolygon
)

// String returns the conventional name of the geometry type.
func (t GeometryType) String() string {
	switch t {
	case GeometryNull:
		return "Null"
	case GeometryPoint:
		return "Point"
	case GeometryMultiPoint:
		return "MultiPoint"
	case GeometryLineString:
		return "LineString"
	case GeometryMultiLineString:
		return "MultiLineString"
	case GeometryPolygon:
		return "Polygon"
	case GeometryMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Geometry is a tagged variant over the shapes this decoder produces.
// Only the field matching Type is meaningful:
//
//	GeometryPoint           Point
//	GeometryMultiPoint      Points
//	GeometryLineString      Line
//	GeometryMultiLineString Lines
//	GeometryPolygon         Polygons (exactly one element)
//	GeometryMultiPolygon    Polygons
//
// GeometryNull carries no coordinates and is distinct from, e.g., a
// MultiPoint with zero points.
type Geometry struct {
	Type     GeometryType
	Point    Coordinate
	Points   []Coordinate
	Line     []Coordinate
	Lines    [][]Coordinate
	Polygons []Polygon
}

// eachCoordinate applies fn to every coordinate of the geometry in place.
func (g *Geometry) eachCoordinate(fn func(*Coordinate)) {
	switch g.Type {
	case GeometryPoint:
		fn(&g.Point)
	case GeometryMultiPoint:
		for i := range g.Points {
			fn(&g.Points[i])
		}
	case GeometryLineString:
		for i := range g.Line {
			fn(&g.Line[i])
		}
	case GeometryMultiLineString:
		for _, line := range g.Lines {
			for i := range line {
				fn(&line[i])
			}
		}
	case GeometryPolygon, GeometryMultiPolygon:
		for pi := range g.Polygons {
			shell := g.Polygons[pi].Shell
			for i := range shell {
				fn(&shell[i])
			}
			for _, hole := range g.Polygons[pi].Holes {
				for i := range hole {
					fn(&hole[i])
				}
			}
		}
	}
}
