package shp

import (
	"github.com/beetlebugorg/shapefile/internal/decoder"
)

// ShapeType identifies the geometry kind of a shapefile, as encoded in
// the file header (ESRI Shapefile Technical Description, Table 2).
type ShapeType int32

const (
	ShapeNull       ShapeType = 0
	ShapePoint      ShapeType = 1
	ShapePolyLine   ShapeType = 3
	ShapePolygon    ShapeType = 5
	ShapeMultiPoint ShapeType = 8
)

// String returns the shape type's name as used in the ESRI specification.
func (t ShapeType) String() string {
	return decoder.ShapeType(t).String()
}

// Header is the decoded shapefile main header. Immutable after open.
type Header struct {
	FileCode   int32 // magic constant, 9994 in well-formed files
	FileLength int32 // total file length in 16-bit words, informational
	Version    int32
	ShapeType  ShapeType

	// Box is the file-level bounding box from the header.
	Box Bounds
}

// Coordinate is a single (x, y) position.
type Coordinate struct {
	X, Y float64
}

// Ring is a closed, ordered coordinate sequence forming one polygon
// boundary. Winding is derived from the signed area: shapefiles store
// shells clockwise and holes counterclockwise.
type Ring []Coordinate

// Reversed returns a copy of the ring with the point order inverted.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}

// Polygon is one exterior shell with zero or more interior holes.
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
	return decoder.GeometryType(t).String()
}

// Geometry is a decoded shapefile record. Only the field matching Type
// is meaningful:
//
//	GeometryPoint           Point
//	GeometryMultiPoint      Points
//	GeometryLineString      Line
//	GeometryMultiLineString Lines
//	GeometryPolygon         Polygons (exactly one element)
//	GeometryMultiPolygon    Polygons
//
// GeometryNull carries no coordinates; it is produced by Null records
// and is distinct from, e.g., a MultiPoint with zero points.
type Geometry struct {
	Type     GeometryType
	Point    Coordinate
	Points   []Coordinate
	Line     []Coordinate
	Lines    [][]Coordinate
	Polygons []Polygon
}

// Envelope is the axis-aligned bounding box of the current record.
// The Reader holds one Envelope and overwrites it on every Advance;
// Copy detaches the current value.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Copy returns a detached value of the envelope's current state.
func (e *Envelope) Copy() Envelope {
	return *e
}

// Bounds converts the envelope to a Bounds value.
func (e Envelope) Bounds() Bounds {
	return Bounds{MinX: e.MinX, MinY: e.MinY, MaxX: e.MaxX, MaxY: e.MaxY}
}

// convertGeometry converts an internal geometry to the public API type.
// Coordinate slices are copied, so the result stays valid after the
// reader moves on.
func convertGeometry(g decoder.Geometry) Geometry {
	out := Geometry{Type: GeometryType(g.Type)}
	switch g.Type {
	case decoder.GeometryPoint:
		out.Point = Coordinate(g.Point)
	case decoder.GeometryMultiPoint:
		out.Points = convertCoordinates(g.Points)
	case decoder.GeometryLineString:
		out.Line = convertCoordinates(g.Line)
	case decoder.GeometryMultiLineString:
		out.Lines = make([][]Coordinate, len(g.Lines))
		for i, line := range g.Lines {
			out.Lines[i] = convertCoordinates(line)
		}
	case decoder.GeometryPolygon, decoder.GeometryMultiPolygon:
		out.Polygons = make([]Polygon, len(g.Polygons))
		for i, poly := range g.Polygons {
			out.Polygons[i].Shell = Ring(convertCoordinates(poly.Shell))
			if len(poly.Holes) > 0 {
				out.Polygons[i].Holes = make([]Ring, len(poly.Holes))
				for j, hole := range poly.Holes {
					out.Polygons[i].Holes[j] = Ring(convertCoordinates(hole))
				}
			}
		}
	}
	return out
}

func convertCoordinates(cs []decoder.Coordinate) []Coordinate {
	out := make([]Coordinate, len(cs))
	for i, c := range cs {
		out[i] = Coordinate(c)
	}
	return out
}

func convertHeader(h decoder.Header) Header {
	return Header{
		FileCode:   h.FileCode,
		FileLength: h.FileLength,
		Version:    h.Version,
		ShapeType:  ShapeType(h.ShapeType),
		Box:        Bounds{MinX: h.MinX, MinY: h.MinY, MaxX: h.MaxX, MaxY: h.MaxY},
	}
}
