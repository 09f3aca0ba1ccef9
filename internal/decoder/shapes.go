package decoder

// decodeFunc decodes one record body, the cursor already positioned past
// the record header. Decoders overwrite the reader's shared Envelope.
type decodeFunc func(r *Reader) (Geometry, error)

// decoders is the dispatch table keyed by the file-level shape type.
// The matching entry is resolved once at open and cached on the Reader;
// records are never dispatched by branching on their own tag.
var decoders = map[ShapeType]decodeFunc{
	ShapeNull:       decodeNull,
	ShapePoint:      decodePoint,
	ShapePolyLine:   decodePolyLine,
	ShapePolygon:    decodePolygon,
	ShapeMultiPoint: decodeMultiPoint,
}

// readShapeTag reads the record's leading type tag and checks it against
// the file-level shape type. Returns isNull=true for a Null record, in
// which case the caller produces its null geometry without consuming any
// further bytes of the record.
func readShapeTag(r *Reader, expected ShapeType) (isNull bool, err error) {
	tag, err := r.cur.int32LE()
	if err != nil {
		return false, err
	}
	if ShapeType(tag) == ShapeNull {
		return true, nil
	}
	if ShapeType(tag) != expected {
		return false, &ErrRecordTypeMismatch{
			Expected: expected,
			Actual:   tag,
			Record:   r.cur.record,
		}
	}
	return false, nil
}

// nullGeometry is the result of any Null record: no coordinates, and an
// emptied envelope. Distinct from, e.g., a MultiPoint with zero points.
func nullGeometry(r *Reader) Geometry {
	r.env.Init()
	return Geometry{Type: GeometryNull}
}

func decodeNull(r *Reader) (Geometry, error) {
	// In a NullShape file every record must itself be Null.
	if _, err := readShapeTag(r, ShapeNull); err != nil {
		return Geometry{}, err
	}
	return nullGeometry(r), nil
}

// decodePoint reads a Point record: tag then x, y float64.
// Points carry no bounding box, so the shared Envelope collapses to the
// point itself.
func decodePoint(r *Reader) (Geometry, error) {
	isNull, err := readShapeTag(r, ShapePoint)
	if err != nil {
		return Geometry{}, err
	}
	if isNull {
		return nullGeometry(r), nil
	}

	x, err := r.cur.float64LE()
	if err != nil {
		return Geometry{}, err
	}
	y, err := r.cur.float64LE()
	if err != nil {
		return Geometry{}, err
	}

	r.env.Init()
	r.env.Expand(x, y)
	return Geometry{Type: GeometryPoint, Point: Coordinate{X: x, Y: y}}, nil
}

// readBox reads the record's bounding box into the shared Envelope.
func readBox(r *Reader) error {
	var box [4]float64
	for i := range box {
		v, err := r.cur.float64LE()
		if err != nil {
			return err
		}
		box[i] = v
	}
	r.env.Set(box[0], box[1], box[2], box[3])
	return nil
}

// readPartsPoints reads the shared PolyLine/Polygon layout after the box:
// numParts, numPoints, part offsets, then the flat point array, split at
// the part boundaries.
//
// ESRI Shapefile Technical Description, PolyLine shape (Polygon is
// layout-identical): parts are starting indexes into the point array.
func readPartsPoints(r *Reader) ([][]Coordinate, error) {
	numParts, err := r.cur.int32LE()
	if err != nil {
		return nil, err
	}
	numPoints, err := r.cur.int32LE()
	if err != nil {
		return nil, err
	}
	if numParts < 0 || numPoints < 0 {
		return nil, &ErrMalformedRecord{
			Record: r.cur.record,
			Reason: "negative part or point count",
		}
	}

	offsets, err := r.cur.int32sLE(int(numParts))
	if err != nil {
		return nil, err
	}
	points, err := r.cur.coordinates(int(numPoints))
	if err != nil {
		return nil, err
	}

	parts, err := splitParts(points, offsets)
	if err != nil {
		return nil, &ErrMalformedRecord{Record: r.cur.record, Reason: err.Error()}
	}
	return parts, nil
}

// decodePolyLine reads a PolyLine record. A single part yields a bare
// LineString; multiple parts yield a MultiLineString holding the parts
// in record order.
func decodePolyLine(r *Reader) (Geometry, error) {
	isNull, err := readShapeTag(r, ShapePolyLine)
	if err != nil {
		return Geometry{}, err
	}
	if isNull {
		return nullGeometry(r), nil
	}

	if err := readBox(r); err != nil {
		return Geometry{}, err
	}
	parts, err := readPartsPoints(r)
	if err != nil {
		return Geometry{}, err
	}

	if len(parts) == 1 {
		return Geometry{Type: GeometryLineString, Line: parts[0]}, nil
	}
	return Geometry{Type: GeometryMultiLineString, Lines: parts}, nil
}

// decodePolygon reads a Polygon record. Parts become rings, classified
// by winding order and assembled into polygons with their holes; a
// single resulting polygon is returned bare, several as a MultiPolygon.
func decodePolygon(r *Reader) (Geometry, error) {
	isNull, err := readShapeTag(r, ShapePolygon)
	if err != nil {
		return Geometry{}, err
	}
	if isNull {
		return nullGeometry(r), nil
	}

	if err := readBox(r); err != nil {
		return Geometry{}, err
	}
	parts, err := readPartsPoints(r)
	if err != nil {
		return Geometry{}, err
	}

	rings := make([]Ring, len(parts))
	for i, part := range parts {
		rings[i] = Ring(part)
	}

	polygons := assemblePolygons(rings)
	if len(polygons) > 1 {
		return Geometry{Type: GeometryMultiPolygon, Polygons: polygons}, nil
	}
	return Geometry{Type: GeometryPolygon, Polygons: polygons}, nil
}

// decodeMultiPoint reads a MultiPoint record: box, point count, points.
// A MultiPoint with zero points is a valid, empty MultiPoint — not the
// same thing as a Null record.
func decodeMultiPoint(r *Reader) (Geometry, error) {
	isNull, err := readShapeTag(r, ShapeMultiPoint)
	if err != nil {
		return Geometry{}, err
	}
	if isNull {
		return nullGeometry(r), nil
	}

	if err := readBox(r); err != nil {
		return Geometry{}, err
	}
	numPoints, err := r.cur.int32LE()
	if err != nil {
		return Geometry{}, err
	}
	if numPoints < 0 {
		return Geometry{}, &ErrMalformedRecord{
			Record: r.cur.record,
			Reason: "negative point count",
		}
	}
	points, err := r.cur.coordinates(int(numPoints))
	if err != nil {
		return Geometry{}, err
	}

	return Geometry{Type: GeometryMultiPoint, Points: points}, nil
}
