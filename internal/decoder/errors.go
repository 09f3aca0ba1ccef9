package decoder

import (
	"fmt"
)

// ErrUnsupportedShapeType indicates the file header carries a shape type
// this decoder does not handle. Fatal at open; there is no degraded mode.
type ErrUnsupportedShapeType struct {
	Code int32
}

func (e *ErrUnsupportedShapeType) Error() string {
	return fmt.Sprintf("unsupported shape type %d (supported: 0=Null, 1=Point, 3=PolyLine, 5=Polygon, 8=MultiPoint)", e.Code)
}

// ErrRecordTypeMismatch indicates a record's embedded shape-type tag
// disagrees with the file-level shape type. Fatal for that advance;
// the decoder never silently skips a record.
type ErrRecordTypeMismatch struct {
	Expected ShapeType
	Actual   int32
	Record   int // 1-based record ordinal within the stream
}

func (e *ErrRecordTypeMismatch) Error() string {
	return fmt.Sprintf("record %d: shape type %d does not match file type %v",
		e.Record, e.Actual, e.Expected)
}

// ErrTruncatedRecord indicates the stream ended inside a record body:
// fewer bytes remained than the shape layout requires.
type ErrTruncatedRecord struct {
	Record int   // 1-based record ordinal within the stream
	Offset int64 // stream offset at which the short read occurred
}

func (e *ErrTruncatedRecord) Error() string {
	return fmt.Sprintf("record %d: truncated at byte offset %d", e.Record, e.Offset)
}

// ErrMalformedRecord indicates a record body violates the shape layout's
// structural invariants (negative counts, decreasing part offsets, part
// offsets past the point count).
type ErrMalformedRecord struct {
	Record int
	Reason string
}

func (e *ErrMalformedRecord) Error() string {
	return fmt.Sprintf("record %d: malformed: %s", e.Record, e.Reason)
}

// ErrInvalidGeometry indicates a decoded geometry failed validation.
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
}
