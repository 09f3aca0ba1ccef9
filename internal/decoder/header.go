package decoder

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// headerSize is the fixed length of the main file header.
// ESRI Shapefile Technical Description, Table 1: the header is always
// 100 bytes, mixing big-endian and little-endian fields.
const headerSize = 100

// fileCode is the magic constant at byte 0 of every shapefile.
// Stored in the Header for inspection but not validated; a stream that
// is not a shapefile fails at the shape-type check regardless.
const fileCode = 9994

// ShapeType identifies the geometry kind of a file or record.
//
// ESRI Shapefile Technical Description, Table 2. Only the 2D types are
// handled here; Z/M variants and MultiPatch are out of scope.
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
	switch t {
	case ShapeNull:
		return "NullShape"
	case ShapePoint:
		return "Point"
	case ShapePolyLine:
		return "PolyLine"
	case ShapePolygon:
		return "Polygon"
	case ShapeMultiPoint:
		return "MultiPoint"
	default:
		return fmt.Sprintf("ShapeType(%d)", int32(t))
	}
}

// Header is the decoded main file header. Created once at open,
// immutable thereafter.
type Header struct {
	FileCode   int32     // magic constant, 9994 in well-formed files
	FileLength int32     // total file length in 16-bit words, informational
	Version    int32     // always 1000 in practice, ignored by decoding
	ShapeType  ShapeType // file-level shape type; every record must match it or be Null

	// Bounding box of all shapes in the file, from the header.
	MinX, MinY, MaxX, MaxY float64
}

// parseHeader decodes the 100-byte main file header.
//
// ESRI Shapefile Technical Description, Table 1:
//
//	byte  0: file code, int32 big-endian (9994)
//	bytes 4-23: unused
//	byte 24: file length in 16-bit words, int32 big-endian
//	byte 28: version, int32 little-endian
//	byte 32: shape type, int32 little-endian
//	byte 36: bounding box Xmin, Ymin, Xmax, Ymax, float64 little-endian
//	byte 68: Zmin, Zmax, Mmin, Mmax, ignored by this decoder
//
// An unrecognized shape-type code is fatal: the per-record decoder is
// selected from this value once, so there is nothing useful a reader
// could do with the rest of the stream.
func parseHeader(r io.Reader) (Header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("read file header: %w", err)
	}

	h := Header{
		FileCode:   int32(binary.BigEndian.Uint32(buf[0:4])),
		FileLength: int32(binary.BigEndian.Uint32(buf[24:28])),
		Version:    int32(binary.LittleEndian.Uint32(buf[28:32])),
		MinX:       math.Float64frombits(binary.LittleEndian.Uint64(buf[36:44])),
		MinY:       math.Float64frombits(binary.LittleEndian.Uint64(buf[44:52])),
		MaxX:       math.Float64frombits(binary.LittleEndian.Uint64(buf[52:60])),
		MaxY:       math.Float64frombits(binary.LittleEndian.Uint64(buf[60:68])),
	}

	code := int32(binary.LittleEndian.Uint32(buf[32:36]))
	switch ShapeType(code) {
	case ShapeNull, ShapePoint, ShapePolyLine, ShapePolygon, ShapeMultiPoint:
		h.ShapeType = ShapeType(code)
	default:
		return Header{}, &ErrUnsupportedShapeType{Code: code}
	}

	return h, nil
}
