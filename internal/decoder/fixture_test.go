package decoder

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// Test fixtures are built in memory, byte-for-byte against the layout in
// the ESRI Shapefile Technical Description, so every decoder test reads
// exactly what a real .shp stream would contain.

// shpFixture accumulates a shapefile stream: 100-byte header first, then
// records appended with addRecord.
type shpFixture struct {
	buf bytes.Buffer
}

func newFixture(shapeType int32) *shpFixture {
	f := &shpFixture{}

	var header [headerSize]byte
	binary.BigEndian.PutUint32(header[0:4], fileCode)
	// File length (words, big-endian) is informational; fixtures leave it
	// zero to prove decoding never depends on it.
	binary.LittleEndian.PutUint32(header[28:32], 1000) // version
	binary.LittleEndian.PutUint32(header[32:36], uint32(shapeType))
	// Bounding box left zeroed; header box values are covered separately.
	f.buf.Write(header[:])
	return f
}

// addRecord appends a record header (number and word-count content
// length, both big-endian) followed by the body bytes.
func (f *shpFixture) addRecord(number int32, body []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(number))
	binary.BigEndian.PutUint32(hdr[4:8], uint32(len(body)/2))
	f.buf.Write(hdr[:])
	f.buf.Write(body)
}

// addBytes appends raw bytes, for building deliberately broken streams.
func (f *shpFixture) addBytes(b []byte) {
	f.buf.Write(b)
}

func (f *shpFixture) bytes() []byte {
	return f.buf.Bytes()
}

func (f *shpFixture) open(t *testing.T, opts Options) *Reader {
	t.Helper()
	r, err := NewReader(bytes.NewReader(f.bytes()), opts)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	return r
}

// recordBody builds a little-endian record body field by field.
type recordBody struct {
	buf bytes.Buffer
}

func (b *recordBody) i32(v int32) *recordBody {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *recordBody) f64(vs ...float64) *recordBody {
	for _, v := range vs {
		binary.Write(&b.buf, binary.LittleEndian, v)
	}
	return b
}

func (b *recordBody) coords(cs ...[2]float64) *recordBody {
	for _, c := range cs {
		b.f64(c[0], c[1])
	}
	return b
}

func (b *recordBody) bytes() []byte {
	return b.buf.Bytes()
}

// pointBody builds a Point record body.
func pointBody(x, y float64) []byte {
	b := &recordBody{}
	return b.i32(int32(ShapePoint)).f64(x, y).bytes()
}

// nullBody builds a Null record body: the type tag alone.
func nullBody() []byte {
	b := &recordBody{}
	return b.i32(int32(ShapeNull)).bytes()
}

// polyBody builds a PolyLine or Polygon record body with a box computed
// from the points.
func polyBody(shapeType int32, offsets []int32, points ...[2]float64) []byte {
	minX, minY, maxX, maxY := boxOf(points)
	b := &recordBody{}
	b.i32(shapeType).f64(minX, minY, maxX, maxY)
	b.i32(int32(len(offsets))).i32(int32(len(points)))
	for _, off := range offsets {
		b.i32(off)
	}
	return b.coords(points...).bytes()
}

// multiPointBody builds a MultiPoint record body.
func multiPointBody(points ...[2]float64) []byte {
	minX, minY, maxX, maxY := boxOf(points)
	b := &recordBody{}
	b.i32(int32(ShapeMultiPoint)).f64(minX, minY, maxX, maxY)
	return b.i32(int32(len(points))).coords(points...).bytes()
}

func boxOf(points [][2]float64) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = points[0][0], points[0][1]
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	return
}

// Ring fixtures used across polygon tests. Shapefile convention: shells
// wind clockwise, holes counterclockwise.
var (
	cwSquare = [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}
	ccwHole  = [][2]float64{{2, 2}, {8, 2}, {8, 8}, {2, 8}, {2, 2}}

	cwSquareFar = [][2]float64{{20, 0}, {20, 10}, {30, 10}, {30, 0}, {20, 0}}
	ccwOrphan   = [][2]float64{{40, 40}, {45, 40}, {45, 45}, {40, 45}, {40, 40}}
)

func flatten(rings ...[][2]float64) (offsets []int32, points [][2]float64) {
	for _, ring := range rings {
		offsets = append(offsets, int32(len(points)))
		points = append(points, ring...)
	}
	return
}
