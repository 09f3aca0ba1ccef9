package shp

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Fixtures are written as real files so tests exercise Open end to end:
// file ownership, header decoding and the record stream together.

func writeShapefile(t *testing.T, path string, shapeType int32, records ...[]byte) {
	t.Helper()

	var buf bytes.Buffer
	var header [100]byte
	binary.BigEndian.PutUint32(header[0:4], 9994)
	binary.LittleEndian.PutUint32(header[28:32], 1000)
	binary.LittleEndian.PutUint32(header[32:36], uint32(shapeType))
	buf.Write(header[:])

	for i, body := range records {
		var rec [8]byte
		binary.BigEndian.PutUint32(rec[0:4], uint32(i+1))
		binary.BigEndian.PutUint32(rec[4:8], uint32(len(body)/2))
		buf.Write(rec[:])
		buf.Write(body)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func tempShapefile(t *testing.T, shapeType int32, records ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.shp")
	writeShapefile(t, path, shapeType, records...)
	return path
}

// body builds little-endian record bodies field by field.
type body struct {
	buf bytes.Buffer
}

func (b *body) i32(vs ...int32) *body {
	for _, v := range vs {
		binary.Write(&b.buf, binary.LittleEndian, v)
	}
	return b
}

func (b *body) f64(vs ...float64) *body {
	for _, v := range vs {
		binary.Write(&b.buf, binary.LittleEndian, v)
	}
	return b
}

func (b *body) coords(cs ...[2]float64) *body {
	for _, c := range cs {
		b.f64(c[0], c[1])
	}
	return b
}

func (b *body) bytes() []byte {
	return b.buf.Bytes()
}

func pointRecord(x, y float64) []byte {
	return (&body{}).i32(1).f64(x, y).bytes()
}

func nullRecord() []byte {
	return (&body{}).i32(0).bytes()
}

func polyRecord(shapeType int32, offsets []int32, points ...[2]float64) []byte {
	minX, minY, maxX, maxY := boxOf(points)
	b := (&body{}).i32(shapeType).f64(minX, minY, maxX, maxY)
	b.i32(int32(len(offsets)), int32(len(points)))
	return b.i32(offsets...).coords(points...).bytes()
}

func multiPointRecord(points ...[2]float64) []byte {
	minX, minY, maxX, maxY := boxOf(points)
	b := (&body{}).i32(8).f64(minX, minY, maxX, maxY)
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

// Shared ring fixtures; shells clockwise, holes counterclockwise per the
// shapefile convention.
var (
	cwSquare = [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}
	ccwHole  = [][2]float64{{2, 2}, {8, 2}, {8, 8}, {2, 8}, {2, 2}}
)

func flattenRings(rings ...[][2]float64) (offsets []int32, points [][2]float64) {
	for _, ring := range rings {
		offsets = append(offsets, int32(len(points)))
		points = append(points, ring...)
	}
	return
}
