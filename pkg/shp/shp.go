// Package shp reads ESRI Shapefile geometry streams (.shp files).
//
// The package decodes the 2D shape types — Point, PolyLine, Polygon and
// MultiPoint — into structured geometries, reconstructing polygon
// shell/hole nesting from ring winding order. The companion .dbf
// attribute table and .shx index are external collaborators and are not
// read here.
//
// Create a reader with Open and iterate with Advance:
//
//	r, err := shp.Open("coastline.shp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	for r.Advance() {
//	    g := r.Geometry()
//	    // use g
//	}
//	if err := r.Err(); err != nil {
//	    log.Fatal(err)
//	}
package shp

import (
	"fmt"
	"os"

	"github.com/beetlebugorg/shapefile/internal/decoder"
)

// Reader is a sequential, single-pass handle over one shapefile geometry
// stream. It holds exactly one decoded geometry at a time; the current
// geometry and envelope slots are overwritten on every Advance.
//
// Not safe for concurrent use. Callers needing concurrent reads must use
// independent Readers over independent file handles.
type Reader struct {
	internal *decoder.Reader
	builder  GeometryBuilder

	geom  Geometry
	value interface{}
	env   Envelope
	err   error
}

// Open opens the shapefile at path with default options.
//
// The 100-byte file header is read immediately; a shape type outside
// {Null, Point, PolyLine, Polygon, MultiPoint} fails here, before any
// record is touched.
func Open(path string) (*Reader, error) {
	return OpenWithOptions(path, DefaultOpenOptions())
}

// OpenWithOptions opens the shapefile at path with custom options.
//
// The returned Reader owns the underlying file; Close releases it on
// every path and is safe to call more than once.
func OpenWithOptions(path string, opts OpenOptions) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}

	internalOpts := decoder.Options{
		Validate: opts.ValidateGeometry,
	}
	if opts.Transform != nil {
		internalOpts.Transform = decoder.TransformFunc(opts.Transform)
	}

	internal, err := decoder.NewReader(f, internalOpts)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Reader{internal: internal, builder: opts.Builder}, nil
}

// Advance decodes the next record. It returns false at clean
// end-of-stream or on error; check Err to tell the two apart. Once
// false, it stays false without consuming further bytes.
func (r *Reader) Advance() bool {
	if r.err != nil {
		return false
	}
	if !r.internal.Advance() {
		r.err = r.internal.Err()
		return false
	}

	r.geom = convertGeometry(r.internal.Geometry())
	r.env = Envelope(r.internal.Envelope().Copy())

	if r.builder != nil {
		value, err := r.builder.Build(r.geom)
		if err != nil {
			r.err = fmt.Errorf("record %d: build geometry: %w", r.internal.RecordNumber(), err)
			return false
		}
		r.value = value
	}
	return true
}

// Err returns the error that stopped Advance, or nil after a clean
// end-of-stream.
func (r *Reader) Err() error {
	return r.err
}

// Geometry returns the current record's geometry. The value is detached
// from the reader's internal buffers and remains valid after the next
// Advance.
func (r *Reader) Geometry() Geometry {
	return r.geom
}

// Value returns the current record's geometry as built by the
// GeometryBuilder supplied at open, or nil when no builder was set.
func (r *Reader) Value() interface{} {
	if r.builder == nil {
		return nil
	}
	return r.value
}

// Envelope returns a pointer to the reader's per-record envelope slot.
// The pointed-to value is overwritten on every Advance — copy it (it is
// a plain value, or use Copy) to retain a record's extent.
func (r *Reader) Envelope() *Envelope {
	return &r.env
}

// Header returns the file header decoded at open.
func (r *Reader) Header() Header {
	return convertHeader(r.internal.Header())
}

// RecordNumber returns the current record's record-number field, as
// stored in the stream. Well-formed files number records from 1.
func (r *Reader) RecordNumber() int32 {
	return r.internal.RecordNumber()
}

// Reset repositions the reader at the first record so the stream can be
// traversed again without reopening the file. Any sticky error is
// cleared.
func (r *Reader) Reset() error {
	if err := r.internal.Reset(); err != nil {
		return err
	}
	r.err = nil
	r.geom = Geometry{}
	r.value = nil
	r.env = Envelope{}
	return nil
}

// Close releases the underlying file. Closing an already-closed reader
// is a no-op.
func (r *Reader) Close() error {
	return r.internal.Close()
}
