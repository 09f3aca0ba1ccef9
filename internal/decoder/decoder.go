// Package decoder implements the ESRI Shapefile (.shp) geometry record
// decoder: main file header parsing, sequential record traversal, and
// per-shape-type binary decoding including multi-part ring assembly and
// shell/hole classification for polygons.
//
// The companion .dbf attribute table and .shx index files are outside
// this package's scope.
package decoder

import (
	"fmt"
	"io"
)

// Options configures a Reader. The zero value decodes with no transform
// and no validation.
type Options struct {
	// Transform, when non-nil, is applied to every coordinate of every
	// decoded geometry. Fixed for the life of the reader.
	Transform TransformFunc

	// Validate enables the post-decode geometry validation stage.
	Validate bool
}

// Reader decodes one shapefile geometry stream sequentially.
//
// Usage follows the scanner idiom: Advance until it returns false, then
// check Err to distinguish clean end-of-stream from failure. The current
// geometry and envelope are single slots overwritten on every Advance.
//
// Not safe for concurrent use. The reader assumes exclusive ownership of
// the backing stream.
type Reader struct {
	rs     io.ReadSeeker
	cur    *recordCursor
	header Header
	decode decodeFunc  // selected once at open from the dispatch table
	stages []stageFunc // post-decode pipeline, in order

	env    Envelope // shared per-record envelope, overwritten in place
	geom   Geometry // current geometry slot
	err    error
	closed bool
}

// NewReader constructs a Reader over rs, which must be positioned at the
// start of the stream. The 100-byte header is consumed immediately; an
// unsupported shape-type code fails construction outright.
func NewReader(rs io.ReadSeeker, opts Options) (*Reader, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("measure stream: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind stream: %w", err)
	}

	header, err := parseHeader(rs)
	if err != nil {
		return nil, err
	}

	decode, ok := decoders[header.ShapeType]
	if !ok {
		return nil, &ErrUnsupportedShapeType{Code: int32(header.ShapeType)}
	}

	r := &Reader{
		rs:     rs,
		cur:    newRecordCursor(rs, size),
		header: header,
		decode: decode,
	}
	r.env.Init()

	// Decode is always the first stage; the optional transform and
	// validation stages follow in a fixed order.
	if opts.Transform != nil {
		r.stages = append(r.stages, transformStage(opts.Transform, &r.env))
	}
	if opts.Validate {
		r.stages = append(r.stages, validateStage())
	}

	return r, nil
}

// Advance decodes the next record, returning false at clean end-of-stream
// or on error; Err tells the two apart. After a false return, further
// calls keep returning false without consuming bytes.
func (r *Reader) Advance() bool {
	if r.err != nil || r.closed {
		return false
	}

	ok, err := r.cur.advance()
	if err != nil {
		r.err = err
		return false
	}
	if !ok {
		return false
	}

	geom, err := r.decode(r)
	if err != nil {
		r.err = err
		return false
	}
	for _, stage := range r.stages {
		if err := stage(&geom); err != nil {
			r.err = err
			return false
		}
	}

	r.geom = geom
	return true
}

// Err returns the error that stopped Advance, or nil after a clean
// end-of-stream.
func (r *Reader) Err() error {
	return r.err
}

// Geometry returns the current record's geometry. The slot is
// overwritten by the next Advance; the value's coordinate slices are
// freshly allocated per record and remain valid.
func (r *Reader) Geometry() Geometry {
	return r.geom
}

// Envelope returns the reader's shared per-record envelope. The pointed-to
// value is overwritten in place on every Advance; use Copy to retain it.
func (r *Reader) Envelope() *Envelope {
	return &r.env
}

// Header returns the file header decoded at open.
func (r *Reader) Header() Header {
	return r.header
}

// RecordNumber returns the current record's record-number field.
// Well-formed files number records sequentially from 1, but the value is
// taken from the stream, not synthesized.
func (r *Reader) RecordNumber() int32 {
	return r.cur.number
}

// Reset repositions the reader at the first record, clearing any sticky
// error, so the stream can be traversed again without reopening.
func (r *Reader) Reset() error {
	if r.closed {
		return fmt.Errorf("reader is closed")
	}
	if err := r.cur.reset(); err != nil {
		return err
	}
	r.err = nil
	r.geom = Geometry{}
	r.env.Init()
	return nil
}

// Close releases the backing stream if it is closable. Closing an
// already-closed reader is a no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if c, ok := r.rs.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
