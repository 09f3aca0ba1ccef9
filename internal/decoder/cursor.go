package decoder

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// recordCursor is a stateful position tracker over the record section of
// the stream. It advances one record at a time and exposes typed reads
// for the decoders; every read keeps the byte position in sync so that
// clean end-of-stream is detected exactly when position equals length.
//
// Not safe for concurrent use; the owning Reader serializes access.
type recordCursor struct {
	r    io.ReadSeeker
	size int64 // total stream length in bytes
	pos  int64 // current byte offset

	record int   // 1-based ordinal of the current record, 0 before the first advance
	number int32 // record number field of the current record, informational
	done   bool  // sticky end-of-stream flag
}

func newRecordCursor(r io.ReadSeeker, size int64) *recordCursor {
	return &recordCursor{r: r, size: size, pos: headerSize}
}

// advance positions the cursor at the next record body.
//
// Returns false with a nil error exactly when the position equals the
// stream length: the sole non-error termination signal. Once false it
// stays false without consuming further bytes. A stream that ends inside
// the 8-byte record header is reported as a truncated record, never as a
// bare EOF of ambiguous origin.
func (c *recordCursor) advance() (bool, error) {
	if c.done {
		return false, nil
	}
	if c.pos >= c.size {
		c.done = true
		return false, nil
	}

	// Record header: record number then content length, both int32
	// big-endian. The content length is a 16-bit word count and is not
	// used for decoding; the body length is implied by the shape layout.
	c.record++
	var buf [8]byte
	if err := c.readFull(buf[:]); err != nil {
		return false, err
	}
	c.number = int32(binary.BigEndian.Uint32(buf[0:4]))
	return true, nil
}

// reset repositions to the first record (byte offset 100) for a fresh
// pass without reopening the stream.
func (c *recordCursor) reset() error {
	if _, err := c.r.Seek(headerSize, io.SeekStart); err != nil {
		return fmt.Errorf("seek to first record: %w", err)
	}
	c.pos = headerSize
	c.record = 0
	c.number = 0
	c.done = false
	return nil
}

// readFull fills buf from the stream, tracking position. A short read
// means the trailing record is truncated.
func (c *recordCursor) readFull(buf []byte) error {
	n, err := io.ReadFull(c.r, buf)
	c.pos += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &ErrTruncatedRecord{Record: c.record, Offset: c.pos}
	}
	if err != nil {
		return fmt.Errorf("record %d: %w", c.record, err)
	}
	return nil
}

func (c *recordCursor) int32LE() (int32, error) {
	var buf [4]byte
	if err := c.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func (c *recordCursor) float64LE() (float64, error) {
	var buf [8]byte
	if err := c.readFull(buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// int32sLE reads n little-endian int32 values in one stream read.
func (c *recordCursor) int32sLE(n int) ([]int32, error) {
	buf := make([]byte, 4*n)
	if err := c.readFull(buf); err != nil {
		return nil, err
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return out, nil
}

// coordinates reads n little-endian (x, y) float64 pairs in one stream read.
func (c *recordCursor) coordinates(n int) ([]Coordinate, error) {
	buf := make([]byte, 16*n)
	if err := c.readFull(buf); err != nil {
		return nil, err
	}
	out := make([]Coordinate, n)
	for i := range out {
		out[i].X = math.Float64frombits(binary.LittleEndian.Uint64(buf[16*i:]))
		out[i].Y = math.Float64frombits(binary.LittleEndian.Uint64(buf[16*i+8:]))
	}
	return out, nil
}
