package internal

import "io"
import "fmt"
import "errors"

// ErrTruncated is reported when the source ends in the middle of a
// fixed-width field, a header or a glyph bitmap.
var ErrTruncated = errors.New("truncated input")

// Reader is a little-endian cursor over a seekable byte source. Every
// read consumes exactly the requested width or fails with a wrapped
// [ErrTruncated]; there are no partial results.
type Reader struct {
	src io.ReadSeeker
	pos int64
	fieldBuff [4]byte // scratch space for fixed-width fields
}

func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{ src: src }
}

// Returns the current absolute offset within the source.
func (self *Reader) Pos() int64 { return self.pos }

// SeekTo moves the cursor to an absolute offset.
func (self *Reader) SeekTo(offset int64) error {
	newPos, err := self.src.Seek(offset, io.SeekStart)
	if err != nil { return err }
	self.pos = newPos
	return nil
}

// Skip moves the cursor relative to its current position.
func (self *Reader) Skip(offset int64) error {
	newPos, err := self.src.Seek(offset, io.SeekCurrent)
	if err != nil { return err }
	self.pos = newPos
	return nil
}

// ReadFull fills the given buffer completely or fails.
func (self *Reader) ReadFull(buffer []byte) error {
	n, err := io.ReadFull(self.src, buffer)
	self.pos += int64(n)
	if err != nil {
		return fmt.Errorf("%w at offset %d", ErrTruncated, self.pos)
	}
	return nil
}

// ReadBytes reads the next n bytes into a fresh buffer.
func (self *Reader) ReadBytes(n int) ([]byte, error) {
	buffer := make([]byte, n)
	err := self.ReadFull(buffer)
	if err != nil { return nil, err }
	return buffer, nil
}

func (self *Reader) ReadUint8() (uint8, error) {
	err := self.ReadFull(self.fieldBuff[0 : 1])
	if err != nil { return 0, err }
	return self.fieldBuff[0], nil
}

func (self *Reader) ReadInt8() (int8, error) {
	value, err := self.ReadUint8()
	return int8(value), err
}

func (self *Reader) ReadUint16() (uint16, error) {
	err := self.ReadFull(self.fieldBuff[0 : 2])
	if err != nil { return 0, err }
	return DecodeUint16LE(self.fieldBuff[0 : 2]), nil
}

func (self *Reader) ReadInt16() (int16, error) {
	value, err := self.ReadUint16()
	return int16(value), err
}

func (self *Reader) ReadUint32() (uint32, error) {
	err := self.ReadFull(self.fieldBuff[0 : 4])
	if err != nil { return 0, err }
	return DecodeUint32LE(self.fieldBuff[0 : 4]), nil
}

func (self *Reader) ReadInt32() (int32, error) {
	value, err := self.ReadUint32()
	return int32(value), err
}
