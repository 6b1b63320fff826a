package stream

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/common"
	orcio "github.com/haohui/orc/orc/io"
)

// InputStream delivers a byte stream as zero-copy windows. A window returned
// by Next stays valid until the following Next call. Backup rewinds within
// the bytes already handed out; Seek consumes one recorded position value per
// layer of the stream stack.
type InputStream interface {
	Next() ([]byte, error)
	Backup(count int) error
	Skip(count uint64) error
	BytesRead() uint64
	Seek(pp *common.PositionProvider) error
	Name() string
}

// SeekableArrayStream serves a backing buffer in fixed-size windows. A zero
// chunk size serves the whole buffer at once.
type SeekableArrayStream struct {
	data  []byte
	chunk int
	pos   int
	read  int // consumed offset of the current window start
}

func NewSeekableArrayStream(data []byte, chunkSize int) *SeekableArrayStream {
	if chunkSize <= 0 {
		chunkSize = len(data)
	}
	return &SeekableArrayStream{data: data, chunk: chunkSize}
}

func (s *SeekableArrayStream) Next() ([]byte, error) {
	if s.pos >= len(s.data) {
		return nil, io.EOF
	}
	n := s.chunk
	if remaining := len(s.data) - s.pos; n > remaining {
		n = remaining
	}
	s.read = s.pos
	w := s.data[s.pos : s.pos+n]
	s.pos += n
	return w, nil
}

func (s *SeekableArrayStream) Backup(count int) error {
	if count > s.pos-s.read {
		return errors.New("backup past last window")
	}
	s.pos -= count
	return nil
}

func (s *SeekableArrayStream) Skip(count uint64) error {
	if s.pos+int(count) > len(s.data) {
		return errors.WithStack(common.IoError{Op: "skip past end", Stream: s.Name()})
	}
	s.pos += int(count)
	return nil
}

func (s *SeekableArrayStream) BytesRead() uint64 {
	return uint64(s.pos)
}

func (s *SeekableArrayStream) Seek(pp *common.PositionProvider) error {
	offset := pp.Next()
	if offset > uint64(len(s.data)) {
		return errors.WithStack(common.IoError{Op: "seek past end", Stream: s.Name()})
	}
	s.pos = int(offset)
	s.read = s.pos
	return nil
}

func (s *SeekableArrayStream) Name() string {
	return fmt.Sprintf("memory stream of %d bytes", len(s.data))
}

// SeekableFileStream pages a (offset, length) region of a byte source in
// blockSize windows.
type SeekableFileStream struct {
	in        orcio.File
	start     uint64
	length    uint64
	blockSize int

	buffer []byte
	pos    uint64
	read   uint64
}

func NewSeekableFileStream(in orcio.File, offset uint64, length uint64, blockSize int) *SeekableFileStream {
	if blockSize <= 0 {
		blockSize = 256 * 1024
	}
	return &SeekableFileStream{in: in, start: offset, length: length, blockSize: blockSize}
}

func (s *SeekableFileStream) Next() ([]byte, error) {
	if s.pos >= s.length {
		return nil, io.EOF
	}
	n := uint64(s.blockSize)
	if remaining := s.length - s.pos; n > remaining {
		n = remaining
	}
	if uint64(cap(s.buffer)) < n {
		s.buffer = make([]byte, n)
	}
	w := s.buffer[:n]
	if err := s.in.ReadAt(w, s.start+s.pos); err != nil {
		return nil, err
	}
	s.read = s.pos
	s.pos += n
	return w, nil
}

func (s *SeekableFileStream) Backup(count int) error {
	if uint64(count) > s.pos-s.read {
		return errors.New("backup past last window")
	}
	s.pos -= uint64(count)
	return nil
}

func (s *SeekableFileStream) Skip(count uint64) error {
	if s.pos+count > s.length {
		return errors.WithStack(common.IoError{Op: "skip past end", Stream: s.Name()})
	}
	s.pos += count
	return nil
}

func (s *SeekableFileStream) BytesRead() uint64 {
	return s.pos
}

func (s *SeekableFileStream) Seek(pp *common.PositionProvider) error {
	offset := pp.Next()
	if offset > s.length {
		return errors.WithStack(common.IoError{Op: "seek past end", Stream: s.Name()})
	}
	s.pos = offset
	s.read = offset
	return nil
}

func (s *SeekableFileStream) Name() string {
	return fmt.Sprintf("%s range [%d, %d)", s.in.Name(), s.start, s.start+s.length)
}
