package io

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/common"
)

// File is the byte source for a reader: random-access reads of
// (offset, length) windows. Calls are serial; a short read is an error.
type File interface {
	// ReadAt fills p from the bytes starting at offset.
	ReadAt(p []byte, offset uint64) error
	Size() uint64
	Name() string
	Close() error
}

type osFile struct {
	f    *os.File
	size uint64
}

func Open(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.WithStack(err)
	}
	return &osFile{f: f, size: uint64(fi.Size())}, nil
}

func (r *osFile) ReadAt(p []byte, offset uint64) error {
	if _, err := r.f.ReadAt(p, int64(offset)); err != nil {
		return errors.WithStack(common.IoError{Op: err.Error(), Stream: r.f.Name()})
	}
	return nil
}

func (r *osFile) Size() uint64 {
	return r.size
}

func (r *osFile) Name() string {
	return r.f.Name()
}

func (r *osFile) Close() error {
	if err := r.f.Close(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

type memFile struct {
	name string
	data []byte
}

// NewMemFile wraps an in-memory buffer as a byte source.
func NewMemFile(name string, data []byte) File {
	return &memFile{name: name, data: data}
}

func (r *memFile) ReadAt(p []byte, offset uint64) error {
	if offset+uint64(len(p)) > uint64(len(r.data)) {
		return errors.WithStack(common.IoError{Op: "read past end", Stream: r.name})
	}
	copy(p, r.data[offset:])
	return nil
}

func (r *memFile) Size() uint64 {
	return uint64(len(r.data))
}

func (r *memFile) Name() string {
	return r.name
}

func (r *memFile) Close() error {
	return nil
}

var _ io.Closer = (File)(nil)
