package stream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/snappy"
	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/pb/pb"
)

// NewDecompressStream layers chunk decompression over a compressed stream.
// NONE passes the stream through untouched; ZLIB chunks hold raw deflate
// bytes, SNAPPY chunks hold snappy blocks. One chunk is inflated at a time
// into a reused scratch buffer. A chunk whose stored length exceeds blockSize
// is rejected; the inflated size is not checked.
func NewDecompressStream(in InputStream, kind pb.CompressionKind, blockSize uint64) (InputStream, error) {
	switch kind {
	case pb.CompressionKind_NONE:
		return in, nil
	case pb.CompressionKind_ZLIB, pb.CompressionKind_SNAPPY:
		return &decompressStream{in: in, kind: kind, blockSize: blockSize}, nil
	default:
		return nil, errors.WithStack(common.NotImplemented{Feature: fmt.Sprintf("compression kind %s", kind)})
	}
}

type decompressStream struct {
	in        InputStream
	kind      pb.CompressionKind
	blockSize uint64

	// current input window
	window []byte
	woff   int

	// current decoded chunk and the consumed offset within it
	chunk    []byte
	chunkPos int

	scratch []byte // inflate output, reused across chunks
	cbuf    []byte // gathers a chunk body that spans input windows

	bytesRead uint64
}

func (d *decompressStream) Next() ([]byte, error) {
	if d.chunkPos < len(d.chunk) {
		w := d.chunk[d.chunkPos:]
		d.chunkPos = len(d.chunk)
		d.bytesRead += uint64(len(w))
		return w, nil
	}
	if err := d.readChunk(); err != nil {
		return nil, err
	}
	w := d.chunk
	d.chunkPos = len(d.chunk)
	d.bytesRead += uint64(len(w))
	return w, nil
}

func (d *decompressStream) Backup(count int) error {
	if count > d.chunkPos {
		return errors.New("backup past last window")
	}
	d.chunkPos -= count
	d.bytesRead -= uint64(count)
	return nil
}

func (d *decompressStream) Skip(count uint64) error {
	for count > 0 {
		if d.chunkPos >= len(d.chunk) {
			if err := d.readChunk(); err != nil {
				return err
			}
		}
		n := uint64(len(d.chunk) - d.chunkPos)
		if n > count {
			n = count
		}
		d.chunkPos += int(n)
		d.bytesRead += n
		count -= n
	}
	return nil
}

func (d *decompressStream) BytesRead() uint64 {
	return d.bytesRead
}

// Seek consumes two position values: the chunk offset in the compressed
// stream and the byte offset inside the decompressed chunk.
func (d *decompressStream) Seek(pp *common.PositionProvider) error {
	if err := d.in.Seek(pp); err != nil {
		return err
	}
	d.window = nil
	d.woff = 0
	d.chunk = nil
	d.chunkPos = 0
	return d.Skip(pp.Next())
}

func (d *decompressStream) Name() string {
	return fmt.Sprintf("%s %s", d.kind, d.in.Name())
}

func (d *decompressStream) inputByte() (byte, error) {
	if d.woff >= len(d.window) {
		var err error
		if d.window, err = d.in.Next(); err != nil {
			return 0, err
		}
		d.woff = 0
	}
	b := d.window[d.woff]
	d.woff++
	return b, nil
}

// gather returns the next n input bytes, zero-copy when the current window
// covers them.
func (d *decompressStream) gather(n int) ([]byte, error) {
	if len(d.window)-d.woff >= n {
		b := d.window[d.woff : d.woff+n]
		d.woff += n
		return b, nil
	}
	if cap(d.cbuf) < n {
		d.cbuf = make([]byte, n)
	}
	got := 0
	for got < n {
		if d.woff >= len(d.window) {
			var err error
			if d.window, err = d.in.Next(); err != nil {
				if err == io.EOF {
					return nil, errors.WithStack(common.CompressionError{Kind: "truncated chunk", Offset: d.in.BytesRead()})
				}
				return nil, err
			}
			d.woff = 0
		}
		c := copy(d.cbuf[got:n], d.window[d.woff:])
		d.woff += c
		got += c
	}
	return d.cbuf[:n], nil
}

func (d *decompressStream) readChunk() error {
	b0, err := d.inputByte()
	if err != nil {
		return err // io.EOF at a chunk boundary is a clean end of stream
	}
	header := make([]byte, 3)
	header[0] = b0
	for i := 1; i < 3; i++ {
		if header[i], err = d.inputByte(); err != nil {
			if err == io.EOF {
				return errors.WithStack(common.CompressionError{Kind: "truncated chunk header", Offset: d.in.BytesRead()})
			}
			return err
		}
	}
	length, original := common.DecChunkHeader(header)
	if uint64(length) > d.blockSize {
		return errors.WithStack(common.CompressionError{
			Kind:   fmt.Sprintf("chunk length %d larger than block size %d", length, d.blockSize),
			Offset: d.in.BytesRead(),
		})
	}
	logger.Tracef("decompress stream %s reading a chunk, length %d original %t", d.Name(), length, original)

	body, err := d.gather(length)
	if err != nil {
		return err
	}
	if original {
		d.chunk = body
		d.chunkPos = 0
		return nil
	}

	switch d.kind {
	case pb.CompressionKind_ZLIB:
		out := bytes.NewBuffer(d.scratch[:0])
		r := flate.NewReader(bytes.NewReader(body))
		if _, err := out.ReadFrom(r); err != nil {
			r.Close()
			return errors.WithStack(common.CompressionError{Kind: "zlib: " + err.Error(), Offset: d.in.BytesRead()})
		}
		if err := r.Close(); err != nil {
			return errors.WithStack(common.CompressionError{Kind: "zlib: " + err.Error(), Offset: d.in.BytesRead()})
		}
		d.scratch = out.Bytes()
	case pb.CompressionKind_SNAPPY:
		decoded, err := snappy.Decode(d.scratch[:cap(d.scratch)], body)
		if err != nil {
			return errors.WithStack(common.CompressionError{Kind: "snappy: " + err.Error(), Offset: d.in.BytesRead()})
		}
		d.scratch = decoded
	}
	d.chunk = d.scratch
	d.chunkPos = 0
	return nil
}
