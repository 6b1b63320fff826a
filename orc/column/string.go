package column

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/api"
	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/orc/encoding"
	"github.com/haohui/orc/orc/stream"
	"github.com/haohui/orc/pb/pb"
)

// stringDirectReader decodes direct-encoded STRING, BINARY, CHAR and VARCHAR
// columns: an unsigned LENGTH stream and a raw DATA byte stream. Row values
// are sub-slices of a blob the reader owns; the blob is regrown per batch
// and its contents stay put until the next Next call.
type stringDirectReader struct {
	reader
	length encoding.IntDecoder
	data   stream.InputStream

	pool    common.MemoryPool
	blob    []byte
	lengths []int64
}

func newStringDirectReader(schema *api.TypeDescription, streams StripeStreams, enc *pb.ColumnEncoding) (Reader, error) {
	base, err := newBaseReader(schema, streams)
	if err != nil {
		return nil, err
	}
	lengthIn, err := streams.GetStream(schema.Id, pb.Stream_LENGTH)
	if err != nil {
		return nil, err
	}
	if lengthIn == nil {
		return nil, errors.WithStack(common.ParseError{What: "string column has no LENGTH stream"})
	}
	dataIn, err := streams.GetStream(schema.Id, pb.Stream_DATA)
	if err != nil {
		return nil, err
	}
	if dataIn == nil {
		return nil, errors.WithStack(common.ParseError{What: "string column has no DATA stream"})
	}
	c := &stringDirectReader{reader: base, data: dataIn, pool: streams.GetReaderOptions().Pool}
	if rleVersion2(enc.GetKind()) {
		c.length = encoding.NewIntRleV2(lengthIn, false)
	} else {
		c.length = encoding.NewIntRleV1(lengthIn, false)
	}
	return c, nil
}

func (c *stringDirectReader) Next(b api.ColumnVectorBatch, numValues int, notNull []bool) error {
	batch, ok := b.(*api.StringBatch)
	if !ok {
		return errors.WithStack(common.ParseError{What: "batch is not a string batch"})
	}
	if err := c.nextPresents(&batch.BatchBase, numValues, notNull); err != nil {
		return err
	}
	mask := dataMask(&batch.BatchBase)

	if cap(c.lengths) < numValues {
		c.lengths = make([]int64, numValues)
	}
	lengths := c.lengths[:numValues]
	if err := c.length.Next(lengths, numValues, mask); err != nil {
		return err
	}

	var total int
	for i := 0; i < numValues; i++ {
		if mask == nil || mask[i] {
			total += int(lengths[i])
		}
	}

	// regrow the backing blob; previously returned rows die here
	if cap(c.blob) < total {
		c.pool.Free(c.blob)
		c.blob = c.pool.Allocate(total)
	}
	c.blob = c.blob[:total]
	if err := readFully(c.data, c.blob); err != nil {
		return err
	}

	offset := 0
	for i := 0; i < numValues; i++ {
		if mask == nil || mask[i] {
			l := int(lengths[i])
			batch.Data[i] = c.blob[offset : offset+l]
			offset += l
		} else {
			batch.Data[i] = nil
		}
	}
	return nil
}

func (c *stringDirectReader) Skip(numValues uint64) (uint64, error) {
	nonNull, err := c.skipPresents(numValues)
	if err != nil {
		return 0, err
	}
	var buffer [512]int64
	for remaining := nonNull; remaining > 0; {
		chunk := uint64(len(buffer))
		if remaining < chunk {
			chunk = remaining
		}
		if err := c.length.Next(buffer[:chunk], int(chunk), nil); err != nil {
			return 0, err
		}
		var bytes uint64
		for _, l := range buffer[:chunk] {
			bytes += uint64(l)
		}
		if err := c.data.Skip(bytes); err != nil {
			return 0, err
		}
		remaining -= chunk
	}
	return numValues, nil
}

// stringDictionaryReader decodes dictionary-encoded string columns. The
// dictionary blob and its offsets are fully materialized at stripe start;
// rows point into the blob, which stays stable for the reader's lifetime.
type stringDictionaryReader struct {
	reader
	codes encoding.IntDecoder

	dictionary []byte
	offsets    []uint64
	scratch    []int64
}

func newStringDictionaryReader(schema *api.TypeDescription, streams StripeStreams, enc *pb.ColumnEncoding) (Reader, error) {
	base, err := newBaseReader(schema, streams)
	if err != nil {
		return nil, err
	}
	c := &stringDictionaryReader{reader: base}

	dictSize := int(enc.GetDictionarySize())
	v2 := rleVersion2(enc.GetKind())

	// the dictionary: dictSize lengths, then the concatenated bytes
	c.offsets = make([]uint64, dictSize+1)
	if dictSize > 0 {
		lengthIn, err := streams.GetStream(schema.Id, pb.Stream_LENGTH)
		if err != nil {
			return nil, err
		}
		if lengthIn == nil {
			return nil, errors.WithStack(common.ParseError{What: "dictionary column has no LENGTH stream"})
		}
		var lengthDecoder encoding.IntDecoder
		if v2 {
			lengthDecoder = encoding.NewIntRleV2(lengthIn, false)
		} else {
			lengthDecoder = encoding.NewIntRleV1(lengthIn, false)
		}
		lengths := make([]int64, dictSize)
		if err := lengthDecoder.Next(lengths, dictSize, nil); err != nil {
			return nil, err
		}
		for i, l := range lengths {
			c.offsets[i+1] = c.offsets[i] + uint64(l)
		}

		blobIn, err := streams.GetStream(schema.Id, pb.Stream_DICTIONARY_DATA)
		if err != nil {
			return nil, err
		}
		if blobIn == nil {
			return nil, errors.WithStack(common.ParseError{What: "dictionary column has no DICTIONARY_DATA stream"})
		}
		c.dictionary = streams.GetReaderOptions().Pool.Allocate(int(c.offsets[dictSize]))
		if err := readFully(blobIn, c.dictionary); err != nil {
			return nil, err
		}
		logger.Tracef("column %d dictionary of %d entries, %d bytes", schema.Id, dictSize, len(c.dictionary))
	}

	dataIn, err := streams.GetStream(schema.Id, pb.Stream_DATA)
	if err != nil {
		return nil, err
	}
	if dataIn == nil {
		return nil, errors.WithStack(common.ParseError{What: "dictionary column has no DATA stream"})
	}
	if v2 {
		c.codes = encoding.NewIntRleV2(dataIn, false)
	} else {
		c.codes = encoding.NewIntRleV1(dataIn, false)
	}
	return c, nil
}

func (c *stringDictionaryReader) Next(b api.ColumnVectorBatch, numValues int, notNull []bool) error {
	batch, ok := b.(*api.StringBatch)
	if !ok {
		return errors.WithStack(common.ParseError{What: "batch is not a string batch"})
	}
	if err := c.nextPresents(&batch.BatchBase, numValues, notNull); err != nil {
		return err
	}
	mask := dataMask(&batch.BatchBase)

	if cap(c.scratch) < numValues {
		c.scratch = make([]int64, numValues)
	}
	codes := c.scratch[:numValues]
	if err := c.codes.Next(codes, numValues, mask); err != nil {
		return err
	}

	entries := len(c.offsets) - 1
	for i := 0; i < numValues; i++ {
		if mask != nil && !mask[i] {
			batch.Data[i] = nil
			continue
		}
		code := codes[i]
		if code < 0 || code >= int64(entries) {
			return errors.WithStack(common.CorruptEncoding{
				Encoding: "DICTIONARY",
				Detail:   fmt.Sprintf("code %d outside dictionary of %d entries", code, entries),
			})
		}
		batch.Data[i] = c.dictionary[c.offsets[code]:c.offsets[code+1]]
	}
	return nil
}

func (c *stringDictionaryReader) Skip(numValues uint64) (uint64, error) {
	nonNull, err := c.skipPresents(numValues)
	if err != nil {
		return 0, err
	}
	if err := c.codes.Skip(nonNull); err != nil {
		return 0, err
	}
	return numValues, nil
}
