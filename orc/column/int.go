package column

import (
	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/api"
	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/orc/encoding"
	"github.com/haohui/orc/pb/pb"
)

// longReader decodes BYTE, SHORT, INT and LONG columns through one signed
// integer run-length stream into a LongBatch.
type longReader struct {
	reader
	rle encoding.IntDecoder
}

func newLongReader(schema *api.TypeDescription, streams StripeStreams) (Reader, error) {
	base, err := newBaseReader(schema, streams)
	if err != nil {
		return nil, err
	}
	enc, err := streams.GetEncoding(schema.Id)
	if err != nil {
		return nil, err
	}
	in, err := streams.GetStream(schema.Id, pb.Stream_DATA)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return nil, errors.WithStack(common.ParseError{What: "integer column has no DATA stream"})
	}
	c := &longReader{reader: base}
	if rleVersion2(enc.GetKind()) {
		c.rle = encoding.NewIntRleV2(in, true)
	} else {
		c.rle = encoding.NewIntRleV1(in, true)
	}
	return c, nil
}

func (c *longReader) Next(b api.ColumnVectorBatch, numValues int, notNull []bool) error {
	batch, ok := b.(*api.LongBatch)
	if !ok {
		return errors.WithStack(common.ParseError{What: "batch is not a long batch"})
	}
	if err := c.nextPresents(&batch.BatchBase, numValues, notNull); err != nil {
		return err
	}
	return c.rle.Next(batch.Data[:numValues], numValues, dataMask(&batch.BatchBase))
}

func (c *longReader) Skip(numValues uint64) (uint64, error) {
	nonNull, err := c.skipPresents(numValues)
	if err != nil {
		return 0, err
	}
	if err := c.rle.Skip(nonNull); err != nil {
		return 0, err
	}
	return numValues, nil
}
