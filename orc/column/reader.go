package column

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/api"
	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/orc/encoding"
	"github.com/haohui/orc/orc/stream"
	"github.com/haohui/orc/pb/pb"
)

// reader is the base of every column reader: it owns the PRESENT decoder,
// if the stripe carries one, and projects it into the batch's null mask.
type reader struct {
	columnId uint32
	present  *encoding.BoolRleDecoder
}

func newBaseReader(schema *api.TypeDescription, streams StripeStreams) (reader, error) {
	r := reader{columnId: schema.Id}
	in, err := streams.GetStream(schema.Id, pb.Stream_PRESENT)
	if err != nil {
		return r, err
	}
	if in != nil {
		r.present = encoding.NewBoolRleDecoder(in)
	}
	return r, nil
}

// nextPresents decodes the null mask for the batch: the column's PRESENT
// bits gated by the inherited mask, or a copy of the inherited mask when the
// column has no PRESENT stream.
func (r *reader) nextPresents(base *api.BatchBase, numValues int, notNull []bool) error {
	if numValues > base.Capacity() {
		return errors.WithStack(common.ParseError{What: "too many values for batch"})
	}
	base.NumElements = numValues

	if r.present != nil {
		mask := base.NotNull[:numValues]
		if err := r.present.Next(mask, numValues, notNull); err != nil {
			return err
		}
		for i := 0; i < numValues; i++ {
			if !mask[i] {
				base.HasNulls = true
				return nil
			}
		}
	} else if notNull != nil {
		base.HasNulls = true
		copy(base.NotNull[:numValues], notNull[:numValues])
		return nil
	}
	base.HasNulls = false
	return nil
}

// skipPresents skips numValues rows of the PRESENT stream and reports how
// many of them were non-null; the data streams only carry those.
func (r *reader) skipPresents(numValues uint64) (uint64, error) {
	if r.present == nil {
		return numValues, nil
	}
	var buffer [1024]bool
	var nonNull uint64
	for numValues > 0 {
		chunk := uint64(len(buffer))
		if numValues < chunk {
			chunk = numValues
		}
		if err := r.present.Next(buffer[:chunk], int(chunk), nil); err != nil {
			return 0, err
		}
		for _, b := range buffer[:chunk] {
			if b {
				nonNull++
			}
		}
		numValues -= chunk
	}
	return nonNull, nil
}

// dataMask is the mask the data streams honor after nextPresents ran.
func dataMask(base *api.BatchBase) []bool {
	if base.HasNulls {
		return base.NotNull
	}
	return nil
}

// readFully fills p from the stream, pushing back the unused tail of the
// last window.
func readFully(in stream.InputStream, p []byte) error {
	got := 0
	for got < len(p) {
		w, err := in.Next()
		if err != nil {
			if err == io.EOF {
				return errors.WithStack(common.ParseError{What: fmt.Sprintf("stream %s ended early", in.Name())})
			}
			return err
		}
		n := copy(p[got:], w)
		if n < len(w) {
			if err := in.Backup(len(w) - n); err != nil {
				return err
			}
		}
		got += n
	}
	return nil
}
