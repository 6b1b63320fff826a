package column

import (
	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/api"
	"github.com/haohui/orc/orc/common"
)

// structReader holds one child reader per selected field. A child at a
// struct-null row is itself null: children decode with the struct's mask and
// produce exactly as many rows as the struct does.
type structReader struct {
	reader
	children []Reader
}

func newStructReader(schema *api.TypeDescription, streams StripeStreams) (Reader, error) {
	base, err := newBaseReader(schema, streams)
	if err != nil {
		return nil, err
	}
	selected := streams.GetSelectedColumns()
	r := &structReader{reader: base}
	for _, child := range schema.Children {
		if selected == nil || selected[child.Id] {
			c, err := NewReader(child, streams)
			if err != nil {
				return nil, err
			}
			r.children = append(r.children, c)
		}
	}
	return r, nil
}

func (r *structReader) Next(b api.ColumnVectorBatch, numValues int, notNull []bool) error {
	batch, ok := b.(*api.StructBatch)
	if !ok {
		return errors.WithStack(common.ParseError{What: "batch is not a struct batch"})
	}
	if len(batch.Fields) != len(r.children) {
		return errors.WithStack(common.ParseError{What: "struct batch fields do not match selected children"})
	}
	if err := r.nextPresents(&batch.BatchBase, numValues, notNull); err != nil {
		return err
	}
	mask := dataMask(&batch.BatchBase)
	for i, child := range r.children {
		if err := child.Next(batch.Fields[i], numValues, mask); err != nil {
			return err
		}
	}
	return nil
}

func (r *structReader) Skip(numValues uint64) (uint64, error) {
	nonNull, err := r.skipPresents(numValues)
	if err != nil {
		return 0, err
	}
	for _, child := range r.children {
		if _, err := child.Skip(nonNull); err != nil {
			return 0, err
		}
	}
	return numValues, nil
}
