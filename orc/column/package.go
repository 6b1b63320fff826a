package column

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/haohui/orc/orc/api"
	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/orc/config"
	"github.com/haohui/orc/orc/stream"
	"github.com/haohui/orc/pb/pb"
)

var logger = log.New()

func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// Reader decodes one column of the current stripe. Next fills numValues rows
// of the batch, leaving slots masked off by notNull undefined; Skip passes
// over rows without producing them.
type Reader interface {
	Next(batch api.ColumnVectorBatch, numValues int, notNull []bool) error
	Skip(numValues uint64) (uint64, error)
}

// StripeStreams resolves the streams and encodings of one stripe for the
// reader tree.
type StripeStreams interface {
	GetSelectedColumns() []bool
	GetEncoding(columnId uint32) (*pb.ColumnEncoding, error)
	// GetStream returns the decompressed stream for (columnId, kind), or nil
	// when the stripe has none.
	GetStream(columnId uint32, kind pb.Stream_Kind) (stream.InputStream, error)
	GetReaderOptions() *config.ReaderOptions
}

// NewReader builds the reader for the subtree rooted at schema. String
// columns pick the dictionary or direct variant from the stripe's column
// encoding; unsupported kinds are rejected.
func NewReader(schema *api.TypeDescription, streams StripeStreams) (Reader, error) {
	switch schema.Kind {
	case pb.Type_BYTE, pb.Type_SHORT, pb.Type_INT, pb.Type_LONG:
		return newLongReader(schema, streams)

	case pb.Type_STRING, pb.Type_BINARY, pb.Type_CHAR, pb.Type_VARCHAR:
		enc, err := streams.GetEncoding(schema.Id)
		if err != nil {
			return nil, err
		}
		switch enc.GetKind() {
		case pb.ColumnEncoding_DICTIONARY, pb.ColumnEncoding_DICTIONARY_V2:
			return newStringDictionaryReader(schema, streams, enc)
		default:
			return newStringDirectReader(schema, streams, enc)
		}

	case pb.Type_STRUCT:
		return newStructReader(schema, streams)

	default:
		return nil, errors.WithStack(common.NotImplemented{Feature: fmt.Sprintf("reader for type %s", schema.Kind)})
	}
}

// rle version is carried by the column encoding kind
func rleVersion2(kind pb.ColumnEncoding_Kind) bool {
	return kind == pb.ColumnEncoding_DIRECT_V2 || kind == pb.ColumnEncoding_DICTIONARY_V2
}
