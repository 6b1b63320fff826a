package config

import (
	"io"
	"math"
	"os"

	"github.com/haohui/orc/orc/common"
)

// ReaderOptions are the recognized knobs for opening a file. Zero values of
// the struct are not meaningful; start from NewReaderOptions.
type ReaderOptions struct {
	// Include lists the column ids to materialize; ancestors and descendants
	// of every listed column are included automatically. Default is the root,
	// which selects everything.
	Include []uint32

	// Offset and Length restrict reading to stripes whose offset lies in
	// [Offset, Offset+Length).
	Offset uint64
	Length uint64

	// TailLocation overrides the logical file length when the tail does not
	// sit at the physical end.
	TailLocation uint64

	// Hive 0.11 decimal adjustment surfaces.
	ThrowOnHive11DecimalOverflow bool
	ForcedScaleOnHive11Decimal   int32

	// ErrorStream is the sink for non-fatal diagnostics.
	ErrorStream io.Writer

	// RowSize is the default capacity of batches created by the reader.
	RowSize int

	// Pool allocates reader-owned scratch buffers.
	Pool common.MemoryPool
}

func NewReaderOptions() *ReaderOptions {
	return &ReaderOptions{
		Include:                      []uint32{0},
		Offset:                       0,
		Length:                       math.MaxUint64,
		TailLocation:                 math.MaxUint64,
		ThrowOnHive11DecimalOverflow: true,
		ForcedScaleOnHive11Decimal:   6,
		ErrorStream:                  os.Stderr,
		RowSize:                      1024,
		Pool:                         common.DefaultPool,
	}
}
