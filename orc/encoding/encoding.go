package encoding

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/haohui/orc/orc/common"
)

var logger = log.New()

func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

const MinRepeatSize = 3

// InputStream is the byte supply for the run-length decoders; the stream
// implementations satisfy it.
type InputStream interface {
	Next() ([]byte, error)
	Seek(pp *common.PositionProvider) error
}

// IntDecoder is one integer stream feeding batches of int64. Next fills
// exactly numValues slots of data, leaving slots where notNull[i] is false
// untouched. A nil notNull means every slot is present.
type IntDecoder interface {
	Next(data []int64, numValues int, notNull []bool) error
	Skip(numValues uint64) error
	Seek(pp *common.PositionProvider) error
}

// byteReader is the windowed cursor shared by the decoders: single bytes,
// base-128 varints and big-endian fixed-size integers.
type byteReader struct {
	in  InputStream
	buf []byte
	off int
}

func (r *byteReader) readByte() (byte, error) {
	if r.off >= len(r.buf) {
		var err error
		if r.buf, err = r.in.Next(); err != nil {
			if err == io.EOF {
				return 0, errors.WithStack(common.ParseError{What: "bad read in readByte"})
			}
			return 0, err
		}
		r.off = 0
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// readVulong accumulates 7-bit groups little endian until the high bit
// is clear.
func (r *byteReader) readVulong() (uint64, error) {
	var result uint64
	var offset uint
	for {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(0x7f&b) << offset
		offset += 7
		if b < 0x80 {
			break
		}
	}
	return result, nil
}

func (r *byteReader) readVslong() (int64, error) {
	v, err := r.readVulong()
	if err != nil {
		return 0, err
	}
	return UnZigzag(v), nil
}

// readLongBE reads a big-endian unsigned integer of bsz bytes, bsz in [1,8].
func (r *byteReader) readLongBE(bsz int) (uint64, error) {
	var result uint64
	for n := bsz; n > 0; {
		n--
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b) << uint(n*8)
	}
	return result, nil
}

func (r *byteReader) resetBuffer() {
	r.buf = nil
	r.off = 0
}

func Zigzag(x int64) uint64 {
	return uint64(x<<1) ^ uint64(x>>63)
}

func UnZigzag(x uint64) int64 {
	return int64(x>>1) ^ -int64(x&1)
}

// DecodeBitWidth maps the 5-bit width symbol of a run header to the bit
// width it denotes.
func DecodeBitWidth(n int) int {
	switch {
	case n >= 0 && n <= 23:
		return n + 1
	case n == 24:
		return 26
	case n == 25:
		return 28
	case n == 26:
		return 30
	case n == 27:
		return 32
	case n == 28:
		return 40
	case n == 29:
		return 48
	case n == 30:
		return 56
	default:
		return 64
	}
}

// GetClosestFixedBits rounds a bit count up to the nearest width the
// encoding supports.
func GetClosestFixedBits(n int) int {
	switch {
	case n == 0:
		return 1
	case n >= 1 && n <= 24:
		return n
	case n <= 26:
		return 26
	case n <= 28:
		return 28
	case n <= 30:
		return 30
	case n <= 32:
		return 32
	case n <= 40:
		return 40
	case n <= 48:
		return 48
	case n <= 56:
		return 56
	default:
		return 64
	}
}
