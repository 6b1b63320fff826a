package encoding

import (
	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/common"
)

const (
	shortRepeat = 0
	direct      = 1
	patchedBase = 2
	delta       = 3
)

// IntRleV2 decodes the version 2 integer run-length encoding, a bit-level
// state machine over four sub-encodings selected by the top two bits of each
// run header: short repeat, direct, patched base and delta. The decoder
// keeps its run state across Next calls, so a run may span batches.
type IntRleV2 struct {
	byteReader
	signed bool

	firstByte byte
	runLength int
	runRead   int

	firstValue int64
	prevValue  int64
	deltaBase  int64
	byteSize   int

	// running bit cursor
	bitSize  int
	bitsLeft int
	curByte  byte

	// patched base state
	base          int64
	patchBitSize  int
	patchMask     int64
	curGap        uint64
	curPatch      int64
	patchIdx      int
	actualGap     int64
	unpacked      []int64
	unpackedPatch []int64
	unpackedIdx   int
}

func NewIntRleV2(in InputStream, signed bool) *IntRleV2 {
	return &IntRleV2{byteReader: byteReader{in: in}, signed: signed}
}

// readLongs consumes len fixed-width unsigned integers, MSB first within a
// byte, into data[offset:offset+len]. Slots masked off by notNull are
// skipped without consuming bits. Returns the number of slots written.
func (d *IntRleV2) readLongs(data []int64, offset int, length int, fb int, notNull []bool) (int, error) {
	var written int
	for i := offset; i < offset+length; i++ {
		if notNull != nil && !notNull[i] {
			continue
		}
		var result uint64
		bitsLeftToRead := fb
		for bitsLeftToRead > d.bitsLeft {
			result <<= uint(d.bitsLeft)
			result |= uint64(d.curByte) & ((1 << uint(d.bitsLeft)) - 1)
			bitsLeftToRead -= d.bitsLeft
			b, err := d.readByte()
			if err != nil {
				return written, err
			}
			d.curByte = b
			d.bitsLeft = 8
		}
		if bitsLeftToRead > 0 {
			result <<= uint(bitsLeftToRead)
			d.bitsLeft -= bitsLeftToRead
			result |= (uint64(d.curByte) >> uint(d.bitsLeft)) & ((1 << uint(bitsLeftToRead)) - 1)
		}
		data[i] = int64(result)
		written++
	}
	return written, nil
}

func (d *IntRleV2) Next(data []int64, numValues int, notNull []bool) error {
	nRead := 0
	for nRead < numValues {
		if d.runRead == d.runLength {
			// a header is only due once a non-null slot needs a value
			if notNull != nil {
				for nRead < numValues && !notNull[nRead] {
					nRead++
				}
				if nRead == numValues {
					break
				}
			}
			b, err := d.readByte()
			if err != nil {
				return err
			}
			d.firstByte = b
		}

		offset, length := nRead, numValues-nRead

		var n int
		var err error
		switch (d.firstByte >> 6) & 0x03 {
		case shortRepeat:
			n, err = d.nextShortRepeats(data, offset, length, notNull)
		case direct:
			n, err = d.nextDirect(data, offset, length, notNull)
		case patchedBase:
			n, err = d.nextPatched(data, offset, length, notNull)
		case delta:
			n, err = d.nextDelta(data, offset, length, notNull)
		default:
			err = errors.WithStack(common.ParseError{What: "unknown encoding"})
		}
		if err != nil {
			return err
		}
		nRead += n
	}
	return nil
}

func (d *IntRleV2) nextShortRepeats(data []int64, offset int, numValues int, notNull []bool) (int, error) {
	if d.runRead == d.runLength {
		d.byteSize = int((d.firstByte>>3)&0x07) + 1
		// run lengths are stored only past the minimum repeat
		d.runLength = int(d.firstByte&0x07) + MinRepeatSize
		d.runRead = 0

		v, err := d.readLongBE(d.byteSize)
		if err != nil {
			return 0, err
		}
		d.firstValue = int64(v)
		if d.signed {
			d.firstValue = UnZigzag(uint64(d.firstValue))
		}
	}

	nRead := d.runLength - d.runRead
	if nRead > numValues {
		nRead = numValues
	}
	if notNull != nil {
		for pos := offset; pos < offset+nRead; pos++ {
			if notNull[pos] {
				data[pos] = d.firstValue
				d.runRead++
			}
		}
	} else {
		for pos := offset; pos < offset+nRead; pos++ {
			data[pos] = d.firstValue
			d.runRead++
		}
	}
	return nRead, nil
}

func (d *IntRleV2) nextDirect(data []int64, offset int, numValues int, notNull []bool) (int, error) {
	if d.runRead == d.runLength {
		d.bitSize = DecodeBitWidth(int((d.firstByte >> 1) & 0x1f))
		d.bitsLeft = 0
		d.curByte = 0

		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		d.runLength = (int(d.firstByte&0x01) << 8) | int(b)
		d.runLength++ // runs are one off
		d.runRead = 0
	}

	nRead := d.runLength - d.runRead
	if nRead > numValues {
		nRead = numValues
	}
	n, err := d.readLongs(data, offset, nRead, d.bitSize, notNull)
	if err != nil {
		return 0, err
	}
	d.runRead += n
	if d.signed {
		for pos := offset; pos < offset+nRead; pos++ {
			if notNull == nil || notNull[pos] {
				data[pos] = UnZigzag(uint64(data[pos]))
			}
		}
	}
	return nRead, nil
}

func (d *IntRleV2) adjustGapAndPatch() {
	d.curGap = uint64(d.unpackedPatch[d.patchIdx]) >> uint(d.patchBitSize)
	d.curPatch = d.unpackedPatch[d.patchIdx] & d.patchMask
	d.actualGap = 0

	// a gap over 255 is encoded as (255, 0) filler entries
	for d.curGap == 255 && d.curPatch == 0 {
		d.actualGap += 255
		d.patchIdx++
		d.curGap = uint64(d.unpackedPatch[d.patchIdx]) >> uint(d.patchBitSize)
		d.curPatch = d.unpackedPatch[d.patchIdx] & d.patchMask
	}
	d.actualGap += int64(d.curGap)
}

func (d *IntRleV2) nextPatched(data []int64, offset int, numValues int, notNull []bool) (int, error) {
	if d.runRead == d.runLength {
		d.bitSize = DecodeBitWidth(int((d.firstByte >> 1) & 0x1f))

		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		d.runLength = (int(d.firstByte&0x01) << 8) | int(b)
		d.runLength++
		d.runRead = 0

		thirdByte, err := d.readByte()
		if err != nil {
			return 0, err
		}
		d.byteSize = int((thirdByte>>5)&0x07) + 1
		d.patchBitSize = DecodeBitWidth(int(thirdByte & 0x1f))

		fourthByte, err := d.readByte()
		if err != nil {
			return 0, err
		}
		pgw := int((fourthByte>>5)&0x07) + 1
		pl := int(fourthByte & 0x1f)

		// the base carries its sign in the top bit of its field
		ubase, err := d.readLongBE(d.byteSize)
		if err != nil {
			return 0, err
		}
		d.base = int64(ubase)
		mask := int64(1) << uint(d.byteSize*8-1)
		if d.base&mask != 0 {
			d.base = d.base &^ mask
			d.base = -d.base
		}

		if cap(d.unpacked) < d.runLength {
			d.unpacked = make([]int64, d.runLength)
		}
		d.unpacked = d.unpacked[:d.runLength]
		d.unpackedIdx = 0
		if _, err = d.readLongs(d.unpacked, 0, d.runLength, d.bitSize, nil); err != nil {
			return 0, err
		}
		// remaining bits are thrown out
		d.bitsLeft = 0

		if d.patchBitSize+pgw > 64 {
			return 0, errors.WithStack(common.ParseError{What: "corrupt PATCHED_BASE encoded data"})
		}
		if cap(d.unpackedPatch) < pl {
			d.unpackedPatch = make([]int64, pl)
		}
		d.unpackedPatch = d.unpackedPatch[:pl]
		d.patchIdx = 0
		cfb := GetClosestFixedBits(d.patchBitSize + pgw)
		if _, err = d.readLongs(d.unpackedPatch, 0, pl, cfb, nil); err != nil {
			return 0, err
		}
		d.bitsLeft = 0

		d.patchMask = (int64(1) << uint(d.patchBitSize)) - 1
		d.adjustGapAndPatch()

		logger.Tracef("int rl v2 patched base run: width %d length %d base %d patch width %d list %d",
			d.bitSize, d.runLength, d.base, d.patchBitSize, pl)
	}

	nRead := d.runLength - d.runRead
	if nRead > numValues {
		nRead = numValues
	}
	for pos := offset; pos < offset+nRead; pos++ {
		if notNull != nil && !notNull[pos] {
			continue
		}
		if int64(d.unpackedIdx) != d.actualGap {
			// no patching, the unpacked value plus base is final
			data[pos] = d.base + d.unpacked[d.unpackedIdx]
		} else {
			patchedVal := d.unpacked[d.unpackedIdx] | (d.curPatch << uint(d.bitSize))
			data[pos] = d.base + patchedVal

			d.patchIdx++
			if d.patchIdx < len(d.unpackedPatch) {
				d.adjustGapAndPatch()
				// the next gap is relative to the current one
				d.actualGap += int64(d.unpackedIdx)
			}
		}
		d.runRead++
		d.unpackedIdx++
	}
	return nRead, nil
}

func (d *IntRleV2) nextDelta(data []int64, offset int, numValues int, notNull []bool) (int, error) {
	if d.runRead == d.runLength {
		if fbo := int((d.firstByte >> 1) & 0x1f); fbo != 0 {
			d.bitSize = DecodeBitWidth(fbo)
		} else {
			d.bitSize = 0
		}

		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		d.runLength = (int(d.firstByte&0x01) << 8) | int(b)
		d.runLength++ // account for the first value
		d.runRead = 0
		d.deltaBase = 0

		if d.signed {
			if d.firstValue, err = d.readVslong(); err != nil {
				return 0, err
			}
		} else {
			var uv uint64
			if uv, err = d.readVulong(); err != nil {
				return 0, err
			}
			d.firstValue = int64(uv)
		}
		d.prevValue = d.firstValue

		// the fixed delta is always a signed vint, sequences may decrease
		if d.deltaBase, err = d.readVslong(); err != nil {
			return 0, err
		}
	}

	nRead := d.runLength - d.runRead
	if nRead > numValues {
		nRead = numValues
	}

	pos := offset
	for ; pos < offset+nRead; pos++ {
		if notNull == nil || notNull[pos] {
			break
		}
	}
	if d.runRead == 0 && pos < offset+nRead {
		data[pos] = d.firstValue
		pos++
		d.runRead++
	}

	if d.bitSize == 0 {
		// fixed delta between adjacent values
		for ; pos < offset+nRead; pos++ {
			if notNull != nil && !notNull[pos] {
				continue
			}
			d.prevValue += d.deltaBase
			data[pos] = d.prevValue
			d.runRead++
		}
	} else {
		for ; pos < offset+nRead; pos++ {
			if notNull == nil || notNull[pos] {
				break
			}
		}
		if d.runRead < 2 && pos < offset+nRead {
			d.prevValue = d.firstValue + d.deltaBase
			data[pos] = d.prevValue
			pos++
			d.runRead++
		}

		// unpacked deltas accumulate onto the previous value, decreasing
		// when the delta base is negative
		remaining := offset + nRead - pos
		n, err := d.readLongs(data, pos, remaining, d.bitSize, notNull)
		if err != nil {
			return 0, err
		}
		d.runRead += n
		if d.deltaBase < 0 {
			for ; pos < offset+nRead; pos++ {
				if notNull != nil && !notNull[pos] {
					continue
				}
				d.prevValue -= data[pos]
				data[pos] = d.prevValue
			}
		} else {
			for ; pos < offset+nRead; pos++ {
				if notNull != nil && !notNull[pos] {
					continue
				}
				d.prevValue += data[pos]
				data[pos] = d.prevValue
			}
		}
	}
	return nRead, nil
}

// Skip decodes into a throwaway buffer in bounded steps.
func (d *IntRleV2) Skip(numValues uint64) error {
	const n = 64
	var dummy [n]int64

	for numValues > 0 {
		nRead := uint64(n)
		if numValues < nRead {
			nRead = numValues
		}
		if err := d.Next(dummy[:nRead], int(nRead), nil); err != nil {
			return err
		}
		numValues -= nRead
	}
	return nil
}

// Seek moves the underlying stream, clears the run state so the next read
// starts on a fresh header, then skips the recorded number of records.
func (d *IntRleV2) Seek(pp *common.PositionProvider) error {
	if err := d.in.Seek(pp); err != nil {
		return err
	}
	d.resetBuffer()
	d.runRead = 0
	d.runLength = 0
	d.bitsLeft = 0
	d.curByte = 0
	return d.Skip(pp.Next())
}
