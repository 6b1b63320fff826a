package encoding

import (
	"github.com/haohui/orc/orc/common"
)

// ByteRleDecoder decodes the byte run-length encoding: a control byte under
// 0x80 is a run of control+3 copies of the next byte, otherwise a literal
// run of 256-control bytes. Slots masked off by notNull consume nothing.
type ByteRleDecoder struct {
	byteReader

	remaining int
	repeating bool
	value     byte
}

func NewByteRleDecoder(in InputStream) *ByteRleDecoder {
	return &ByteRleDecoder{byteReader: byteReader{in: in}}
}

func (d *ByteRleDecoder) readHeader() error {
	ch, err := d.readByte()
	if err != nil {
		return err
	}
	if ch < 0x80 {
		d.remaining = int(ch) + MinRepeatSize
		d.repeating = true
		if d.value, err = d.readByte(); err != nil {
			return err
		}
	} else {
		d.remaining = 0x100 - int(ch)
		d.repeating = false
	}
	return nil
}

func (d *ByteRleDecoder) Next(data []byte, numValues int, notNull []bool) error {
	position := 0
	for position < numValues {
		if d.remaining == 0 {
			if err := d.readHeader(); err != nil {
				return err
			}
		}
		count := numValues - position
		if count > d.remaining {
			count = d.remaining
		}
		consumed := 0
		if d.repeating {
			for i := 0; i < count; i++ {
				if notNull == nil || notNull[position+i] {
					data[position+i] = d.value
					consumed++
				}
			}
		} else {
			for i := 0; i < count; i++ {
				if notNull == nil || notNull[position+i] {
					v, err := d.readByte()
					if err != nil {
						return err
					}
					data[position+i] = v
					consumed++
				}
			}
		}
		d.remaining -= consumed
		position += count
	}
	return nil
}

func (d *ByteRleDecoder) Skip(numValues uint64) error {
	for numValues > 0 {
		if d.remaining == 0 {
			if err := d.readHeader(); err != nil {
				return err
			}
		}
		count := numValues
		if c := uint64(d.remaining); c < count {
			count = c
		}
		d.remaining -= int(count)
		numValues -= count
		if !d.repeating {
			for i := uint64(0); i < count; i++ {
				if _, err := d.readByte(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Seek consumes the underlying stream position then a count of values to
// skip past the landing point.
func (d *ByteRleDecoder) Seek(pp *common.PositionProvider) error {
	if err := d.in.Seek(pp); err != nil {
		return err
	}
	d.resetBuffer()
	d.remaining = 0
	d.repeating = false
	return d.Skip(pp.Next())
}

// BoolRleDecoder unpacks a byte run-length stream into booleans, eight per
// byte MSB first. PRESENT streams decode through this. Slots masked off by
// an inherited notNull produce false without consuming a bit.
type BoolRleDecoder struct {
	bytes ByteRleDecoder

	bitsRemaining int
	current       byte
	scratch       [1]byte
}

func NewBoolRleDecoder(in InputStream) *BoolRleDecoder {
	return &BoolRleDecoder{bytes: ByteRleDecoder{byteReader: byteReader{in: in}}}
}

func (d *BoolRleDecoder) Next(data []bool, numValues int, notNull []bool) error {
	for i := 0; i < numValues; i++ {
		if notNull != nil && !notNull[i] {
			data[i] = false
			continue
		}
		if d.bitsRemaining == 0 {
			if err := d.bytes.Next(d.scratch[:], 1, nil); err != nil {
				return err
			}
			d.current = d.scratch[0]
			d.bitsRemaining = 8
		}
		d.bitsRemaining--
		data[i] = (d.current>>uint(d.bitsRemaining))&0x01 == 0x01
	}
	return nil
}

// Skip consumes numValues bits.
func (d *BoolRleDecoder) Skip(numValues uint64) error {
	for numValues > 0 && d.bitsRemaining > 0 {
		d.bitsRemaining--
		numValues--
	}
	wholeBytes := numValues / 8
	if wholeBytes > 0 {
		if err := d.bytes.Skip(wholeBytes); err != nil {
			return err
		}
		numValues -= wholeBytes * 8
	}
	if numValues > 0 {
		if err := d.bytes.Next(d.scratch[:], 1, nil); err != nil {
			return err
		}
		d.current = d.scratch[0]
		d.bitsRemaining = 8 - int(numValues)
	}
	return nil
}

func (d *BoolRleDecoder) Seek(pp *common.PositionProvider) error {
	if err := d.bytes.Seek(pp); err != nil {
		return err
	}
	d.bitsRemaining = 0
	return d.Skip(pp.Next())
}
