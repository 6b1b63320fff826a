package encoding

import (
	"github.com/haohui/orc/orc/common"
)

// IntRleV1 decodes the version 1 integer run-length encoding: a control byte
// under 0x80 starts a run of control+3 values produced from a base varint and
// a signed one-byte delta per step; otherwise a literal run of 256-control
// varints follows. Null slots consume nothing from the stream.
type IntRleV1 struct {
	byteReader
	signed bool

	remaining int
	repeating bool
	value     int64
	delta     int64
}

func NewIntRleV1(in InputStream, signed bool) *IntRleV1 {
	return &IntRleV1{byteReader: byteReader{in: in}, signed: signed}
}

func (d *IntRleV1) readHeader() error {
	ch, err := d.readByte()
	if err != nil {
		return err
	}
	if ch < 0x80 {
		d.remaining = int(ch) + MinRepeatSize
		d.repeating = true
		db, err := d.readByte()
		if err != nil {
			return err
		}
		d.delta = int64(int8(db))
		if d.signed {
			d.value, err = d.readVslong()
		} else {
			var uv uint64
			uv, err = d.readVulong()
			d.value = int64(uv)
		}
		if err != nil {
			return err
		}
	} else {
		d.remaining = 0x100 - int(ch)
		d.repeating = false
	}
	return nil
}

func (d *IntRleV1) Next(data []int64, numValues int, notNull []bool) error {
	position := 0
	for position < numValues {
		// a header is only due once a non-null slot needs a value
		if notNull != nil {
			for position < numValues && !notNull[position] {
				position++
			}
			if position == numValues {
				break
			}
		}
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
					data[position+i] = d.value + int64(consumed)*d.delta
					consumed++
				}
			}
			d.value += int64(consumed) * d.delta
		} else {
			for i := 0; i < count; i++ {
				if notNull == nil || notNull[position+i] {
					var v int64
					var err error
					if d.signed {
						v, err = d.readVslong()
					} else {
						var uv uint64
						uv, err = d.readVulong()
						v = int64(uv)
					}
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

func (d *IntRleV1) Skip(numValues uint64) error {
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
		if d.repeating {
			d.value += int64(count) * d.delta
		} else {
			for i := uint64(0); i < count; i++ {
				var err error
				if d.signed {
					_, err = d.readVslong()
				} else {
					_, err = d.readVulong()
				}
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *IntRleV1) Seek(pp *common.PositionProvider) error {
	if err := d.in.Seek(pp); err != nil {
		return err
	}
	d.resetBuffer()
	d.remaining = 0
	d.repeating = false
	return d.Skip(pp.Next())
}
