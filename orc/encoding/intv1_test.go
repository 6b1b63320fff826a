package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haohui/orc/orc/stream"
)

func decodeV1(t *testing.T, data []byte, signed bool, n int, notNull []bool) []int64 {
	d := NewIntRleV1(stream.NewSeekableArrayStream(data, 0), signed)
	out := make([]int64, n)
	if err := d.Next(out, n, notNull); err != nil {
		t.Fatalf("%+v", err)
	}
	return out
}

func TestIntRleV1Run(t *testing.T) {
	values := decodeV1(t, []byte{0x61, 0x00, 0x07}, false, 100, nil)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(7), values[i])
	}
}

func TestIntRleV1RunWithDelta(t *testing.T) {
	values := decodeV1(t, []byte{0x61, 0x01, 0x00}, false, 100, nil)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(i), values[i])
	}
}

func TestIntRleV1NegativeDelta(t *testing.T) {
	// 100 values starting at 20 stepping -1
	values := decodeV1(t, []byte{0x61, 0xff, 0x14}, false, 100, nil)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(20-i), values[i])
	}
}

func TestIntRleV1Literals(t *testing.T) {
	values := decodeV1(t, []byte{0xfb, 0x02, 0x03, 0x04, 0x07, 0x0b}, false, 5, nil)
	assert.Equal(t, []int64{2, 3, 4, 7, 11}, values)
}

func TestIntRleV1SignedRun(t *testing.T) {
	// signed base is zigzag encoded: 1 decodes to -1
	values := decodeV1(t, []byte{0x61, 0x00, 0x01}, true, 100, nil)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(-1), values[i])
	}
}

func TestIntRleV1NotNull(t *testing.T) {
	// nulls consume nothing, present slots continue the sequence
	notNull := make([]bool, 200)
	for i := range notNull {
		notNull[i] = i&4 == 0
	}
	values := make([]int64, 200)
	d := NewIntRleV1(stream.NewSeekableArrayStream([]byte{0x64, 0x01, 0x00}, 0), true)
	if err := d.Next(values, 200, notNull); err != nil {
		t.Fatalf("%+v", err)
	}
	next := int64(0)
	for i := 0; i < 200; i++ {
		if i&4 == 0 {
			assert.Equal(t, next, values[i])
			next++
		}
	}
}

func TestIntRleV1AllNull(t *testing.T) {
	notNull := make([]bool, 16)
	d := NewIntRleV1(stream.NewSeekableArrayStream(nil, 0), false)
	assert.Nil(t, d.Next(make([]int64, 16), 16, notNull))
}

func TestIntRleV1Skip(t *testing.T) {
	d := NewIntRleV1(stream.NewSeekableArrayStream([]byte{0x61, 0x01, 0x00}, 0), false)
	if err := d.Skip(40); err != nil {
		t.Fatalf("%+v", err)
	}
	values := make([]int64, 10)
	if err := d.Next(values, 10, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, int64(40+i), values[i])
	}
}

func TestIntRleV1RunsAcrossBatches(t *testing.T) {
	// 0..129 then 130..259 in two runs of 130
	data := []byte{0x7f, 0x01, 0x00, 0x7f, 0x01, 0x82, 0x01}
	d := NewIntRleV1(stream.NewSeekableArrayStream(data, 0), false)
	values := make([]int64, 260)
	if err := d.Next(values, 260, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	for i := 0; i < 260; i++ {
		assert.Equal(t, int64(i), values[i])
	}
}
