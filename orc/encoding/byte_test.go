package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haohui/orc/orc/stream"
)

func TestByteRleRun(t *testing.T) {
	d := NewByteRleDecoder(stream.NewSeekableArrayStream([]byte{0x61, 0x0f}, 0))
	values := make([]byte, 100)
	if err := d.Next(values, 100, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, byte(0x0f), values[i])
	}
}

func TestByteRleLiterals(t *testing.T) {
	d := NewByteRleDecoder(stream.NewSeekableArrayStream([]byte{0xfe, 0x44, 0x45}, 0))
	values := make([]byte, 2)
	if err := d.Next(values, 2, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []byte{0x44, 0x45}, values)
}

func TestByteRleSkip(t *testing.T) {
	d := NewByteRleDecoder(stream.NewSeekableArrayStream([]byte{0xfc, 0x01, 0x02, 0x03, 0x04, 0x61, 0x07}, 0))
	if err := d.Skip(3); err != nil {
		t.Fatalf("%+v", err)
	}
	values := make([]byte, 5)
	if err := d.Next(values, 5, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []byte{0x04, 0x07, 0x07, 0x07, 0x07}, values)
}

func TestBoolRle(t *testing.T) {
	// run of 28 bytes of 0xf0: bit i is set iff i&4 == 0
	d := NewBoolRleDecoder(stream.NewSeekableArrayStream([]byte{0x19, 0xf0}, 0))
	values := make([]bool, 200)
	if err := d.Next(values, 200, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	for i := 0; i < 200; i++ {
		assert.Equal(t, i&4 == 0, values[i], "wrong at %d", i)
	}
}

func TestBoolRleNotNull(t *testing.T) {
	// a null inherited slot produces false and consumes no bit
	d := NewBoolRleDecoder(stream.NewSeekableArrayStream([]byte{0x0a, 0x55}, 0))
	notNull := make([]bool, 200)
	for i := range notNull {
		notNull[i] = i&4 != 0
	}
	values := make([]bool, 200)
	if err := d.Next(values, 200, notNull); err != nil {
		t.Fatalf("%+v", err)
	}
	count := 0
	for i := 0; i < 200; i++ {
		if !notNull[i] {
			assert.False(t, values[i])
			continue
		}
		// bits of 0x55 alternate 0,1 per consumed slot
		assert.Equal(t, count%2 == 1, values[i], "wrong at %d", i)
		count++
	}
}

func TestBoolRleSkip(t *testing.T) {
	d := NewBoolRleDecoder(stream.NewSeekableArrayStream([]byte{0x19, 0xf0}, 0))
	values := make([]bool, 4)
	if err := d.Next(values, 4, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	if err := d.Skip(30); err != nil {
		t.Fatalf("%+v", err)
	}
	// lands on bit 34: 34&4 == 0 so true, 36&4 != 0 so false
	if err := d.Next(values, 4, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []bool{true, true, false, false}, values)
}
