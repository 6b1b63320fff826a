package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haohui/orc/orc/stream"
)

func decodeV2(t *testing.T, data []byte, signed bool, n int, notNull []bool) []int64 {
	d := NewIntRleV2(stream.NewSeekableArrayStream(data, 0), signed)
	out := make([]int64, n)
	if err := d.Next(out, n, notNull); err != nil {
		t.Fatalf("%+v", err)
	}
	return out
}

func TestIntRleV2ShortRepeat(t *testing.T) {
	values := decodeV2(t, []byte{0x0a, 0x27, 0x10}, false, 5, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, int64(10000), values[i])
	}
}

func TestIntRleV2ShortRepeatSigned(t *testing.T) {
	// zigzag(-3) == 5
	values := decodeV2(t, []byte{0x0a, 0x00, 0x05}, true, 5, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, int64(-3), values[i])
	}
}

func TestIntRleV2Direct(t *testing.T) {
	values := decodeV2(t, []byte{0x5e, 0x03, 0x5c, 0xa1, 0xab, 0x1e, 0xde, 0xad, 0xbe, 0xef},
		false, 4, nil)
	assert.Equal(t, []int64{23713, 43806, 57005, 48879}, values)
}

func TestIntRleV2PatchedBase(t *testing.T) {
	data := []byte{0x8e, 0x09, 0x2b, 0x21, 0x07, 0xd0, 0x1e, 0x00, 0x14, 0x70,
		0x28, 0x32, 0x3c, 0x46, 0x50, 0x5a, 0xfc, 0xe8}
	values := decodeV2(t, data, false, 10, nil)
	assert.Equal(t, []int64{2030, 2000, 2020, 1000000, 2040, 2050, 2060, 2070, 2080, 2090}, values)
}

func TestIntRleV2Delta(t *testing.T) {
	values := decodeV2(t, []byte{0xc6, 0x09, 0x02, 0x02, 0x22, 0x42, 0x42, 0x46}, false, 10, nil)
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, values)
}

func TestIntRleV2FixedDelta(t *testing.T) {
	// width symbol 0, length 10, first value 7, fixed delta -2 (zigzag 3)
	values := decodeV2(t, []byte{0xc0, 0x09, 0x07, 0x03}, false, 10, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, int64(7-2*i), values[i])
	}
}

func TestIntRleV2DeltaAcrossBatches(t *testing.T) {
	d := NewIntRleV2(stream.NewSeekableArrayStream(
		[]byte{0xc6, 0x09, 0x02, 0x02, 0x22, 0x42, 0x42, 0x46}, 0), false)
	first := make([]int64, 4)
	if err := d.Next(first, 4, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	rest := make([]int64, 6)
	if err := d.Next(rest, 6, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []int64{2, 3, 5, 7}, first)
	assert.Equal(t, []int64{11, 13, 17, 19, 23, 29}, rest)
}

func TestIntRleV2NotNull(t *testing.T) {
	// every other slot null; null slots consume nothing
	notNull := make([]bool, 10)
	for i := range notNull {
		notNull[i] = i%2 == 0
	}
	values := make([]int64, 10)
	d := NewIntRleV2(stream.NewSeekableArrayStream([]byte{0x0a, 0x27, 0x10}, 0), false)
	if err := d.Next(values, 10, notNull); err != nil {
		t.Fatalf("%+v", err)
	}
	for i := 0; i < 10; i += 2 {
		assert.Equal(t, int64(10000), values[i])
	}
}

func TestIntRleV2AllNull(t *testing.T) {
	notNull := make([]bool, 8)
	d := NewIntRleV2(stream.NewSeekableArrayStream(nil, 0), false)
	assert.Nil(t, d.Next(make([]int64, 8), 8, notNull))
}

func TestIntRleV2Skip(t *testing.T) {
	d := NewIntRleV2(stream.NewSeekableArrayStream(
		[]byte{0xc6, 0x09, 0x02, 0x02, 0x22, 0x42, 0x42, 0x46}, 0), false)
	if err := d.Skip(6); err != nil {
		t.Fatalf("%+v", err)
	}
	values := make([]int64, 3)
	if err := d.Next(values, 3, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []int64{19, 23, 29}, values)
}

func TestIntRleV2ChunkedInput(t *testing.T) {
	// run headers and payloads split across 2-byte windows
	data := []byte{0x5e, 0x03, 0x5c, 0xa1, 0xab, 0x1e, 0xde, 0xad, 0xbe, 0xef}
	d := NewIntRleV2(stream.NewSeekableArrayStream(data, 2), false)
	values := make([]int64, 4)
	if err := d.Next(values, 4, nil); err != nil {
		t.Fatalf("%+v", err)
	}
	assert.Equal(t, []int64{23713, 43806, 57005, 48879}, values)
}

func TestDecodeBitWidth(t *testing.T) {
	for n := 0; n <= 23; n++ {
		assert.Equal(t, n+1, DecodeBitWidth(n))
	}
	assert.Equal(t, 26, DecodeBitWidth(24))
	assert.Equal(t, 28, DecodeBitWidth(25))
	assert.Equal(t, 30, DecodeBitWidth(26))
	assert.Equal(t, 32, DecodeBitWidth(27))
	assert.Equal(t, 40, DecodeBitWidth(28))
	assert.Equal(t, 48, DecodeBitWidth(29))
	assert.Equal(t, 56, DecodeBitWidth(30))
	assert.Equal(t, 64, DecodeBitWidth(31))
}

func TestGetClosestFixedBits(t *testing.T) {
	supported := map[int]bool{}
	for n := 0; n <= 31; n++ {
		supported[DecodeBitWidth(n)] = true
	}
	for n := 0; n <= 64; n++ {
		w := GetClosestFixedBits(n)
		assert.True(t, w >= n || n == 0)
		assert.True(t, supported[w], "width %d for %d not supported", w, n)
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 2, -2, 1 << 40, -(1 << 40), 1<<63 - 1, -1 << 63} {
		assert.Equal(t, v, UnZigzag(Zigzag(v)))
	}
}
