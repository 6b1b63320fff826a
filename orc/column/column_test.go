package column

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haohui/orc/orc/api"
	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/orc/config"
	"github.com/haohui/orc/orc/stream"
	"github.com/haohui/orc/pb/pb"
)

type streamKey struct {
	column uint32
	kind   pb.Stream_Kind
}

// testStripeStreams serves in-memory streams, optionally split into tiny
// windows to exercise buffer boundaries.
type testStripeStreams struct {
	selected  []bool
	encodings map[uint32]*pb.ColumnEncoding
	streams   map[streamKey][]byte
	chunk     int
	opts      *config.ReaderOptions
}

func newTestStreams(selected []bool) *testStripeStreams {
	return &testStripeStreams{
		selected:  selected,
		encodings: map[uint32]*pb.ColumnEncoding{},
		streams:   map[streamKey][]byte{},
		opts:      config.NewReaderOptions(),
	}
}

func (s *testStripeStreams) encode(column uint32, kind pb.ColumnEncoding_Kind, dictSize uint32) {
	s.encodings[column] = &pb.ColumnEncoding{Kind: kind.Enum(), DictionarySize: &dictSize}
}

func (s *testStripeStreams) add(column uint32, kind pb.Stream_Kind, data []byte) {
	s.streams[streamKey{column: column, kind: kind}] = data
}

func (s *testStripeStreams) GetSelectedColumns() []bool {
	return s.selected
}

func (s *testStripeStreams) GetEncoding(columnId uint32) (*pb.ColumnEncoding, error) {
	if enc, ok := s.encodings[columnId]; ok {
		return enc, nil
	}
	return &pb.ColumnEncoding{Kind: pb.ColumnEncoding_DIRECT.Enum()}, nil
}

func (s *testStripeStreams) GetStream(columnId uint32, kind pb.Stream_Kind) (stream.InputStream, error) {
	data, ok := s.streams[streamKey{column: columnId, kind: kind}]
	if !ok {
		return nil, nil
	}
	return stream.NewSeekableArrayStream(data, s.chunk), nil
}

func (s *testStripeStreams) GetReaderOptions() *config.ReaderOptions {
	return s.opts
}

func structType(names []string, children ...*api.TypeDescription) *api.TypeDescription {
	return &api.TypeDescription{Kind: pb.Type_STRUCT, ChildrenNames: names, Children: children}
}

func primitiveType(kind pb.Type_Kind) *api.TypeDescription {
	return &api.TypeDescription{Kind: kind}
}

func TestIntegerWithNulls(t *testing.T) {
	streams := newTestStreams([]bool{true, true})
	streams.add(1, pb.Stream_PRESENT, []byte{0x19, 0xf0})
	streams.add(1, pb.Stream_DATA, []byte{0x64, 0x01, 0x00})

	rowType := structType([]string{"myInt"}, primitiveType(pb.Type_INT))
	rowType.AssignIds(0)

	reader, err := NewReader(rowType, streams)
	require.Nil(t, err)

	longBatch := api.NewLongBatch(1024)
	batch := api.NewStructBatch(1024)
	batch.Fields = append(batch.Fields, longBatch)
	require.Nil(t, reader.Next(batch, 200, nil))

	assert.Equal(t, 200, batch.NumElements)
	assert.False(t, batch.HasNulls)
	assert.Equal(t, 200, longBatch.NumElements)
	assert.True(t, longBatch.HasNulls)
	next := int64(0)
	for i := 0; i < batch.NumElements; i++ {
		if i&4 != 0 {
			assert.False(t, longBatch.NotNull[i], "wrong at %d", i)
		} else {
			assert.True(t, longBatch.NotNull[i], "wrong at %d", i)
			assert.Equal(t, next, longBatch.Data[i], "wrong at %d", i)
			next++
		}
	}
}

func TestDictionaryWithNulls(t *testing.T) {
	streams := newTestStreams([]bool{true, true})
	streams.encode(1, pb.ColumnEncoding_DICTIONARY, 2)
	streams.add(1, pb.Stream_PRESENT, []byte{0x19, 0xf0})
	streams.add(1, pb.Stream_DATA, []byte{0x2f, 0x00, 0x00, 0x2f, 0x00, 0x01})
	streams.add(1, pb.Stream_DICTIONARY_DATA, []byte("ORCOwen"))
	streams.add(1, pb.Stream_LENGTH, []byte{0x02, 0x01, 0x03})

	rowType := structType([]string{"myString"}, primitiveType(pb.Type_STRING))
	rowType.AssignIds(0)

	reader, err := NewReader(rowType, streams)
	require.Nil(t, err)

	stringBatch := api.NewStringBatch(1024)
	batch := api.NewStructBatch(1024)
	batch.Fields = append(batch.Fields, stringBatch)
	require.Nil(t, reader.Next(batch, 200, nil))

	assert.Equal(t, 200, batch.NumElements)
	assert.False(t, batch.HasNulls)
	assert.Equal(t, 200, stringBatch.NumElements)
	assert.True(t, stringBatch.HasNulls)
	for i := 0; i < batch.NumElements; i++ {
		if i&4 != 0 {
			assert.False(t, stringBatch.NotNull[i], "wrong at %d", i)
			continue
		}
		assert.True(t, stringBatch.NotNull[i], "wrong at %d", i)
		expected := "ORC"
		if i >= 98 {
			expected = "Owen"
		}
		assert.Equal(t, expected, string(stringBatch.Data[i]), "wrong at %d", i)
	}
}

func TestVarcharDictionaryWithNulls(t *testing.T) {
	streams := newTestStreams([]bool{true, true, true, false})
	streams.encode(1, pb.ColumnEncoding_DICTIONARY, 2)
	streams.encode(2, pb.ColumnEncoding_DICTIONARY, 0)
	streams.add(1, pb.Stream_PRESENT, []byte{0x16, 0xff})
	streams.add(1, pb.Stream_DATA, []byte{0x61, 0x00, 0x01, 0x61, 0x00, 0x00})
	streams.add(1, pb.Stream_DICTIONARY_DATA, []byte("ORCOwen"))
	streams.add(1, pb.Stream_LENGTH, []byte{0x02, 0x01, 0x03})
	streams.add(2, pb.Stream_PRESENT, []byte{0x16, 0x00})
	streams.add(2, pb.Stream_DATA, []byte{})
	streams.add(2, pb.Stream_DICTIONARY_DATA, []byte{})
	streams.add(2, pb.Stream_LENGTH, []byte{})

	rowType := structType([]string{"col0", "col1", "col2"},
		primitiveType(pb.Type_VARCHAR),
		primitiveType(pb.Type_CHAR),
		primitiveType(pb.Type_STRING))
	rowType.AssignIds(0)

	reader, err := NewReader(rowType, streams)
	require.Nil(t, err)

	stringBatch := api.NewStringBatch(1024)
	nullBatch := api.NewStringBatch(1024)
	batch := api.NewStructBatch(1024)
	batch.Fields = append(batch.Fields, stringBatch, nullBatch)
	require.Nil(t, reader.Next(batch, 200, nil))

	assert.Equal(t, 200, batch.NumElements)
	assert.False(t, batch.HasNulls)
	assert.Equal(t, 200, stringBatch.NumElements)
	assert.False(t, stringBatch.HasNulls)
	assert.Equal(t, 200, nullBatch.NumElements)
	assert.True(t, nullBatch.HasNulls)
	for i := 0; i < batch.NumElements; i++ {
		assert.True(t, stringBatch.NotNull[i], "wrong at %d", i)
		assert.False(t, nullBatch.NotNull[i], "wrong at %d", i)
		expected := "Owen"
		if i >= 100 {
			expected = "ORC"
		}
		assert.Equal(t, expected, string(stringBatch.Data[i]), "wrong at %d", i)
	}
}

func TestSubstructsWithNulls(t *testing.T) {
	streams := newTestStreams([]bool{true, true, true, true})
	streams.add(1, pb.Stream_PRESENT, []byte{0x16, 0x0f})
	streams.add(2, pb.Stream_PRESENT, []byte{0x0a, 0x55})
	streams.add(3, pb.Stream_PRESENT, []byte{0x04, 0xf0})
	streams.add(3, pb.Stream_DATA, []byte{0x17, 0x01, 0x00})

	rowType := structType([]string{"col0"},
		structType([]string{"col1"},
			structType([]string{"col2"},
				primitiveType(pb.Type_LONG))))
	rowType.AssignIds(0)

	reader, err := NewReader(rowType, streams)
	require.Nil(t, err)

	longs := api.NewLongBatch(1024)
	inner := api.NewStructBatch(1024)
	inner.Fields = append(inner.Fields, longs)
	middle := api.NewStructBatch(1024)
	middle.Fields = append(middle.Fields, inner)
	batch := api.NewStructBatch(1024)
	batch.Fields = append(batch.Fields, middle)
	require.Nil(t, reader.Next(batch, 200, nil))

	assert.Equal(t, 200, batch.NumElements)
	assert.False(t, batch.HasNulls)
	assert.Equal(t, 200, middle.NumElements)
	assert.True(t, middle.HasNulls)
	assert.Equal(t, 200, inner.NumElements)
	assert.True(t, inner.HasNulls)
	assert.Equal(t, 200, longs.NumElements)
	assert.True(t, longs.HasNulls)

	var middleCount, innerCount, longCount int64
	for i := 0; i < batch.NumElements; i++ {
		if i&4 != 0 {
			assert.True(t, middle.NotNull[i], "wrong at %d", i)
			if middleCount&1 != 0 {
				assert.True(t, inner.NotNull[i], "wrong at %d", i)
				if innerCount&4 != 0 {
					assert.False(t, longs.NotNull[i], "wrong at %d", i)
				} else {
					assert.True(t, longs.NotNull[i], "wrong at %d", i)
					assert.Equal(t, longCount, longs.Data[i], "wrong at %d", i)
					longCount++
				}
				innerCount++
			} else {
				assert.False(t, inner.NotNull[i], "wrong at %d", i)
				assert.False(t, longs.NotNull[i], "wrong at %d", i)
			}
			middleCount++
		} else {
			assert.False(t, middle.NotNull[i], "wrong at %d", i)
			assert.False(t, inner.NotNull[i], "wrong at %d", i)
			assert.False(t, longs.NotNull[i], "wrong at %d", i)
		}
	}
}

func TestSkipWithNulls(t *testing.T) {
	present := []byte{0x03, 0x00, 0xff, 0x3f, 0x08, 0xff, 0xff, 0xfc, 0x03, 0x00}
	streams := newTestStreams([]bool{true, true, true})
	streams.encode(2, pb.ColumnEncoding_DICTIONARY, 100)
	streams.add(1, pb.Stream_PRESENT, present)
	streams.add(1, pb.Stream_DATA, []byte{0x61, 0x01, 0x00})
	streams.add(2, pb.Stream_PRESENT, present)
	streams.add(2, pb.Stream_DATA, []byte{0x61, 0x01, 0x00})

	// dictionary of "00" to "99"
	digits := make([]byte, 200)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			digits[2*(10*i+j)] = '0' + byte(i)
			digits[2*(10*i+j)+1] = '0' + byte(j)
		}
	}
	streams.add(2, pb.Stream_DICTIONARY_DATA, digits)
	streams.add(2, pb.Stream_LENGTH, []byte{0x61, 0x00, 0x02})

	rowType := structType([]string{"myInt", "myString"},
		primitiveType(pb.Type_INT),
		primitiveType(pb.Type_STRING))
	rowType.AssignIds(0)

	reader, err := NewReader(rowType, streams)
	require.Nil(t, err)

	longBatch := api.NewLongBatch(100)
	stringBatch := api.NewStringBatch(100)
	batch := api.NewStructBatch(100)
	batch.Fields = append(batch.Fields, longBatch, stringBatch)

	require.Nil(t, reader.Next(batch, 20, nil))
	assert.Equal(t, 20, batch.NumElements)
	assert.False(t, batch.HasNulls)
	assert.True(t, longBatch.HasNulls)
	assert.True(t, stringBatch.HasNulls)
	for i := 0; i < 20; i++ {
		assert.False(t, longBatch.NotNull[i], "wrong at %d", i)
		assert.False(t, stringBatch.NotNull[i], "wrong at %d", i)
	}

	_, err = reader.Skip(30)
	require.Nil(t, err)

	require.Nil(t, reader.Next(batch, 100, nil))
	assert.Equal(t, 100, batch.NumElements)
	assert.False(t, batch.HasNulls)
	assert.False(t, longBatch.HasNulls)
	assert.False(t, stringBatch.HasNulls)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			k := 10*i + j
			assert.True(t, longBatch.NotNull[k], "wrong at %d", k)
			assert.Equal(t, int64(k), longBatch.Data[k], "wrong at %d", k)
			assert.Equal(t, fmt.Sprintf("%d%d", i, j), string(stringBatch.Data[k]), "wrong at %d", k)
		}
	}

	_, err = reader.Skip(50)
	require.Nil(t, err)
}

func TestBinaryDirect(t *testing.T) {
	streams := newTestStreams([]bool{true, true})
	blob := make([]byte, 200)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			blob[2*(10*i+j)] = byte(i)
			blob[2*(10*i+j)+1] = byte(j)
		}
	}
	streams.add(1, pb.Stream_DATA, blob)
	streams.add(1, pb.Stream_LENGTH, []byte{0x61, 0x00, 0x02})
	streams.chunk = 3

	rowType := structType([]string{"col0"}, primitiveType(pb.Type_BINARY))
	rowType.AssignIds(0)

	reader, err := NewReader(rowType, streams)
	require.Nil(t, err)

	strings := api.NewStringBatch(25)
	batch := api.NewStructBatch(25)
	batch.Fields = append(batch.Fields, strings)
	for i := 0; i < 4; i++ {
		require.Nil(t, reader.Next(batch, 25, nil))
		assert.Equal(t, 25, batch.NumElements)
		assert.False(t, batch.HasNulls)
		assert.Equal(t, 25, strings.NumElements)
		assert.False(t, strings.HasNulls)
		for j := 0; j < batch.NumElements; j++ {
			require.Equal(t, 2, len(strings.Data[j]))
			assert.Equal(t, byte((25*i+j)/10), strings.Data[j][0])
			assert.Equal(t, byte((25*i+j)%10), strings.Data[j][1])
		}
	}
}

func TestStringDirectShortBlob(t *testing.T) {
	streams := newTestStreams([]bool{true, true})
	streams.add(1, pb.Stream_DATA, make([]byte, 100))
	streams.add(1, pb.Stream_LENGTH, []byte{0x61, 0x00, 0x02})

	rowType := structType([]string{"col0"}, primitiveType(pb.Type_STRING))
	rowType.AssignIds(0)

	reader, err := NewReader(rowType, streams)
	require.Nil(t, err)

	strings := api.NewStringBatch(1024)
	batch := api.NewStructBatch(1024)
	batch.Fields = append(batch.Fields, strings)
	err = reader.Next(batch, 100, nil)
	var pe common.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestStringDirectSkip(t *testing.T) {
	// 1200 strings; string r is the bytes 0..r-1
	var blob []byte
	for item := 0; item < 1200; item++ {
		for ch := 0; ch < item; ch++ {
			blob = append(blob, byte(ch))
		}
	}
	lengths := []byte{
		0x7f, 0x01, 0x00,
		0x7f, 0x01, 0x82, 0x01,
		0x7f, 0x01, 0x84, 0x02,
		0x7f, 0x01, 0x86, 0x03,
		0x7f, 0x01, 0x88, 0x04,
		0x7f, 0x01, 0x8a, 0x05,
		0x7f, 0x01, 0x8c, 0x06,
		0x7f, 0x01, 0x8e, 0x07,
		0x7f, 0x01, 0x90, 0x08,
		0x1b, 0x01, 0x92, 0x09,
	}
	streams := newTestStreams([]bool{true, true})
	streams.add(1, pb.Stream_DATA, blob)
	streams.add(1, pb.Stream_LENGTH, lengths)
	streams.chunk = 200

	rowType := structType([]string{"col0"}, primitiveType(pb.Type_STRING))
	rowType.AssignIds(0)

	reader, err := NewReader(rowType, streams)
	require.Nil(t, err)

	strings := api.NewStringBatch(2)
	batch := api.NewStructBatch(2)
	batch.Fields = append(batch.Fields, strings)

	expect := func(first int) {
		require.Nil(t, reader.Next(batch, 2, nil))
		for i := 0; i < 2; i++ {
			require.Equal(t, first+i, len(strings.Data[i]))
			for j := 0; j < first+i; j++ {
				assert.Equal(t, byte(j), strings.Data[i][j])
			}
		}
	}

	expect(0)
	_, err = reader.Skip(14)
	require.Nil(t, err)
	expect(16)
	_, err = reader.Skip(1180)
	require.Nil(t, err)
	expect(1198)
}

func TestUnimplementedTypes(t *testing.T) {
	streams := newTestStreams([]bool{true, true})
	kinds := []pb.Type_Kind{
		pb.Type_FLOAT, pb.Type_DOUBLE, pb.Type_BOOLEAN, pb.Type_TIMESTAMP,
		pb.Type_LIST, pb.Type_MAP, pb.Type_UNION, pb.Type_DECIMAL, pb.Type_DATE,
	}
	for _, kind := range kinds {
		rowType := structType([]string{"col0"}, primitiveType(kind))
		rowType.AssignIds(0)
		_, err := NewReader(rowType, streams)
		var ni common.NotImplemented
		assert.True(t, errors.As(err, &ni), "kind %s", kind)
	}
}
