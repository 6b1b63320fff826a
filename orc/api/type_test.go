package api

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/pb/pb"
)

func TestAssignIdsPreOrder(t *testing.T) {
	inner := &TypeDescription{Kind: pb.Type_STRUCT,
		ChildrenNames: []string{"c"},
		Children:      []*TypeDescription{{Kind: pb.Type_LONG}}}
	root := &TypeDescription{Kind: pb.Type_STRUCT,
		ChildrenNames: []string{"a", "b"},
		Children:      []*TypeDescription{{Kind: pb.Type_INT}, inner}}

	next := root.AssignIds(0)
	assert.Equal(t, uint32(4), next)
	assert.Equal(t, uint32(0), root.Id)
	assert.Equal(t, uint32(1), root.Subtype(0).Id)
	assert.Equal(t, uint32(2), inner.Id)
	assert.Equal(t, uint32(3), inner.Subtype(0).Id)

	// children sit strictly between their parent and its next sibling
	assert.True(t, inner.Subtype(0).Id > inner.Id)
	assert.True(t, inner.Subtype(0).Id < next)
}

func TestSchemaFromTypes(t *testing.T) {
	kindStruct := pb.Type_STRUCT
	kindInt := pb.Type_INT
	kindString := pb.Type_STRING
	types := []*pb.Type{
		{Kind: &kindStruct, Subtypes: []uint32{1, 2}, FieldNames: []string{"x", "y"}},
		{Kind: &kindInt},
		{Kind: &kindString},
	}
	schema, err := SchemaFromTypes(types)
	require.Nil(t, err)
	assert.Equal(t, pb.Type_STRUCT, schema.Kind)
	assert.Equal(t, 2, schema.SubtypeCount())
	assert.Equal(t, "x", schema.FieldName(0))
	assert.Equal(t, pb.Type_INT, schema.Subtype(0).Kind)
	assert.Equal(t, uint32(2), schema.Subtype(1).Id)
}

func TestSchemaFromTypesRejectsBadSubtype(t *testing.T) {
	kindStruct := pb.Type_STRUCT
	types := []*pb.Type{
		{Kind: &kindStruct, Subtypes: []uint32{0}, FieldNames: []string{"self"}},
	}
	_, err := SchemaFromTypes(types)
	var pe common.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestCreateRowBatchKinds(t *testing.T) {
	long := &TypeDescription{Kind: pb.Type_LONG}
	b, err := CreateRowBatch(long, nil, 16)
	require.Nil(t, err)
	assert.IsType(t, &LongBatch{}, b)
	assert.Equal(t, 16, b.Capacity())

	str := &TypeDescription{Kind: pb.Type_STRING}
	b, err = CreateRowBatch(str, nil, 16)
	require.Nil(t, err)
	assert.IsType(t, &StringBatch{}, b)

	small := &TypeDescription{Kind: pb.Type_DECIMAL, Precision: 12, Scale: 2}
	b, err = CreateRowBatch(small, nil, 16)
	require.Nil(t, err)
	assert.IsType(t, &Decimal64Batch{}, b)

	wide := &TypeDescription{Kind: pb.Type_DECIMAL, Precision: 38, Scale: 10}
	b, err = CreateRowBatch(wide, nil, 16)
	require.Nil(t, err)
	assert.IsType(t, &Decimal128Batch{}, b)

	union := &TypeDescription{Kind: pb.Type_UNION}
	_, err = CreateRowBatch(union, nil, 16)
	var ni common.NotImplemented
	assert.True(t, errors.As(err, &ni))
}

func TestCreateRowBatchSelection(t *testing.T) {
	root := &TypeDescription{Kind: pb.Type_STRUCT,
		ChildrenNames: []string{"a", "b"},
		Children: []*TypeDescription{
			{Kind: pb.Type_INT},
			{Kind: pb.Type_STRING},
		}}
	root.AssignIds(0)

	b, err := CreateRowBatch(root, []bool{true, false, true}, 8)
	require.Nil(t, err)
	batch := b.(*StructBatch)
	require.Equal(t, 1, len(batch.Fields))
	assert.IsType(t, &StringBatch{}, batch.Fields[0])
}

func TestBatchResize(t *testing.T) {
	b := NewLongBatch(4)
	b.Data[3] = 42
	b.Resize(16)
	assert.Equal(t, 16, b.Capacity())
	assert.Equal(t, int64(42), b.Data[3])
	// shrinking is a no-op
	b.Resize(2)
	assert.Equal(t, 16, b.Capacity())

	s := NewStructBatch(4)
	s.Fields = append(s.Fields, NewStringBatch(4))
	s.Resize(32)
	assert.Equal(t, 32, s.Fields[0].Capacity())

	l := NewListBatch(4)
	assert.Equal(t, 5, len(l.Offsets))
	l.Resize(8)
	assert.Equal(t, 9, len(l.Offsets))
}
