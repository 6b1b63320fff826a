package api

import (
	"fmt"
)

// ColumnVectorBatch is one column's worth of decoded rows. A batch is
// created through the reader, filled by Next and owned by the caller.
// Resize may grow capacity; shrinking never frees memory.
type ColumnVectorBatch interface {
	Resize(capacity int)
	Capacity() int
	Base() *BatchBase
	String() string
}

// BatchBase carries the row count and null mask shared by every batch kind.
// NotNull is at least Capacity long; HasNulls is true iff some slot in
// [0, NumElements) is null.
type BatchBase struct {
	NumElements int
	NotNull     []bool
	HasNulls    bool
}

func (b *BatchBase) Base() *BatchBase {
	return b
}

func (b *BatchBase) Capacity() int {
	return len(b.NotNull)
}

func (b *BatchBase) resize(capacity int) {
	if capacity > len(b.NotNull) {
		notNull := make([]bool, capacity)
		copy(notNull, b.NotNull)
		b.NotNull = notNull
	}
}

type LongBatch struct {
	BatchBase
	Data []int64
}

func NewLongBatch(capacity int) *LongBatch {
	return &LongBatch{BatchBase: BatchBase{NotNull: make([]bool, capacity)}, Data: make([]int64, capacity)}
}

func (b *LongBatch) Resize(capacity int) {
	if capacity > b.Capacity() {
		b.resize(capacity)
		data := make([]int64, capacity)
		copy(data, b.Data)
		b.Data = data
	}
}

func (b *LongBatch) String() string {
	return fmt.Sprintf("long batch %d of %d", b.NumElements, b.Capacity())
}

type DoubleBatch struct {
	BatchBase
	Data []float64
}

func NewDoubleBatch(capacity int) *DoubleBatch {
	return &DoubleBatch{BatchBase: BatchBase{NotNull: make([]bool, capacity)}, Data: make([]float64, capacity)}
}

func (b *DoubleBatch) Resize(capacity int) {
	if capacity > b.Capacity() {
		b.resize(capacity)
		data := make([]float64, capacity)
		copy(data, b.Data)
		b.Data = data
	}
}

func (b *DoubleBatch) String() string {
	return fmt.Sprintf("double batch %d of %d", b.NumElements, b.Capacity())
}

// StringBatch rows are sub-slices of a buffer owned by the column reader
// that produced them, valid until its next Next call, a Resize or reader
// close. Null rows are nil.
type StringBatch struct {
	BatchBase
	Data [][]byte
}

func NewStringBatch(capacity int) *StringBatch {
	return &StringBatch{BatchBase: BatchBase{NotNull: make([]bool, capacity)}, Data: make([][]byte, capacity)}
}

func (b *StringBatch) Resize(capacity int) {
	if capacity > b.Capacity() {
		b.resize(capacity)
		data := make([][]byte, capacity)
		copy(data, b.Data)
		b.Data = data
	}
}

func (b *StringBatch) String() string {
	return fmt.Sprintf("string batch %d of %d", b.NumElements, b.Capacity())
}

type StructBatch struct {
	BatchBase
	Fields []ColumnVectorBatch
}

func NewStructBatch(capacity int) *StructBatch {
	return &StructBatch{BatchBase: BatchBase{NotNull: make([]bool, capacity)}}
}

func (b *StructBatch) Resize(capacity int) {
	if capacity > b.Capacity() {
		b.resize(capacity)
		for _, f := range b.Fields {
			f.Resize(capacity)
		}
	}
}

func (b *StructBatch) String() string {
	return fmt.Sprintf("struct batch %d of %d with %d fields", b.NumElements, b.Capacity(), len(b.Fields))
}

// ListBatch has NumElements+1 offsets; row i spans
// Elements[Offsets[i]:Offsets[i+1]].
type ListBatch struct {
	BatchBase
	Offsets  []uint64
	Elements ColumnVectorBatch
}

func NewListBatch(capacity int) *ListBatch {
	return &ListBatch{BatchBase: BatchBase{NotNull: make([]bool, capacity)}, Offsets: make([]uint64, capacity+1)}
}

func (b *ListBatch) Resize(capacity int) {
	if capacity > b.Capacity() {
		b.resize(capacity)
		offsets := make([]uint64, capacity+1)
		copy(offsets, b.Offsets)
		b.Offsets = offsets
		if b.Elements != nil {
			b.Elements.Resize(capacity)
		}
	}
}

func (b *ListBatch) String() string {
	return fmt.Sprintf("list batch %d of %d", b.NumElements, b.Capacity())
}

type MapBatch struct {
	BatchBase
	Offsets []uint64
	Keys    ColumnVectorBatch
	Values  ColumnVectorBatch
}

func NewMapBatch(capacity int) *MapBatch {
	return &MapBatch{BatchBase: BatchBase{NotNull: make([]bool, capacity)}, Offsets: make([]uint64, capacity+1)}
}

func (b *MapBatch) Resize(capacity int) {
	if capacity > b.Capacity() {
		b.resize(capacity)
		offsets := make([]uint64, capacity+1)
		copy(offsets, b.Offsets)
		b.Offsets = offsets
		if b.Keys != nil {
			b.Keys.Resize(capacity)
		}
		if b.Values != nil {
			b.Values.Resize(capacity)
		}
	}
}

func (b *MapBatch) String() string {
	return fmt.Sprintf("map batch %d of %d", b.NumElements, b.Capacity())
}

type Decimal64Batch struct {
	BatchBase
	Values    []int64
	Precision int32
	Scale     int32

	readScales []int64
}

func NewDecimal64Batch(capacity int) *Decimal64Batch {
	return &Decimal64Batch{
		BatchBase:  BatchBase{NotNull: make([]bool, capacity)},
		Values:     make([]int64, capacity),
		readScales: make([]int64, capacity),
	}
}

func (b *Decimal64Batch) Resize(capacity int) {
	if capacity > b.Capacity() {
		b.resize(capacity)
		values := make([]int64, capacity)
		copy(values, b.Values)
		b.Values = values
		scales := make([]int64, capacity)
		copy(scales, b.readScales)
		b.readScales = scales
	}
}

// TakeReadScales exposes the per-row scale scratch to the decoder; callers
// see only Values, Precision and Scale.
func (b *Decimal64Batch) TakeReadScales() *[]int64 {
	return &b.readScales
}

func (b *Decimal64Batch) String() string {
	return fmt.Sprintf("decimal64 batch %d of %d", b.NumElements, b.Capacity())
}

// Int128 is a two's-complement 128-bit integer split into halves.
type Int128 struct {
	HighBits int64
	LowBits  uint64
}

type Decimal128Batch struct {
	BatchBase
	Values    []Int128
	Precision int32
	Scale     int32

	readScales []int64
}

func NewDecimal128Batch(capacity int) *Decimal128Batch {
	return &Decimal128Batch{
		BatchBase:  BatchBase{NotNull: make([]bool, capacity)},
		Values:     make([]Int128, capacity),
		readScales: make([]int64, capacity),
	}
}

func (b *Decimal128Batch) Resize(capacity int) {
	if capacity > b.Capacity() {
		b.resize(capacity)
		values := make([]Int128, capacity)
		copy(values, b.Values)
		b.Values = values
		scales := make([]int64, capacity)
		copy(scales, b.readScales)
		b.readScales = scales
	}
}

func (b *Decimal128Batch) TakeReadScales() *[]int64 {
	return &b.readScales
}

func (b *Decimal128Batch) String() string {
	return fmt.Sprintf("decimal128 batch %d of %d", b.NumElements, b.Capacity())
}
