package common

// PositionProvider hands out recorded stream positions one layer at a time:
// each stream or decoder on the path consumes exactly the values it needs.
type PositionProvider struct {
	positions []uint64
	next      int
}

func NewPositionProvider(positions []uint64) *PositionProvider {
	return &PositionProvider{positions: positions}
}

func (p *PositionProvider) Next() uint64 {
	v := p.positions[p.next]
	p.next++
	return v
}

func (p *PositionProvider) Remaining() int {
	return len(p.positions) - p.next
}

// chunk header: 24 bits little endian, length<<1 with lsb marking an
// uncompressed (original) chunk
func EncChunkHeader(l int, orig bool) (header []byte) {
	header = make([]byte, 3)
	if orig {
		header[0] = 0x01 | byte(l<<1)
	} else {
		header[0] = byte(l << 1)
	}
	header[1] = byte(l >> 7)
	header[2] = byte(l >> 15)
	return
}

func DecChunkHeader(h []byte) (length int, orig bool) {
	_ = h[2]
	return int(h[2])<<15 | int(h[1])<<7 | int(h[0])>>1, h[0]&0x01 == 0x01
}

func Min(x, y uint64) uint64 {
	if x < y {
		return x
	}
	return y
}

func Max(x, y uint64) uint64 {
	if x > y {
		return x
	}
	return y
}

// MemoryPool is the allocation capability for reader-owned scratch buffers.
// The default pool is the Go allocator; callers may plug an arena.
type MemoryPool interface {
	Allocate(size int) []byte
	Free(buf []byte)
}

type goPool struct{}

func (goPool) Allocate(size int) []byte { return make([]byte, size) }
func (goPool) Free([]byte)              {}

var DefaultPool MemoryPool = goPool{}
