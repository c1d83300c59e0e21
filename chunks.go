package state

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/samber/oops"
)

// ChunkPos addresses a chunk in chunk coordinates.
type ChunkPos struct {
	X, Y, Z int32
}

func (p ChunkPos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// ChunkPosAt returns the chunk containing world coordinate (x, y, z) for
// cubic chunks of the given edge size. Sizes below 1 are treated as 1.
// Chunk coordinates outside the int32 range are clamped to it.
func ChunkPosAt(x, y, z, size int) ChunkPos {
	if size < 1 {
		size = 1
	}
	return ChunkPos{X: floorDiv(x, size), Y: floorDiv(y, size), Z: floorDiv(z, size)}
}

func floorDiv(v, size int) int32 {
	q := v / size
	if v%size != 0 && v < 0 {
		q--
	}
	switch {
	case q > math.MaxInt32:
		return math.MaxInt32
	case q < math.MinInt32:
		return math.MinInt32
	}
	return int32(q)
}

// Chunks is a sparse store of chunk data keyed by position.
type Chunks struct {
	chunks map[ChunkPos]any
}

// Len reports how many chunks are stored.
func (c *Chunks) Len() int {
	return len(c.chunks)
}

// Has reports whether a chunk is stored at pos.
func (c *Chunks) Has(pos ChunkPos) bool {
	_, ok := c.chunks[pos]
	return ok
}

// Get returns the chunk stored at pos.
func (c *Chunks) Get(pos ChunkPos) (any, bool) {
	v, ok := c.chunks[pos]
	return v, ok
}

// Set stores value at pos, replacing any existing chunk. Untyped nil and
// nil pointers, maps, slices, funcs, channels and interfaces are rejected.
func (c *Chunks) Set(pos ChunkPos, value any) error {
	if isNil(value) {
		return oops.Code(CodeNilChunk).
			With("pos", pos.String()).
			Wrap(ErrNilChunk)
	}
	if c.chunks == nil {
		c.chunks = make(map[ChunkPos]any)
	}
	c.chunks[pos] = value
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Remove deletes the chunk at pos and reports whether one was stored.
func (c *Chunks) Remove(pos ChunkPos) bool {
	if _, ok := c.chunks[pos]; !ok {
		return false
	}
	delete(c.chunks, pos)
	return true
}

// Iterate visits chunks ordered by Z, then Y, then X until fn returns false.
func (c *Chunks) Iterate(fn func(ChunkPos, any) bool) {
	positions := make([]ChunkPos, 0, len(c.chunks))
	for pos := range c.chunks {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	for _, pos := range positions {
		if !fn(pos, c.chunks[pos]) {
			return
		}
	}
}

// Clear removes all chunks.
func (c *Chunks) Clear() {
	clear(c.chunks)
}

// FromRegistry implements FromRegistry.
func (Chunks) FromRegistry(r *Registry) (Cell[Chunks], error) {
	return Get[Chunks](r)
}
