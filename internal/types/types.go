// internal/types/types.go
package types

// EntityID encodes a 32-bit index in the lower bits and a 32-bit generation
// in the upper bits. The generation is bumped on destroy so a stale handle
// never resolves to the entity that later reuses its slot.
type EntityID uint64

// NullEntity is never issued by a store.
const NullEntity EntityID = 0

func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsNull() bool       { return id == NullEntity }

// SceneID identifies a scene registered in the state machine.
type SceneID int

// NullScene means "no scene". Returning it from an update closes the game.
const NullScene SceneID = 0
