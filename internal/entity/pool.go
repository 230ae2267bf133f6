package entity

import "go-gravitar/internal/types"

// Pool hands out generational entity handles and recycles freed slots.
type Pool struct {
	generations []uint32
	alive       []bool
	freeList    []uint32
	live        int
}

func NewPool() *Pool {
	return &Pool{
		generations: make([]uint32, 0, 64),
		freeList:    make([]uint32, 0, 16),
	}
}

func (p *Pool) Create() types.EntityID {
	p.live++
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		p.alive[idx] = true
		return types.NewEntityID(idx, p.generations[idx])
	}
	idx := uint32(len(p.generations))
	// generation starts at 1 so no live handle equals NullEntity
	p.generations = append(p.generations, 1)
	p.alive = append(p.alive, true)
	return types.NewEntityID(idx, 1)
}

func (p *Pool) Alive(id types.EntityID) bool {
	idx := id.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.alive[idx] && p.generations[idx] == id.Generation()
}

// Destroy invalidates id. Stale handles are ignored.
func (p *Pool) Destroy(id types.EntityID) bool {
	if !p.Alive(id) {
		return false
	}
	idx := id.Index()
	p.alive[idx] = false
	p.generations[idx]++
	if p.generations[idx] == 0 {
		p.generations[idx] = 1
	}
	p.freeList = append(p.freeList, idx)
	p.live--
	return true
}

func (p *Pool) Len() int {
	return p.live
}

// Each calls fn for every live handle in slot order.
func (p *Pool) Each(fn func(types.EntityID)) {
	for idx, gen := range p.generations {
		if p.alive[idx] {
			fn(types.NewEntityID(uint32(idx), gen))
		}
	}
}
