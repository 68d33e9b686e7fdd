package breaker

import (
	"slices"

	"github.com/vovakirdan/block-breaker/internal/core"
)

// World is the entity registry owned by a Game.
// It keeps every live entity in insertion order, which is also the draw
// order, plus per-kind collections used by collision queries.
type World struct {
	nextID EntityID
	order  []Entity

	paddle  *Paddle
	balls   []*Ball
	blocks  []*Block
	enemies []*Enemy
	beams   []*Beam
	items   []*Item
}

// NewWorld creates an empty registry.
func NewWorld() *World {
	return &World{}
}

// Spawn registers an entity and assigns its ID.
// Registering a second paddle replaces the first in the paddle slot.
func (w *World) Spawn(e Entity) EntityID {
	w.nextID++
	b := e.base()
	b.id = w.nextID
	b.dead = false
	w.order = append(w.order, e)

	switch v := e.(type) {
	case *Paddle:
		w.paddle = v
	case *Ball:
		w.balls = append(w.balls, v)
	case *Block:
		w.blocks = append(w.blocks, v)
	case *Enemy:
		w.enemies = append(w.enemies, v)
	case *Beam:
		w.beams = append(w.beams, v)
	case *Item:
		w.items = append(w.items, v)
	}
	return b.id
}

// Despawn removes an entity from every collection.
// Despawning an entity twice is a no-op.
func (w *World) Despawn(e Entity) {
	b := e.base()
	if b.dead {
		return
	}
	b.dead = true
	id := b.id
	w.order = slices.DeleteFunc(w.order, func(x Entity) bool { return x.ID() == id })

	switch v := e.(type) {
	case *Paddle:
		if w.paddle == v {
			w.paddle = nil
		}
	case *Ball:
		w.balls = removeEntity(w.balls, id)
	case *Block:
		w.blocks = removeEntity(w.blocks, id)
	case *Enemy:
		w.enemies = removeEntity(w.enemies, id)
	case *Beam:
		w.beams = removeEntity(w.beams, id)
	case *Item:
		w.items = removeEntity(w.items, id)
	}
}

func removeEntity[T Entity](s []T, id EntityID) []T {
	return slices.DeleteFunc(s, func(x T) bool { return x.ID() == id })
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.order) }

// Entities returns the live entities in insertion order.
func (w *World) Entities() []Entity { return slices.Clone(w.order) }

// Paddle returns the registered paddle, or nil.
func (w *World) Paddle() *Paddle { return w.paddle }

// Balls returns the live balls.
func (w *World) Balls() []*Ball { return slices.Clone(w.balls) }

// Blocks returns the live blocks.
func (w *World) Blocks() []*Block { return slices.Clone(w.blocks) }

// Enemies returns the live enemies.
func (w *World) Enemies() []*Enemy { return slices.Clone(w.enemies) }

// Beams returns the live beams.
func (w *World) Beams() []*Beam { return slices.Clone(w.beams) }

// Items returns the live items.
func (w *World) Items() []*Item { return slices.Clone(w.items) }

// Count returns the number of live entities of the given kind.
func (w *World) Count(k Kind) int {
	switch k {
	case KindPaddle:
		if w.paddle != nil {
			return 1
		}
		return 0
	case KindBall:
		return len(w.balls)
	case KindBlock:
		return len(w.blocks)
	case KindEnemy:
		return len(w.enemies)
	case KindBeam:
		return len(w.beams)
	case KindItem:
		return len(w.items)
	default:
		return 0
	}
}

// blocksOverlapping returns every live block whose AABB overlaps r,
// in insertion order.
func (w *World) blocksOverlapping(r core.Rect) []*Block {
	var hits []*Block
	for _, b := range w.blocks {
		if b.rect.Intersects(r) {
			hits = append(hits, b)
		}
	}
	return hits
}
