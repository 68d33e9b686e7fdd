// Package breaker implements the block breaker simulation: the entity
// registry, per-tick update and collision resolution for every entity kind,
// and the fixed-tick Step entry point driven by a frontend.
//
// The package has no terminal, audio or process dependencies. Frontends feed it
// core.InputFrame values and consume Frame snapshots; audio cues and terminal
// outcomes flow out through AudioSink and core.Outcome.
package breaker

import "github.com/vovakirdan/block-breaker/internal/core"

// Kind tags the closed set of entity variants.
type Kind int

const (
	KindPaddle Kind = iota
	KindBall
	KindBlock
	KindEnemy
	KindBeam
	KindItem
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindBlock:
		return "block"
	case KindEnemy:
		return "enemy"
	case KindBeam:
		return "beam"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// EntityID identifies an entity for the lifetime of a World.
type EntityID uint64

// Entity is implemented only by the entity types of this package:
// *Paddle, *Ball, *Block, *Enemy, *Beam and *Item.
type Entity interface {
	ID() EntityID
	Kind() Kind
	Bounds() core.Rect
	Alive() bool

	// sprite describes how the entity is drawn.
	sprite() Sprite
	// base gives the registry access to the shared fields.
	base() *body
}

// body holds the fields every entity shares.
type body struct {
	id   EntityID
	rect core.Rect
	dead bool
}

// ID returns the registry-assigned identifier.
func (b *body) ID() EntityID { return b.id }

// Bounds returns the entity's current AABB.
func (b *body) Bounds() core.Rect { return b.rect }

// Alive reports whether the entity is still registered.
func (b *body) Alive() bool { return !b.dead }

func (b *body) base() *body { return b }
