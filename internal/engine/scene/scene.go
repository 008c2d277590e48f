// Package scene holds the pickable entity set the viewer navigates.
package scene

import (
	"github.com/yosiookita/xeokit-sdk/internal/engine/picking"
)

// Entity is a named object with world-space bounds.
type Entity struct {
	ID     string
	Bounds picking.AABB
}

// PickID implements picking.Pickable.
func (e *Entity) PickID() string { return e.ID }

// PickBounds implements picking.Pickable.
func (e *Entity) PickBounds() picking.AABB { return e.Bounds }

// Scene is an ordered collection of entities.
type Scene struct {
	entities []*Entity
	byID     map[string]*Entity
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{byID: make(map[string]*Entity)}
}

// Add inserts an entity. A duplicate ID replaces the previous entity.
func (s *Scene) Add(e *Entity) {
	if prev, ok := s.byID[e.ID]; ok {
		for i, ent := range s.entities {
			if ent == prev {
				s.entities[i] = e
				break
			}
		}
	} else {
		s.entities = append(s.entities, e)
	}
	s.byID[e.ID] = e
}

// Get returns the entity with the given ID, or nil.
func (s *Scene) Get(id string) *Entity {
	return s.byID[id]
}

// Entities returns the entities in insertion order.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

// Pickables implements picking.Source.
func (s *Scene) Pickables() []picking.Pickable {
	out := make([]picking.Pickable, len(s.entities))
	for i, e := range s.entities {
		out[i] = e
	}
	return out
}

// Bounds returns the union of all entity bounds.
// ok is false for an empty scene.
func (s *Scene) Bounds() (picking.AABB, bool) {
	if len(s.entities) == 0 {
		return picking.AABB{}, false
	}
	b := s.entities[0].Bounds
	for _, e := range s.entities[1:] {
		b = b.Union(e.Bounds)
	}
	return b, true
}
