package engine

import (
	"github.com/calyxgames/primordia/component"
	"github.com/calyxgames/primordia/core"
)

// ComponentStore aggregates the typed stores. Systems cache the
// pointers once at construction; they remain valid for the lifetime of
// the world.
type ComponentStore struct {
	Transform    *Store[component.TransformComponent]
	GravityWell  *Store[component.GravityWellComponent]
	WarpState    *Store[component.WarpStateComponent]
	InterpTarget *Store[component.InterpolationTargetComponent]
	Heading      *Store[component.HeadingComponent]
	Organism     *Store[component.OrganismComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform:    NewStore[component.TransformComponent](),
		GravityWell:  NewStore[component.GravityWellComponent](),
		WarpState:    NewStore[component.WarpStateComponent](),
		InterpTarget: NewStore[component.InterpolationTargetComponent](),
		Heading:      NewStore[component.HeadingComponent](),
		Organism:     NewStore[component.OrganismComponent](),
	}
}

func (cs *ComponentStore) removeEntity(e core.Entity) {
	cs.Transform.Remove(e)
	cs.GravityWell.Remove(e)
	cs.WarpState.Remove(e)
	cs.InterpTarget.Remove(e)
	cs.Heading.Remove(e)
	cs.Organism.Remove(e)
}

func (cs *ComponentStore) clear() {
	cs.Transform.Clear()
	cs.GravityWell.Clear()
	cs.WarpState.Clear()
	cs.InterpTarget.Clear()
	cs.Heading.Clear()
	cs.Organism.Clear()
}
