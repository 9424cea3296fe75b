// Package roster holds the encounter roster: entities, their teams, damage
// and status effects. It has no knowledge of the command language.
package roster

import (
	apperrors "github.com/louisbranch/status-tracker/internal/platform/errors"
)

// Roster is an insertion-ordered set of entities. It is not safe for
// concurrent use; the session owning it runs one command at a time.
type Roster struct {
	entities []Entity
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{}
}

// Len returns the number of entities.
func (r *Roster) Len() int {
	return len(r.entities)
}

// AddEntity appends a new entity. Names are unique case-insensitively.
func (r *Roster) AddEntity(name string, team Team) error {
	key := foldName(name)
	for _, entity := range r.entities {
		if foldName(entity.Name) == key {
			return apperrors.WithMetadata(apperrors.CodeDuplicateEntity, "entity already exists", map[string]string{
				"Name": entity.Name,
			})
		}
	}
	r.entities = append(r.entities, NewEntity(name, team))
	return nil
}

// Append adds entities without checking names. Used for bulk import.
func (r *Roster) Append(entities ...Entity) {
	for _, entity := range entities {
		r.entities = append(r.entities, entity.clone())
	}
}

// RemoveEntity removes every entity with a matching name and reports how
// many were removed. No match is not an error.
func (r *Roster) RemoveEntity(name string) int {
	key := foldName(name)
	kept := r.entities[:0]
	removed := 0
	for _, entity := range r.entities {
		if foldName(entity.Name) == key {
			removed++
			continue
		}
		kept = append(kept, entity)
	}
	clear(r.entities[len(kept):])
	r.entities = kept
	return removed
}

// Damage adds amount to every named entity and reports how many changed.
func (r *Roster) Damage(amount uint16, names []string) int {
	return r.each(names, func(e *Entity) { e.AddDamage(amount) })
}

// Heal subtracts amount from every named entity, clamping at zero.
func (r *Roster) Heal(amount uint16, names []string) int {
	return r.each(names, func(e *Entity) { e.Heal(amount) })
}

// AddEffect appends effect to every named entity.
func (r *Roster) AddEffect(effect StatusEffect, names []string) int {
	return r.each(names, func(e *Entity) {
		e.StatusEffects = append(e.StatusEffects, effect)
	})
}

// RemoveEffect drops every effect called effectName from the named
// entities and reports how many effects were removed in total.
func (r *Roster) RemoveEffect(effectName string, names []string) int {
	removed := 0
	r.each(names, func(e *Entity) { removed += e.RemoveEffects(effectName) })
	return removed
}

// Clear empties the roster.
func (r *Roster) Clear() {
	r.entities = nil
}

// Entity returns a copy of the first entity with a matching name.
func (r *Roster) Entity(name string) (Entity, error) {
	key := foldName(name)
	for _, entity := range r.entities {
		if foldName(entity.Name) == key {
			return entity.clone(), nil
		}
	}
	return Entity{}, apperrors.WithMetadata(apperrors.CodeEntityNotFound, "entity not found", map[string]string{
		"Name": name,
	})
}

// Entities returns a copy of the roster in insertion order.
func (r *Roster) Entities() []Entity {
	out := make([]Entity, len(r.entities))
	for i, entity := range r.entities {
		out[i] = entity.clone()
	}
	return out
}

// MatchableNames returns the current entity names for completion.
func (r *Roster) MatchableNames() []string {
	names := make([]string, len(r.entities))
	for i, entity := range r.entities {
		names[i] = entity.Name
	}
	return names
}

// each applies fn to every entity whose name is in names.
func (r *Roster) each(names []string, fn func(*Entity)) int {
	targets := make(map[string]struct{}, len(names))
	for _, name := range names {
		targets[foldName(name)] = struct{}{}
	}
	changed := 0
	for i := range r.entities {
		if _, ok := targets[foldName(r.entities[i].Name)]; !ok {
			continue
		}
		fn(&r.entities[i])
		changed++
	}
	return changed
}
