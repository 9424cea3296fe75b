package roster

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Entity is a tracked combat participant.
type Entity struct {
	Name          string
	DamageTaken   uint16
	Team          Team
	StatusEffects []StatusEffect
}

// NewEntity returns an undamaged entity with no effects.
func NewEntity(name string, team Team) Entity {
	return Entity{Name: name, Team: team}
}

// AddDamage increases damage taken, saturating at the uint16 maximum.
func (e *Entity) AddDamage(amount uint16) {
	if uint32(e.DamageTaken)+uint32(amount) > math.MaxUint16 {
		e.DamageTaken = math.MaxUint16
		return
	}
	e.DamageTaken += amount
}

// Heal reduces damage taken, never below zero.
func (e *Entity) Heal(amount uint16) {
	if amount >= e.DamageTaken {
		e.DamageTaken = 0
		return
	}
	e.DamageTaken -= amount
}

// RemoveEffects drops every effect whose name matches and reports how many
// were removed.
func (e *Entity) RemoveEffects(name string) int {
	key := foldName(name)
	kept := e.StatusEffects[:0]
	removed := 0
	for _, effect := range e.StatusEffects {
		if foldName(effect.Name) == key {
			removed++
			continue
		}
		kept = append(kept, effect)
	}
	e.StatusEffects = kept
	return removed
}

// Line renders the entity the way the roster summary shows it.
func (e Entity) Line() string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString(", Damage Taken: ")
	b.WriteString(strconv.FormatUint(uint64(e.DamageTaken), 10))
	if len(e.StatusEffects) > 0 {
		b.WriteString(", Status Effects: ")
		for i, effect := range e.StatusEffects {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(effect.String())
		}
	}
	return b.String()
}

func (e Entity) clone() Entity {
	out := e
	if e.StatusEffects != nil {
		out.StatusEffects = append([]StatusEffect(nil), e.StatusEffects...)
	}
	return out
}

// foldName returns the case-insensitive identity of a name.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// SameName reports whether two entity names refer to the same entity.
func SameName(a, b string) bool {
	return foldName(a) == foldName(b)
}
