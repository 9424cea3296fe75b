package roster

import (
	"cmp"
	"slices"
	"strings"
)

// Sorted returns the entities ordered by team rank. Entities on the same
// team keep their insertion order.
func (r *Roster) Sorted() []Entity {
	sorted := r.Entities()
	slices.SortStableFunc(sorted, func(a, b Entity) int {
		return cmp.Compare(a.Team.Rank(), b.Team.Rank())
	})
	return sorted
}

// Render returns the roster summary: one header per team in rank order,
// followed by one line per entity, with a blank line between groups.
func (r *Roster) Render() string {
	var b strings.Builder
	first := true
	var last Team
	for _, entity := range r.Sorted() {
		if first || entity.Team != last {
			if !first {
				b.WriteString("\n")
			}
			b.WriteString(entity.Team.String())
			b.WriteString("\n")
			first = false
			last = entity.Team
		}
		b.WriteString(entity.Line())
		b.WriteString("\n")
	}
	return b.String()
}
