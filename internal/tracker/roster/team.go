package roster

import "strings"

// Team is the affiliation used to group entities for display.
type Team int

const (
	TeamUnknown Team = iota
	TeamParty
	TeamAllies
	TeamNeutral
	TeamEnemy
)

// teamRank fixes display order. Neutral deliberately sorts after Enemy.
var teamRank = map[Team]int{
	TeamParty:   0,
	TeamAllies:  1,
	TeamEnemy:   2,
	TeamNeutral: 3,
	TeamUnknown: 4,
}

// Teams lists every team in display order.
func Teams() []Team {
	return []Team{TeamParty, TeamAllies, TeamEnemy, TeamNeutral, TeamUnknown}
}

// ParseTeam maps a short code or word to a Team. Unrecognized input is
// TeamUnknown, never an error.
func ParseTeam(s string) Team {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "party":
		return TeamParty
	case "a", "ally", "allies":
		return TeamAllies
	case "n", "neutral":
		return TeamNeutral
	case "e", "enemy":
		return TeamEnemy
	default:
		return TeamUnknown
	}
}

// Rank returns the display position of the team; lower sorts first.
func (t Team) Rank() int {
	if rank, ok := teamRank[t]; ok {
		return rank
	}
	return teamRank[TeamUnknown]
}

// String returns the group header used when rendering.
func (t Team) String() string {
	switch t {
	case TeamParty:
		return "Party"
	case TeamAllies:
		return "Allies"
	case TeamNeutral:
		return "Neutral"
	case TeamEnemy:
		return "Enemy"
	default:
		return "Unknown Team"
	}
}

// Code returns the lowercase form stored in save files. ParseTeam(t.Code())
// always returns t.
func (t Team) Code() string {
	switch t {
	case TeamParty:
		return "party"
	case TeamAllies:
		return "allies"
	case TeamNeutral:
		return "neutral"
	case TeamEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
