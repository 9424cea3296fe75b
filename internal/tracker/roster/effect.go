package roster

import (
	"strconv"
	"strings"
)

// DurationUnit labels an effect length. It is never counted down.
type DurationUnit int

const (
	UnitUnknown DurationUnit = iota
	UnitTurns
	UnitMinutes
	UnitHours
)

// ParseDurationUnit maps "turns"/"t", "minutes"/"m" and "hours"/"h" to a unit.
// Anything else is UnitUnknown.
func ParseDurationUnit(s string) DurationUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "turn", "turns":
		return UnitTurns
	case "m", "minute", "minutes":
		return UnitMinutes
	case "h", "hour", "hours":
		return UnitHours
	default:
		return UnitUnknown
	}
}

func (u DurationUnit) String() string {
	switch u {
	case UnitTurns:
		return "Turns"
	case UnitMinutes:
		return "Minutes"
	case UnitHours:
		return "Hours"
	default:
		return ""
	}
}

// Duration is a display-only effect length.
type Duration struct {
	Length uint16
	Unit   DurationUnit
}

func (d Duration) String() string {
	length := strconv.FormatUint(uint64(d.Length), 10)
	if d.Unit == UnitUnknown {
		return length
	}
	return length + " " + d.Unit.String()
}

// StatusEffect is a named condition on an entity. Names need not be unique.
type StatusEffect struct {
	Name     string
	Duration Duration
}

func (e StatusEffect) String() string {
	return e.Name + ", " + e.Duration.String()
}
