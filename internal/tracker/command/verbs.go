package command

import "strings"

// Verb is a canonical command name.
type Verb string

const (
	VerbAddEntity    Verb = "add_entity"
	VerbRemoveEntity Verb = "remove_entity"
	VerbAddEffect    Verb = "add_effect"
	VerbRemoveEffect Verb = "remove_effect"
	VerbDamage       Verb = "damage"
	VerbHeal         Verb = "heal"
	VerbClear        Verb = "clear"
	VerbSave         Verb = "save"
	VerbLoad         Verb = "load"
	VerbHelp         Verb = "help"
)

type verbDef struct {
	verb    Verb
	usage   string
	minArgs int
}

// verbTable is ordered as help lists it.
var verbTable = []verbDef{
	{VerbAddEntity, "add_entity <name> [team]", 1},
	{VerbRemoveEntity, "remove_entity <name>", 1},
	{VerbAddEffect, "add_effect <effect> <length|-> <unit|-> <name>...", 4},
	{VerbRemoveEffect, "remove_effect <effect> <name>...", 2},
	{VerbDamage, "damage <amount> <name>...", 2},
	{VerbHeal, "heal <amount> <name>...", 2},
	{VerbClear, "clear", 0},
	{VerbSave, "save <team|all> <filename>", 2},
	{VerbLoad, "load <filename>", 1},
	{VerbHelp, "help [command]", 0},
}

var abbreviations = map[string]Verb{
	"as": VerbAddEffect,
	"rs": VerbRemoveEffect,
	"ae": VerbAddEntity,
	"re": VerbRemoveEntity,
	"d":  VerbDamage,
	"h":  VerbHeal,
}

// Resolve maps a token or its abbreviation to a known verb.
func Resolve(token string) (Verb, bool) {
	key := strings.ToLower(token)
	if verb, ok := abbreviations[key]; ok {
		return verb, true
	}
	if _, ok := lookup(Verb(key)); ok {
		return Verb(key), true
	}
	return "", false
}

// Verbs lists every canonical verb in help order.
func Verbs() []Verb {
	out := make([]Verb, len(verbTable))
	for i, def := range verbTable {
		out[i] = def.verb
	}
	return out
}

// Usage returns the usage line for verb.
func Usage(verb Verb) string {
	def, ok := lookup(verb)
	if !ok {
		return ""
	}
	return def.usage
}

func lookup(verb Verb) (verbDef, bool) {
	for _, def := range verbTable {
		if def.verb == verb {
			return def, true
		}
	}
	return verbDef{}, false
}
