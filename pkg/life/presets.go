package life

import (
	"sort"
	"strings"
)

var presets = map[string]string{
	"life":             "B3/S23",
	"seeds":            "B2/S",
	"lifewithoutdeath": "B3/S012345678",
	"highlife":         "B36/S23",
	"daynight":         "B3678/S34678",
	"moon":             "B25678/S5678",
	"flock":            "B3/S12",
	"replicator":       "B1357/S1357",
}

// Presets returns the names of the built-in rules in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupRule resolves either a preset name (case-insensitive) or a B/S rule
// string.
func LookupRule(nameOrNotation string) (Rule, error) {
	if notation, ok := presets[strings.ToLower(strings.TrimSpace(nameOrNotation))]; ok {
		return ParseRule(notation)
	}
	return ParseRule(nameOrNotation)
}
