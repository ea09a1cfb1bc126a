package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeysByName indexes tcell key names in lower case ("up", "enter", "f1")
var specialKeysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ApplyBindings returns a copy of base with the [keys] config table applied
// Each entry maps an action name to a key name; binding an action drops its
// default keys, and "none" as the key unbinds the action entirely
func ApplyBindings(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	kt := base.Clone()

	// Sorted for deterministic conflict resolution
	for _, actionName := range slices.Sorted(maps.Keys(bindings)) {
		keyName := bindings[actionName]

		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok || action == ActionNone {
			return nil, fmt.Errorf("keys: unknown action: %q", actionName)
		}

		kt.unbind(action)
		if strings.EqualFold(keyName, "none") {
			continue
		}

		if r, ok := resolveRune(keyName); ok {
			kt.Runes[unicode.ToLower(r)] = action
			continue
		}
		k, ok := specialKeysByName[strings.ToLower(keyName)]
		if !ok {
			return nil, fmt.Errorf("keys: action %q: unknown key name: %q", actionName, keyName)
		}
		kt.Keys[k] = action
	}

	return kt, nil
}

func (kt *KeyTable) unbind(action Action) {
	maps.DeleteFunc(kt.Runes, func(_ rune, a Action) bool { return a == action })
	maps.DeleteFunc(kt.Keys, func(_ tcell.Key, a Action) bool { return a == action })
}

// resolveRune converts a single character or alias to a rune
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}
