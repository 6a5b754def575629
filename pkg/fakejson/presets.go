package fakejson

import (
	"fmt"
	"slices"
)

// Settings is a complete generation recipe.
type Settings struct {
	Shape  Shape
	Policy Policy
}

// DefaultPreset is used when nothing else is requested.
const DefaultPreset = "small"

// Presets maps preset names to factories. "small" duplicates a single record,
// "large" builds every record independently.
var Presets = map[string]func() Settings{
	"small": func() Settings {
		return Settings{Shape: Shape{Elements: 100, Fields: 100, ArrayLen: 100}, Policy: PolicyShared}
	},
	"large": func() Settings {
		return Settings{Shape: Shape{Elements: 1000, Fields: 1000, ArrayLen: 1000}, Policy: PolicyFresh}
	},
}

// Preset returns the settings registered under name.
func Preset(name string) (Settings, error) {
	factory, exists := Presets[name]
	if !exists {
		return Settings{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return factory(), nil
}

// ListPresets returns all preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
