package anim

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a YAML-declared set of Complex sub-effects.
type Preset struct {
	Name    string               `yaml:"name"`
	Effects map[string]SubEffect `yaml:"effects"`
}

// ReadPreset reads a complex-effect preset from a YAML file.
func ReadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, err
	}

	return &preset, nil
}

// WritePreset writes a preset to a YAML file.
func WritePreset(preset *Preset, path string) error {
	data, err := yaml.Marshal(preset)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
