package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"sci-simulator/domain"
)

// ReferenceScenario is always available, even without a scenarios file.
const ReferenceScenario = "reference"

// Scenario is a named set of inputs offered to the front-end as a preset.
type Scenario struct {
	Name        string               `json:"name" yaml:"name"`
	Description string               `json:"description,omitempty" yaml:"description"`
	Inputs      domain.ProjectInputs `json:"inputs" yaml:"inputs"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenarios is a read-only catalog of presets.
type Scenarios struct {
	byName map[string]Scenario
}

// LoadScenarios reads presets from a YAML file. An empty path yields only the
// reference scenario. A file entry named "reference" replaces the built-in one.
func LoadScenarios(path string) (*Scenarios, error) {
	catalog := &Scenarios{byName: map[string]Scenario{
		ReferenceScenario: {
			Name:        ReferenceScenario,
			Description: "Immeuble de 640 000 € financé sur 25 ans, TMI 30 %",
			Inputs:      domain.ReferenceInputs(),
		},
	}}
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios file: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios file: %w", err)
	}

	for _, s := range file.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario without a name in %s", path)
		}
		catalog.byName[s.Name] = s
	}
	return catalog, nil
}

// List returns the scenarios sorted by name.
func (c *Scenarios) List() []Scenario {
	out := make([]Scenario, 0, len(c.byName))
	for _, s := range c.byName {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func (c *Scenarios) Get(name string) (Scenario, bool) {
	s, ok := c.byName[name]
	return s, ok
}
