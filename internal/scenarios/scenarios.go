// Package scenarios holds the static educational scenarios whose agents act
// as survey respondents.
package scenarios

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtin embed.FS

// ErrUnknownScenario is returned by Catalog.Get for unregistered names
var ErrUnknownScenario = errors.New("unknown scenario")

// Agent is one simulated participant. Only a responder reads these fields.
type Agent struct {
	Name              string   `yaml:"name" json:"name"`
	Role              string   `yaml:"role" json:"role"`
	Goal              string   `yaml:"goal" json:"goal"`
	Traits            []string `yaml:"traits" json:"traits"`
	FormativeMemories []string `yaml:"formative_memories" json:"formative_memories"`
}

type Scenario struct {
	Name        string   `yaml:"name" json:"name"`
	Title       string   `yaml:"title" json:"title"`
	Setting     string   `yaml:"setting" json:"setting"`
	Premise     string   `yaml:"premise" json:"premise"`
	Instruments []string `yaml:"instruments" json:"instruments"`
	Agents      []Agent  `yaml:"agents" json:"agents"`
}

// Roster lists the scenario's agent names in declaration order
func (s Scenario) Roster() []string {
	names := make([]string, len(s.Agents))
	for i, a := range s.Agents {
		names[i] = a.Name
	}
	return names
}

// Agent looks up an agent by name
func (s Scenario) Agent(name string) (Agent, bool) {
	for _, a := range s.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return Agent{}, false
}

// Parse decodes a single scenario document
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("failed to unmarshal scenario YAML: %w", err)
	}
	if s.Name == "" {
		return Scenario{}, errors.New("scenario name is required")
	}
	if len(s.Agents) == 0 {
		return Scenario{}, fmt.Errorf("scenario %s declares no agents", s.Name)
	}
	seen := make(map[string]struct{}, len(s.Agents))
	for _, a := range s.Agents {
		if a.Name == "" {
			return Scenario{}, fmt.Errorf("scenario %s has an unnamed agent", s.Name)
		}
		if _, dup := seen[a.Name]; dup {
			return Scenario{}, fmt.Errorf("scenario %s declares agent %s twice", s.Name, a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return s, nil
}

// Catalog is a read-only set of scenarios keyed by name
type Catalog struct {
	scenarios map[string]Scenario
}

// Load reads every *.yaml file at the root of fsys
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	c := &Catalog{scenarios: make(map[string]Scenario, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		key := strings.ToLower(s.Name)
		if _, dup := c.scenarios[key]; dup {
			return nil, fmt.Errorf("scenario %s is defined twice", s.Name)
		}
		c.scenarios[key] = s
	}
	return c, nil
}

// Builtin returns the scenarios compiled into the binary
func Builtin() (*Catalog, error) {
	return Load(builtin, "data")
}

func (c *Catalog) Get(name string) (Scenario, error) {
	s, ok := c.scenarios[strings.ToLower(name)]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	return s, nil
}

// List returns the scenarios sorted by name
func (c *Catalog) List() []Scenario {
	names := c.Names()
	out := make([]Scenario, len(names))
	for i, name := range names {
		out[i] = c.scenarios[name]
	}
	return out
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.scenarios))
	for name := range c.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
