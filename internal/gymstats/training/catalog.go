package training

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/2beens/fitforge/internal/gymstats/muscles"

	"gopkg.in/yaml.v3"
)

// Catalog resolves exercise definitions by id or name.
type Catalog interface {
	Lookup(idOrName string) (ExerciseDefinition, bool)
}

var _ Catalog = (*StaticCatalog)(nil)

// StaticCatalog is a read-only snapshot of exercise definitions.
type StaticCatalog struct {
	byID   map[string]ExerciseDefinition
	byName map[string]string
	ids    []string
}

func NewStaticCatalog(definitions []ExerciseDefinition) *StaticCatalog {
	c := &StaticCatalog{
		byID:   make(map[string]ExerciseDefinition, len(definitions)),
		byName: make(map[string]string, len(definitions)),
		ids:    make([]string, 0, len(definitions)),
	}
	for _, def := range definitions {
		if def.ID == "" {
			continue
		}
		if _, exists := c.byID[def.ID]; !exists {
			c.ids = append(c.ids, def.ID)
		}
		c.byID[def.ID] = def
		if def.Name != "" {
			c.byName[nameKey(def.Name)] = def.ID
		}
	}
	sort.Strings(c.ids)
	return c
}

func nameKey(name string) string {
	return muscles.Key(name)
}

// Lookup matches the id first and falls back to a case-insensitive name match,
// where underscores and spaces are equivalent.
func (c *StaticCatalog) Lookup(idOrName string) (ExerciseDefinition, bool) {
	if c == nil {
		return ExerciseDefinition{}, false
	}
	if def, ok := c.byID[idOrName]; ok {
		return def, true
	}
	if id, ok := c.byName[nameKey(idOrName)]; ok {
		return c.byID[id], true
	}
	return ExerciseDefinition{}, false
}

func (c *StaticCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Definitions returns all definitions ordered by id.
func (c *StaticCatalog) Definitions() []ExerciseDefinition {
	if c == nil {
		return nil
	}
	defs := make([]ExerciseDefinition, 0, len(c.ids))
	for _, id := range c.ids {
		defs = append(defs, c.byID[id])
	}
	return defs
}

type catalogFile struct {
	Exercises []catalogFileEntry `yaml:"exercises"`
}

type catalogFileEntry struct {
	ExerciseDefinition `yaml:",inline"`
	// MusclesUsed is the compact form, e.g. "Pectoralis_Major:_85%,_Triceps_Brachii:_25%"
	MusclesUsed string `yaml:"muscles_used"`
}

// LoadCatalogYAML reads exercise definitions from a YAML seed file.
// Entries without an id are skipped; engagement values are clamped to [0, 100].
func LoadCatalogYAML(r io.Reader) ([]ExerciseDefinition, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}

	defs := make([]ExerciseDefinition, 0, len(file.Exercises))
	for _, entry := range file.Exercises {
		def := entry.ExerciseDefinition
		def.ID = strings.TrimSpace(def.ID)
		if def.ID == "" {
			continue
		}
		engagement := make(map[string]float64, len(def.MuscleEngagement))
		for muscle, pct := range muscles.ParseEngagement(entry.MusclesUsed) {
			engagement[muscle] = pct
		}
		for muscle, pct := range def.MuscleEngagement {
			if clamped, ok := muscles.ClampEngagement(pct); ok {
				engagement[muscle] = clamped
			}
		}
		def.MuscleEngagement = engagement
		defs = append(defs, def)
	}

	return defs, nil
}
