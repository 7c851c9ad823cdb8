// Package catalog defines the named skills, shadows, and loop phases the
// activity journal references by ID.
//
// The default catalog is embedded; a user-supplied YAML file can replace
// it. Either way the document is validated against an embedded CUE schema
// before use, so a typo'd intensity or a skill without a display name is
// caught at load time rather than surfacing as a broken narrative.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

//go:embed schema.cue
var schemaCUE string

// Skill is a named ritual action the user activates.
type Skill struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Effect string `yaml:"effect"`
}

// Shadow is a named maladaptive pattern, with its suggested antidote.
type Shadow struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Antidote string `yaml:"antidote"`
}

// Phase is one stage of the identity loop.
type Phase struct {
	Name  string `yaml:"name"`
	Short string `yaml:"short"`
}

// Catalog holds the display vocabulary for journal entries.
type Catalog struct {
	Skills  []Skill  `yaml:"skills"`
	Shadows []Shadow `yaml:"shadows"`
	Phases  []Phase  `yaml:"phases"`
}

// Default returns the embedded catalog. The embedded document is
// validated at startup like any other; a failure here is a packaging bug
// and panics.
func Default() *Catalog {
	cat, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog invalid: %v", err))
	}
	return cat
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a YAML catalog document and validates it against the CUE
// schema.
func Parse(data []byte) (*Catalog, error) {
	// Decode to a generic map first so the CUE unification sees exactly
	// what the file said, including unknown fields.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &cat, nil
}

// validate unifies the document with the #Catalog schema definition and
// requires the result to be concrete.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Catalog"))
	if !def.Exists() {
		return fmt.Errorf("schema missing #Catalog definition")
	}

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid catalog: %s", cueerrors.Details(err, nil))
	}
	return nil
}

// SkillName returns the display name for a skill ID, falling back to the
// raw ID for unknown skills.
func (c *Catalog) SkillName(id string) string {
	for _, s := range c.Skills {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}

// ShadowName returns the display name for a shadow ID, falling back to
// the raw ID for unknown shadows.
func (c *Catalog) ShadowName(id string) string {
	for _, s := range c.Shadows {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}

// ShadowAntidote returns the antidote text for a shadow ID, or "" when
// unknown.
func (c *Catalog) ShadowAntidote(id string) string {
	for _, s := range c.Shadows {
		if s.ID == id {
			return s.Antidote
		}
	}
	return ""
}
