package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Skills, 5)
	assert.Len(t, cat.Shadows, 4)
	assert.Len(t, cat.Phases, 8)

	assert.Equal(t, "Walling", cat.SkillName("walling"))
	assert.Equal(t, "Over-Control", cat.ShadowName("over_control"))
	assert.Equal(t, "Walling - Name what is NOT yours and put it down", cat.ShadowAntidote("false_responsibility"))
}

func TestLookupFallbacks(t *testing.T) {
	cat := Default()

	assert.Equal(t, "breathing", cat.SkillName("breathing"), "unknown skill falls back to the raw ID")
	assert.Equal(t, "doom_scroll", cat.ShadowName("doom_scroll"))
	assert.Equal(t, "", cat.ShadowAntidote("doom_scroll"))
}

func TestParse_Valid(t *testing.T) {
	cat, err := Parse([]byte(`
skills:
  - id: walling
    name: Walling
    effect: Declare boundary.
shadows:
  - id: over_control
    name: Over-Control
    antidote: Release.
phases:
  - name: Intake
    short: Learning.
`))
	require.NoError(t, err)
	assert.Equal(t, "Walling", cat.SkillName("walling"))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "skill id with uppercase",
			doc: `
skills:
  - id: Walling
    name: Walling
    effect: Declare boundary.
shadows:
  - id: over_control
    name: Over-Control
    antidote: Release.
phases:
  - name: Intake
    short: Learning.
`,
		},
		{
			name: "shadow missing antidote",
			doc: `
skills:
  - id: walling
    name: Walling
    effect: Declare boundary.
shadows:
  - id: over_control
    name: Over-Control
phases:
  - name: Intake
    short: Learning.
`,
		},
		{
			name: "empty skills list",
			doc: `
skills: []
shadows:
  - id: over_control
    name: Over-Control
    antidote: Release.
phases:
  - name: Intake
    short: Learning.
`,
		},
		{
			name: "empty name",
			doc: `
skills:
  - id: walling
    name: ""
    effect: Declare boundary.
shadows:
  - id: over_control
    name: Over-Control
    antidote: Release.
phases:
  - name: Intake
    short: Learning.
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
skills:
  - id: walling
    name: Walling
    effect: Declare boundary.
shadows:
  - id: over_control
    name: Over-Control
    antidote: Release.
phases:
  - name: Intake
    short: Learning.
`), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Over-Control", cat.ShadowName("over_control"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
