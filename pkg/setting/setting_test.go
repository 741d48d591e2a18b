package setting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/trail"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, 36, s.Hierarchy.Len())
	assert.Len(t, s.Pool.People, 20)
	assert.Len(t, s.Pool.Objects, 20)
	assert.NoError(t, s.Pool.Validate())
	assert.NoError(t, s.Templates.Validate())

	first := s.Hierarchy.Paths()[:6]
	var got []string
	for _, p := range first {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{
		"town hall",
		"town hall/offices",
		"town hall/offices/records",
		"town hall/offices/records/archives",
		"town hall/offices/meeting rooms",
		"town hall/offices/meeting rooms/council chamber",
	}, got)

	assert.True(t, s.Hierarchy.Contains(location.ParsePath("school/cafeteria/kitchen")))
	assert.True(t, s.Hierarchy.Contains(location.ParsePath("shops/bakery/kitchen")))
}

func TestDefault_PoolIsACopy(t *testing.T) {
	a := Default()
	a.Pool.People[0] = "Somebody Else"
	assert.Equal(t, "The Librarian", Default().Pool.People[0])
}

const harbour = `
name: harbour
locations:
  docks:
    warehouse:
      loft: {}
    pier:
  lighthouse: {}
  tavern:
    cellar: {}
people: [Captain, Cook, Deckhand, Harbourmaster]
objects: [Anchor, Rope, Harpoon]
dialogue:
  reveal:
    - "The tide gives it away - this is the place."
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(harbour))
	require.NoError(t, err)

	assert.Equal(t, "harbour", s.Name)
	var got []string
	for _, p := range s.Hierarchy.Paths() {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{
		"docks",
		"docks/warehouse",
		"docks/warehouse/loft",
		"docks/pier",
		"lighthouse",
		"tavern",
		"tavern/cellar",
	}, got)

	assert.Equal(t, []string{"Captain", "Cook", "Deckhand", "Harbourmaster"}, s.Pool.People)
	assert.Equal(t, []string{"The tide gives it away - this is the place."}, s.Templates.Reveal)
	assert.Equal(t, trail.DefaultTemplates().Lateral, s.Templates.Lateral)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "locations: [unclosed"},
		{"no locations", "people: [A, B, C]\nobjects: [x, y, z]"},
		{"locations is a list", "locations: [a, b]\npeople: [A, B, C]\nobjects: [x, y, z]"},
		{"too few people", "locations: {a: {}}\npeople: [A, B]\nobjects: [x, y, z]"},
		{"shared name", "locations: {a: {}}\npeople: [A, B, Rope]\nobjects: [Rope, y, z]"},
		{"slash in location", "locations: {a/b: {}}\npeople: [A, B, C]\nobjects: [x, y, z]"},
		{"dot location", "locations: {\".\": {}, tavern: {}}\npeople: [A, B, C]\nobjects: [x, y, z]"},
		{"dot dot location", "locations: {docks: {\"..\": {}, pier: {}}, tavern: {}}\npeople: [A, B, C]\nobjects: [x, y, z]"},
		{"blank dialogue", "locations: {a: {}}\npeople: [A, B, C]\nobjects: [x, y, z]\ndialogue: {intro: ['  ']}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidSetting)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harbour.yaml")
	require.NoError(t, os.WriteFile(path, []byte(harbour), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, s.Hierarchy.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
