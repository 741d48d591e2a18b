package mystery

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/random"
)

const (
	// MinEntities is the fewest suspects or weapons a solvable game can have.
	MinEntities = 3

	// redHerringCeiling and redHerringScale shape the decoy quota: fewer entities
	// in play means more extra decoys.
	redHerringCeiling = 20
	redHerringScale   = 0.5
)

var (
	// ErrInvalidPool is returned when a pool cannot support a game.
	ErrInvalidPool = errors.New("invalid entity pool")
	// ErrNoLocations is returned when there is nowhere to place the crime.
	ErrNoLocations = errors.New("cannot place a mystery without locations")
)

// Pool is the universe of people and objects a mystery can draw from.
type Pool struct {
	People  []string `yaml:"people" json:"people"`
	Objects []string `yaml:"objects" json:"objects"`
}

// Validate checks the pool is large enough and that people and objects are
// distinct names.
func (p Pool) Validate() error {
	if len(p.People) < MinEntities {
		return fmt.Errorf("%w: need at least %d people, have %d", ErrInvalidPool, MinEntities, len(p.People))
	}
	if len(p.Objects) < MinEntities {
		return fmt.Errorf("%w: need at least %d objects, have %d", ErrInvalidPool, MinEntities, len(p.Objects))
	}

	seen := make(map[string]string, len(p.People)+len(p.Objects))
	check := func(kind string, names []string) error {
		for _, name := range names {
			if name == "" {
				return fmt.Errorf("%w: empty %s name", ErrInvalidPool, kind)
			}
			if prev, ok := seen[name]; ok {
				return fmt.Errorf("%w: %q listed as %s and %s", ErrInvalidPool, name, prev, kind)
			}
			seen[name] = kind
		}
		return nil
	}
	if err := check("person", p.People); err != nil {
		return err
	}
	return check("object", p.Objects)
}

// Answer is the solution of a mystery.
type Answer struct {
	Suspect  string
	Weapon   string
	Location location.Path
}

// Mystery is the outcome of selection: the entities in play, the answer, and how
// many extra decoys of each kind to scatter.
type Mystery struct {
	Suspects []string
	Weapons  []string
	Answer   Answer

	ExtraPeople  int
	ExtraObjects int
}

// IsSuspect reports whether name is one of the suspects in play.
func (m *Mystery) IsSuspect(name string) bool {
	return slices.Contains(m.Suspects, name)
}

// IsWeapon reports whether name is one of the weapons in play.
func (m *Mystery) IsWeapon(name string) bool {
	return slices.Contains(m.Weapons, name)
}

// Clamp forces n into [MinEntities, poolSize]. Out-of-range requests are not an error.
func Clamp(n, poolSize int) int {
	return max(MinEntities, min(n, poolSize))
}

// RedHerringQuota is the number of extra decoys of one kind. freeLocations is
// the number of locations that are not the murder location; leftInPlay is the
// number of selected entities that are not the answer.
func RedHerringQuota(freeLocations, leftInPlay, selected int) int {
	scaled := int(math.Round(float64(redHerringCeiling-selected) * redHerringScale))
	return max(0, min(freeLocations-leftInPlay, scaled))
}

// Select picks suspects, weapons and the answer. Counts are clamped to the pool.
// Random draws happen in a fixed order: suspects, weapons, guilty suspect,
// weapon, location.
func Select(src random.Source, pool Pool, locations []location.Path, numSuspects, numWeapons int) (*Mystery, error) {
	if err := pool.Validate(); err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}

	numSuspects = Clamp(numSuspects, len(pool.People))
	numWeapons = Clamp(numWeapons, len(pool.Objects))

	m := &Mystery{
		Suspects: random.Sample(src, pool.People, numSuspects),
		Weapons:  random.Sample(src, pool.Objects, numWeapons),
	}
	m.Answer = Answer{
		Suspect:  random.Choice(src, m.Suspects),
		Weapon:   random.Choice(src, m.Weapons),
		Location: random.Choice(src, locations),
	}

	freeLocations := len(locations) - 1
	m.ExtraPeople = min(
		RedHerringQuota(freeLocations, numSuspects-1, numSuspects),
		len(pool.People)-numSuspects,
	)
	m.ExtraObjects = min(
		RedHerringQuota(freeLocations, numWeapons-1, numWeapons),
		len(pool.Objects)-numWeapons,
	)
	return m, nil
}

func without(items []string, exclude ...string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !slices.Contains(exclude, item) {
			out = append(out, item)
		}
	}
	return out
}
