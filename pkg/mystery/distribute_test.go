package mystery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/random"
)

func generate(t *testing.T, seed uint64, locs []location.Path, suspects, weapons int) (*Mystery, Decoys, *Contents) {
	t.Helper()
	pool := testPool()
	src := random.New(seed)

	m, err := Select(src, pool, locs, suspects, weapons)
	require.NoError(t, err)
	decoys := DecoysFor(src, pool, m)
	return m, decoys, Distribute(src, locs, m, decoys)
}

func TestDecoysFor(t *testing.T) {
	m, decoys, _ := generate(t, 11, testLocations(36), 4, 5)

	assert.Len(t, decoys.People, 3+m.ExtraPeople)
	assert.Len(t, decoys.Objects, 4+m.ExtraObjects)
	assert.NotContains(t, decoys.People, m.Answer.Suspect)
	assert.NotContains(t, decoys.Objects, m.Answer.Weapon)

	for _, s := range m.Suspects {
		if s != m.Answer.Suspect {
			assert.Contains(t, decoys.People, s)
		}
	}

	extras := decoys.People[len(m.Suspects)-1:]
	for _, p := range extras {
		assert.False(t, m.IsSuspect(p), "extra %q should come from outside the suspects", p)
	}
	assert.Len(t, uniq(decoys.People), len(decoys.People))
	assert.Len(t, uniq(decoys.Objects), len(decoys.Objects))
}

func TestDistribute_EveryDecoyPlacedOnce(t *testing.T) {
	locs := testLocations(36)
	_, decoys, contents := generate(t, 5, locs, 3, 3)

	var people, objects []string
	for _, p := range contents.Paths() {
		room := contents.Room(p)
		people = append(people, room.People...)
		objects = append(objects, room.Objects...)
	}

	assert.ElementsMatch(t, decoys.People, people)
	assert.ElementsMatch(t, decoys.Objects, objects)
	assert.Equal(t, locs, contents.Paths())
}

func TestDistribute_MurderLocationNeverHasPeople(t *testing.T) {
	locs := testLocations(6)
	for seed := range uint64(300) {
		m, _, contents := generate(t, seed, locs, 3, 3)
		assert.Empty(t, contents.Room(m.Answer.Location).People, "seed %d", seed)
	}
}

// Objects are scattered over every location, murder location included, while
// people are kept out of it. The asymmetry is deliberate; this test proves it
// actually happens rather than merely being allowed.
func TestDistribute_MurderLocationCanHoldObjects(t *testing.T) {
	locs := testLocations(4)

	hits := 0
	for seed := range uint64(200) {
		m, _, contents := generate(t, seed, locs, 3, 3)
		if len(contents.Room(m.Answer.Location).Objects) > 0 {
			hits++
		}
	}
	assert.Positive(t, hits, "no seed placed an object in the murder location")
}

func TestDistribute_SameSeedSameRooms(t *testing.T) {
	locs := testLocations(36)
	_, _, a := generate(t, 99, locs, 5, 5)
	_, _, b := generate(t, 99, locs, 5, 5)

	for _, p := range locs {
		assert.Equal(t, a.Room(p), b.Room(p), p.String())
	}
}

func TestContents_RoomReturnsCopy(t *testing.T) {
	locs := testLocations(2)
	c := newContents(locs)
	c.rooms[locs[0].String()].People = []string{"The Mayor"}

	r := c.Room(locs[0])
	r.People[0] = "The Baker"

	assert.Equal(t, []string{"The Mayor"}, c.Room(locs[0]).People)
	assert.True(t, c.Room(location.NewPath("nowhere")).IsEmpty())
}

func TestRoom_Text(t *testing.T) {
	r := Room{People: []string{"The Mayor", "The Chef"}, Objects: []string{"Old Key"}}
	assert.Equal(t, "The Mayor\nThe Chef", r.PeopleText())
	assert.Equal(t, "Old Key", r.ObjectsText())
	assert.Equal(t, "", (&Room{}).PeopleText())
}

func uniq(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item] = struct{}{}
	}
	return out
}
