package mystery

import (
	"strings"

	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/random"
)

// Room is what a player finds in one location.
type Room struct {
	People  []string
	Objects []string
}

// IsEmpty reports whether nobody and nothing was placed in the room.
func (r Room) IsEmpty() bool {
	return len(r.People) == 0 && len(r.Objects) == 0
}

// PeopleText is the room's people, one per line.
func (r Room) PeopleText() string {
	return strings.Join(r.People, "\n")
}

// ObjectsText is the room's objects, one per line.
func (r Room) ObjectsText() string {
	return strings.Join(r.Objects, "\n")
}

// Contents maps every location to its room, keeping the hierarchy order.
type Contents struct {
	order []location.Path
	rooms map[string]*Room
}

func newContents(locations []location.Path) *Contents {
	c := &Contents{
		order: make([]location.Path, len(locations)),
		rooms: make(map[string]*Room, len(locations)),
	}
	copy(c.order, locations)
	for _, loc := range locations {
		c.rooms[loc.String()] = &Room{}
	}
	return c
}

// NewContents builds Contents for locations from prepared rooms. Locations
// without an entry in rooms are empty; rooms for unknown locations are ignored.
func NewContents(locations []location.Path, rooms map[string]Room) *Contents {
	c := newContents(locations)
	for key, r := range rooms {
		if room, ok := c.rooms[key]; ok {
			room.People = append(room.People, r.People...)
			room.Objects = append(room.Objects, r.Objects...)
		}
	}
	return c
}

// Paths returns every location in hierarchy order.
func (c *Contents) Paths() []location.Path {
	out := make([]location.Path, len(c.order))
	copy(out, c.order)
	return out
}

// Room returns the room at p. Unknown paths get an empty room.
func (c *Contents) Room(p location.Path) Room {
	r, ok := c.rooms[p.String()]
	if !ok {
		return Room{}
	}
	return Room{People: append([]string(nil), r.People...), Objects: append([]string(nil), r.Objects...)}
}

// Decoys are the entities scattered across the locations.
type Decoys struct {
	People  []string
	Objects []string
}

// DecoysFor builds the decoy lists: everything in play except the answer, plus
// the quota of extras drawn from the part of the pool that is not in play.
func DecoysFor(src random.Source, pool Pool, m *Mystery) Decoys {
	people := without(m.Suspects, m.Answer.Suspect)
	people = append(people, random.Sample(src, without(pool.People, m.Suspects...), m.ExtraPeople)...)

	objects := without(m.Weapons, m.Answer.Weapon)
	objects = append(objects, random.Sample(src, without(pool.Objects, m.Weapons...), m.ExtraObjects)...)

	return Decoys{People: people, Objects: objects}
}

// Distribute places decoys in random locations. People never go to the murder
// location so that it stays empty of witnesses. Objects may land anywhere,
// including the murder location.
func Distribute(src random.Source, locations []location.Path, m *Mystery, decoys Decoys) *Contents {
	contents := newContents(locations)

	personRooms := make([]location.Path, 0, len(locations))
	for _, loc := range locations {
		if !loc.Equal(m.Answer.Location) {
			personRooms = append(personRooms, loc)
		}
	}

	if len(personRooms) > 0 {
		for _, person := range decoys.People {
			room := contents.rooms[random.Choice(src, personRooms).String()]
			room.People = append(room.People, person)
		}
	}

	for _, object := range decoys.Objects {
		room := contents.rooms[random.Choice(src, locations).String()]
		room.Objects = append(room.Objects, object)
	}

	return contents
}
