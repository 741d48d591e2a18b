package setting

import (
	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/mystery"
	"github.com/jwebster45206/mystery-engine/pkg/trail"
)

// n is shorthand for building the town literal.
func n(name string, children ...location.Node) location.Node {
	return location.Node{Name: name, Children: children}
}

var town = location.MustHierarchy(
	n("town hall",
		n("offices",
			n("records", n("archives")),
			n("meeting rooms", n("council chamber")),
		),
	),
	n("park",
		n("playground", n("sandbox")),
		n("pond", n("dock")),
		n("gazebo"),
	),
	n("shops",
		n("bakery", n("kitchen"), n("storage")),
		n("market", n("aisles"), n("stockroom")),
		n("cafe"),
	),
	n("houses",
		n("mansion",
			n("library", n("study")),
			n("garden", n("greenhouse")),
		),
		n("cottage", n("living room"), n("cellar")),
	),
	n("school",
		n("classrooms", n("science lab"), n("art room")),
		n("gymnasium"),
		n("cafeteria", n("kitchen")),
	),
)

var townPeople = []string{
	"The Librarian", "The Shopkeeper", "The Gardener", "The Teacher", "The Mayor", "The Chef",
	"The Postman", "The Baker", "The Police Officer", "The Doctor", "The Artist", "The Musician",
	"The Carpenter", "The Tailor", "The Banker", "The Journalist", "The Florist", "The Clockmaker",
	"The Blacksmith", "The Innkeeper",
}

var townObjects = []string{
	"Garden Shears", "Kitchen Knife", "Heavy Book", "Bronze Trophy", "Glass Bottle", "Letter Opener",
	"Walking Stick", "Brass Candlestick", "Old Key", "Fountain Pen", "Silver Watch", "Magnifying Glass",
	"Antique Compass", "Paint Brush", "Crystal Vase", "Iron Poker", "Leather Gloves", "Brass Bell",
	"Steel Ruler", "Wooden Box",
}

// Default is the small town every game uses unless a setting file is given.
func Default() *Setting {
	return &Setting{
		Name:      "town",
		Hierarchy: town,
		Pool: mystery.Pool{
			People:  append([]string(nil), townPeople...),
			Objects: append([]string(nil), townObjects...),
		},
		Templates: trail.DefaultTemplates(),
	}
}
