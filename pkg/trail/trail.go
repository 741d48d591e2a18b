package trail

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/mystery"
	"github.com/jwebster45206/mystery-engine/pkg/random"
	"github.com/jwebster45206/mystery-engine/pkg/textfmt"
)

// Clue is the text left at one location of the trail.
type Clue struct {
	Location location.Path
	// Move is how the player gets from this location to the next one.
	// It is meaningless for the final reveal.
	Move location.Relationship
	// Reveal marks the conclusion at the murder location.
	Reveal bool
	Text   string
}

// Trail is the ordered route through the evidence, ending at the murder location.
type Trail struct {
	// Sequence holds the important locations in ascending path order followed
	// by the murder location.
	Sequence []location.Path
	// Intro is the root-level report. It is empty when no location holds
	// evidence, in which case only the reveal is produced.
	Intro string
	// Clues has one entry per Sequence element, in the same order.
	Clues []Clue
}

// ClueAt returns the clue text for p, if the trail leaves one there.
func (t *Trail) ClueAt(p location.Path) (string, bool) {
	for _, c := range t.Clues {
		if c.Location.Equal(p) {
			return c.Text, true
		}
	}
	return "", false
}

// Builder lays the breadcrumb trail for a distributed mystery.
type Builder struct {
	src       random.Source
	templates Templates
	width     int
}

// NewBuilder returns a Builder drawing from src. Templates must be valid.
func NewBuilder(src random.Source, templates Templates) (*Builder, error) {
	if err := templates.Validate(); err != nil {
		return nil, err
	}
	return &Builder{src: src, templates: templates, width: textfmt.Width}, nil
}

// ImportantLocations lists, in ascending path order, the locations holding at
// least one suspect or weapon in play. The murder location is left out because
// the trail always ends there.
func ImportantLocations(m *mystery.Mystery, contents *mystery.Contents) []location.Path {
	var important []location.Path
	for _, p := range contents.Paths() {
		if p.Equal(m.Answer.Location) {
			continue
		}
		room := contents.Room(p)
		if slices.ContainsFunc(room.People, m.IsSuspect) || slices.ContainsFunc(room.Objects, m.IsWeapon) {
			important = append(important, p)
		}
	}
	slices.SortFunc(important, func(a, b location.Path) int {
		return strings.Compare(a.String(), b.String())
	})
	return important
}

// Build computes the trail. people is the full pool of people; the intro's
// witness is drawn from those who are not suspects. Random draws happen in a
// fixed order: reveal line, witness, intro line, then one line per hop.
func (b *Builder) Build(people []string, m *mystery.Mystery, contents *mystery.Contents) *Trail {
	important := ImportantLocations(m, contents)
	sequence := append(slices.Clone(important), m.Answer.Location)

	reveal := b.revealClue(m.Answer.Location)

	t := &Trail{Sequence: sequence}
	if len(important) == 0 {
		t.Clues = []Clue{reveal}
		return t
	}

	t.Intro = b.intro(people, m, important[0])

	for i := 0; i < len(sequence)-1; i++ {
		t.Clues = append(t.Clues, b.hop(sequence[i], sequence[i+1]))
	}
	t.Clues = append(t.Clues, reveal)
	return t
}

func (b *Builder) intro(people []string, m *mystery.Mystery, first location.Path) string {
	witnesses := slices.DeleteFunc(slices.Clone(people), m.IsSuspect)
	if len(witnesses) == 0 {
		witnesses = people
	}
	witness := random.Choice(b.src, witnesses)
	line := fill(random.Choice(b.src, b.templates.Intro),
		PlaceholderPerson, witness,
		PlaceholderLocation, first.First(),
	)

	return b.render(`Detective's Initial Report:

%s

This seems like a good place to start our investigation. Remember to:
- Use 'cd' to move between locations
- Use 'ls' to list the contents of each location
- Use 'cat' to read any text files you find
`, line)
}

func (b *Builder) hop(current, next location.Path) Clue {
	move := location.Classify(current, next)
	clue := Clue{Location: current, Move: move}

	switch move {
	case location.Descendant:
		child, _ := location.NextStep(current, next)
		line := fill(random.Choice(b.src, b.templates.Descend), PlaceholderNext, child)
		clue.Text = b.render(`Investigation Update:

%s

Remember: Use this command to follow the lead:
    cd "%s"
`, line, child)

	case location.Lateral:
		sibling := next.Last()
		line := fill(random.Choice(b.src, b.templates.Lateral), PlaceholderNext, sibling)
		clue.Text = b.render(`Investigation Update:

%s

Hint: To reach this location, you'll need to move back up one level and into the next location:
    cd "../%s"
`, line, sibling)

	default:
		var line string
		if move == location.UpToTopLevel {
			line = fill(random.Choice(b.src, b.templates.Upward), PlaceholderNext, next.First())
		} else {
			line = fill(random.Choice(b.src, b.templates.UpDown),
				PlaceholderNext, next.First(),
				PlaceholderNextSpecific, next.Last(),
			)
		}
		clue.Text = b.render(`New Clue:

%s

Hint: You'll need to go back several directories to reach this location.
Remember that you can use multiple '../' to go up multiple levels:
- 'cd ..'    goes up one level
- 'cd ../..' goes up two levels
- and so on...
`, line)
	}
	return clue
}

func (b *Builder) revealClue(murder location.Path) Clue {
	line := random.Choice(b.src, b.templates.Reveal)
	return Clue{
		Location: murder,
		Reveal:   true,
		Text: b.render(`Investigation Conclusion:

%s

Your careful detective work has paid off. The empty state of this room matches witness accounts - no one was around when the crime occurred. This must be where the murderer carried out their plan!

Make sure to document this discovery in your notebook.md file along with your other findings about the weapon and suspect.
`, line),
	}
}

func (b *Builder) render(format string, args ...any) string {
	return textfmt.Wrap(fmt.Sprintf(format, args...), b.width)
}
