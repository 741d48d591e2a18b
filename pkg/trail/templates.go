package trail

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTemplates is returned when a template set is missing a category.
var ErrInvalidTemplates = errors.New("invalid dialogue templates")

// Placeholders substituted into dialogue lines.
const (
	PlaceholderPerson       = "{person}"
	PlaceholderLocation     = "{location}"
	PlaceholderNext         = "{next_location}"
	PlaceholderNextSpecific = "{next_location_specific}"
)

// Templates holds the interchangeable phrasings for each kind of clue. One line
// is picked uniformly per clue; the trail logic never looks at the wording.
type Templates struct {
	// Intro lines use {person} and {location}.
	Intro []string `yaml:"intro"`
	// Descend lines use {next_location}, the child to move into.
	Descend []string `yaml:"descend"`
	// Lateral lines use {next_location}, the sibling to move to.
	Lateral []string `yaml:"lateral"`
	// Upward lines use {next_location}, a top-level location.
	Upward []string `yaml:"upward"`
	// UpDown lines use {next_location} for the top-level branch and
	// {next_location_specific} for the target inside it.
	UpDown []string `yaml:"up_down"`
	// Reveal lines are used at the murder location and name no destination.
	Reveal []string `yaml:"reveal"`
}

// Validate checks that every category has at least one non-blank line.
func (t Templates) Validate() error {
	categories := []struct {
		name  string
		lines []string
	}{
		{"intro", t.Intro},
		{"descend", t.Descend},
		{"lateral", t.Lateral},
		{"upward", t.Upward},
		{"up_down", t.UpDown},
		{"reveal", t.Reveal},
	}
	for _, c := range categories {
		if len(c.lines) == 0 {
			return fmt.Errorf("%w: %s has no lines", ErrInvalidTemplates, c.name)
		}
		for i, line := range c.lines {
			if strings.TrimSpace(line) == "" {
				return fmt.Errorf("%w: %s line %d is blank", ErrInvalidTemplates, c.name, i+1)
			}
		}
	}
	return nil
}

// Merge returns t with every empty category filled from fallback.
func (t Templates) Merge(fallback Templates) Templates {
	pick := func(a, b []string) []string {
		if len(a) > 0 {
			return a
		}
		return b
	}
	return Templates{
		Intro:   pick(t.Intro, fallback.Intro),
		Descend: pick(t.Descend, fallback.Descend),
		Lateral: pick(t.Lateral, fallback.Lateral),
		Upward:  pick(t.Upward, fallback.Upward),
		UpDown:  pick(t.UpDown, fallback.UpDown),
		Reveal:  pick(t.Reveal, fallback.Reveal),
	}
}

// fill substitutes placeholder/value pairs into line.
func fill(line string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(line)
}

// DefaultTemplates is the English dialogue set.
func DefaultTemplates() Templates {
	return Templates{
		Intro: []string{
			"I overheard {person} mentioning something strange they noticed near the {location}.",
			"{person} came running to the police station, insisting they saw suspicious activity around the {location}.",
			"According to {person}, there were unusual sounds coming from the {location} last night.",
			"During the morning roll call, {person} reported odd footprints leading to the {location}.",
			"The night watchman spoke with {person}, who noticed an unfamiliar figure lurking near the {location}.",
			"{person} left an anonymous tip about unusual activity at the {location}.",
			"Earlier today, {person} reported seeing an unexpected light in the {location}.",
			"A note from {person} mentions witnessing something concerning near the {location}.",
			"While making their rounds, {person} noticed the {location} door was slightly ajar.",
			"Local residents say {person} was the last one to report activity near the {location}.",
		},
		Descend: []string{
			"You notice fresh footprints leading towards the {next_location}.",
			"A trail of scattered papers points deeper into the {next_location}.",
			"Through the window, you spot movement in the direction of the {next_location}.",
			"The floorboards creak, suggesting someone recently walked towards the {next_location}.",
			"A local resident mentions seeing a shadowy figure entering the {next_location}.",
			"You find a dropped keychain with a tag labeled '{next_location}'.",
			"The dust on the floor shows a clear path heading to the {next_location}.",
			"A security guard mentions hearing noises coming from the {next_location}.",
			"Recent scratches on the floor lead towards the {next_location}.",
			"A hastily written note mentions checking the {next_location} next.",
		},
		Lateral: []string{
			"You hear sound coming from the nearby {next_location}.",
			"A staff member mentions checking the {next_location}.",
			"Through the window, you can see the lights are on in the {next_location}.",
			"The janitor suggests taking a look in the {next_location}.",
			"Recent activity has been reported in the {next_location} area.",
			"You overhear someone mentioning suspicious noises from the {next_location}.",
			"You get the feeling you should check the {next_location}.",
			"Security cameras caught movement near the {next_location} entrance.",
			"A cleaning schedule shows the {next_location} was cleaned after this spot.",
			"Local gossip suggests something unusual in the {next_location}.",
		},
		Upward: []string{
			"Something tells me we should go back and check somewhere else in the {next_location}.",
			"A police report mentions returning to the {next_location} for another look.",
			"Your intuition suggests backtracking to the {next_location} and looking for something else.",
			"Maybe we should check back in the {next_location}.",
			"An old note suggests reconsidering the {next_location}.",
			"The evidence points back to the {next_location}.",
			"We should double-check something back in the {next_location}.",
			"New information suggests returning to the {next_location}.",
			"Perhaps we missed a detail in the {next_location}.",
			"The investigation leads back to the {next_location}.",
		},
		UpDown: []string{
			"Check the {next_location_specific} in the {next_location}.",
			"Go to the {next_location_specific} in the {next_location}.",
			"Go back and check the {next_location_specific} in the {next_location}.",
		},
		Reveal: []string{
			"The evidence is clear - this is where the crime took place! The room's undisturbed state tells the whole story.",
			"At last! This untouched crime scene reveals the truth. No one has been here since the incident.",
			"Your detective instincts were right - this empty room holds the answers. The pristine state of things confirms this is where it happened.",
			"The undisturbed dust patterns confirm it - you've found the crime scene! The emptiness of the room speaks volumes.",
			"Here it is - the untouched crime scene! The stillness of this room suggests no one has entered since the incident.",
			"You can feel it - this is where it happened. The undisturbed state of the room confirms your suspicions.",
			"The perfect preservation of this room tells you everything - this is definitely the crime scene!",
			"Your investigation has led you to the truth - this empty room is where it all happened!",
			"The pristine condition of this room confirms your theory - you've found the crime scene!",
			"Success! This untouched room is exactly what you've been looking for - the scene of the crime!",
		},
	}
}
