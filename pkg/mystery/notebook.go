package mystery

import (
	"fmt"
	"strings"
)

// Notebook renders the detective's checklist of every suspect and weapon in play.
func (m *Mystery) Notebook() string {
	var b strings.Builder

	b.WriteString("# Detective's Notebook\n\n")
	b.WriteString("## Suspects\n")
	for _, s := range m.Suspects {
		fmt.Fprintf(&b, "- [ ] %s\n", s)
	}
	b.WriteString("\n## Weapons\n")
	for _, w := range m.Weapons {
		fmt.Fprintf(&b, "- [ ] %s\n", w)
	}
	b.WriteString("\n## Notes\n")
	b.WriteString("*Use this space to record your findings and deductions...*\n\n")
	b.WriteString("Location of the crime is still unknown - the room must have been empty when it happened...\n")

	return b.String()
}
