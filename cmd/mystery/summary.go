package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwebster45206/mystery-engine/internal/config"
	"github.com/jwebster45206/mystery-engine/pkg/game"
	"github.com/jwebster45206/mystery-engine/pkg/textfmt"
)

// printSummary tells the player where the game is. Colours are only used
// when w is a terminal.
func printSummary(w io.Writer, cfg *config.Config, g *game.Game, written int, reveal bool) {
	r := lipgloss.NewRenderer(w)

	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")) // pink
	labelStyle := r.NewStyle().
		Foreground(lipgloss.Color("240")) // dark grey
	hintStyle := r.NewStyle().
		Foreground(lipgloss.Color("86")) // green
	solutionStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")). // red
		Padding(0, 1)

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("A murder in the "+textfmt.Title(g.Setting)))
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d\n",
		labelStyle.Render("Suspects:"), len(g.Mystery.Suspects),
		labelStyle.Render("Weapons:"), len(g.Mystery.Weapons),
		labelStyle.Render("Locations:"), len(g.Contents.Paths()))
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Seed:"), g.Seed)

	switch cfg.Output {
	case config.OutputRedis:
		fmt.Fprintf(&b, "%s %d files stored under game %s\n", labelStyle.Render("Written:"), written, g.ID)
	default:
		fmt.Fprintf(&b, "%s %d files in %s\n", labelStyle.Render("Written:"), written, cfg.GameDir)
		fmt.Fprintln(&b, hintStyle.Render(fmt.Sprintf("Use `cd %s` and begin investigating.", cfg.GameDir)))
	}

	if reveal {
		answer := g.Solution()
		fmt.Fprintln(&b, solutionStyle.Render(fmt.Sprintf("%s, with the %s, in %s",
			textfmt.Title(answer.Suspect),
			strings.ToLower(answer.Weapon),
			textfmt.Breadcrumb(answer.Location.Segments()))))
	}

	fmt.Fprint(w, b.String())
}
