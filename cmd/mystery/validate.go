package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/mystery"
	"github.com/jwebster45206/mystery-engine/pkg/setting"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <setting.yaml>...",
		Short: "Check setting files without generating a game",
		Long: `Check that each setting file parses and can host a mystery.

A setting needs at least three people and three objects, no name in both
lists, and a location tree with unique sibling names.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var errs []error
			for _, path := range args {
				if err := validateFile(out, path); err != nil {
					fmt.Fprintf(out, "Validation failed: %v\n", err)
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	}
}

func validateFile(out io.Writer, filename string) error {
	fmt.Fprintf(out, "Validating %s...\n", filename)

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("setting file must have a .yaml or .yml extension: %s", filepath.Base(filename))
	}

	s, err := setting.Load(filename)
	if err != nil {
		return err
	}

	var warnings []string
	if n := s.Hierarchy.Len(); n < 2 {
		warnings = append(warnings, fmt.Sprintf("only %d location: nobody can be placed outside the crime scene", n))
	}
	if free := s.Hierarchy.Len() - 1; free < mystery.MinEntities {
		warnings = append(warnings, fmt.Sprintf("%d free locations leave no room for red herrings", free))
	}
	if deepest := maxDepth(s.Hierarchy.Paths()); deepest == 1 {
		warnings = append(warnings, "no nested locations: every clue will be a top-level move")
	}
	for _, w := range warnings {
		fmt.Fprintf(out, "  warning: %s\n", w)
	}

	fmt.Fprintf(out, "%s is valid: %d locations, %d people, %d objects\n",
		filename, s.Hierarchy.Len(), len(s.Pool.People), len(s.Pool.Objects))
	return nil
}

func maxDepth(paths []location.Path) int {
	deepest := 0
	for _, p := range paths {
		deepest = max(deepest, p.Depth())
	}
	return deepest
}
