// Package setting describes where a mystery takes place: the location tree,
// the people and objects that can appear, and the dialogue used for clues.
package setting

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/mystery-engine/pkg/location"
	"github.com/jwebster45206/mystery-engine/pkg/mystery"
	"github.com/jwebster45206/mystery-engine/pkg/trail"
)

// ErrInvalidSetting wraps every validation failure of a setting file.
var ErrInvalidSetting = errors.New("invalid setting")

// Setting is the static world a mystery is generated in. It is read-only once built.
type Setting struct {
	Name      string
	Hierarchy *location.Hierarchy
	Pool      mystery.Pool
	Templates trail.Templates
}

// file is the YAML layout of a setting:
//
//	name: harbour
//	locations:
//	  docks:
//	    warehouse: {}
//	  lighthouse: {}
//	people: [...]
//	objects: [...]
//	dialogue:
//	  reveal: [...]
//
// Locations is a yaml.Node so that sibling order is kept as written.
type file struct {
	Name      string          `yaml:"name"`
	Locations yaml.Node       `yaml:"locations"`
	People    []string        `yaml:"people"`
	Objects   []string        `yaml:"objects"`
	Dialogue  trail.Templates `yaml:"dialogue"`
}

// Load reads and parses a setting file.
func Load(path string) (*Setting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read setting file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("setting file %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a Setting from YAML. Missing dialogue categories fall back to the
// default English lines.
func Parse(data []byte) (*Setting, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}

	nodes, err := decodeNodes(&f.Locations)
	if err != nil {
		return nil, err
	}
	h, err := location.NewHierarchy(nodes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}

	pool := mystery.Pool{People: f.People, Objects: f.Objects}
	if err := pool.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}

	templates := f.Dialogue.Merge(trail.DefaultTemplates())
	if err := templates.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}

	name := f.Name
	if name == "" {
		name = "custom"
	}
	return &Setting{Name: name, Hierarchy: h, Pool: pool, Templates: templates}, nil
}

// decodeNodes turns a YAML mapping of name -> mapping into location nodes.
// An empty mapping, null or missing value marks a leaf.
func decodeNodes(n *yaml.Node) ([]location.Node, error) {
	switch {
	case n.Kind == 0:
		return nil, nil
	case n.Kind == yaml.ScalarNode && n.Tag == "!!null":
		return nil, nil
	case n.Kind != yaml.MappingNode:
		return nil, fmt.Errorf("%w: line %d: locations must be a mapping", ErrInvalidSetting, n.Line)
	}

	nodes := make([]location.Node, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: location name must be a string", ErrInvalidSetting, key.Line)
		}
		children, err := decodeNodes(value)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, location.Node{Name: key.Value, Children: children})
	}
	return nodes, nil
}
