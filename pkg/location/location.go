package location

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Separator joins path segments in the canonical string form of a Path.
const Separator = "/"

// ErrInvalidHierarchy is returned when a hierarchy cannot be built from the given nodes.
var ErrInvalidHierarchy = errors.New("invalid location hierarchy")

// Path identifies a location by the names of every node from the root down to it.
// A Path is immutable; accessors return copies.
type Path struct {
	segments []string
}

// NewPath builds a Path from segments.
func NewPath(segments ...string) Path {
	return Path{segments: slices.Clone(segments)}
}

// ParsePath splits a slash-joined string into a Path. Empty segments are dropped.
func ParsePath(s string) Path {
	var segments []string
	for _, seg := range strings.Split(s, Separator) {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return Path{segments: segments}
}

// String returns the canonical slash-joined form.
func (p Path) String() string {
	return strings.Join(p.segments, Separator)
}

// Segments returns a copy of the path segments.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Depth is the number of segments.
func (p Path) Depth() int {
	return len(p.segments)
}

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// First returns the top-level segment, or "" for the root.
func (p Path) First() string {
	if p.IsRoot() {
		return ""
	}
	return p.segments[0]
}

// Last returns the final segment, or "" for the root.
func (p Path) Last() string {
	if p.IsRoot() {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Parent returns the path one level up. The parent of the root is the root.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return p
	}
	return NewPath(p.segments[:len(p.segments)-1]...)
}

// Child returns the path of the named child of p.
func (p Path) Child(name string) Path {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	return Path{segments: append(segments, name)}
}

// Equal reports whether both paths have identical segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// IsAncestorOf reports whether other is strictly below p.
func (p Path) IsAncestorOf(other Path) bool {
	if len(other.segments) <= len(p.segments) {
		return false
	}
	return slices.Equal(p.segments, other.segments[:len(p.segments)])
}

// IsSiblingOf reports whether p and other share a parent but are different locations.
func (p Path) IsSiblingOf(other Path) bool {
	if len(p.segments) != len(other.segments) || p.IsRoot() {
		return false
	}
	n := len(p.segments) - 1
	return slices.Equal(p.segments[:n], other.segments[:n]) && p.segments[n] != other.segments[n]
}

// Node is one location in a hierarchy literal.
type Node struct {
	Name     string
	Children []Node
}

// Hierarchy is a read-only tree of named locations.
type Hierarchy struct {
	roots []Node
	paths []Path
	index map[string]struct{}
}

// NewHierarchy validates the nodes and builds a Hierarchy from a deep copy of them.
func NewHierarchy(roots ...Node) (*Hierarchy, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("%w: no locations", ErrInvalidHierarchy)
	}
	if err := validateSiblings(Path{}, roots); err != nil {
		return nil, err
	}

	h := &Hierarchy{
		roots: cloneNodes(roots),
		index: make(map[string]struct{}),
	}
	h.paths = walk(h.roots)
	for _, p := range h.paths {
		h.index[p.String()] = struct{}{}
	}
	return h, nil
}

// MustHierarchy is NewHierarchy for static literals; it panics on invalid input.
func MustHierarchy(roots ...Node) *Hierarchy {
	h, err := NewHierarchy(roots...)
	if err != nil {
		panic(err)
	}
	return h
}

func validateSiblings(parent Path, nodes []Node) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		name := strings.TrimSpace(n.Name)
		switch {
		case name == "":
			return fmt.Errorf("%w: empty name under %q", ErrInvalidHierarchy, parent.String())
		case name != n.Name:
			return fmt.Errorf("%w: name %q has surrounding spaces", ErrInvalidHierarchy, n.Name)
		case strings.Contains(n.Name, Separator):
			return fmt.Errorf("%w: name %q contains %q", ErrInvalidHierarchy, n.Name, Separator)
		case n.Name == "." || n.Name == "..":
			return fmt.Errorf("%w: name %q is reserved under %q", ErrInvalidHierarchy, n.Name, parent.String())
		case seen[n.Name]:
			return fmt.Errorf("%w: duplicate name %q under %q", ErrInvalidHierarchy, n.Name, parent.String())
		}
		seen[n.Name] = true
		if err := validateSiblings(parent.Child(n.Name), n.Children); err != nil {
			return err
		}
	}
	return nil
}

func cloneNodes(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Node{Name: n.Name, Children: cloneNodes(n.Children)}
	}
	return out
}

// walk lists every node in pre-order: a parent comes before its children and
// siblings keep their declaration order.
func walk(roots []Node) []Path {
	type frame struct {
		node Node
		path Path
	}

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: roots[i], path: NewPath(roots[i].Name)})
	}

	var paths []Path
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		paths = append(paths, top.path)

		children := top.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i], path: top.path.Child(children[i].Name)})
		}
	}
	return paths
}

// Paths returns every location path in pre-order.
func (h *Hierarchy) Paths() []Path {
	return slices.Clone(h.paths)
}

// Roots returns a copy of the top-level nodes.
func (h *Hierarchy) Roots() []Node {
	return cloneNodes(h.roots)
}

// Len is the number of locations.
func (h *Hierarchy) Len() int {
	return len(h.paths)
}

// Contains reports whether p names a location in the hierarchy.
func (h *Hierarchy) Contains(p Path) bool {
	_, ok := h.index[p.String()]
	return ok
}
