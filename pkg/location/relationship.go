package location

// Relationship describes how to get from one location to the next.
type Relationship int

const (
	// Descendant: next is somewhere below current.
	Descendant Relationship = iota
	// Lateral: next shares current's parent.
	Lateral
	// UpToTopLevel: next is a top-level location reached by going back up.
	UpToTopLevel
	// UpAndAcross: go back up to next's top-level branch, then down into it.
	UpAndAcross
)

func (r Relationship) String() string {
	switch r {
	case Descendant:
		return "descendant"
	case Lateral:
		return "lateral"
	case UpToTopLevel:
		return "up-to-top-level"
	case UpAndAcross:
		return "up-and-across"
	default:
		return "unknown"
	}
}

// IsUpward reports whether the move requires climbing back up the hierarchy.
func (r Relationship) IsUpward() bool {
	return r == UpToTopLevel || r == UpAndAcross
}

// Classify decides how next is reached from current. The checks run in order:
// descendant, lateral, then the upward fallback.
func Classify(current, next Path) Relationship {
	switch {
	case current.IsAncestorOf(next):
		return Descendant
	case current.IsSiblingOf(next):
		return Lateral
	case next.First() == next.Last():
		return UpToTopLevel
	default:
		return UpAndAcross
	}
}

// NextStep returns the child of current that leads toward next when next is a descendant.
func NextStep(current, next Path) (string, bool) {
	if !current.IsAncestorOf(next) {
		return "", false
	}
	return next.segments[len(current.segments)], true
}
