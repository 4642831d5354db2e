package bubble

// Type selects the bubble silhouette: a speech tail or thought circles.
type Type int

const (
	Say Type = iota
	Think
)

// String returns the lower-case name used by theme files and the CLI.
func (t Type) String() string {
	if t == Think {
		return "think"
	}
	return "say"
}

// ParseType maps a name to a bubble Type, defaulting to Say.
func ParseType(s string) Type {
	if s == "think" || s == "thought" {
		return Think
	}
	return Say
}

// Content is what a bubble displays. It is replaced as a whole unit;
// there are no partial edits.
type Content struct {
	Type       Type
	Text       string
	PointsLeft bool
}
