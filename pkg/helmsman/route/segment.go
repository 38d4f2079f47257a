package route

// Segment is one node of a navigation path: a path name plus its parameters.
type Segment struct {
	Path       string
	Parameters Parameters
}

// NewSegment creates a segment for path carrying the given parameters.
func NewSegment(path string, fields ...Field) Segment {
	return Segment{
		Path:       path,
		Parameters: Parameters{}.Adding(fields...),
	}
}

// Adding returns a copy of the segment with fields added to its parameters.
// The path is preserved.
func (s Segment) Adding(fields ...Field) Segment {
	return Segment{
		Path:       s.Path,
		Parameters: s.Parameters.Adding(fields...),
	}
}
