package route

// Segments is an ordered navigation path from the root to the current leaf.
// Path names do not need to be unique; recursive navigation repeats them.
//
// Segments is treated as a value: none of its methods write to the receiver's
// backing array, and every method that changes the path returns a fresh slice.
type Segments []Segment

// Path builds parameterless segments from path names.
//
// Example:
//
//	route.Path("library", "game", "settings")
func Path(names ...string) Segments {
	segments := make(Segments, 0, len(names))
	for _, name := range names {
		segments = append(segments, NewSegment(name))
	}
	return segments
}

// Len returns the number of segments, i.e. the navigation depth.
func (s Segments) Len() int {
	return len(s)
}

// IsEmpty returns true if the path is at the root.
func (s Segments) IsEmpty() bool {
	return len(s) == 0
}

// Paths returns the path names in order, ignoring parameters.
func (s Segments) Paths() []string {
	paths := make([]string, len(s))
	for i, segment := range s {
		paths[i] = segment.Path
	}
	return paths
}

// Last returns the leaf segment.
// Returns false if the path is empty.
func (s Segments) Last() (Segment, bool) {
	if len(s) == 0 {
		return Segment{}, false
	}
	return s[len(s)-1], true
}

// DropLast returns the path without its leaf.
// Dropping from an empty path returns an empty path.
func (s Segments) DropLast() Segments {
	if len(s) == 0 {
		return Segments{}
	}
	return s.Prefix(len(s) - 1)
}

// Prefix returns the first n segments. n is clamped to [0, Len()].
func (s Segments) Prefix(n int) Segments {
	n = max(0, min(n, len(s)))
	prefix := make(Segments, n)
	copy(prefix, s[:n])
	return prefix
}

// Append returns the path extended by segments.
func (s Segments) Append(segments ...Segment) Segments {
	extended := make(Segments, 0, len(s)+len(segments))
	extended = append(extended, s...)
	return append(extended, segments...)
}

// Clone returns a copy that shares no backing array with s.
func (s Segments) Clone() Segments {
	return s.Prefix(len(s))
}
