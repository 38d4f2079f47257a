package route

import "slices"

// rootLevel marks a route that has not been nested into any view yet.
const rootLevel = -1

// ActivatedRoute is a read-only view of the navigation path bound to the
// nesting level of one consumer. Level -1 is the unbound root; each call to
// Nested moves one level deeper. A view at level n owns segment n-1 and
// matches its links against segment n.
type ActivatedRoute struct {
	level    int
	segments Segments
}

// Root is the unbound route with no segments.
var Root = ActivatedRoute{level: rootLevel}

// NewActivatedRoute creates an unbound (level -1) route over segments.
func NewActivatedRoute(segments Segments) ActivatedRoute {
	return ActivatedRoute{
		level:    rootLevel,
		segments: segments.Clone(),
	}
}

// Level returns the nesting level, -1 for an unbound route.
func (a ActivatedRoute) Level() int {
	return a.level
}

// Segments returns a copy of the full navigation path.
func (a ActivatedRoute) Segments() Segments {
	return a.segments.Clone()
}

// Paths returns the full path names, ignoring parameters.
func (a ActivatedRoute) Paths() []string {
	return a.segments.Paths()
}

// Nested returns the route as seen by content nested one level deeper.
func (a ActivatedRoute) Nested() ActivatedRoute {
	return ActivatedRoute{
		level:    a.level + 1,
		segments: a.segments,
	}
}

// Segment returns the segment owned by this level (index level-1).
// Returns false at the root level or when the level is past the active path.
func (a ActivatedRoute) Segment() (Segment, bool) {
	return a.at(a.level - 1)
}

// Matches reports whether the segment at this level has the given path.
// Returns false for unbound routes and levels past the active path.
func (a ActivatedRoute) Matches(path string) bool {
	segment, ok := a.at(a.level)
	return ok && segment.Path == path
}

// MatchesPaths reports whether the active path, starting at this level,
// begins with exactly paths. Used by a link to detect that the active route
// passes through or beyond it.
func (a ActivatedRoute) MatchesPaths(paths []string) bool {
	if a.level <= rootLevel {
		return false
	}

	var tail []string
	if a.level < len(a.segments) {
		tail = a.segments[a.level:].Paths()
	}
	if len(tail) > len(paths) {
		tail = tail[:len(paths)]
	}
	return slices.Equal(tail, paths)
}

// MatchesRoute reports whether both routes have the same full path names,
// regardless of their levels and parameters.
func (a ActivatedRoute) MatchesRoute(other ActivatedRoute) bool {
	return slices.Equal(a.Paths(), other.Paths())
}

func (a ActivatedRoute) at(index int) (Segment, bool) {
	if index < 0 || index >= len(a.segments) {
		return Segment{}, false
	}
	return a.segments[index], true
}

// Param reads the key from the segment owned by the route's level.
//
// Reading a level that was never nested into, a key that was never set or a
// key of the wrong type means the view tree does not match the route; Param
// panics with a *ParameterError in that case. Use LookupParam when absence
// is expected.
func Param[T any](a ActivatedRoute, key Key[T]) T {
	segment, ok := a.Segment()
	if !ok {
		panic(&ParameterError{Key: key.Name(), Level: a.level, Err: ErrNoSegment})
	}

	raw, ok := segment.Parameters.values[key.Name()]
	if !ok {
		panic(&ParameterError{Key: key.Name(), Level: a.level, Err: ErrMissingParameter})
	}

	value, ok := raw.(T)
	if !ok {
		panic(&ParameterError{Key: key.Name(), Level: a.level, Err: ErrParameterType, Got: raw})
	}
	return value
}

// LookupParam reads the key from the segment owned by the route's level.
// Returns false instead of panicking when the value is not available.
func LookupParam[T any](a ActivatedRoute, key Key[T]) (T, bool) {
	segment, ok := a.Segment()
	if !ok {
		var zero T
		return zero, false
	}
	return key.From(segment.Parameters)
}
