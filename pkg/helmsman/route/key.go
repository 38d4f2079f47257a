package route

// Key is a typed, name-based parameter key.
// Keys are compared by name only, so a key can be recreated anywhere and
// still find values stored under another key with the same name. Keeping
// names unique per value type is the caller's job.
type Key[T any] struct {
	name string
}

// NewKey creates a typed key with the given name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the name values are stored under.
func (k Key[T]) Name() string { return k.name }

// Field binds value to the key, ready to be added to Parameters or a Segment.
func (k Key[T]) Field(value T) Field {
	return Field{name: k.name, value: value}
}

// From reads the key's value from p.
// Returns false if the key is not set or holds a value of another type.
func (k Key[T]) From(p Parameters) (T, bool) {
	var zero T
	raw, ok := p.values[k.name]
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

// Field is a single named parameter value produced by Key.Field.
type Field struct {
	name  string
	value any
}

// Name returns the key name of the field.
func (f Field) Name() string { return f.name }

// Value returns the stored value.
func (f Field) Value() any { return f.value }
