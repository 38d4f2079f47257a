package route

import "maps"

// Parameters is an immutable bag of typed route parameters.
// The zero value is empty and ready to use.
type Parameters struct {
	values map[string]any
}

// Adding returns new Parameters holding the union of p and fields.
// On a name collision the added value wins. p itself is never modified.
func (p Parameters) Adding(fields ...Field) Parameters {
	if len(fields) == 0 {
		return p
	}

	values := make(map[string]any, len(p.values)+len(fields))
	maps.Copy(values, p.values)
	for _, f := range fields {
		values[f.Name()] = f.Value()
	}
	return Parameters{values: values}
}

// Len returns the number of parameters.
func (p Parameters) Len() int {
	return len(p.values)
}

// Has reports whether a value is stored under name.
func (p Parameters) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Values returns a copy of all parameters keyed by name.
func (p Parameters) Values() map[string]any {
	values := make(map[string]any, len(p.values))
	maps.Copy(values, p.values)
	return values
}
