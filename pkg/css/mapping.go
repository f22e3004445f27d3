package css

// Mapping is an insertion-ordered token-name → value map.
// Setting an existing name updates the value in place without moving it.
type Mapping struct {
	names  []string
	values map[string]Value
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set adds or updates a token, coercing the value with ValueOf.
// It returns the mapping for chaining.
func (m *Mapping) Set(name string, v any) *Mapping {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = ValueOf(v)
	return m
}

// Get returns the value for a token name.
func (m *Mapping) Get(name string) (Value, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of tokens.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns the token names in insertion order.
func (m *Mapping) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}
