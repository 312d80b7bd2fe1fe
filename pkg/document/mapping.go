package document

// Mapping is a string-keyed mapping which iterates keys in insertion order.
type Mapping struct {
	keys   []string
	values map[string]*Value
}

func NewMapping() *Mapping {
	return &Mapping{
		values: map[string]*Value{},
	}
}

// Set sets the value of key.
// If key already exists, the value is replaced and the key keeps its position.
func (m *Mapping) Set(key string, value *Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value of key, or nil if key doesn't exist.
func (m *Mapping) Get(key string) *Value {
	if m == nil {
		return nil
	}
	return m.values[key]
}

// Keys returns keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}
