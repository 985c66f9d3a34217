// Package dimension derives lookup tables from categorical source columns.
package dimension

// Entry is one row of a derived lookup table.
type Entry struct {
	ID   int
	Name string
}

// Mapping is an ordered value-to-id index over the distinct non-null values
// of a source column. IDs are dense, 1-based, and assigned in first-seen
// order, so identical input ordering always yields identical tables.
type Mapping struct {
	entries []Entry
	ids     map[string]int
}

// Extract builds a Mapping from a column's values. Empty values are treated
// as null: they are skipped and never assigned an id. Duplicates collapse to
// the id of their first occurrence.
func Extract(values []string) *Mapping {
	m := &Mapping{ids: make(map[string]int)}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := m.ids[v]; ok {
			continue
		}
		id := len(m.entries) + 1
		m.entries = append(m.entries, Entry{ID: id, Name: v})
		m.ids[v] = id
	}
	return m
}

// ID resolves a value to its surrogate key. The second return is false for
// null values and values never seen during extraction.
func (m *Mapping) ID(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	id, ok := m.ids[value]
	return id, ok
}

// Entries returns the lookup table rows in id order.
func (m *Mapping) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len reports the number of distinct values.
func (m *Mapping) Len() int {
	return len(m.entries)
}
