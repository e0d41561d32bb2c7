package hashmap

// Stats summarizes how the table's entries are distributed over its buckets.
type Stats struct {
	Count        int
	Capacity     int
	LoadFactor   float64
	EmptyBuckets int
	MaxChainLen  int
}

// Keys returns every key in the table. Order follows bucket index and then
// chain position and is not meaningful to callers.
func (h *HashTable) Keys() []string {
	keys := make([]string, 0, h.count)
	for _, head := range h.buckets {
		for n := head; n != nil; n = n.next {
			keys = append(keys, n.key)
		}
	}
	return keys
}

// Values returns every stored value, in the same traversal order as Keys.
func (h *HashTable) Values() []string {
	values := make([]string, 0, h.count)
	for _, head := range h.buckets {
		for n := head; n != nil; n = n.next {
			values = append(values, n.value)
		}
	}
	return values
}

// Entries returns a detached copy of the table's contents. Mutating the
// returned map does not affect the table.
func (h *HashTable) Entries() map[string]string {
	entries := make(map[string]string, h.count)
	for _, head := range h.buckets {
		for n := head; n != nil; n = n.next {
			entries[n.key] = n.value
		}
	}
	return entries
}

// Stats scans all buckets and reports the current distribution.
func (h *HashTable) Stats() Stats {
	stats := Stats{
		Count:      h.count,
		Capacity:   len(h.buckets),
		LoadFactor: h.LoadFactor(),
	}
	for _, head := range h.buckets {
		if head == nil {
			stats.EmptyBuckets++
			continue
		}
		length := 0
		for n := head; n != nil; n = n.next {
			length++
		}
		if length > stats.MaxChainLen {
			stats.MaxChainLen = length
		}
	}
	return stats
}
