package conflict

// Registry keeps distinct conflict records in insertion order.
// Records can only be added.
type Registry struct {
	records []*Record
	buckets map[uint64][]int
}

// NewRegistry creates registry, size is a hint for the expected number of records.
func NewRegistry(size int) *Registry {
	return &Registry{
		records: make([]*Record, 0, size),
		buckets: make(map[uint64][]int, size),
	}
}

// Add stores r unless an equal record is already stored.
// Returns the stored record and a flag telling whether r was added.
func (reg *Registry) Add(r *Record) (*Record, bool) {
	if found := reg.Find(r); found != nil {
		return found, false
	}

	h := r.Hash()
	reg.buckets[h] = append(reg.buckets[h], len(reg.records))
	reg.records = append(reg.records, r)
	return r, true
}

// Find returns a stored record equal to r or nil.
func (reg *Registry) Find(r *Record) *Record {
	for _, index := range reg.buckets[r.Hash()] {
		if reg.records[index].Equal(r) {
			return reg.records[index]
		}
	}
	return nil
}

// Len returns the number of distinct records.
func (reg *Registry) Len() int {
	return len(reg.records)
}

// Records returns stored records in insertion order.
func (reg *Registry) Records() []*Record {
	result := make([]*Record, len(reg.records))
	copy(result, reg.records)
	return result
}
