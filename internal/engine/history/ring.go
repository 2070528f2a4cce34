package history

// ring is a fixed-capacity chronological buffer that overwrites its oldest
// element when full. Eviction is O(1): the start index advances instead of
// reslicing and reallocating the backing array.
type ring[V any] struct {
	slots []V
	start int
	count int
}

func newRing[V any](capacity int) *ring[V] {
	return &ring[V]{slots: make([]V, capacity)}
}

func (r *ring[V]) len() int { return r.count }

// push appends v as the newest element, dropping the oldest when full.
func (r *ring[V]) push(v V) {
	if r.count < len(r.slots) {
		r.slots[(r.start+r.count)%len(r.slots)] = v
		r.count++
		return
	}
	r.slots[r.start] = v
	r.start = (r.start + 1) % len(r.slots)
}

// at returns the i-th element in chronological order; index 0 is the oldest.
func (r *ring[V]) at(i int) V {
	return r.slots[(r.start+i)%len(r.slots)]
}

// clear zeroes all slots so dropped elements can be collected.
func (r *ring[V]) clear() {
	var zero V
	for i := range r.slots {
		r.slots[i] = zero
	}
	r.start = 0
	r.count = 0
}
