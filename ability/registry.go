package ability

import "sort"

type entry struct {
	target Target
	link   Link
}

// registry maps a target handle to the beam drawn for it.
type registry struct {
	entries map[TargetID]*entry
}

func newRegistry() *registry {
	return &registry{entries: make(map[TargetID]*entry)}
}

func (r *registry) get(id TargetID) (*entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

func (r *registry) put(t Target, l Link) *entry {
	e := &entry{target: t, link: l}
	r.entries[t.ID()] = e
	return e
}

func (r *registry) remove(id TargetID) (*entry, bool) {
	e, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	return e, ok
}

func (r *registry) len() int {
	return len(r.entries)
}

// ids returns the registered handles in ascending order.
func (r *registry) ids() []TargetID {
	out := make([]TargetID, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// drain empties the registry and returns the removed entries in id order.
func (r *registry) drain() []*entry {
	ids := r.ids()
	out := make([]*entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.entries[id])
	}
	clear(r.entries)
	return out
}
