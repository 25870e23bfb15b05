package dispatch

import (
	"sort"
	"sync"
)

// Surface is the hidden form a write-only call submits: a named reception
// target and the string fields posted to Action.
type Surface struct {
	ID     int64
	Target string
	Action string
	Fields map[string]string
}

// Document holds the surfaces of write-only calls that have not completed.
type Document struct {
	mu       sync.Mutex
	surfaces map[string]*Surface
}

func NewDocument() *Document {
	return &Document{surfaces: make(map[string]*Surface)}
}

func (d *Document) Attach(s *Surface) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.surfaces[s.Target] = s
}

// Remove detaches s. It reports false if s was not attached.
func (d *Document) Remove(s *Surface) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.surfaces[s.Target]; !ok {
		return false
	}
	delete(d.surfaces, s.Target)
	return true
}

func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.surfaces)
}

// Surfaces returns the attached surfaces ordered by call id.
func (d *Document) Surfaces() []*Surface {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*Surface, 0, len(d.surfaces))
	for _, s := range d.surfaces {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
