package dispatch

import (
	"strconv"
	"strings"
	"sync"

	"disqus-client/models"
)

// Handler receives the decoded response of one call.
type Handler func(models.Response)

// Correlator hands out call ids and routes responses back to the handler
// registered for them. Ids are never reused for the Correlator's lifetime.
type Correlator struct {
	mu       sync.Mutex
	counter  int64
	prefix   string
	handlers map[int64]Handler
}

// NewCorrelator returns a Correlator whose handler names live under namespace.
func NewCorrelator(namespace string) *Correlator {
	prefix := "_handler"
	if namespace != "" {
		prefix = namespace + "._handler"
	}
	return &Correlator{
		prefix:   prefix,
		handlers: make(map[int64]Handler),
	}
}

// Begin issues the next call id.
func (c *Correlator) Begin() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter++
	return c.counter
}

// Register stores a one-shot handler for id and returns the name the remote
// side must invoke to reach it.
func (c *Correlator) Register(id int64, h Handler) string {
	c.mu.Lock()
	c.handlers[id] = h
	c.mu.Unlock()

	return c.HandlerName(id)
}

func (c *Correlator) HandlerName(id int64) string {
	return c.prefix + strconv.FormatInt(id, 10)
}

// Resolve maps a handler name back to its call id.
func (c *Correlator) Resolve(name string) (int64, bool) {
	if !strings.HasPrefix(name, c.prefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(name, c.prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Deliver removes the handler for id and then invokes it. It reports false
// when no handler is registered, which is the case for a second delivery.
func (c *Correlator) Deliver(id int64, resp models.Response) bool {
	c.mu.Lock()
	h, ok := c.handlers[id]
	delete(c.handlers, id)
	c.mu.Unlock()

	if !ok {
		return false
	}
	h(resp)
	return true
}

// Pending is the number of handlers still waiting for a response.
func (c *Correlator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.handlers)
}
