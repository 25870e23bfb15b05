package dispatch

import "sync"

// Pending tracks one issued call. It settles when the call's outcome has been
// delivered; a call whose response never arrives stays unsettled forever.
type Pending struct {
	id     int64
	method string
	loop   *Loop
	done   chan struct{}
	once   sync.Once

	mu     sync.Mutex
	err    error
	lost   bool
	onLost []func(error)
}

func newPending(id int64, method string, loop *Loop) *Pending {
	return &Pending{id: id, method: method, loop: loop, done: make(chan struct{})}
}

func (p *Pending) ID() int64 { return p.id }

func (p *Pending) Method() string { return p.method }

func (p *Pending) Done() <-chan struct{} { return p.done }

func (p *Pending) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Err is the reason the call went wrong on this side: its parameters were
// rejected before sending, or its response was lost in transport.
func (p *Pending) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Lost reports whether the response is known never to arrive. A lost call
// never settles.
func (p *Pending) Lost() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lost
}

// OnLost runs fn on the loop once the response is known to be lost.
func (p *Pending) OnLost(fn func(error)) {
	p.mu.Lock()
	if !p.lost {
		p.onLost = append(p.onLost, fn)
		p.mu.Unlock()
		return
	}
	err := p.err
	p.mu.Unlock()

	p.loop.Post(func() { fn(err) })
}

func (p *Pending) lose(err error) {
	p.mu.Lock()
	if p.lost {
		p.mu.Unlock()
		return
	}
	p.lost = true
	p.err = err
	hooks := p.onLost
	p.onLost = nil
	p.mu.Unlock()

	for _, fn := range hooks {
		fn := fn
		p.loop.Post(func() { fn(err) })
	}
}

func (p *Pending) reject(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

func (p *Pending) settle() {
	p.once.Do(func() { close(p.done) })
}
