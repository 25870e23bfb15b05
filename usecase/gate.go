package usecase

import (
	"disqus-client/dispatch"
	"disqus-client/models"
)

type keyState int

const (
	keyUnresolved keyState = iota
	keyResolving
	keyResolved
)

type deferredCall struct {
	run  func(key string)
	fail func(dispatch.Code)
}

// APIKey returns the cached forum API key.
func (f *Forum) APIKey() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.apiKey, f.keyState == keyResolved
}

// SetAPIKey caches key on the handle and runs any calls waiting for it. An
// empty key clears the cache; the next gated call fetches a fresh one.
func (f *Forum) SetAPIKey(key string) *Forum {
	if key == "" {
		f.clearKey()
		return f
	}
	f.resolveKey(key)
	return f
}

// withForumKey runs call with the forum API key. Without a cached key, one
// fetch is issued and every call arriving before it completes is queued and
// replayed once in order. A failed fetch hands its code to each queued call.
// A fetch whose response is lost leaves the queue waiting for the next fetch.
func (f *Forum) withForumKey(run func(key string), fail func(dispatch.Code)) {
	f.mu.Lock()
	switch f.keyState {
	case keyResolved:
		key := f.apiKey
		f.mu.Unlock()
		run(key)
		return
	case keyResolving:
		f.deferred = append(f.deferred, deferredCall{run: run, fail: fail})
		f.mu.Unlock()
		return
	}
	f.keyState = keyResolving
	f.deferred = append(f.deferred, deferredCall{run: run, fail: fail})
	f.mu.Unlock()

	p := dispatch.Get(f.svc.dispatcher, dispatch.Call[string]{
		Success: f.acceptKey,
		Failure: f.rejectKey,
	}, "get_forum_api_key", f.forumParams(), shapeText)
	p.OnLost(func(error) { f.abandonKey() })
}

func (f *Forum) acceptKey(key string) {
	if key == "" {
		f.rejectKey(models.CodeBadForumKey)
		return
	}
	f.resolveKey(key)
}

func (f *Forum) resolveKey(key string) {
	f.mu.Lock()
	f.apiKey = key
	f.keyState = keyResolved
	queued := f.deferred
	f.deferred = nil
	f.mu.Unlock()

	for _, c := range queued {
		c.run(key)
	}
}

func (f *Forum) rejectKey(code dispatch.Code) {
	f.mu.Lock()
	if f.keyState == keyResolved {
		f.mu.Unlock()
		return
	}
	f.keyState = keyUnresolved
	queued := f.deferred
	f.deferred = nil
	f.mu.Unlock()

	for _, c := range queued {
		if c.fail != nil {
			c.fail(code)
		}
	}
}

// abandonKey returns a handle whose key fetch was lost to the unresolved
// state. Queued calls stay queued and replay after the next fetch.
func (f *Forum) abandonKey() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keyState == keyResolving {
		f.keyState = keyUnresolved
	}
}

func (f *Forum) clearKey() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keyState == keyResolved {
		f.keyState = keyUnresolved
	}
	f.apiKey = ""
}
