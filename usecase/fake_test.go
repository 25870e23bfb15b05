package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"disqus-client/dispatch"
)

// fakeRemote answers scripts from a table keyed by API method and records
// every request it sees.
type fakeRemote struct {
	mu      sync.Mutex
	answers map[string]string
	fetches []map[string]string
	forms   []map[string]string
	methods []string
}

func newFakeRemote(answers map[string]string) *fakeRemote {
	return &fakeRemote{answers: answers}
}

func methodOf(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	return endpoint[strings.LastIndexByte(endpoint, '/')+1:]
}

func (f *fakeRemote) answer(method, payload string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers[method] = payload
}

func (f *fakeRemote) FetchScript(_ context.Context, endpoint string, query map[string]string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	method := methodOf(endpoint)
	f.methods = append(f.methods, method)
	f.fetches = append(f.fetches, query)

	payload, ok := f.answers[method]
	if !ok {
		return nil, errors.Errorf("no answer for %s", method)
	}
	name := strings.TrimPrefix(query["api_response_format"], "jsonp:")
	return []byte(name + "(" + payload + ");"), nil
}

func (f *fakeRemote) SubmitForm(_ context.Context, action, _ string, fields map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.methods = append(f.methods, methodOf(action))
	f.forms = append(f.forms, fields)
	return nil
}

// count returns how many requests were made for method.
func (f *fakeRemote) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.methods {
		if m == method {
			n++
		}
	}
	return n
}

func (f *fakeRemote) lastFetch() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches[len(f.fetches)-1]
}

func (f *fakeRemote) lastForm() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forms[len(f.forms)-1]
}

func newTestService(remote *fakeRemote) *Service {
	d := dispatch.New(context.Background(), dispatch.DefaultConfig(), remote, remote, nil)
	return NewService(d, "").SetUserKey("user-key")
}

// runUntil drives the service's loop until done reports true.
func runUntil(t *testing.T, s *Service, done func() bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Dispatcher().Loop().RunUntil(ctx, done))
}
