package dispatch

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type scriptRequest struct {
	endpoint string
	query    map[string]string
}

// fakeScripts answers each fetch with respond's payload wrapped in an
// invocation of the requested callback. An empty payload loses the response.
type fakeScripts struct {
	mu       sync.Mutex
	requests []scriptRequest
	respond  func(endpoint string, query map[string]string) string
	fetched  chan struct{}
}

func newFakeScripts(respond func(endpoint string, query map[string]string) string) *fakeScripts {
	return &fakeScripts{respond: respond, fetched: make(chan struct{}, 16)}
}

func (f *fakeScripts) FetchScript(_ context.Context, endpoint string, query map[string]string) ([]byte, error) {
	f.mu.Lock()
	f.requests = append(f.requests, scriptRequest{endpoint: endpoint, query: query})
	f.mu.Unlock()
	defer func() {
		select {
		case f.fetched <- struct{}{}:
		default:
		}
	}()

	payload := f.respond(endpoint, query)
	if payload == "" {
		return nil, errors.New("connection reset")
	}
	name := strings.TrimPrefix(query["api_response_format"], "jsonp:")
	return []byte(name + "(" + payload + ");"), nil
}

func (f *fakeScripts) Requests() []scriptRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]scriptRequest(nil), f.requests...)
}

type formRequest struct {
	action string
	target string
	fields map[string]string
}

type fakeForms struct {
	mu       sync.Mutex
	requests []formRequest
	err      error
}

func (f *fakeForms) SubmitForm(_ context.Context, action, target string, fields map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, formRequest{action: action, target: target, fields: fields})
	return f.err
}

func (f *fakeForms) Requests() []formRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]formRequest(nil), f.requests...)
}

func newTestDispatcher(scripts ScriptFetcher, forms FormSubmitter) *Dispatcher {
	return New(context.Background(), DefaultConfig(), scripts, forms, nil)
}

func settle(t *testing.T, d *Dispatcher, p *Pending) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Loop().RunUntil(ctx, p.Settled), "call %s (%d) never settled", p.Method(), p.ID())
}
