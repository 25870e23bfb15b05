package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disqus-client/dispatch"
	"disqus-client/usecase"
)

type fakeRemote struct {
	mu      sync.Mutex
	answers map[string]string
	fetches map[string]map[string]string
	forms   map[string]map[string]string
}

func newFakeRemote(answers map[string]string) *fakeRemote {
	return &fakeRemote{
		answers: answers,
		fetches: map[string]map[string]string{},
		forms:   map[string]map[string]string{},
	}
}

func methodOf(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	return endpoint[strings.LastIndexByte(endpoint, '/')+1:]
}

func (f *fakeRemote) FetchScript(_ context.Context, endpoint string, query map[string]string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	method := methodOf(endpoint)
	f.fetches[method] = query
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
	f.forms[methodOf(action)] = fields
	return nil
}

func (f *fakeRemote) fetch(method string) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches[method]
}

func (f *fakeRemote) form(method string) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forms[method]
}

func newTestCLI(remote *fakeRemote) (*cli, *bytes.Buffer, *bool) {
	d := dispatch.New(context.Background(), dispatch.DefaultConfig(), remote, remote, nil)
	out := &bytes.Buffer{}
	done := false
	c := &cli{
		svc:    usecase.NewService(d, "").SetUserKey("user-key"),
		out:    out,
		finish: func() { done = true },
	}
	c.fail = func(code dispatch.Code) {
		out.WriteString("failed: " + string(code) + "\n")
		c.finish()
	}
	return c, out, &done
}

func run(t *testing.T, c *cli, done *bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, c.svc.Dispatcher().Loop().RunUntil(ctx, func() bool { return *done }))
}

func TestUpdatedThreadsSendsSince(t *testing.T) {
	remote := newFakeRemote(map[string]string{
		"get_updated_threads": `{"succeeded": true, "message": [{"id": 3, "title": "Hello", "url": "http://example.com/hello", "created_at": 1262304000}]}`,
	})
	c, out, done := newTestCLI(remote)
	c.since = time.Date(2010, time.January, 2, 3, 4, 0, 0, time.UTC)

	require.NoError(t, c.issue("updated-threads", []string{"1"}))
	run(t, c, done)

	assert.Equal(t, "2010-01-02T03:04", remote.fetch("get_updated_threads")["since"])
	assert.Equal(t, "1", remote.fetch("get_updated_threads")["forum_id"])
	assert.Equal(t, "3\t1262304000\tHello\thttp://example.com/hello\n", out.String())
}

func TestUpdatedThreadsNeedsSince(t *testing.T) {
	c, _, _ := newTestCLI(newFakeRemote(nil))
	err := c.issue("updated-threads", []string{"1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-since")
}

func TestThreadByIdentifierSubmitsWithForumKey(t *testing.T) {
	remote := newFakeRemote(map[string]string{
		"get_forum_api_key": `{"succeeded": true, "message": "forum-key"}`,
	})
	c, out, done := newTestCLI(remote)

	require.NoError(t, c.issue("thread-by-identifier", []string{"1", "release-notes", "Release notes"}))
	run(t, c, done)

	fields := remote.form("thread_by_identifier")
	require.NotNil(t, fields)
	assert.Equal(t, "forum-key", fields["forum_api_key"])
	assert.Equal(t, "release-notes", fields["identifier"])
	assert.Equal(t, "Release notes", fields["title"])
	assert.Equal(t, "submitted\n", out.String())
}

func TestThreadByIdentifierNeedsThreeArguments(t *testing.T) {
	c, _, _ := newTestCLI(newFakeRemote(nil))
	err := c.issue("thread-by-identifier", []string{"1", "release-notes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 argument(s)")
}

func TestPostsPassesLimit(t *testing.T) {
	remote := newFakeRemote(map[string]string{
		"get_thread_posts": `{"succeeded": true, "message": [{"id": 9, "message": "hi", "status": "approved", "created_at": "2020-01-01T00:00"}]}`,
	})
	c, out, done := newTestCLI(remote)
	c.limit = 5

	require.NoError(t, c.issue("posts", []string{"3"}))
	run(t, c, done)

	assert.Equal(t, "5", remote.fetch("get_thread_posts")["limit"])
	assert.Equal(t, "9\t2020-01-01T00:00\tapproved\thi\n", out.String())
}

func TestUnknownCommand(t *testing.T) {
	c, _, _ := newTestCLI(newFakeRemote(nil))
	assert.Error(t, c.issue("frobnicate", nil))
}
