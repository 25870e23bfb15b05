package transport_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"disqus-client/delivery"
	"disqus-client/dispatch"
	"disqus-client/models"
	"disqus-client/repository"
	"disqus-client/transport"
	"disqus-client/usecase"
)

const baseURL = "http://stub.local/api"

func listen(t *testing.T, handler fasthttp.RequestHandler) *transport.Remote {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	server := &fasthttp.Server{Handler: handler}
	go func() { _ = server.Serve(ln) }()
	t.Cleanup(func() { _ = ln.Close() })

	return transport.NewRemote(transport.Options{
		Name: "test",
		Dial: func(string) (net.Conn, error) { return ln.Dial() },
	}, nil)
}

func stubRemote(t *testing.T) (*transport.Remote, *repository.Storage) {
	storage := repository.NewForumStorage("user-key", "gopher")
	repository.Seed(storage, "forum-key")
	return listen(t, delivery.NewRouter(delivery.NewApi(storage, nil)).Handler), storage
}

func TestFetchScriptSendsQuery(t *testing.T) {
	var seen map[string]string
	remote := listen(t, func(ctx *fasthttp.RequestCtx) {
		seen = map[string]string{}
		ctx.QueryArgs().VisitAll(func(k, v []byte) { seen[string(k)] = string(v) })
		_, _ = ctx.WriteString(`cb({"succeeded": true});`)
	})

	body, err := remote.FetchScript(context.Background(), baseURL+"/get_forum_list/", map[string]string{
		"api_response_format": "jsonp:cb",
		"url":                 "http://example.com/a b",
	})
	require.NoError(t, err)
	assert.Equal(t, `cb({"succeeded": true});`, string(body))
	assert.Equal(t, map[string]string{"api_response_format": "jsonp:cb", "url": "http://example.com/a b"}, seen)
}

func TestFetchScriptRejectsErrorStatus(t *testing.T) {
	remote := listen(t, func(ctx *fasthttp.RequestCtx) {
		ctx.Error("gone", fasthttp.StatusNotFound)
	})

	_, err := remote.FetchScript(context.Background(), baseURL+"/get_forum_list/", nil)
	assert.Error(t, err)
}

func TestSubmitFormPostsFields(t *testing.T) {
	var target string
	var fields map[string]string
	remote := listen(t, func(ctx *fasthttp.RequestCtx) {
		target = string(ctx.Request.Header.Peek("X-Form-Target"))
		fields = map[string]string{}
		ctx.PostArgs().VisitAll(func(k, v []byte) { fields[string(k)] = string(v) })
	})

	err := remote.SubmitForm(context.Background(), baseURL+"/moderate_post/", "_target4", map[string]string{
		"post_id": "5",
		"action":  "kill",
	})
	require.NoError(t, err)
	assert.Equal(t, "_target4", target)
	assert.Equal(t, map[string]string{"post_id": "5", "action": "kill"}, fields)
}

func TestCancelledContext(t *testing.T) {
	remote := listen(t, func(*fasthttp.RequestCtx) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := remote.FetchScript(ctx, baseURL+"/get_forum_list/", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, remote.SubmitForm(ctx, baseURL+"/moderate_post/", "_target1", nil), context.Canceled)
}

func newService(t *testing.T, remote *transport.Remote) *usecase.Service {
	t.Helper()
	cfg := dispatch.DefaultConfig()
	cfg.BaseURL = baseURL
	d := dispatch.New(context.Background(), cfg, remote, remote, nil)
	return usecase.NewService(d, "").SetUserKey("user-key")
}

func run(t *testing.T, svc *usecase.Service, done func() bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Dispatcher().Loop().RunUntil(ctx, done))
}

func TestClientAgainstStub(t *testing.T) {
	remote, storage := stubRemote(t)
	svc := newService(t, remote)

	var forums []*usecase.Forum
	svc.GetForumList(dispatch.OnSuccess(func(v []*usecase.Forum) { forums = v }))
	run(t, svc, func() bool { return forums != nil })
	require.Len(t, forums, 1)
	forum := forums[0]
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), forum.CreatedAt.Time)

	var thread *usecase.Thread
	forum.GetThreadByURL("http://example.com/hello-world", dispatch.OnSuccess(func(v *usecase.Thread) { thread = v }))
	run(t, svc, func() bool { return thread != nil })
	assert.Equal(t, "hello-world", thread.Slug)
	key, ok := forum.APIKey()
	assert.True(t, ok)
	assert.Equal(t, "forum-key", key)

	var posts []*usecase.Post
	thread.GetThreadPosts(dispatch.OnSuccess(func(v []*usecase.Post) { posts = v }))
	run(t, svc, func() bool { return posts != nil })
	require.Len(t, posts, 2)

	moderated := false
	posts[0].ModeratePost(usecase.ActionKill, dispatch.OnSuccess(func(dispatch.Void) { moderated = true }))
	run(t, svc, func() bool { return moderated })

	post, err := storage.Post(posts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostKilled, post.Status)
	assert.Equal(t, 0, svc.Dispatcher().Document().Len())
}

func TestClientFailureFromStub(t *testing.T) {
	remote, _ := stubRemote(t)
	svc := newService(t, remote).SetUserKey("wrong")

	var code dispatch.Code
	svc.GetForumList(dispatch.Call[[]*usecase.Forum]{
		Success: func([]*usecase.Forum) { t.Error("unexpected success") },
		Failure: func(c dispatch.Code) { code = c },
	})
	run(t, svc, func() bool { return code != "" })
	assert.Equal(t, models.CodeBadUserKey, code)
}

func TestThreadByIdentifierAgainstStub(t *testing.T) {
	remote, storage := stubRemote(t)
	svc := newService(t, remote)
	forum := svc.Forum(models.Forum{ID: "1"})

	done := false
	forum.ThreadByIdentifier("new-thread", "New thread", dispatch.OnSuccess(func(dispatch.Void) { done = true }))
	run(t, svc, func() bool { return done })

	thread, created, err := storage.ThreadByIdentifier("1", "new-thread", "ignored")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "New thread", thread.Title)
}
