package delivery

import (
	"testing"

	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"disqus-client/dispatch"
	"disqus-client/models"
	"disqus-client/repository"
)

const (
	userKey  = "user-key"
	forumKey = "forum-key"
)

func newTestRouter() fasthttp.RequestHandler {
	storage := repository.NewForumStorage(userKey, "gopher")
	repository.Seed(storage, forumKey)
	return NewRouter(NewApi(storage, nil)).Handler
}

func serve(t *testing.T, handler fasthttp.RequestHandler, httpMethod, method string, args map[string]string) (string, models.Response) {
	t.Helper()

	form := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(form)
	for k, v := range args {
		form.Set(k, v)
	}

	var req fasthttp.Request
	req.Header.SetMethod(httpMethod)
	if httpMethod == fasthttp.MethodGet {
		req.SetRequestURI("/api/" + method + "/?" + form.String())
	} else {
		req.SetRequestURI("/api/" + method + "/")
		req.Header.SetContentType("application/x-www-form-urlencoded")
		req.SetBody(form.QueryString())
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	handler(&ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	assert.Equal(t, "text/javascript; charset=utf-8", string(ctx.Response.Header.ContentType()))

	name, payload, err := dispatch.ParseScript(ctx.Response.Body())
	require.NoError(t, err)
	var resp models.Response
	require.NoError(t, easyjson.Unmarshal(payload, &resp))
	return name, resp
}

func get(t *testing.T, handler fasthttp.RequestHandler, method string, args map[string]string) models.Response {
	t.Helper()
	args["api_response_format"] = "jsonp:disqus._handler7"
	name, resp := serve(t, handler, fasthttp.MethodGet, method, args)
	assert.Equal(t, "disqus._handler7", name)
	return resp
}

func TestForumList(t *testing.T) {
	handler := newTestRouter()

	resp := get(t, handler, "get_forum_list", map[string]string{"user_api_key": userKey})
	require.True(t, resp.Succeeded)

	forums, err := models.Shape[models.Forums](resp.Message)
	require.NoError(t, err)
	require.Len(t, forums, 1)
	assert.Equal(t, "gophers", forums[0].Shortname)
}

func TestBadUserKey(t *testing.T) {
	handler := newTestRouter()

	resp := get(t, handler, "get_forum_list", map[string]string{"user_api_key": "nope"})
	assert.False(t, resp.Succeeded)
	assert.Equal(t, models.CodeBadUserKey, resp.Code)
}

func TestUnknownMethod(t *testing.T) {
	resp := get(t, newTestRouter(), "get_everything", map[string]string{})
	assert.False(t, resp.Succeeded)
	assert.Equal(t, models.CodeUnknownMethod, resp.Code)
}

func TestMissingCallbackRejected(t *testing.T) {
	var req fasthttp.Request
	req.SetRequestURI("/api/get_forum_list/?api_response_format=json")

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	newTestRouter()(&ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestForumKeyAndThreadByURL(t *testing.T) {
	handler := newTestRouter()

	resp := get(t, handler, "get_forum_api_key", map[string]string{"user_api_key": userKey, "forum_id": "1"})
	require.True(t, resp.Succeeded)
	key, err := models.Shape[models.Text](resp.Message)
	require.NoError(t, err)
	assert.Equal(t, models.Text(forumKey), key)

	resp = get(t, handler, "get_thread_by_url", map[string]string{
		"forum_api_key": string(key),
		"url":           "http://example.com/hello-world",
	})
	require.True(t, resp.Succeeded)
	thread, err := models.Shape[models.Thread](resp.Message)
	require.NoError(t, err)
	assert.Equal(t, "hello-world", thread.Slug)

	resp = get(t, handler, "get_thread_by_url", map[string]string{"forum_api_key": "stale", "url": "x"})
	assert.Equal(t, models.CodeBadForumKey, resp.Code)
}

func TestThreadPostsFiltering(t *testing.T) {
	handler := newTestRouter()

	resp := get(t, handler, "get_forum_posts", map[string]string{
		"user_api_key": userKey,
		"forum_id":     "1",
		"exclude":      "spam",
	})
	require.True(t, resp.Succeeded)
	posts, err := models.Shape[models.Posts](resp.Message)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	resp = get(t, handler, "get_thread_posts", map[string]string{
		"user_api_key": userKey,
		"thread_id":    "3",
		"limit":        "1",
	})
	require.True(t, resp.Succeeded)
	posts, err = models.Shape[models.Posts](resp.Message)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Welcome aboard.", posts[0].Message)
}

func TestModeratePostOverForm(t *testing.T) {
	handler := newTestRouter()

	_, resp := serve(t, handler, fasthttp.MethodPost, "moderate_post", map[string]string{
		"api_response_format": "jsonp:void",
		"user_api_key":        userKey,
		"post_id":             "5",
		"action":              "spam",
	})
	require.True(t, resp.Succeeded)

	counts := get(t, handler, "get_num_posts", map[string]string{"user_api_key": userKey, "thread_ids": "3,4,99"})
	require.True(t, counts.Succeeded)
	n, err := models.Shape[models.NumPosts](counts.Message)
	require.NoError(t, err)
	assert.Equal(t, models.NumPosts{"3": {1, 2}, "4": {0, 1}}, n)

	_, resp = serve(t, handler, fasthttp.MethodPost, "moderate_post", map[string]string{
		"api_response_format": "jsonp:void",
		"user_api_key":        userKey,
		"post_id":             "5",
		"action":              "burn",
	})
	assert.Equal(t, models.CodeBadAction, resp.Code)
}

func TestUpdatedThreads(t *testing.T) {
	handler := newTestRouter()

	resp := get(t, handler, "get_updated_threads", map[string]string{
		"user_api_key": userKey,
		"forum_id":     "1",
		"since":        "2020-01-02T00:00",
	})
	require.True(t, resp.Succeeded)
	threads, err := models.Shape[models.Threads](resp.Message)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "release-notes", threads[0].Slug)
}
