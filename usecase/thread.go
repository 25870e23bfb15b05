package usecase

import (
	"disqus-client/dispatch"
	"disqus-client/models"
)

type Thread struct {
	models.Thread
	svc *Service
}

// GetThreadPosts accepts the options limit, start, filter and exclude.
func (t *Thread) GetThreadPosts(calls ...dispatch.Call[[]*Post]) *Thread {
	params := dispatch.Params{"user_api_key": t.svc.UserKey(), "thread_id": t.ID}
	dispatch.Get(t.svc.dispatcher, dispatch.Classify(calls...), "get_thread_posts", params, t.svc.shapePosts)
	return t
}
