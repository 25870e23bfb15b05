package usecase

import (
	"sync"
	"time"

	"disqus-client/dispatch"
	"disqus-client/models"
)

// Forum is a forum handle. It caches the forum API key once fetched.
type Forum struct {
	models.Forum
	svc *Service

	mu       sync.Mutex
	apiKey   string
	keyState keyState
	deferred []deferredCall
}

func (f *Forum) forumParams() dispatch.Params {
	return dispatch.Params{"user_api_key": f.svc.UserKey(), "forum_id": f.ID}
}

func (f *Forum) GetForumAPIKey(calls ...dispatch.Call[string]) *Forum {
	dispatch.Get(f.svc.dispatcher, dispatch.Classify(calls...), "get_forum_api_key", f.forumParams(), shapeText)
	return f
}

// GetForumPosts accepts the options category_id, limit, start, filter and
// exclude.
func (f *Forum) GetForumPosts(calls ...dispatch.Call[[]*Post]) *Forum {
	dispatch.Get(f.svc.dispatcher, dispatch.Classify(calls...), "get_forum_posts", f.forumParams(), f.svc.shapePosts)
	return f
}

func (f *Forum) GetCategoriesList(calls ...dispatch.Call[[]*models.Category]) *Forum {
	dispatch.Get(f.svc.dispatcher, dispatch.Classify(calls...), "get_categories_list", f.forumParams(), shapeCategories)
	return f
}

// GetThreadList accepts the option category_id.
func (f *Forum) GetThreadList(calls ...dispatch.Call[[]*Thread]) *Forum {
	dispatch.Get(f.svc.dispatcher, dispatch.Classify(calls...), "get_thread_list", f.forumParams(), f.svc.shapeThreads)
	return f
}

func (f *Forum) GetUpdatedThreads(since time.Time, calls ...dispatch.Call[[]*Thread]) *Forum {
	params := f.forumParams()
	params["since"] = models.FormatDate(since)
	dispatch.Get(f.svc.dispatcher, dispatch.Classify(calls...), "get_updated_threads", params, f.svc.shapeThreads)
	return f
}

// GetThreadByURL needs the forum API key; it is fetched first if the handle
// does not have it yet. Accepts the option partner_api_key.
func (f *Forum) GetThreadByURL(url string, calls ...dispatch.Call[*Thread]) *Forum {
	call := dispatch.Classify(calls...)
	f.withForumKey(func(key string) {
		params := dispatch.Params{"forum_api_key": key, "url": url}
		dispatch.Get(f.svc.dispatcher, call, "get_thread_by_url", params, f.svc.shapeThread)
	}, call.Failure)
	return f
}

// ThreadByIdentifier creates or looks up the thread with the given
// identifier. Like every write-only call it can only report completion.
func (f *Forum) ThreadByIdentifier(identifier, title string, calls ...dispatch.Call[dispatch.Void]) *Forum {
	call := dispatch.Classify(calls...)
	f.withForumKey(func(key string) {
		params := dispatch.Params{"forum_api_key": key, "identifier": identifier, "title": title}
		f.svc.dispatcher.Post(call, "thread_by_identifier", params)
	}, call.Failure)
	return f
}
