// Package usecase is the public method surface of the comment API client.
//
// Every method returns its receiver as soon as the request is issued; the
// outcome arrives later through the call's Success or Failure callback, on the
// dispatcher's loop.
package usecase

import (
	"sync"

	"disqus-client/dispatch"
	"disqus-client/models"
)

// DefaultUserKeyURL is where a user looks up their user API key.
const DefaultUserKeyURL = "http://disqus.com/api/get_my_key/"

// Service is the top-level namespace. It holds the user-level credential
// shared by every call.
type Service struct {
	dispatcher *dispatch.Dispatcher
	userKeyURL string

	mu      sync.RWMutex
	userKey string
}

func NewService(dispatcher *dispatch.Dispatcher, userKeyURL string) *Service {
	if userKeyURL == "" {
		userKeyURL = DefaultUserKeyURL
	}
	return &Service{dispatcher: dispatcher, userKeyURL: userKeyURL}
}

func (s *Service) Dispatcher() *dispatch.Dispatcher { return s.dispatcher }

func (s *Service) UserKeyURL() string { return s.userKeyURL }

func (s *Service) SetLogger(fn dispatch.LogFunc) *Service {
	s.dispatcher.SetSink(fn)
	return s
}

func (s *Service) SetUserKey(key string) *Service {
	s.mu.Lock()
	s.userKey = key
	s.mu.Unlock()
	return s
}

func (s *Service) UserKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userKey
}

func (s *Service) userParams() dispatch.Params {
	return dispatch.Params{"user_api_key": s.UserKey()}
}

// GetUserName asks for the user name behind the user key. The answer cannot
// be read back; Success only signals that the request completed.
func (s *Service) GetUserName(calls ...dispatch.Call[dispatch.Void]) *Service {
	s.dispatcher.Post(dispatch.Classify(calls...), "get_user_name", s.userParams())
	return s
}

func (s *Service) GetForumList(calls ...dispatch.Call[[]*Forum]) *Service {
	dispatch.Get(s.dispatcher, dispatch.Classify(calls...), "get_forum_list", s.userParams(), s.shapeForums)
	return s
}

// GetNumPosts fetches [visible, total] post counts for each thread id.
func (s *Service) GetNumPosts(threadIDs []string, calls ...dispatch.Call[models.NumPosts]) *Service {
	params := s.userParams()
	params["thread_ids"] = threadIDs
	dispatch.Get(s.dispatcher, dispatch.Classify(calls...), "get_num_posts", params, models.Shape[models.NumPosts])
	return s
}

// Forum wraps a known forum record into a handle with no cached forum key.
func (s *Service) Forum(f models.Forum) *Forum {
	return &Forum{Forum: f, svc: s}
}

func (s *Service) Thread(t models.Thread) *Thread {
	return &Thread{Thread: t, svc: s}
}

func (s *Service) Post(p models.Post) *Post {
	return &Post{Post: p, svc: s}
}

func (s *Service) shapeForums(raw []byte) ([]*Forum, error) {
	list, err := models.Shape[models.Forums](raw)
	if err != nil {
		return nil, err
	}
	out := make([]*Forum, len(list))
	for i := range list {
		out[i] = s.Forum(list[i])
	}
	return out, nil
}

func (s *Service) shapeThread(raw []byte) (*Thread, error) {
	t, err := models.Shape[models.Thread](raw)
	if err != nil {
		return nil, err
	}
	return s.Thread(t), nil
}

func (s *Service) shapeThreads(raw []byte) ([]*Thread, error) {
	list, err := models.Shape[models.Threads](raw)
	if err != nil {
		return nil, err
	}
	out := make([]*Thread, len(list))
	for i := range list {
		out[i] = s.Thread(list[i])
	}
	return out, nil
}

func (s *Service) shapePosts(raw []byte) ([]*Post, error) {
	list, err := models.Shape[models.Posts](raw)
	if err != nil {
		return nil, err
	}
	out := make([]*Post, len(list))
	for i := range list {
		out[i] = s.Post(list[i])
	}
	return out, nil
}

func shapeCategories(raw []byte) ([]*models.Category, error) {
	list, err := models.Shape[models.Categories](raw)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Category, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out, nil
}

func shapeText(raw []byte) (string, error) {
	t, err := models.Shape[models.Text](raw)
	return string(t), err
}
