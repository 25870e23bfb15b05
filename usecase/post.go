package usecase

import (
	"disqus-client/dispatch"
	"disqus-client/models"
)

// Moderation actions accepted by ModeratePost.
const (
	ActionSpam    = "spam"
	ActionApprove = "approve"
	ActionKill    = "kill"
)

type Post struct {
	models.Post
	svc *Service
}

// ModeratePost deletes the post or marks it as spam or not spam. The outcome
// cannot be known; Success only signals that the request completed.
func (p *Post) ModeratePost(action string, calls ...dispatch.Call[dispatch.Void]) *Post {
	params := dispatch.Params{"user_api_key": p.svc.UserKey(), "post_id": p.ID, "action": action}
	p.svc.dispatcher.Post(dispatch.Classify(calls...), "moderate_post", params)
	return p
}
