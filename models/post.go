package models

// Moderation states a post can be in.
const (
	PostNew      = "new"
	PostApproved = "approved"
	PostSpam     = "spam"
	PostKilled   = "killed"
)

//easyjson:json
type Post struct {
	ID          ID     `json:"id"`
	Forum       ID     `json:"forum"`
	Thread      ID     `json:"thread"`
	ParentPost  ID     `json:"parent_post,omitempty"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Shown       bool   `json:"shown"`
	IsAnonymous bool   `json:"is_anonymous"`
	Points      int    `json:"points"`
	CreatedAt   Date   `json:"created_at,omitempty"`
	Extra       `json:"-"`
}

//easyjson:json
type Posts []Post
