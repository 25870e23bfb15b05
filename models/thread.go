package models

//easyjson:json
type Thread struct {
	ID            ID     `json:"id"`
	Forum         ID     `json:"forum"`
	Category      ID     `json:"category,omitempty"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	AllowComments bool   `json:"allow_comments"`
	CreatedAt     Date   `json:"created_at,omitempty"`
	Extra         `json:"-"`
}

//easyjson:json
type Threads []Thread

// NumPosts maps a thread id to its [visible, total] post counts.
//
//easyjson:json
type NumPosts map[string][]int
