package models

//go:generate easyjson forum.go category.go thread.go post.go response.go

//easyjson:json
type Forum struct {
	ID        ID     `json:"id"`
	Shortname string `json:"shortname"`
	Name      string `json:"name"`
	CreatedAt Date   `json:"created_at,omitempty"`
	Extra     `json:"-"`
}

//easyjson:json
type Forums []Forum
