package models

//easyjson:json
type Category struct {
	ID      ID     `json:"id"`
	Forum   ID     `json:"forum"`
	Title   string `json:"title"`
	Default bool   `json:"default"`
	Extra   `json:"-"`
}

//easyjson:json
type Categories []Category
