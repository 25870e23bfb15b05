package repository

import (
	"time"

	"disqus-client/models"
)

// Seed fills storage with a small forum so the stub endpoint has something to
// answer with.
func Seed(storage *Storage, forumKey string) {
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	forum := storage.AddForum(models.Forum{
		Shortname: "gophers",
		Name:      "Gophers",
		CreatedAt: models.DateOf(base),
	}, forumKey)

	news := storage.AddCategory(models.Category{Forum: forum.ID, Title: "General", Default: true})

	hello := storage.AddThread(models.Thread{
		Forum:         forum.ID,
		Category:      news.ID,
		Slug:          "hello-world",
		Title:         "Hello, world",
		URL:           "http://example.com/hello-world",
		AllowComments: true,
		CreatedAt:     models.DateOf(base.Add(time.Hour)),
	})
	release := storage.AddThread(models.Thread{
		Forum:         forum.ID,
		Category:      news.ID,
		Slug:          "release-notes",
		Title:         "Release notes",
		URL:           "http://example.com/release-notes",
		AllowComments: true,
		CreatedAt:     models.DateOf(base.Add(48 * time.Hour)),
	})

	first := storage.AddPost(models.Post{
		Forum:     forum.ID,
		Thread:    hello.ID,
		Message:   "First!",
		Shown:     true,
		CreatedAt: models.DateOf(base.Add(2 * time.Hour)),
	})
	storage.AddPost(models.Post{
		Forum:      forum.ID,
		Thread:     hello.ID,
		ParentPost: first.ID,
		Message:    "Welcome aboard.",
		Shown:      true,
		Points:     3,
		CreatedAt:  models.DateOf(base.Add(3 * time.Hour)),
	})
	storage.AddPost(models.Post{
		Forum:     forum.ID,
		Thread:    release.ID,
		Message:   "Buy cheap watches",
		Status:    models.PostSpam,
		CreatedAt: models.DateOf(base.Add(49 * time.Hour)),
	})
}
