package repository

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"disqus-client/models"
)

// Storage keeps the forums, threads and posts the stub endpoint serves.
type Storage struct {
	mu         sync.RWMutex
	userKey    string
	userName   string
	forums     map[models.ID]*forumRecord
	categories map[models.ID]models.Categories
	threads    map[models.ID]*models.Thread
	posts      map[models.ID]*models.Post
	lastID     int
	now        func() time.Time
}

type forumRecord struct {
	forum  models.Forum
	apiKey string
}

// PostFilter selects posts by moderation state and pages through them.
type PostFilter struct {
	CategoryID models.ID
	Limit      int
	Start      int
	Filter     []string
	Exclude    []string
}

func NewForumStorage(userKey, userName string) *Storage {
	return &Storage{
		userKey:    userKey,
		userName:   userName,
		forums:     make(map[models.ID]*forumRecord),
		categories: make(map[models.ID]models.Categories),
		threads:    make(map[models.ID]*models.Thread),
		posts:      make(map[models.ID]*models.Post),
		now:        time.Now,
	}
}

func (storage *Storage) CheckUserKey(key string) error {
	if key == "" || key != storage.userKey {
		return models.BadUserKey()
	}
	return nil
}

func (storage *Storage) UserName() string {
	return storage.userName
}

func (storage *Storage) nextID() models.ID {
	storage.lastID++
	return models.ID(strconv.Itoa(storage.lastID))
}

func (storage *Storage) AddForum(forum models.Forum, apiKey string) models.Forum {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	if forum.ID == "" {
		forum.ID = storage.nextID()
	}
	storage.forums[forum.ID] = &forumRecord{forum: forum, apiKey: apiKey}
	return forum
}

func (storage *Storage) AddCategory(category models.Category) models.Category {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	if category.ID == "" {
		category.ID = storage.nextID()
	}
	storage.categories[category.Forum] = append(storage.categories[category.Forum], category)
	return category
}

func (storage *Storage) AddThread(thread models.Thread) models.Thread {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	if thread.ID == "" {
		thread.ID = storage.nextID()
	}
	storage.threads[thread.ID] = &thread
	return thread
}

func (storage *Storage) AddPost(post models.Post) models.Post {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	if post.ID == "" {
		post.ID = storage.nextID()
	}
	if post.Status == "" {
		post.Status = models.PostNew
	}
	storage.posts[post.ID] = &post
	return post
}

func (storage *Storage) Forums() models.Forums {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	forums := models.Forums{}
	for _, record := range storage.forums {
		forums = append(forums, record.forum)
	}
	sort.Slice(forums, func(i, j int) bool { return lessID(forums[i].ID, forums[j].ID) })
	return forums
}

func (storage *Storage) ForumAPIKey(forumID models.ID) (string, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	record, ok := storage.forums[forumID]
	if !ok {
		return "", models.ForumNotFound(forumID.String())
	}
	return record.apiKey, nil
}

func (storage *Storage) ForumByAPIKey(key string) (models.Forum, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	for _, record := range storage.forums {
		if key != "" && record.apiKey == key {
			return record.forum, nil
		}
	}
	return models.Forum{}, models.BadForumKey()
}

func (storage *Storage) Categories(forumID models.ID) (models.Categories, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	if _, ok := storage.forums[forumID]; !ok {
		return nil, models.ForumNotFound(forumID.String())
	}
	return append(models.Categories{}, storage.categories[forumID]...), nil
}

func (storage *Storage) Threads(forumID, categoryID models.ID) (models.Threads, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	if _, ok := storage.forums[forumID]; !ok {
		return nil, models.ForumNotFound(forumID.String())
	}
	return storage.selectThreads(func(t *models.Thread) bool {
		return t.Forum == forumID && (categoryID == "" || t.Category == categoryID)
	}), nil
}

// UpdatedThreads returns the threads created or posted to at or after since.
func (storage *Storage) UpdatedThreads(forumID models.ID, since time.Time) (models.Threads, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	if _, ok := storage.forums[forumID]; !ok {
		return nil, models.ForumNotFound(forumID.String())
	}
	active := make(map[models.ID]bool)
	for _, post := range storage.posts {
		if !post.CreatedAt.Before(since) {
			active[post.Thread] = true
		}
	}
	return storage.selectThreads(func(t *models.Thread) bool {
		return t.Forum == forumID && (active[t.ID] || !t.CreatedAt.Before(since))
	}), nil
}

func (storage *Storage) ThreadByURL(forumID models.ID, url string) (models.Thread, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	for _, thread := range storage.threads {
		if thread.Forum == forumID && thread.URL == url {
			return *thread, nil
		}
	}
	return models.Thread{}, models.ThreadNotFound(url)
}

// ThreadByIdentifier returns the forum's thread with identifier, creating it
// when missing. created reports whether a new thread was made.
func (storage *Storage) ThreadByIdentifier(forumID models.ID, identifier, title string) (thread models.Thread, created bool, err error) {
	if identifier == "" {
		return models.Thread{}, false, models.MissingArgument("identifier")
	}

	storage.mu.Lock()
	defer storage.mu.Unlock()

	for _, t := range storage.threads {
		if t.Forum == forumID && t.Slug == identifier {
			return *t, false, nil
		}
	}
	t := &models.Thread{
		ID:            storage.nextID(),
		Forum:         forumID,
		Slug:          identifier,
		Title:         title,
		AllowComments: true,
		CreatedAt:     models.DateOf(storage.now()),
	}
	storage.threads[t.ID] = t
	return *t, true, nil
}

func (storage *Storage) ForumPosts(forumID models.ID, filter PostFilter) (models.Posts, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	if _, ok := storage.forums[forumID]; !ok {
		return nil, models.ForumNotFound(forumID.String())
	}
	return storage.selectPosts(filter, func(p *models.Post) bool {
		if p.Forum != forumID {
			return false
		}
		if filter.CategoryID == "" {
			return true
		}
		thread, ok := storage.threads[p.Thread]
		return ok && thread.Category == filter.CategoryID
	}), nil
}

func (storage *Storage) ThreadPosts(threadID models.ID, filter PostFilter) (models.Posts, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	if _, ok := storage.threads[threadID]; !ok {
		return nil, models.ThreadNotFound(threadID.String())
	}
	return storage.selectPosts(filter, func(p *models.Post) bool {
		return p.Thread == threadID
	}), nil
}

// NumPosts counts [visible, total] posts for each known thread id.
func (storage *Storage) NumPosts(threadIDs []models.ID) models.NumPosts {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	counts := models.NumPosts{}
	for _, id := range threadIDs {
		if _, ok := storage.threads[id]; ok {
			counts[id.String()] = []int{0, 0}
		}
	}
	for _, post := range storage.posts {
		c, ok := counts[post.Thread.String()]
		if !ok {
			continue
		}
		c[1]++
		if visible(post) {
			c[0]++
		}
	}
	return counts
}

var moderation = map[string]string{
	"spam":    models.PostSpam,
	"approve": models.PostApproved,
	"kill":    models.PostKilled,
}

func (storage *Storage) ModeratePost(postID models.ID, action string) error {
	status, ok := moderation[action]
	if !ok {
		return models.BadAction(action)
	}

	storage.mu.Lock()
	defer storage.mu.Unlock()

	post, ok := storage.posts[postID]
	if !ok {
		return models.PostNotFound(postID.String())
	}
	post.Status = status
	post.Shown = status == models.PostApproved || status == models.PostNew
	return nil
}

func (storage *Storage) Post(postID models.ID) (models.Post, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	post, ok := storage.posts[postID]
	if !ok {
		return models.Post{}, models.PostNotFound(postID.String())
	}
	return *post, nil
}

func (storage *Storage) selectThreads(keep func(*models.Thread) bool) models.Threads {
	threads := models.Threads{}
	for _, thread := range storage.threads {
		if keep(thread) {
			threads = append(threads, *thread)
		}
	}
	sort.Slice(threads, func(i, j int) bool { return lessID(threads[i].ID, threads[j].ID) })
	return threads
}

func (storage *Storage) selectPosts(filter PostFilter, keep func(*models.Post) bool) models.Posts {
	posts := models.Posts{}
	for _, post := range storage.posts {
		if keep(post) && statusMatches(post.Status, filter) {
			posts = append(posts, *post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt.Time) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt.Time)
		}
		return lessID(posts[i].ID, posts[j].ID)
	})
	return page(posts, filter.Start, filter.Limit)
}

func statusMatches(status string, filter PostFilter) bool {
	if len(filter.Filter) > 0 && !contains(filter.Filter, status) {
		return false
	}
	return !contains(filter.Exclude, status)
}

func visible(post *models.Post) bool {
	return post.Status == models.PostNew || post.Status == models.PostApproved
}

func page(posts models.Posts, start, limit int) models.Posts {
	if limit <= 0 {
		limit = 25
	}
	if start < 0 || start >= len(posts) {
		return models.Posts{}
	}
	end := start + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// lessID orders numeric ids numerically and everything else lexically.
func lessID(a, b models.ID) bool {
	x, errA := strconv.Atoi(string(a))
	y, errB := strconv.Atoi(string(b))
	if errA == nil && errB == nil {
		return x < y
	}
	return a < b
}
