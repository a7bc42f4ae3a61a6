package repository

import (
	"sync"
	"time"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/store"
)

// PostRepository holds the community board, most recent first.
type PostRepository struct {
	mu    sync.RWMutex
	store *store.Store
	log   *logger.Logger
	ids   *idGenerator
	posts []model.CommunityPost
}

func NewPostRepository(st *store.Store, log *logger.Logger) *PostRepository {
	r := &PostRepository{store: st, log: log, ids: newIDGenerator()}
	if _, err := st.Load(store.KeyCommunityPosts, &r.posts); err != nil {
		log.Warn("load community posts, starting empty", "error", err)
		r.posts = nil
	}
	return r
}

// Add assigns a fresh id and timestamp, prepends the post and persists.
func (r *PostRepository) Add(post model.CommunityPost) model.CommunityPost {
	post.ID = r.ids.Next()
	post.CreatedAt = time.Now()
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append([]model.CommunityPost{post}, r.posts...)
	r.persist()
	return post
}

// Like increments the like counter. Unknown ids are a silent no-op.
func (r *PostRepository) Like(id string) (model.CommunityPost, bool) {
	var liked model.CommunityPost
	ok := r.Update(id, func(post *model.CommunityPost) {
		post.Likes++
		liked = *post
	})
	return liked, ok
}

// Update applies a mutator to the post with the given id and persists.
// Unknown ids are a silent no-op.
func (r *PostRepository) Update(id string, mutate func(*model.CommunityPost)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			mutate(&r.posts[i])
			r.persist()
			return true
		}
	}
	return false
}

func (r *PostRepository) Find(id string) (model.CommunityPost, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, post := range r.posts {
		if post.ID == id {
			return post, true
		}
	}
	return model.CommunityPost{}, false
}

func (r *PostRepository) All() []model.CommunityPost {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CommunityPost, len(r.posts))
	copy(out, r.posts)
	return out
}

func (r *PostRepository) persist() {
	if err := r.store.Save(store.KeyCommunityPosts, r.posts); err != nil {
		r.log.Warn("persist community posts", "error", err)
	}
}
