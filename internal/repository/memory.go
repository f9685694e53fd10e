package repository

import (
	"context"
	"sync"
	"time"

	"socialmanager/internal/models"
	"socialmanager/internal/observability"

	"github.com/google/uuid"
)

const memoryBackend = "memory"

// memoryPostRepository keeps posts in insertion order behind a RWMutex.
// Records are cloned on the way in and out.
type memoryPostRepository struct {
	mu     sync.RWMutex
	id     string
	posts  []*models.Post
	nextID uint
	now    func() time.Time
	logger *observability.RepoLogger
}

// NewMemoryPostRepository creates an empty in-process post repository.
func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{
		id:     uuid.NewString(),
		posts:  []*models.Post{},
		nextID: 1,
		now:    time.Now,
		logger: observability.NewRepoLogger("posts"),
	}
}

func (r *memoryPostRepository) Backend() string { return memoryBackend }

// Instance is unique per repository; the records die with the process.
func (r *memoryPostRepository) Instance() string { return r.id }

func (r *memoryPostRepository) indexOf(id uint) int {
	for i, p := range r.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *memoryPostRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackStore("create", memoryBackend)()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Seeded records may carry their own ids.
	if post.ID == 0 {
		post.ID = r.nextID
	} else if r.indexOf(post.ID) >= 0 {
		return models.NewConflictError("post id already in use", nil)
	}
	if post.ID >= r.nextID {
		r.nextID = post.ID + 1
	}

	now := r.now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	r.posts = append(r.posts, post.Clone())
	r.logger.LogCreate(ctx, map[string]any{"id": post.ID, "status": post.Status})
	return nil
}

func (r *memoryPostRepository) GetByID(_ context.Context, id uint) (*models.Post, error) {
	defer observability.TrackStore("get", memoryBackend)()

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrPostNotFound
	}
	return r.posts[i].Clone(), nil
}

func (r *memoryPostRepository) List(_ context.Context, filter models.PostFilter) ([]*models.Post, error) {
	defer observability.TrackStore("list", memoryBackend)()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if filter.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r *memoryPostRepository) Update(ctx context.Context, post *models.Post) error {
	defer observability.TrackStore("update", memoryBackend)()

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(post.ID)
	if i < 0 {
		return models.ErrPostNotFound
	}

	stored := post.Clone()
	stored.CreatedAt = r.posts[i].CreatedAt
	stored.UpdatedAt = r.now().UTC()
	r.posts[i] = stored

	post.CreatedAt = stored.CreatedAt
	post.UpdatedAt = stored.UpdatedAt
	r.logger.LogUpdate(ctx, map[string]any{"id": post.ID, "status": post.Status})
	return nil
}

func (r *memoryPostRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackStore("delete", memoryBackend)()

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	r.logger.LogDelete(ctx, map[string]any{"id": id})
	return nil
}

func (r *memoryPostRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}
