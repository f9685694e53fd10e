package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"socialmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(content string, platforms ...models.Platform) *models.Post {
	return &models.Post{
		Content:   content,
		Platforms: models.Platforms(platforms),
		Status:    models.StatusDraft,
	}
}

func TestMemoryPostRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	first := newPost("one", models.PlatformTwitter)
	second := newPost("two", models.PlatformFacebook)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryPostRepository_CreateKeepsSeededIDs(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	seeded := newPost("seeded", models.PlatformLinkedIn)
	seeded.ID = 7
	require.NoError(t, repo.Create(ctx, seeded))

	next := newPost("next", models.PlatformLinkedIn)
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, uint(8), next.ID)

	dup := newPost("dup", models.PlatformLinkedIn)
	dup.ID = 7
	err := repo.Create(ctx, dup)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestMemoryPostRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	for _, c := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, newPost(c, models.PlatformTwitter)))
	}
	require.NoError(t, repo.Delete(ctx, 2))
	require.NoError(t, repo.Create(ctx, newPost("d", models.PlatformTwitter)))

	posts, err := repo.List(ctx, models.PostFilter{})
	require.NoError(t, err)

	var contents []string
	for _, p := range posts {
		contents = append(contents, p.Content)
	}
	assert.Equal(t, []string{"a", "c", "d"}, contents)
}

func TestMemoryPostRepository_ListFilter(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	scheduled := newPost("scheduled", models.PlatformTwitter, models.PlatformLinkedIn)
	scheduled.Status = models.StatusScheduled
	require.NoError(t, repo.Create(ctx, scheduled))
	require.NoError(t, repo.Create(ctx, newPost("draft", models.PlatformFacebook)))

	posts, err := repo.List(ctx, models.PostFilter{Platform: models.PlatformLinkedIn})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "scheduled", posts[0].Content)

	posts, err = repo.List(ctx, models.PostFilter{Status: models.StatusDraft})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "draft", posts[0].Content)
}

func TestMemoryPostRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	p := newPost("original", models.PlatformTwitter)
	require.NoError(t, repo.Create(ctx, p))
	p.Content = "mutated after create"
	p.Platforms[0] = models.PlatformFacebook

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Content)

	got.Platforms = append(got.Platforms, models.PlatformInstagram)
	again, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Platforms{models.PlatformTwitter}, again.Platforms)
}

func TestMemoryPostRepository_Update(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	p := newPost("before", models.PlatformTwitter)
	require.NoError(t, repo.Create(ctx, p))
	created := p.CreatedAt

	when := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	p.Content = "after"
	p.ScheduledDate = &when
	p.Status = models.StatusScheduled
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Content)
	assert.Equal(t, models.StatusScheduled, got.Status)
	assert.Equal(t, created, got.CreatedAt)

	missing := newPost("ghost", models.PlatformTwitter)
	missing.ID = 99
	assert.ErrorIs(t, repo.Update(ctx, missing), models.ErrPostNotFound)
}

func TestMemoryPostRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPost("a", models.PlatformTwitter)))
	require.NoError(t, repo.Delete(ctx, 1))
	require.NoError(t, repo.Delete(ctx, 1))
	require.NoError(t, repo.Delete(ctx, 42))

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, models.ErrPostNotFound)
}

func TestMemoryPostRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryPostRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, newPost("concurrent", models.PlatformTwitter))
		}()
	}
	wg.Wait()

	posts, err := repo.List(ctx, models.PostFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 50)

	seen := map[uint]bool{}
	for _, p := range posts {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}
