// Package service holds the post store operations used by the HTTP layer and
// the composer.
package service

import (
	"context"
	"time"

	"socialmanager/internal/cache"
	"socialmanager/internal/featureflags"
	"socialmanager/internal/models"
	"socialmanager/internal/notifications"
	"socialmanager/internal/observability"
	"socialmanager/internal/repository"
)

// EventPublisher receives a notification after every committed mutation.
type EventPublisher interface {
	PublishPostEvent(ctx context.Context, event notifications.PostEvent) error
}

type PostService struct {
	postRepo repository.PostRepository
	events   EventPublisher
	flags    *featureflags.Manager
	listTTL  time.Duration
	listNS   string
}

func NewPostService(
	postRepo repository.PostRepository,
	events EventPublisher,
	flags *featureflags.Manager,
	listTTL time.Duration,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		events:   events,
		flags:    flags,
		listTTL:  listTTL,
		listNS:   cache.PostsListNamespace(postRepo.Backend(), postRepo.Instance()),
	}
}

// CreateOrUpdate commits draft. A nil editingID appends a new post with zero
// analytics; otherwise the matching post keeps its ID and analytics and has
// the remaining fields replaced. Status is always derived from the schedule.
// Content and platforms are not validated here.
func (s *PostService) CreateOrUpdate(ctx context.Context, draft models.Draft, editingID *uint) (*models.Post, error) {
	if editingID == nil {
		return s.create(ctx, draft)
	}
	return s.update(ctx, *editingID, draft)
}

func (s *PostService) create(ctx context.Context, draft models.Draft) (*models.Post, error) {
	observability.LogServiceCall(ctx, "PostService", "Create", map[string]any{
		"platforms": draft.Platforms.Strings(),
	})

	d := draft.Clone()
	post := &models.Post{
		Content:       d.Content,
		Platforms:     d.Platforms,
		Status:        models.DeriveStatus(d.ScheduledDate),
		ScheduledDate: d.ScheduledDate,
		Analytics:     models.Analytics{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "create", notifications.EventPostCreated, post)
	return post.Clone(), nil
}

func (s *PostService) update(ctx context.Context, id uint, draft models.Draft) (*models.Post, error) {
	observability.LogServiceCall(ctx, "PostService", "Update", map[string]any{"id": id})

	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := draft.Clone()
	existing.Content = d.Content
	existing.Platforms = d.Platforms
	existing.ScheduledDate = d.ScheduledDate
	existing.Status = models.DeriveStatus(d.ScheduledDate)

	if err := s.postRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "update", notifications.EventPostUpdated, existing)
	return existing.Clone(), nil
}

// GetPost returns one post by ID.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// DeletePost removes a post. Deleting an unknown ID succeeds without effect.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	observability.LogServiceCall(ctx, "PostService", "Delete", map[string]any{"id": id})

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.afterMutation(ctx, "delete", notifications.EventPostDeleted, &models.Post{ID: id})
	return nil
}

// ListPosts returns posts in insertion order. The unfiltered listing is served
// cache-aside; filters are dropped when post_filters is off for subject.
func (s *PostService) ListPosts(ctx context.Context, filter models.PostFilter, subject string) ([]*models.Post, error) {
	if !s.FiltersEnabledFor(subject) {
		filter = models.PostFilter{}
	}

	if !filter.IsZero() {
		return s.postRepo.List(ctx, filter)
	}

	ttl := s.listTTL
	key := cache.PostsListKey(ctx, s.listNS)
	if key == "" {
		ttl = 0
	}

	posts := []*models.Post{}
	err := cache.Aside(ctx, key, &posts, ttl, func() error {
		list, err := s.postRepo.List(ctx, models.PostFilter{})
		if err != nil {
			return err
		}
		posts = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FiltersEnabledFor reports whether ListPosts honours its filter argument for
// subject, the caller the rollout is evaluated against.
func (s *PostService) FiltersEnabledFor(subject string) bool {
	return s.flags.EnabledFor(featureflags.PostFilters, subject)
}

// Backend names the store implementation in use.
func (s *PostService) Backend() string {
	return s.postRepo.Backend()
}

// Ready checks that the store answers a query.
func (s *PostService) Ready(ctx context.Context) error {
	_, err := s.postRepo.Count(ctx)
	return err
}

// afterMutation runs the best-effort side effects of a committed write.
func (s *PostService) afterMutation(ctx context.Context, op, eventType string, post *models.Post) {
	observability.RecordMutation(op)
	cache.InvalidatePostsList(ctx, s.listNS)

	if n, err := s.postRepo.Count(ctx); err == nil {
		observability.PostsStored.Set(float64(n))
	}

	if s.events == nil {
		return
	}
	event := notifications.PostEvent{
		Type:      eventType,
		PostID:    post.ID,
		Status:    string(post.Status),
		Platforms: post.Platforms.Strings(),
	}
	if err := s.events.PublishPostEvent(ctx, event); err != nil {
		observability.LogServiceError(ctx, "PostService", op, err)
	}
}
