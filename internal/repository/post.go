// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"fmt"

	"socialmanager/internal/models"
	"socialmanager/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const pgUniqueViolation = "23505"

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
	// Update replaces every mutable field of an existing record and returns
	// models.ErrPostNotFound when no record has post.ID.
	Update(ctx context.Context, post *models.Post) error
	// Delete removes the record; a missing id is not an error.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	Backend() string
	// Instance distinguishes stores that share a backend name but not their
	// records. It is empty for stores shared between processes.
	Instance() string
}

// postRepository implements PostRepository on top of gorm.
type postRepository struct {
	db      *gorm.DB
	backend string
	logger  *observability.RepoLogger
}

// NewGormPostRepository creates a new gorm backed post repository
func NewGormPostRepository(db *gorm.DB) PostRepository {
	backend := "sql"
	if db != nil && db.Dialector != nil {
		backend = db.Dialector.Name()
	}
	return &postRepository{
		db:      db,
		backend: backend,
		logger:  observability.NewRepoLogger("posts"),
	}
}

func (r *postRepository) Backend() string { return r.backend }

func (r *postRepository) Instance() string { return "" }

func (r *postRepository) Create(ctx context.Context, post *models.Post) (err error) {
	defer observability.TrackStore("create", r.backend)()
	ctx, span := observability.StartStoreSpan(ctx, "create", r.backend)
	defer func() { observability.EndSpan(span, err) }()

	if err = r.db.WithContext(ctx).Create(post).Error; err != nil {
		r.logger.LogError(ctx, err, "create")
		if isDuplicateKey(err) {
			return models.NewConflictError("post already exists", err)
		}
		return fmt.Errorf("create post: %w", err)
	}
	r.logger.LogCreate(ctx, map[string]any{"id": post.ID, "status": post.Status})
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (_ *models.Post, err error) {
	defer observability.TrackStore("get", r.backend)()
	ctx, span := observability.StartStoreSpan(ctx, "get", r.backend)
	defer func() { observability.EndSpan(span, err) }()

	var post models.Post
	if err = r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter models.PostFilter) (_ []*models.Post, err error) {
	defer observability.TrackStore("list", r.backend)()
	ctx, span := observability.StartStoreSpan(ctx, "list", r.backend)
	defer func() { observability.EndSpan(span, err) }()

	q := r.db.WithContext(ctx).Model(&models.Post{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Platform != "" {
		// platforms is stored as a comma separated list
		q = q.Where("(',' || platforms || ',') LIKE ?", "%,"+string(filter.Platform)+",%")
	}

	posts := []*models.Post{}
	if err = q.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) (err error) {
	defer observability.TrackStore("update", r.backend)()
	ctx, span := observability.StartStoreSpan(ctx, "update", r.backend)
	defer func() { observability.EndSpan(span, err) }()

	result := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"content":            post.Content,
			"platforms":          post.Platforms,
			"status":             post.Status,
			"scheduled_date":     post.ScheduledDate,
			"analytics_likes":    post.Analytics.Likes,
			"analytics_shares":   post.Analytics.Shares,
			"analytics_comments": post.Analytics.Comments,
		})
	if err = result.Error; err != nil {
		r.logger.LogError(ctx, err, "update")
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	if result.RowsAffected == 0 {
		err = models.ErrPostNotFound
		return err
	}
	r.logger.LogUpdate(ctx, map[string]any{"id": post.ID, "status": post.Status})
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) (err error) {
	defer observability.TrackStore("delete", r.backend)()
	ctx, span := observability.StartStoreSpan(ctx, "delete", r.backend)
	defer func() { observability.EndSpan(span, err) }()

	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if err = result.Error; err != nil {
		r.logger.LogError(ctx, err, "delete")
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	r.logger.LogDelete(ctx, map[string]any{"id": id, "rows": result.RowsAffected})
	return nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
