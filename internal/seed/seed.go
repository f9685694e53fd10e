// Package seed provides the sample posts a fresh store starts with, YAML
// imports, and fake drafts for demos. Seeding is the only path that can
// produce published posts.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"socialmanager/internal/models"
	"socialmanager/internal/repository"

	"gopkg.in/yaml.v3"
)

// Samples returns the two posts every fresh session starts with.
func Samples() []*models.Post {
	return []*models.Post{
		{
			ID:        1,
			Content:   "Check out our new product launch! 🚀 #innovation #tech",
			Platforms: models.Platforms{models.PlatformFacebook, models.PlatformLinkedIn, models.PlatformTwitter},
			Status:    models.StatusPublished,
			Analytics: models.Analytics{Likes: 245, Shares: 32, Comments: 18},
		},
		{
			ID:        2,
			Content:   "Behind the scenes at our office today 📸",
			Platforms: models.Platforms{models.PlatformInstagram, models.PlatformFacebook},
			Status:    models.StatusPublished,
			Analytics: models.Analytics{Likes: 189, Shares: 12, Comments: 24},
		},
	}
}

// Record is one post in a YAML seed file.
type Record struct {
	ID            uint       `yaml:"id"`
	Content       string     `yaml:"content"`
	Platforms     []string   `yaml:"platforms"`
	Status        string     `yaml:"status"`
	ScheduledDate *time.Time `yaml:"scheduled_date"`
	Analytics     struct {
		Likes    int `yaml:"likes"`
		Shares   int `yaml:"shares"`
		Comments int `yaml:"comments"`
	} `yaml:"analytics"`
}

type file struct {
	Posts []Record `yaml:"posts"`
}

// Parse decodes a seed document. An empty status is derived from the
// schedule; draft and scheduled must agree with it.
func Parse(data []byte) ([]*models.Post, error) {
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	posts := make([]*models.Post, 0, len(doc.Posts))
	for i, r := range doc.Posts {
		post, err := r.toPost()
		if err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i+1, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// LoadFile reads and parses a YAML seed file.
func LoadFile(path string) ([]*models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func (r Record) toPost() (*models.Post, error) {
	if strings.TrimSpace(r.Content) == "" {
		return nil, models.NewValidationError("content is required")
	}
	platforms, err := models.ParsePlatforms(r.Platforms)
	if err != nil {
		return nil, err
	}
	if len(platforms) == 0 {
		return nil, models.NewValidationError("at least one platform is required")
	}
	if r.Analytics.Likes < 0 || r.Analytics.Shares < 0 || r.Analytics.Comments < 0 {
		return nil, models.NewValidationError("analytics must be non-negative")
	}

	status := models.DeriveStatus(r.ScheduledDate)
	if r.Status != "" {
		status, err = models.ParseStatus(r.Status)
		if err != nil {
			return nil, err
		}
	}
	switch status {
	case models.StatusScheduled:
		if r.ScheduledDate == nil {
			return nil, models.NewValidationError("scheduled post needs scheduled_date")
		}
	case models.StatusDraft:
		if r.ScheduledDate != nil {
			return nil, models.NewValidationError("draft post cannot have scheduled_date")
		}
	}

	var scheduled *time.Time
	if r.ScheduledDate != nil {
		t := r.ScheduledDate.UTC()
		scheduled = &t
	}
	return &models.Post{
		ID:            r.ID,
		Content:       r.Content,
		Platforms:     platforms,
		Status:        status,
		ScheduledDate: scheduled,
		Analytics: models.Analytics{
			Likes:    r.Analytics.Likes,
			Shares:   r.Analytics.Shares,
			Comments: r.Analytics.Comments,
		},
	}, nil
}

// Apply inserts posts in order and returns how many were written.
func Apply(ctx context.Context, repo repository.PostRepository, posts []*models.Post) (int, error) {
	for i, p := range posts {
		if err := repo.Create(ctx, p.Clone()); err != nil {
			return i, fmt.Errorf("apply seed post %d: %w", i+1, err)
		}
	}
	return len(posts), nil
}
