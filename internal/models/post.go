// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state shown for a post.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	// StatusPublished only arrives through seed data; no operation produces it.
	StatusPublished Status = "published"
)

// ContentGuideline is the character count the composer counter measures
// against. It is informational and never enforced.
const ContentGuideline = 2200

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished:
		return true
	}
	return false
}

// ParseStatus normalizes and validates a status value.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// DeriveStatus computes the status of an authored post from its schedule.
func DeriveStatus(scheduledDate *time.Time) Status {
	if scheduledDate == nil || scheduledDate.IsZero() {
		return StatusDraft
	}
	return StatusScheduled
}

// Analytics holds engagement counters for a post.
type Analytics struct {
	Likes    int `gorm:"not null" json:"likes"`
	Shares   int `gorm:"not null" json:"shares"`
	Comments int `gorm:"not null" json:"comments"`
}

// Post is one authored piece of content and its target platforms.
type Post struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Platforms     Platforms  `gorm:"type:text;not null" json:"platforms"`
	Status        Status     `gorm:"type:varchar(20);not null;index" json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	Analytics     Analytics  `gorm:"embedded;embeddedPrefix:analytics_" json:"analytics"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Clone returns a deep copy so stored records are never shared with callers.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	out := *p
	out.Platforms = p.Platforms.Clone()
	if p.ScheduledDate != nil {
		t := *p.ScheduledDate
		out.ScheduledDate = &t
	}
	return &out
}

// PostFilter narrows a listing. Zero fields match everything.
type PostFilter struct {
	Platform Platform
	Status   Status
}

// IsZero reports whether the filter matches every post.
func (f PostFilter) IsZero() bool {
	return f.Platform == "" && f.Status == ""
}

// Matches reports whether p passes the filter.
func (f PostFilter) Matches(p *Post) bool {
	if f.Platform != "" && !p.Platforms.Contains(f.Platform) {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}
