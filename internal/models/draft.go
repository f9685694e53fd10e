package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MediaAttachment is a file dropped onto the composer. Only its description is
// kept; the bytes are never read or stored.
type MediaAttachment struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

// Draft holds the uncommitted fields of a post being authored or edited.
type Draft struct {
	Content       string            `json:"content"`
	Platforms     Platforms         `json:"platforms"`
	ScheduledDate *time.Time        `json:"scheduled_date,omitempty"`
	Media         []MediaAttachment `json:"media"`
}

// NewDraft returns an empty draft.
func NewDraft() Draft {
	return Draft{
		Platforms: Platforms{},
		Media:     []MediaAttachment{},
	}
}

// DraftFromPost pre-fills a draft from an existing post. Media always starts empty.
func DraftFromPost(p *Post) Draft {
	d := NewDraft()
	d.Content = p.Content
	d.Platforms = p.Platforms.Clone()
	if p.ScheduledDate != nil {
		t := *p.ScheduledDate
		d.ScheduledDate = &t
	}
	return d
}

// CanSave is the save guard: trimmed content and at least one platform.
func (d Draft) CanSave() bool {
	return strings.TrimSpace(d.Content) != "" && len(d.Platforms) > 0
}

// CharacterCount counts runes in the content.
func (d Draft) CharacterCount() int {
	return utf8.RuneCountInString(d.Content)
}

// Remaining is the distance to ContentGuideline; negative when over.
func (d Draft) Remaining() int {
	return ContentGuideline - d.CharacterCount()
}

// Clone returns an independent copy.
func (d Draft) Clone() Draft {
	out := d
	out.Platforms = d.Platforms.Clone()
	if out.Platforms == nil {
		out.Platforms = Platforms{}
	}
	out.Media = append([]MediaAttachment{}, d.Media...)
	if d.ScheduledDate != nil {
		t := *d.ScheduledDate
		out.ScheduledDate = &t
	}
	return out
}
