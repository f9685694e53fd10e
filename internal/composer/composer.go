// Package composer holds the interactive session state: the single authoring
// dialog, the pending delete confirmation and the active view section.
package composer

import (
	"context"
	"sync"
	"time"

	"socialmanager/internal/featureflags"
	"socialmanager/internal/models"
	"socialmanager/internal/observability"
)

// PostStore is the subset of the post service the composer commits through.
type PostStore interface {
	GetPost(ctx context.Context, id uint) (*models.Post, error)
	CreateOrUpdate(ctx context.Context, draft models.Draft, editingID *uint) (*models.Post, error)
	DeletePost(ctx context.Context, id uint) error
}

// Limits reports which selected platforms cannot carry content.
type Limits interface {
	OverLimit(content string, platforms models.Platforms) []models.Platform
}

// State is the dialog state.
type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
)

// Mode tells a create dialog from an edit dialog.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Snapshot is a copy of the composer state safe to hand to callers.
type Snapshot struct {
	State          State         `json:"state"`
	Mode           Mode          `json:"mode,omitempty"`
	EditingID      *uint         `json:"editing_id,omitempty"`
	Draft          *models.Draft `json:"draft,omitempty"`
	CanSave        bool          `json:"can_save"`
	CharacterCount int           `json:"character_count"`
	Remaining      int           `json:"remaining"`
	PendingDelete  *uint         `json:"pending_delete,omitempty"`

	// OverLimit lists selected platforms whose own character limit the
	// content exceeds. It is advisory and does not affect CanSave.
	OverLimit []models.Platform `json:"over_limit,omitempty"`
}

// Composer is the single live authoring dialog plus the delete prompt.
// At most one draft exists at a time.
type Composer struct {
	mu            sync.Mutex
	store         PostStore
	flags         *featureflags.Manager
	limits        Limits
	state         State
	draft         models.Draft
	editingID     *uint
	pendingDelete *uint
}

// New returns a closed composer committing through store. limits may be nil.
func New(store PostStore, flags *featureflags.Manager, limits Limits) *Composer {
	return &Composer{
		store:  store,
		flags:  flags,
		limits: limits,
		state:  StateClosed,
	}
}

// IsOpen reports whether the dialog is open.
func (c *Composer) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateOpen
}

// OpenCreate opens the dialog with an empty draft.
func (c *Composer) OpenCreate() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateOpen {
		return c.snapshotLocked(), models.ErrComposerOpen
	}
	c.state = StateOpen
	c.draft = models.NewDraft()
	c.editingID = nil

	observability.RecordComposerEvent("open_create")
	return c.snapshotLocked(), nil
}

// OpenEdit opens the dialog pre-filled from post id. An unknown id leaves the
// dialog closed.
func (c *Composer) OpenEdit(ctx context.Context, id uint) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateOpen {
		return c.snapshotLocked(), models.ErrComposerOpen
	}
	post, err := c.store.GetPost(ctx, id)
	if err != nil {
		return c.snapshotLocked(), err
	}

	c.state = StateOpen
	c.draft = models.DraftFromPost(post)
	editing := post.ID
	c.editingID = &editing

	observability.RecordComposerEvent("open_edit")
	return c.snapshotLocked(), nil
}

// Cancel closes the dialog and discards the draft without touching the store.
// Cancelling a closed dialog does nothing.
func (c *Composer) Cancel() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateOpen {
		c.closeLocked()
		observability.RecordComposerEvent("cancel")
	}
	return c.snapshotLocked()
}

// SetContent replaces the draft text.
func (c *Composer) SetContent(text string) (Snapshot, error) {
	return c.mutate(func(d *models.Draft) error {
		d.Content = text
		return nil
	})
}

// TogglePlatform adds p to the draft if absent or removes it if present.
// Callers normalize input with models.ParsePlatform first.
func (c *Composer) TogglePlatform(p models.Platform) (Snapshot, error) {
	if !p.Valid() {
		return c.Snapshot(), models.ErrUnknownPlatform
	}
	return c.mutate(func(d *models.Draft) error {
		d.Platforms = d.Platforms.Toggle(p)
		return nil
	})
}

// SetScheduledDate sets the schedule; nil clears it.
func (c *Composer) SetScheduledDate(when *time.Time) (Snapshot, error) {
	return c.mutate(func(d *models.Draft) error {
		if when == nil || when.IsZero() {
			d.ScheduledDate = nil
			return nil
		}
		t := when.UTC()
		d.ScheduledDate = &t
		return nil
	})
}

// Patch is a set of draft edits applied together. Nil fields are left alone.
type Patch struct {
	Content       *string
	ScheduledDate *time.Time
	ClearSchedule bool
}

// Apply makes every edit in p or none of them.
func (c *Composer) Apply(p Patch) (Snapshot, error) {
	return c.mutate(func(d *models.Draft) error {
		if p.Content != nil {
			d.Content = *p.Content
		}
		switch {
		case p.ClearSchedule:
			d.ScheduledDate = nil
		case p.ScheduledDate != nil:
			t := p.ScheduledDate.UTC()
			d.ScheduledDate = &t
		}
		return nil
	})
}

// AddMedia records a dropped file. Only the description is kept. The
// media_drop rollout is evaluated for subject.
func (c *Composer) AddMedia(att models.MediaAttachment, subject string) (Snapshot, error) {
	if !c.flags.EnabledFor(featureflags.MediaDrop, subject) {
		return c.Snapshot(), models.NewValidationError("media drop is disabled")
	}
	if att.Name == "" {
		return c.Snapshot(), models.NewValidationError("media name is required")
	}
	return c.mutate(func(d *models.Draft) error {
		d.Media = append(d.Media, att)
		return nil
	})
}

// RemoveMedia drops the first attachment called name. Unknown names are ignored.
func (c *Composer) RemoveMedia(name string) (Snapshot, error) {
	return c.mutate(func(d *models.Draft) error {
		for i, m := range d.Media {
			if m.Name == name {
				d.Media = append(d.Media[:i], d.Media[i+1:]...)
				break
			}
		}
		return nil
	})
}

// CanSave reports whether the open draft passes the save guard.
func (c *Composer) CanSave() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateOpen && c.draft.CanSave()
}

// Save commits the draft and closes the dialog. When the guard fails or the
// store rejects the write the dialog stays open with the draft intact.
func (c *Composer) Save(ctx context.Context) (*models.Post, Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOpen {
		return nil, c.snapshotLocked(), models.ErrComposerClosed
	}
	if !c.draft.CanSave() {
		observability.RecordComposerEvent("save_rejected")
		return nil, c.snapshotLocked(), models.ErrSaveDisabled
	}

	post, err := c.store.CreateOrUpdate(ctx, c.draft.Clone(), c.editingID)
	if err != nil {
		observability.RecordComposerEvent("save_failed")
		return nil, c.snapshotLocked(), err
	}

	c.closeLocked()
	observability.RecordComposerEvent("save")
	return post, c.snapshotLocked(), nil
}

// RequestDelete asks for confirmation before deleting id. A newer request
// replaces an older one.
func (c *Composer) RequestDelete(id uint) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := id
	c.pendingDelete = &pending
	observability.RecordComposerEvent("delete_requested")
	return c.snapshotLocked()
}

// ConfirmDelete answers the pending prompt. An affirmative answer deletes the
// post; a negative one only clears the prompt. With nothing pending it does
// nothing and reports deleted=false.
func (c *Composer) ConfirmDelete(ctx context.Context, affirmative bool) (id uint, deleted bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pendingDelete == nil {
		return 0, false, nil
	}
	id = *c.pendingDelete

	if !affirmative {
		c.pendingDelete = nil
		observability.RecordComposerEvent("delete_declined")
		return id, false, nil
	}

	if err := c.store.DeletePost(ctx, id); err != nil {
		return id, false, err
	}
	c.pendingDelete = nil
	observability.RecordComposerEvent("delete_confirmed")
	return id, true, nil
}

// Snapshot returns the current state.
func (c *Composer) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Composer) mutate(fn func(d *models.Draft) error) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOpen {
		return c.snapshotLocked(), models.ErrComposerClosed
	}
	if err := fn(&c.draft); err != nil {
		return c.snapshotLocked(), err
	}
	return c.snapshotLocked(), nil
}

func (c *Composer) closeLocked() {
	c.state = StateClosed
	c.draft = models.Draft{}
	c.editingID = nil
}

func (c *Composer) snapshotLocked() Snapshot {
	s := Snapshot{State: c.state}
	if c.pendingDelete != nil {
		pending := *c.pendingDelete
		s.PendingDelete = &pending
	}
	if c.state != StateOpen {
		return s
	}

	d := c.draft.Clone()
	s.Draft = &d
	s.Mode = ModeCreate
	if c.editingID != nil {
		editing := *c.editingID
		s.EditingID = &editing
		s.Mode = ModeEdit
	}
	s.CanSave = d.CanSave()
	s.CharacterCount = d.CharacterCount()
	s.Remaining = d.Remaining()
	if c.limits != nil {
		s.OverLimit = c.limits.OverLimit(d.Content, d.Platforms)
	}
	return s
}
