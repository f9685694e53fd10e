package composer

import (
	"fmt"
	"strings"
	"sync"

	"socialmanager/internal/models"
)

// Section is a top-level area of the dashboard.
type Section string

const (
	SectionPosts     Section = "posts"
	SectionSchedule  Section = "schedule"
	SectionAnalytics Section = "analytics"
	SectionSettings  Section = "settings"
)

// Sections lists the sections in navigation order.
var Sections = []Section{SectionPosts, SectionSchedule, SectionAnalytics, SectionSettings}

// ParseSection normalizes and validates a section name.
func ParseSection(raw string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Sections {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownSection, raw)
}

// ViewState is the active section and whether the dialog is showing.
type ViewState struct {
	Section    Section `json:"section"`
	DialogOpen bool    `json:"dialog_open"`
}

// View tracks the active section. The dialog flag is read from the composer
// so the two never disagree.
type View struct {
	mu       sync.RWMutex
	section  Section
	composer *Composer
}

// NewView starts on the posts section.
func NewView(c *Composer) *View {
	return &View{section: SectionPosts, composer: c}
}

// Section returns the active section.
func (v *View) Section() Section {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.section
}

// SetSection switches sections. An unknown name keeps the current one.
func (v *View) SetSection(raw string) (ViewState, error) {
	s, err := ParseSection(raw)
	if err != nil {
		return v.State(), err
	}
	v.mu.Lock()
	v.section = s
	v.mu.Unlock()
	return v.State(), nil
}

// State returns the current view state.
func (v *View) State() ViewState {
	return ViewState{
		Section:    v.Section(),
		DialogOpen: v.composer != nil && v.composer.IsOpen(),
	}
}
