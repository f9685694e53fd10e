package models

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	t.Parallel()

	when := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	zero := time.Time{}

	tests := []struct {
		name      string
		scheduled *time.Time
		expected  Status
	}{
		{"no schedule", nil, StatusDraft},
		{"zero time counts as empty", &zero, StatusDraft},
		{"scheduled", &when, StatusScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(tt.scheduled))
		})
	}
}

func TestPlatforms_ToggleIsItsOwnInverse(t *testing.T) {
	t.Parallel()

	start := Platforms{PlatformTwitter, PlatformLinkedIn}
	for _, p := range AllPlatforms {
		once := start.Toggle(p)
		twice := once.Toggle(p)
		assert.ElementsMatch(t, start, twice, "toggling %s twice", p)
	}

	assert.Equal(t, Platforms{PlatformTwitter}, start.Toggle(PlatformLinkedIn))
	assert.Equal(t, Platforms{PlatformTwitter, PlatformLinkedIn, PlatformFacebook}, start.Toggle(PlatformFacebook))
	assert.Equal(t, Platforms{PlatformTwitter, PlatformLinkedIn}, start, "toggle must not mutate the receiver")
}

func TestParsePlatforms(t *testing.T) {
	t.Parallel()

	ps, err := ParsePlatforms([]string{"Twitter", " linkedin", "twitter"})
	require.NoError(t, err)
	assert.Equal(t, Platforms{PlatformTwitter, PlatformLinkedIn}, ps)

	_, err = ParsePlatforms([]string{"myspace"})
	assert.True(t, errors.Is(err, ErrUnknownPlatform))
}

func TestPlatforms_ValueScan(t *testing.T) {
	t.Parallel()

	in := Platforms{PlatformInstagram, PlatformFacebook}
	v, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, "instagram,facebook", v)

	var out Platforms
	require.NoError(t, out.Scan([]byte("instagram,facebook")))
	assert.Equal(t, in, out)

	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out)

	assert.Error(t, out.Scan(42))
}

func TestPostFilter_Matches(t *testing.T) {
	t.Parallel()

	post := &Post{Platforms: Platforms{PlatformFacebook}, Status: StatusDraft}

	assert.True(t, PostFilter{}.Matches(post))
	assert.True(t, PostFilter{Platform: PlatformFacebook}.Matches(post))
	assert.False(t, PostFilter{Platform: PlatformTwitter}.Matches(post))
	assert.True(t, PostFilter{Status: StatusDraft}.Matches(post))
	assert.False(t, PostFilter{Platform: PlatformFacebook, Status: StatusPublished}.Matches(post))
}

func TestDraft_CanSave(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		platforms Platforms
		expected  bool
	}{
		{"whitespace only", "  ", Platforms{PlatformFacebook}, false},
		{"no platforms", "Hello", Platforms{}, false},
		{"valid", "Hello", Platforms{PlatformFacebook}, true},
		{"empty", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{Content: tt.content, Platforms: tt.platforms}
			assert.Equal(t, tt.expected, d.CanSave())
		})
	}
}

func TestDraft_CharacterCounter(t *testing.T) {
	t.Parallel()

	d := Draft{Content: "héllo 🚀"}
	assert.Equal(t, 7, d.CharacterCount())
	assert.Equal(t, ContentGuideline-7, d.Remaining())

	long := Draft{Content: strings.Repeat("x", ContentGuideline+5)}
	assert.Equal(t, -5, long.Remaining())
}

func TestDraftFromPost_CopiesAndResetsMedia(t *testing.T) {
	t.Parallel()

	when := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	post := &Post{ID: 3, Content: "hi", Platforms: Platforms{PlatformTwitter}, ScheduledDate: &when}

	d := DraftFromPost(post)
	assert.Equal(t, "hi", d.Content)
	assert.Equal(t, Platforms{PlatformTwitter}, d.Platforms)
	require.NotNil(t, d.ScheduledDate)
	assert.True(t, when.Equal(*d.ScheduledDate))
	assert.Empty(t, d.Media)

	d.Platforms[0] = PlatformFacebook
	assert.Equal(t, PlatformTwitter, post.Platforms[0], "draft must not alias the post")
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrPostNotFound, http.StatusNotFound, CodeNotFound},
		{"save disabled", ErrSaveDisabled, http.StatusBadRequest, CodeValidation},
		{"closed", ErrComposerClosed, http.StatusConflict, CodeConflict},
		{"app error", NewValidationError("bad"), http.StatusBadRequest, CodeValidation},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, appErr := Classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}
