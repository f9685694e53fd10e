package composer

import (
	"testing"

	"socialmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_DefaultsToPosts(t *testing.T) {
	v := NewView(nil)
	assert.Equal(t, ViewState{Section: SectionPosts}, v.State())
}

func TestView_SetSection(t *testing.T) {
	v := NewView(nil)

	state, err := v.SetSection(" Analytics")
	require.NoError(t, err)
	assert.Equal(t, SectionAnalytics, state.Section)

	state, err = v.SetSection("inbox")
	assert.ErrorIs(t, err, models.ErrUnknownSection)
	assert.Equal(t, SectionAnalytics, state.Section)
}

func TestView_DialogFlagMirrorsComposer(t *testing.T) {
	c, _ := newTestComposer(t, "")
	v := NewView(c)
	assert.False(t, v.State().DialogOpen)

	_, err := c.OpenCreate()
	require.NoError(t, err)
	assert.True(t, v.State().DialogOpen)

	c.Cancel()
	assert.False(t, v.State().DialogOpen)
}
