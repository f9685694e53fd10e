package catalog

import (
	"strings"
	"testing"
	"time"

	"socialmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalogue(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, len(models.AllPlatforms))
	for _, p := range models.AllPlatforms {
		_, err := c.Get(p)
		assert.NoError(t, err, "missing %s", p)
	}

	tests := []struct {
		platform models.Platform
		requests int
		window   time.Duration
		chars    int
	}{
		{models.PlatformFacebook, 200, time.Hour, 63206},
		{models.PlatformInstagram, 240, time.Hour, 2200},
		{models.PlatformLinkedIn, 500, 24 * time.Hour, 3000},
		{models.PlatformTwitter, 300, 15 * time.Minute, 280},
	}
	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			info, err := c.Get(tt.platform)
			require.NoError(t, err)
			assert.Equal(t, tt.requests, info.RateLimit.Requests)
			assert.Equal(t, tt.window, info.RateLimit.Window)
			assert.Equal(t, tt.window.String(), info.RateLimit.WindowText)
			assert.Equal(t, tt.chars, info.CharacterLimit)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, err = c.Get(models.Platform("myspace"))
	assert.ErrorIs(t, err, models.ErrUnknownPlatform)
}

func TestList_ReturnsCopy(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	list := c.List()
	list[0].DisplayName = "changed"
	assert.NotEqual(t, "changed", c.List()[0].DisplayName)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown platform", "platforms:\n  - name: myspace\n"},
		{"duplicate", "platforms:\n  - name: twitter\n  - name: Twitter\n"},
		{"bad yaml", "platforms: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestPlatformInfo_Fits(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	twitter, err := c.Get(models.PlatformTwitter)
	require.NoError(t, err)

	assert.True(t, twitter.Fits("Launch day!"))
	assert.True(t, twitter.Fits(strings.Repeat("a", 280)))
	assert.False(t, twitter.Fits(strings.Repeat("a", 281)))
}

func TestOverLimit(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	selected := models.Platforms{models.PlatformLinkedIn, models.PlatformTwitter, models.PlatformFacebook}
	assert.Empty(t, c.OverLimit("short", selected))
	assert.Equal(t, []models.Platform{models.PlatformTwitter}, c.OverLimit(strings.Repeat("a", 281), selected))
	assert.Equal(t,
		[]models.Platform{models.PlatformLinkedIn, models.PlatformTwitter},
		c.OverLimit(strings.Repeat("a", 3001), selected))
}
