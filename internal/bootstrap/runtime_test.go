package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"socialmanager/internal/cache"
	"socialmanager/internal/config"
	"socialmanager/internal/models"
	"socialmanager/internal/observability"
	"socialmanager/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listAll(t *testing.T, repo repository.PostRepository) []*models.Post {
	t.Helper()
	posts, err := repo.List(context.Background(), models.PostFilter{})
	require.NoError(t, err)
	return posts
}

func TestInitRuntime_MemoryWithSamples(t *testing.T) {
	cfg := &config.Config{StoreDriver: config.StoreMemory, SeedSamples: true}

	rt, err := InitRuntime(context.Background(), cfg, OptionsFromConfig(cfg))
	require.NoError(t, err)
	defer rt.Close()

	assert.Nil(t, rt.DB)
	assert.Nil(t, rt.Redis)
	posts := listAll(t, rt.Posts)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, models.StatusPublished, p.Status)
	}
}

func TestInitRuntime_RetiresListingsFromEarlierProcess(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	ns := cache.PostsListNamespace("sqlite", "")
	stale := ns + ":0"
	require.NoError(t, mr.Set(stale, `[{"id":9,"content":"left over"}]`))

	cfg := &config.Config{
		Env:         "test",
		StoreDriver: config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "posts.db"),
		RedisURL:    mr.Addr(),
	}
	ctx := context.Background()
	rt, err := InitRuntime(ctx, cfg, OptionsFromConfig(cfg))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = rt.Close()
		cache.SetClient(nil)
	})

	require.NotNil(t, rt.Redis)
	assert.False(t, mr.Exists(stale))
	assert.NotEqual(t, stale, cache.PostsListKey(ctx, ns))
}

func TestSeedIfEmpty_SetsStoredGauge(t *testing.T) {
	observability.PostsStored.Set(0)

	repo := repository.NewMemoryPostRepository()
	require.NoError(t, SeedIfEmpty(context.Background(), repo, nil, Options{SeedSamples: true}))
	assert.Equal(t, float64(2), testutil.ToFloat64(observability.PostsStored))
}

func TestInitRuntime_SetsStoredGaugeWithoutSeed(t *testing.T) {
	observability.PostsStored.Set(42)

	cfg := &config.Config{StoreDriver: config.StoreMemory}
	rt, err := InitRuntime(context.Background(), cfg, OptionsFromConfig(cfg))
	require.NoError(t, err)
	defer rt.Close()
	assert.Equal(t, float64(0), testutil.ToFloat64(observability.PostsStored))
}

func TestInitRuntime_SQLiteSeedsOnce(t *testing.T) {
	cfg := &config.Config{
		Env:         "test",
		StoreDriver: config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "posts.db"),
		SeedSamples: true,
	}
	ctx := context.Background()

	rt, err := InitRuntime(ctx, cfg, OptionsFromConfig(cfg))
	require.NoError(t, err)
	require.NotNil(t, rt.DB)
	assert.Len(t, listAll(t, rt.Posts), 2)

	// a second seed against a non-empty store is skipped
	require.NoError(t, SeedIfEmpty(ctx, rt.Posts, rt.DB, OptionsFromConfig(cfg)))
	assert.Len(t, listAll(t, rt.Posts), 2)

	next := &models.Post{Content: "after seed", Platforms: models.Platforms{models.PlatformTwitter}, Status: models.StatusDraft}
	require.NoError(t, rt.Posts.Create(ctx, next))
	assert.Equal(t, uint(3), next.ID)
	require.NoError(t, rt.Close())
}

func TestSeedIfEmpty_SeedFileWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")
	doc := "posts:\n  - content: from file\n    platforms: [instagram]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	repo := repository.NewMemoryPostRepository()
	require.NoError(t, SeedIfEmpty(context.Background(), repo, nil, Options{SeedSamples: true, SeedFile: path}))

	posts := listAll(t, repo)
	require.Len(t, posts, 1)
	assert.Equal(t, "from file", posts[0].Content)
	assert.Equal(t, models.StatusDraft, posts[0].Status)
}

func TestSeedIfEmpty_Disabled(t *testing.T) {
	repo := repository.NewMemoryPostRepository()
	require.NoError(t, SeedIfEmpty(context.Background(), repo, nil, Options{}))
	assert.Empty(t, listAll(t, repo))
}

func TestSeedIfEmpty_MissingFile(t *testing.T) {
	repo := repository.NewMemoryPostRepository()
	err := SeedIfEmpty(context.Background(), repo, nil, Options{SeedFile: filepath.Join(t.TempDir(), "nope.yml")})
	assert.Error(t, err)
}
