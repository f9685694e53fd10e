package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"socialmanager/internal/config"
	"socialmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}

	err = configurePool(db, cfg)
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)

	stats := sqlDB.Stats()
	assert.Equal(t, 10, stats.MaxOpenConnections)
}

func TestConnect_SQLite(t *testing.T) {
	cfg := &config.Config{
		Env:         "test",
		StoreDriver: config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "posts.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.True(t, db.Migrator().HasTable(&models.Post{}))
	assert.True(t, db.Migrator().HasColumn(&models.Post{}, "analytics_likes"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.PingContext(ctx))
}

func TestConnect_MemoryDriverHasNoDatabase(t *testing.T) {
	_, err := Connect(&config.Config{StoreDriver: config.StoreMemory})
	assert.Error(t, err)
}

func TestCustomGormLogger_LogModeCopies(t *testing.T) {
	base := newGormLogger()
	silent := base.LogMode(1)

	assert.NotSame(t, base, silent)
	assert.Equal(t, 1, int(silent.(*CustomGormLogger).Config.LogLevel))
	assert.NotEqual(t, 1, int(base.Config.LogLevel))
}

func TestSyncPostSequence_SkipsNonPostgres(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	assert.NoError(t, SyncPostSequence(db))
	assert.NoError(t, SyncPostSequence(nil))
}

func TestConnectWithOptions_SkipsSchema(t *testing.T) {
	cfg := &config.Config{
		Env:         "test",
		StoreDriver: config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "posts.db"),
	}

	db, err := ConnectWithOptions(cfg, ConnectOptions{ApplySchema: false})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	status, err := GetSchemaStatus(db)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Driver)
	assert.False(t, status.HasPosts)

	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.Post{Content: "x", Platforms: models.Platforms{models.PlatformTwitter}, Status: models.StatusDraft}).Error)

	status, err = GetSchemaStatus(db)
	require.NoError(t, err)
	assert.True(t, status.HasPosts)
	assert.Equal(t, int64(1), status.PostCount)
}
