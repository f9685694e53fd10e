package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
		mr.Close()
	})
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *[]string) func() error {
		return func() error {
			calls++
			*dest = []string{"a", "b"}
			return nil
		}
	}

	ns := PostsListNamespace("sqlite", "")
	key := PostsListKey(ctx, ns)
	assert.Equal(t, "posts:list:sqlite:0", key)

	var first []string
	require.NoError(t, Aside(ctx, key, &first, time.Minute, fetch(&first)))
	assert.Equal(t, []string{"a", "b"}, first)
	assert.True(t, mr.Exists(key))

	var second []string
	require.NoError(t, Aside(ctx, key, &second, time.Minute, fetch(&second)))
	assert.Equal(t, []string{"a", "b"}, second)
	assert.Equal(t, 1, calls, "second read must be served from cache")

	InvalidatePostsList(ctx, ns)
	assert.False(t, mr.Exists(key))
	assert.Equal(t, "posts:list:sqlite:1", PostsListKey(ctx, ns))
}

func TestPostsListKey_StaleWriteAfterInvalidateIsNeverRead(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()
	ns := PostsListNamespace("memory", "a1")

	// a reader picks its key, then a mutation lands before it writes back
	stale := PostsListKey(ctx, ns)
	InvalidatePostsList(ctx, ns)
	require.NoError(t, SetJSON(ctx, stale, []string{"gone"}, time.Minute))
	assert.True(t, mr.Exists(stale))

	var out []string
	require.NoError(t, Aside(ctx, PostsListKey(ctx, ns), &out, time.Minute, func() error {
		out = []string{}
		return nil
	}))
	assert.Empty(t, out)
}

func TestPostsListNamespace(t *testing.T) {
	assert.Equal(t, "posts:list:postgres", PostsListNamespace("postgres", ""))
	assert.Equal(t, "posts:list:memory:abc", PostsListNamespace("memory", "abc"))
	assert.NotEqual(t, PostsListNamespace("memory", "a"), PostsListNamespace("memory", "b"))
}

func TestAside_ZeroTTLBypassesCache(t *testing.T) {
	mr := useMiniredis(t)

	var out []string
	err := Aside(context.Background(), "posts:list:test:0", &out, 0, func() error {
		out = []string{"x"}
		return nil
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists("posts:list:test:0"))
}

func TestAside_FetchErrorIsReturned(t *testing.T) {
	useMiniredis(t)

	boom := errors.New("boom")
	var out []string
	err := Aside(context.Background(), "posts:list:test:0", &out, time.Minute, func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestHelpers_NilClientIsNoop(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, "k", 1, time.Minute))
	Invalidate(ctx, "k")
	InvalidatePostsList(ctx, "posts:list:memory")
	assert.Equal(t, "posts:list:memory:0", PostsListKey(ctx, "posts:list:memory"))
}

func TestInitRedis_EmptyAddressDisablesCache(t *testing.T) {
	InitRedis("")
	assert.Nil(t, GetClient())
}
