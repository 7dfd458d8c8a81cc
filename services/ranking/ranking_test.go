package ranking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"arayWorlds/docstore"
	"arayWorlds/events"
	"arayWorlds/schema"
	"arayWorlds/services/ledger"
	"arayWorlds/services/nickname"
	"arayWorlds/services/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db       *docstore.Memory
	paths    schema.Paths
	ledger   ledger.Service
	nickname nickname.Service
	users    user.Service
}

func newFixture(t *testing.T, publisher events.Publisher) fixture {
	t.Helper()
	db := docstore.NewMemory(docstore.WithMaxAttempts(16))
	paths := schema.NewPaths("")
	l := ledger.NewService(db, paths, publisher)
	return fixture{
		db:       db,
		paths:    paths,
		ledger:   l,
		nickname: nickname.NewService(db, paths, publisher),
		users:    user.NewUserService(db, paths, l),
	}
}

func (f fixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	players := []struct {
		uid     string
		nick    string
		candies int64
		rio     int64
	}{
		{"u1", "Aray", 30, 4},
		{"u2", "", 50, 9},
		{"u3", "Yayo", 10, 0},
		{"u4", "Cole", 0, 2},
	}
	for _, p := range players {
		_, _, err := f.users.EnsureUser(ctx, p.uid, "")
		require.NoError(t, err)
		if p.nick != "" {
			_, err = f.nickname.ClaimNickname(ctx, p.uid, p.nick)
			require.NoError(t, err)
		}
		_, err = f.ledger.AddRewardDelta(ctx, p.uid, p.candies)
		require.NoError(t, err)
		_, err = f.ledger.UpdateBestLevel(ctx, p.uid, "rio", p.rio)
		require.NoError(t, err)
	}
}

func TestRewardsFromStore(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t)
	svc := NewService(f.db, f.paths, f.users, nil)

	entries, err := svc.Rewards(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Rank: 1, UserID: "u2", Nickname: AnonymousNickname, CandiesTotal: 50}, entries[0])
	assert.Equal(t, "Aray", entries[1].Nickname)
	assert.Equal(t, "Yayo", entries[2].Nickname)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestGameFromStoreJoinsProfiles(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t)
	svc := NewService(f.db, f.paths, f.users, nil)

	entries, err := svc.Game(context.Background(), "rio", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Rank: 1, UserID: "u2", Nickname: AnonymousNickname, CandiesTotal: 50, BestLevel: 9}, entries[0])
	assert.Equal(t, Entry{Rank: 2, UserID: "u1", Nickname: "Aray", CandiesTotal: 30, BestLevel: 4}, entries[1])

	empty, err := svc.Game(context.Background(), "skate", 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGameJoinsMoreThanOneChunk(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	for i := 0; i < getAllChunkSize*2+5; i++ {
		uid := fmt.Sprintf("p%03d", i)
		_, err := f.ledger.UpdateBestLevel(ctx, uid, "parque", int64(i+1))
		require.NoError(t, err)
		_, err = f.ledger.AddRewardDelta(ctx, uid, 1)
		require.NoError(t, err)
	}
	svc := NewService(f.db, f.paths, f.users, nil)

	entries, err := svc.Game(ctx, "parque", MaxLimit)
	require.NoError(t, err)
	require.Len(t, entries, getAllChunkSize*2+5)
	for _, e := range entries {
		assert.Equal(t, int64(1), e.CandiesTotal, e.UserID)
	}
	assert.Equal(t, "p064", entries[0].UserID)
}

func TestGameRequiresID(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewService(f.db, f.paths, f.users, nil)
	_, err := svc.Game(context.Background(), "", 0)
	require.Error(t, err)
}

func newCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCacheFromClient(client, schema.DefaultAppID), mr
}

func TestCacheOnlyRaisesScores(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.UpdateRewards(ctx, "u1", 10))
	require.NoError(t, cache.UpdateRewards(ctx, "u1", 4))
	require.NoError(t, cache.UpdateRewards(ctx, "u2", 7))

	top, err := cache.TopRewards(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []Score{{UserID: "u1", Value: 10}, {UserID: "u2", Value: 7}}, top)
}

func TestMirrorFollowsLedgerEvents(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()
	f := newFixture(t, bus)
	cache, _ := newCache(t)
	require.NoError(t, cache.Rebuild(context.Background(), f.db, f.paths))

	stream, cancel := bus.Subscribe(nil, 64)
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		cache.Mirror(ctx, stream)
	}()

	f.seed(t)
	cancel()
	<-done
	stop()

	svc := NewService(f.db, f.paths, f.users, cache)
	rewards, err := svc.Rewards(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rewards, 3)
	assert.Equal(t, "u2", rewards[0].UserID)
	assert.Equal(t, int64(50), rewards[0].CandiesTotal)

	game, err := svc.Game(context.Background(), "rio", 0)
	require.NoError(t, err)
	require.Len(t, game, 3)
	assert.Equal(t, int64(9), game[0].BestLevel)
	assert.Equal(t, "Aray", game[1].Nickname)
}

func TestRebuildAndFallback(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t)
	cache, mr := newCache(t)
	svc := NewService(f.db, f.paths, f.users, cache)
	ctx := context.Background()

	// empty cache falls back to the store
	fromStore, err := svc.Rewards(ctx, 0)
	require.NoError(t, err)
	require.Len(t, fromStore, 3)

	require.NoError(t, cache.Rebuild(ctx, f.db, f.paths))
	fromCache, err := svc.Rewards(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, fromStore, fromCache)

	// unreachable cache falls back as well
	mr.Close()
	game, err := svc.Game(ctx, "rio", 0)
	require.NoError(t, err)
	assert.Len(t, game, 3)
}

func TestPartialCacheIsNotTrusted(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t)
	cache, mr := newCache(t)
	svc := NewService(f.db, f.paths, f.users, cache)
	ctx := context.Background()

	// only one mirrored event reached Redis
	require.NoError(t, cache.UpdateRewards(ctx, "u3", 10))
	ready, err := cache.Ready(ctx)
	require.NoError(t, err)
	assert.False(t, ready)

	entries, err := svc.Rewards(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "u2", entries[0].UserID)

	require.NoError(t, cache.Refresh(ctx, f.db, f.paths))
	ready, err = cache.Ready(ctx)
	require.NoError(t, err)
	assert.True(t, ready)

	// a flush drops the marker with the boards
	mr.FlushAll()
	require.NoError(t, cache.UpdateGame(ctx, "rio", "u4", 2))
	game, err := svc.Game(ctx, "rio", 0)
	require.NoError(t, err)
	require.Len(t, game, 3)
	assert.Equal(t, "u2", game[0].UserID)
}

func TestMaintainRebuildsAfterFlush(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t)
	cache, mr := newCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		cache.Maintain(ctx, f.db, f.paths, 10*time.Millisecond)
	}()
	defer func() {
		cancel()
		<-done
	}()

	require.Eventually(t, func() bool {
		ready, err := cache.Ready(context.Background())
		return err == nil && ready
	}, 2*time.Second, 5*time.Millisecond)

	mr.FlushAll()
	require.Eventually(t, func() bool {
		top, err := cache.TopRewards(context.Background(), 10)
		return err == nil && len(top) == 3
	}, 2*time.Second, 5*time.Millisecond)
}
