package user

import (
	"context"
	"testing"

	"arayWorlds/docstore"
	"arayWorlds/schema"
	"arayWorlds/services/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (Service, ledger.Service, *docstore.Memory) {
	db := docstore.NewMemory()
	paths := schema.NewPaths("")
	levels := ledger.NewService(db, paths, nil)
	return NewUserService(db, paths, levels), levels, db
}

func TestEnsureUserCreatesDefaults(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, created, err := svc.EnsureUser(ctx, "u1", "aray@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "aray@example.com", u.Email)
	assert.Empty(t, u.Nickname)
	assert.Zero(t, u.CandiesTotal)
	assert.True(t, u.SoundEnabled)
	assert.True(t, u.MusicEnabled)
	assert.False(t, u.CreatedAt.IsZero())

	_, created, err = svc.EnsureUser(ctx, "u1", "")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureUserKeepsExistingValues(t *testing.T) {
	svc, levels, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.EnsureUser(ctx, "u1", "aray@example.com")
	require.NoError(t, err)
	_, err = levels.AddRewardDelta(ctx, "u1", 9)
	require.NoError(t, err)
	require.NoError(t, svc.SetAudioPreferences(ctx, "u1", AudioPreferences{Sound: false, Music: true}))

	u, created, err := svc.EnsureUser(ctx, "u1", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(9), u.CandiesTotal)
	assert.Equal(t, "aray@example.com", u.Email)
	assert.False(t, u.SoundEnabled)
	assert.True(t, u.MusicEnabled)
}

func TestEnsureUserBackfillsAudioPreferences(t *testing.T) {
	svc, _, db := newTestService()
	ctx := context.Background()
	key := schema.NewPaths("").User("legacy")

	require.NoError(t, db.Set(ctx, key, docstore.Fields{
		schema.FieldUID:          "legacy",
		schema.FieldCandiesTotal: int64(3),
		schema.FieldMusicEnabled: false,
	}, docstore.Replace))

	_, created, err := svc.EnsureUser(ctx, "legacy", "")
	require.NoError(t, err)
	assert.False(t, created)

	snap, err := db.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, snap.Has(schema.FieldSoundEnabled))
	assert.True(t, snap.Bool(schema.FieldSoundEnabled, false))
	assert.False(t, snap.Bool(schema.FieldMusicEnabled, true))
	assert.Equal(t, int64(3), snap.Int64(schema.FieldCandiesTotal))
}

func TestEnsureUserCompletesPartialProfile(t *testing.T) {
	svc, levels, db := newTestService()
	ctx := context.Background()
	key := schema.NewPaths("").User("u1")

	_, err := levels.UpdateBestLevel(ctx, "u1", "rio", 2)
	require.NoError(t, err)
	_, err = levels.AddRewardDelta(ctx, "u1", 5)
	require.NoError(t, err)

	snap, err := db.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, snap.Exists)
	assert.False(t, snap.Has(schema.FieldUID))
	assert.False(t, snap.Has(schema.FieldCreatedAt))

	u, created, err := svc.EnsureUser(ctx, "u1", "aray@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(5), u.CandiesTotal)
	assert.False(t, u.CreatedAt.IsZero())

	snap, err = db.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "u1", snap.String(schema.FieldUID))
	_, hasNick := snap.Data[schema.FieldNick]
	assert.True(t, hasNick)
	assert.True(t, snap.Bool(schema.FieldSoundEnabled, false))
}

func TestEnsureUserBackfillsMissingTotal(t *testing.T) {
	svc, _, db := newTestService()
	ctx := context.Background()
	key := schema.NewPaths("").User("u2")
	require.NoError(t, db.Set(ctx, key, docstore.Fields{schema.FieldNick: "Yayo"}, docstore.Replace))

	_, _, err := svc.EnsureUser(ctx, "u2", "")
	require.NoError(t, err)

	snap, err := db.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, snap.Has(schema.FieldCandiesTotal))
	assert.Zero(t, snap.Int64(schema.FieldCandiesTotal))
	assert.Equal(t, "Yayo", snap.String(schema.FieldNick))
}

func TestGetUserNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.GetUser(context.Background(), "ghost")
	require.ErrorIs(t, err, NotFound)
	assert.True(t, IsNotFound(err))
}

func TestStateIsASnapshot(t *testing.T) {
	svc, levels, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.EnsureUser(ctx, "u1", "")
	require.NoError(t, err)
	_, err = levels.UpdateBestLevel(ctx, "u1", "cole", 4)
	require.NoError(t, err)

	state, err := svc.State(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"cole": 4}, state.BestLevels)

	_, err = levels.UpdateBestLevel(ctx, "u1", "cole", 8)
	require.NoError(t, err)
	assert.Equal(t, int64(4), state.BestLevels["cole"])
}

func TestGetUsersSkipsMissing(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.EnsureUser(ctx, "u1", "")
	require.NoError(t, err)

	users, err := svc.GetUsers(ctx, []string{"u1", "nobody"})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Contains(t, users, "u1")
}
