package ledger

import (
	"context"
	"math"
	"math/rand"
	"sync/atomic"
	"testing"

	"arayWorlds/apperror"
	"arayWorlds/docstore"
	"arayWorlds/events"
	"arayWorlds/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// countingStore records how many calls reach the wrapped store.
type countingStore struct {
	docstore.Store
	calls atomic.Int64
}

func (c *countingStore) Get(ctx context.Context, key docstore.Key) (*docstore.Snapshot, error) {
	c.calls.Add(1)
	return c.Store.Get(ctx, key)
}

func (c *countingStore) Set(ctx context.Context, key docstore.Key, fields docstore.Fields, mode docstore.SetMode) error {
	c.calls.Add(1)
	return c.Store.Set(ctx, key, fields, mode)
}

func (c *countingStore) RunTransaction(ctx context.Context, fn docstore.TxFunc) error {
	c.calls.Add(1)
	return c.Store.RunTransaction(ctx, fn)
}

func (c *countingStore) Query(ctx context.Context, q docstore.Query) ([]*docstore.Snapshot, error) {
	c.calls.Add(1)
	return c.Store.Query(ctx, q)
}

func newTestService(t *testing.T) (Service, *docstore.Memory, *events.Bus) {
	t.Helper()
	db := docstore.NewMemory(docstore.WithMaxAttempts(128))
	bus := events.NewBus()
	t.Cleanup(bus.Close)
	return NewService(db, schema.NewPaths(""), bus), db, bus
}

func TestUpdateBestLevelConcurrentKeepsMaximum(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	proposals := make([]int64, 40)
	var want int64
	for i := range proposals {
		proposals[i] = rand.Int63n(100)
		if proposals[i] > want {
			want = proposals[i]
		}
	}

	var g errgroup.Group
	for _, level := range proposals {
		level := level
		g.Go(func() error {
			_, err := svc.UpdateBestLevel(ctx, "u1", "rio", level)
			return err
		})
	}
	require.NoError(t, g.Wait())

	got, err := svc.GetBestLevel(ctx, "u1", "rio")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAddRewardDeltaConcurrentLosesNothing(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Set(ctx, schema.NewPaths("").User("u1"), docstore.Fields{
		schema.FieldCandiesTotal: int64(7),
	}, docstore.Merge))

	var g errgroup.Group
	var sum int64
	for i := 1; i <= 25; i++ {
		delta := int64(i)
		sum += delta
		g.Go(func() error {
			_, err := svc.AddRewardDelta(ctx, "u1", delta)
			return err
		})
	}
	require.NoError(t, g.Wait())

	total, err := svc.GetRewardTotal(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 7+sum, total)
}

func TestUpdateBestLevelIgnoresLowerLevels(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.UpdateBestLevel(ctx, "u1", "skate", 3)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Status: StatusChanged, Previous: 0, Value: 3}, first)

	second, err := svc.UpdateBestLevel(ctx, "u1", "skate", 2)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Status: StatusUnchanged, Previous: 3, Value: 3}, second)

	same, err := svc.UpdateBestLevel(ctx, "u1", "skate", 3)
	require.NoError(t, err)
	assert.False(t, same.Changed())

	level, err := svc.GetBestLevel(ctx, "u1", "skate")
	require.NoError(t, err)
	assert.Equal(t, int64(3), level)
}

func TestUpdateBestLevelCreatesRecordOnFirstCompletion(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	paths := schema.NewPaths("")

	out, err := svc.UpdateBestLevel(ctx, "u1", "yayos", 4)
	require.NoError(t, err)
	assert.True(t, out.Changed())

	snap, err := db.Get(ctx, paths.ProgressDoc("u1", "yayos"))
	require.NoError(t, err)
	require.True(t, snap.Exists)
	assert.Equal(t, int64(4), snap.Int64(schema.FieldBestLevel))
	assert.Equal(t, "u1", snap.String(schema.FieldUID))
	assert.Equal(t, "yayos", snap.String(schema.FieldGameID))
	assert.False(t, snap.Time(schema.FieldUpdatedAt).IsZero())

	user, err := db.Get(ctx, paths.User("u1"))
	require.NoError(t, err)
	assert.False(t, user.Time(schema.FieldLastSeen).IsZero())
}

func TestUnauthenticatedCallsNeverTouchTheStore(t *testing.T) {
	db := &countingStore{Store: docstore.NewMemory()}
	svc := NewService(db, schema.NewPaths(""), nil)
	ctx := context.Background()

	out, err := svc.UpdateBestLevel(ctx, "", "g1", 10)
	require.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.Equal(t, StatusUnauthenticated, out.Status)

	out, err = svc.AddRewardDelta(ctx, "", 5)
	require.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.Equal(t, StatusUnauthenticated, out.Status)

	_, err = svc.GetAllBestLevels(ctx, "")
	require.ErrorIs(t, err, apperror.ErrUnauthenticated)

	assert.Zero(t, db.calls.Load())
	mem := db.Store.(*docstore.Memory)
	assert.Zero(t, mem.Len(schema.NewPaths("").Progress()))
	assert.Zero(t, mem.Len(schema.NewPaths("").Users()))
}

func TestInvalidInputIsRejectedBeforeAnyWrite(t *testing.T) {
	db := &countingStore{Store: docstore.NewMemory()}
	svc := NewService(db, schema.NewPaths(""), nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		gameID string
		level  int64
	}{
		{"negative level", "rio", -1},
		{"empty game", "", 3},
		{"slash in game", "rio/x", 3},
		{"underscore in game", "b_c", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateBestLevel(ctx, "u1", tt.gameID, tt.level)
			require.ErrorIs(t, err, apperror.ErrValidation)
		})
	}

	_, err := svc.AddRewardDelta(ctx, "u1", -3)
	require.ErrorIs(t, err, apperror.ErrValidation)
	_, err = svc.AddRewardDelta(ctx, "u1", MaxRewardDelta+1)
	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.Zero(t, db.calls.Load())
}

func TestAddRewardDeltaZeroIsUnchanged(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.AddRewardDelta(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Status: StatusUnchanged}, out)
	assert.Zero(t, db.Len(schema.NewPaths("").Users()))

	out, err = svc.AddRewardDelta(ctx, "u1", 12)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Status: StatusChanged, Previous: 0, Value: 12}, out)
}

func TestGetAllBestLevelsOnlyReturnsCallerGames(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for gameID, level := range map[string]int64{"rio": 2, "cole": 5, "parque": 1} {
		_, err := svc.UpdateBestLevel(ctx, "u1", gameID, level)
		require.NoError(t, err)
	}
	_, err := svc.UpdateBestLevel(ctx, "u2", "rio", 9)
	require.NoError(t, err)

	levels, err := svc.GetAllBestLevels(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"rio": 2, "cole": 5, "parque": 1}, levels)
}

func TestChangesArePublished(t *testing.T) {
	svc, _, bus := newTestService(t)
	ctx := context.Background()

	ch, cancel := bus.Subscribe(events.ForUser("u1"), 8)
	defer cancel()

	_, err := svc.UpdateBestLevel(ctx, "u1", "edificio", 6)
	require.NoError(t, err)
	_, err = svc.UpdateBestLevel(ctx, "u1", "edificio", 2)
	require.NoError(t, err)
	_, err = svc.AddRewardDelta(ctx, "u1", 4)
	require.NoError(t, err)

	first := (<-ch).(events.BestLevelChanged)
	assert.Equal(t, "edificio", first.GameID)
	assert.Equal(t, int64(6), first.NewLevel)

	second := (<-ch).(events.RewardTotalChanged)
	assert.Equal(t, int64(4), second.Delta)
	assert.Equal(t, int64(4), second.NewTotal)
	assert.Empty(t, ch)
}

func TestRewardTotalNeverWrapsAround(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	key := schema.NewPaths("").User("u1")
	require.NoError(t, db.Set(ctx, key, docstore.Fields{schema.FieldCandiesTotal: int64(math.MaxInt64 - 10)}, docstore.Merge))

	out, err := svc.AddRewardDelta(ctx, "u1", MaxRewardDelta)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), out.Value)
	assert.Positive(t, out.Previous)

	total, err := svc.GetRewardTotal(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), total)
}

func TestProgressOfDifferentUsersNeverShareARecord(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateBestLevel(ctx, "a_b", "c", 5)
	require.NoError(t, err)
	_, err = svc.UpdateBestLevel(ctx, "a", "b_c", 3)
	require.ErrorIs(t, err, apperror.ErrValidation)

	out, err := svc.UpdateBestLevel(ctx, "a", "c", 3)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Status: StatusChanged, Previous: 0, Value: 3}, out)

	levels, err := svc.GetAllBestLevels(ctx, "a_b")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"c": 5}, levels)
}
