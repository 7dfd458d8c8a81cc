package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubscribeFiltersByOwner(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	mine, cancel := bus.Subscribe(ForUser("u1"), 4)
	defer cancel()

	bus.Publish(NewBestLevelChanged("u2", "yayos", 0, 3))
	bus.Publish(NewRewardTotalChanged("u1", 5, 12))

	e := <-mine
	require.Equal(t, KindRewardTotalChanged, e.EventKind())
	changed, ok := e.(RewardTotalChanged)
	require.True(t, ok)
	assert.Equal(t, int64(12), changed.NewTotal)
	assert.Equal(t, "u1", changed.Owner())
	assert.NotEmpty(t, changed.EventID())
	assert.Empty(t, mine)
}

func TestPublishDoesNotBlockOnFullBuffer(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch, cancel := bus.Subscribe(nil, 1)
	defer cancel()

	bus.Publish(NewNicknameClaimed("u1", "Aray"))
	bus.Publish(NewNicknameClaimed("u1", "Yayo"))

	e := <-ch
	assert.Equal(t, "Aray", e.(NicknameClaimed).Nickname)
	assert.Empty(t, ch)
}

func TestCancelClosesChannelAndStopsConsumers(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(nil, 8)

	var wg sync.WaitGroup
	received := 0
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range ch {
			received++
		}
	}()

	bus.Publish(NewBestLevelChanged("u1", "rio", 1, 2))
	cancel()
	cancel()
	wg.Wait()

	assert.LessOrEqual(t, received, 1)
	bus.Publish(NewBestLevelChanged("u1", "rio", 2, 3))
}

func TestCloseEndsAllSubscriptions(t *testing.T) {
	bus := NewBus()
	a, _ := bus.Subscribe(nil, 1)
	b, _ := bus.Subscribe(ForUser("u9"), 1)

	bus.Close()

	_, okA := <-a
	_, okB := <-b
	assert.False(t, okA)
	assert.False(t, okB)

	late, _ := bus.Subscribe(nil, 1)
	_, ok := <-late
	assert.False(t, ok)
}
