package dataset

import (
	"path/filepath"
	"testing"
	"time"

	"speedrun-dashboard/internal/models"
	"speedrun-dashboard/internal/srcom"
	"speedrun-dashboard/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowSource stalls inside the fetch so tests can observe what happens
// while a refresh is in flight.
type slowSource struct {
	delay time.Duration
}

func (s slowSource) Categories(string) ([]srcom.NamedResource, error) { return nil, nil }
func (s slowSource) Levels(string) ([]srcom.NamedResource, error)     { return nil, nil }
func (s slowSource) UserByID(string) (srcom.User, error)              { return srcom.User{}, nil }

func (s slowSource) AllRuns(string) ([]srcom.Run, error) {
	time.Sleep(s.delay)
	var r srcom.Run
	r.ID = "fetched"
	r.Status.Status = srcom.StatusVerified
	return []srcom.Run{r}, nil
}

func TestSnapshotServesCachedSetDuringRefresh(t *testing.T) {
	storage.InitDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(storage.CloseDB)

	ReplaceForTest([]models.Run{{ID: "cached"}})
	mu.Lock()
	source = slowSource{delay: 500 * time.Millisecond}
	mu.Unlock()

	done := make(chan error, 1)
	go func() {
		_, err := Refresh(true)
		done <- err
	}()

	// Let the refresh reach the fetch.
	time.Sleep(50 * time.Millisecond)

	start := time.Now()
	snap := Snapshot()
	_ = LastRefresh()
	_ = CooldownRemaining()
	elapsed := time.Since(start)

	require.Len(t, snap, 1)
	assert.Equal(t, "cached", snap[0].ID)
	assert.Less(t, elapsed, 200*time.Millisecond, "reads must not wait for the fetch")

	require.NoError(t, <-done)
	swapped := Snapshot()
	require.Len(t, swapped, 1)
	assert.Equal(t, "fetched", swapped[0].ID)
}

func TestRefreshCooldownBlocksPublicRefresh(t *testing.T) {
	storage.InitDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(storage.CloseDB)

	ReplaceForTest([]models.Run{{ID: "cached"}})
	mu.Lock()
	source = slowSource{}
	cooldown = time.Hour
	lastRefresh = time.Now()
	mu.Unlock()

	_, err := Refresh(false)
	assert.ErrorIs(t, err, ErrCooldown)

	// A forced refresh ignores the cooldown.
	_, err = Refresh(true)
	assert.NoError(t, err)
}
