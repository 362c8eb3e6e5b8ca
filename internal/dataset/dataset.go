// Package dataset holds the in-memory snapshot of processed runs. The
// snapshot is replaced wholesale on refresh, so every request sees one
// consistent run set and the table/chart pair for a selection can never
// mix two dataset versions.
package dataset

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"speedrun-dashboard/internal/models"
	"speedrun-dashboard/internal/pipeline"
	"speedrun-dashboard/internal/srcom"
	"speedrun-dashboard/internal/storage"
)

// ErrCooldown is returned when a refresh is requested before the cooldown
// since the previous refresh has passed.
var ErrCooldown = errors.New("dataset: refreshed recently, cooldown active")

// Source fetches runs and metadata from the speedrun.com API. The
// srcom.Client satisfies it.
type Source interface {
	pipeline.MetaSource
	AllRuns(gameID string) ([]srcom.Run, error)
}

// mu guards the snapshot fields; refreshMu serializes refreshes so the
// fetch and processing can run without holding mu and reads keep serving
// the cached set while a refresh is in flight.
var (
	mu          sync.RWMutex
	refreshMu   sync.Mutex
	runs        []models.Run
	lastRefresh time.Time
	cooldown    time.Duration
	source      Source
)

// Init wires the API source, loads the cached dataset from storage and
// restores the last-refresh timestamp. A missing or empty cache is fine:
// the dashboard starts in its empty state until the first refresh.
func Init(src Source, refreshCooldown time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	source = src
	cooldown = refreshCooldown

	cached, err := storage.LoadRuns()
	if err != nil {
		log.Printf("dataset.Init(): failed to load cached runs, starting empty: %v", err)
		cached = nil
	}
	runs = cached

	last, err := storage.LastRefresh()
	if err != nil {
		log.Printf("dataset.Init(): failed to load last refresh time: %v", err)
	}
	lastRefresh = last

	log.Printf("dataset.Init(): loaded %d cached runs", len(runs))
}

// Snapshot returns the current run set. Callers must treat it as read-only.
func Snapshot() []models.Run {
	mu.RLock()
	defer mu.RUnlock()
	return runs
}

// LastRefresh returns when the dataset was last refreshed from the API.
func LastRefresh() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return lastRefresh
}

// CooldownRemaining returns how long until the next public refresh is
// allowed, zero when one is allowed now.
func CooldownRemaining() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return cooldownRemainingLocked()
}

func cooldownRemainingLocked() time.Duration {
	if lastRefresh.IsZero() {
		return 0
	}
	remaining := cooldown - time.Since(lastRefresh)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Refresh refetches, reprocesses and swaps the dataset. Unless force is set
// it respects the cooldown (first-time loads are always allowed). The fetch
// and processing run without the snapshot lock, so reads serve the cached
// set throughout; only the final swap takes it. Returns how many runs the
// refresh added.
func Refresh(force bool) (added int, err error) {
	refreshMu.Lock()
	defer refreshMu.Unlock()

	mu.RLock()
	src := source
	empty := len(runs) == 0
	remaining := cooldownRemainingLocked()
	mu.RUnlock()

	if !force && !empty && remaining > 0 {
		return 0, ErrCooldown
	}
	if src == nil {
		return 0, errors.New("dataset: no API source configured")
	}

	raw, err := src.AllRuns(models.GameID)
	if err != nil {
		// The cached snapshot keeps serving; the refresh just failed.
		return 0, fmt.Errorf("dataset: failed to fetch runs: %w", err)
	}

	playerNames, err := storage.LoadPlayerNames()
	if err != nil {
		log.Printf("dataset.Refresh(): failed to load player name cache: %v", err)
		playerNames = map[string]string{}
	}

	processed, newNames, err := pipeline.Process(src, raw, playerNames)
	if err != nil {
		return 0, err
	}

	if len(newNames) > 0 {
		if err := storage.SavePlayerNames(newNames); err != nil {
			log.Printf("dataset.Refresh(): failed to persist player names: %v", err)
		}
	}

	mu.RLock()
	oldIDs := make(map[string]bool, len(runs))
	for _, r := range runs {
		oldIDs[r.ID] = true
	}
	mu.RUnlock()
	for _, r := range processed {
		if !oldIDs[r.ID] {
			added++
		}
	}

	if err := storage.ReplaceRuns(processed); err != nil {
		log.Printf("dataset.Refresh(): failed to persist runs: %v", err)
	}

	now := time.Now()
	if err := storage.SetLastRefresh(now); err != nil {
		log.Printf("dataset.Refresh(): failed to persist refresh time: %v", err)
	}

	mu.Lock()
	runs = processed
	lastRefresh = now
	mu.Unlock()

	log.Printf("dataset.Refresh(): dataset now holds %d runs (%d new)", len(processed), added)
	return added, nil
}

// ReplaceForTest swaps the snapshot directly, bypassing storage and the API.
func ReplaceForTest(testRuns []models.Run) {
	mu.Lock()
	defer mu.Unlock()
	runs = testRuns
	lastRefresh = time.Time{}
	cooldown = 0
	source = nil
}
