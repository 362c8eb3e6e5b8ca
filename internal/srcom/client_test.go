package srcom

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string, pageSize int) *Client {
	c := NewClient(url, pageSize, time.Second)
	c.backoff = 10 * time.Millisecond
	return c
}

func TestAllRunsPagination(t *testing.T) {
	const total = 5
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("max"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[`)
		first := true
		for i := offset; i < total && i < offset+pageSize; i++ {
			if !first {
				fmt.Fprint(w, ",")
			}
			first = false
			fmt.Fprintf(w, `{"id":"run%d","status":{"status":"verified"}}`, i)
		}
		fmt.Fprint(w, `]}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2)
	runs, err := client.AllRuns("o1y3y346")
	require.NoError(t, err)
	require.Len(t, runs, total)
	assert.Equal(t, "run0", runs[0].ID)
	assert.Equal(t, "run4", runs[4].ID)
	assert.True(t, runs[0].Verified())
}

func TestAllRunsEmptyGame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer srv.Close()

	runs, err := newTestClient(srv.URL, 200).AllRuns("o1y3y346")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestGetJSONRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":"cat1","name":"Dark"}]}`)
	}))
	defer srv.Close()

	cats, err := newTestClient(srv.URL, 200).Categories("o1y3y346")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Dark", cats[0].Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetJSONGivesUpAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 200).Categories("o1y3y346")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch")
}

func TestGetJSONRetryAfterReplacesBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":"cat1","name":"Dark"}]}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 200)
	client.backoff = 2 * time.Second

	start := time.Now()
	cats, err := client.Categories("o1y3y346")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, int32(2), calls.Load())
	// Only the Retry-After second passes, not Retry-After plus the backoff.
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestGetJSONNoWaitAfterFinalAttempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 200)
	client.maxRetries = 0

	start := time.Now()
	_, err := client.Categories("o1y3y346")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestUserDisplayNameFallsBackToJapanese(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/p1", r.URL.Path)
		fmt.Fprint(w, `{"data":{"id":"p1","names":{"international":"","japanese":"アリス"}}}`)
	}))
	defer srv.Close()

	user, err := newTestClient(srv.URL, 200).UserByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "アリス", user.DisplayName())
}

func TestRunLevelDefaultsToEmptyForFullGame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":"r1","level":null,"status":{"status":"verified"}}]}`)
	}))
	defer srv.Close()

	runs, err := newTestClient(srv.URL, 200).Runs("o1y3y346", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Empty(t, runs[0].Level)
}
