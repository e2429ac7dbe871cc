package eap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient(nil, WithTimeout(5*time.Second))
	c.baseBackoff = time.Millisecond
	c.maxBackoff = 5 * time.Millisecond
	return c
}

func sampleAssignment() TaskAssignment {
	return TaskAssignment{
		TaskID:       "task-1",
		SessionID:    "sess-1",
		TaskType:     "code_generation",
		InputData:    map[string]any{"prompt": "implement it"},
		Requirements: []string{"code_generation"},
	}
}

func TestDispatchTaskSuccess(t *testing.T) {
	var gotToken, gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken.Store(r.Header.Get(TokenHeader))
		gotPath.Store(r.URL.Path)

		var assignment TaskAssignment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&assignment))
		assert.Equal(t, "task-1", assignment.TaskID)

		json.NewEncoder(w).Encode(TaskResult{
			TaskID:          assignment.TaskID,
			Status:          StatusCompleted,
			Artifacts:       []string{"auth.go"},
			ExecutionTimeMS: 1200,
			TokensUsed:      450,
			CostUSD:         0.02,
		})
	}))
	defer srv.Close()

	result, err := fastClient(t).DispatchTask(context.Background(), srv.URL, "secret", sampleAssignment())
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, []string{"auth.go"}, result.Artifacts)
	assert.Equal(t, "secret", gotToken.Load())
	assert.Equal(t, "/task", gotPath.Load())
}

func TestDispatchTaskRetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(TaskResult{TaskID: "task-1", Status: StatusCompleted})
	}))
	defer srv.Close()

	result, err := fastClient(t).DispatchTask(context.Background(), srv.URL, "tok", sampleAssignment())
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDispatchTaskExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := fastClient(t).DispatchTask(context.Background(), srv.URL, "tok", sampleAssignment())
	assert.ErrorIs(t, err, ErrDispatchFailed)
	assert.Equal(t, int32(maxAttempts), calls.Load())
}

func TestDispatchTask4xxNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := fastClient(t).DispatchTask(context.Background(), srv.URL, "wrong", sampleAssignment())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDispatchTaskConnectErrorRetried(t *testing.T) {
	// A closed server yields connect errors on every attempt.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := fastClient(t).DispatchTask(context.Background(), srv.URL, "tok", sampleAssignment())
	assert.ErrorIs(t, err, ErrDispatchFailed)
}

func TestDispatchTaskFailedStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TaskResult{
			TaskID:       "task-1",
			Status:       StatusFailed,
			ErrorMessage: "tests did not pass",
		})
	}))
	defer srv.Close()

	result, err := fastClient(t).DispatchTask(context.Background(), srv.URL, "tok", sampleAssignment())
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, "tests did not pass", result.ErrorMessage)
}

func TestHealthProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(Heartbeat{
			Status:      "healthy",
			CurrentLoad: 2,
			Timestamp:   time.Now(),
		})
	}))
	defer srv.Close()

	hb := fastClient(t).Health(context.Background(), srv.URL, "tok")
	assert.Equal(t, "healthy", hb.Status)
	assert.Equal(t, 2, hb.CurrentLoad)
}

func TestHealthSynthesizesOffline(t *testing.T) {
	t.Run("unreachable endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		hb := fastClient(t).Health(context.Background(), srv.URL, "tok")
		assert.Equal(t, StatusOffline, hb.Status)
		assert.False(t, hb.Timestamp.IsZero())
	})

	t.Run("non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		hb := fastClient(t).Health(context.Background(), srv.URL, "tok")
		assert.Equal(t, StatusOffline, hb.Status)
	})

	t.Run("garbage body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		hb := fastClient(t).Health(context.Background(), srv.URL, "tok")
		assert.Equal(t, StatusOffline, hb.Status)
	})
}
