package pipeline

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNextFire_BeforeOne(t *testing.T) {
	now := time.Date(2026, time.August, 27, 0, 30, 0, 0, time.UTC)
	next := nextFire(now)
	want := time.Date(2026, time.August, 27, 1, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("nextFire(%v) = %v, want %v", now, next, want)
	}
}

func TestNextFire_AfterOne(t *testing.T) {
	now := time.Date(2026, time.August, 27, 13, 0, 0, 0, time.UTC)
	next := nextFire(now)
	want := time.Date(2026, time.August, 28, 1, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("nextFire(%v) = %v, want %v", now, next, want)
	}
}

func TestNextFire_ExactlyOne(t *testing.T) {
	now := time.Date(2026, time.August, 27, 1, 0, 0, 0, time.UTC)
	next := nextFire(now)
	if !next.After(now) {
		t.Errorf("nextFire at the schedule point must move to the next day, got %v", next)
	}
}

func TestWorker_FirePostsTrigger(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := NewWorker(srv.URL, testLogger())
	w.fire()

	if gotMethod != http.MethodPost {
		t.Errorf("expected POST to trigger endpoint, got %q", gotMethod)
	}
}

func TestWorker_StopReturns(t *testing.T) {
	w := NewWorker("http://localhost:0/generate-quiz", testLogger())
	done := make(chan struct{})
	go func() {
		w.Start()
		close(done)
	}()

	w.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not stop")
	}
}
