package engine

import (
	"testing"
	"time"
)

func TestPausableClock_ExcludesPausedSpans(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Fatalf("Elapsed = %v, want 2s", got)
	}

	pc.Pause()
	mock.Advance(5 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed while paused = %v, want 2s", got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration while paused = %v, want 5s", got)
	}

	pc.Resume()
	mock.Advance(time.Second)
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed after resume = %v, want 3s", got)
	}
	if pc.IsPaused() {
		t.Error("Expected clock to be running")
	}
}

func TestPausableClock_RepeatedCallsAreIdempotent(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	pc.Pause()
	mock.Advance(time.Second)
	pc.Pause()
	mock.Advance(time.Second)
	pc.Resume()
	pc.Resume()

	if got := pc.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 2s", got)
	}
	if got := pc.Elapsed(); got != 0 {
		t.Errorf("Elapsed = %v, want 0", got)
	}
}
