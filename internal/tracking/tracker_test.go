package tracking

import (
	"path/filepath"
	"testing"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	tracker, err := NewTracker(dbPath)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	t.Cleanup(func() { tracker.Close() })
	return tracker
}

func TestNewTracker(t *testing.T) {
	tracker := newTestTracker(t)
	if tracker == nil {
		t.Fatal("tracker is nil")
	}
}

func TestTrack(t *testing.T) {
	tracker := newTestTracker(t)

	err := tracker.Track(".", "src/file1.ts", 2, 5, 1, 850)
	if err != nil {
		t.Fatalf("track: %v", err)
	}

	summary, err := tracker.GetSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalChecks != 1 {
		t.Errorf("total checks = %d", summary.TotalChecks)
	}
	if summary.FailedChecks != 1 {
		t.Errorf("failed checks = %d", summary.FailedChecks)
	}
	if summary.TotalTimeMs != 850 {
		t.Errorf("total time = %d", summary.TotalTimeMs)
	}
}

func TestTrackCleanCheck(t *testing.T) {
	tracker := newTestTracker(t)

	if err := tracker.Track(".", "", 0, 0, 0, 120); err != nil {
		t.Fatalf("track: %v", err)
	}

	summary, err := tracker.GetSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.FailedChecks != 0 {
		t.Errorf("failed checks = %d, want 0", summary.FailedChecks)
	}
}

func TestGetRecent(t *testing.T) {
	tracker := newTestTracker(t)

	_ = tracker.Track("proj1", "", 0, 0, 0, 10)
	_ = tracker.Track("proj2", "a.ts", 1, 3, 1, 20)
	_ = tracker.Track("proj3", "b.ts", 2, 2, 1, 30)

	recent, err := tracker.GetRecent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records, want 2", len(recent))
	}
	// Most recent first
	if recent[0].Project != "proj3" {
		t.Errorf("first = %q", recent[0].Project)
	}
	if recent[0].Filters != "b.ts" {
		t.Errorf("filters = %q", recent[0].Filters)
	}
	if recent[0].ShownLines != 2 || recent[0].TotalLines != 2 {
		t.Errorf("lines = %d/%d", recent[0].ShownLines, recent[0].TotalLines)
	}
}

func TestGetDaily(t *testing.T) {
	tracker := newTestTracker(t)

	tracker.Track(".", "", 0, 0, 0, 10)
	tracker.Track(".", "a.ts", 3, 9, 1, 20)

	daily, err := tracker.GetDaily(7)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if len(daily) != 1 {
		t.Fatalf("got %d days, want 1", len(daily))
	}
	if daily[0].Checks != 2 {
		t.Errorf("checks = %d", daily[0].Checks)
	}
	if daily[0].Failed != 1 {
		t.Errorf("failed = %d", daily[0].Failed)
	}
}

func TestDBPath(t *testing.T) {
	t.Setenv("TSCX_DB_PATH", "/custom/path.db")
	if got := DBPath(""); got != "/custom/path.db" {
		t.Errorf("got %q", got)
	}

	t.Setenv("TSCX_DB_PATH", "")
	if got := DBPath("/config/path.db"); got != "/config/path.db" {
		t.Errorf("got %q", got)
	}
}
