package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveSessionAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(Session{GameID: "snake", Score: 42, Reason: "hit the wall"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("session id %q is not a UUID: %v", id, err)
	}

	sessions, err := store.RecentSessions("snake", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}
	got := sessions[0]
	if got.ID != id || got.Score != 42 || got.Reason != "hit the wall" {
		t.Errorf("session = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}
}

func TestSaveSessionKeepsFields(t *testing.T) {
	store := openTestStore(t)
	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	in := Session{
		ID:        "fixed-id",
		GameID:    "2048",
		Score:     4096,
		Reason:    "quit",
		Ticks:     1234,
		Duration:  95 * time.Second,
		CreatedAt: created,
	}
	if _, err := store.SaveSession(in); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions("2048", 1)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("RecentSessions() = %v, %v", sessions, err)
	}
	got := sessions[0]
	if got.Ticks != 1234 || got.Duration != 95*time.Second || !got.CreatedAt.Equal(created) {
		t.Errorf("session = %+v, want %+v", got, in)
	}

	if _, err := store.SaveSession(in); err == nil {
		t.Error("duplicate session id should fail")
	}
}

func TestRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	base := time.Now().Add(-time.Hour)

	for i := range 15 {
		game := "snake"
		if i%3 == 0 {
			game = "2048"
		}
		_, err := store.SaveSession(Session{
			GameID:    game,
			Score:     uint32(i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions("", 4)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("Expected 4 sessions, got %d", len(recent))
	}
	for i, want := range []uint32{14, 13, 12, 11} {
		if recent[i].Score != want {
			t.Errorf("recent[%d].Score = %d, want %d", i, recent[i].Score, want)
		}
	}

	only2048, err := store.RecentSessions("2048", 100)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(only2048) != 5 {
		t.Errorf("Expected 5 sessions of 2048, got %d", len(only2048))
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	last := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)

	for i, score := range []uint32{100, 300, 200} {
		_, err := store.SaveSession(Session{
			GameID:    "snake",
			Score:     score,
			Duration:  10 * time.Second,
			CreatedAt: last.Add(-time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	stats, err := store.GameStats("snake")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 300 || stats.TotalScore != 600 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalTime != 30*time.Second {
		t.Errorf("TotalTime = %v, want 30s", stats.TotalTime)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, want %v", stats.LastPlayed, last)
	}

	empty, err := store.GameStats("2048")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestAllGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "snake", Score: 10})
	store.SaveSession(Session{GameID: "snake", Score: 30})
	store.SaveSession(Session{GameID: "2048", Score: 512})

	stats, err := store.AllGameStats()
	if err != nil {
		t.Fatalf("AllGameStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if stats["snake"].GamesCount != 2 || stats["snake"].HighScore != 30 {
		t.Errorf("snake stats = %+v", stats["snake"])
	}
	if stats["2048"].HighScore != 512 {
		t.Errorf("2048 stats = %+v", stats["2048"])
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "snake", Score: 10})
	store.SaveSession(Session{GameID: "2048", Score: 20})

	if err := store.ClearSessions("snake"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	snake, _ := store.RecentSessions("snake", 10)
	if len(snake) != 0 {
		t.Errorf("Expected no snake sessions, got %d", len(snake))
	}
	other, _ := store.RecentSessions("2048", 10)
	if len(other) != 1 {
		t.Errorf("Other games should be untouched, got %d", len(other))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
