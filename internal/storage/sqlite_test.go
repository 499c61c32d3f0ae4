package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs the migration again without error
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("runner", "", s, false); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("invaders", "alice", 1800, true); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Player != LocalPlayer {
		t.Errorf("Player = %q, expected %q", scores[0].Player, LocalPlayer)
	}

	inv, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(inv) != 1 || inv[0].Player != "alice" || !inv[0].Won {
		t.Errorf("invaders scores = %+v", inv)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "", (i+1)*100, false)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Zero limit falls back to ten
	for i := 0; i < 10; i++ {
		store.SaveScore("test", "", i, false)
	}
	scores, _ = store.TopScores("test", 0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("runner", "", 100, false)
	store.SaveScore("runner", "", 300, false)
	store.SaveScore("runner", "", 200, false)

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("runner", "", 100, false)
	store.SaveScore("runner", "", 200, false)
	store.SaveScore("invaders", "", 300, false)

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runnerScores, _ := store.TopScores("runner", 10)
	if len(runnerScores) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(runnerScores))
	}
	invScores, _ := store.TopScores("invaders", 10)
	if len(invScores) != 1 {
		t.Errorf("Invaders scores should not be affected by clearing runner")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("invaders", "", 400, false)
	store.SaveScore("invaders", "", 1800, true)
	store.SaveScore("invaders", "", 600, false)

	stats, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 1 || stats.HighScore != 1800 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore < 933 || stats.AvgScore > 934 {
		t.Errorf("AvgScore = %v, expected about 933.3", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreUpgradesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = legacy.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('runner', 640);`)
	if err != nil {
		t.Fatalf("creating legacy schema: %v", err)
	}
	legacy.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy database failed: %v", err)
	}
	defer store.Close()

	if v, err := store.SchemaVersion(); err != nil || v != len(migrations) {
		t.Errorf("SchemaVersion() = %d, %v, expected %d", v, err, len(migrations))
	}

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 640 || scores[0].Player != LocalPlayer || scores[0].Won {
		t.Errorf("legacy row = %+v, expected a local, lost 640", scores)
	}

	if _, err := store.SaveScore("runner", "eve", 900, true); err != nil {
		t.Errorf("SaveScore() after upgrade failed: %v", err)
	}
}

func TestStoreRejectsNewerSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "future.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	if _, err := db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("setting user_version: %v", err)
	}
	db.Close()

	if store, err := Open(dbPath); err == nil {
		store.Close()
		t.Error("Open() should refuse a schema newer than it knows")
	}
}
