package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some runs
	_, err = store.SaveRun("trex", 100, 1)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun("trex", 50, 2)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun("trex", 200, 3)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different game
	_, err = store.SaveRun("pacman", 500, 4)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Retrieve top runs for trex
	runs, err := store.TopRuns("trex", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", runs[0].Score)
	}
	if runs[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", runs[1].Score)
	}
	if runs[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", runs[2].Score)
	}

	// Seed survives the round trip so the run can be replayed
	if runs[0].Seed != 3 {
		t.Errorf("Expected seed 3 on the top run, got %d", runs[0].Seed)
	}

	// Retrieve top runs for pacman
	pacmanRuns, err := store.TopRuns("pacman", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(pacmanRuns) != 1 {
		t.Errorf("Expected 1 pacman run, got %d", len(pacmanRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 runs
	for i := 0; i < 5; i++ {
		store.SaveRun("test", (i+1)*100, int64(i))
	}

	// Request only top 3
	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore("trex")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add runs
	store.SaveRun("trex", 100, 1)
	store.SaveRun("trex", 300, 2)
	store.SaveRun("trex", 200, 3)

	high, err = store.HighScore("trex")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("trex", 100, 1)
	store.SaveRun("trex", 200, 2)
	store.SaveRun("pacman", 300, 3)

	// Clear only trex runs
	err = store.ClearRuns("trex")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	// Trex should be empty
	trexRuns, _ := store.TopRuns("trex", 10)
	if len(trexRuns) != 0 {
		t.Errorf("Expected 0 trex runs after clear, got %d", len(trexRuns))
	}

	// Pacman should still have runs
	pacmanRuns, _ := store.TopRuns("pacman", 10)
	if len(pacmanRuns) != 1 {
		t.Errorf("Pacman runs should not be affected by clearing trex")
	}
}

func TestStoreAllRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many runs
	for i := 0; i < 20; i++ {
		store.SaveRun("test", i*10, int64(i))
	}

	runs, err := store.AllRuns("test")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}

	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("trex", 100, 1)
	store.SaveRun("trex", 300, 2)

	stats, err := store.GetGameStats("trex")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
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
