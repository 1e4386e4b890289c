package storage

import (
	"fmt"
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

func record(score int, outcome string) RoundRecord {
	return RoundRecord{
		RoundID:   uuid.NewString(),
		Score:     score,
		LivesLeft: 0,
		Outcome:   outcome,
		MaxSpeed:  1.0,
		Duration:  90 * time.Second,
	}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRound(record(score, OutcomeGameOver)); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Should be sorted descending
	if rounds[0].Score != 200 || rounds[1].Score != 100 || rounds[2].Score != 50 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}

	if rounds[0].Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 1m30s", rounds[0].Duration)
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(record((i+1)*100, OutcomeGameOver))
	}

	rounds, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Errorf("Expected 3 rounds with limit, got %d", len(rounds))
	}

	if rounds[0].Score != 500 || rounds[1].Score != 400 || rounds[2].Score != 300 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{30, 10, 20} {
		store.SaveRound(record(score, OutcomeGameOver))
	}

	rounds, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}

	if len(rounds) != 2 || rounds[0].Score != 20 || rounds[1].Score != 10 {
		t.Errorf("RecentRounds should return newest first, got %v", rounds)
	}
}

func TestStoreDuplicateRoundRejected(t *testing.T) {
	store := openTestStore(t)

	r := record(42, OutcomeGameOver)
	if _, err := store.SaveRound(r); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(r); err == nil {
		t.Error("Saving the same round twice should fail")
	}

	found, err := store.RoundByID(r.RoundID)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if found == nil || found.Score != 42 {
		t.Errorf("RoundByID() = %v, expected score 42", found)
	}

	missing, err := store.RoundByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RoundByID() for unknown id = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(record(100, OutcomeGameOver))
	store.SaveRound(record(200, OutcomeGameOver))

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.TopRounds(10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() on empty history failed: %v", err)
	}
	if stats.RoundsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats expected, got %+v", stats)
	}

	store.SaveRound(record(100, OutcomeGameOver))
	store.SaveRound(record(555, OutcomeVictory))

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.RoundsCount != 2 {
		t.Errorf("RoundsCount = %d, expected 2", stats.RoundsCount)
	}
	if stats.Victories != 1 {
		t.Errorf("Victories = %d, expected 1", stats.Victories)
	}
	if stats.HighScore != 555 {
		t.Errorf("HighScore = %d, expected 555", stats.HighScore)
	}
	expectedAvg := float64(100+555) / 2
	if stats.AvgScore != expectedAvg {
		t.Errorf("AvgScore = %v, expected %v", stats.AvgScore, expectedAvg)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func ExampleStore_TopRounds() {
	dir, _ := os.MkdirTemp("", "santa")
	defer os.RemoveAll(dir)

	store, _ := Open(filepath.Join(dir, "history.db"))
	defer store.Close()

	store.SaveRound(RoundRecord{RoundID: "a", Score: 12, Outcome: OutcomeGameOver})
	store.SaveRound(RoundRecord{RoundID: "b", Score: 555, Outcome: OutcomeVictory})

	rounds, _ := store.TopRounds(1)
	fmt.Println(rounds[0].Score, rounds[0].Outcome)
	// Output: 555 victory
}
