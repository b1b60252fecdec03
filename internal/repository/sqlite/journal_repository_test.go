package sqlite_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"photocapture/internal/dto"
	"photocapture/internal/model"
	"photocapture/internal/repository"
	"photocapture/internal/repository/sqlite"
)

var _ repository.JournalRepository = (*sqlite.JournalRepository)(nil)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "journal_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	db, err := sqlite.New(filepath.Join(tempDir, "data", "journal.db"))
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ========================================
// Database Tests
// ========================================

func TestDatabase_CreatesParentDirectory(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "nested", "journal.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file should exist")
	}
}

func TestDatabase_ReopenKeepsEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	if _, err := sqlite.NewJournalRepository(db).Insert(&model.JournalEntry{Operation: model.OperationList, Success: true}); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	db.Close()

	db, err = sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer db.Close()

	count, err := sqlite.NewJournalRepository(db).GetTotalCount(nil)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 entry after reopen, got %d", count)
	}
}

// ========================================
// Journal Repository Tests
// ========================================

func TestJournal_InsertAndGetRecent(t *testing.T) {
	repo := sqlite.NewJournalRepository(newTestDB(t))

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	entries := []*model.JournalEntry{
		{Operation: model.OperationList, Success: true, Detail: "2 photos", CreatedAt: created},
		{Operation: model.OperationUpload, Success: false, Detail: "status 500"},
		{Operation: model.OperationDelete, PhotoID: "7", Success: true},
	}
	for _, e := range entries {
		id, err := repo.Insert(e)
		if err != nil {
			t.Fatalf("Failed to insert: %v", err)
		}
		if id == 0 || e.ID != id {
			t.Errorf("Expected entry ID to be set, got %d / %d", e.ID, id)
		}
	}

	recent, err := repo.GetRecent(nil)
	if err != nil {
		t.Fatalf("Failed to get recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(recent))
	}

	// Newest first.
	if recent[0].Operation != model.OperationDelete || recent[0].PhotoID != "7" {
		t.Errorf("Expected delete of 7 first, got %+v", recent[0])
	}
	if recent[1].Success {
		t.Error("Expected upload entry to be a failure")
	}
	if !recent[2].CreatedAt.Equal(created) {
		t.Errorf("Expected CreatedAt %v, got %v", created, recent[2].CreatedAt)
	}
	if recent[1].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be stamped")
	}
}

func TestJournal_Filter(t *testing.T) {
	repo := sqlite.NewJournalRepository(newTestDB(t))

	for _, e := range []model.JournalEntry{
		{Operation: model.OperationList, Success: true},
		{Operation: model.OperationList, Success: false},
		{Operation: model.OperationUpload, Success: false},
		{Operation: model.OperationDelete, PhotoID: "1", Success: true},
	} {
		e := e
		if _, err := repo.Insert(&e); err != nil {
			t.Fatalf("Failed to insert: %v", err)
		}
	}

	tests := []struct {
		name     string
		filter   *dto.JournalFilter
		expected int
	}{
		{"all", &dto.JournalFilter{}, 4},
		{"by operation", &dto.JournalFilter{Operation: model.OperationList}, 2},
		{"failed only", &dto.JournalFilter{FailedOnly: true}, 2},
		{"failed list", &dto.JournalFilter{Operation: model.OperationList, FailedOnly: true}, 1},
		{"limit", &dto.JournalFilter{Limit: 3}, 3},
		{"offset", &dto.JournalFilter{Limit: 10, Offset: 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetRecent(tt.filter)
			if err != nil {
				t.Fatalf("GetRecent failed: %v", err)
			}
			if len(got) != tt.expected {
				t.Errorf("Expected %d entries, got %d", tt.expected, len(got))
			}
		})
	}

	count, err := repo.GetTotalCount(&dto.JournalFilter{FailedOnly: true})
	if err != nil {
		t.Fatalf("GetTotalCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 failed entries, got %d", count)
	}
}

func TestJournal_DeleteAll(t *testing.T) {
	repo := sqlite.NewJournalRepository(newTestDB(t))

	if _, err := repo.Insert(&model.JournalEntry{Operation: model.OperationUpload, Success: true}); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	if err := repo.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}

	recent, err := repo.GetRecent(nil)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected empty journal, got %d entries", len(recent))
	}
}
