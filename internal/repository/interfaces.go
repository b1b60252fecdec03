package repository

import (
	"photocapture/internal/dto"
	"photocapture/internal/model"
)

// JournalRepository defines the interface for sync journal operations.
type JournalRepository interface {
	// Create operations
	Insert(entry *model.JournalEntry) (int64, error)

	// Read operations
	GetRecent(filter *dto.JournalFilter) ([]model.JournalEntry, error)
	GetTotalCount(filter *dto.JournalFilter) (int, error)

	// Delete operations
	DeleteAll() error
}
