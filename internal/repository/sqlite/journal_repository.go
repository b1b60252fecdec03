package sqlite

import (
	"fmt"
	"time"

	"photocapture/internal/dto"
	"photocapture/internal/model"
)

// JournalRepository implements repository.JournalRepository for SQLite.
type JournalRepository struct {
	db *DB
}

// NewJournalRepository creates a new SQLite journal repository.
func NewJournalRepository(db *DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Insert appends an entry. A zero CreatedAt is stamped with the current time.
func (r *JournalRepository) Insert(entry *model.JournalEntry) (int64, error) {
	r.db.Lock()
	defer r.db.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	result, err := r.db.Conn().Exec(`
		INSERT INTO sync_journal (operation, photo_id, success, detail, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.Operation, entry.PhotoID, entry.Success, entry.Detail, entry.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	entry.ID = id
	return id, nil
}

// GetRecent returns entries matching the filter, newest first.
func (r *JournalRepository) GetRecent(filter *dto.JournalFilter) ([]model.JournalEntry, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	if filter == nil {
		filter = &dto.JournalFilter{}
	}

	query := `
		SELECT id, operation, photo_id, success, detail, created_at
		FROM sync_journal
		WHERE 1=1
	`
	query, args := applyJournalFilter(query, filter)
	query += " ORDER BY id DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = dto.DefaultJournalLimit
	}
	query += " LIMIT ?"
	args = append(args, limit)

	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Conn().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	entries := []model.JournalEntry{}
	for rows.Next() {
		var e model.JournalEntry
		if err := rows.Scan(&e.ID, &e.Operation, &e.PhotoID, &e.Success, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetTotalCount returns the number of entries matching the filter.
func (r *JournalRepository) GetTotalCount(filter *dto.JournalFilter) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	if filter == nil {
		filter = &dto.JournalFilter{}
	}

	query, args := applyJournalFilter(`SELECT COUNT(*) FROM sync_journal WHERE 1=1`, filter)

	var count int
	if err := r.db.Conn().QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

// DeleteAll removes every journal entry.
func (r *JournalRepository) DeleteAll() error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, err := r.db.Conn().Exec(`DELETE FROM sync_journal`); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	return nil
}

func applyJournalFilter(query string, filter *dto.JournalFilter) (string, []interface{}) {
	args := []interface{}{}

	if filter.Operation != "" {
		query += " AND operation = ?"
		args = append(args, filter.Operation)
	}

	if filter.FailedOnly {
		query += " AND success = 0"
	}

	return query, args
}
