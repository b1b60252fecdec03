package model

import "time"

// Journal operations.
const (
	OperationList   = "list"
	OperationUpload = "upload"
	OperationDelete = "delete"
)

// JournalEntry records the outcome of one call to the remote photo store.
type JournalEntry struct {
	ID        int64     `json:"id"`
	Operation string    `json:"operation"`
	PhotoID   string    `json:"photoId,omitempty"`
	Success   bool      `json:"success"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
