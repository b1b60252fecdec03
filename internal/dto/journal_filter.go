package dto

import "photocapture/internal/model"

// DefaultJournalLimit caps journal listings when no limit is given.
const DefaultJournalLimit = 50

// JournalFilter narrows journal queries. Zero values mean "any".
type JournalFilter struct {
	Operation  string
	FailedOnly bool
	Limit      int
	Offset     int
}

// JournalPage is the body of GET /api/journal.
type JournalPage struct {
	Entries []model.JournalEntry `json:"entries"`
	Total   int                  `json:"total"`
}
