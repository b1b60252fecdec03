package handler

import (
	"net/http"

	"photocapture/internal/dto"
	"photocapture/internal/logger"
	"photocapture/internal/repository"
)

// GetJournalHandler lists sync journal entries, newest first. Supports the
// operation, failed, limit and offset query parameters.
func GetJournalHandler(journal repository.JournalRepository, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if journal == nil {
			writeError(w, http.StatusNotFound, "Sync journal is disabled")
			return
		}

		q := r.URL.Query()
		filter := &dto.JournalFilter{
			Operation:  q.Get("operation"),
			FailedOnly: q.Get("failed") == "true",
			Limit:      atoiDefault(q.Get("limit"), dto.DefaultJournalLimit),
			Offset:     atoiDefault(q.Get("offset"), 0),
		}

		entries, err := journal.GetRecent(filter)
		if err != nil {
			logger.Error("Error querying sync journal: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		total, err := journal.GetTotalCount(filter)
		if err != nil {
			logger.Error("Error counting sync journal entries: %v", err)
			total = len(entries)
		}

		writeJSON(w, http.StatusOK, dto.JournalPage{Entries: entries, Total: total})
	}
}

// ClearJournalHandler removes every journal entry.
func ClearJournalHandler(journal repository.JournalRepository, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if journal == nil {
			writeError(w, http.StatusNotFound, "Sync journal is disabled")
			return
		}
		if err := journal.DeleteAll(); err != nil {
			logger.Error("Error clearing sync journal: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		logger.Info("Sync journal cleared")
		w.WriteHeader(http.StatusNoContent)
	}
}
