package gallery

import (
	"encoding/base64"
	"fmt"
	"sync"

	"photocapture/internal/blob"
	"photocapture/internal/dto"
	"photocapture/internal/model"
)

// Gallery is the in-memory snapshot of the last successful list response.
type Gallery struct {
	entries []model.GalleryEntry
	blobs   *blob.Registry
	mu      sync.RWMutex
}

func New(blobs *blob.Registry) *Gallery {
	return &Gallery{blobs: blobs}
}

// Replace swaps the snapshot for records, in their order. Every payload is
// decoded before anything changes: one bad record leaves the gallery as it
// was. Handles of the replaced entries are revoked.
func (g *Gallery) Replace(records []dto.PhotoRecord) error {
	decoded := make([][]byte, len(records))
	for i, rec := range records {
		data, err := base64.StdEncoding.DecodeString(rec.FileData)
		if err != nil {
			return fmt.Errorf("decode photo %s (%s): %w", rec.ID, rec.FileName, err)
		}
		decoded[i] = data
	}

	entries := make([]model.GalleryEntry, len(records))
	for i, rec := range records {
		entries[i] = model.GalleryEntry{
			ID:          string(rec.ID),
			FileName:    rec.FileName,
			ContentType: rec.ContentType,
			Size:        len(decoded[i]),
			Handle:      g.blobs.Create(decoded[i], rec.ContentType),
		}
	}

	g.mu.Lock()
	old := g.entries
	g.entries = entries
	g.mu.Unlock()

	handles := make([]model.ImageHandle, len(old))
	for i, e := range old {
		handles[i] = e.Handle
	}
	g.blobs.Revoke(handles...)
	return nil
}

// Entries returns a copy of the current snapshot.
func (g *Gallery) Entries() []model.GalleryEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]model.GalleryEntry(nil), g.entries...)
}

// Len returns the number of entries in the snapshot.
func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}
