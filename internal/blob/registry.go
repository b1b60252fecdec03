package blob

import (
	"sync"

	"github.com/google/uuid"

	"photocapture/internal/model"
)

// URLPrefix is the path under which registered blobs are served.
const URLPrefix = "/blob/"

// Blob is a binary payload together with its media type.
type Blob struct {
	ContentType string
	Data        []byte
}

// Registry keeps displayable images in memory and hands out opaque handles
// for them. A handle stays valid until it is revoked.
type Registry struct {
	blobs map[model.ImageHandle]Blob
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		blobs: make(map[model.ImageHandle]Blob),
	}
}

// Create registers data under a fresh handle.
func (r *Registry) Create(data []byte, contentType string) model.ImageHandle {
	handle := model.ImageHandle(uuid.NewString())

	r.mu.Lock()
	r.blobs[handle] = Blob{ContentType: contentType, Data: data}
	r.mu.Unlock()

	return handle
}

// Get returns the blob for handle, if it has not been revoked.
func (r *Registry) Get(handle model.ImageHandle) (Blob, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.blobs[handle]
	return b, ok
}

// Revoke releases the blob behind each handle. Unknown handles are ignored.
func (r *Registry) Revoke(handles ...model.ImageHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range handles {
		delete(r.blobs, h)
	}
}

// Len reports how many blobs are currently held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blobs)
}

// URL is the path the page uses to display handle.
func URL(handle model.ImageHandle) string {
	return URLPrefix + string(handle)
}
