package dto

// GalleryEntryInfo is the page-facing view of a gallery entry.
type GalleryEntryInfo struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	ImageURL    string `json:"imageUrl"`
}
