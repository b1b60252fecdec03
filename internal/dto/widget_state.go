package dto

import "time"

// CapturedImageInfo describes the image currently held by the widget.
// CapturedAt is sent as RFC 3339; the page formats it for display.
type CapturedImageInfo struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	CapturedAt time.Time `json:"capturedAt"`
	ImageURL   string    `json:"imageUrl"`
}

// CameraModeOption is one entry of the mode selector.
type CameraModeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// WidgetState is the full state the page renders from.
type WidgetState struct {
	Phase       string             `json:"phase"`
	CameraMode  string             `json:"cameraMode"`
	CameraModes []CameraModeOption `json:"cameraModes"`
	Image       *CapturedImageInfo `json:"image,omitempty"`
	Gallery     []GalleryEntryInfo `json:"gallery"`
}

// CameraModeRequest is the body of PUT /api/camera/mode.
type CameraModeRequest struct {
	Mode string `json:"mode"`
}
