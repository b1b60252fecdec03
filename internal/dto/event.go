package dto

// Event types pushed to viewers over the websocket.
const (
	EventNotification = "notification"
	EventGallery      = "gallery"
)

// Event is the JSON envelope for text messages sent to viewers. Preview
// frames travel separately as binary messages.
type Event struct {
	Type    string `json:"type"`
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the body of a failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
