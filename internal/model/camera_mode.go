package model

import "fmt"

// CameraMode selects which physical camera is requested when the camera starts.
type CameraMode string

const (
	CameraModeFront CameraMode = "user"        // front-facing
	CameraModeRear  CameraMode = "environment" // rear-facing
)

// DefaultCameraMode is the facing mode a fresh widget starts with.
const DefaultCameraMode = CameraModeRear

// ParseCameraMode validates a facing mode coming from config or a request.
func ParseCameraMode(s string) (CameraMode, error) {
	switch CameraMode(s) {
	case CameraModeFront, CameraModeRear:
		return CameraMode(s), nil
	default:
		return "", fmt.Errorf("unknown camera mode %q (want %q or %q)", s, CameraModeFront, CameraModeRear)
	}
}

// Label is the human readable name shown in the mode selector.
func (m CameraMode) Label() string {
	switch m {
	case CameraModeFront:
		return "Front"
	case CameraModeRear:
		return "Rear"
	default:
		return string(m)
	}
}
