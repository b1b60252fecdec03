package model

import "testing"

func TestParseCameraMode(t *testing.T) {
	tests := []struct {
		input   string
		want    CameraMode
		wantErr bool
	}{
		{"user", CameraModeFront, false},
		{"environment", CameraModeRear, false},
		{"", "", true},
		{"front", "", true},
		{"Environment", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCameraMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCameraMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCameraMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCameraMode_Label(t *testing.T) {
	if CameraModeFront.Label() != "Front" {
		t.Errorf("front label = %q", CameraModeFront.Label())
	}
	if CameraModeRear.Label() != "Rear" {
		t.Errorf("rear label = %q", CameraModeRear.Label())
	}
	if DefaultCameraMode != CameraModeRear {
		t.Errorf("default mode = %q, want environment", DefaultCameraMode)
	}
}
