package camera

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// CheckDeviceNode maps the V4L2 device node state to the camera error
// classes. Only done on Linux, where the node path is known.
func CheckDeviceNode(device string) error {
	if runtime.GOOS != "linux" {
		return nil
	}
	path, ok := devicePath(device)
	if !ok {
		return nil
	}
	return checkNode(path)
}

// devicePath returns the node for a numeric index or a /dev path. Anything
// else (URLs, pipelines) has no node to check.
func devicePath(device string) (string, bool) {
	if idx, err := strconv.Atoi(device); err == nil {
		return fmt.Sprintf("/dev/video%d", idx), true
	}
	if strings.HasPrefix(device, "/dev/") {
		return device, true
	}
	return "", false
}

func checkNode(path string) error {
	f, err := os.Open(path)
	switch {
	case err == nil:
		return f.Close()
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%s: %w", path, ErrDeviceNotFound)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%s: %w", path, ErrPermissionDenied)
	default:
		return err
	}
}
