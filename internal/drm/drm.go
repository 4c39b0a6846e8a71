//go:build linux

package drm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Devices opens device nodes with the real system calls.
type Devices struct{}

// Open opens path read-write and returns the file descriptor.
func (Devices) Open(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return fd, nil
}

func (Devices) Close(fd int) error {
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close fd %d: %w", fd, err)
	}
	return nil
}

// Name returns the path fd was opened from, or "" if it cannot be resolved.
// It works for descriptors opened elsewhere in the process too.
func (Devices) Name(fd int) string {
	name, err := os.Readlink(fmt.Sprintf("/proc/self/fd/%d", fd))
	if err != nil {
		return ""
	}
	return name
}
