//go:build linux

package drm

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPathsOrder(t *testing.T) {
	want := []string{"/dev/dri/renderD128", "/dev/dri/card0"}
	if len(DefaultPaths) != len(want) {
		t.Fatalf("DefaultPaths = %v, want %v", DefaultPaths, want)
	}
	for i := range want {
		if DefaultPaths[i] != want[i] {
			t.Errorf("DefaultPaths[%d] = %q, want %q", i, DefaultPaths[i], want[i])
		}
	}
}

func TestOpenClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card0")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var d Devices
	fd, err := d.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if fd < 0 {
		t.Fatalf("Open returned fd %d", fd)
	}
	want, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if got := d.Name(fd); got != want {
		t.Errorf("Name(%d) = %q, want %q", fd, got, want)
	}
	if err := d.Close(fd); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := d.Close(fd); err == nil {
		t.Error("second Close succeeded")
	}
}

func TestOpenMissing(t *testing.T) {
	var d Devices
	fd, err := d.Open(filepath.Join(t.TempDir(), "renderD128"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Open = %v, want ErrNotExist", err)
	}
	if fd != -1 {
		t.Errorf("fd = %d, want -1", fd)
	}
}
