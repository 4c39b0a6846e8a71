//go:build !linux

package display

import (
	"errors"
	"fmt"

	"github.com/tinyrange/vadisplay/internal/va"
)

var errNoPlatform = errors.New("display: VA-API is only available on linux")

// unavailable stands in for every native primitive off linux.
type unavailable struct{}

func (unavailable) Available() error {
	return errNoPlatform
}

func (unavailable) InitThreads() bool {
	return false
}

func (unavailable) OpenDisplay(string) uintptr {
	return 0
}

func (unavailable) CloseDisplay(uintptr) int {
	return 0
}

func (unavailable) Open(path string) (int, error) {
	return -1, fmt.Errorf("open %s: %w", path, errNoPlatform)
}

func (unavailable) Close(int) error {
	return errNoPlatform
}

func (unavailable) Name(int) string {
	return ""
}

func (unavailable) GetDisplay(va.Interop, uintptr) (va.Display, error) {
	return 0, fmt.Errorf("%w: %w", va.ErrUnavailable, errNoPlatform)
}

func (unavailable) Initialize(va.Display) (int, int, error) {
	return 0, 0, fmt.Errorf("%w: %w", va.ErrUnavailable, errNoPlatform)
}

func (unavailable) Terminate(va.Display) error {
	return errNoPlatform
}

func platformDefaults(m *Manager) {
	m.windowing = func() Windowing { return unavailable{} }
	m.devices = unavailable{}
	m.runtime = unavailable{}
}
