//go:build linux

package display

import (
	"github.com/tinyrange/vadisplay/internal/drm"
	"github.com/tinyrange/vadisplay/internal/va"
	"github.com/tinyrange/vadisplay/internal/x11"
)

func platformDefaults(m *Manager) {
	m.windowing = func() Windowing { return x11.Load() }
	m.devices = drm.Devices{}
	m.runtime = va.Load()
}
