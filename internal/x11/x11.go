//go:build linux

// Package x11 binds the handful of Xlib entry points needed to open a
// connection to the X server.
package x11

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tinyrange/vadisplay/internal/dl"
)

const (
	libName    = "libX11.so"
	libVersion = 6
)

// ErrUnavailable is returned by Available when Xlib or one of its mandatory
// symbols could not be resolved.
var ErrUnavailable = errors.New("x11: xlib unavailable")

// API is the Xlib symbol table. Its methods call straight into Xlib and must
// only be used once Available reports nil.
type API struct {
	lib *dl.Library

	xOpenDisplay  func(*byte) uintptr
	xCloseDisplay func(uintptr) int32
	xInitThreads  func() int32
}

var (
	loadOnce sync.Once
	api      *API
)

// Load returns the process-wide Xlib symbol table, loading libX11 on first use.
func Load() *API {
	loadOnce.Do(func() {
		api = bind(dl.Shared(libName, libVersion))
	})
	return api
}

func bind(lib *dl.Library) *API {
	a := &API{lib: lib}
	if !lib.Loaded() {
		return a
	}
	lib.Bind(&a.xOpenDisplay, "XOpenDisplay")
	lib.Bind(&a.xCloseDisplay, "XCloseDisplay")
	lib.Bind(&a.xInitThreads, "XInitThreads")
	return a
}

// Available reports whether every mandatory symbol resolved.
func (a *API) Available() error {
	if a.lib == nil || !a.lib.Loaded() {
		var cause error = dl.ErrNotLoaded
		if a.lib != nil {
			cause = a.lib.Err()
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, cause)
	}
	var missing []string
	if a.xOpenDisplay == nil {
		missing = append(missing, "XOpenDisplay")
	}
	if a.xCloseDisplay == nil {
		missing = append(missing, "XCloseDisplay")
	}
	if a.xInitThreads == nil {
		missing = append(missing, "XInitThreads")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s missing %v", ErrUnavailable, a.lib.Path(), missing)
	}
	return nil
}

// OpenDisplay connects to the named display, or the default display when name
// is empty. It returns 0 on failure.
func (a *API) OpenDisplay(name string) uintptr {
	if a.xOpenDisplay == nil {
		panic("x11: XOpenDisplay not resolved")
	}
	if name == "" {
		return a.xOpenDisplay(nil)
	}
	return a.xOpenDisplay(cString(name))
}

func (a *API) CloseDisplay(dpy uintptr) int {
	if a.xCloseDisplay == nil {
		panic("x11: XCloseDisplay not resolved")
	}
	return int(a.xCloseDisplay(dpy))
}

// InitThreads enables Xlib's thread support. It must run before any other
// Xlib call in the process for the locking to be effective.
func (a *API) InitThreads() bool {
	if a.xInitThreads == nil {
		panic("x11: XInitThreads not resolved")
	}
	return a.xInitThreads() != 0
}

func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}
