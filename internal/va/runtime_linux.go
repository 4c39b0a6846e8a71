//go:build linux

package va

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tinyrange/vadisplay/internal/dl"
)

const abiVersion = 2

var interopLibs = [...]string{
	InteropX11: "libva-x11.so",
	InteropGLX: "libva-glx.so",
	InteropDRM: "libva-drm.so",
}

// Runtime is the libva symbol table. The core library and each windowing
// interop library load independently, so a host with only libva-drm
// installed can still bring up DRM displays.
type Runtime struct {
	core    *dl.Library
	interop [len(interopLibs)]*dl.Library

	vaInitialize          func(uintptr, *int32, *int32) int32
	vaTerminate           func(uintptr) int32
	vaQueryVendorString   func(uintptr) string
	vaMaxNumProfiles      func(uintptr) int32
	vaQueryConfigProfiles func(uintptr, *int32, *int32) int32

	vaGetDisplay    func(uintptr) uintptr
	vaGetDisplayGLX func(uintptr) uintptr
	vaGetDisplayDRM func(int32) uintptr
}

var (
	loadOnce sync.Once
	shared   *Runtime
)

// Load returns the process-wide libva runtime, loading the libraries on
// first use. Missing libraries are reported per call, never here.
func Load() *Runtime {
	loadOnce.Do(func() {
		r := &Runtime{core: dl.Shared("libva.so", abiVersion)}
		for i, name := range interopLibs {
			r.interop[i] = dl.Shared(name, abiVersion)
		}

		r.core.Bind(&r.vaInitialize, "vaInitialize")
		r.core.Bind(&r.vaTerminate, "vaTerminate")
		r.core.Bind(&r.vaQueryVendorString, "vaQueryVendorString")
		r.core.Bind(&r.vaMaxNumProfiles, "vaMaxNumProfiles")
		r.core.Bind(&r.vaQueryConfigProfiles, "vaQueryConfigProfiles")

		r.interop[InteropX11].Bind(&r.vaGetDisplay, "vaGetDisplay")
		r.interop[InteropGLX].Bind(&r.vaGetDisplayGLX, "vaGetDisplayGLX")
		r.interop[InteropDRM].Bind(&r.vaGetDisplayDRM, "vaGetDisplayDRM")
		shared = r
	})
	return shared
}

// Loaded reports whether the interop library for kind is loaded.
func (r *Runtime) Loaded(kind Interop) bool {
	if kind < 0 || int(kind) >= len(r.interop) {
		return false
	}
	return r.interop[kind].Loaded()
}

// GetDisplay derives a VADisplay from a native handle: an Xlib Display* for
// InteropX11 and InteropGLX, a DRM file descriptor for InteropDRM.
func (r *Runtime) GetDisplay(kind Interop, native uintptr) (Display, error) {
	if !r.Loaded(kind) {
		return 0, fmt.Errorf("%w: %s interop", ErrUnavailable, kind)
	}

	var dpy uintptr
	switch kind {
	case InteropX11:
		if r.vaGetDisplay == nil {
			return 0, fmt.Errorf("%w: vaGetDisplay", ErrUnavailable)
		}
		dpy = r.vaGetDisplay(native)
	case InteropGLX:
		if r.vaGetDisplayGLX == nil {
			return 0, fmt.Errorf("%w: vaGetDisplayGLX", ErrUnavailable)
		}
		dpy = r.vaGetDisplayGLX(native)
	case InteropDRM:
		if r.vaGetDisplayDRM == nil {
			return 0, fmt.Errorf("%w: vaGetDisplayDRM", ErrUnavailable)
		}
		dpy = r.vaGetDisplayDRM(int32(native))
	}
	if dpy == 0 {
		return 0, fmt.Errorf("va: %s returned no display", kind)
	}
	return Display(dpy), nil
}

// Initialize runs vaInitialize on dpy and returns the libva API version. A
// failure carries the libva Status.
func (r *Runtime) Initialize(dpy Display) (major, minor int, err error) {
	if r.vaInitialize == nil {
		return 0, 0, r.coreErr("vaInitialize")
	}
	var mj, mn int32
	if err := check(r.vaInitialize(uintptr(dpy), &mj, &mn)); err != nil {
		return 0, 0, err
	}
	return int(mj), int(mn), nil
}

func (r *Runtime) Terminate(dpy Display) error {
	if r.vaTerminate == nil {
		return r.coreErr("vaTerminate")
	}
	return check(r.vaTerminate(uintptr(dpy)))
}

// VendorString returns the driver's vendor string, or "" if libva does not
// provide one.
func (r *Runtime) VendorString(dpy Display) string {
	if r.vaQueryVendorString == nil {
		return ""
	}
	return r.vaQueryVendorString(uintptr(dpy))
}

// Profiles lists the profiles the driver behind dpy supports.
func (r *Runtime) Profiles(dpy Display) ([]Profile, error) {
	if r.vaMaxNumProfiles == nil || r.vaQueryConfigProfiles == nil {
		return nil, fmt.Errorf("%w: profile query", ErrUnavailable)
	}
	limit := r.vaMaxNumProfiles(uintptr(dpy))
	if limit <= 0 {
		return nil, errors.New("va: driver reports no profiles")
	}
	raw := make([]int32, limit)
	var n int32
	if err := check(r.vaQueryConfigProfiles(uintptr(dpy), &raw[0], &n)); err != nil {
		return nil, err
	}
	n = min(n, limit)
	profiles := make([]Profile, 0, n)
	for _, p := range raw[:n] {
		profiles = append(profiles, Profile(p))
	}
	return profiles, nil
}

func (r *Runtime) coreErr(symbol string) error {
	if err := r.core.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, symbol)
}
