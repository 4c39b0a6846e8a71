//go:build linux

package va

import (
	"errors"
	"testing"

	"github.com/tinyrange/vadisplay/internal/dl"
)

func missingRuntime() *Runtime {
	r := &Runtime{core: dl.Open("libva-does-not-exist.so", abiVersion)}
	for i := range r.interop {
		r.interop[i] = dl.Open("libva-interop-does-not-exist.so", abiVersion)
	}
	return r
}

func TestRuntimeWithoutLibraries(t *testing.T) {
	r := missingRuntime()

	for _, kind := range []Interop{InteropX11, InteropGLX, InteropDRM} {
		if r.Loaded(kind) {
			t.Errorf("Loaded(%s) = true", kind)
		}
		if _, err := r.GetDisplay(kind, 1); !errors.Is(err, ErrUnavailable) {
			t.Errorf("GetDisplay(%s) = %v, want ErrUnavailable", kind, err)
		}
	}
	if _, _, err := r.Initialize(1); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Initialize = %v, want ErrUnavailable", err)
	}
	if err := r.Terminate(1); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Terminate = %v, want ErrUnavailable", err)
	}
	if v := r.VendorString(1); v != "" {
		t.Errorf("VendorString = %q, want empty", v)
	}
	if _, err := r.Profiles(1); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Profiles = %v, want ErrUnavailable", err)
	}
}

func TestRuntimeBoundSymbols(t *testing.T) {
	r := missingRuntime()
	r.vaInitialize = func(dpy uintptr, major, minor *int32) int32 {
		if dpy != 0x55 {
			return int32(StatusInvalidDisplay)
		}
		*major, *minor = 1, 20
		return 0
	}
	r.vaTerminate = func(uintptr) int32 { return int32(StatusOperationFailed) }
	r.vaMaxNumProfiles = func(uintptr) int32 { return 4 }
	r.vaQueryConfigProfiles = func(_ uintptr, list *int32, n *int32) int32 {
		*list = int32(ProfileH264Main)
		*n = 1
		return 0
	}

	major, minor, err := r.Initialize(0x55)
	if err != nil || major != 1 || minor != 20 {
		t.Fatalf("Initialize = %d.%d, %v", major, minor, err)
	}
	if _, _, err := r.Initialize(0x66); !errors.Is(err, StatusInvalidDisplay) {
		t.Errorf("Initialize on bad display = %v, want StatusInvalidDisplay", err)
	}
	if err := r.Terminate(0x55); !errors.Is(err, StatusOperationFailed) {
		t.Errorf("Terminate = %v, want StatusOperationFailed", err)
	}
	profiles, err := r.Profiles(0x55)
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0] != ProfileH264Main {
		t.Errorf("Profiles = %v", profiles)
	}
}
