package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinyrange/vadisplay/internal/va"
)

// Type selects the windowing backend a display is acquired through.
type Type int

const (
	TypeX11 Type = iota
	TypeGLX
	TypeDRM
	TypeVA
	TypeAuto
)

var typeNames = [...]string{
	TypeX11:  "x11",
	TypeGLX:  "glx",
	TypeDRM:  "drm",
	TypeVA:   "va",
	TypeAuto: "auto",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType parses a backend name as accepted on the command line and in the
// config file.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown display type %q", s)
}

// NoHandle asks the backend to create its own native handle.
const NoHandle uintptr = 0

// invalidHandle is -1 as a uintptr, the conventional "no descriptor" value.
const invalidHandle = ^uintptr(0)

// Request describes the display a caller wants. When Handle is set the
// backend adopts it instead of creating one, and never closes it.
type Request struct {
	Type Type

	// Handle is an Xlib Display* for TypeX11 and TypeGLX, a DRM file
	// descriptor for TypeDRM and a VADisplay for TypeVA. Both NoHandle and -1
	// mean "none".
	Handle uintptr
}

func validHandle(h uintptr) bool {
	return h != NoHandle && h != invalidHandle
}

var (
	// ErrUnsupported is returned for backend types that cannot be created in
	// this build.
	ErrUnsupported = errors.New("display: unsupported backend")

	// ErrAcquire is returned when the native handle could not be obtained.
	ErrAcquire = errors.New("display: cannot acquire native handle")
)

// Windowing is the Xlib subset used by the X11 and GLX backends.
type Windowing interface {
	Available() error
	InitThreads() bool
	OpenDisplay(name string) uintptr
	CloseDisplay(dpy uintptr) int
}

// Devices opens DRM device nodes.
type Devices interface {
	Open(path string) (int, error)
	Close(fd int) error

	// Name resolves the device path behind fd, or returns "".
	Name(fd int) string
}

// Runtime is the acceleration runtime a display is brought up with.
type Runtime interface {
	GetDisplay(kind va.Interop, native uintptr) (va.Display, error)
	Initialize(dpy va.Display) (major, minor int, err error)
	Terminate(dpy va.Display) error
}
