package display

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/tinyrange/vadisplay/internal/va"
)

type state int

const (
	stateUnset state = iota
	stateInitializing
	stateAcquired
	stateFailed
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateUnset:
		return "unset"
	case stateInitializing:
		return "initializing"
	case stateAcquired:
		return "acquired"
	case stateFailed:
		return "failed"
	case stateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// native owns the platform handle a VADisplay is derived from.
type native interface {
	// initialize acquires the handle. It may be called once.
	initialize(req Request) error

	// vaDisplay derives the VADisplay from the held handle.
	vaDisplay() (va.Display, error)

	// release closes the handle if this native created it.
	release()

	base() *nativeBase
}

type nativeBase struct {
	handle      uintptr
	selfCreated bool
	state       state
}

func (b *nativeBase) base() *nativeBase { return b }

func (b *nativeBase) held() bool { return b.state == stateAcquired }

// begin moves the native out of stateUnset. A valid external handle is
// adopted on the spot and reported through adopted; the caller then has
// nothing left to do.
func (b *nativeBase) begin(req Request, accepts ...Type) (adopted bool, err error) {
	if b.state != stateUnset {
		return false, fmt.Errorf("display: initialize called in state %s", b.state)
	}
	if !slices.Contains(accepts, req.Type) {
		b.state = stateFailed
		return false, fmt.Errorf("%w: %s request for %v backend", ErrUnsupported, req.Type, accepts)
	}
	b.state = stateInitializing

	if validHandle(req.Handle) {
		b.handle = req.Handle
		b.selfCreated = false
		b.state = stateAcquired
		return true, nil
	}
	return false, nil
}

func (b *nativeBase) finish(err error) error {
	if err != nil {
		b.state = stateFailed
		return err
	}
	b.state = stateAcquired
	return nil
}

var errNoHandle = errors.New("display: no native handle held")

// xlibNative backs both TypeX11 and TypeGLX: the handle is an Xlib Display*
// either way, only the libva interop library differs.
type xlibNative struct {
	nativeBase
	kind    Type
	interop va.Interop

	load    func() Windowing
	xlib    Windowing
	runtime Runtime
	log     *slog.Logger
}

func (n *xlibNative) initialize(req Request) error {
	adopted, err := n.begin(req, n.kind, TypeAuto)
	if err != nil || adopted {
		return err
	}
	xlib := n.load()
	if err := xlib.Available(); err != nil {
		return n.finish(fmt.Errorf("%w: %w", ErrAcquire, err))
	}
	n.xlib = xlib
	n.log.Debug("opening X display", "backend", n.kind)

	if !xlib.InitThreads() {
		n.log.Warn("XInitThreads failed")
		return n.finish(fmt.Errorf("%w: XInitThreads failed", ErrAcquire))
	}
	n.selfCreated = true
	n.handle = xlib.OpenDisplay("")
	if n.handle == 0 {
		return n.finish(fmt.Errorf("%w: XOpenDisplay failed", ErrAcquire))
	}
	return n.finish(nil)
}

func (n *xlibNative) vaDisplay() (va.Display, error) {
	if !n.held() {
		return 0, errNoHandle
	}
	return n.runtime.GetDisplay(n.interop, n.handle)
}

func (n *xlibNative) release() {
	if n.selfCreated && n.held() {
		n.xlib.CloseDisplay(n.handle)
	}
	n.handle = 0
	n.state = stateClosed
}

type drmNative struct {
	nativeBase
	paths   []string
	devices Devices
	runtime Runtime
	log     *slog.Logger
}

func (n *drmNative) initialize(req Request) error {
	adopted, err := n.begin(req, TypeDRM, TypeAuto)
	if err != nil {
		return err
	}
	if adopted {
		fd := int(n.handle)
		n.log.Debug("using external drm device", "fd", fd, "path", n.devices.Name(fd))
		return nil
	}

	n.selfCreated = true
	for _, path := range n.paths {
		fd, err := n.devices.Open(path)
		if err != nil {
			n.log.Debug("drm device unusable", "path", path, "err", err)
			continue
		}
		n.log.Debug("using drm device", "path", path, "fd", fd)
		n.handle = uintptr(fd)
		return n.finish(nil)
	}
	return n.finish(fmt.Errorf("%w: no usable drm device in %v", ErrAcquire, n.paths))
}

func (n *drmNative) vaDisplay() (va.Display, error) {
	if !n.held() {
		return 0, errNoHandle
	}
	return n.runtime.GetDisplay(va.InteropDRM, n.handle)
}

func (n *drmNative) release() {
	if n.selfCreated && n.held() {
		if err := n.devices.Close(int(n.handle)); err != nil {
			n.log.Warn("closing drm device", "err", err)
		}
	}
	n.handle = 0
	n.state = stateClosed
}

// vaNative wraps a VADisplay the caller already owns.
type vaNative struct {
	nativeBase
}

func (n *vaNative) initialize(req Request) error {
	adopted, err := n.begin(req, TypeVA)
	if err != nil || adopted {
		return err
	}
	return n.finish(fmt.Errorf("%w: va backend needs an external VADisplay", ErrAcquire))
}

func (n *vaNative) vaDisplay() (va.Display, error) {
	if !n.held() {
		return 0, errNoHandle
	}
	return va.Display(n.handle), nil
}

func (n *vaNative) release() {
	n.handle = 0
	n.state = stateClosed
}
