// Package display brings up a VA-API display on top of one of several
// windowing backends and tears it down again in the right order.
package display

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/tinyrange/vadisplay/internal/drm"
	"github.com/tinyrange/vadisplay/internal/va"
)

// Manager creates Displays. The zero value is not usable; call New.
type Manager struct {
	windowing func() Windowing
	devices   Devices
	runtime   Runtime
	paths     []string

	isEGL       func() bool
	forceReinit bool
	glx         bool

	log *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithWindowing sets how the Xlib symbol table is obtained. load is only
// called when an X11 or GLX display has to be opened.
func WithWindowing(load func() Windowing) Option {
	return func(m *Manager) { m.windowing = load }
}

func WithDevices(d Devices) Option {
	return func(m *Manager) { m.devices = d }
}

func WithRuntime(r Runtime) Option {
	return func(m *Manager) { m.runtime = r }
}

// WithEGLQuery sets the query reporting whether the renderer uses EGL
// interop. It is consulted when a Display is torn down.
func WithEGLQuery(isEGL func() bool) Option {
	return func(m *Manager) { m.isEGL = isEGL }
}

// WithForcedReinit makes every teardown re-initialize the display before
// terminating it, as the vaterminate_workaround build tag does.
func WithForcedReinit(force bool) Option {
	return func(m *Manager) { m.forceReinit = force }
}

// WithGLX overrides whether the GLX backend is available. It defaults to
// false under the nogl build tag.
func WithGLX(enabled bool) Option {
	return func(m *Manager) { m.glx = enabled }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns a Manager wired to the system libraries unless overridden.
func New(opts ...Option) *Manager {
	m := &Manager{
		paths:       drm.DefaultPaths,
		isEGL:       func() bool { return false },
		forceReinit: forceReinitBeforeTerminate,
		glx:         glxSupported,
		log:         slog.Default(),
	}
	platformDefaults(m)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultManager = sync.OnceValue(func() *Manager { return New() })

// Create creates a Display with the default Manager.
func Create(req Request) (*Display, error) {
	return defaultManager().Create(req)
}

func (m *Manager) native(t Type) (native, error) {
	switch t {
	case TypeX11:
		return m.xlibNative(t), nil
	case TypeGLX:
		if !m.glx {
			m.log.Warn("no OpenGL support, GLX display unavailable")
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
		}
		return m.xlibNative(t), nil
	case TypeDRM:
		return &drmNative{
			paths:   m.paths,
			devices: m.devices,
			runtime: m.runtime,
			log:     m.log,
		}, nil
	case TypeVA:
		return &vaNative{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
}

func (m *Manager) xlibNative(t Type) *xlibNative {
	interop := va.InteropX11
	if t == TypeGLX {
		interop = va.InteropGLX
	}
	return &xlibNative{
		kind:    t,
		interop: interop,
		load:    m.windowing,
		runtime: m.runtime,
		log:     m.log,
	}
}

// Create acquires a native handle for req, derives a VADisplay from it and
// initializes libva on it. On failure nothing is left open.
func (m *Manager) Create(req Request) (*Display, error) {
	n, err := m.native(req.Type)
	if err != nil {
		return nil, err
	}
	if err := n.initialize(req); err != nil {
		n.release()
		return nil, err
	}

	dpy, err := n.vaDisplay()
	if err != nil {
		n.release()
		return nil, fmt.Errorf("display: %s: %w", req.Type, err)
	}

	major, minor, err := m.runtime.Initialize(dpy)
	if err != nil {
		n.release()
		return nil, fmt.Errorf("display: %s: vaInitialize: %w", req.Type, err)
	}
	m.log.Debug("va display initialized", "backend", req.Type, "version", fmt.Sprintf("%d.%d", major, minor))

	d := &Display{
		m:      m,
		va:     dpy,
		native: n,
		typ:    req.Type,
		major:  major,
		minor:  minor,
	}
	d.refs.Store(1)
	return d, nil
}

// needsReinit reports whether tearing down a display of type t must
// re-initialize it first. vaTerminate has been seen to crash on X11 displays
// under EGL interop unless vaInitialize runs again right before it.
func (m *Manager) needsReinit(t Type) bool {
	if m.forceReinit {
		return true
	}
	return m.glx && m.isEGL() && t == TypeX11
}
