package display

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/tinyrange/vadisplay/internal/va"
)

// recorder collects the native calls made by every fake, in order.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func (r *recorder) index(event string) int {
	for i, e := range r.events {
		if e == event {
			return i
		}
	}
	return -1
}

type fakeWindowing struct {
	rec         *recorder
	unavailable error
	threadsFail bool
	display     uintptr
	loads       int
}

func (w *fakeWindowing) load() Windowing {
	w.loads++
	return w
}

func (w *fakeWindowing) Available() error { return w.unavailable }

func (w *fakeWindowing) InitThreads() bool {
	w.rec.add("XInitThreads")
	return !w.threadsFail
}

func (w *fakeWindowing) OpenDisplay(name string) uintptr {
	w.rec.add("XOpenDisplay(%q)", name)
	return w.display
}

func (w *fakeWindowing) CloseDisplay(dpy uintptr) int {
	w.rec.add("XCloseDisplay(%#x)", dpy)
	return 0
}

type fakeDevices struct {
	rec   *recorder
	nodes map[string]int
	names map[int]string
}

func (d *fakeDevices) Open(path string) (int, error) {
	d.rec.add("open(%s)", path)
	if fd, ok := d.nodes[path]; ok {
		return fd, nil
	}
	return -1, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

func (d *fakeDevices) Close(fd int) error {
	d.rec.add("close(%d)", fd)
	return nil
}

func (d *fakeDevices) Name(fd int) string {
	d.rec.add("name(%d)", fd)
	return d.names[fd]
}

type fakeRuntime struct {
	rec          *recorder
	unavailable  map[va.Interop]bool
	initErr      error
	reinitErr    error
	terminateErr error
	inits        int
}

func (r *fakeRuntime) GetDisplay(kind va.Interop, native uintptr) (va.Display, error) {
	if r.unavailable[kind] {
		return 0, fmt.Errorf("%w: %s interop", va.ErrUnavailable, kind)
	}
	r.rec.add("vaGetDisplay(%s, %#x)", kind, native)
	return va.Display(0x1000 + native), nil
}

func (r *fakeRuntime) Initialize(dpy va.Display) (int, int, error) {
	r.rec.add("vaInitialize(%#x)", uintptr(dpy))
	r.inits++
	if r.inits > 1 && r.reinitErr != nil {
		return 0, 0, r.reinitErr
	}
	if r.initErr != nil {
		return 0, 0, r.initErr
	}
	return 1, 20, nil
}

func (r *fakeRuntime) Terminate(dpy va.Display) error {
	r.rec.add("vaTerminate(%#x)", uintptr(dpy))
	return r.terminateErr
}

type harness struct {
	rec       *recorder
	windowing *fakeWindowing
	devices   *fakeDevices
	runtime   *fakeRuntime
	egl       bool
}

func newHarness() *harness {
	rec := &recorder{}
	return &harness{
		rec:       rec,
		windowing: &fakeWindowing{rec: rec, display: 0xd00},
		devices: &fakeDevices{
			rec: rec,
			nodes: map[string]int{
				"/dev/dri/renderD128": 7,
				"/dev/dri/card0":      8,
			},
			names: map[int]string{5: "/dev/dri/renderD129"},
		},
		runtime: &fakeRuntime{rec: rec, unavailable: map[va.Interop]bool{}},
	}
}

func (h *harness) manager(opts ...Option) *Manager {
	base := []Option{
		WithWindowing(h.windowing.load),
		WithDevices(h.devices),
		WithRuntime(h.runtime),
		WithEGLQuery(func() bool { return h.egl }),
		WithForcedReinit(false),
		WithGLX(true),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return New(append(base, opts...)...)
}

// debugLogger returns a logger writing every level to buf.
func debugLogger(buf *bytes.Buffer) Option {
	return WithLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

var errDriver = errors.New("driver exploded")
