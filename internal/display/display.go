package display

import (
	"sync/atomic"

	"github.com/tinyrange/vadisplay/internal/va"
)

// Display is an initialized VA display shared by reference. It owns the
// native handle it was derived from; both are released by the last Release.
type Display struct {
	m    *Manager
	refs atomic.Int32

	va     va.Display
	native native
	typ    Type
	major  int
	minor  int
}

// VADisplay returns the VADisplay for use by decoders. It must not be used
// after the last Release.
func (d *Display) VADisplay() va.Display { return d.va }

// Type returns the backend type the display was requested with.
func (d *Display) Type() Type { return d.typ }

// Version returns the libva API version reported by vaInitialize.
func (d *Display) Version() (major, minor int) { return d.major, d.minor }

// Ref adds a reference and returns d.
func (d *Display) Ref() *Display {
	if d.refs.Add(1) <= 1 {
		panic("display: Ref on released Display")
	}
	return d
}

// Release drops a reference. The last one terminates libva on the display
// and then releases the native handle.
func (d *Display) Release() {
	switch n := d.refs.Add(-1); {
	case n == 0:
		d.destroy()
	case n < 0:
		panic("display: Release without matching reference")
	}
}

func (d *Display) destroy() {
	log := d.m.log
	if d.va != 0 {
		if d.m.needsReinit(d.typ) {
			log.Debug("vaInitialize before terminate (work around for vaTerminate crash)")
			if _, _, err := d.m.runtime.Initialize(d.va); err != nil {
				log.Debug("re-initialize before terminate failed", "err", err)
			}
		}
		log.Debug("destroying va display", "display", uintptr(d.va), "backend", d.typ)
		if err := d.m.runtime.Terminate(d.va); err != nil {
			log.Warn("vaTerminate failed", "err", err)
		}
		d.va = 0
	}
	d.native.release()
}
