//go:build linux

// Package dl loads system shared libraries at runtime so the binary never
// links against a library that may be missing on the host.
package dl

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

// ErrNotLoaded is returned by symbol lookups on a library that failed to load.
var ErrNotLoaded = errors.New("library not loaded")

// Replaced in tests.
var (
	dlopen  = purego.Dlopen
	dlsym   = purego.Dlsym
	dlclose = purego.Dlclose
)

// Library is a shared library opened with dlopen. A Library whose load failed
// is still usable: every lookup reports it as unavailable.
type Library struct {
	name      string
	path      string
	version   int
	versioned bool
	handle    uintptr
	err       error
}

// Open loads name. If version is non-negative the versioned soname
// (name.version) is tried first and the bare name is used as a fallback.
func Open(name string, version int) *Library {
	lib := &Library{name: name, version: version}

	if version >= 0 {
		path := fmt.Sprintf("%s.%d", name, version)
		h, err := dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			lib.path, lib.handle, lib.versioned = path, h, true
			logger().Debug("library loaded", "path", path)
			return lib
		}
	}

	h, err := dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		lib.path = name
		lib.err = fmt.Errorf("dlopen %s: %w", name, err)
		logger().Warn("can not load library", "name", name, "version", version, "err", err)
		return lib
	}
	lib.path, lib.handle, lib.err = name, h, nil
	logger().Debug("library loaded", "path", name)
	return lib
}

var (
	sharedMu sync.Mutex
	shared   = map[string]*Library{}
)

// Shared returns the process-wide Library for name and version, opening it on
// first use. Libraries obtained this way live for the life of the process
// and must not be closed; Close is for libraries obtained with Open.
func Shared(name string, version int) *Library {
	key := fmt.Sprintf("%s#%d", name, version)

	sharedMu.Lock()
	defer sharedMu.Unlock()

	if lib, ok := shared[key]; ok {
		return lib
	}
	lib := Open(name, version)
	shared[key] = lib
	return lib
}

// Path is the name that was handed to dlopen last.
func (l *Library) Path() string { return l.path }

// Versioned reports whether the versioned soname was the one loaded.
func (l *Library) Versioned() bool { return l.versioned }

func (l *Library) Loaded() bool { return l.handle != 0 }

// Err returns the load error, or nil if the library is loaded.
func (l *Library) Err() error {
	if l.Loaded() {
		return nil
	}
	if l.err == nil {
		return ErrNotLoaded
	}
	return fmt.Errorf("%w: %w", ErrNotLoaded, l.err)
}

// Lookup resolves symbol to its address.
func (l *Library) Lookup(symbol string) (uintptr, error) {
	if !l.Loaded() {
		return 0, fmt.Errorf("%s: %w", l.name, ErrNotLoaded)
	}
	addr, err := dlsym(l.handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("%s: dlsym %s: %w", l.path, symbol, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("%s: symbol %s is null", l.path, symbol)
	}
	return addr, nil
}

// Bind resolves symbol and stores a callable Go function in fptr, which must
// be a pointer to a func variable. It reports false and leaves fptr untouched
// when the symbol cannot be resolved.
func (l *Library) Bind(fptr any, symbol string) bool {
	addr, err := l.Lookup(symbol)
	if err != nil {
		logger().Debug("symbol unavailable", "symbol", symbol, "err", err)
		return false
	}
	purego.RegisterFunc(fptr, addr)
	return true
}

// Close unloads a library obtained with Open. Functions bound from it must
// not be called afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	if err := dlclose(l.handle); err != nil {
		return fmt.Errorf("dlclose %s: %w", l.path, err)
	}
	l.handle = 0
	return nil
}
