// Package va binds the parts of libva needed to bring a hardware video
// acceleration display up and down.
package va

import (
	"errors"
	"fmt"
)

// Display is an opaque VADisplay.
type Display uintptr

// ErrUnavailable is returned when libva, or the interop library for a given
// windowing system, could not be loaded.
var ErrUnavailable = errors.New("va: library unavailable")

// Interop selects the libva windowing library a display is derived through.
type Interop int

const (
	InteropX11 Interop = iota
	InteropGLX
	InteropDRM
)

func (i Interop) String() string {
	switch i {
	case InteropX11:
		return "x11"
	case InteropGLX:
		return "glx"
	case InteropDRM:
		return "drm"
	}
	return fmt.Sprintf("Interop(%d)", int(i))
}

// Status is a VAStatus. Any non-zero Status is an error.
type Status int32

const (
	StatusSuccess                Status = 0x00
	StatusOperationFailed        Status = 0x01
	StatusAllocationFailed       Status = 0x02
	StatusInvalidDisplay         Status = 0x03
	StatusInvalidConfig          Status = 0x04
	StatusInvalidContext         Status = 0x05
	StatusInvalidSurface         Status = 0x06
	StatusInvalidBuffer          Status = 0x07
	StatusInvalidImage           Status = 0x08
	StatusInvalidSubpicture      Status = 0x09
	StatusAttrNotSupported       Status = 0x0a
	StatusMaxNumExceeded         Status = 0x0b
	StatusUnsupportedProfile     Status = 0x0c
	StatusUnsupportedEntrypoint  Status = 0x0d
	StatusUnsupportedRTFormat    Status = 0x0e
	StatusUnsupportedBufferType  Status = 0x0f
	StatusSurfaceBusy            Status = 0x10
	StatusFlagNotSupported       Status = 0x11
	StatusInvalidParameter       Status = 0x12
	StatusResolutionNotSupported Status = 0x13
	StatusUnimplemented          Status = 0x14
	StatusUnknown                Status = -1
)

var statusText = map[Status]string{
	StatusSuccess:                "success (no error)",
	StatusOperationFailed:        "operation failed",
	StatusAllocationFailed:       "resource allocation failed",
	StatusInvalidDisplay:         "invalid VADisplay",
	StatusInvalidConfig:          "invalid VAConfigID",
	StatusInvalidContext:         "invalid VAContextID",
	StatusInvalidSurface:         "invalid VASurfaceID",
	StatusInvalidBuffer:          "invalid VABufferID",
	StatusInvalidImage:           "invalid VAImageID",
	StatusInvalidSubpicture:      "invalid VASubpictureID",
	StatusAttrNotSupported:       "attribute not supported",
	StatusMaxNumExceeded:         "list argument exceeds maximum number",
	StatusUnsupportedProfile:     "the requested VAProfile is not supported",
	StatusUnsupportedEntrypoint:  "the requested VAEntryPoint is not supported",
	StatusUnsupportedRTFormat:    "the requested RT Format is not supported",
	StatusUnsupportedBufferType:  "the requested VABufferType is not supported",
	StatusSurfaceBusy:            "surface is in use",
	StatusFlagNotSupported:       "flag not supported",
	StatusInvalidParameter:       "invalid parameter",
	StatusResolutionNotSupported: "resolution not supported",
	StatusUnimplemented:          "the requested function is not implemented",
	StatusUnknown:                "unknown libva error",
}

func (s Status) Error() string {
	if text, ok := statusText[s]; ok {
		return fmt.Sprintf("va: %s (%#x)", text, uint32(s))
	}
	return fmt.Sprintf("va: unknown libva error (%#x)", uint32(s))
}

// check converts a raw VAStatus into an error.
func check(status int32) error {
	if Status(status) == StatusSuccess {
		return nil
	}
	return Status(status)
}
