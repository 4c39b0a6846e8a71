package va

import (
	"errors"
	"strings"
	"testing"
)

func TestStatusError(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOperationFailed, "operation failed"},
		{StatusInvalidDisplay, "invalid VADisplay"},
		{StatusUnimplemented, "not implemented"},
		{StatusUnknown, "unknown libva error"},
		{Status(0x7f), "unknown libva error (0x7f)"},
	}
	for _, tt := range tests {
		if got := tt.status.Error(); !strings.Contains(got, tt.want) {
			t.Errorf("Status(%#x).Error() = %q, want it to contain %q", int32(tt.status), got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := check(0); err != nil {
		t.Fatalf("check(0) = %v, want nil", err)
	}

	err := check(int32(StatusInvalidDisplay))
	var status Status
	if !errors.As(err, &status) {
		t.Fatalf("check returned %T, want Status", err)
	}
	if status != StatusInvalidDisplay {
		t.Errorf("status = %#x, want %#x", int32(status), int32(StatusInvalidDisplay))
	}
}

func TestProfileString(t *testing.T) {
	tests := []struct {
		profile Profile
		want    string
	}{
		{ProfileMPEG2Simple, "VAProfileMPEG2Simple"},
		{ProfileH264High, "VAProfileH264High"},
		{ProfileH264ConstrainedBaseline, "VAProfileH264ConstrainedBaseline"},
		{ProfileHEVCMain10, "VAProfileHEVCMain10"},
		{ProfileVP8Version0_3, "VAProfileVP8Version0_3"},
		{ProfileNone, ""},
		{Profile(20), ""},
	}
	for _, tt := range tests {
		if got := tt.profile.String(); got != tt.want {
			t.Errorf("Profile(%d).String() = %q, want %q", int32(tt.profile), got, tt.want)
		}
	}
}

func TestInteropString(t *testing.T) {
	for kind, want := range map[Interop]string{
		InteropX11: "x11",
		InteropGLX: "glx",
		InteropDRM: "drm",
		Interop(9): "Interop(9)",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}
