// Package drm opens DRM device nodes for direct rendering access.
package drm

// DefaultPaths lists the device nodes tried for a self-opened DRM handle, in
// order. Render nodes need no DRM master and are preferred.
var DefaultPaths = []string{
	"/dev/dri/renderD128",
	"/dev/dri/card0",
}
