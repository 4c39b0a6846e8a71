//go:build !nogl

package display

const glxSupported = true
