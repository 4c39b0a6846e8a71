//go:build vaterminate_workaround

package display

const forceReinitBeforeTerminate = true
