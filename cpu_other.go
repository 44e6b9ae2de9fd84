//go:build !(amd64 || arm64)

package transcode

// No vector unit worth using on this platform.
func probeLanes() bool { return false }

func cpuFeature() string { return "none" }
