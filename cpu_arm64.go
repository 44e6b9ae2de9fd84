//go:build arm64

package transcode

import "golang.org/x/sys/cpu"

func probeLanes() bool {
	return cpu.ARM64.HasASIMD
}

func cpuFeature() string {
	if cpu.ARM64.HasASIMD {
		return "asimd"
	}
	return "none"
}
