//go:build amd64

package transcode

import "golang.org/x/sys/cpu"

// The block kernels are tuned for 256-bit vectors, so native lanes are
// taken automatically only on CPUs with AVX2.
func probeLanes() bool {
	return cpu.X86.HasAVX2
}

func cpuFeature() string {
	if cpu.X86.HasAVX2 {
		return "avx2"
	}
	return "sse2"
}
