//go:build !(goexperiment.simd && amd64)

package lanes

// Accel names the implementation behind ASCII64.
const Accel = "words"

// ASCII64 reports whether the first 64 bytes of b are all below 0x80.
func ASCII64(b []byte) bool {
	return ascii64Words(b)
}
