//go:build goexperiment.simd && amd64

package lanes

import "simd/archsimd"

// Accel names the implementation behind ASCII64.
const Accel = "archsimd"

var useAVX2 = archsimd.X86.AVX2()

// ASCII64 reports whether the first 64 bytes of b are all below 0x80. With
// AVX2 both halves are folded with a signed minimum: any byte >= 0x80 is
// negative as int8 and survives the fold.
func ASCII64(b []byte) bool {
	if !useAVX2 {
		return ascii64Words(b)
	}
	_ = b[63]
	zero := archsimd.BroadcastInt8x32(0)
	lo := archsimd.LoadUint8x32Slice(b).AsInt8x32()
	hi := archsimd.LoadUint8x32Slice(b[32:]).AsInt8x32()
	return toBits(lo.Min(hi).Min(zero).Equal(zero)) == 0xFFFFFFFF
}

func toBits(mask archsimd.Mask8x32) uint32 {
	var tmp [32]int8
	mask.ToInt8x32().Store(&tmp)
	var m uint32
	for i := 0; i < 32; i++ {
		m |= (uint32(tmp[i]) >> 7 & 1) << i
	}
	return m
}
