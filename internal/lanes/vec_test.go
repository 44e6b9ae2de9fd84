package lanes

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func seq8(start uint8) U8x32 {
	var v U8x32
	for i := range v {
		v[i] = start + uint8(i)
	}
	return v
}

func TestPrev(t *testing.T) {
	prev, cur := seq8(100), seq8(0)

	for _, n := range []int{1, 2, 3} {
		got := cur.Prev(prev, n)
		for i := range got {
			if i < n {
				require.Equal(t, prev[32-n+i], got[i])
			} else {
				require.Equal(t, cur[i-n], got[i])
			}
		}
	}
}

func TestSubSat(t *testing.T) {
	v := U8x32{0, 1, 0x80, 0xFF, 0xE0, 0xDF}
	got := v.SubSatScalar(0xE0 - 0x80)
	require.Equal(t, U8x32{0, 0, 0x20, 0x9F, 0x80, 0x7F}, got)

	var o U8x32
	for i := range o {
		o[i] = 0x10
	}
	require.Equal(t, U8x32{0, 0, 0x70, 0xEF, 0xD0, 0xCF}, v.SubSat(o))
}

func TestLookup16(t *testing.T) {
	var tbl [16]uint8
	for i := range tbl {
		tbl[i] = uint8(i * 3)
	}
	v := seq8(0xF0)
	got := v.Lookup16(&tbl)
	for i := range got {
		require.Equal(t, uint8(int(v[i]&0x0F)*3), got[i])
	}
}

func TestMasks(t *testing.T) {
	var v U8x32
	v[0], v[5], v[31] = 0x80, 0xBF, 0xC3
	v[6] = 0x41

	require.Equal(t, ^uint32(1<<0|1<<5), v.LeaderMask())
	require.Equal(t, uint32(1<<31), v.GreaterEqualMask(0xC0))
	require.Equal(t, uint32(1<<0|1<<5|1<<31), v.GreaterEqualMask(0x80))
	require.False(t, U8x32{}.AnyNonZero())
	require.True(t, v.AnyNonZero())
}

func TestU16Ops(t *testing.T) {
	v := U16x16{0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xD800, 0xDBFF, 0xDC00, 0xDFFF, 0xE000, 0xFFFF}

	require.Equal(t, uint16(0b11), v.LessEqualMask(0x7F)&0x7FF)
	require.Equal(t, uint16(0b1_1110_0000), v.RangeMask(0xD800, 0xDFFF)&0x7FF)
	require.Equal(t, uint16(0b110_0000), v.RangeMask(0xD800, 0xDBFF)&0x7FF)

	sw := v.ByteSwap()
	require.Equal(t, uint16(0x4100), sw[0])
	require.Equal(t, v, sw.ByteSwap())

	var ones, twos U16x16
	for i := range ones {
		ones[i], twos[i] = 1, 2
	}
	sel := ones.Select(twos, 0x8001)
	require.Equal(t, uint16(2), sel[0])
	require.Equal(t, uint16(1), sel[1])
	require.Equal(t, uint16(2), sel[15])

	b := make([]byte, 16)
	v.StoreLowBytes(b)
	require.Equal(t, byte(0x41), b[0])
	require.Equal(t, byte(0xFF), b[3])
}

func TestInterleaveAndCompact(t *testing.T) {
	var a, b U16x16
	for i := range a {
		a[i] = uint16(i)
		b[i] = uint16(0x80 + i)
	}
	v := InterleaveBytes(a, b)
	require.Equal(t, byte(0), v[0])
	require.Equal(t, byte(0x80), v[1])
	require.Equal(t, byte(15), v[30])
	require.Equal(t, byte(0x8F), v[31])

	idx := [16]uint8{0, 2, 3, 6}
	out := make([]byte, 4)
	require.Equal(t, 4, v.Compact(16, &idx, 4, out))
	require.Equal(t, []byte{8, 9, 0x89, 11}, out)
}

func TestSpread3(t *testing.T) {
	var a, b, c U16x16
	for i := range a {
		a[i], b[i], c[i] = uint16(i), uint16(0x40+i), uint16(0x80+i)
	}
	lo, hi := Spread3(a, b, c)
	require.Equal(t, []byte{0, 0x40, 0x80, 0}, lo[:4])
	require.Equal(t, []byte{7, 0x47, 0x87, 0}, lo[28:])
	require.Equal(t, []byte{8, 0x48, 0x88, 0}, hi[:4])
}

func TestGather32(t *testing.T) {
	window := []byte{0xC3, 0xA9, 'a'}
	var idx [32]uint8
	for i := range idx {
		idx[i] = 0xFF
	}
	idx[0], idx[1] = 1, 0
	idx[4] = 2
	v := Gather32(window, &idx)
	require.Equal(t, uint32(0xC3A9), v[0])
	require.Equal(t, uint32('a'), v[1])
	require.Zero(t, v[2])
}

func TestU32Ops(t *testing.T) {
	v := U32x8{1, 0xFFFF, 0x10000, 0xD800, 0x10FFFF, 0x110000, 0, 0xDFFF}
	o := U32x8{2, 0, 0, 0, 0, 0, 0x7FFFFFFF, 0}

	require.Equal(t, uint32(0x7FFFFFFF), v.Max(o).ReduceMax())
	require.Equal(t, uint8(0b1100_1011), v.LessEqualMask(0xFFFF))
	require.Equal(t, uint8(0b1000_1000), v.RangeMask(0xD800, 0xDFFF))

	p := v.PackU16Sat(o)
	require.Equal(t, uint16(0xFFFF), p[1])
	require.Equal(t, uint16(0xFFFF), p[2])
	require.Equal(t, uint16(2), p[8])

	lo, hi := U16x16{1, 2, 3, 4, 5, 6, 7, 8, 9}.Widen()
	require.Equal(t, U32x8{1, 2, 3, 4, 5, 6, 7, 8}, lo)
	require.Equal(t, uint32(9), hi[0])
}

// TestOpsMatchLaneLoops checks the hwy-backed operations against plain
// per-lane loops on random vectors, whatever the dispatch width.
func TestOpsMatchLaneLoops(t *testing.T) {
	r := rand.New(rand.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x1E}, 8))))
	var tbl [16]uint8
	for i := range tbl {
		tbl[i] = uint8(r.UintN(256))
	}

	for range 200 {
		var a, b U8x32
		for i := range a {
			a[i], b[i] = uint8(r.UintN(256)), uint8(r.UintN(256))
		}
		var and, or, xor, sub, sh, look U8x32
		var lead, ge uint32
		for i := range a {
			and[i], or[i], xor[i] = a[i]&b[i], a[i]|b[i], a[i]^b[i]
			sub[i] = a[i] - min(a[i], b[i])
			sh[i] = a[i] >> 3
			look[i] = tbl[a[i]&0x0F]
			if a[i]&0xC0 != 0x80 {
				lead |= 1 << i
			}
			if a[i] >= 0xE0 {
				ge |= 1 << i
			}
		}
		require.Equal(t, and, a.And(b))
		require.Equal(t, or, a.Or(b))
		require.Equal(t, xor, a.Xor(b))
		require.Equal(t, sub, a.SubSat(b))
		require.Equal(t, sh, a.Shr(3))
		require.Equal(t, look, a.Lookup16(&tbl))
		require.Equal(t, lead, a.LeaderMask())
		require.Equal(t, ge, a.GreaterEqualMask(0xE0))

		lo, hi := a.Widen()
		for i := range lo {
			require.Equal(t, uint16(a[i]), lo[i])
			require.Equal(t, uint16(a[16+i]), hi[i])
		}
		out := make([]byte, 32)
		a.Store(out)
		require.Equal(t, a[:], out)

		var u U16x16
		for i := range u {
			u[i] = uint16(r.UintN(0x10000))
		}
		var le, rng uint16
		for i := range u {
			if u[i] <= 0x7FF {
				le |= 1 << i
			}
			if u[i] >= 0xD800 && u[i] <= 0xDFFF {
				rng |= 1 << i
			}
		}
		require.Equal(t, le, u.LessEqualMask(0x7FF))
		require.Equal(t, rng, u.RangeMask(0xD800, 0xDFFF))
		w0, w1 := u.Widen()
		require.Equal(t, uint32(u[7]), w0[7])
		require.Equal(t, uint32(u[15]), w1[7])

		var x U32x8
		for i := range x {
			x[i] = r.Uint32() >> r.UintN(32)
		}
		top := x[0]
		for _, e := range x {
			top = max(top, e)
		}
		require.Equal(t, top, x.ReduceMax())
		p := x.PackU16Sat(x)
		for i := range x {
			require.Equal(t, uint16(min(x[i], 0xFFFF)), p[i])
			require.Equal(t, p[i], p[8+i])
		}
	}
}

func TestASCII64(t *testing.T) {
	r := rand.New(rand.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x0D}, 8))))
	block := make([]byte, 64)
	for i := range block {
		block[i] = byte(r.IntN(0x80))
	}
	require.True(t, ASCII64(block))
	require.True(t, ascii64Words(block))
	require.Equal(t, 64, ASCIIPrefix(block))

	for pos := range block {
		bad := bytes.Clone(block)
		bad[pos] |= 0x80
		require.False(t, ASCII64(bad), "pos %d", pos)
		require.False(t, ascii64Words(bad), "pos %d", pos)
		require.Equal(t, pos, ASCIIPrefix(bad))
	}
	require.Equal(t, 3, ASCIIPrefix([]byte("abc")))
	require.Zero(t, ASCIIPrefix(nil))
}

func BenchmarkASCII64(b *testing.B) {
	block := bytes.Repeat([]byte("abcdefgh"), 8)
	b.SetBytes(64)
	for b.Loop() {
		ASCII64(block)
	}
}
