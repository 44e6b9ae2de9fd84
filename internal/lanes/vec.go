// Package lanes provides fixed-width vector values and the lane operations
// the transcoder's block kernels are written in: lane-wise logic and
// arithmetic, saturating subtraction, 16-entry nibble lookups, cross-vector
// byte alignment and bitmask extraction.
//
// The vectors are 256-bit arrays. Every operation walks its array one
// go-highway vector at a time (hwy.MaxLanes wide), so the same kernels run
// on 128-, 256- and 512-bit dispatch targets. Block probes that dominate
// throughput (ASCII64) have architecture-specific versions behind build
// tags.
package lanes

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Native reports whether the lane operations execute on hardware vector
// registers. The portable hwy ops keep their lanes in Go slices, so the
// kernels are correct everywhere but not faster than the scalar engine.
const Native = false

// U8x32 is a 256-bit vector of 32 unsigned bytes.
type U8x32 [32]uint8

// U16x16 is a 256-bit vector of 16 unsigned 16-bit lanes.
type U16x16 [16]uint16

// U32x8 is a 256-bit vector of 8 unsigned 32-bit lanes.
type U32x8 [8]uint32

// each1 stores op(a) into dst, one hwy vector at a time.
func each1[T hwy.Integers](dst, a []T, op func(x hwy.Vec[T]) hwy.Vec[T]) {
	w := hwy.MaxLanes[T]()
	for i := 0; i < len(dst); i += w {
		hwy.Store(op(hwy.Load(a[i:])), dst[i:])
	}
}

// each2 stores op(a, b) into dst, one hwy vector at a time.
func each2[T hwy.Integers](dst, a, b []T, op func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	w := hwy.MaxLanes[T]()
	for i := 0; i < len(dst); i += w {
		hwy.Store(op(hwy.Load(a[i:]), hwy.Load(b[i:])), dst[i:])
	}
}

// bitsOf gathers cmp over a into a bitmask; bit i is lane i.
func bitsOf[T hwy.Integers](a []T, cmp func(x hwy.Vec[T]) hwy.Mask[T]) uint64 {
	w := hwy.MaxLanes[T]()
	var m uint64
	for i := 0; i < len(a); i += w {
		m |= hwy.BitsFromMask(cmp(hwy.Load(a[i:]))) << i
	}
	return m
}

func lessEqual[T hwy.Integers](a []T, x T) uint64 {
	s := hwy.Set(x)
	return bitsOf(a, func(v hwy.Vec[T]) hwy.Mask[T] { return hwy.LessEqual(v, s) })
}

// inRange tests lo <= lane <= hi with one unsigned comparison.
func inRange[T hwy.UnsignedInts](a []T, lo, hi T) uint64 {
	base, span := hwy.Set(lo), hwy.Set(hi-lo)
	return bitsOf(a, func(v hwy.Vec[T]) hwy.Mask[T] { return hwy.LessEqual(hwy.Sub(v, base), span) })
}

func andScalar[T hwy.Integers](dst, a []T, m T) {
	s := hwy.Set(m)
	each1(dst, a, func(v hwy.Vec[T]) hwy.Vec[T] { return hwy.And(v, s) })
}

func shr[T hwy.Integers](dst, a []T, n uint) {
	each1(dst, a, func(v hwy.Vec[T]) hwy.Vec[T] { return hwy.ShiftRight(v, int(n)) })
}

// LoadU8x32 loads the first 32 bytes of b.
func LoadU8x32(b []byte) U8x32 {
	return U8x32(b[:32])
}

// Store writes the vector to the first 32 bytes of b.
func (v U8x32) Store(b []byte) {
	hwy.Store(hwy.Load(v[:16]), b[:16])
	hwy.Store(hwy.Load(v[16:]), b[16:32])
}

func (v U8x32) And(o U8x32) (r U8x32) {
	each2(r[:], v[:], o[:], hwy.And[uint8])
	return r
}

func (v U8x32) Or(o U8x32) (r U8x32) {
	each2(r[:], v[:], o[:], hwy.Or[uint8])
	return r
}

func (v U8x32) Xor(o U8x32) (r U8x32) {
	each2(r[:], v[:], o[:], hwy.Xor[uint8])
	return r
}

// AndScalar masks every lane with m.
func (v U8x32) AndScalar(m uint8) (r U8x32) {
	andScalar(r[:], v[:], m)
	return r
}

// Shr shifts every lane right by n bits.
func (v U8x32) Shr(n uint) (r U8x32) {
	shr(r[:], v[:], n)
	return r
}

// SubSat subtracts o lane-wise, clamping at zero.
func (v U8x32) SubSat(o U8x32) (r U8x32) {
	each2(r[:], v[:], o[:], hwy.SaturatedSub[uint8])
	return r
}

// SubSatScalar subtracts x from every lane, clamping at zero.
func (v U8x32) SubSatScalar(x uint8) (r U8x32) {
	s := hwy.Set(x)
	each1(r[:], v[:], func(a hwy.Vec[uint8]) hwy.Vec[uint8] { return hwy.SaturatedSub(a, s) })
	return r
}

// Lookup16 replaces every lane by t[lane & 0x0F]. The table fills one
// 128-bit block, so lookups go 16 lanes at a time as PSHUFB and TBL do.
func (v U8x32) Lookup16(t *[16]uint8) (r U8x32) {
	tbl := hwy.Load(t[:])
	nib := hwy.Set[uint8](0x0F)
	for i := 0; i < len(v); i += 16 {
		idx := hwy.And(hwy.Load(v[i:i+16]), nib)
		hwy.Store(hwy.TableLookupBytes(tbl, idx), r[i:])
	}
	return r
}

// Prev returns the vector shifted n lanes towards higher indices with the
// vacated low lanes filled from the top of prev: lane i holds the byte that
// sits n positions before lane i in the stream prev||v.
func (v U8x32) Prev(prev U8x32, n int) U8x32 {
	var r U8x32
	copy(r[:n], prev[32-n:])
	copy(r[n:], v[:32-n])
	return r
}

// AnyNonZero reports whether some lane is not zero.
func (v U8x32) AnyNonZero() bool {
	zero := hwy.Zero[uint8]()
	return bitsOf(v[:], func(a hwy.Vec[uint8]) hwy.Mask[uint8] { return hwy.NotEqual(a, zero) }) != 0
}

// LeaderMask sets bit i when lane i is not a UTF-8 continuation byte, that
// is when lane & 0xC0 != 0x80.
func (v U8x32) LeaderMask() uint32 {
	top, cont := hwy.Set[uint8](0xC0), hwy.Set[uint8](0x80)
	return uint32(bitsOf(v[:], func(a hwy.Vec[uint8]) hwy.Mask[uint8] {
		return hwy.NotEqual(hwy.And(a, top), cont)
	}))
}

// GreaterEqualMask sets bit i when lane i >= x.
func (v U8x32) GreaterEqualMask(x uint8) uint32 {
	s := hwy.Set(x)
	return uint32(bitsOf(v[:], func(a hwy.Vec[uint8]) hwy.Mask[uint8] { return hwy.GreaterEqual(a, s) }))
}

// Widen zero-extends the 32 byte lanes into two 16-bit vectors.
func (v U8x32) Widen() (lo, hi U16x16) {
	var wide [32]uint16
	w := min(hwy.MaxLanes[uint16](), 16)
	for i := 0; i < len(v); i += w {
		hwy.Store(hwy.PromoteU8ToU16(hwy.Load(v[i:i+w])), wide[i:])
	}
	return U16x16(wide[:16]), U16x16(wide[16:])
}

// LoadU16x16 loads the first 16 units of s.
func LoadU16x16(s []uint16) U16x16 {
	return U16x16(s[:16])
}

// Store writes the vector to the first 16 units of s.
func (v U16x16) Store(s []uint16) {
	each1(s[:16], v[:], func(a hwy.Vec[uint16]) hwy.Vec[uint16] { return a })
}

// ByteSwap swaps the two bytes of every lane.
func (v U16x16) ByteSwap() (r U16x16) {
	each1(r[:], v[:], func(a hwy.Vec[uint16]) hwy.Vec[uint16] {
		return hwy.Or(hwy.ShiftLeft(a, 8), hwy.ShiftRight(a, 8))
	})
	return r
}

func (v U16x16) And(o U16x16) (r U16x16) {
	each2(r[:], v[:], o[:], hwy.And[uint16])
	return r
}

func (v U16x16) Or(o U16x16) (r U16x16) {
	each2(r[:], v[:], o[:], hwy.Or[uint16])
	return r
}

// Shr shifts every lane right by n bits.
func (v U16x16) Shr(n uint) (r U16x16) {
	shr(r[:], v[:], n)
	return r
}

// LessEqualMask sets bit i when lane i <= x.
func (v U16x16) LessEqualMask(x uint16) uint16 {
	return uint16(lessEqual(v[:], x))
}

// RangeMask sets bit i when lo <= lane i <= hi.
func (v U16x16) RangeMask(lo, hi uint16) uint16 {
	return uint16(inRange(v[:], lo, hi))
}

// AndScalar masks every lane with m.
func (v U16x16) AndScalar(m uint16) (r U16x16) {
	andScalar(r[:], v[:], m)
	return r
}

// OrScalar sets the bits of m in every lane.
func (v U16x16) OrScalar(m uint16) (r U16x16) {
	s := hwy.Set(m)
	each1(r[:], v[:], func(a hwy.Vec[uint16]) hwy.Vec[uint16] { return hwy.Or(a, s) })
	return r
}

// Select returns v with lane i replaced by o[i] wherever bit i of mask is set.
func (v U16x16) Select(o U16x16, mask uint16) (r U16x16) {
	w := hwy.MaxLanes[uint16]()
	for i := 0; i < len(r); i += w {
		m := hwy.MaskFromBits[uint16](uint64(mask) >> i)
		hwy.Store(hwy.IfThenElse(m, hwy.Load(o[i:]), hwy.Load(v[i:])), r[i:])
	}
	return r
}

// StoreLowBytes writes the low byte of every lane to the first 16 bytes of b.
func (v U16x16) StoreLowBytes(b []byte) {
	b = b[:16]
	low := hwy.Set[uint16](0xFF)
	w := hwy.MaxLanes[uint16]()
	for i := 0; i < len(v); i += w {
		hwy.Store(hwy.DemoteU16ToU8(hwy.And(hwy.Load(v[i:]), low)), b[i:])
	}
}

// InterleaveBytes returns the low bytes of a and b interleaved: byte 2i is
// from a[i], byte 2i+1 from b[i].
func InterleaveBytes(a, b U16x16) U8x32 {
	var la, lb [16]uint8
	a.StoreLowBytes(la[:])
	b.StoreLowBytes(lb[:])
	va, vb := hwy.Load(la[:]), hwy.Load(lb[:])
	var r U8x32
	hwy.Store(hwy.InterleaveLower(va, vb), r[:16])
	hwy.Store(hwy.InterleaveUpper(va, vb), r[16:])
	return r
}

// Spread3 lays out the low bytes of a, b and c as four-byte groups
// {a[i], b[i], c[i], 0}; lanes 0-7 land in lo and lanes 8-15 in hi.
func Spread3(a, b, c U16x16) (lo, hi U8x32) {
	for i := 0; i < 8; i++ {
		lo[4*i] = byte(a[i])
		lo[4*i+1] = byte(b[i])
		lo[4*i+2] = byte(c[i])
		hi[4*i] = byte(a[8+i])
		hi[4*i+1] = byte(b[8+i])
		hi[4*i+2] = byte(c[8+i])
	}
	return lo, hi
}

// Compact writes v[base+idx[j]] to b[j] for j < n and returns n. It is the
// compress-store half of a shuffle: idx comes from a table keyed by a lane
// bitmask and indexes the 16 bytes at base.
func (v *U8x32) Compact(base int, idx *[16]uint8, n int, b []byte) int {
	hwy.Store(hwy.TableLookupBytes(hwy.Load(v[base:base+16]), hwy.Load(idx[:n])), b[:n])
	return n
}

// Widen zero-extends the 16 lanes into two 32-bit vectors.
func (v U16x16) Widen() (lo, hi U32x8) {
	var wide [16]uint32
	w := min(hwy.MaxLanes[uint32](), 8)
	for i := 0; i < len(v); i += w {
		hwy.Store(hwy.PromoteU16ToU32(hwy.Load(v[i:i+w])), wide[i:])
	}
	return U32x8(wide[:8]), U32x8(wide[8:])
}

// LoadU32x8 loads the first 8 values of s.
func LoadU32x8(s []uint32) U32x8 {
	return U32x8(s[:8])
}

// Store writes the vector to the first 8 values of s.
func (v U32x8) Store(s []uint32) {
	each1(s[:8], v[:], func(a hwy.Vec[uint32]) hwy.Vec[uint32] { return a })
}

func (v U32x8) And(o U32x8) (r U32x8) {
	each2(r[:], v[:], o[:], hwy.And[uint32])
	return r
}

func (v U32x8) Or(o U32x8) (r U32x8) {
	each2(r[:], v[:], o[:], hwy.Or[uint32])
	return r
}

// AndScalar masks every lane with m.
func (v U32x8) AndScalar(m uint32) (r U32x8) {
	andScalar(r[:], v[:], m)
	return r
}

// Shr shifts every lane right by n bits.
func (v U32x8) Shr(n uint) (r U32x8) {
	shr(r[:], v[:], n)
	return r
}

// Gather32 assembles eight 32-bit lanes from window: byte k of lane i is
// window[idx[4*i+k]], or zero where the index is 0xFF.
func Gather32(window []byte, idx *[32]uint8) U32x8 {
	var v U32x8
	for i := range v {
		var x uint32
		for k := 0; k < 4; k++ {
			if j := idx[4*i+k]; j != 0xFF {
				x |= uint32(window[j]) << (8 * k)
			}
		}
		v[i] = x
	}
	return v
}

// Max returns the lane-wise maximum of v and o.
func (v U32x8) Max(o U32x8) (r U32x8) {
	each2(r[:], v[:], o[:], hwy.Max[uint32])
	return r
}

// ReduceMax returns the largest lane.
func (v U32x8) ReduceMax() uint32 {
	var m uint32
	w := hwy.MaxLanes[uint32]()
	for i := 0; i < len(v); i += w {
		m = max(m, hwy.ReduceMax(hwy.Load(v[i:])))
	}
	return m
}

// LessEqualMask sets bit i when lane i <= x.
func (v U32x8) LessEqualMask(x uint32) uint8 {
	return uint8(lessEqual(v[:], x))
}

// RangeMask sets bit i when lo <= lane i <= hi.
func (v U32x8) RangeMask(lo, hi uint32) uint8 {
	return uint8(inRange(v[:], lo, hi))
}

// PackU16Sat narrows both vectors to 16-bit lanes with unsigned saturation;
// v fills the low eight lanes and o the high eight.
func (v U32x8) PackU16Sat(o U32x8) (r U16x16) {
	w := hwy.MaxLanes[uint32]()
	for i := 0; i < len(v); i += w {
		hwy.Store(hwy.DemoteU32ToU16(hwy.Load(v[i:])), r[i:8])
		hwy.Store(hwy.DemoteU32ToU16(hwy.Load(o[i:])), r[8+i:])
	}
	return r
}
