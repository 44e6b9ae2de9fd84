package transcode

import (
	"github.com/gottingen/transcode/internal/lanes"
)

// utf32Clean reports whether both halves hold only BMP scalar values.
func utf32Clean(a, b lanes.U32x8) bool {
	return a.Max(b).ReduceMax() <= 0xFFFF &&
		a.RangeMask(0xD800, 0xDFFF)|b.RangeMask(0xD800, 0xDFFF) == 0
}

func lanesValidUTF32(s []uint32) bool {
	var runningMax lanes.U32x8
	var forbidden uint8
	pos := 0
	for ; pos+8 <= len(s); pos += 8 {
		v := lanes.LoadU32x8(s[pos:])
		runningMax = runningMax.Max(v)
		forbidden |= v.RangeMask(0xD800, 0xDFFF)
	}
	if runningMax.ReduceMax() > 0x10FFFF || forbidden != 0 {
		return false
	}
	return scalarValidateUTF32(s[pos:]).OK()
}

func lanesValidateUTF32(s []uint32) Result {
	pos := 0
	for ; pos+8 <= len(s); pos += 8 {
		v := lanes.LoadU32x8(s[pos:])
		if v.ReduceMax() > 0x10FFFF || v.RangeMask(0xD800, 0xDFFF) != 0 {
			break
		}
	}
	r := scalarValidateUTF32(s[pos:])
	if r.Kind != Success {
		r.Count += pos
		return r
	}
	return Result{Kind: Success, Count: len(s)}
}

// lanesUTF32ToUTF8Fast encodes without per-block checks. Surrogates and
// values above U+10FFFF are tracked in forbidden and runningMax and fail
// the whole call once the blocks are done.
func lanesUTF32ToUTF8Fast(src []uint32, dst []byte) int {
	maybeInitLUT()
	var runningMax lanes.U32x8
	var forbidden uint8
	pos, out := 0, 0
	for ; pos+16 <= len(src); pos += 16 {
		a, b := lanes.LoadU32x8(src[pos:]), lanes.LoadU32x8(src[pos+8:])
		m := a.Max(b)
		runningMax = runningMax.Max(m)
		forbidden |= a.RangeMask(0xD800, 0xDFFF) | b.RangeMask(0xD800, 0xDFFF)
		if m.ReduceMax() <= 0xFFFF {
			out, _ = utf16BlockToUTF8(a.PackU16Sat(b), dst, out, true)
			continue
		}
		for _, cp := range src[pos : pos+16] {
			out = putUTF8(dst, out, cp)
		}
	}
	if runningMax.ReduceMax() > 0x10FFFF || forbidden != 0 {
		return 0
	}
	r := scalarUTF32ToUTF8(src[pos:], dst[out:])
	if r.Kind != Success {
		return 0
	}
	return out + r.Count
}

func lanesUTF32ToUTF8(src []uint32, dst []byte) Result {
	maybeInitLUT()
	pos, out := 0, 0
	for ; pos+16 <= len(src); pos += 16 {
		a, b := lanes.LoadU32x8(src[pos:]), lanes.LoadU32x8(src[pos+8:])
		if utf32Clean(a, b) {
			out, _ = utf16BlockToUTF8(a.PackU16Sat(b), dst, out, false)
			continue
		}
		r := scalarUTF32ToUTF8(src[pos:pos+16], dst[out:])
		if r.Kind != Success {
			r.Count += pos
			return r
		}
		out += r.Count
	}
	r := scalarUTF32ToUTF8(src[pos:], dst[out:])
	if r.Kind != Success {
		r.Count += pos
		return r
	}
	r.Count += out
	return r
}

func lanesValidUTF32ToUTF8(src []uint32, dst []byte) int {
	maybeInitLUT()
	pos, out := 0, 0
	for ; pos+16 <= len(src); pos += 16 {
		a, b := lanes.LoadU32x8(src[pos:]), lanes.LoadU32x8(src[pos+8:])
		if utf32Clean(a, b) {
			out, _ = utf16BlockToUTF8(a.PackU16Sat(b), dst, out, false)
			continue
		}
		out += scalarValidUTF32ToUTF8(src[pos:pos+16], dst[out:])
	}
	return out + scalarValidUTF32ToUTF8(src[pos:], dst[out:])
}

func storeUTF16(v lanes.U16x16, dst []uint16, swap bool) {
	if swap {
		v = v.ByteSwap()
	}
	v.Store(dst)
}

func lanesUTF32ToUTF16(swap bool, src []uint32, dst []uint16) Result {
	pos, out := 0, 0
	for ; pos+16 <= len(src); pos += 16 {
		a, b := lanes.LoadU32x8(src[pos:]), lanes.LoadU32x8(src[pos+8:])
		if utf32Clean(a, b) {
			storeUTF16(a.PackU16Sat(b), dst[out:], swap)
			out += 16
			continue
		}
		r := scalarUTF32ToUTF16(swap, src[pos:pos+16], dst[out:])
		if r.Kind != Success {
			r.Count += pos
			return r
		}
		out += r.Count
	}
	r := scalarUTF32ToUTF16(swap, src[pos:], dst[out:])
	if r.Kind != Success {
		r.Count += pos
		return r
	}
	r.Count += out
	return r
}

func lanesValidUTF32ToUTF16(swap bool, src []uint32, dst []uint16) int {
	pos, out := 0, 0
	for ; pos+16 <= len(src); pos += 16 {
		a, b := lanes.LoadU32x8(src[pos:]), lanes.LoadU32x8(src[pos+8:])
		if utf32Clean(a, b) {
			storeUTF16(a.PackU16Sat(b), dst[out:], swap)
			out += 16
			continue
		}
		out += scalarValidUTF32ToUTF16(swap, src[pos:pos+16], dst[out:])
	}
	return out + scalarValidUTF32ToUTF16(swap, src[pos:], dst[out:])
}
