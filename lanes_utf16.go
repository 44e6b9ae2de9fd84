package transcode

import (
	"github.com/gottingen/transcode/internal/lanes"
)

func loadUTF16(s []uint16, swap bool) lanes.U16x16 {
	v := lanes.LoadU16x16(s)
	if swap {
		v = v.ByteSwap()
	}
	return v
}

func lanesValidateUTF16(swap bool, s []uint16) Result {
	pos := 0
	for pos+16 <= len(s) {
		v := loadUTF16(s[pos:], swap)
		sur := v.RangeMask(0xD800, 0xDFFF)
		if sur == 0 {
			pos += 16
			continue
		}
		hi := v.RangeMask(0xD800, 0xDBFF)
		lo := sur &^ hi
		if hi&0x8000 != 0 {
			// the last lane pairs with the next block
			if lo == (hi&0x7FFF)<<1 {
				pos += 15
				continue
			}
		} else if lo == hi<<1 {
			pos += 16
			continue
		}
		break
	}
	r := scalarValidateUTF16(swap, s[pos:])
	if r.Kind != Success {
		r.Count += pos
		return r
	}
	return Result{Kind: Success, Count: len(s)}
}

// utf16BlockToUTF8 encodes 16 units holding no surrogates. It writes
// nothing and reports false when a surrogate is present, unless
// allowSurrogates is set, in which case they are encoded as three bytes.
func utf16BlockToUTF8(v lanes.U16x16, dst []byte, out int, allowSurrogates bool) (int, bool) {
	ascii := v.LessEqualMask(0x7F)
	if ascii == 0xFFFF {
		v.StoreLowBytes(dst[out:])
		return out + 16, true
	}
	last := v.AndScalar(0x3F).OrScalar(0x80)
	lead2 := v.Shr(6).OrScalar(0xC0)
	two := v.LessEqualMask(0x7FF)
	if two == 0xFFFF {
		b := lanes.InterleaveBytes(lead2.Select(v, ascii), last)
		e := &pack12[ascii&0xFF]
		out += b.Compact(0, &e.idx, int(e.n), dst[out:])
		e = &pack12[ascii>>8]
		out += b.Compact(16, &e.idx, int(e.n), dst[out:])
		return out, true
	}
	if !allowSurrogates && v.RangeMask(0xD800, 0xDFFF) != 0 {
		return out, false
	}
	b0 := v.Shr(12).OrScalar(0xE0).Select(lead2, two).Select(v, ascii)
	b1 := v.Shr(6).AndScalar(0x3F).OrScalar(0x80).Select(last, two)
	lo, hi := lanes.Spread3(b0, b1, last)
	na, nt := ^ascii, ^two
	for q := 0; q < 4; q++ {
		key := spread4[na>>(4*q)&0xF] + spread4[nt>>(4*q)&0xF]
		e := &pack123[key]
		if q < 2 {
			out += lo.Compact(16*q, &e.idx, int(e.n), dst[out:])
		} else {
			out += hi.Compact(16*(q-2), &e.idx, int(e.n), dst[out:])
		}
	}
	return out, true
}

// surrogateBlockEnd returns the end of the block at pos for a scalar pass,
// taking one more unit when the block ends inside a surrogate pair.
func surrogateBlockEnd(v lanes.U16x16, src []uint16, pos int, swap bool) int {
	end := pos + 16
	if isHighSurrogate(v[15]) && end < len(src) && isLowSurrogate(swapIf(src[end], swap)) {
		end++
	}
	return end
}

func lanesUTF16ToUTF8(swap bool, src []uint16, dst []byte) Result {
	maybeInitLUT()
	pos, out := 0, 0
	for pos+16 < len(src) {
		v := loadUTF16(src[pos:], swap)
		if n, ok := utf16BlockToUTF8(v, dst, out, false); ok {
			out = n
			pos += 16
			continue
		}
		end := surrogateBlockEnd(v, src, pos, swap)
		r := scalarUTF16ToUTF8(swap, src[pos:end], dst[out:])
		if r.Kind != Success {
			r.Count += pos
			return r
		}
		out += r.Count
		pos = end
	}
	r := scalarUTF16ToUTF8(swap, src[pos:], dst[out:])
	if r.Kind != Success {
		r.Count += pos
		return r
	}
	r.Count += out
	return r
}

func lanesValidUTF16ToUTF8(swap bool, src []uint16, dst []byte) int {
	maybeInitLUT()
	pos, out := 0, 0
	for pos+16 < len(src) {
		v := loadUTF16(src[pos:], swap)
		if n, ok := utf16BlockToUTF8(v, dst, out, false); ok {
			out = n
			pos += 16
			continue
		}
		end := surrogateBlockEnd(v, src, pos, swap)
		out += scalarValidUTF16ToUTF8(swap, src[pos:end], dst[out:])
		pos = end
	}
	return out + scalarValidUTF16ToUTF8(swap, src[pos:], dst[out:])
}

func storeWidened(v lanes.U16x16, dst []uint32) {
	lo, hi := v.Widen()
	lo.Store(dst)
	hi.Store(dst[8:])
}

func lanesUTF16ToUTF32(swap bool, src []uint16, dst []uint32) Result {
	pos, out := 0, 0
	for pos+16 < len(src) {
		v := loadUTF16(src[pos:], swap)
		if v.RangeMask(0xD800, 0xDFFF) == 0 {
			storeWidened(v, dst[out:])
			out += 16
			pos += 16
			continue
		}
		end := surrogateBlockEnd(v, src, pos, swap)
		r := scalarUTF16ToUTF32(swap, src[pos:end], dst[out:])
		if r.Kind != Success {
			r.Count += pos
			return r
		}
		out += r.Count
		pos = end
	}
	r := scalarUTF16ToUTF32(swap, src[pos:], dst[out:])
	if r.Kind != Success {
		r.Count += pos
		return r
	}
	r.Count += out
	return r
}

func lanesValidUTF16ToUTF32(swap bool, src []uint16, dst []uint32) int {
	pos, out := 0, 0
	for pos+16 < len(src) {
		v := loadUTF16(src[pos:], swap)
		if v.RangeMask(0xD800, 0xDFFF) == 0 {
			storeWidened(v, dst[out:])
			out += 16
			pos += 16
			continue
		}
		end := surrogateBlockEnd(v, src, pos, swap)
		out += scalarValidUTF16ToUTF32(swap, src[pos:end], dst[out:])
		pos = end
	}
	return out + scalarValidUTF16ToUTF32(swap, src[pos:], dst[out:])
}

func lanesChangeEndiannessUTF16(src, dst []uint16) {
	dst = dst[:len(src)]
	pos := 0
	for ; pos+16 <= len(src); pos += 16 {
		lanes.LoadU16x16(src[pos:]).ByteSwap().Store(dst[pos:])
	}
	scalarChangeEndiannessUTF16(src[pos:], dst[pos:])
}
