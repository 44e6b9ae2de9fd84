package transcode

import "math/bits"

func isHighSurrogate(u uint16) bool {
	return u&0xFC00 == 0xD800
}

func isLowSurrogate(u uint16) bool {
	return u&0xFC00 == 0xDC00
}

// surrogatePair reads the pair starting at s[pos]. ok is false when s[pos]
// is not a high surrogate followed by a low one.
func surrogatePair(swap bool, s []uint16, pos int) (uint32, bool) {
	hi := swapIf(s[pos], swap)
	if !isHighSurrogate(hi) || pos+1 >= len(s) {
		return 0, false
	}
	lo := swapIf(s[pos+1], swap)
	if !isLowSurrogate(lo) {
		return 0, false
	}
	return (uint32(hi-0xD800)<<10 | uint32(lo-0xDC00)) + 0x10000, true
}

func scalarValidateUTF16(swap bool, s []uint16) Result {
	pos := 0
	for pos < len(s) {
		if w := swapIf(s[pos], swap); w&0xF800 != 0xD800 {
			pos++
			continue
		}
		if _, ok := surrogatePair(swap, s, pos); !ok {
			return Result{Kind: Surrogate, Count: pos}
		}
		pos += 2
	}
	return Result{Kind: Success, Count: len(s)}
}

// putUTF8 stores cp in one to four bytes.
func putUTF8(dst []byte, out int, cp uint32) int {
	switch {
	case cp < 0x80:
		dst[out] = byte(cp)
		return out + 1
	case cp < 0x800:
		dst[out] = byte(0xC0 | cp>>6)
		dst[out+1] = byte(0x80 | cp&0x3F)
		return out + 2
	case cp < 0x10000:
		dst[out] = byte(0xE0 | cp>>12)
		dst[out+1] = byte(0x80 | (cp>>6)&0x3F)
		dst[out+2] = byte(0x80 | cp&0x3F)
		return out + 3
	default:
		dst[out] = byte(0xF0 | cp>>18)
		dst[out+1] = byte(0x80 | (cp>>12)&0x3F)
		dst[out+2] = byte(0x80 | (cp>>6)&0x3F)
		dst[out+3] = byte(0x80 | cp&0x3F)
		return out + 4
	}
}

func scalarUTF16ToUTF8(swap bool, src []uint16, dst []byte) Result {
	pos, out := 0, 0
	for pos < len(src) {
		w := swapIf(src[pos], swap)
		if w&0xF800 != 0xD800 {
			out = putUTF8(dst, out, uint32(w))
			pos++
			continue
		}
		cp, ok := surrogatePair(swap, src, pos)
		if !ok {
			return Result{Kind: Surrogate, Count: pos}
		}
		out = putUTF8(dst, out, cp)
		pos += 2
	}
	return Result{Kind: Success, Count: out}
}

// scalarValidUTF16ToUTF8 drops unpaired surrogates.
func scalarValidUTF16ToUTF8(swap bool, src []uint16, dst []byte) int {
	pos, out := 0, 0
	for pos < len(src) {
		w := swapIf(src[pos], swap)
		if w&0xF800 != 0xD800 {
			out = putUTF8(dst, out, uint32(w))
			pos++
			continue
		}
		if cp, ok := surrogatePair(swap, src, pos); ok {
			out = putUTF8(dst, out, cp)
			pos += 2
			continue
		}
		pos++
	}
	return out
}

func scalarUTF16ToUTF32(swap bool, src []uint16, dst []uint32) Result {
	pos, out := 0, 0
	for pos < len(src) {
		w := swapIf(src[pos], swap)
		if w&0xF800 != 0xD800 {
			dst[out] = uint32(w)
			out++
			pos++
			continue
		}
		cp, ok := surrogatePair(swap, src, pos)
		if !ok {
			return Result{Kind: Surrogate, Count: pos}
		}
		dst[out] = cp
		out++
		pos += 2
	}
	return Result{Kind: Success, Count: out}
}

// scalarValidUTF16ToUTF32 drops unpaired surrogates.
func scalarValidUTF16ToUTF32(swap bool, src []uint16, dst []uint32) int {
	pos, out := 0, 0
	for pos < len(src) {
		w := swapIf(src[pos], swap)
		if w&0xF800 != 0xD800 {
			dst[out] = uint32(w)
			out++
			pos++
			continue
		}
		if cp, ok := surrogatePair(swap, src, pos); ok {
			dst[out] = cp
			out++
			pos += 2
			continue
		}
		pos++
	}
	return out
}

func scalarUTF8LengthFromUTF16(swap bool, s []uint16) int {
	n := 0
	for _, u := range s {
		w := swapIf(u, swap)
		switch {
		case w <= 0x7F:
			n++
		case w <= 0x7FF:
			n += 2
		case w&0xF800 == 0xD800:
			n += 2
		default:
			n += 3
		}
	}
	return n
}

// scalarCountUTF16 counts the units that are not low surrogates.
func scalarCountUTF16(swap bool, s []uint16) int {
	n := 0
	for _, u := range s {
		if !isLowSurrogate(swapIf(u, swap)) {
			n++
		}
	}
	return n
}

func scalarChangeEndiannessUTF16(src, dst []uint16) {
	dst = dst[:len(src)]
	for i, u := range src {
		dst[i] = bits.ReverseBytes16(u)
	}
}
