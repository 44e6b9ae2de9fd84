package transcode

import "math/bits"

// Scalar UTF-8 routines. They are the reference the lane engine is checked
// against and the routines it hands tails and flagged blocks to.

func swapIf(u uint16, swap bool) uint16 {
	if swap {
		return bits.ReverseBytes16(u)
	}
	return u
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// utf8SeqLen returns the sequence length announced by a leading byte, or 0
// for continuation bytes and leaders with five or more high 1-bits.
func utf8SeqLen(c byte) int {
	switch {
	case c < 0x80:
		return 1
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// decodeUTF8 decodes the multi-byte sequence at b[pos] (b[pos] >= 0x80)
// with every RFC 3629 check. On failure the size is 0 and the kind tells
// which rule was broken.
func decodeUTF8(b []byte, pos int) (uint32, int, ErrorKind) {
	c := b[pos]
	switch {
	case c&0xE0 == 0xC0:
		if pos+2 > len(b) || !isContinuation(b[pos+1]) {
			return 0, 0, TooShort
		}
		cp := uint32(c&0x1F)<<6 | uint32(b[pos+1]&0x3F)
		if cp < 0x80 {
			return 0, 0, Overlong
		}
		return cp, 2, Success
	case c&0xF0 == 0xE0:
		if pos+3 > len(b) || !isContinuation(b[pos+1]) || !isContinuation(b[pos+2]) {
			return 0, 0, TooShort
		}
		cp := uint32(c&0x0F)<<12 | uint32(b[pos+1]&0x3F)<<6 | uint32(b[pos+2]&0x3F)
		if cp < 0x800 {
			return 0, 0, Overlong
		}
		if cp >= 0xD800 && cp <= 0xDFFF {
			return 0, 0, Surrogate
		}
		return cp, 3, Success
	case c&0xF8 == 0xF0:
		if pos+4 > len(b) || !isContinuation(b[pos+1]) || !isContinuation(b[pos+2]) || !isContinuation(b[pos+3]) {
			return 0, 0, TooShort
		}
		cp := uint32(c&0x07)<<18 | uint32(b[pos+1]&0x3F)<<12 | uint32(b[pos+2]&0x3F)<<6 | uint32(b[pos+3]&0x3F)
		if cp <= 0xFFFF {
			return 0, 0, Overlong
		}
		if cp > 0x10FFFF {
			return 0, 0, TooLarge
		}
		return cp, 4, Success
	case isContinuation(c):
		return 0, 0, TooLong
	default:
		return 0, 0, HeaderBits
	}
}

// decodeValidUTF8 decodes the sequence at b[pos] without range checks. ok
// is false when the bytes cannot form a sequence: a stray continuation or
// bad leader (n == 1) or a sequence cut by the end of b (n runs to the end).
func decodeValidUTF8(b []byte, pos int) (cp uint32, n int, ok bool) {
	c := b[pos]
	n = utf8SeqLen(c)
	switch n {
	case 0:
		return 0, 1, false
	case 1:
		return uint32(c), 1, true
	}
	if pos+n > len(b) {
		return 0, len(b) - pos, false
	}
	switch n {
	case 2:
		cp = uint32(c&0x1F)<<6 | uint32(b[pos+1]&0x3F)
	case 3:
		cp = uint32(c&0x0F)<<12 | uint32(b[pos+1]&0x3F)<<6 | uint32(b[pos+2]&0x3F)
	default:
		cp = uint32(c&0x07)<<18 | uint32(b[pos+1]&0x3F)<<12 | uint32(b[pos+2]&0x3F)<<6 | uint32(b[pos+3]&0x3F)
	}
	return cp, n, true
}

func scalarValidateASCII(b []byte) Result {
	for i, c := range b {
		if c >= 0x80 {
			return Result{Kind: TooLarge, Count: i}
		}
	}
	return Result{Kind: Success, Count: len(b)}
}

func scalarValidateUTF8(b []byte) Result {
	pos := 0
	for pos < len(b) {
		if b[pos] < 0x80 {
			pos++
			continue
		}
		_, n, kind := decodeUTF8(b, pos)
		if kind != Success {
			return Result{Kind: kind, Count: pos}
		}
		pos += n
	}
	return Result{Kind: Success, Count: len(b)}
}

// putUTF16 stores cp as one unit or a surrogate pair.
func putUTF16(dst []uint16, out int, cp uint32, swap bool) int {
	if cp < 0x10000 {
		dst[out] = swapIf(uint16(cp), swap)
		return out + 1
	}
	cp -= 0x10000
	dst[out] = swapIf(uint16(0xD800+(cp>>10)), swap)
	dst[out+1] = swapIf(uint16(0xDC00+(cp&0x3FF)), swap)
	return out + 2
}

func scalarUTF8ToUTF16(swap bool, src []byte, dst []uint16) Result {
	pos, out := 0, 0
	for pos < len(src) {
		if c := src[pos]; c < 0x80 {
			dst[out] = swapIf(uint16(c), swap)
			pos++
			out++
			continue
		}
		cp, n, kind := decodeUTF8(src, pos)
		if kind != Success {
			return Result{Kind: kind, Count: pos}
		}
		out = putUTF16(dst, out, cp, swap)
		pos += n
	}
	return Result{Kind: Success, Count: out}
}

func scalarValidUTF8ToUTF16(swap bool, src []byte, dst []uint16) int {
	pos, out := 0, 0
	for pos < len(src) {
		cp, n, ok := decodeValidUTF8(src, pos)
		if ok {
			out = putUTF16(dst, out, cp, swap)
		}
		pos += n
	}
	return out
}

func scalarUTF8ToUTF32(src []byte, dst []uint32) Result {
	pos, out := 0, 0
	for pos < len(src) {
		if c := src[pos]; c < 0x80 {
			dst[out] = uint32(c)
			pos++
			out++
			continue
		}
		cp, n, kind := decodeUTF8(src, pos)
		if kind != Success {
			return Result{Kind: kind, Count: pos}
		}
		dst[out] = cp
		out++
		pos += n
	}
	return Result{Kind: Success, Count: out}
}

func scalarValidUTF8ToUTF32(src []byte, dst []uint32) int {
	pos, out := 0, 0
	for pos < len(src) {
		cp, n, ok := decodeValidUTF8(src, pos)
		if ok {
			dst[out] = cp
			out++
		}
		pos += n
	}
	return out
}

// scalarCountUTF8 counts leading bytes, which is the number of code points
// in valid input.
func scalarCountUTF8(b []byte) int {
	n := 0
	for _, c := range b {
		if int8(c) > -65 {
			n++
		}
	}
	return n
}

func scalarUTF16LengthFromUTF8(b []byte) int {
	n := 0
	for _, c := range b {
		if int8(c) > -65 {
			n++
		}
		if c >= 0xF0 {
			n++
		}
	}
	return n
}
