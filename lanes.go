package transcode

import (
	"math/bits"

	"github.com/gottingen/transcode/internal/lanes"
)

// lanesKernel runs the block kernels of internal/lanes and hands tails and
// flagged blocks to the scalar routines.
type lanesKernel struct{}

func (lanesKernel) engine() Engine { return EngineLanes }

func lanesValidateASCII(b []byte) Result {
	pos := 0
	for ; pos+64 <= len(b); pos += 64 {
		if !lanes.ASCII64(b[pos:]) {
			break
		}
	}
	if i := lanes.ASCIIPrefix(b[pos:]); pos+i < len(b) {
		return Result{Kind: TooLarge, Count: pos + i}
	}
	return Result{Kind: Success, Count: len(b)}
}

func (lanesKernel) validateASCII(b []byte) Result { return lanesValidateASCII(b) }
func (lanesKernel) validASCII(b []byte) bool      { return lanesValidateASCII(b).OK() }
func (lanesKernel) validateUTF8(b []byte) Result  { return lanesValidateUTF8(b) }

func (lanesKernel) validUTF8(b []byte) bool {
	var chk utf8Checker
	pos := 0
	for ; pos+64 <= len(b); pos += 64 {
		block := b[pos : pos+64]
		chk.check(block, lanes.ASCII64(block))
	}
	if chk.failed() {
		return false
	}
	return scalarValidateUTF8(b[utf8Rewind(b, pos):]).OK()
}

func (lanesKernel) validateUTF16(e Endianness, s []uint16) Result {
	return lanesValidateUTF16(needSwap(e), s)
}

func (lanesKernel) validUTF16(e Endianness, s []uint16) bool {
	return lanesValidateUTF16(needSwap(e), s).OK()
}

func (lanesKernel) validateUTF32(s []uint32) Result { return lanesValidateUTF32(s) }
func (lanesKernel) validUTF32(s []uint32) bool      { return lanesValidUTF32(s) }

func (lanesKernel) utf8ToUTF16(e Endianness, src []byte, dst []uint16) int {
	return countOrZero(lanesUTF8ToUTF16(needSwap(e), src, dst))
}

func (lanesKernel) utf8ToUTF16WithErrors(e Endianness, src []byte, dst []uint16) Result {
	return lanesUTF8ToUTF16(needSwap(e), src, dst)
}

func (lanesKernel) validUTF8ToUTF16(e Endianness, src []byte, dst []uint16) int {
	return lanesValidUTF8ToUTF16(needSwap(e), src, dst)
}

func (lanesKernel) utf8ToUTF32(src []byte, dst []uint32) int {
	return countOrZero(lanesUTF8ToUTF32(src, dst))
}

func (lanesKernel) utf8ToUTF32WithErrors(src []byte, dst []uint32) Result {
	return lanesUTF8ToUTF32(src, dst)
}

func (lanesKernel) validUTF8ToUTF32(src []byte, dst []uint32) int {
	return lanesValidUTF8ToUTF32(src, dst)
}

func (lanesKernel) utf16ToUTF8(e Endianness, src []uint16, dst []byte) int {
	return countOrZero(lanesUTF16ToUTF8(needSwap(e), src, dst))
}

func (lanesKernel) utf16ToUTF8WithErrors(e Endianness, src []uint16, dst []byte) Result {
	return lanesUTF16ToUTF8(needSwap(e), src, dst)
}

func (lanesKernel) validUTF16ToUTF8(e Endianness, src []uint16, dst []byte) int {
	return lanesValidUTF16ToUTF8(needSwap(e), src, dst)
}

func (lanesKernel) utf16ToUTF32(e Endianness, src []uint16, dst []uint32) int {
	return countOrZero(lanesUTF16ToUTF32(needSwap(e), src, dst))
}

func (lanesKernel) utf16ToUTF32WithErrors(e Endianness, src []uint16, dst []uint32) Result {
	return lanesUTF16ToUTF32(needSwap(e), src, dst)
}

func (lanesKernel) validUTF16ToUTF32(e Endianness, src []uint16, dst []uint32) int {
	return lanesValidUTF16ToUTF32(needSwap(e), src, dst)
}

func (lanesKernel) utf32ToUTF8(src []uint32, dst []byte) int {
	return lanesUTF32ToUTF8Fast(src, dst)
}

func (lanesKernel) utf32ToUTF8WithErrors(src []uint32, dst []byte) Result {
	return lanesUTF32ToUTF8(src, dst)
}

func (lanesKernel) validUTF32ToUTF8(src []uint32, dst []byte) int {
	return lanesValidUTF32ToUTF8(src, dst)
}

func (lanesKernel) utf32ToUTF16(e Endianness, src []uint32, dst []uint16) int {
	return countOrZero(lanesUTF32ToUTF16(needSwap(e), src, dst))
}

func (lanesKernel) utf32ToUTF16WithErrors(e Endianness, src []uint32, dst []uint16) Result {
	return lanesUTF32ToUTF16(needSwap(e), src, dst)
}

func (lanesKernel) validUTF32ToUTF16(e Endianness, src []uint32, dst []uint16) int {
	return lanesValidUTF32ToUTF16(needSwap(e), src, dst)
}

// Counting kernels: each block turns into comparison bitmasks whose
// popcounts add up to the length.

func (lanesKernel) utf8LengthFromUTF16(e Endianness, s []uint16) int {
	swap := needSwap(e)
	n, pos := 0, 0
	for ; pos+16 <= len(s); pos += 16 {
		v := loadUTF16(s[pos:], swap)
		n += 16 +
			bits.OnesCount16(^v.LessEqualMask(0x7F)) +
			bits.OnesCount16(^v.LessEqualMask(0x7FF)) -
			bits.OnesCount16(v.RangeMask(0xD800, 0xDFFF))
	}
	return n + scalarUTF8LengthFromUTF16(swap, s[pos:])
}

func (lanesKernel) utf8LengthFromUTF32(s []uint32) int {
	n, pos := 0, 0
	for ; pos+8 <= len(s); pos += 8 {
		v := lanes.LoadU32x8(s[pos:])
		n += 8 +
			bits.OnesCount8(^v.LessEqualMask(0x7F)) +
			bits.OnesCount8(^v.LessEqualMask(0x7FF)) +
			bits.OnesCount8(^v.LessEqualMask(0xFFFF))
	}
	return n + scalarUTF8LengthFromUTF32(s[pos:])
}

func (lanesKernel) utf16LengthFromUTF32(s []uint32) int {
	n, pos := 0, 0
	for ; pos+8 <= len(s); pos += 8 {
		n += 8 + bits.OnesCount8(^lanes.LoadU32x8(s[pos:]).LessEqualMask(0xFFFF))
	}
	return n + scalarUTF16LengthFromUTF32(s[pos:])
}

// leaderMask64 returns the non-continuation bitmask of a 64-byte block.
func leaderMask64(b []byte) uint64 {
	return uint64(lanes.LoadU8x32(b).LeaderMask()) | uint64(lanes.LoadU8x32(b[32:]).LeaderMask())<<32
}

func lanesCountUTF8(b []byte) int {
	n, pos := 0, 0
	for ; pos+64 <= len(b); pos += 64 {
		n += bits.OnesCount64(leaderMask64(b[pos:]))
	}
	return n + scalarCountUTF8(b[pos:])
}

func (lanesKernel) utf16LengthFromUTF8(b []byte) int {
	n, pos := 0, 0
	for ; pos+64 <= len(b); pos += 64 {
		four := uint64(lanes.LoadU8x32(b[pos:]).GreaterEqualMask(0xF0)) |
			uint64(lanes.LoadU8x32(b[pos+32:]).GreaterEqualMask(0xF0))<<32
		n += bits.OnesCount64(leaderMask64(b[pos:])) + bits.OnesCount64(four)
	}
	return n + scalarUTF16LengthFromUTF8(b[pos:])
}

func (lanesKernel) utf32LengthFromUTF8(b []byte) int { return lanesCountUTF8(b) }
func (lanesKernel) countUTF8(b []byte) int           { return lanesCountUTF8(b) }

func lanesCountUTF16(swap bool, s []uint16) int {
	n, pos := 0, 0
	for ; pos+16 <= len(s); pos += 16 {
		n += 16 - bits.OnesCount16(loadUTF16(s[pos:], swap).RangeMask(0xDC00, 0xDFFF))
	}
	return n + scalarCountUTF16(swap, s[pos:])
}

func (lanesKernel) utf32LengthFromUTF16(e Endianness, s []uint16) int {
	return lanesCountUTF16(needSwap(e), s)
}

func (lanesKernel) countUTF16(e Endianness, s []uint16) int {
	return lanesCountUTF16(needSwap(e), s)
}

func (lanesKernel) changeEndiannessUTF16(src, dst []uint16) {
	lanesChangeEndiannessUTF16(src, dst)
}
