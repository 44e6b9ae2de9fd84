package transcode

import (
	"math/bits"
	"unsafe"
)

// AsUTF16 views b as 16-bit code units in memory order, so the result holds
// UTF-16LE units when b does and the caller uses the LE entry points. The
// view shares b when b is 2-byte aligned and is a copy otherwise. A
// trailing odd byte is ignored.
func AsUTF16(b []byte) []uint16 {
	n := len(b) / 2
	if n == 0 {
		return nil
	}
	if uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(uint16(0)) == 0 {
		return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), n)
	}
	s := make([]uint16, n)
	copy(UTF16Bytes(s), b)
	return s
}

// AsUTF32 views b as 32-bit values in memory order; see AsUTF16.
func AsUTF32(b []byte) []uint32 {
	n := len(b) / 4
	if n == 0 {
		return nil
	}
	if uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(uint32(0)) == 0 {
		return unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), n)
	}
	s := make([]uint32, n)
	copy(UTF32Bytes(s), b)
	return s
}

// UTF16Bytes returns the memory of s as bytes without copying.
func UTF16Bytes(s []uint16) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), 2*len(s))
}

// UTF32Bytes returns the memory of s as bytes without copying.
func UTF32Bytes(s []uint32) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), 4*len(s))
}

// ChangeEndiannessUTF32 writes src with the bytes of every value reversed
// to dst. dst must hold len(src) values and must not overlap src.
func ChangeEndiannessUTF32(src, dst []uint32) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = bits.ReverseBytes32(v)
	}
}
