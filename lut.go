package transcode

import "sync"

// Nibble classes for UTF-8 block validation. A byte pair is in error when
// the three lookups (high and low nibble of the previous byte, high nibble
// of the current byte) share a bit.
const (
	scTooShort     = 1 << 0
	scTooLong      = 1 << 1
	scOverlong3    = 1 << 2
	scTooLarge     = 1 << 3
	scSurrogate    = 1 << 4
	scOverlong2    = 1 << 5
	scTooLarge1000 = 1 << 6
	scOverlong4    = 1 << 6
	scTwoConts     = 1 << 7
	scCarry        = scTooShort | scTooLong | scTwoConts
)

var byte1High = [16]uint8{
	// 0_______ ASCII followed by a continuation
	scTooLong, scTooLong, scTooLong, scTooLong,
	scTooLong, scTooLong, scTooLong, scTooLong,
	// 10______ continuation followed by a continuation
	scTwoConts, scTwoConts, scTwoConts, scTwoConts,
	// 1100____
	scTooShort | scOverlong2,
	// 1101____
	scTooShort,
	// 1110____
	scTooShort | scOverlong3 | scSurrogate,
	// 1111____
	scTooShort | scTooLarge | scTooLarge1000 | scOverlong4,
}

var byte1Low = [16]uint8{
	// ____0000
	scCarry | scOverlong3 | scOverlong2 | scOverlong4,
	// ____0001
	scCarry | scOverlong2,
	// ____001_
	scCarry,
	scCarry,
	// ____0100
	scCarry | scTooLarge,
	// ____0101 .. ____1100
	scCarry | scTooLarge | scTooLarge1000,
	scCarry | scTooLarge | scTooLarge1000,
	scCarry | scTooLarge | scTooLarge1000,
	scCarry | scTooLarge | scTooLarge1000,
	scCarry | scTooLarge | scTooLarge1000,
	scCarry | scTooLarge | scTooLarge1000,
	scCarry | scTooLarge | scTooLarge1000,
	scCarry | scTooLarge | scTooLarge1000,
	// ____1101
	scCarry | scTooLarge | scTooLarge1000 | scSurrogate,
	// ____111_
	scCarry | scTooLarge | scTooLarge1000,
	scCarry | scTooLarge | scTooLarge1000,
}

var byte2High = [16]uint8{
	// 0_______ a leader where a continuation was expected
	scTooShort, scTooShort, scTooShort, scTooShort,
	scTooShort, scTooShort, scTooShort, scTooShort,
	// 1000____
	scTooLong | scOverlong2 | scTwoConts | scOverlong3 | scTooLarge1000 | scOverlong4,
	// 1001____
	scTooLong | scOverlong2 | scTwoConts | scOverlong3 | scTooLarge,
	// 101_____
	scTooLong | scOverlong2 | scTwoConts | scSurrogate | scTooLarge,
	scTooLong | scOverlong2 | scTwoConts | scSurrogate | scTooLarge,
	// 11______
	scTooShort, scTooShort, scTooShort, scTooShort,
}

// incompleteMax flags a leader in the last three lanes of a vector whose
// sequence cannot end inside it.
var incompleteMax = func() (v [32]uint8) {
	for i := range v {
		v[i] = 0xFF
	}
	v[29] = 0xF0 - 1
	v[30] = 0xE0 - 1
	v[31] = 0xC0 - 1
	return v
}()

// utf8LeadMask clears the length marker bits of a leading byte gathered
// into byte len-1 of a lane, and the 10 prefix of its continuation bytes.
var utf8LeadMask = [5]uint32{0, 0x7F, 0x1F3F, 0x0F3F3F, 0x073F3F3F}

// windowEntry describes how many whole sequences a 12-byte window holds,
// given the bitmask of bytes that end a sequence.
type windowEntry struct {
	consumed uint8
	count    uint8
	astral   bool
	lens     [6]uint8
	gather   [32]uint8
}

// packEntry is a compress-store pattern for a block of UTF-8 bytes laid out
// at a fixed stride per lane.
type packEntry struct {
	n   uint8
	idx [16]uint8
}

var (
	utf8Windows [4096]windowEntry
	pack12      [256]packEntry
	pack123     [256]packEntry
	spread4     [16]uint8
	initLUT     sync.Once
)

func maybeInitLUT() {
	initLUT.Do(func() {
		buildUTF8Windows()
		buildPack12()
		buildPack123()
		for i := range spread4 {
			for j := 0; j < 4; j++ {
				spread4[i] |= uint8(i>>j&1) << (2 * j)
			}
		}
	})
}

func buildUTF8Windows() {
	for m := range utf8Windows {
		e := &utf8Windows[m]
		for i := range e.gather {
			e.gather[i] = 0xFF
		}
		start := 0
		for e.count < 6 {
			end := -1
			for j := start; j < 12; j++ {
				if m>>j&1 != 0 {
					end = j
					break
				}
			}
			if end < 0 || end-start >= 4 {
				break
			}
			n := end - start + 1
			// byte 0 of the lane is the last byte of the sequence
			for k := 0; k < n; k++ {
				e.gather[int(e.count)*4+k] = uint8(end - k)
			}
			e.lens[e.count] = uint8(n)
			if n == 4 {
				e.astral = true
			}
			e.count++
			start = end + 1
		}
		e.consumed = uint8(start)
	}
}

// buildPack12 covers eight lanes of two bytes each; bit i of the key means
// lane i is ASCII and keeps only its first byte.
func buildPack12() {
	for key := range pack12 {
		e := &pack12[key]
		n := 0
		for i := 0; i < 8; i++ {
			e.idx[n] = uint8(2 * i)
			n++
			if key>>i&1 == 0 {
				e.idx[n] = uint8(2*i + 1)
				n++
			}
		}
		e.n = uint8(n)
	}
}

// buildPack123 covers four lanes of four bytes each; the key holds a 2-bit
// code per lane: the sequence length minus one.
func buildPack123() {
	for key := range pack123 {
		e := &pack123[key]
		n := 0
		for i := 0; i < 4; i++ {
			code := key >> (2 * i) & 3
			if code == 3 {
				n = 0
				break
			}
			for k := 0; k <= code; k++ {
				e.idx[n] = uint8(4*i + k)
				n++
			}
		}
		e.n = uint8(n)
	}
}
