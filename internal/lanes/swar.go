package lanes

import "encoding/binary"

const highBits = 0x8080808080808080

// ascii64Words ORs the block as eight 64-bit words and tests the high bit of
// every byte at once.
func ascii64Words(b []byte) bool {
	_ = b[63]
	acc := binary.LittleEndian.Uint64(b) |
		binary.LittleEndian.Uint64(b[8:]) |
		binary.LittleEndian.Uint64(b[16:]) |
		binary.LittleEndian.Uint64(b[24:]) |
		binary.LittleEndian.Uint64(b[32:]) |
		binary.LittleEndian.Uint64(b[40:]) |
		binary.LittleEndian.Uint64(b[48:]) |
		binary.LittleEndian.Uint64(b[56:])
	return acc&highBits == 0
}

// ASCIIPrefix returns the length of the longest prefix of b made of ASCII
// bytes, testing eight bytes at a time.
func ASCIIPrefix(b []byte) int {
	i := 0
	for ; i+8 <= len(b); i += 8 {
		if binary.LittleEndian.Uint64(b[i:])&highBits != 0 {
			break
		}
	}
	for ; i < len(b); i++ {
		if b[i] >= 0x80 {
			return i
		}
	}
	return i
}
