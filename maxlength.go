package transcode

// Worst-case output sizes for n input units, for callers that allocate
// before scanning. The Length functions give exact sizes in one pass.

// MaxUTF8LengthFromUTF16 returns the most bytes n UTF-16 units can encode
// to: three per unit, a surrogate pair taking four for two.
func MaxUTF8LengthFromUTF16(n int) int {
	return 3 * n
}

func MaxUTF8LengthFromUTF32(n int) int {
	return 4 * n
}

// MaxUTF16LengthFromUTF8 returns n: every byte yields at most one unit and
// four-byte sequences yield two.
func MaxUTF16LengthFromUTF8(n int) int {
	return n
}

func MaxUTF16LengthFromUTF32(n int) int {
	return 2 * n
}

func MaxUTF32LengthFromUTF8(n int) int {
	return n
}

func MaxUTF32LengthFromUTF16(n int) int {
	return n
}
