package transcode

func utf32Kind(cp uint32) ErrorKind {
	switch {
	case cp > 0x10FFFF:
		return TooLarge
	case cp >= 0xD800 && cp <= 0xDFFF:
		return Surrogate
	default:
		return Success
	}
}

func scalarValidateUTF32(s []uint32) Result {
	for i, cp := range s {
		if kind := utf32Kind(cp); kind != Success {
			return Result{Kind: kind, Count: i}
		}
	}
	return Result{Kind: Success, Count: len(s)}
}

func scalarUTF32ToUTF8(src []uint32, dst []byte) Result {
	out := 0
	for i, cp := range src {
		if kind := utf32Kind(cp); kind != Success {
			return Result{Kind: kind, Count: i}
		}
		out = putUTF8(dst, out, cp)
	}
	return Result{Kind: Success, Count: out}
}

// scalarValidUTF32ToUTF8 drops values that are not scalar values.
func scalarValidUTF32ToUTF8(src []uint32, dst []byte) int {
	out := 0
	for _, cp := range src {
		if utf32Kind(cp) == Success {
			out = putUTF8(dst, out, cp)
		}
	}
	return out
}

func scalarUTF32ToUTF16(swap bool, src []uint32, dst []uint16) Result {
	out := 0
	for i, cp := range src {
		if kind := utf32Kind(cp); kind != Success {
			return Result{Kind: kind, Count: i}
		}
		out = putUTF16(dst, out, cp, swap)
	}
	return Result{Kind: Success, Count: out}
}

// scalarValidUTF32ToUTF16 drops values that are not scalar values.
func scalarValidUTF32ToUTF16(swap bool, src []uint32, dst []uint16) int {
	out := 0
	for _, cp := range src {
		if utf32Kind(cp) == Success {
			out = putUTF16(dst, out, cp, swap)
		}
	}
	return out
}

func scalarUTF8LengthFromUTF32(s []uint32) int {
	n := 0
	for _, cp := range s {
		switch {
		case cp <= 0x7F:
			n++
		case cp <= 0x7FF:
			n += 2
		case cp <= 0xFFFF:
			n += 3
		default:
			n += 4
		}
	}
	return n
}

func scalarUTF16LengthFromUTF32(s []uint32) int {
	n := 0
	for _, cp := range s {
		if cp <= 0xFFFF {
			n++
		} else {
			n += 2
		}
	}
	return n
}
