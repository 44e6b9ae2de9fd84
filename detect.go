package transcode

import "bytes"

var boms = [...]struct {
	e   Encoding
	bom []byte
}{
	{UTF8, []byte{0xEF, 0xBB, 0xBF}},
	// the UTF-32LE mark starts with the UTF-16LE one
	{UTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
	{UTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{UTF16LE, []byte{0xFF, 0xFE}},
	{UTF16BE, []byte{0xFE, 0xFF}},
}

// CheckBOM returns the encoding announced by a byte-order mark at the start
// of b and the mark's length, or Unspecified and 0.
func CheckBOM(b []byte) (Encoding, int) {
	for _, m := range boms {
		if bytes.HasPrefix(b, m.bom) {
			return m.e, len(m.bom)
		}
	}
	return Unspecified, 0
}

// BOMLength returns the length of the byte-order mark of a single encoding,
// or 0 for Unspecified and unions.
func BOMLength(e Encoding) int {
	for _, m := range boms {
		if m.e == e {
			return len(m.bom)
		}
	}
	return 0
}

// utf32LE returns b as UTF-32 values, reordering bytes on big-endian hosts.
func utf32LE(b []byte) []uint32 {
	s := AsUTF32(b)
	if hostEndianness == BigEndian {
		t := make([]uint32, len(s))
		ChangeEndiannessUTF32(s, t)
		s = t
	}
	return s
}

func (c *Converter) plausible(b []byte, stopAtFirst bool) Encoding {
	var found Encoding
	if c.ValidateUTF8(b) {
		found |= UTF8
		if stopAtFirst {
			return found
		}
	}
	if len(b)%2 == 0 && c.ValidateUTF16LE(AsUTF16(b)) {
		found |= UTF16LE
		if stopAtFirst {
			return found
		}
	}
	if len(b)%4 == 0 && c.ValidateUTF32(utf32LE(b)) {
		found |= UTF32LE
	}
	return found
}

// AutodetectEncoding returns the encoding of a byte-order mark at the start
// of b, or else the first of UTF-8, UTF-16LE and UTF-32LE that b validates
// as, or Unspecified.
func (c *Converter) AutodetectEncoding(b []byte) Encoding {
	if e, _ := CheckBOM(b); e != Unspecified {
		return e
	}
	return c.plausible(b, true)
}

// DetectEncodings is AutodetectEncoding returning every plausible encoding
// when b carries no byte-order mark.
func (c *Converter) DetectEncodings(b []byte) Encoding {
	if e, _ := CheckBOM(b); e != Unspecified {
		return e
	}
	return c.plausible(b, false)
}

func AutodetectEncoding(b []byte) Encoding {
	return Default().AutodetectEncoding(b)
}

func DetectEncodings(b []byte) Encoding {
	return Default().DetectEncodings(b)
}
