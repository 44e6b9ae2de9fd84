package transcode

// ValidateASCII reports whether every byte of b is below 0x80.
func (c *Converter) ValidateASCII(b []byte) bool {
	return c.k.validASCII(b)
}

func (c *Converter) ValidateASCIIWithErrors(b []byte) Result {
	return c.k.validateASCII(b)
}

// ValidateUTF8 reports whether b is well-formed UTF-8 (RFC 3629).
func (c *Converter) ValidateUTF8(b []byte) bool {
	return c.k.validUTF8(b)
}

// ValidateUTF8WithErrors returns the kind and position of the first error;
// the position is the leading byte of the offending sequence.
func (c *Converter) ValidateUTF8WithErrors(b []byte) Result {
	return c.k.validateUTF8(b)
}

// ValidateUTF16LE reports whether s, holding UTF-16LE units, pairs every
// surrogate.
func (c *Converter) ValidateUTF16LE(s []uint16) bool {
	return c.k.validUTF16(LittleEndian, s)
}

func (c *Converter) ValidateUTF16LEWithErrors(s []uint16) Result {
	return c.k.validateUTF16(LittleEndian, s)
}

func (c *Converter) ValidateUTF16BE(s []uint16) bool {
	return c.k.validUTF16(BigEndian, s)
}

func (c *Converter) ValidateUTF16BEWithErrors(s []uint16) Result {
	return c.k.validateUTF16(BigEndian, s)
}

// ValidateUTF32 reports whether every value of s is a Unicode scalar value.
func (c *Converter) ValidateUTF32(s []uint32) bool {
	return c.k.validUTF32(s)
}

func (c *Converter) ValidateUTF32WithErrors(s []uint32) Result {
	return c.k.validateUTF32(s)
}

// ConvertUTF8ToUTF16LE writes the UTF-16LE form of src into dst and returns the
// number of units written, or 0 if src is not valid UTF-8. dst must hold
// UTF16LengthFromUTF8(src) units.
func (c *Converter) ConvertUTF8ToUTF16LE(src []byte, dst []uint16) int {
	return c.k.utf8ToUTF16(LittleEndian, src, dst)
}

// ConvertUTF8ToUTF16LEWithErrors is ConvertUTF8ToUTF16LE reporting the first error
// instead of 0.
func (c *Converter) ConvertUTF8ToUTF16LEWithErrors(src []byte, dst []uint16) Result {
	return c.k.utf8ToUTF16WithErrors(LittleEndian, src, dst)
}

// ConvertValidUTF8ToUTF16LE converts src without validating it. On ill-formed input
// the output is unspecified but no access leaves src or dst.
func (c *Converter) ConvertValidUTF8ToUTF16LE(src []byte, dst []uint16) int {
	return c.k.validUTF8ToUTF16(LittleEndian, src, dst)
}

func (c *Converter) ConvertUTF8ToUTF16BE(src []byte, dst []uint16) int {
	return c.k.utf8ToUTF16(BigEndian, src, dst)
}

func (c *Converter) ConvertUTF8ToUTF16BEWithErrors(src []byte, dst []uint16) Result {
	return c.k.utf8ToUTF16WithErrors(BigEndian, src, dst)
}

func (c *Converter) ConvertValidUTF8ToUTF16BE(src []byte, dst []uint16) int {
	return c.k.validUTF8ToUTF16(BigEndian, src, dst)
}

func (c *Converter) ConvertUTF8ToUTF32(src []byte, dst []uint32) int {
	return c.k.utf8ToUTF32(src, dst)
}

func (c *Converter) ConvertUTF8ToUTF32WithErrors(src []byte, dst []uint32) Result {
	return c.k.utf8ToUTF32WithErrors(src, dst)
}

func (c *Converter) ConvertValidUTF8ToUTF32(src []byte, dst []uint32) int {
	return c.k.validUTF8ToUTF32(src, dst)
}

func (c *Converter) ConvertUTF16LEToUTF8(src []uint16, dst []byte) int {
	return c.k.utf16ToUTF8(LittleEndian, src, dst)
}

func (c *Converter) ConvertUTF16LEToUTF8WithErrors(src []uint16, dst []byte) Result {
	return c.k.utf16ToUTF8WithErrors(LittleEndian, src, dst)
}

func (c *Converter) ConvertValidUTF16LEToUTF8(src []uint16, dst []byte) int {
	return c.k.validUTF16ToUTF8(LittleEndian, src, dst)
}

func (c *Converter) ConvertUTF16BEToUTF8(src []uint16, dst []byte) int {
	return c.k.utf16ToUTF8(BigEndian, src, dst)
}

func (c *Converter) ConvertUTF16BEToUTF8WithErrors(src []uint16, dst []byte) Result {
	return c.k.utf16ToUTF8WithErrors(BigEndian, src, dst)
}

func (c *Converter) ConvertValidUTF16BEToUTF8(src []uint16, dst []byte) int {
	return c.k.validUTF16ToUTF8(BigEndian, src, dst)
}

func (c *Converter) ConvertUTF16LEToUTF32(src []uint16, dst []uint32) int {
	return c.k.utf16ToUTF32(LittleEndian, src, dst)
}

func (c *Converter) ConvertUTF16LEToUTF32WithErrors(src []uint16, dst []uint32) Result {
	return c.k.utf16ToUTF32WithErrors(LittleEndian, src, dst)
}

func (c *Converter) ConvertValidUTF16LEToUTF32(src []uint16, dst []uint32) int {
	return c.k.validUTF16ToUTF32(LittleEndian, src, dst)
}

func (c *Converter) ConvertUTF16BEToUTF32(src []uint16, dst []uint32) int {
	return c.k.utf16ToUTF32(BigEndian, src, dst)
}

func (c *Converter) ConvertUTF16BEToUTF32WithErrors(src []uint16, dst []uint32) Result {
	return c.k.utf16ToUTF32WithErrors(BigEndian, src, dst)
}

func (c *Converter) ConvertValidUTF16BEToUTF32(src []uint16, dst []uint32) int {
	return c.k.validUTF16ToUTF32(BigEndian, src, dst)
}

func (c *Converter) ConvertUTF32ToUTF8(src []uint32, dst []byte) int {
	return c.k.utf32ToUTF8(src, dst)
}

func (c *Converter) ConvertUTF32ToUTF8WithErrors(src []uint32, dst []byte) Result {
	return c.k.utf32ToUTF8WithErrors(src, dst)
}

func (c *Converter) ConvertValidUTF32ToUTF8(src []uint32, dst []byte) int {
	return c.k.validUTF32ToUTF8(src, dst)
}

func (c *Converter) ConvertUTF32ToUTF16LE(src []uint32, dst []uint16) int {
	return c.k.utf32ToUTF16(LittleEndian, src, dst)
}

func (c *Converter) ConvertUTF32ToUTF16LEWithErrors(src []uint32, dst []uint16) Result {
	return c.k.utf32ToUTF16WithErrors(LittleEndian, src, dst)
}

func (c *Converter) ConvertValidUTF32ToUTF16LE(src []uint32, dst []uint16) int {
	return c.k.validUTF32ToUTF16(LittleEndian, src, dst)
}

func (c *Converter) ConvertUTF32ToUTF16BE(src []uint32, dst []uint16) int {
	return c.k.utf32ToUTF16(BigEndian, src, dst)
}

func (c *Converter) ConvertUTF32ToUTF16BEWithErrors(src []uint32, dst []uint16) Result {
	return c.k.utf32ToUTF16WithErrors(BigEndian, src, dst)
}

func (c *Converter) ConvertValidUTF32ToUTF16BE(src []uint32, dst []uint16) int {
	return c.k.validUTF32ToUTF16(BigEndian, src, dst)
}

// UTF8LengthFromUTF16LE returns the number of bytes the UTF-8 form of s
// takes. The result is exact for valid input.
func (c *Converter) UTF8LengthFromUTF16LE(s []uint16) int {
	return c.k.utf8LengthFromUTF16(LittleEndian, s)
}

func (c *Converter) UTF8LengthFromUTF16BE(s []uint16) int {
	return c.k.utf8LengthFromUTF16(BigEndian, s)
}

func (c *Converter) UTF8LengthFromUTF32(s []uint32) int {
	return c.k.utf8LengthFromUTF32(s)
}

func (c *Converter) UTF16LengthFromUTF8(b []byte) int {
	return c.k.utf16LengthFromUTF8(b)
}

func (c *Converter) UTF16LengthFromUTF32(s []uint32) int {
	return c.k.utf16LengthFromUTF32(s)
}

func (c *Converter) UTF32LengthFromUTF8(b []byte) int {
	return c.k.utf32LengthFromUTF8(b)
}

func (c *Converter) UTF32LengthFromUTF16LE(s []uint16) int {
	return c.k.utf32LengthFromUTF16(LittleEndian, s)
}

func (c *Converter) UTF32LengthFromUTF16BE(s []uint16) int {
	return c.k.utf32LengthFromUTF16(BigEndian, s)
}

// CountUTF8 returns the number of code points in valid UTF-8.
func (c *Converter) CountUTF8(b []byte) int {
	return c.k.countUTF8(b)
}

// CountUTF16LE returns the number of code points in valid UTF-16LE.
func (c *Converter) CountUTF16LE(s []uint16) int {
	return c.k.countUTF16(LittleEndian, s)
}

func (c *Converter) CountUTF16BE(s []uint16) int {
	return c.k.countUTF16(BigEndian, s)
}

// ChangeEndiannessUTF16 writes src with the bytes of every unit swapped to
// dst. dst must hold len(src) units and must not overlap src.
func (c *Converter) ChangeEndiannessUTF16(src, dst []uint16) {
	c.k.changeEndiannessUTF16(src, dst)
}
