package transcode

// The package-level functions run on the process-wide Default converter;
// each matches the Converter method of the same name.

// ValidateASCII reports whether its input is valid ASCII.
func ValidateASCII(b []byte) bool {
	return Default().ValidateASCII(b)
}

// ValidateASCIIWithErrors reports the first ASCII error in its input and where it is.
func ValidateASCIIWithErrors(b []byte) Result {
	return Default().ValidateASCIIWithErrors(b)
}

// ValidateUTF8 reports whether its input is valid UTF-8.
func ValidateUTF8(b []byte) bool {
	return Default().ValidateUTF8(b)
}

// ValidateUTF8WithErrors reports the first UTF-8 error in its input and where it is.
func ValidateUTF8WithErrors(b []byte) Result {
	return Default().ValidateUTF8WithErrors(b)
}

// ValidateUTF16LE reports whether its input is valid UTF-16LE.
func ValidateUTF16LE(s []uint16) bool {
	return Default().ValidateUTF16LE(s)
}

// ValidateUTF16LEWithErrors reports the first UTF-16LE error in its input and where it is.
func ValidateUTF16LEWithErrors(s []uint16) Result {
	return Default().ValidateUTF16LEWithErrors(s)
}

// ValidateUTF16BE reports whether its input is valid UTF-16BE.
func ValidateUTF16BE(s []uint16) bool {
	return Default().ValidateUTF16BE(s)
}

// ValidateUTF16BEWithErrors reports the first UTF-16BE error in its input and where it is.
func ValidateUTF16BEWithErrors(s []uint16) Result {
	return Default().ValidateUTF16BEWithErrors(s)
}

// ValidateUTF32 reports whether its input is valid UTF-32.
func ValidateUTF32(s []uint32) bool {
	return Default().ValidateUTF32(s)
}

// ValidateUTF32WithErrors reports the first UTF-32 error in its input and where it is.
func ValidateUTF32WithErrors(s []uint32) Result {
	return Default().ValidateUTF32WithErrors(s)
}

// ConvertUTF8ToUTF16LE converts UTF-8 into UTF-16LE and returns the units written, or 0 on invalid input.
func ConvertUTF8ToUTF16LE(src []byte, dst []uint16) int {
	return Default().ConvertUTF8ToUTF16LE(src, dst)
}

// ConvertUTF8ToUTF16LEWithErrors converts UTF-8 into UTF-16LE, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF8ToUTF16LEWithErrors(src []byte, dst []uint16) Result {
	return Default().ConvertUTF8ToUTF16LEWithErrors(src, dst)
}

// ConvertValidUTF8ToUTF16LE converts UTF-8 known to be valid into UTF-16LE and returns the units written.
func ConvertValidUTF8ToUTF16LE(src []byte, dst []uint16) int {
	return Default().ConvertValidUTF8ToUTF16LE(src, dst)
}

// ConvertUTF8ToUTF16BE converts UTF-8 into UTF-16BE and returns the units written, or 0 on invalid input.
func ConvertUTF8ToUTF16BE(src []byte, dst []uint16) int {
	return Default().ConvertUTF8ToUTF16BE(src, dst)
}

// ConvertUTF8ToUTF16BEWithErrors converts UTF-8 into UTF-16BE, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF8ToUTF16BEWithErrors(src []byte, dst []uint16) Result {
	return Default().ConvertUTF8ToUTF16BEWithErrors(src, dst)
}

// ConvertValidUTF8ToUTF16BE converts UTF-8 known to be valid into UTF-16BE and returns the units written.
func ConvertValidUTF8ToUTF16BE(src []byte, dst []uint16) int {
	return Default().ConvertValidUTF8ToUTF16BE(src, dst)
}

// ConvertUTF8ToUTF32 converts UTF-8 into UTF-32 and returns the units written, or 0 on invalid input.
func ConvertUTF8ToUTF32(src []byte, dst []uint32) int {
	return Default().ConvertUTF8ToUTF32(src, dst)
}

// ConvertUTF8ToUTF32WithErrors converts UTF-8 into UTF-32, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF8ToUTF32WithErrors(src []byte, dst []uint32) Result {
	return Default().ConvertUTF8ToUTF32WithErrors(src, dst)
}

// ConvertValidUTF8ToUTF32 converts UTF-8 known to be valid into UTF-32 and returns the units written.
func ConvertValidUTF8ToUTF32(src []byte, dst []uint32) int {
	return Default().ConvertValidUTF8ToUTF32(src, dst)
}

// ConvertUTF16LEToUTF8 converts UTF-16LE into UTF-8 and returns the units written, or 0 on invalid input.
func ConvertUTF16LEToUTF8(src []uint16, dst []byte) int {
	return Default().ConvertUTF16LEToUTF8(src, dst)
}

// ConvertUTF16LEToUTF8WithErrors converts UTF-16LE into UTF-8, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF16LEToUTF8WithErrors(src []uint16, dst []byte) Result {
	return Default().ConvertUTF16LEToUTF8WithErrors(src, dst)
}

// ConvertValidUTF16LEToUTF8 converts UTF-16LE known to be valid into UTF-8 and returns the units written.
func ConvertValidUTF16LEToUTF8(src []uint16, dst []byte) int {
	return Default().ConvertValidUTF16LEToUTF8(src, dst)
}

// ConvertUTF16BEToUTF8 converts UTF-16BE into UTF-8 and returns the units written, or 0 on invalid input.
func ConvertUTF16BEToUTF8(src []uint16, dst []byte) int {
	return Default().ConvertUTF16BEToUTF8(src, dst)
}

// ConvertUTF16BEToUTF8WithErrors converts UTF-16BE into UTF-8, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF16BEToUTF8WithErrors(src []uint16, dst []byte) Result {
	return Default().ConvertUTF16BEToUTF8WithErrors(src, dst)
}

// ConvertValidUTF16BEToUTF8 converts UTF-16BE known to be valid into UTF-8 and returns the units written.
func ConvertValidUTF16BEToUTF8(src []uint16, dst []byte) int {
	return Default().ConvertValidUTF16BEToUTF8(src, dst)
}

// ConvertUTF16LEToUTF32 converts UTF-16LE into UTF-32 and returns the units written, or 0 on invalid input.
func ConvertUTF16LEToUTF32(src []uint16, dst []uint32) int {
	return Default().ConvertUTF16LEToUTF32(src, dst)
}

// ConvertUTF16LEToUTF32WithErrors converts UTF-16LE into UTF-32, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF16LEToUTF32WithErrors(src []uint16, dst []uint32) Result {
	return Default().ConvertUTF16LEToUTF32WithErrors(src, dst)
}

// ConvertValidUTF16LEToUTF32 converts UTF-16LE known to be valid into UTF-32 and returns the units written.
func ConvertValidUTF16LEToUTF32(src []uint16, dst []uint32) int {
	return Default().ConvertValidUTF16LEToUTF32(src, dst)
}

// ConvertUTF16BEToUTF32 converts UTF-16BE into UTF-32 and returns the units written, or 0 on invalid input.
func ConvertUTF16BEToUTF32(src []uint16, dst []uint32) int {
	return Default().ConvertUTF16BEToUTF32(src, dst)
}

// ConvertUTF16BEToUTF32WithErrors converts UTF-16BE into UTF-32, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF16BEToUTF32WithErrors(src []uint16, dst []uint32) Result {
	return Default().ConvertUTF16BEToUTF32WithErrors(src, dst)
}

// ConvertValidUTF16BEToUTF32 converts UTF-16BE known to be valid into UTF-32 and returns the units written.
func ConvertValidUTF16BEToUTF32(src []uint16, dst []uint32) int {
	return Default().ConvertValidUTF16BEToUTF32(src, dst)
}

// ConvertUTF32ToUTF8 converts UTF-32 into UTF-8 and returns the units written, or 0 on invalid input.
func ConvertUTF32ToUTF8(src []uint32, dst []byte) int {
	return Default().ConvertUTF32ToUTF8(src, dst)
}

// ConvertUTF32ToUTF8WithErrors converts UTF-32 into UTF-8, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF32ToUTF8WithErrors(src []uint32, dst []byte) Result {
	return Default().ConvertUTF32ToUTF8WithErrors(src, dst)
}

// ConvertValidUTF32ToUTF8 converts UTF-32 known to be valid into UTF-8 and returns the units written.
func ConvertValidUTF32ToUTF8(src []uint32, dst []byte) int {
	return Default().ConvertValidUTF32ToUTF8(src, dst)
}

// ConvertUTF32ToUTF16LE converts UTF-32 into UTF-16LE and returns the units written, or 0 on invalid input.
func ConvertUTF32ToUTF16LE(src []uint32, dst []uint16) int {
	return Default().ConvertUTF32ToUTF16LE(src, dst)
}

// ConvertUTF32ToUTF16LEWithErrors converts UTF-32 into UTF-16LE, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF32ToUTF16LEWithErrors(src []uint32, dst []uint16) Result {
	return Default().ConvertUTF32ToUTF16LEWithErrors(src, dst)
}

// ConvertValidUTF32ToUTF16LE converts UTF-32 known to be valid into UTF-16LE and returns the units written.
func ConvertValidUTF32ToUTF16LE(src []uint32, dst []uint16) int {
	return Default().ConvertValidUTF32ToUTF16LE(src, dst)
}

// ConvertUTF32ToUTF16BE converts UTF-32 into UTF-16BE and returns the units written, or 0 on invalid input.
func ConvertUTF32ToUTF16BE(src []uint32, dst []uint16) int {
	return Default().ConvertUTF32ToUTF16BE(src, dst)
}

// ConvertUTF32ToUTF16BEWithErrors converts UTF-32 into UTF-16BE, stopping at the first error.
// Result.Count is the units written on success and the error position otherwise.
func ConvertUTF32ToUTF16BEWithErrors(src []uint32, dst []uint16) Result {
	return Default().ConvertUTF32ToUTF16BEWithErrors(src, dst)
}

// ConvertValidUTF32ToUTF16BE converts UTF-32 known to be valid into UTF-16BE and returns the units written.
func ConvertValidUTF32ToUTF16BE(src []uint32, dst []uint16) int {
	return Default().ConvertValidUTF32ToUTF16BE(src, dst)
}

// UTF8LengthFromUTF16LE returns the UTF-8 length of valid UTF-16LE input.
func UTF8LengthFromUTF16LE(s []uint16) int {
	return Default().UTF8LengthFromUTF16LE(s)
}

// UTF8LengthFromUTF16BE returns the UTF-8 length of valid UTF-16BE input.
func UTF8LengthFromUTF16BE(s []uint16) int {
	return Default().UTF8LengthFromUTF16BE(s)
}

// UTF8LengthFromUTF32 returns the UTF-8 length of valid UTF-32 input.
func UTF8LengthFromUTF32(s []uint32) int {
	return Default().UTF8LengthFromUTF32(s)
}

// UTF16LengthFromUTF8 returns the UTF-16 length of valid UTF-8 input.
func UTF16LengthFromUTF8(b []byte) int {
	return Default().UTF16LengthFromUTF8(b)
}

// UTF16LengthFromUTF32 returns the UTF-16 length of valid UTF-32 input.
func UTF16LengthFromUTF32(s []uint32) int {
	return Default().UTF16LengthFromUTF32(s)
}

// UTF32LengthFromUTF8 returns the UTF-32 length of valid UTF-8 input.
func UTF32LengthFromUTF8(b []byte) int {
	return Default().UTF32LengthFromUTF8(b)
}

// UTF32LengthFromUTF16LE returns the UTF-32 length of valid UTF-16LE input.
func UTF32LengthFromUTF16LE(s []uint16) int {
	return Default().UTF32LengthFromUTF16LE(s)
}

// UTF32LengthFromUTF16BE returns the UTF-32 length of valid UTF-16BE input.
func UTF32LengthFromUTF16BE(s []uint16) int {
	return Default().UTF32LengthFromUTF16BE(s)
}

// CountUTF8 returns the number of code points in valid UTF-8 input.
func CountUTF8(b []byte) int {
	return Default().CountUTF8(b)
}

// CountUTF16LE returns the number of code points in valid UTF-16LE input.
func CountUTF16LE(s []uint16) int {
	return Default().CountUTF16LE(s)
}

// CountUTF16BE returns the number of code points in valid UTF-16BE input.
func CountUTF16BE(s []uint16) int {
	return Default().CountUTF16BE(s)
}

// ChangeEndiannessUTF16 byte-swaps every unit of src into dst, which must be at least as long.
func ChangeEndiannessUTF16(src, dst []uint16) {
	Default().ChangeEndiannessUTF16(src, dst)
}
