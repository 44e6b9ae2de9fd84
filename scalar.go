package transcode

// scalarKernel is the reference engine. Every lane routine must agree with
// it on well-formed input and, for the checked entry points, on errors.
type scalarKernel struct{}

func (scalarKernel) engine() Engine { return EngineScalar }

func (scalarKernel) validateASCII(b []byte) Result { return scalarValidateASCII(b) }
func (scalarKernel) validASCII(b []byte) bool      { return scalarValidateASCII(b).OK() }
func (scalarKernel) validateUTF8(b []byte) Result  { return scalarValidateUTF8(b) }
func (scalarKernel) validUTF8(b []byte) bool       { return scalarValidateUTF8(b).OK() }

func (scalarKernel) validateUTF16(e Endianness, s []uint16) Result {
	return scalarValidateUTF16(needSwap(e), s)
}

func (scalarKernel) validUTF16(e Endianness, s []uint16) bool {
	return scalarValidateUTF16(needSwap(e), s).OK()
}

func (scalarKernel) validateUTF32(s []uint32) Result { return scalarValidateUTF32(s) }
func (scalarKernel) validUTF32(s []uint32) bool      { return scalarValidateUTF32(s).OK() }

func (scalarKernel) utf8ToUTF16(e Endianness, src []byte, dst []uint16) int {
	return countOrZero(scalarUTF8ToUTF16(needSwap(e), src, dst))
}

func (scalarKernel) utf8ToUTF16WithErrors(e Endianness, src []byte, dst []uint16) Result {
	return scalarUTF8ToUTF16(needSwap(e), src, dst)
}

func (scalarKernel) validUTF8ToUTF16(e Endianness, src []byte, dst []uint16) int {
	return scalarValidUTF8ToUTF16(needSwap(e), src, dst)
}

func (scalarKernel) utf8ToUTF32(src []byte, dst []uint32) int {
	return countOrZero(scalarUTF8ToUTF32(src, dst))
}

func (scalarKernel) utf8ToUTF32WithErrors(src []byte, dst []uint32) Result {
	return scalarUTF8ToUTF32(src, dst)
}

func (scalarKernel) validUTF8ToUTF32(src []byte, dst []uint32) int {
	return scalarValidUTF8ToUTF32(src, dst)
}

func (scalarKernel) utf16ToUTF8(e Endianness, src []uint16, dst []byte) int {
	return countOrZero(scalarUTF16ToUTF8(needSwap(e), src, dst))
}

func (scalarKernel) utf16ToUTF8WithErrors(e Endianness, src []uint16, dst []byte) Result {
	return scalarUTF16ToUTF8(needSwap(e), src, dst)
}

func (scalarKernel) validUTF16ToUTF8(e Endianness, src []uint16, dst []byte) int {
	return scalarValidUTF16ToUTF8(needSwap(e), src, dst)
}

func (scalarKernel) utf16ToUTF32(e Endianness, src []uint16, dst []uint32) int {
	return countOrZero(scalarUTF16ToUTF32(needSwap(e), src, dst))
}

func (scalarKernel) utf16ToUTF32WithErrors(e Endianness, src []uint16, dst []uint32) Result {
	return scalarUTF16ToUTF32(needSwap(e), src, dst)
}

func (scalarKernel) validUTF16ToUTF32(e Endianness, src []uint16, dst []uint32) int {
	return scalarValidUTF16ToUTF32(needSwap(e), src, dst)
}

func (scalarKernel) utf32ToUTF8(src []uint32, dst []byte) int {
	return countOrZero(scalarUTF32ToUTF8(src, dst))
}

func (scalarKernel) utf32ToUTF8WithErrors(src []uint32, dst []byte) Result {
	return scalarUTF32ToUTF8(src, dst)
}

func (scalarKernel) validUTF32ToUTF8(src []uint32, dst []byte) int {
	return scalarValidUTF32ToUTF8(src, dst)
}

func (scalarKernel) utf32ToUTF16(e Endianness, src []uint32, dst []uint16) int {
	return countOrZero(scalarUTF32ToUTF16(needSwap(e), src, dst))
}

func (scalarKernel) utf32ToUTF16WithErrors(e Endianness, src []uint32, dst []uint16) Result {
	return scalarUTF32ToUTF16(needSwap(e), src, dst)
}

func (scalarKernel) validUTF32ToUTF16(e Endianness, src []uint32, dst []uint16) int {
	return scalarValidUTF32ToUTF16(needSwap(e), src, dst)
}

func (scalarKernel) utf8LengthFromUTF16(e Endianness, s []uint16) int {
	return scalarUTF8LengthFromUTF16(needSwap(e), s)
}

func (scalarKernel) utf8LengthFromUTF32(s []uint32) int  { return scalarUTF8LengthFromUTF32(s) }
func (scalarKernel) utf16LengthFromUTF8(b []byte) int    { return scalarUTF16LengthFromUTF8(b) }
func (scalarKernel) utf16LengthFromUTF32(s []uint32) int { return scalarUTF16LengthFromUTF32(s) }
func (scalarKernel) utf32LengthFromUTF8(b []byte) int    { return scalarCountUTF8(b) }

func (scalarKernel) utf32LengthFromUTF16(e Endianness, s []uint16) int {
	return scalarCountUTF16(needSwap(e), s)
}

func (scalarKernel) countUTF8(b []byte) int { return scalarCountUTF8(b) }

func (scalarKernel) countUTF16(e Endianness, s []uint16) int {
	return scalarCountUTF16(needSwap(e), s)
}

func (scalarKernel) changeEndiannessUTF16(src, dst []uint16) {
	scalarChangeEndiannessUTF16(src, dst)
}
