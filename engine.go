package transcode

import (
	"fmt"
	"strings"

	"github.com/gottingen/transcode/internal/lanes"
)

// Engine names an implementation of the transcoding kernels.
type Engine uint8

const (
	// EngineAuto picks the lane engine when its operations run on hardware
	// vectors and the CPU probe allows it, and the scalar engine otherwise.
	EngineAuto Engine = iota
	// EngineScalar is the portable one-unit-at-a-time reference engine.
	EngineScalar
	// EngineLanes processes fixed-width blocks with the lane kernels and
	// finishes tails with the scalar engine.
	EngineLanes
)

func (e Engine) String() string {
	switch e {
	case EngineAuto:
		return "auto"
	case EngineScalar:
		return "scalar"
	case EngineLanes:
		return "lanes"
	default:
		return fmt.Sprintf("Engine(%d)", uint8(e))
	}
}

// ParseEngine parses the names printed by Engine.String.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EngineAuto, nil
	case "scalar", "generic":
		return EngineScalar, nil
	case "lanes", "simd":
		return EngineLanes, nil
	default:
		return EngineAuto, fmt.Errorf("transcode: unknown engine %q", s)
	}
}

// kernel is the operation set every engine provides. UTF-16 forms take the
// byte order of the unit memory.
type kernel interface {
	engine() Engine

	validateASCII(b []byte) Result
	validASCII(b []byte) bool
	validateUTF8(b []byte) Result
	validUTF8(b []byte) bool
	validateUTF16(e Endianness, s []uint16) Result
	validUTF16(e Endianness, s []uint16) bool
	validateUTF32(s []uint32) Result
	validUTF32(s []uint32) bool

	utf8ToUTF16(e Endianness, src []byte, dst []uint16) int
	utf8ToUTF16WithErrors(e Endianness, src []byte, dst []uint16) Result
	validUTF8ToUTF16(e Endianness, src []byte, dst []uint16) int
	utf8ToUTF32(src []byte, dst []uint32) int
	utf8ToUTF32WithErrors(src []byte, dst []uint32) Result
	validUTF8ToUTF32(src []byte, dst []uint32) int

	utf16ToUTF8(e Endianness, src []uint16, dst []byte) int
	utf16ToUTF8WithErrors(e Endianness, src []uint16, dst []byte) Result
	validUTF16ToUTF8(e Endianness, src []uint16, dst []byte) int
	utf16ToUTF32(e Endianness, src []uint16, dst []uint32) int
	utf16ToUTF32WithErrors(e Endianness, src []uint16, dst []uint32) Result
	validUTF16ToUTF32(e Endianness, src []uint16, dst []uint32) int

	utf32ToUTF8(src []uint32, dst []byte) int
	utf32ToUTF8WithErrors(src []uint32, dst []byte) Result
	validUTF32ToUTF8(src []uint32, dst []byte) int
	utf32ToUTF16(e Endianness, src []uint32, dst []uint16) int
	utf32ToUTF16WithErrors(e Endianness, src []uint32, dst []uint16) Result
	validUTF32ToUTF16(e Endianness, src []uint32, dst []uint16) int

	utf8LengthFromUTF16(e Endianness, s []uint16) int
	utf8LengthFromUTF32(s []uint32) int
	utf16LengthFromUTF8(b []byte) int
	utf16LengthFromUTF32(s []uint32) int
	utf32LengthFromUTF8(b []byte) int
	utf32LengthFromUTF16(e Endianness, s []uint16) int
	countUTF8(b []byte) int
	countUTF16(e Endianness, s []uint16) int

	changeEndiannessUTF16(src, dst []uint16)
}

func needSwap(e Endianness) bool {
	return e != hostEndianness
}

// countOrZero maps a WithErrors result onto the int-returning convention.
func countOrZero(r Result) int {
	if r.Kind != Success {
		return 0
	}
	return r.Count
}

func kernelFor(e Engine) kernel {
	switch e {
	case EngineScalar:
		return scalarKernel{}
	case EngineLanes:
		return lanesKernel{}
	default:
		if lanes.Native && probeLanes() {
			return lanesKernel{}
		}
		return scalarKernel{}
	}
}
