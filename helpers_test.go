package transcode

import (
	"bytes"
	"math/bits"
	"math/rand/v2"
	"testing"
	"unicode/utf16"
)

var testEngines = []Engine{EngineScalar, EngineLanes}

// forEachEngine runs fn once per engine in a subtest named after it.
func forEachEngine(t *testing.T, fn func(t *testing.T, c *Converter)) {
	t.Helper()
	for _, e := range testEngines {
		t.Run(e.String(), func(t *testing.T) {
			fn(t, New(WithEngine(e)))
		})
	}
}

func newRand(seed byte) *rand.Rand {
	return rand.New(rand.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, seed}, 8))))
}

// textMix weighs the four UTF-8 length classes of generated code points.
type textMix struct {
	name    string
	weights [4]int
}

var textMixes = []textMix{
	{"ascii", [4]int{1, 0, 0, 0}},
	{"mostly-ascii", [4]int{97, 1, 1, 1}},
	{"latin", [4]int{1, 1, 0, 0}},
	{"cjk", [4]int{1, 0, 8, 1}},
	{"emoji", [4]int{1, 0, 1, 4}},
	{"mixed", [4]int{1, 1, 1, 1}},
}

// Sizes straddle the 16-unit, 64-byte and safety-margin boundaries.
var textSizes = []int{0, 1, 3, 15, 16, 17, 31, 33, 63, 64, 65, 79, 80, 81, 127, 128, 129, 200, 1000, 4099}

func randomScalar(r *rand.Rand, class int) rune {
	switch class {
	case 0:
		return rune(r.IntN(0x80))
	case 1:
		return rune(0x80 + r.IntN(0x800-0x80))
	case 2:
		for {
			c := rune(0x800 + r.IntN(0x10000-0x800))
			if c < 0xD800 || c > 0xDFFF {
				return c
			}
		}
	default:
		return rune(0x10000 + r.IntN(0x110000-0x10000))
	}
}

func randomRunes(r *rand.Rand, n int, mix textMix) []rune {
	total := 0
	for _, w := range mix.weights {
		total += w
	}
	out := make([]rune, n)
	for i := range out {
		pick := r.IntN(total)
		class := 0
		for pick >= mix.weights[class] {
			pick -= mix.weights[class]
			class++
		}
		out[i] = randomScalar(r, class)
	}
	return out
}

func toUTF16(runes []rune, e Endianness) []uint16 {
	s := utf16.Encode(runes)
	if e != HostEndianness() {
		for i := range s {
			s[i] = bits.ReverseBytes16(s[i])
		}
	}
	return s
}

func toUTF32(runes []rune) []uint32 {
	s := make([]uint32, len(runes))
	for i, c := range runes {
		s[i] = uint32(c)
	}
	return s
}

func mutateUTF8(r *rand.Rand, b []byte) []byte {
	out := bytes.Clone(b)
	if len(out) == 0 {
		return []byte{byte(0x80 + r.IntN(0x80))}
	}
	for range 1 + r.IntN(3) {
		out[r.IntN(len(out))] = byte(r.IntN(256))
	}
	if r.IntN(4) == 0 {
		out = out[:r.IntN(len(out)+1)]
	}
	return out
}

func mutateUTF16(r *rand.Rand, s []uint16, e Endianness) []uint16 {
	out := append([]uint16(nil), s...)
	if len(out) == 0 {
		out = []uint16{0xD800}
	}
	for range 1 + r.IntN(2) {
		u := uint16(0xD800 + r.IntN(0x800))
		if e != HostEndianness() {
			u = bits.ReverseBytes16(u)
		}
		out[r.IntN(len(out))] = u
	}
	return out
}

func mutateUTF32(r *rand.Rand, s []uint32) []uint32 {
	out := append([]uint32(nil), s...)
	if len(out) == 0 {
		out = []uint32{0xD800}
	}
	bad := []uint32{0xD800, 0xDBFF, 0xDC00, 0xDFFF, 0x110000, 0xFFFFFFFF, r.Uint32()}
	out[r.IntN(len(out))] = bad[r.IntN(len(bad))]
	return out
}
