package transcode

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

func utf32BEBytes(s []uint32) []byte {
	b := make([]byte, 4*len(s))
	for i, v := range s {
		binary.BigEndian.PutUint32(b[4*i:], v)
	}
	return b
}

// TestAgainstXText checks the converters against golang.org/x/text on
// well-formed input.
func TestAgainstXText(t *testing.T) {
	codecs := map[string]encoding.Encoding{
		"utf16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		"utf16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		"utf32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	}

	forEachEngine(t, func(t *testing.T, c *Converter) {
		r := newRand(8)
		for _, mix := range textMixes {
			for _, n := range []int{0, 17, 65, 300, 2000} {
				u8 := []byte(string(randomRunes(r, n, mix)))

				want, err := codecs["utf16le"].NewEncoder().Bytes(u8)
				require.NoError(t, err)
				le := make([]uint16, c.UTF16LengthFromUTF8(u8))
				le = le[:c.ConvertUTF8ToUTF16LE(u8, le)]
				require.Equal(t, want, append([]byte{}, UTF16Bytes(le)...), mix.name)

				want, err = codecs["utf16be"].NewEncoder().Bytes(u8)
				require.NoError(t, err)
				be := make([]uint16, c.UTF16LengthFromUTF8(u8))
				be = be[:c.ConvertUTF8ToUTF16BE(u8, be)]
				require.Equal(t, want, append([]byte{}, UTF16Bytes(be)...), mix.name)

				back, err := codecs["utf16be"].NewDecoder().Bytes(want)
				require.NoError(t, err)
				got := make([]byte, c.UTF8LengthFromUTF16BE(be))
				got = got[:c.ConvertUTF16BEToUTF8(be, got)]
				require.Equal(t, back, got)

				want, err = codecs["utf32be"].NewEncoder().Bytes(u8)
				require.NoError(t, err)
				u32 := make([]uint32, c.UTF32LengthFromUTF8(u8))
				u32 = u32[:c.ConvertUTF8ToUTF32(u8, u32)]
				require.Equal(t, want, utf32BEBytes(u32), mix.name)
			}
		}
	})
}
