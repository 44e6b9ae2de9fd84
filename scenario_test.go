package transcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertUTF8ToUTF16LE(t *testing.T) {
	src := []byte{0x41, 0xC3, 0xA9, 0xE6, 0x97, 0xA5, 0xF0, 0x9F, 0x98, 0x80}
	want := []byte{0x41, 0x00, 0xE9, 0x00, 0xE5, 0x65, 0x3D, 0xD8, 0x00, 0xDE}

	forEachEngine(t, func(t *testing.T, c *Converter) {
		dst := make([]uint16, c.UTF16LengthFromUTF8(src))
		n := c.ConvertUTF8ToUTF16LE(src, dst)
		require.Equal(t, 5, n)
		require.Equal(t, want, UTF16Bytes(dst[:n]))
	})
}

func TestValidateUTF8Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind ErrorKind
		pos  int
	}{
		{"overlong slash", "\xC0\xAF", Overlong, 0},
		{"lone high surrogate", "\xED\xA0\x80", Surrogate, 0},
		{"stray continuation", "\x80", TooLong, 0},
		{"extra continuation", "\xC3\xA9\xA9", TooLong, 2},
		{"truncated two", "a\xC3", TooShort, 1},
		{"missing continuation", "\xC3\x28", TooShort, 0},
		{"truncated three", "\xE6\x97", TooShort, 0},
		{"truncated four", "\xF0\x9F\x98", TooShort, 0},
		{"five byte leader", "\xF8\x88\x80\x80\x80", HeaderBits, 0},
		{"ff", "\xFF", HeaderBits, 0},
		{"overlong three", "\xE0\x80\xAF", Overlong, 0},
		{"overlong four", "\xF0\x80\x80\xAF", Overlong, 0},
		{"above max", "\xF4\x90\x80\x80", TooLarge, 0},
		{"f5 leader", "\xF5\x80\x80\x80", TooLarge, 0},
		{"low surrogate", "abc\xED\xBF\xBF", Surrogate, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forEachEngine(t, func(t *testing.T, c *Converter) {
				for _, pad := range []int{0, 1, 61, 62, 63, 64, 100, 127, 200} {
					src := append(bytes.Repeat([]byte{'x'}, pad), tc.raw...)
					src = append(src, bytes.Repeat([]byte{'y'}, 100)...)
					if tc.kind == TooShort && tc.raw[len(tc.raw)-1] >= 0x80 {
						// truncation only shows at the very end
						src = src[:pad+len(tc.raw)]
					}

					r := c.ValidateUTF8WithErrors(src)
					require.Equal(t, Result{Kind: tc.kind, Count: tc.pos + pad}, r, "pad %d", pad)
					require.False(t, c.ValidateUTF8(src))

					dst := make([]uint16, c.UTF16LengthFromUTF8(src))
					require.Equal(t, r, c.ConvertUTF8ToUTF16LEWithErrors(src, dst))
					require.Zero(t, c.ConvertUTF8ToUTF16LE(src, dst))
					dst32 := make([]uint32, c.UTF32LengthFromUTF8(src))
					require.Equal(t, r, c.ConvertUTF8ToUTF32WithErrors(src, dst32))
				}
			})
		})
	}
}

func TestConvertUTF16LESurrogatePair(t *testing.T) {
	src := AsUTF16([]byte{0x3D, 0xD8, 0x00, 0xDE})

	forEachEngine(t, func(t *testing.T, c *Converter) {
		dst := make([]byte, c.UTF8LengthFromUTF16LE(src))
		require.Equal(t, 4, c.ConvertUTF16LEToUTF8(src, dst))
		require.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, dst)

		dst32 := make([]uint32, c.UTF32LengthFromUTF16LE(src))
		require.Equal(t, 1, c.ConvertUTF16LEToUTF32(src, dst32))
		require.Equal(t, []uint32{0x1F600}, dst32)
	})
}

func TestValidateUTF16LEUnpairedHigh(t *testing.T) {
	src := AsUTF16([]byte{0x00, 0xD8, 0x41, 0x00})

	forEachEngine(t, func(t *testing.T, c *Converter) {
		require.Equal(t, Result{Kind: Surrogate, Count: 0}, c.ValidateUTF16LEWithErrors(src))
		require.False(t, c.ValidateUTF16LE(src))
	})
}

func TestValidateUTF32TooLarge(t *testing.T) {
	forEachEngine(t, func(t *testing.T, c *Converter) {
		require.Equal(t, Result{Kind: TooLarge, Count: 0}, c.ValidateUTF32WithErrors([]uint32{0x110000}))

		s := make([]uint32, 40)
		for i := range s {
			s[i] = 'a'
		}
		s[37] = 0xDFFF
		require.Equal(t, Result{Kind: Surrogate, Count: 37}, c.ValidateUTF32WithErrors(s))
		require.False(t, c.ValidateUTF32(s))
	})
}

func TestAutodetectThenConvert(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 0x41, 0x00, 0x42, 0x00}

	forEachEngine(t, func(t *testing.T, c *Converter) {
		require.Equal(t, UTF16LE, c.AutodetectEncoding(raw))
		_, n := CheckBOM(raw)
		src := AsUTF16(raw[n:])
		dst := make([]byte, c.UTF8LengthFromUTF16LE(src))
		require.Equal(t, 2, c.ConvertUTF16LEToUTF8(src, dst))
		require.Equal(t, []byte("AB"), dst)
	})
}

func TestASCII10KiBLength(t *testing.T) {
	src := bytes.Repeat([]byte("0123456789abcdef"), 640)

	forEachEngine(t, func(t *testing.T, c *Converter) {
		dst := make([]uint16, c.UTF16LengthFromUTF8(src))
		n := c.ConvertUTF8ToUTF16LE(src, dst)
		require.Equal(t, 10240, n)
		require.Equal(t, 10240, c.UTF8LengthFromUTF16LE(dst[:n]))
	})
}

func TestValidateASCII(t *testing.T) {
	forEachEngine(t, func(t *testing.T, c *Converter) {
		src := bytes.Repeat([]byte{'a'}, 300)
		require.True(t, c.ValidateASCII(src))
		for _, pos := range []int{0, 7, 63, 64, 65, 130, 299} {
			bad := bytes.Clone(src)
			bad[pos] = 0x80
			require.Equal(t, Result{Kind: TooLarge, Count: pos}, c.ValidateASCIIWithErrors(bad))
			require.False(t, c.ValidateASCII(bad))
		}
	})
}
