package transcode

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF8Rewind(t *testing.T) {
	cases := []struct {
		raw  string
		pos  int
		want int
	}{
		{"abcd", 4, 4},
		{"", 0, 0},
		{"a\xE6\x97", 3, 1},
		{"ab\xC3\xA9", 4, 4},
		{"\xF0\x9F\x98", 3, 0},
		{"abc\xF8", 4, 3},
		{"\xFF", 1, 0},
		{"a\xFB\x80", 3, 1},
		{"\x80\x80\x80\x80", 4, 4},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, utf8Rewind([]byte(tc.raw), tc.pos), "%q at %d", tc.raw, tc.pos)
	}
}

func TestUTF8BlockLimit(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"abcd", 4},
		{"abc\xC3", 3},
		{"ab\xE6\x97", 2},
		{"a\xE6\x97\xA5", 4},
		{"\xF0\x9F\x98\x80", 4},
		{"abc\xF8", 3},
		{"ab\xFF\x80", 2},
		{"\x80\x80\x80\x80", 4},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, utf8BlockLimit([]byte(tc.raw), len(tc.raw)), "%q", tc.raw)
	}
}

func TestHeaderBitsAtBlockEnd(t *testing.T) {
	tails := map[string][]byte{
		"none":  nil,
		"ascii": bytes.Repeat([]byte{'z'}, 100),
		"short": []byte("zz"),
		"latin": bytes.Repeat([]byte("é"), 60),
	}

	forEachEngine(t, func(t *testing.T, c *Converter) {
		for _, off := range []int{63, 127, 191} {
			for _, prefix := range [][]byte{
				bytes.Repeat([]byte{'a'}, off),
				append(bytes.Repeat([]byte("é"), off/2), 'a'),
			} {
				for name, tail := range tails {
					for _, bad := range []byte{0xF8, 0xFB, 0xFF} {
						src := append(bytes.Clone(prefix), bad)
						src = append(src, tail...)
						msg := fmt.Sprintf("offset %d lead %#x tail %s", off, bad, name)
						want := Result{Kind: HeaderBits, Count: off}

						require.False(t, c.ValidateUTF8(src), msg)
						require.Equal(t, want, c.ValidateUTF8WithErrors(src), msg)

						dst := make([]uint16, c.UTF16LengthFromUTF8(src))
						require.Equal(t, want, c.ConvertUTF8ToUTF16LEWithErrors(src, dst), msg)
						require.Zero(t, c.ConvertUTF8ToUTF16BE(src, dst), msg)
						dst32 := make([]uint32, c.UTF32LengthFromUTF8(src))
						require.Equal(t, want, c.ConvertUTF8ToUTF32WithErrors(src, dst32), msg)
					}
				}
			}
		}
	})
}
