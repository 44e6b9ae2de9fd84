package transcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF8Windows(t *testing.T) {
	maybeInitLUT()

	// every byte ends a sequence
	e := &utf8Windows[0xFFF]
	require.Equal(t, uint8(6), e.count)
	require.Equal(t, uint8(6), e.consumed)
	require.False(t, e.astral)

	// two 2-byte sequences then nothing complete
	e = &utf8Windows[0b1010]
	require.Equal(t, uint8(2), e.count)
	require.Equal(t, uint8(4), e.consumed)
	require.Equal(t, [6]uint8{2, 2}, e.lens)

	// a 4-byte sequence
	e = &utf8Windows[0b1000]
	require.Equal(t, uint8(1), e.count)
	require.True(t, e.astral)

	// five bytes without an end cannot be a sequence
	e = &utf8Windows[0b10_0000]
	require.Zero(t, e.count)
	require.Zero(t, e.consumed)
}

func TestWindowDecode(t *testing.T) {
	maybeInitLUT()

	src := []byte("aé日\U0001F600bc")
	var ends int
	for i := range src {
		if i+1 == len(src) || !isContinuation(src[i+1]) {
			ends |= 1 << i
		}
	}
	e := &utf8Windows[ends&0xFFF]
	require.Equal(t, uint8(6), e.count)
	require.Equal(t, uint8(12), e.consumed)
	require.True(t, e.astral)

	cps := e.decode(src)
	require.Equal(t, []uint32{'a', 0xE9, 0x65E5, 0x1F600, 'b', 'c'}, cps[:6])
}

func TestPackTables(t *testing.T) {
	maybeInitLUT()

	require.Equal(t, uint8(8), pack12[0xFF].n)
	require.Equal(t, uint8(16), pack12[0].n)
	require.Equal(t, [16]uint8{0, 1, 2, 4, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, pack12[0b0000_0110].idx)

	// codes per lane: 1 byte, 2 bytes, 3 bytes, 1 byte
	key := 1<<2 | 2<<4
	require.Equal(t, uint8(7), pack123[key].n)
	require.Equal(t, []uint8{0, 4, 5, 8, 9, 10, 12}, pack123[key].idx[:7])

	require.Equal(t, uint8(0b0101_0101), spread4[0xF])
	require.Equal(t, uint8(0b0001_0000), spread4[0b0100])
}
