package transcode

import (
	"testing"
)

func FuzzUTF8(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte("\xC0\xAF"))
	f.Add([]byte("aé日\U0001F600"))
	f.Add(make([]byte, 100))
	s, l := New(WithEngine(EngineScalar)), New(WithEngine(EngineLanes))
	f.Fuzz(func(t *testing.T, b []byte) {
		requireSameUTF8(t, s, l, b)
	})
}

func FuzzUTF16(f *testing.F) {
	f.Add([]byte{0x3D, 0xD8, 0x00, 0xDE})
	f.Add([]byte{0x00, 0xD8, 0x41, 0x00})
	s, l := New(WithEngine(EngineScalar)), New(WithEngine(EngineLanes))
	f.Fuzz(func(t *testing.T, b []byte) {
		u := AsUTF16(b)
		requireSameUTF16(t, s, l, u, LittleEndian)
		requireSameUTF16(t, s, l, u, BigEndian)
	})
}

func FuzzUTF32(f *testing.F) {
	f.Add([]byte{0x00, 0xF6, 0x01, 0x00})
	f.Add([]byte{0x00, 0x00, 0x11, 0x00})
	s, l := New(WithEngine(EngineScalar)), New(WithEngine(EngineLanes))
	f.Fuzz(func(t *testing.T, b []byte) {
		requireSameUTF32(t, s, l, AsUTF32(b))
	})
}
