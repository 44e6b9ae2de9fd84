package main

import (
	"fmt"

	"github.com/gottingen/transcode"
)

// text is a file body viewed in its source encoding form.
type text struct {
	enc transcode.Encoding
	u8  []byte
	u16 []uint16 // unit memory in enc's byte order
	u32 []uint32 // host order
}

func endianOf(e transcode.Encoding) transcode.Endianness {
	if e == transcode.UTF16BE || e == transcode.UTF32BE {
		return transcode.BigEndian
	}
	return transcode.LittleEndian
}

func load(enc transcode.Encoding, data []byte) (*text, error) {
	t := &text{enc: enc}
	switch enc {
	case transcode.UTF8:
		t.u8 = data
	case transcode.UTF16LE, transcode.UTF16BE:
		if len(data)%2 != 0 {
			return nil, fmt.Errorf("%s input has odd length %d", enc, len(data))
		}
		t.u16 = transcode.AsUTF16(data)
	case transcode.UTF32LE, transcode.UTF32BE:
		if len(data)%4 != 0 {
			return nil, fmt.Errorf("%s input length %d is not a multiple of 4", enc, len(data))
		}
		s := transcode.AsUTF32(data)
		if endianOf(enc) != transcode.HostEndianness() {
			u := make([]uint32, len(s))
			transcode.ChangeEndiannessUTF32(s, u)
			s = u
		}
		t.u32 = s
	default:
		return nil, fmt.Errorf("unsupported source encoding %s", enc)
	}
	return t, nil
}

func (t *text) validate(c *transcode.Converter) error {
	switch t.enc {
	case transcode.UTF8:
		return c.ValidateUTF8WithErrors(t.u8).Err()
	case transcode.UTF16LE:
		return c.ValidateUTF16LEWithErrors(t.u16).Err()
	case transcode.UTF16BE:
		return c.ValidateUTF16BEWithErrors(t.u16).Err()
	default:
		return c.ValidateUTF32WithErrors(t.u32).Err()
	}
}

func (t *text) convert(c *transcode.Converter, to transcode.Encoding) ([]byte, error) {
	switch to {
	case transcode.UTF8:
		return t.toUTF8(c)
	case transcode.UTF16LE, transcode.UTF16BE:
		s, err := t.toUTF16(c, to)
		if err != nil {
			return nil, err
		}
		return transcode.UTF16Bytes(s), nil
	case transcode.UTF32LE, transcode.UTF32BE:
		s, err := t.toUTF32(c)
		if err != nil {
			return nil, err
		}
		if endianOf(to) != transcode.HostEndianness() {
			u := make([]uint32, len(s))
			transcode.ChangeEndiannessUTF32(s, u)
			s = u
		}
		return transcode.UTF32Bytes(s), nil
	default:
		return nil, fmt.Errorf("unsupported target encoding %s", to)
	}
}

func (t *text) toUTF8(c *transcode.Converter) ([]byte, error) {
	var (
		dst []byte
		r   transcode.Result
	)
	switch t.enc {
	case transcode.UTF8:
		return t.u8, t.validate(c)
	case transcode.UTF16LE:
		dst = make([]byte, c.UTF8LengthFromUTF16LE(t.u16))
		r = c.ConvertUTF16LEToUTF8WithErrors(t.u16, dst)
	case transcode.UTF16BE:
		dst = make([]byte, c.UTF8LengthFromUTF16BE(t.u16))
		r = c.ConvertUTF16BEToUTF8WithErrors(t.u16, dst)
	default:
		dst = make([]byte, c.UTF8LengthFromUTF32(t.u32))
		r = c.ConvertUTF32ToUTF8WithErrors(t.u32, dst)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return dst[:r.Count], nil
}

func (t *text) toUTF16(c *transcode.Converter, to transcode.Encoding) ([]uint16, error) {
	var (
		dst []uint16
		r   transcode.Result
	)
	switch t.enc {
	case transcode.UTF8:
		dst = make([]uint16, c.UTF16LengthFromUTF8(t.u8))
		if to == transcode.UTF16LE {
			r = c.ConvertUTF8ToUTF16LEWithErrors(t.u8, dst)
		} else {
			r = c.ConvertUTF8ToUTF16BEWithErrors(t.u8, dst)
		}
	case transcode.UTF16LE, transcode.UTF16BE:
		if err := t.validate(c); err != nil {
			return nil, err
		}
		if t.enc == to {
			return t.u16, nil
		}
		dst = make([]uint16, len(t.u16))
		c.ChangeEndiannessUTF16(t.u16, dst)
		return dst, nil
	default:
		dst = make([]uint16, c.UTF16LengthFromUTF32(t.u32))
		if to == transcode.UTF16LE {
			r = c.ConvertUTF32ToUTF16LEWithErrors(t.u32, dst)
		} else {
			r = c.ConvertUTF32ToUTF16BEWithErrors(t.u32, dst)
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return dst[:r.Count], nil
}

func (t *text) toUTF32(c *transcode.Converter) ([]uint32, error) {
	var (
		dst []uint32
		r   transcode.Result
	)
	switch t.enc {
	case transcode.UTF8:
		dst = make([]uint32, c.UTF32LengthFromUTF8(t.u8))
		r = c.ConvertUTF8ToUTF32WithErrors(t.u8, dst)
	case transcode.UTF16LE:
		dst = make([]uint32, c.UTF32LengthFromUTF16LE(t.u16))
		r = c.ConvertUTF16LEToUTF32WithErrors(t.u16, dst)
	case transcode.UTF16BE:
		dst = make([]uint32, c.UTF32LengthFromUTF16BE(t.u16))
		r = c.ConvertUTF16BEToUTF32WithErrors(t.u16, dst)
	default:
		return t.u32, t.validate(c)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return dst[:r.Count], nil
}
