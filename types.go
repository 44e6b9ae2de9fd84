package transcode

import (
	"encoding/binary"
	"strings"
)

// ErrorKind classifies the first ill-formed input unit found by a validator
// or converter.
type ErrorKind uint8

const (
	Success    ErrorKind = 0
	HeaderBits ErrorKind = 1 // leading byte with five or more leading 1-bits
	TooShort   ErrorKind = 2 // truncated sequence or missing continuation byte
	TooLong    ErrorKind = 3 // continuation byte without a leading byte
	Overlong   ErrorKind = 4 // not the shortest form
	TooLarge   ErrorKind = 5 // above U+10FFFF (or >= 0x80 for ASCII)
	Surrogate  ErrorKind = 6 // U+D800..U+DFFF, or an unpaired UTF-16 surrogate
	Other      ErrorKind = 7
)

func (k ErrorKind) String() string {
	switch k {
	case Success:
		return "success"
	case HeaderBits:
		return "header bits"
	case TooShort:
		return "too short"
	case TooLong:
		return "too long"
	case Overlong:
		return "overlong"
	case TooLarge:
		return "too large"
	case Surrogate:
		return "surrogate"
	default:
		return "other"
	}
}

// Result is returned by the WithErrors entry points.
//
// When Kind is Success, Count is the number of output units written (for
// validators, the input length). Otherwise Count is the index of the first
// offending input unit.
type Result struct {
	Kind  ErrorKind
	Count int
}

// OK reports whether r describes a successful call.
func (r Result) OK() bool {
	return r.Kind == Success
}

// Err returns nil on success and an *Error otherwise.
func (r Result) Err() error {
	if r.Kind == Success {
		return nil
	}
	return &Error{Kind: r.Kind, Position: r.Count}
}

// Encoding is a set of Unicode encoding forms. Detection functions return a
// single flag or a union of flags; Unspecified means no confident guess.
type Encoding uint8

const (
	Unspecified Encoding = 0
	UTF8        Encoding = 1 << 0
	UTF16LE     Encoding = 1 << 1
	UTF16BE     Encoding = 1 << 2
	UTF32LE     Encoding = 1 << 3
	UTF32BE     Encoding = 1 << 4
)

var encodingNames = [...]struct {
	e    Encoding
	name string
}{
	{UTF8, "UTF-8"},
	{UTF16LE, "UTF-16LE"},
	{UTF16BE, "UTF-16BE"},
	{UTF32LE, "UTF-32LE"},
	{UTF32BE, "UTF-32BE"},
}

// Has reports whether every flag of o is present in e.
func (e Encoding) Has(o Encoding) bool {
	return o != Unspecified && e&o == o
}

func (e Encoding) String() string {
	if e == Unspecified {
		return "unspecified"
	}
	var b strings.Builder
	for _, n := range encodingNames {
		if e&n.e == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
	}
	return b.String()
}

// ParseEncoding accepts the names printed by Encoding.String, case
// insensitively and with or without the dash.
func ParseEncoding(s string) (Encoding, bool) {
	norm := strings.ReplaceAll(strings.ToUpper(s), "-", "")
	for _, n := range encodingNames {
		if strings.ReplaceAll(n.name, "-", "") == norm {
			return n.e, true
		}
	}
	return Unspecified, false
}

// Endianness is the byte order of UTF-16 code units in memory.
type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// hostEndianness is consulted once per call to decide whether units need a
// byte swap.
var hostEndianness = func() Endianness {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	if b[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// HostEndianness returns the byte order of the running machine.
func HostEndianness() Endianness {
	return hostEndianness
}
