package transcode

import (
	"github.com/gottingen/transcode/internal/lanes"
)

// utf8SafetyMargin is the number of trailing bytes always left to the
// scalar routines by the UTF-8 block loops.
const utf8SafetyMargin = 16

// utf8Checker validates UTF-8 in 64-byte blocks, carrying the bytes that a
// sequence crossing the block boundary needs.
type utf8Checker struct {
	err            lanes.U8x32
	prevInput      lanes.U8x32
	prevIncomplete lanes.U8x32
}

func (c *utf8Checker) check(block []byte, ascii bool) {
	if ascii {
		// a sequence left open by the previous block cannot be finished here
		c.err = c.err.Or(c.prevIncomplete)
		c.prevIncomplete = lanes.U8x32{}
		c.prevInput = lanes.LoadU8x32(block[32:])
		return
	}
	lo := lanes.LoadU8x32(block)
	hi := lanes.LoadU8x32(block[32:])
	c.checkBytes(lo, c.prevInput)
	c.checkBytes(hi, lo)
	c.prevIncomplete = hi.SubSat(incompleteMax)
	c.prevInput = hi
}

func (c *utf8Checker) checkBytes(input, prev lanes.U8x32) {
	prev1 := input.Prev(prev, 1)
	sc := prev1.Shr(4).Lookup16(&byte1High).
		And(prev1.AndScalar(0x0F).Lookup16(&byte1Low)).
		And(input.Shr(4).Lookup16(&byte2High))

	// third and fourth bytes of a sequence must be continuations, and only
	// there may two continuations follow each other
	prev2 := input.Prev(prev, 2)
	prev3 := input.Prev(prev, 3)
	must23 := prev2.SubSatScalar(0xE0 - 0x80).Or(prev3.SubSatScalar(0xF0 - 0x80))
	c.err = c.err.Or(must23.AndScalar(0x80).Xor(sc))
}

func (c *utf8Checker) failed() bool {
	return c.err.AnyNonZero()
}

// utf8Rewind returns where a scalar pass has to resume when the bytes
// before pos passed block validation: pos itself, or the previous byte that
// is not a continuation when it sits in the three bytes before pos and
// either opens a sequence running past pos or cannot lead one at all.
func utf8Rewind(b []byte, pos int) int {
	for k := 1; k <= 3 && k <= pos; k++ {
		if c := b[pos-k]; !isContinuation(c) {
			if n := utf8SeqLen(c); n == 0 || n > k {
				return pos - k
			}
			return pos
		}
	}
	return pos
}

func lanesValidateUTF8(b []byte) Result {
	var chk utf8Checker
	pos := 0
	for ; pos+64 <= len(b); pos += 64 {
		block := b[pos : pos+64]
		chk.check(block, lanes.ASCII64(block))
		if chk.failed() {
			break
		}
	}
	pos = utf8Rewind(b, pos)
	r := scalarValidateUTF8(b[pos:])
	if r.Kind != Success {
		r.Count += pos
		return r
	}
	return Result{Kind: Success, Count: len(b)}
}

// utf8BlockLimit returns the first position at or before end from which no
// sequence crosses end. A byte that cannot lead a sequence is left for the
// next block to flag.
func utf8BlockLimit(src []byte, end int) int {
	p := end - 1
	for k := 0; k < 3 && isContinuation(src[p]); k++ {
		p--
	}
	c := src[p]
	if isContinuation(c) {
		return end
	}
	if n := utf8SeqLen(c); n != 0 && p+n <= end {
		return end
	}
	return p
}

func (e *windowEntry) decode(window []byte) lanes.U32x8 {
	g := lanes.Gather32(window, &e.gather)
	var m lanes.U32x8
	for i := 0; i < int(e.count); i++ {
		m[i] = utf8LeadMask[e.lens[i]]
	}
	g = g.And(m)
	return g.AndScalar(0x7F).
		Or(g.Shr(2).AndScalar(0xFC0)).
		Or(g.Shr(4).AndScalar(0x3F000)).
		Or(g.Shr(6).AndScalar(0x1C0000))
}

// utf8Sink receives the code points decoded by utf8Blocks.
type utf8Sink interface {
	ascii(block []byte, out int) int
	window(cps *lanes.U32x8, e *windowEntry, out int) int
	put(cp uint32, out int) int
}

type utf16Sink struct {
	dst  []uint16
	swap bool
}

func (s utf16Sink) ascii(block []byte, out int) int {
	for h := 0; h < 64; h += 32 {
		lo, hi := lanes.LoadU8x32(block[h:]).Widen()
		if s.swap {
			lo, hi = lo.ByteSwap(), hi.ByteSwap()
		}
		lo.Store(s.dst[out+h:])
		hi.Store(s.dst[out+h+16:])
	}
	return out + 64
}

func (s utf16Sink) window(cps *lanes.U32x8, e *windowEntry, out int) int {
	n := int(e.count)
	if !e.astral {
		d := s.dst[out : out+n]
		for i := range d {
			d[i] = swapIf(uint16(cps[i]), s.swap)
		}
		return out + n
	}
	for i := 0; i < n; i++ {
		out = putUTF16(s.dst, out, cps[i], s.swap)
	}
	return out
}

func (s utf16Sink) put(cp uint32, out int) int {
	return putUTF16(s.dst, out, cp, s.swap)
}

type utf32Sink struct {
	dst []uint32
}

func (s utf32Sink) ascii(block []byte, out int) int {
	for h := 0; h < 64; h += 32 {
		lo, hi := lanes.LoadU8x32(block[h:]).Widen()
		a, b := lo.Widen()
		a.Store(s.dst[out+h:])
		b.Store(s.dst[out+h+8:])
		a, b = hi.Widen()
		a.Store(s.dst[out+h+16:])
		b.Store(s.dst[out+h+24:])
	}
	return out + 64
}

func (s utf32Sink) window(cps *lanes.U32x8, e *windowEntry, out int) int {
	n := int(e.count)
	copy(s.dst[out:out+n], cps[:n])
	return out + n
}

func (s utf32Sink) put(cp uint32, out int) int {
	s.dst[out] = cp
	return out + 1
}

// utf8Blocks validates and converts whole 64-byte blocks. It stops before
// the first flagged block and before the safety margin; the caller finishes
// src[cpos:] into the output after out with a scalar routine. cpos always
// sits on a sequence start of a valid prefix.
func utf8Blocks[S utf8Sink](src []byte, s S) (cpos, out int) {
	maybeInitLUT()
	var chk utf8Checker
	for bs := 0; bs+64+utf8SafetyMargin <= len(src); bs += 64 {
		block := src[bs : bs+64]
		ascii := lanes.ASCII64(block)
		chk.check(block, ascii)
		if chk.failed() {
			return cpos, out
		}
		if ascii && cpos == bs {
			out = s.ascii(block, out)
			cpos += 64
			continue
		}
		// finish the sequence the previous block left open
		for cpos < bs {
			cp, n, ok := decodeValidUTF8(src, cpos)
			if ok {
				out = s.put(cp, out)
			}
			cpos += n
		}

		limit := utf8BlockLimit(src, bs+64)
		ends := (uint64(lanes.LoadU8x32(block).LeaderMask()) |
			uint64(lanes.LoadU8x32(block[32:]).LeaderMask())<<32) >> 1
		if limit == bs+64 {
			ends |= 1 << 63
		}
		for cpos+12 <= limit {
			e := &utf8Windows[(ends>>uint(cpos-bs))&0xFFF]
			if e.count == 0 {
				cp, n, ok := decodeValidUTF8(src[:limit], cpos)
				if ok {
					out = s.put(cp, out)
				}
				cpos += n
				continue
			}
			cps := e.decode(src[cpos : cpos+12])
			out = s.window(&cps, e, out)
			cpos += int(e.consumed)
		}
		for cpos < limit {
			cp, n, ok := decodeValidUTF8(src[:limit], cpos)
			if ok {
				out = s.put(cp, out)
			}
			cpos += n
		}
	}
	return cpos, out
}

func lanesUTF8ToUTF16(swap bool, src []byte, dst []uint16) Result {
	cpos, out := utf8Blocks(src, utf16Sink{dst: dst, swap: swap})
	r := scalarUTF8ToUTF16(swap, src[cpos:], dst[out:])
	if r.Kind != Success {
		r.Count += cpos
		return r
	}
	r.Count += out
	return r
}

func lanesValidUTF8ToUTF16(swap bool, src []byte, dst []uint16) int {
	cpos, out := utf8Blocks(src, utf16Sink{dst: dst, swap: swap})
	return out + scalarValidUTF8ToUTF16(swap, src[cpos:], dst[out:])
}

func lanesUTF8ToUTF32(src []byte, dst []uint32) Result {
	cpos, out := utf8Blocks(src, utf32Sink{dst: dst})
	r := scalarUTF8ToUTF32(src[cpos:], dst[out:])
	if r.Kind != Success {
		r.Count += cpos
		return r
	}
	r.Count += out
	return r
}

func lanesValidUTF8ToUTF32(src []byte, dst []uint32) int {
	cpos, out := utf8Blocks(src, utf32Sink{dst: dst})
	return out + scalarValidUTF8ToUTF32(src[cpos:], dst[out:])
}
