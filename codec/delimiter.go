package codec

import (
	"bytes"
	"unicode/utf8"
)

// Delimiter is a strategy for locating and writing a frame terminator.
// Modeled as an interface rather than a closed sum type: Go has no tagged
// unions, and an interface leaves the set of delimiters open to callers
// who need one this package doesn't ship, matching how the rest of this
// module treats framing strategies (Codec itself is an interface, not an
// enum of known codecs).
type Delimiter interface {
	// FindAndExtract drains and returns the bytes before the first
	// occurrence of the delimiter in buf, including the delimiter itself
	// in what's removed from buf. Returns NeedMore if the delimiter has
	// not yet appeared.
	FindAndExtract(buf *ReadBuffer) (Frame, bool, error)

	// Append writes the delimiter's canonical byte representation.
	Append(buf *WriteBuffer)
}

// ByteDelimiter matches a single delimiter byte, e.g. '\n' or 0x00.
type ByteDelimiter struct {
	B byte
}

func NewByteDelimiter(b byte) ByteDelimiter { return ByteDelimiter{B: b} }

func (d ByteDelimiter) FindAndExtract(buf *ReadBuffer) (Frame, bool, error) {
	data := buf.Bytes()
	idx := bytes.IndexByte(data, d.B)
	if idx < 0 {
		return nil, false, nil
	}
	frame := buf.DrainTo(idx)
	buf.DrainTo(1) // discard the delimiter itself
	return frame, true, nil
}

func (d ByteDelimiter) Append(buf *WriteBuffer) {
	buf.Extend([]byte{d.B})
}

// RuneDelimiter matches a single Unicode codepoint, which may occupy 1-4
// UTF-8 bytes.
type RuneDelimiter struct {
	R rune
}

func NewRuneDelimiter(r rune) RuneDelimiter { return RuneDelimiter{R: r} }

// FindAndExtract requires the buffered bytes up to at least the
// delimiter's position to be valid UTF-8; an encoding error at or before
// that offset is reported as invalid. Bytes strictly after the delimiter
// are not validated here — they'll be checked on a later call once they
// are the head of the search, which is the permissive reading spec.md §9
// allows.
func (d RuneDelimiter) FindAndExtract(buf *ReadBuffer) (Frame, bool, error) {
	data := buf.Bytes()

	pos := 0
	for pos < len(data) {
		rest := data[pos:]
		if !utf8.FullRune(rest) {
			// A valid-looking but truncated rune at the tail: wait for
			// more bytes rather than judging it invalid.
			break
		}
		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError && size == 1 {
			return nil, false, invalidEncoding("delimiter_rune", "invalid utf8")
		}
		if r == d.R {
			frame := buf.DrainTo(pos)
			buf.DrainTo(size)
			return frame, true, nil
		}
		pos += size
	}
	return nil, false, nil
}

func (d RuneDelimiter) Append(buf *WriteBuffer) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], d.R)
	buf.Extend(tmp[:n])
}

// SequenceDelimiter matches a non-empty, fixed byte sequence such as
// "\r\n" or a custom multi-byte terminator.
type SequenceDelimiter struct {
	Seq []byte
}

func NewSequenceDelimiter(seq []byte) SequenceDelimiter {
	if len(seq) == 0 {
		panic("codec: SequenceDelimiter requires a non-empty sequence")
	}
	return SequenceDelimiter{Seq: append([]byte(nil), seq...)}
}

// FindAndExtract uses bytes.Index: a brute-force scan that switches to
// Rabin-Karp hashing once too many candidate matches fail. The search is
// linear in expectation; it is not a two-way or Aho-Corasick matcher, and
// its worst case is not linear.
func (d SequenceDelimiter) FindAndExtract(buf *ReadBuffer) (Frame, bool, error) {
	data := buf.Bytes()
	idx := bytes.Index(data, d.Seq)
	if idx < 0 {
		return nil, false, nil
	}
	frame := buf.DrainTo(idx)
	buf.DrainTo(len(d.Seq))
	return frame, true, nil
}

func (d SequenceDelimiter) Append(buf *WriteBuffer) {
	buf.Extend(d.Seq)
}

// LineDelimiterKind selects one of the three conventional line endings.
type LineDelimiterKind int

const (
	LineCr LineDelimiterKind = iota
	LineLf
	LineCrLf
)

// NewLineDelimiter returns the SequenceDelimiter for the chosen line
// ending. It's a thin convenience over SequenceDelimiter, not a distinct
// matching strategy.
func NewLineDelimiter(kind LineDelimiterKind) SequenceDelimiter {
	switch kind {
	case LineCr:
		return NewSequenceDelimiter([]byte("\r"))
	case LineLf:
		return NewSequenceDelimiter([]byte("\n"))
	case LineCrLf:
		return NewSequenceDelimiter([]byte("\r\n"))
	default:
		panic("codec: unknown LineDelimiterKind")
	}
}

// DelimiterCodec frames variable-length messages terminated by a
// Delimiter. Empty frames are valid: two consecutive delimiters yield an
// empty payload.
type DelimiterCodec struct {
	D Delimiter
}

func NewDelimiterCodec(d Delimiter) *DelimiterCodec {
	return &DelimiterCodec{D: d}
}

func (c *DelimiterCodec) Decode(buf *ReadBuffer) (Frame, bool, error) {
	return c.D.FindAndExtract(buf)
}

func (c *DelimiterCodec) Encode(frame Frame, buf *WriteBuffer) error {
	buf.Extend(frame)
	c.D.Append(buf)
	return nil
}
