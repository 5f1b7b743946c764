package codec

import "github.com/pkg/errors"

// FixedLengthCodec frames messages of a constant, known-in-advance size.
// Wire layout: [payload : Length bytes] repeated.
type FixedLengthCodec struct {
	// Length is the exact byte size of every frame. Must be >= 1.
	Length int
}

// NewFixedLengthCodec returns a FixedLengthCodec for the given frame size.
func NewFixedLengthCodec(length int) *FixedLengthCodec {
	if length < 1 {
		panic("codec: FixedLengthCodec length must be >= 1")
	}
	return &FixedLengthCodec{Length: length}
}

// Decode returns the next Length-byte frame, or NeedMore if fewer than
// Length bytes are buffered.
func (c *FixedLengthCodec) Decode(buf *ReadBuffer) (Frame, bool, error) {
	if buf.Len() < c.Length {
		return nil, false, nil
	}
	return buf.DrainTo(c.Length), true, nil
}

// Encode appends frame as-is. frame must be exactly Length bytes.
func (c *FixedLengthCodec) Encode(frame Frame, buf *WriteBuffer) error {
	if len(frame) != c.Length {
		return precondition("fixed_length",
			errors.Errorf("frame length %d does not match configured length %d", len(frame), c.Length))
	}
	buf.Extend(frame)
	return nil
}
