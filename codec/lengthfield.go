package codec

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// LengthFieldCodec frames messages prefixed by an unsigned length field of
// FieldSize bytes (1-8), in the configured byte order. Wire layout:
// [length : FieldSize bytes] [payload : length bytes].
type LengthFieldCodec struct {
	FieldSize int
	Order     binary.ByteOrder

	// pending holds the decoded length once the field has arrived but the
	// body hasn't, so re-entrant Decode calls don't re-read it.
	pending    uint64
	hasPending bool
}

// NewLengthFieldCodec returns a LengthFieldCodec. fieldSize must be in
// [1, 8].
func NewLengthFieldCodec(fieldSize int, order binary.ByteOrder) *LengthFieldCodec {
	if fieldSize < 1 || fieldSize > 8 {
		panic("codec: LengthFieldCodec fieldSize must be in [1, 8]")
	}
	return &LengthFieldCodec{FieldSize: fieldSize, Order: order}
}

func (c *LengthFieldCodec) Decode(buf *ReadBuffer) (Frame, bool, error) {
	if !c.hasPending {
		if buf.Len() < c.FieldSize {
			return nil, false, nil
		}
		field := buf.DrainTo(c.FieldSize)
		c.pending = readUint(field, c.Order)
		c.hasPending = true
	}

	if uint64(buf.Len()) < c.pending {
		return nil, false, nil
	}

	frame := buf.DrainTo(int(c.pending))
	c.hasPending = false
	c.pending = 0
	return frame, true, nil
}

func (c *LengthFieldCodec) Encode(frame Frame, buf *WriteBuffer) error {
	max := maxForFieldSize(c.FieldSize)
	if uint64(len(frame)) > max {
		return precondition("length_field",
			errors.Errorf("payload length %d does not fit in a %d-byte field (max %d)", len(frame), c.FieldSize, max))
	}

	field := make([]byte, c.FieldSize)
	writeUint(field, c.Order, uint64(len(frame)))
	buf.Extend(field)
	buf.Extend(frame)
	return nil
}

func readUint(b []byte, order binary.ByteOrder) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 3:
		return readUint24(b, order)
	case 4:
		return uint64(order.Uint32(b))
	case 5, 6, 7:
		return readUintN(b, order)
	case 8:
		return order.Uint64(b)
	default:
		panic("codec: unsupported field size")
	}
}

func readUint24(b []byte, order binary.ByteOrder) uint64 {
	if order == binary.BigEndian {
		return uint64(b[0])<<16 | uint64(b[1])<<8 | uint64(b[2])
	}
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16
}

func readUintN(b []byte, order binary.ByteOrder) uint64 {
	var v uint64
	if order == binary.BigEndian {
		for _, x := range b {
			v = v<<8 | uint64(x)
		}
	} else {
		for i := len(b) - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[i])
		}
	}
	return v
}

func writeUint(b []byte, order binary.ByteOrder, v uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, v)
	default:
		writeUintN(b, order, v)
	}
}

func writeUintN(b []byte, order binary.ByteOrder, v uint64) {
	if order == binary.BigEndian {
		for i := len(b) - 1; i >= 0; i-- {
			b[i] = byte(v)
			v >>= 8
		}
	} else {
		for i := 0; i < len(b); i++ {
			b[i] = byte(v)
			v >>= 8
		}
	}
}

func maxForFieldSize(size int) uint64 {
	if size >= 8 {
		return ^uint64(0)
	}
	return 1<<(8*uint(size)) - 1
}
