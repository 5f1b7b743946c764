package codec

import "encoding/binary"

// RequestId correlates a response with its request inside a multiplexed
// session. Assignment is the runtime's concern; this codec only preserves
// and round-trips it.
type RequestId = uint64

// IdFrame pairs a RequestId with the inner codec's frame.
type IdFrame struct {
	Id      RequestId
	Payload Frame
}

// RequestIdFieldCodec upgrades a pipelined inner codec into a multiplexed
// one by prefixing each frame with an 8-byte request id. Wire layout:
// [request_id : 8 bytes] [inner-encoded frame bytes...].
//
// Stateful across Decode calls: the inner codec may buffer a partial body
// across several calls, and the id must be read exactly once per frame,
// not re-read while the inner codec is still returning NeedMore.
type RequestIdFieldCodec struct {
	Inner Codec[Frame, Frame]
	Order binary.ByteOrder

	pendingId RequestId
	hasId     bool
}

func NewRequestIdFieldCodec(inner Codec[Frame, Frame], order binary.ByteOrder) *RequestIdFieldCodec {
	return &RequestIdFieldCodec{Inner: inner, Order: order}
}

func (c *RequestIdFieldCodec) Decode(buf *ReadBuffer) (IdFrame, bool, error) {
	if !c.hasId {
		if buf.Len() < 8 {
			return IdFrame{}, false, nil
		}
		header := buf.DrainTo(8)
		c.pendingId = c.Order.Uint64(header)
		c.hasId = true
	}

	payload, ok, err := c.Inner.Decode(buf)
	if err != nil {
		return IdFrame{}, false, err
	}
	if !ok {
		return IdFrame{}, false, nil
	}

	id := c.pendingId
	c.hasId = false
	c.pendingId = 0
	return IdFrame{Id: id, Payload: payload}, true, nil
}

func (c *RequestIdFieldCodec) Encode(item IdFrame, buf *WriteBuffer) error {
	header := make([]byte, 8)
	c.Order.PutUint64(header, item.Id)
	buf.Extend(header)
	return c.Inner.Encode(item.Payload, buf)
}
