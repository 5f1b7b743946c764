package codec

import "net"

// Tagged pairs a decoded value with the connection's peer address. Encode
// never needs the address, only Decode produces Tagged values.
type Tagged[T any] struct {
	Addr net.Addr
	Item T
}

// RemoteAddrCodec wraps an inner pipelined codec and tags every decoded
// item with the connection's peer address, captured once at construction
// time. Encoded items pass through to the inner codec untouched.
type RemoteAddrCodec[In, Out any] struct {
	Inner Codec[In, Out]
	Peer  net.Addr
}

func NewRemoteAddrCodec[In, Out any](inner Codec[In, Out], peer net.Addr) *RemoteAddrCodec[In, Out] {
	return &RemoteAddrCodec[In, Out]{Inner: inner, Peer: peer}
}

func (c *RemoteAddrCodec[In, Out]) Decode(buf *ReadBuffer) (Tagged[Out], bool, error) {
	item, ok, err := c.Inner.Decode(buf)
	if err != nil || !ok {
		var zero Tagged[Out]
		return zero, false, err
	}
	return Tagged[Out]{Addr: c.Peer, Item: item}, true, nil
}

func (c *RemoteAddrCodec[In, Out]) Encode(item In, buf *WriteBuffer) error {
	return c.Inner.Encode(item, buf)
}

// RemoteAddrMultiplexCodec is the multiplexed-session shape of
// RemoteAddrCodec: the inner codec decodes (RequestId, T) pairs, and the
// wrapper tags the T, leaving the id untouched so correlation still works
// upstream.
type RemoteAddrMultiplexCodec struct {
	Inner Codec[IdFrame, IdFrame]
	Peer  net.Addr
}

func NewRemoteAddrMultiplexCodec(inner Codec[IdFrame, IdFrame], peer net.Addr) *RemoteAddrMultiplexCodec {
	return &RemoteAddrMultiplexCodec{Inner: inner, Peer: peer}
}

// TaggedIdFrame is an IdFrame whose payload has been wrapped with the
// peer address.
type TaggedIdFrame struct {
	Id      RequestId
	Payload Tagged[Frame]
}

func (c *RemoteAddrMultiplexCodec) Decode(buf *ReadBuffer) (TaggedIdFrame, bool, error) {
	item, ok, err := c.Inner.Decode(buf)
	if err != nil || !ok {
		return TaggedIdFrame{}, false, err
	}
	return TaggedIdFrame{Id: item.Id, Payload: Tagged[Frame]{Addr: c.Peer, Item: item.Payload}}, true, nil
}

func (c *RemoteAddrMultiplexCodec) Encode(item IdFrame, buf *WriteBuffer) error {
	return c.Inner.Encode(item, buf)
}
