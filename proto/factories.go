package proto

import (
	"encoding/binary"

	"github.com/yurazsb/framecodecs/codec"
)

// CodecFactory produces a fresh codec instance per bind — the same role
// spec.md §3 assigns the protocol factory generally, narrowed to "knows
// how to build its Codec". Base protocols implement it directly;
// RequestIdProtocol implements it by wrapping an inner CodecFactory's
// codec. RemoteAddrProtocol and RemoteAddrMultiplexProtocol hold an inner
// CodecFactory but do not implement it themselves. Holding the inner
// protocol as a CodecFactory is what lets the combinators compose with any
// base protocol without knowing its concrete type.
type CodecFactory[In, Out any] interface {
	NewCodec() codec.Codec[In, Out]
}

func bindWithCodec[In, Out any](io Stream, c codec.Codec[In, Out]) (BindResult[In, Out], error) {
	return Immediate[In, Out](NewCodecTransport[In, Out](io, c))
}

// FixedLengthProtocol binds a FixedLengthCodec to each accepted stream.
type FixedLengthProtocol struct {
	Length int
}

func (p FixedLengthProtocol) NewCodec() codec.Codec[codec.Frame, codec.Frame] {
	return codec.NewFixedLengthCodec(p.Length)
}

func (p FixedLengthProtocol) BindTransport(io Stream) (BindResult[codec.Frame, codec.Frame], error) {
	return bindWithCodec[codec.Frame, codec.Frame](io, p.NewCodec())
}

// DelimiterProtocol binds a DelimiterCodec using the given Delimiter
// strategy. The Delimiter itself is stateless, so a single configured
// value is safe to share across the factory's binds.
type DelimiterProtocol struct {
	D codec.Delimiter
}

func (p DelimiterProtocol) NewCodec() codec.Codec[codec.Frame, codec.Frame] {
	return codec.NewDelimiterCodec(p.D)
}

func (p DelimiterProtocol) BindTransport(io Stream) (BindResult[codec.Frame, codec.Frame], error) {
	return bindWithCodec[codec.Frame, codec.Frame](io, p.NewCodec())
}

// LengthFieldProtocol binds a LengthFieldCodec of the configured field
// size and byte order.
type LengthFieldProtocol struct {
	FieldSize int
	Order     binary.ByteOrder
}

func (p LengthFieldProtocol) NewCodec() codec.Codec[codec.Frame, codec.Frame] {
	return codec.NewLengthFieldCodec(p.FieldSize, p.Order)
}

func (p LengthFieldProtocol) BindTransport(io Stream) (BindResult[codec.Frame, codec.Frame], error) {
	return bindWithCodec[codec.Frame, codec.Frame](io, p.NewCodec())
}

// VarIntProtocol binds a VarIntLengthFieldCodec; it has no configuration.
type VarIntProtocol struct{}

func (p VarIntProtocol) NewCodec() codec.Codec[codec.Frame, codec.Frame] {
	return codec.NewVarIntLengthFieldCodec()
}

func (p VarIntProtocol) BindTransport(io Stream) (BindResult[codec.Frame, codec.Frame], error) {
	return bindWithCodec[codec.Frame, codec.Frame](io, p.NewCodec())
}

// RequestIdProtocol upgrades an inner pipelined protocol into a
// multiplexed one by wrapping a fresh inner codec with
// RequestIdFieldCodec for every bind.
type RequestIdProtocol struct {
	Inner CodecFactory[codec.Frame, codec.Frame]
	Order binary.ByteOrder
}

func (p RequestIdProtocol) NewCodec() codec.Codec[codec.IdFrame, codec.IdFrame] {
	return codec.NewRequestIdFieldCodec(p.Inner.NewCodec(), p.Order)
}

func (p RequestIdProtocol) BindTransport(io Stream) (BindResult[codec.IdFrame, codec.IdFrame], error) {
	return bindWithCodec[codec.IdFrame, codec.IdFrame](io, p.NewCodec())
}

// RemoteAddrProtocol wraps an inner pipelined protocol, tagging every
// decoded item with the connection's peer address, captured once at bind
// time. Binding is synchronous here because net.Conn.RemoteAddr never
// blocks, but it is expressed through BindFuture so a future inner
// protocol whose own bind genuinely suspends (e.g. behind a handshake)
// would compose without any change to this type — see spec.md §4.8 and
// §9.
type RemoteAddrProtocol struct {
	Inner CodecFactory[codec.Frame, codec.Frame]
}

func (p RemoteAddrProtocol) BindTransport(io Stream) (BindResult[codec.Frame, codec.Tagged[codec.Frame]], error) {
	future := newBindFuture[codec.Frame, codec.Tagged[codec.Frame]](
		func() (Transport[codec.Frame, codec.Tagged[codec.Frame]], bool, error) {
			c := codec.NewRemoteAddrCodec[codec.Frame, codec.Frame](p.Inner.NewCodec(), io.RemoteAddr())
			return NewCodecTransport[codec.Frame, codec.Tagged[codec.Frame]](io, c), true, nil
		},
		func(t Transport[codec.Frame, codec.Tagged[codec.Frame]]) (Transport[codec.Frame, codec.Tagged[codec.Frame]], error) {
			if io.RemoteAddr() == nil {
				return nil, bindErr(nil, "remote addr protocol: peer address unavailable")
			}
			return t, nil
		},
	)

	result, err := future.Resolve()
	if err != nil {
		return BindResult[codec.Frame, codec.Tagged[codec.Frame]]{}, err
	}
	return Immediate[codec.Frame, codec.Tagged[codec.Frame]](result)
}

// RemoteAddrMultiplexProtocol is RemoteAddrProtocol's multiplexed-session
// counterpart: it wraps an inner protocol already upgraded to
// RequestId/IdFrame (e.g. a RequestIdProtocol) and tags the payload half
// of each decoded (id, payload) pair.
type RemoteAddrMultiplexProtocol struct {
	Inner CodecFactory[codec.IdFrame, codec.IdFrame]
}

func (p RemoteAddrMultiplexProtocol) BindTransport(io Stream) (BindResult[codec.IdFrame, codec.TaggedIdFrame], error) {
	c := codec.NewRemoteAddrMultiplexCodec(p.Inner.NewCodec(), io.RemoteAddr())
	return bindWithCodec[codec.IdFrame, codec.TaggedIdFrame](io, c)
}
