// Package proto defines the protocol-factory boundary between a framing
// codec and the asynchronous runtime that drives it: an immutable,
// cloneable configuration object that, handed a freshly accepted or
// dialed stream, produces a Transport — a codec bound to that stream.
//
// Nothing here owns a listener or an event loop; binding is the only
// operation, and it is either synchronous (most codecs: peer address and
// inner transport are both immediately available) or asynchronous (an
// inner protocol whose own bind is a future, e.g. one layering a
// handshake underneath).
package proto

import (
	"net"

	"github.com/pkg/errors"
	"github.com/yurazsb/framecodecs/codec"
)

// Stream is the minimal surface proto needs from a connected byte stream:
// enough to read/write and to recover the peer address RemoteAddr needs.
type Stream interface {
	net.Conn
}

// Transport is a codec bound to a concrete bidirectional stream: the unit
// the runtime reads frames from and writes frames to.
type Transport[In, Out any] interface {
	// Decode blocks (by reading from the underlying stream as needed)
	// until a frame is available, the stream ends, or an error occurs.
	Decode() (Out, error)
	// Encode writes one frame to the underlying stream.
	Encode(item In) error
	// Close releases the underlying stream.
	Close() error
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
}

// BindResult is the outcome of binding a protocol to a stream: either the
// transport is ready immediately, or a BindFuture must be polled to
// completion. When a protocol's BindTransport returns a nil error, exactly
// one of Transport or Future is non-nil.
type BindResult[In, Out any] struct {
	Transport Transport[In, Out]
	Future    *BindFuture[In, Out]
}

// ServerProtocol is the factory interface the runtime asks, per accepted
// connection, to produce a framed transport.
type ServerProtocol[In, Out any] interface {
	BindTransport(io Stream) (BindResult[In, Out], error)
}

// ClientProtocol is the symmetric factory used when dialing out.
type ClientProtocol[In, Out any] interface {
	BindTransport(io Stream) (BindResult[In, Out], error)
}

// BindError reports that peer-address lookup or inner-transport
// construction failed while binding a protocol to a stream.
type BindError struct {
	Err error
}

func (e *BindError) Error() string { return "bind: " + e.Err.Error() }
func (e *BindError) Unwrap() error { return e.Err }

func bindErr(err error, msg string) error {
	if err == nil {
		return &BindError{Err: errors.New(msg)}
	}
	return &BindError{Err: errors.Wrap(err, msg)}
}

// Immediate wraps a ready transport as a BindResult, for protocols whose
// bind is always synchronous.
func Immediate[In, Out any](t Transport[In, Out]) (BindResult[In, Out], error) {
	return BindResult[In, Out]{Transport: t}, nil
}
