// Package codec defines the codec contract stream framing strategies
// implement, and the framing strategies themselves: fixed length,
// delimiter, length-prefixed, and varint-length-prefixed. Payloads are
// opaque byte sequences — this package never inspects or serializes their
// contents, only finds their boundaries.
package codec

import (
	"github.com/pkg/errors"
	"github.com/yurazsb/framecodecs/buffer"
)

// Frame is one application-level message, framed out of a byte stream.
// Codecs never inspect its contents.
type Frame = []byte

// Codec converts between frames and bytes, incrementally. In and Out are
// split so combinators (RequestIdFieldCodec, RemoteAddrCodec) can expose
// asymmetric decode/encode types without wrapping twice.
type Codec[In, Out any] interface {
	// Decode inspects buf and, if a complete frame is present, removes
	// exactly that frame's bytes from its head and returns (frame, true,
	// nil). It returns (zero, false, nil) — NeedMore — iff buf is a
	// prefix of a possible frame; repeated calls with no new bytes must
	// keep returning NeedMore without consuming further data.
	Decode(buf *ReadBuffer) (Out, bool, error)

	// Encode appends the wire representation of item to buf. For items
	// outside the codec's domain it returns an *EncodeError; it does not
	// panic.
	Encode(item In, buf *WriteBuffer) error
}

// ReadBuffer and WriteBuffer are re-exported from the buffer package so
// codec implementations and their callers only need one import.
type (
	ReadBuffer  = buffer.ReadBuffer
	WriteBuffer = buffer.WriteBuffer
)

// NewReadBuffer and NewWriteBuffer mirror the buffer package's
// constructors, re-exported for the same reason as the type aliases above.
func NewReadBuffer() *ReadBuffer   { return buffer.NewReadBuffer() }
func NewWriteBuffer() *WriteBuffer { return buffer.NewWriteBuffer() }

// DecodeError is returned by Decode for a malformed frame. It is fatal:
// the caller is expected to abandon the connection, never retry.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return "decode: " + e.Op + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeError(op string, err error) error {
	return &DecodeError{Op: op, Err: err}
}

// invalidEncoding wraps err as a DecodeError signaling malformed input
// (e.g. invalid UTF-8 ahead of a codepoint delimiter).
func invalidEncoding(op, msg string) error {
	return newDecodeError(op, errors.New(msg))
}

// EncodeError reports that Encode was given a frame outside the codec's
// domain — a programmer error, never expected on a correct code path.
type EncodeError struct {
	Op  string
	Err error
}

func (e *EncodeError) Error() string {
	return "encode: " + e.Op + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }

func precondition(op string, err error) error {
	return &EncodeError{Op: op, Err: err}
}
