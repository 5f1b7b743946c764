package proto

import (
	"net"

	"github.com/pkg/errors"
	"github.com/yurazsb/framecodecs/buffer"
	"github.com/yurazsb/framecodecs/codec"
)

// readChunkSize is how much the transport asks the stream for each time
// Decode reports NeedMore.
const readChunkSize = 4096

// codecTransport drives a codec.Codec against a connected stream: it owns
// the ReadBuffer bytes accumulate into and the WriteBuffer each Encode
// call stages into before a single Write.
type codecTransport[In, Out any] struct {
	stream Stream
	c      codec.Codec[In, Out]
	rbuf   *buffer.ReadBuffer
}

// NewCodecTransport binds c to an already-connected stream.
func NewCodecTransport[In, Out any](stream Stream, c codec.Codec[In, Out]) Transport[In, Out] {
	return &codecTransport[In, Out]{stream: stream, c: c, rbuf: buffer.NewReadBuffer()}
}

func (t *codecTransport[In, Out]) Decode() (Out, error) {
	for {
		item, ok, err := t.c.Decode(t.rbuf)
		if err != nil {
			var zero Out
			return zero, err
		}
		if ok {
			return item, nil
		}

		chunk := make([]byte, readChunkSize)
		n, err := t.stream.Read(chunk)
		if n > 0 {
			t.rbuf.Append(chunk[:n])
		}
		if err != nil {
			var zero Out
			return zero, err
		}
	}
}

func (t *codecTransport[In, Out]) Encode(item In) error {
	wbuf := buffer.NewWriteBuffer()
	if err := t.c.Encode(item, wbuf); err != nil {
		return err
	}
	_, err := t.stream.Write(wbuf.Bytes())
	return errors.Wrap(err, "transport: write")
}

func (t *codecTransport[In, Out]) Close() error { return t.stream.Close() }

func (t *codecTransport[In, Out]) LocalAddr() net.Addr { return t.stream.LocalAddr() }

func (t *codecTransport[In, Out]) RemoteAddr() net.Addr { return t.stream.RemoteAddr() }
