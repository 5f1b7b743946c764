package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthFieldCodecScenario(t *testing.T) {
	c := NewLengthFieldCodec(2, binary.BigEndian)
	buf := NewReadBuffer()
	buf.Append([]byte{0x00, 0x03})
	buf.Append([]byte("abc"))
	buf.Append([]byte{0x00, 0x03})
	buf.Append([]byte("def"))
	buf.Append([]byte{0x00, 0x00})

	var frames []string
	for {
		f, ok, err := c.Decode(buf)
		require.NoError(t, err)
		if !ok {
			break
		}
		frames = append(frames, string(f))
	}
	assert.Equal(t, []string{"abc", "def", ""}, frames)
}

func TestLengthFieldCodecHeaderThenBodyAcrossCalls(t *testing.T) {
	c := NewLengthFieldCodec(4, binary.BigEndian)
	buf := NewReadBuffer()
	buf.Append([]byte{0x00, 0x00, 0x00, 0x05})

	_, ok, err := c.Decode(buf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, c.hasPending)

	buf.Append([]byte("hello"))
	f, ok, err := c.Decode(buf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", string(f))
}

func TestLengthFieldCodecMaxValueK1(t *testing.T) {
	c := NewLengthFieldCodec(1, binary.BigEndian)
	wb := NewWriteBuffer()
	payload := make([]byte, 255)
	require.NoError(t, c.Encode(payload, wb))

	rb := NewReadBuffer()
	rb.Append(wb.Bytes())
	f, ok, err := c.Decode(rb)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, f, 255)
}

func TestLengthFieldCodecMaxValueK8RoundTrip(t *testing.T) {
	c := NewLengthFieldCodec(8, binary.BigEndian)
	wb := NewWriteBuffer()
	payload := []byte("small payload, huge field")
	require.NoError(t, c.Encode(payload, wb))

	rb := NewReadBuffer()
	rb.Append(wb.Bytes())
	f, ok, err := c.Decode(rb)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, []byte(f))
}

func TestLengthFieldCodecEncodeTooLargeForField(t *testing.T) {
	c := NewLengthFieldCodec(1, binary.BigEndian)
	wb := NewWriteBuffer()
	err := c.Encode(make([]byte, 256), wb)
	require.Error(t, err)
}

func TestLengthFieldCodecLittleEndian(t *testing.T) {
	c := NewLengthFieldCodec(2, binary.LittleEndian)
	wb := NewWriteBuffer()
	require.NoError(t, c.Encode([]byte("hi"), wb))
	assert.Equal(t, []byte{0x02, 0x00, 'h', 'i'}, wb.Bytes())
}
