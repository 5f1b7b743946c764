package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, c Codec[Frame, Frame], data []byte) []string {
	t.Helper()
	buf := NewReadBuffer()
	buf.Append(data)

	var out []string
	for {
		f, ok, err := c.Decode(buf)
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, string(f))
	}
	return out
}

func TestDelimiterCodecLf(t *testing.T) {
	c := NewDelimiterCodec(NewLineDelimiter(LineLf))
	frames := decodeAll(t, c, []byte("Doe\nRay\n\n"))
	assert.Equal(t, []string{"Doe", "Ray", ""}, frames)
}

func TestDelimiterCodecCrLfSplitAcrossChunks(t *testing.T) {
	c := NewDelimiterCodec(NewLineDelimiter(LineCrLf))
	buf := NewReadBuffer()
	buf.Append([]byte("hello\r"))

	_, ok, err := c.Decode(buf)
	require.NoError(t, err)
	assert.False(t, ok)

	buf.Append([]byte("\nworld\r\n"))
	f1, ok, err := c.Decode(buf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", string(f1))

	f2, ok, err := c.Decode(buf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "world", string(f2))
}

func TestDelimiterCodecUnicodeCodepointSplitAcrossChunks(t *testing.T) {
	c := NewDelimiterCodec(NewRuneDelimiter('あ'))
	buf := NewReadBuffer()
	full := []byte("hi" + "あ" + "world")

	// Split exactly inside the multi-byte codepoint.
	buf.Append(full[:3]) // "hi" + first byte of 'あ'
	_, ok, err := c.Decode(buf)
	require.NoError(t, err)
	assert.False(t, ok)

	buf.Append(full[3:])
	f, ok, err := c.Decode(buf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hi", string(f))
}

func TestDelimiterCodecByteSequencePrefixOfBuffer(t *testing.T) {
	c := NewDelimiterCodec(NewSequenceDelimiter([]byte("##")))
	buf := NewReadBuffer()
	buf.Append([]byte("#")) // prefix of the two-byte sequence
	_, ok, err := c.Decode(buf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, buf.Len())

	buf.Append([]byte("#rest"))
	f, ok, err := c.Decode(buf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "", string(f))
}

func TestDelimiterCodecCrLfSplitExactlyBetweenBytes(t *testing.T) {
	c := NewDelimiterCodec(NewLineDelimiter(LineCrLf))
	buf := NewReadBuffer()
	buf.Append([]byte("あめ\r"))
	_, ok, err := c.Decode(buf)
	require.NoError(t, err)
	assert.False(t, ok)

	buf.Append([]byte("\n"))
	f, ok, err := c.Decode(buf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "あめ", string(f))
}

func TestDelimiterCodecJapaneseCrLfScenario(t *testing.T) {
	c := NewDelimiterCodec(NewLineDelimiter(LineCrLf))
	frames := decodeAll(t, c, []byte("あめ\r\nつち\r\n\r\n"))
	assert.Equal(t, []string{"あめ", "つち", ""}, frames)
}

func TestDelimiterCodecInvalidUtf8(t *testing.T) {
	c := NewDelimiterCodec(NewRuneDelimiter('\n'))
	buf := NewReadBuffer()
	buf.Append([]byte{0xff, 0xfe, '\n'})
	_, _, err := c.Decode(buf)
	require.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestDelimiterCodecRoundTrip(t *testing.T) {
	c := NewDelimiterCodec(NewByteDelimiter('\n'))
	wb := NewWriteBuffer()
	require.NoError(t, c.Encode([]byte("payload"), wb))

	rb := NewReadBuffer()
	rb.Append(wb.Bytes())
	f, ok, err := c.Decode(rb)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "payload", string(f))
	assert.Equal(t, 0, rb.Len())
}

func TestDelimiterCodecStreamComposition(t *testing.T) {
	c := NewDelimiterCodec(NewByteDelimiter(';'))
	wb := NewWriteBuffer()
	for _, s := range []string{"a", "bb", "", "ccc"} {
		require.NoError(t, c.Encode([]byte(s), wb))
	}

	frames := decodeAll(t, c, wb.Bytes())
	assert.Equal(t, []string{"a", "bb", "", "ccc"}, frames)
}
