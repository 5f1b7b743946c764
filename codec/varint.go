package codec

// VarIntLengthFieldCodec frames messages prefixed by an LEB128
// (protobuf-style base-128, continuation-bit) length. Wire layout:
// [varint length >= 1 byte] [payload : length bytes].
type VarIntLengthFieldCodec struct {
	pending    uint64
	hasPending bool
	scanOffset int
}

func NewVarIntLengthFieldCodec() *VarIntLengthFieldCodec {
	return &VarIntLengthFieldCodec{}
}

func (c *VarIntLengthFieldCodec) Decode(buf *ReadBuffer) (Frame, bool, error) {
	if !c.hasPending {
		data := buf.Bytes()
		end := -1
		for i := c.scanOffset; i < len(data); i++ {
			if data[i]&0x80 == 0 {
				end = i
				break
			}
		}
		if end < 0 {
			c.scanOffset = len(data)
			return nil, false, nil
		}

		header := buf.DrainTo(end + 1)
		length, err := decodeLEB128(header)
		if err != nil {
			return nil, false, err
		}
		c.pending = length
		c.hasPending = true
		c.scanOffset = 0
	}

	if uint64(buf.Len()) < c.pending {
		return nil, false, nil
	}

	frame := buf.DrainTo(int(c.pending))
	c.hasPending = false
	c.pending = 0
	return frame, true, nil
}

func (c *VarIntLengthFieldCodec) Encode(frame Frame, buf *WriteBuffer) error {
	buf.Extend(encodeLEB128(uint64(len(frame))))
	buf.Extend(frame)
	return nil
}

// decodeLEB128 decodes a complete varint header (every byte but the last
// has its high bit set) into an unsigned length.
func decodeLEB128(header []byte) (uint64, error) {
	var v uint64
	var shift uint
	for i, b := range header {
		if shift >= 64 {
			return 0, invalidEncoding("varint", "length overflows 64 bits")
		}
		v |= uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if i != len(header)-1 {
				return 0, invalidEncoding("varint", "continuation bit clear before header end")
			}
		}
	}
	return v, nil
}

// encodeLEB128 writes v as little-endian base-128 with a continuation bit
// on every byte but the last.
func encodeLEB128(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			break
		}
	}
	return out
}
