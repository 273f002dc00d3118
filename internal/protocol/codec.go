package protocol

import (
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
)

// Codec reads and writes gob-encoded trace records
type Codec struct {
	enc *gob.Encoder
	dec *gob.Decoder
}

// NewCodec creates a codec for the given read/writer
func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{
		enc: gob.NewEncoder(rw),
		dec: gob.NewDecoder(rw),
	}
}

// NewEncoder creates an encoder-only codec
func NewEncoder(w io.Writer) *Codec {
	return &Codec{
		enc: gob.NewEncoder(w),
	}
}

// NewDecoder creates a decoder-only codec
func NewDecoder(r io.Reader) *Codec {
	return &Codec{
		dec: gob.NewDecoder(r),
	}
}

// Encode writes a message
func (c *Codec) Encode(msg *Message) error {
	if c.enc == nil {
		return errors.New("codec has no encoder")
	}
	return errors.Wrapf(c.enc.Encode(msg), "encode message type %d", msg.Type)
}

// Decode reads a message. It returns io.EOF unwrapped once the stream is
// exhausted so callers can compare against it directly.
func (c *Codec) Decode() (*Message, error) {
	if c.dec == nil {
		return nil, errors.New("codec has no decoder")
	}
	var msg Message
	if err := c.dec.Decode(&msg); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "decode message")
	}
	return &msg, nil
}
