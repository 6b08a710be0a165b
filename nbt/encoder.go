package nbt

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Encoder serializes a Tag tree to NBT's big-endian binary layout.
type Encoder struct {
	dst io.Writer
	own *bytes.Buffer // non-nil only when NewEncoder allocated dst itself
}

// NewEncoder returns an Encoder writing to an internal buffer; call
// Bytes to retrieve what was written.
func NewEncoder() *Encoder {
	buf := &bytes.Buffer{}
	return &Encoder{dst: buf, own: buf}
}

// NewEncoderTo returns an Encoder writing directly to dst.
func NewEncoderTo(dst io.Writer) *Encoder {
	return &Encoder{dst: dst}
}

// Bytes returns the bytes written so far. Only meaningful for an Encoder
// from NewEncoder.
func (e *Encoder) Bytes() []byte {
	if e.own != nil {
		return e.own.Bytes()
	}
	return nil
}

// Reset discards everything written so far. Only meaningful for an
// Encoder from NewEncoder.
func (e *Encoder) Reset() {
	if e.own != nil {
		e.own.Reset()
	}
}

// WriteTag serializes tag as a complete structure: a type byte, then
// (for file format) the root's name, then the tag's payload. Network
// format omits the name entirely, matching every protocol use of NBT.
func (e *Encoder) WriteTag(tag Tag, rootName string, network bool) error {
	if err := e.putByte(tag.ID()); err != nil {
		return err
	}
	if !network {
		if err := e.putString(rootName); err != nil {
			return err
		}
	}
	return tag.write(e)
}

func (e *Encoder) putByte(v byte) error {
	_, err := e.dst.Write([]byte{v})
	return err
}

func (e *Encoder) putRaw(v []byte) error {
	_, err := e.dst.Write(v)
	return err
}

func (e *Encoder) putInt16(v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := e.dst.Write(buf[:])
	return err
}

func (e *Encoder) putInt32(v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := e.dst.Write(buf[:])
	return err
}

func (e *Encoder) putInt64(v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := e.dst.Write(buf[:])
	return err
}

func (e *Encoder) putFloat32(v float32) error {
	return e.putInt32(int32(math.Float32bits(v)))
}

func (e *Encoder) putFloat64(v float64) error {
	return e.putInt64(int64(math.Float64bits(v)))
}

// putString writes a length-prefixed string. This treats the input as
// plain UTF-8 rather than Java's modified UTF-8 (differing only in how
// NUL and supplementary-plane characters are encoded); every protocol
// string this package has to round-trip stays within that overlap.
func (e *Encoder) putString(s string) error {
	data := []byte(s)
	if len(data) > 65535 {
		data = data[:65535]
	}
	if err := e.putInt16(int16(len(data))); err != nil {
		return err
	}
	return e.putRaw(data)
}

// Encode serializes tag as a complete NBT structure and returns the
// resulting bytes.
func Encode(tag Tag, rootName string, network bool) ([]byte, error) {
	e := NewEncoder()
	if err := e.WriteTag(tag, rootName, network); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// EncodeNetwork serializes tag in network format (nameless root), the
// form every packet on the wire uses.
func EncodeNetwork(tag Tag) ([]byte, error) {
	return Encode(tag, "", true)
}

// EncodeFile serializes tag in file format, with rootName as the root
// tag's name.
func EncodeFile(tag Tag, rootName string) ([]byte, error) {
	return Encode(tag, rootName, false)
}
