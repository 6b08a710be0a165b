// Package buffer implements the typed byte codec for every Minecraft Java
// Edition wire data shape: the cursor-based Buffer container plus
// Read*/Write* pairs for varints, strings, positions, UUIDs, chat, slots,
// entity metadata, particles, and the command-graph node shape.
//
// A Buffer is a mutable byte container with an append tail and a
// monotonically advancing read cursor, mirroring the source library's
// bytearray-with-position design rather than splitting reading and
// writing across two separate types.
package buffer

import (
	"io"

	"github.com/go-mcproto/corejava/protoerr"
)

// Buffer is a cursor-based byte container. Writes append to the tail;
// reads advance pos. 0 <= pos <= len(data) always holds.
type Buffer struct {
	data []byte
	pos  int
}

// New creates a Buffer pre-loaded with data, positioned at the start —
// the shape used to decode an already-framed packet payload.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewEmpty creates an empty Buffer for encoding into.
func NewEmpty() *Buffer {
	return &Buffer{}
}

// Bytes returns the full backing slice, irrespective of pos.
func (b *Buffer) Bytes() []byte { return b.data }

// Remaining returns the slice from pos to the end.
func (b *Buffer) Remaining() []byte { return b.data[b.pos:] }

// Len returns the total number of bytes written to the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Pos returns the current read cursor.
func (b *Buffer) Pos() int { return b.pos }

// Reset moves the read cursor back to the start without discarding data.
func (b *Buffer) Reset() { b.pos = 0 }

// Clear empties the buffer and resets the cursor.
func (b *Buffer) Clear() {
	b.data = nil
	b.pos = 0
}

// WriteBytes appends raw bytes to the buffer.
func (b *Buffer) WriteBytes(p []byte) {
	b.data = append(b.data, p...)
}

// ReadBytes reads exactly n bytes, advancing pos by n.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, protoerr.NewCorrupt("negative read length", nil)
	}
	if b.pos+n > len(b.data) {
		return nil, protoerr.NewCorrupt("truncated buffer", io.ErrUnexpectedEOF)
	}
	out := b.data[b.pos : b.pos+n]
	b.pos += n
	return out, nil
}

// WriteByte writes a single byte (satisfies io.ByteWriter).
func (b *Buffer) WriteByte(c byte) error {
	b.data = append(b.data, c)
	return nil
}

// ReadByte reads a single byte (satisfies io.ByteReader).
func (b *Buffer) ReadByte() (byte, error) {
	if b.pos >= len(b.data) {
		return 0, protoerr.NewCorrupt("truncated buffer", io.EOF)
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

// Write implements io.Writer by appending to the tail.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Read implements io.Reader, advancing pos. It never returns a short read
// unless the buffer is exhausted.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += n
	return n, nil
}
