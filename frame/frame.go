// Package frame implements outbound/inbound packet framing: the outer
// length-prefix, the zlib compression envelope, and threshold semantics,
// adapted from the teacher library's WirePacket onto this module's cursor
// Buffer instead of separate io.Reader/io.Writer passes.
package frame

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/protoerr"
)

// DisableCompression is the threshold value meaning "compression off".
const DisableCompression = -1

// Frame is one decoded inbound packet frame: the id and the payload bytes
// immediately following it, ready for a packet's Unpack.
type Frame struct {
	ID      int32
	Payload []byte
}

// Encode produces the wire bytes for one outbound packet, given its id,
// packed payload, and the connection's current compression threshold.
//
//   - threshold < 0: compression disabled. varint(L) ++ varint(id) ++ payload.
//   - threshold >= 0 and len(inner) >= threshold: zlib-compressed envelope.
//   - threshold >= 0 and len(inner) < threshold: uncompressed envelope with
//     an explicit dataLength of 0, per the protocol's "small packet" case.
func Encode(id int32, payload []byte, threshold int) ([]byte, error) {
	inner := buffer.NewEmpty()
	if err := inner.WriteVarInt(int64(id), 32); err != nil {
		return nil, err
	}
	inner.WriteBytes(payload)
	innerBytes := inner.Bytes()

	if threshold < 0 {
		return wrapLength(innerBytes)
	}

	if len(innerBytes) >= threshold {
		compressed, err := compressZlib(innerBytes)
		if err != nil {
			return nil, protoerr.NewCorrupt("zlib compress", err)
		}
		content := buffer.NewEmpty()
		if err := content.WriteVarInt(int64(len(innerBytes)), 32); err != nil {
			return nil, err
		}
		content.WriteBytes(compressed)
		return wrapLength(content.Bytes())
	}

	content := buffer.NewEmpty()
	if err := content.WriteVarInt(0, 32); err != nil {
		return nil, err
	}
	content.WriteBytes(innerBytes)
	return wrapLength(content.Bytes())
}

func wrapLength(content []byte) ([]byte, error) {
	out := buffer.NewEmpty()
	if err := out.WriteVarInt(int64(len(content)), 32); err != nil {
		return nil, err
	}
	out.WriteBytes(content)
	return out.Bytes(), nil
}

// ByteReader is the minimal transport surface framing needs to read one
// frame: single-byte reads (for the length varint) and exact-length reads
// (for the framed body), matching the spec's byte-stream interface.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// Decode reads one frame from r and returns its id and payload. If
// threshold < 0, compression is assumed disabled on this connection.
func Decode(r ByteReader, threshold int) (Frame, error) {
	length, err := readVarIntFrom(r)
	if err != nil {
		return Frame{}, err
	}
	if length < 0 {
		return Frame{}, protoerr.NewCorrupt("frame length", nil)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return Frame{}, &protoerr.TransportError{Op: "read frame body", Err: err}
	}

	if threshold < 0 {
		return decodeInner(body)
	}
	return decodeCompressed(body)
}

func decodeCompressed(body []byte) (Frame, error) {
	b := buffer.New(body)
	dataLength, err := b.ReadVarInt(32)
	if err != nil {
		return Frame{}, err
	}

	if dataLength == 0 {
		return decodeInner(b.Remaining())
	}

	uncompressed, err := decompressZlib(b.Remaining())
	if err != nil {
		return Frame{}, protoerr.NewCorrupt("zlib decompress", err)
	}
	return decodeInner(uncompressed)
}

func decodeInner(inner []byte) (Frame, error) {
	b := buffer.New(inner)
	id, err := b.ReadVarInt(32)
	if err != nil {
		return Frame{}, err
	}
	return Frame{ID: int32(id), Payload: b.Remaining()}, nil
}

// readVarIntFrom reads a varint one byte at a time from a plain
// io.ByteReader transport, per the spec's "read_varint" external
// interface — framing's outer length prefix is the only varint read
// directly off the wire rather than out of an in-memory Buffer.
func readVarIntFrom(r ByteReader) (int32, error) {
	var result int64
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, &protoerr.TransportError{Op: "read varint byte", Err: err}
		}
		result |= int64(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			if result < -(1<<31) || result > (1<<31)-1 {
				return 0, &protoerr.ValueOutOfRangeError{Value: result, MinBits: 32, Field: "frame length"}
			}
			return int32(result), nil
		}
	}
	return 0, protoerr.NewCorrupt("frame length varint longer than 5 bytes", nil)
}

func compressZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
