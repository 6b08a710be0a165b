package nbt

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// DepthExceededError is raised when a compound/list nests deeper than a
// Decoder's configured limit.
type DepthExceededError struct{ Limit int }

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("nbt: nesting exceeds depth limit %d", e.Limit)
}

// SizeExceededError is raised when a Decoder consumes more bytes than
// its configured limit.
type SizeExceededError struct{ Limit int64 }

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("nbt: payload exceeds byte limit %d", e.Limit)
}

// Decoder parses NBT's big-endian binary layout back into a Tag tree.
type Decoder struct {
	src       io.Reader
	depth     int
	depthCap  int
	consumed  int64
	sizeCap   int64
}

// ReaderOption configures a Decoder built by NewReader/NewReaderFrom.
type ReaderOption func(*Decoder)

// WithMaxDepth overrides the default nesting limit (MaxDepth).
func WithMaxDepth(depth int) ReaderOption {
	return func(d *Decoder) { d.depthCap = depth }
}

// WithMaxBytes overrides the default consumed-byte limit
// (MaxPayloadBytes). Zero disables the limit.
func WithMaxBytes(n int64) ReaderOption {
	return func(d *Decoder) { d.sizeCap = n }
}

// BytesRead reports how many payload bytes ReadTag has consumed,
// including the leading type byte and any root name. A caller embedding
// an NBT blob inside a larger framed message (e.g. a Slot) uses this to
// advance its own cursor by exactly that many bytes.
func (d *Decoder) BytesRead() int64 { return d.consumed }

// NewReader returns a Decoder over an in-memory byte slice.
func NewReader(data []byte, opts ...ReaderOption) *Decoder {
	return NewReaderFrom(bytes.NewReader(data), opts...)
}

// NewReaderFrom returns a Decoder pulling from an arbitrary io.Reader.
func NewReaderFrom(src io.Reader, opts ...ReaderOption) *Decoder {
	d := &Decoder{src: src, depthCap: MaxDepth, sizeCap: MaxPayloadBytes}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ReadTag parses one complete structure: a type byte, then (for file
// format) a root name, then the payload. network selects which form is
// expected. A bare TAG_End decodes to End{} with an empty name.
func (d *Decoder) ReadTag(network bool) (Tag, string, error) {
	id, err := d.getByte()
	if err != nil {
		return nil, "", fmt.Errorf("nbt: read tag id: %w", err)
	}
	if id == IDEnd {
		return End{}, "", nil
	}

	var rootName string
	if !network {
		rootName, err = d.getString()
		if err != nil {
			return nil, "", fmt.Errorf("nbt: read root name: %w", err)
		}
	}

	tag, err := d.readPayload(id)
	if err != nil {
		return nil, "", err
	}
	return tag, rootName, nil
}

func (d *Decoder) readPayload(id byte) (Tag, error) {
	switch id {
	case IDEnd:
		return End{}, nil
	case IDByte:
		v, err := d.getByte()
		return Byte(int8(v)), err
	case IDShort:
		v, err := d.getInt16()
		return Short(v), err
	case IDInt:
		v, err := d.getInt32()
		return Int(v), err
	case IDLong:
		v, err := d.getInt64()
		return Long(v), err
	case IDFloat:
		v, err := d.getFloat32()
		return Float(v), err
	case IDDouble:
		v, err := d.getFloat64()
		return Double(v), err
	case IDByteArray:
		return d.readByteArray()
	case IDString:
		v, err := d.getString()
		return String(v), err
	case IDList:
		return d.readList()
	case IDCompound:
		return d.readCompound()
	case IDIntArray:
		return d.readIntArray()
	case IDLongArray:
		return d.readLongArray()
	default:
		return nil, fmt.Errorf("nbt: unknown tag id %d", id)
	}
}

func (d *Decoder) readByteArray() (ByteArray, error) {
	n, err := d.getInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("nbt: byte array length %d is negative", n)
	}
	data := make([]byte, n)
	if err := d.getRaw(data); err != nil {
		return nil, err
	}
	return ByteArray(data), nil
}

func (d *Decoder) readList() (List, error) {
	if err := d.enter(); err != nil {
		return List{}, err
	}
	defer d.leave()

	elemType, err := d.getByte()
	if err != nil {
		return List{}, err
	}
	n, err := d.getInt32()
	if err != nil {
		return List{}, err
	}
	if n < 0 {
		return List{}, fmt.Errorf("nbt: list length %d is negative", n)
	}

	elements := make([]Tag, n)
	for i := range elements {
		elem, err := d.readPayload(elemType)
		if err != nil {
			return List{}, fmt.Errorf("nbt: list element %d: %w", i, err)
		}
		elements[i] = elem
	}
	return List{ElementType: elemType, Elements: elements}, nil
}

func (d *Decoder) readCompound() (Compound, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	out := make(Compound)
	for {
		id, err := d.getByte()
		if err != nil {
			return nil, fmt.Errorf("nbt: read compound entry id: %w", err)
		}
		if id == IDEnd {
			return out, nil
		}
		name, err := d.getString()
		if err != nil {
			return nil, fmt.Errorf("nbt: read compound entry name: %w", err)
		}
		tag, err := d.readPayload(id)
		if err != nil {
			return nil, fmt.Errorf("nbt: read compound entry %q: %w", name, err)
		}
		out[name] = tag
	}
}

func (d *Decoder) readIntArray() (IntArray, error) {
	n, err := d.getInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("nbt: int array length %d is negative", n)
	}
	out := make(IntArray, n)
	for i := range out {
		if out[i], err = d.getInt32(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *Decoder) readLongArray() (LongArray, error) {
	n, err := d.getInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("nbt: long array length %d is negative", n)
	}
	out := make(LongArray, n)
	for i := range out {
		if out[i], err = d.getInt64(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *Decoder) getRaw(p []byte) error {
	if err := d.account(int64(len(p))); err != nil {
		return err
	}
	_, err := io.ReadFull(d.src, p)
	return err
}

func (d *Decoder) getByte() (byte, error) {
	var buf [1]byte
	if err := d.getRaw(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Decoder) getInt16() (int16, error) {
	var buf [2]byte
	if err := d.getRaw(buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func (d *Decoder) getInt32() (int32, error) {
	var buf [4]byte
	if err := d.getRaw(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (d *Decoder) getInt64() (int64, error) {
	var buf [8]byte
	if err := d.getRaw(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (d *Decoder) getFloat32() (float32, error) {
	v, err := d.getInt32()
	return math.Float32frombits(uint32(v)), err
}

func (d *Decoder) getFloat64() (float64, error) {
	v, err := d.getInt64()
	return math.Float64frombits(uint64(v)), err
}

// getString reads a 2-byte length prefix followed by that many bytes.
func (d *Decoder) getString() (string, error) {
	n, err := d.getInt16()
	if err != nil {
		return "", err
	}
	data := make([]byte, uint16(n))
	if err := d.getRaw(data); err != nil {
		return "", err
	}
	return string(data), nil
}

func (d *Decoder) enter() error {
	d.depth++
	if d.depthCap > 0 && d.depth > d.depthCap {
		return &DepthExceededError{Limit: d.depthCap}
	}
	return nil
}

func (d *Decoder) leave() { d.depth-- }

func (d *Decoder) account(n int64) error {
	d.consumed += n
	if d.sizeCap > 0 && d.consumed > d.sizeCap {
		return &SizeExceededError{Limit: d.sizeCap}
	}
	return nil
}

// Decode parses a tag from data. If data starts with the gzip magic
// number, it is transparently decompressed first — this lets a caller
// hand Decode a raw chunk or level-data blob without checking for gzip
// itself.
func Decode(data []byte, network bool, opts ...ReaderOption) (Tag, string, error) {
	data, err := gunzipIfNeeded(data)
	if err != nil {
		return nil, "", err
	}
	return NewReader(data, opts...).ReadTag(network)
}

func gunzipIfNeeded(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0x1F || data[1] != 0x8B {
		return data, nil
	}
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("nbt: gzip header: %w", err)
	}
	defer gr.Close()
	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("nbt: gzip decompress: %w", err)
	}
	return out, nil
}

// DecodeNetwork parses data in network format (nameless root) — the
// form every packet on the wire uses.
func DecodeNetwork(data []byte, opts ...ReaderOption) (Tag, error) {
	tag, _, err := Decode(data, true, opts...)
	return tag, err
}

// DecodeFile parses data in file format, returning the root's name
// alongside its tag.
func DecodeFile(data []byte, opts ...ReaderOption) (Tag, string, error) {
	return Decode(data, false, opts...)
}
