package buffer

import (
	"encoding/binary"
	"math"
)

// Fixed-width primitive Read*/Write* pairs. All multi-byte integers are
// big-endian, matching every other Minecraft wire value.

func (b *Buffer) WriteBool(v bool) error {
	if v {
		return b.WriteByte(1)
	}
	return b.WriteByte(0)
}

func (b *Buffer) ReadBool() (bool, error) {
	c, err := b.ReadByte()
	return c != 0, err
}

func (b *Buffer) WriteInt8(v int8) error { return b.WriteByte(byte(v)) }

func (b *Buffer) ReadInt8() (int8, error) {
	c, err := b.ReadByte()
	return int8(c), err
}

func (b *Buffer) WriteUint8(v uint8) error { return b.WriteByte(v) }

func (b *Buffer) ReadUint8() (uint8, error) { return b.ReadByte() }

func (b *Buffer) WriteUint16(v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	b.WriteBytes(buf[:])
	return nil
}

func (b *Buffer) ReadUint16() (uint16, error) {
	raw, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(raw), nil
}

func (b *Buffer) WriteInt16(v int16) error { return b.WriteUint16(uint16(v)) }

func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

func (b *Buffer) WriteUint32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	b.WriteBytes(buf[:])
	return nil
}

func (b *Buffer) ReadUint32() (uint32, error) {
	raw, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(raw), nil
}

func (b *Buffer) WriteInt32(v int32) error { return b.WriteUint32(uint32(v)) }

func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

func (b *Buffer) WriteInt64(v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	b.WriteBytes(buf[:])
	return nil
}

func (b *Buffer) ReadInt64() (int64, error) {
	raw, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

func (b *Buffer) WriteUint64(v uint64) error { return b.WriteInt64(int64(v)) }

func (b *Buffer) ReadUint64() (uint64, error) {
	v, err := b.ReadInt64()
	return uint64(v), err
}

func (b *Buffer) WriteFloat32(v float32) error {
	return b.WriteUint32(math.Float32bits(v))
}

func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (b *Buffer) WriteFloat64(v float64) error {
	return b.WriteInt64(int64(math.Float64bits(v)))
}

func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadInt64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// WriteByteArray writes a VarInt-length-prefixed byte array.
func (b *Buffer) WriteByteArray(v []byte) error {
	if err := b.WriteVarInt(int64(len(v)), 32); err != nil {
		return err
	}
	b.WriteBytes(v)
	return nil
}

// ReadByteArray reads a VarInt-length-prefixed byte array.
func (b *Buffer) ReadByteArray() ([]byte, error) {
	n, err := b.ReadVarInt(32)
	if err != nil {
		return nil, err
	}
	return b.ReadBytes(int(n))
}
