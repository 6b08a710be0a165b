package buffer

import (
	"fmt"

	"github.com/go-mcproto/corejava/nbt"
	"github.com/go-mcproto/corejava/protoerr"
)

// MetadataType is the varint type tag preceding each entity-metadata entry's
// payload; it selects which of the fixed shapes below follows.
type MetadataType int32

const (
	MetaByte        MetadataType = 0
	MetaVarInt      MetadataType = 1
	MetaFloat       MetadataType = 2
	MetaString      MetadataType = 3
	MetaChat        MetadataType = 4
	MetaOptChat     MetadataType = 5
	MetaSlot        MetadataType = 6
	MetaBoolean     MetadataType = 7
	MetaRotation    MetadataType = 8
	MetaPosition    MetadataType = 9
	MetaOptPosition MetadataType = 10
	MetaDirection   MetadataType = 11
	MetaOptUUID     MetadataType = 12
	MetaBlockState  MetadataType = 13
	MetaNBT         MetadataType = 14
	MetaParticle    MetadataType = 15
	MetaVillager    MetadataType = 16
	MetaOptVarInt   MetadataType = 17
	MetaPose        MetadataType = 18
)

// metadataEnd is the sentinel index byte that terminates an entity-metadata
// sequence; no entry may legitimately use it as an index.
const metadataEnd = 0xFE

// MetadataEntry is one (index, type, value) triple in an entity-metadata
// sequence. Value holds the Go-native form appropriate to Type; callers
// type-assert it after reading, keyed on Type.
type MetadataEntry struct {
	Index uint8
	Type  MetadataType
	Value any
}

// WriteEntityMetadata writes a sequence of metadata entries terminated by
// the 0xFE sentinel.
func (b *Buffer) WriteEntityMetadata(entries []MetadataEntry) error {
	for _, e := range entries {
		if err := b.WriteUint8(e.Index); err != nil {
			return err
		}
		if err := b.WriteVarInt(int64(e.Type), 32); err != nil {
			return err
		}
		if err := b.writeMetadataValue(e.Type, e.Value); err != nil {
			return err
		}
	}
	return b.WriteUint8(metadataEnd)
}

// ReadEntityMetadata reads entries until the 0xFE sentinel index is seen.
func (b *Buffer) ReadEntityMetadata() ([]MetadataEntry, error) {
	var entries []MetadataEntry
	for {
		index, err := b.ReadUint8()
		if err != nil {
			return nil, err
		}
		if index == metadataEnd {
			return entries, nil
		}

		typ, err := b.ReadVarInt(32)
		if err != nil {
			return nil, err
		}

		value, err := b.readMetadataValue(MetadataType(typ))
		if err != nil {
			return nil, err
		}

		entries = append(entries, MetadataEntry{Index: index, Type: MetadataType(typ), Value: value})
	}
}

func (b *Buffer) writeMetadataValue(t MetadataType, v any) error {
	switch t {
	case MetaByte:
		return b.WriteInt8(v.(int8))
	case MetaVarInt:
		return b.WriteVarInt(int64(v.(int32)), 32)
	case MetaFloat:
		return b.WriteFloat32(v.(float32))
	case MetaString:
		return b.WriteString(v.(string))
	case MetaChat:
		return b.WriteChat(v.(Chat))
	case MetaOptChat:
		c, ok := v.(*Chat)
		if !ok || c == nil {
			return b.WriteBool(false)
		}
		if err := b.WriteBool(true); err != nil {
			return err
		}
		return b.WriteChat(*c)
	case MetaSlot:
		return b.WriteSlot(v.(Slot))
	case MetaBoolean:
		return b.WriteBool(v.(bool))
	case MetaRotation:
		return b.WriteRotation(v.(Rotation))
	case MetaPosition:
		return b.WritePosition(v.(Position))
	case MetaOptPosition:
		p, ok := v.(*Position)
		if !ok || p == nil {
			return b.WriteBool(false)
		}
		if err := b.WriteBool(true); err != nil {
			return err
		}
		return b.WritePosition(*p)
	case MetaDirection:
		return b.WriteDirection(v.(Direction))
	case MetaOptUUID:
		u, ok := v.(*UUID)
		if !ok || u == nil {
			return b.WriteBool(false)
		}
		if err := b.WriteBool(true); err != nil {
			return err
		}
		return b.WriteUUID(*u)
	case MetaBlockState:
		return b.WriteVarInt(int64(v.(int32)), 32)
	case MetaNBT:
		tag, _ := v.(nbt.Tag)
		return b.WriteNBT(tag)
	case MetaParticle:
		return b.WriteParticle(v.(Particle))
	case MetaVillager:
		return b.WriteVillager(v.(Villager))
	case MetaOptVarInt:
		x, _ := v.(*int32)
		return b.WriteOptionalVarInt(x)
	case MetaPose:
		return b.WritePose(v.(Pose))
	default:
		return protoerr.NewCorrupt("entity metadata", fmt.Errorf("unknown metadata type %d", t))
	}
}

func (b *Buffer) readMetadataValue(t MetadataType) (any, error) {
	switch t {
	case MetaByte:
		return b.ReadInt8()
	case MetaVarInt:
		v, err := b.ReadVarInt(32)
		return int32(v), err
	case MetaFloat:
		return b.ReadFloat32()
	case MetaString:
		return b.ReadString()
	case MetaChat:
		return b.ReadChat()
	case MetaOptChat:
		present, err := b.ReadBool()
		if err != nil || !present {
			return (*Chat)(nil), err
		}
		c, err := b.ReadChat()
		return &c, err
	case MetaSlot:
		return b.ReadSlot()
	case MetaBoolean:
		return b.ReadBool()
	case MetaRotation:
		return b.ReadRotation()
	case MetaPosition:
		return b.ReadPosition()
	case MetaOptPosition:
		present, err := b.ReadBool()
		if err != nil || !present {
			return (*Position)(nil), err
		}
		p, err := b.ReadPosition()
		return &p, err
	case MetaDirection:
		return b.ReadDirection()
	case MetaOptUUID:
		present, err := b.ReadBool()
		if err != nil || !present {
			return (*UUID)(nil), err
		}
		u, err := b.ReadUUID()
		return &u, err
	case MetaBlockState:
		v, err := b.ReadVarInt(32)
		return int32(v), err
	case MetaNBT:
		return b.ReadNBT()
	case MetaParticle:
		return b.ReadParticle()
	case MetaVillager:
		return b.ReadVillager()
	case MetaOptVarInt:
		return b.ReadOptionalVarInt()
	case MetaPose:
		return b.ReadPose()
	default:
		return nil, protoerr.NewCorrupt("entity metadata", fmt.Errorf("unknown metadata type %d", t))
	}
}
