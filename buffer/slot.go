package buffer

import "github.com/go-mcproto/corejava/nbt"

// Slot is an inventory item descriptor: optional item id + count + NBT tag.
// An empty slot (Present == false) has no further fields on the wire.
type Slot struct {
	Present bool
	ItemID  int32
	Count   int8
	Tag     nbt.Tag
}

// EmptySlot is the canonical absent-item slot.
var EmptySlot = Slot{}

func (b *Buffer) WriteSlot(s Slot) error {
	if err := b.WriteBool(s.Present); err != nil {
		return err
	}
	if !s.Present {
		return nil
	}
	if err := b.WriteVarInt(int64(s.ItemID), 32); err != nil {
		return err
	}
	if err := b.WriteInt8(s.Count); err != nil {
		return err
	}
	return b.WriteNBT(s.Tag)
}

func (b *Buffer) ReadSlot() (Slot, error) {
	present, err := b.ReadBool()
	if err != nil {
		return Slot{}, err
	}
	if !present {
		return Slot{}, nil
	}

	itemID, err := b.ReadVarInt(32)
	if err != nil {
		return Slot{}, err
	}
	count, err := b.ReadInt8()
	if err != nil {
		return Slot{}, err
	}

	tag, err := b.ReadNBT()
	if err != nil {
		return Slot{}, err
	}

	return Slot{Present: true, ItemID: int32(itemID), Count: count, Tag: tag}, nil
}
