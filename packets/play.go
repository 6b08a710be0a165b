package packets

import (
	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/packet"
)

// KeepAliveClientbound is clientbound/play id 0x21: a server-chosen opaque
// id the client must echo back via KeepAliveServerbound within the
// timeout window or be disconnected.
type KeepAliveClientbound struct {
	KeepAliveID int64
}

func (*KeepAliveClientbound) ID() int32                   { return 0x21 }
func (*KeepAliveClientbound) State() packet.State         { return packet.StatePlay }
func (*KeepAliveClientbound) Direction() packet.Direction { return packet.Clientbound }

func (p *KeepAliveClientbound) Pack(b *buffer.Buffer) error { return b.WriteInt64(p.KeepAliveID) }
func (p *KeepAliveClientbound) Unpack(b *buffer.Buffer) error {
	v, err := b.ReadInt64()
	p.KeepAliveID = v
	return err
}

// KeepAliveServerbound is serverbound/play id 0x0F: the client's echo of a
// KeepAliveClientbound id.
type KeepAliveServerbound struct {
	KeepAliveID int64
}

func (*KeepAliveServerbound) ID() int32                   { return 0x0F }
func (*KeepAliveServerbound) State() packet.State         { return packet.StatePlay }
func (*KeepAliveServerbound) Direction() packet.Direction { return packet.Serverbound }

func (p *KeepAliveServerbound) Pack(b *buffer.Buffer) error { return b.WriteInt64(p.KeepAliveID) }
func (p *KeepAliveServerbound) Unpack(b *buffer.Buffer) error {
	v, err := b.ReadInt64()
	p.KeepAliveID = v
	return err
}

// SetEntityMetadata is clientbound/play id 0x4D: a varint entity id
// followed by the entity's changed metadata entries.
type SetEntityMetadata struct {
	EntityID int32
	Metadata []buffer.MetadataEntry
}

func (*SetEntityMetadata) ID() int32                   { return 0x4D }
func (*SetEntityMetadata) State() packet.State         { return packet.StatePlay }
func (*SetEntityMetadata) Direction() packet.Direction { return packet.Clientbound }

func (p *SetEntityMetadata) Pack(b *buffer.Buffer) error {
	if err := b.WriteVarInt(int64(p.EntityID), 32); err != nil {
		return err
	}
	return b.WriteEntityMetadata(p.Metadata)
}

func (p *SetEntityMetadata) Unpack(b *buffer.Buffer) error {
	id, err := b.ReadVarInt(32)
	if err != nil {
		return err
	}
	p.EntityID = id
	p.Metadata, err = b.ReadEntityMetadata()
	return err
}

// SetContainerSlot is clientbound/play id 0x17: overwrites a single slot in
// an open window. WindowID -1 with SlotIndex -1 addresses the cursor item.
// Field shape (window id byte, state id varint, slot index short, slot)
// follows the window-click slot encoding used by CreativeInventoryAction.
type SetContainerSlot struct {
	WindowID  int8
	StateID   int32
	SlotIndex int16
	Slot      buffer.Slot
}

func (*SetContainerSlot) ID() int32                   { return 0x17 }
func (*SetContainerSlot) State() packet.State         { return packet.StatePlay }
func (*SetContainerSlot) Direction() packet.Direction { return packet.Clientbound }

func (p *SetContainerSlot) Pack(b *buffer.Buffer) error {
	if err := b.WriteInt8(p.WindowID); err != nil {
		return err
	}
	if err := b.WriteVarInt(int64(p.StateID), 32); err != nil {
		return err
	}
	if err := b.WriteInt16(p.SlotIndex); err != nil {
		return err
	}
	return b.WriteSlot(p.Slot)
}

func (p *SetContainerSlot) Unpack(b *buffer.Buffer) error {
	var err error
	if p.WindowID, err = b.ReadInt8(); err != nil {
		return err
	}
	stateID, err := b.ReadVarInt(32)
	if err != nil {
		return err
	}
	p.StateID = stateID
	if p.SlotIndex, err = b.ReadInt16(); err != nil {
		return err
	}
	p.Slot, err = b.ReadSlot()
	return err
}

// LevelParticles is clientbound/play id 0x24: spawns one or more particles
// at a position, with an optional randomized offset and count.
type LevelParticles struct {
	Particle      buffer.Particle
	LongDistance  bool
	X, Y, Z       float64
	OffsetX       float32
	OffsetY       float32
	OffsetZ       float32
	ParticleData  float32
	ParticleCount int32
}

func (*LevelParticles) ID() int32                   { return 0x24 }
func (*LevelParticles) State() packet.State         { return packet.StatePlay }
func (*LevelParticles) Direction() packet.Direction { return packet.Clientbound }

func (p *LevelParticles) Pack(b *buffer.Buffer) error {
	if err := b.WriteParticle(p.Particle); err != nil {
		return err
	}
	if err := b.WriteBool(p.LongDistance); err != nil {
		return err
	}
	if err := b.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := b.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := b.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := b.WriteFloat32(p.OffsetX); err != nil {
		return err
	}
	if err := b.WriteFloat32(p.OffsetY); err != nil {
		return err
	}
	if err := b.WriteFloat32(p.OffsetZ); err != nil {
		return err
	}
	if err := b.WriteFloat32(p.ParticleData); err != nil {
		return err
	}
	return b.WriteVarInt(int64(p.ParticleCount), 32)
}

func (p *LevelParticles) Unpack(b *buffer.Buffer) error {
	particle, err := b.ReadParticle()
	if err != nil {
		return err
	}
	p.Particle = particle

	if p.LongDistance, err = b.ReadBool(); err != nil {
		return err
	}
	if p.X, err = b.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = b.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = b.ReadFloat64(); err != nil {
		return err
	}
	if p.OffsetX, err = b.ReadFloat32(); err != nil {
		return err
	}
	if p.OffsetY, err = b.ReadFloat32(); err != nil {
		return err
	}
	if p.OffsetZ, err = b.ReadFloat32(); err != nil {
		return err
	}
	if p.ParticleData, err = b.ReadFloat32(); err != nil {
		return err
	}
	count, err := b.ReadVarInt(32)
	if err != nil {
		return err
	}
	p.ParticleCount = count
	return nil
}

// Commands is clientbound/play id 0x12: the full command-graph tree the
// client uses to offer tab-completion, plus the index of its root node.
type Commands struct {
	Nodes     []buffer.Node
	RootIndex int32
}

func (*Commands) ID() int32                   { return 0x12 }
func (*Commands) State() packet.State         { return packet.StatePlay }
func (*Commands) Direction() packet.Direction { return packet.Clientbound }

func (p *Commands) Pack(b *buffer.Buffer) error {
	if err := b.WriteVarInt(int64(len(p.Nodes)), 32); err != nil {
		return err
	}
	for _, n := range p.Nodes {
		if err := b.WriteNode(n); err != nil {
			return err
		}
	}
	return b.WriteVarInt(int64(p.RootIndex), 32)
}

func (p *Commands) Unpack(b *buffer.Buffer) error {
	count, err := b.ReadVarInt(32)
	if err != nil {
		return err
	}
	nodes := make([]buffer.Node, count)
	for i := range nodes {
		n, err := b.ReadNode()
		if err != nil {
			return err
		}
		nodes[i] = n
	}
	p.Nodes = nodes

	root, err := b.ReadVarInt(32)
	if err != nil {
		return err
	}
	p.RootIndex = root
	return nil
}

// DeclareRecipes is clientbound/play id 0x66: every recipe registered on
// the server, sent once so the client can populate its recipe book.
type DeclareRecipes struct {
	Recipes []buffer.Recipe
}

func (*DeclareRecipes) ID() int32                   { return 0x66 }
func (*DeclareRecipes) State() packet.State         { return packet.StatePlay }
func (*DeclareRecipes) Direction() packet.Direction { return packet.Clientbound }

func (p *DeclareRecipes) Pack(b *buffer.Buffer) error {
	if err := b.WriteVarInt(int64(len(p.Recipes)), 32); err != nil {
		return err
	}
	for _, r := range p.Recipes {
		if err := b.WriteRecipe(r); err != nil {
			return err
		}
	}
	return nil
}

func (p *DeclareRecipes) Unpack(b *buffer.Buffer) error {
	count, err := b.ReadVarInt(32)
	if err != nil {
		return err
	}
	recipes := make([]buffer.Recipe, count)
	for i := range recipes {
		r, err := b.ReadRecipe()
		if err != nil {
			return err
		}
		recipes[i] = r
	}
	p.Recipes = recipes
	return nil
}
