package buffer

// Particle ids whose payload carries extra data beyond the bare id.
// All other ids have no extra payload.
const (
	ParticleBlock       int32 = 3
	ParticleFallingDust int32 = 23
	ParticleDust        int32 = 14
	ParticleItem        int32 = 32
)

// Particle is a varint id plus an id-dependent extra payload.
type Particle struct {
	ID int32

	// BlockState is set for ParticleBlock and ParticleFallingDust.
	BlockState int32

	// DustColorAndScale is set for ParticleDust: red, green, blue, scale.
	DustColorAndScale [4]float32

	// Item is set for ParticleItem.
	Item Slot
}

func (b *Buffer) WriteParticle(p Particle) error {
	if err := b.WriteVarInt(int64(p.ID), 32); err != nil {
		return err
	}
	switch p.ID {
	case ParticleBlock, ParticleFallingDust:
		return b.WriteVarInt(int64(p.BlockState), 32)
	case ParticleDust:
		for _, f := range p.DustColorAndScale {
			if err := b.WriteFloat32(f); err != nil {
				return err
			}
		}
		return nil
	case ParticleItem:
		return b.WriteSlot(p.Item)
	default:
		return nil
	}
}

func (b *Buffer) ReadParticle() (Particle, error) {
	id, err := b.ReadVarInt(32)
	if err != nil {
		return Particle{}, err
	}
	p := Particle{ID: int32(id)}

	switch p.ID {
	case ParticleBlock, ParticleFallingDust:
		state, err := b.ReadVarInt(32)
		if err != nil {
			return Particle{}, err
		}
		p.BlockState = int32(state)

	case ParticleDust:
		for i := range p.DustColorAndScale {
			f, err := b.ReadFloat32()
			if err != nil {
				return Particle{}, err
			}
			p.DustColorAndScale[i] = f
		}

	case ParticleItem:
		slot, err := b.ReadSlot()
		if err != nil {
			return Particle{}, err
		}
		p.Item = slot
	}

	return p, nil
}
