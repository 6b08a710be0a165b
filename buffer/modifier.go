package buffer

// ModifierOperation is the combine rule for an attribute modifier.
type ModifierOperation int8

const (
	ModifierAdd             ModifierOperation = 0 // MODIFY
	ModifierAddPercent      ModifierOperation = 1 // MODIFY_PERCENT
	ModifierMultiplyPercent ModifierOperation = 2 // MODIFY_MULTIPLY_PERCENT
)

// Modifier is an attribute modifier: a unique id, an amount, and how that
// amount combines with the base attribute value.
type Modifier struct {
	UUID      UUID
	Amount    float32
	Operation ModifierOperation
}

func (b *Buffer) WriteModifier(m Modifier) error {
	if err := b.WriteUUID(m.UUID); err != nil {
		return err
	}
	if err := b.WriteFloat32(m.Amount); err != nil {
		return err
	}
	return b.WriteInt8(int8(m.Operation))
}

func (b *Buffer) ReadModifier() (Modifier, error) {
	uuid, err := b.ReadUUID()
	if err != nil {
		return Modifier{}, err
	}
	amount, err := b.ReadFloat32()
	if err != nil {
		return Modifier{}, err
	}
	op, err := b.ReadInt8()
	if err != nil {
		return Modifier{}, err
	}
	return Modifier{UUID: uuid, Amount: amount, Operation: ModifierOperation(op)}, nil
}
