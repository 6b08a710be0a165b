package buffer

// Direction is a 6-way axis direction, wire-encoded as a varint enum.
type Direction int32

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionNorth
	DirectionSouth
	DirectionWest
	DirectionEast
)

func (b *Buffer) WriteDirection(d Direction) error {
	return b.WriteVarInt(int64(d), 32)
}

func (b *Buffer) ReadDirection() (Direction, error) {
	v, err := b.ReadVarInt(32)
	return Direction(v), err
}

// Pose is an entity pose, wire-encoded as a varint enum (0-6).
type Pose int32

const (
	PoseStanding Pose = iota
	PoseFallFlying
	PoseSleeping
	PoseSwimming
	PoseSpinAttack
	PoseSneaking
	PoseDying
)

func (b *Buffer) WritePose(p Pose) error {
	return b.WriteVarInt(int64(p), 32)
}

func (b *Buffer) ReadPose() (Pose, error) {
	v, err := b.ReadVarInt(32)
	return Pose(v), err
}

// Rotation is a 3-axis rotation, each axis a big-endian float32.
type Rotation struct {
	X, Y, Z float32
}

func (b *Buffer) WriteRotation(r Rotation) error {
	if err := b.WriteFloat32(r.X); err != nil {
		return err
	}
	if err := b.WriteFloat32(r.Y); err != nil {
		return err
	}
	return b.WriteFloat32(r.Z)
}

func (b *Buffer) ReadRotation() (Rotation, error) {
	var r Rotation
	var err error
	if r.X, err = b.ReadFloat32(); err != nil {
		return Rotation{}, err
	}
	if r.Y, err = b.ReadFloat32(); err != nil {
		return Rotation{}, err
	}
	if r.Z, err = b.ReadFloat32(); err != nil {
		return Rotation{}, err
	}
	return r, nil
}
