// Package packets holds the concrete packet variants wired into the
// registry: one file per protocol state, named after the vanilla packet
// names from the Minecraft protocol wiki.
package packets

import (
	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/packet"
)

// NextState is the Handshake packet's target state selector.
type NextState int32

const (
	NextStatus NextState = 1
	NextLogin  NextState = 2
)

// Handshake is serverbound/handshaking id 0x00, the only packet ever sent
// in the HANDSHAKING state. Its NextState field deterministically selects
// STATUS or LOGIN for both peers.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       NextState
}

func (*Handshake) ID() int32                   { return 0x00 }
func (*Handshake) State() packet.State         { return packet.StateHandshaking }
func (*Handshake) Direction() packet.Direction { return packet.Serverbound }

func (p *Handshake) Pack(b *buffer.Buffer) error {
	if err := b.WriteVarInt(int64(p.ProtocolVersion), 32); err != nil {
		return err
	}
	if err := b.WriteString(p.ServerAddress); err != nil {
		return err
	}
	if err := b.WriteUint16(p.ServerPort); err != nil {
		return err
	}
	return b.WriteVarInt(int64(p.NextState), 32)
}

func (p *Handshake) Unpack(b *buffer.Buffer) error {
	v, err := b.ReadVarInt(32)
	if err != nil {
		return err
	}
	p.ProtocolVersion = v

	if p.ServerAddress, err = b.ReadString(); err != nil {
		return err
	}
	if p.ServerPort, err = b.ReadUint16(); err != nil {
		return err
	}
	next, err := b.ReadVarInt(32)
	if err != nil {
		return err
	}
	p.NextState = NextState(next)
	return nil
}
