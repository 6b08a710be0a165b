package packets

import (
	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/packet"
)

// StatusRequest is serverbound/status id 0x00. It has no fields — sending
// it is itself the request.
type StatusRequest struct{}

func (*StatusRequest) ID() int32                   { return 0x00 }
func (*StatusRequest) State() packet.State         { return packet.StateStatus }
func (*StatusRequest) Direction() packet.Direction { return packet.Serverbound }
func (*StatusRequest) Pack(b *buffer.Buffer) error { return nil }
func (*StatusRequest) Unpack(b *buffer.Buffer) error { return nil }

// StatusResponse is clientbound/status id 0x00: a JSON server-list-ping
// document (version, players, description, favicon).
type StatusResponse struct {
	JSON string
}

func (*StatusResponse) ID() int32                   { return 0x00 }
func (*StatusResponse) State() packet.State         { return packet.StateStatus }
func (*StatusResponse) Direction() packet.Direction { return packet.Clientbound }

func (p *StatusResponse) Pack(b *buffer.Buffer) error   { return b.WriteString(p.JSON) }
func (p *StatusResponse) Unpack(b *buffer.Buffer) error {
	s, err := b.ReadString()
	p.JSON = s
	return err
}

// PingRequest is serverbound/status id 0x01: an opaque timestamp echoed
// back unchanged by PongResponse.
type PingRequest struct {
	Payload int64
}

func (*PingRequest) ID() int32                   { return 0x01 }
func (*PingRequest) State() packet.State         { return packet.StateStatus }
func (*PingRequest) Direction() packet.Direction { return packet.Serverbound }

func (p *PingRequest) Pack(b *buffer.Buffer) error   { return b.WriteInt64(p.Payload) }
func (p *PingRequest) Unpack(b *buffer.Buffer) error {
	v, err := b.ReadInt64()
	p.Payload = v
	return err
}

// PongResponse is clientbound/status id 0x01.
type PongResponse struct {
	Payload int64
}

func (*PongResponse) ID() int32                   { return 0x01 }
func (*PongResponse) State() packet.State         { return packet.StateStatus }
func (*PongResponse) Direction() packet.Direction { return packet.Clientbound }

func (p *PongResponse) Pack(b *buffer.Buffer) error   { return b.WriteInt64(p.Payload) }
func (p *PongResponse) Unpack(b *buffer.Buffer) error {
	v, err := b.ReadInt64()
	p.Payload = v
	return err
}
