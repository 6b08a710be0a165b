package packets

import (
	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/packet"
)

// LoginStart is serverbound/login id 0x00: the player's chosen username.
type LoginStart struct {
	Name string
}

func (*LoginStart) ID() int32                   { return 0x00 }
func (*LoginStart) State() packet.State         { return packet.StateLogin }
func (*LoginStart) Direction() packet.Direction { return packet.Serverbound }

func (p *LoginStart) Pack(b *buffer.Buffer) error { return b.WriteString(p.Name) }
func (p *LoginStart) Unpack(b *buffer.Buffer) error {
	s, err := b.ReadString()
	p.Name = s
	return err
}

// EncryptionRequest is clientbound/login id 0x01. It carries the server's
// RSA-encoded public key and a verify token the client must echo back
// encrypted, per the protocol's encryption handshake.
type EncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func (*EncryptionRequest) ID() int32                   { return 0x01 }
func (*EncryptionRequest) State() packet.State         { return packet.StateLogin }
func (*EncryptionRequest) Direction() packet.Direction { return packet.Clientbound }

func (p *EncryptionRequest) Pack(b *buffer.Buffer) error {
	if err := b.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := b.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	return b.WriteByteArray(p.VerifyToken)
}

func (p *EncryptionRequest) Unpack(b *buffer.Buffer) error {
	var err error
	if p.ServerID, err = b.ReadString(); err != nil {
		return err
	}
	if p.PublicKey, err = b.ReadByteArray(); err != nil {
		return err
	}
	p.VerifyToken, err = b.ReadByteArray()
	return err
}

// EncryptionResponse is serverbound/login id 0x01: the client's reply to
// EncryptionRequest, both fields RSA-encrypted with the server's public key.
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (*EncryptionResponse) ID() int32                   { return 0x01 }
func (*EncryptionResponse) State() packet.State         { return packet.StateLogin }
func (*EncryptionResponse) Direction() packet.Direction { return packet.Serverbound }

func (p *EncryptionResponse) Pack(b *buffer.Buffer) error {
	if err := b.WriteByteArray(p.SharedSecret); err != nil {
		return err
	}
	return b.WriteByteArray(p.VerifyToken)
}

func (p *EncryptionResponse) Unpack(b *buffer.Buffer) error {
	var err error
	if p.SharedSecret, err = b.ReadByteArray(); err != nil {
		return err
	}
	p.VerifyToken, err = b.ReadByteArray()
	return err
}

// LoginSuccess is clientbound/login id 0x02. Receiving it transitions the
// connection to PLAY.
type LoginSuccess struct {
	UUID     buffer.UUID
	Username string
}

func (*LoginSuccess) ID() int32                   { return 0x02 }
func (*LoginSuccess) State() packet.State         { return packet.StateLogin }
func (*LoginSuccess) Direction() packet.Direction { return packet.Clientbound }

func (p *LoginSuccess) Pack(b *buffer.Buffer) error {
	if err := b.WriteUUID(p.UUID); err != nil {
		return err
	}
	return b.WriteString(p.Username)
}

func (p *LoginSuccess) Unpack(b *buffer.Buffer) error {
	var err error
	if p.UUID, err = b.ReadUUID(); err != nil {
		return err
	}
	p.Username, err = b.ReadString()
	return err
}

// LoginDisconnect is clientbound/login id 0x00: a chat-component reason
// for refusing the connection. Receiving it terminates the connection.
type LoginDisconnect struct {
	Reason buffer.Chat
}

func (*LoginDisconnect) ID() int32                   { return 0x00 }
func (*LoginDisconnect) State() packet.State         { return packet.StateLogin }
func (*LoginDisconnect) Direction() packet.Direction { return packet.Clientbound }

func (p *LoginDisconnect) Pack(b *buffer.Buffer) error { return b.WriteChat(p.Reason) }
func (p *LoginDisconnect) Unpack(b *buffer.Buffer) error {
	c, err := b.ReadChat()
	p.Reason = c
	return err
}

// LoginSetCompression is clientbound/login id 0x03. Its Threshold field
// sets the endpoint's compression threshold for all subsequent frames in
// both directions; -1 disables compression.
type LoginSetCompression struct {
	Threshold int32
}

func (*LoginSetCompression) ID() int32                   { return 0x03 }
func (*LoginSetCompression) State() packet.State         { return packet.StateLogin }
func (*LoginSetCompression) Direction() packet.Direction { return packet.Clientbound }

func (p *LoginSetCompression) Pack(b *buffer.Buffer) error {
	return b.WriteVarInt(int64(p.Threshold), 32)
}

func (p *LoginSetCompression) Unpack(b *buffer.Buffer) error {
	v, err := b.ReadVarInt(32)
	p.Threshold = v
	return err
}
