// Package packet defines the base contract every packet variant implements:
// a compile-time id, a protocol state and direction, and split pack/unpack
// capability so a clientbound-only variant never needs an Unpack method and
// a serverbound-only variant never needs a Pack method.
package packet

import (
	"fmt"

	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/protoerr"
)

// State is the protocol phase a packet belongs to. Unlike later protocol
// versions, 757 (1.18.1) has no CONFIGURATION state between LOGIN and PLAY.
type State uint8

const (
	StateHandshaking State = iota
	StateStatus
	StateLogin
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshaking:
		return "handshaking"
	case StateStatus:
		return "status"
	case StateLogin:
		return "login"
	case StatePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Direction is the travel direction of a packet.
type Direction = protoerr.Direction

const (
	Serverbound = protoerr.Serverbound
	Clientbound = protoerr.Clientbound
)

// Packet is the capability every registered variant has unconditionally:
// a stable identity (id, state, direction) independent of whether it can
// be packed, unpacked, or both.
type Packet interface {
	ID() int32
	State() State
	Direction() Direction
}

// Encodable is implemented by packet variants that can serialize
// themselves to their post-id wire payload. Clientbound variants must
// implement this; serverbound variants implement it only when the library
// is driven from the server side to synthesize outbound requests.
type Encodable interface {
	Packet
	Pack(b *buffer.Buffer) error
}

// Decodable is implemented by packet variants that can deserialize their
// post-id wire payload. Serverbound variants must implement this;
// clientbound variants implement it only for client-side decode or tests.
type Decodable interface {
	Packet
	Unpack(b *buffer.Buffer) error
}

// Pack invokes p.Pack if p implements Encodable, otherwise reports
// OperationNotSupported for the variant's type name.
func Pack(p Packet, b *buffer.Buffer) error {
	enc, ok := p.(Encodable)
	if !ok {
		return &protoerr.OperationNotSupportedError{Operation: "pack", Packet: typeName(p)}
	}
	return enc.Pack(b)
}

// Unpack invokes p.Unpack if p implements Decodable, otherwise reports
// OperationNotSupported for the variant's type name.
func Unpack(p Packet, b *buffer.Buffer) error {
	dec, ok := p.(Decodable)
	if !ok {
		return &protoerr.OperationNotSupportedError{Operation: "unpack", Packet: typeName(p)}
	}
	return dec.Unpack(b)
}

func typeName(p Packet) string {
	type named interface{ PacketName() string }
	if n, ok := p.(named); ok {
		return n.PacketName()
	}
	return fmt.Sprintf("%T", p)
}
