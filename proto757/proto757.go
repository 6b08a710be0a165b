// Package proto757 wires the concrete packet variants in packets/ into a
// registry.PacketMap for protocol 757 (Minecraft 1.18.1), the one the
// library actually implements.
package proto757

import (
	"github.com/go-mcproto/corejava/mcversion"
	"github.com/go-mcproto/corejava/packet"
	"github.com/go-mcproto/corejava/packets"
	"github.com/go-mcproto/corejava/registry"
)

// NewPacketMap builds the registry for protocol 757. checkDuplicates
// should be true once in a test at process startup and can be left false
// for the hot construction path.
func NewPacketMap(checkDuplicates bool) (*registry.PacketMap, error) {
	byState := map[packet.State][]registry.Variant{
		packet.StateHandshaking: {
			{ID: 0x00, Direction: packet.Serverbound, New: func() packet.Packet { return &packets.Handshake{} }},
		},
		packet.StateStatus: {
			{ID: 0x00, Direction: packet.Serverbound, New: func() packet.Packet { return &packets.StatusRequest{} }},
			{ID: 0x00, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.StatusResponse{} }},
			{ID: 0x01, Direction: packet.Serverbound, New: func() packet.Packet { return &packets.PingRequest{} }},
			{ID: 0x01, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.PongResponse{} }},
		},
		packet.StateLogin: {
			{ID: 0x00, Direction: packet.Serverbound, New: func() packet.Packet { return &packets.LoginStart{} }},
			{ID: 0x00, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.LoginDisconnect{} }},
			{ID: 0x01, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.EncryptionRequest{} }},
			{ID: 0x01, Direction: packet.Serverbound, New: func() packet.Packet { return &packets.EncryptionResponse{} }},
			{ID: 0x02, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.LoginSuccess{} }},
			{ID: 0x03, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.LoginSetCompression{} }},
		},
		packet.StatePlay: {
			{ID: 0x0F, Direction: packet.Serverbound, New: func() packet.Packet { return &packets.KeepAliveServerbound{} }},
			{ID: 0x12, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.Commands{} }},
			{ID: 0x17, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.SetContainerSlot{} }},
			{ID: 0x21, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.KeepAliveClientbound{} }},
			{ID: 0x24, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.LevelParticles{} }},
			{ID: 0x4D, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.SetEntityMetadata{} }},
			{ID: 0x66, Direction: packet.Clientbound, New: func() packet.Packet { return &packets.DeclareRecipes{} }},
		},
	}

	return registry.NewPacketMap(mcversion.Protocol757, mcversion.Name757, byState, checkDuplicates)
}
