package registry_test

import (
	"errors"
	"testing"

	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/packet"
	"github.com/go-mcproto/corejava/protoerr"
	"github.com/go-mcproto/corejava/registry"
)

type fakePacket struct {
	id  int32
	dir packet.Direction
}

func (p *fakePacket) ID() int32                   { return p.id }
func (p *fakePacket) State() packet.State         { return packet.StatePlay }
func (p *fakePacket) Direction() packet.Direction { return p.dir }
func (p *fakePacket) Pack(b *buffer.Buffer) error { return nil }

func TestDuplicatePacketIDDetected(t *testing.T) {
	variants := []registry.Variant{
		{ID: 0x01, Direction: packet.Clientbound, New: func() packet.Packet { return &fakePacket{id: 0x01, dir: packet.Clientbound} }},
		{ID: 0x01, Direction: packet.Clientbound, New: func() packet.Packet { return &fakePacket{id: 0x01, dir: packet.Clientbound} }},
	}

	_, err := registry.NewStatePacketMap(757, packet.StatePlay, variants, true)
	if err == nil {
		t.Fatal("expected DuplicatePacketIDError, got nil")
	}
	var dup *protoerr.DuplicatePacketIDError
	if !errors.As(err, &dup) {
		t.Fatalf("got %T, want *protoerr.DuplicatePacketIDError", err)
	}
}

func TestDistinctDirectionsNotDuplicate(t *testing.T) {
	variants := []registry.Variant{
		{ID: 0x01, Direction: packet.Clientbound, New: func() packet.Packet { return &fakePacket{id: 0x01, dir: packet.Clientbound} }},
		{ID: 0x01, Direction: packet.Serverbound, New: func() packet.Packet { return &fakePacket{id: 0x01, dir: packet.Serverbound} }},
	}

	if _, err := registry.NewStatePacketMap(757, packet.StatePlay, variants, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPacketMapGetUnknownID(t *testing.T) {
	pm, err := registry.NewPacketMap(757, "v_1_18_1", map[packet.State][]registry.Variant{
		packet.StatePlay: {
			{ID: 0x01, Direction: packet.Clientbound, New: func() packet.Packet { return &fakePacket{id: 0x01, dir: packet.Clientbound} }},
		},
	}, true)
	if err != nil {
		t.Fatalf("NewPacketMap: %v", err)
	}

	if _, err := pm.Get(packet.Clientbound, packet.StatePlay, 0x01); err != nil {
		t.Fatalf("Get(known id): %v", err)
	}

	_, err = pm.Get(packet.Clientbound, packet.StatePlay, 0x99)
	if err == nil {
		t.Fatal("expected UnknownPacketIDError, got nil")
	}
	var unknown *protoerr.UnknownPacketIDError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %T, want *protoerr.UnknownPacketIDError", err)
	}
}
