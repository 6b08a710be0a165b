package packets_test

import (
	"testing"

	"github.com/go-mcproto/corejava/buffer"
	"github.com/go-mcproto/corejava/packet"
	"github.com/go-mcproto/corejava/packets"
)

func TestHandshakeRoundTrip(t *testing.T) {
	h := packets.Handshake{
		ProtocolVersion: 757,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       packets.NextStatus,
	}

	b := buffer.NewEmpty()
	if err := h.Pack(b); err != nil {
		t.Fatalf("Pack: %v", err)
	}

	var got packets.Handshake
	if err := got.Unpack(buffer.New(b.Bytes())); err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got != h {
		t.Fatalf("got %+v, want %+v", got, h)
	}
}

func TestStatusRequestResponseRoundTrip(t *testing.T) {
	resp := packets.StatusResponse{JSON: `{"version":{"name":"1.18.1","protocol":757}}`}
	b := buffer.NewEmpty()
	if err := resp.Pack(b); err != nil {
		t.Fatalf("Pack: %v", err)
	}
	var got packets.StatusResponse
	if err := got.Unpack(buffer.New(b.Bytes())); err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.JSON != resp.JSON {
		t.Fatalf("got %q, want %q", got.JSON, resp.JSON)
	}
}

func TestLoginSuccessRoundTrip(t *testing.T) {
	ls := packets.LoginSuccess{UUID: buffer.UUID{1, 2, 3, 4}, Username: "Notch"}
	b := buffer.NewEmpty()
	if err := ls.Pack(b); err != nil {
		t.Fatalf("Pack: %v", err)
	}
	var got packets.LoginSuccess
	if err := got.Unpack(buffer.New(b.Bytes())); err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got != ls {
		t.Fatalf("got %+v, want %+v", got, ls)
	}
}

func TestKeepAliveCapabilitySplit(t *testing.T) {
	// Clientbound KeepAlive is encodable; serverbound is decodable —
	// both satisfy Packet unconditionally, and this library writes both
	// directions for testability even though the reference protocol
	// only needs one side each.
	var _ packet.Encodable = &packets.KeepAliveClientbound{}
	var _ packet.Decodable = &packets.KeepAliveServerbound{}

	ka := packets.KeepAliveServerbound{KeepAliveID: 123456789}
	b := buffer.NewEmpty()
	if err := ka.Pack(b); err != nil {
		t.Fatalf("Pack: %v", err)
	}
	var got packets.KeepAliveServerbound
	if err := got.Unpack(buffer.New(b.Bytes())); err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.KeepAliveID != ka.KeepAliveID {
		t.Fatalf("got %d, want %d", got.KeepAliveID, ka.KeepAliveID)
	}
}
