package conn_test

import (
	"fmt"
	"net"
	"testing"

	"github.com/go-mcproto/corejava/conn"
	"github.com/go-mcproto/corejava/packet"
	"github.com/go-mcproto/corejava/packets"
	"github.com/go-mcproto/corejava/proto757"
)

// TestEndToEndStatusPing drives the S1 scenario end to end over an
// in-process pipe: handshake into STATUS, request/response, then
// ping/pong, with each side owning its own Endpoint and state.
func TestEndToEndStatusPing(t *testing.T) {
	pm, err := proto757.NewPacketMap(true)
	if err != nil {
		t.Fatalf("NewPacketMap: %v", err)
	}

	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	client := conn.NewEndpoint(conn.Client, clientConn, pm)
	server := conn.NewEndpoint(conn.Server, serverConn, pm)

	errs := make(chan error, 2)

	go func() { errs <- runServer(server) }()
	go func() { errs <- runClient(client) }()

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatal(err)
		}
	}
}

func runServer(server *conn.Endpoint) error {
	p, err := server.ReadPacket()
	if err != nil {
		return fmt.Errorf("server: read handshake: %w", err)
	}
	hs, ok := p.(*packets.Handshake)
	if !ok {
		return fmt.Errorf("server: got %T, want *packets.Handshake", p)
	}
	if hs.NextState != packets.NextStatus {
		return fmt.Errorf("server: got NextState %d, want NextStatus", hs.NextState)
	}
	server.SetState(packet.StateStatus)

	if _, err := server.ReadPacket(); err != nil {
		return fmt.Errorf("server: read status request: %w", err)
	}
	if err := server.WritePacket(&packets.StatusResponse{JSON: `{"ok":true}`}); err != nil {
		return fmt.Errorf("server: write status response: %w", err)
	}

	pingPacket, err := server.ReadPacket()
	if err != nil {
		return fmt.Errorf("server: read ping: %w", err)
	}
	ping, ok := pingPacket.(*packets.PingRequest)
	if !ok {
		return fmt.Errorf("server: got %T, want *packets.PingRequest", pingPacket)
	}
	if err := server.WritePacket(&packets.PongResponse{Payload: ping.Payload}); err != nil {
		return fmt.Errorf("server: write pong: %w", err)
	}
	return nil
}

func runClient(client *conn.Endpoint) error {
	if err := client.WritePacket(&packets.Handshake{
		ProtocolVersion: 757,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       packets.NextStatus,
	}); err != nil {
		return fmt.Errorf("client: write handshake: %w", err)
	}
	client.SetState(packet.StateStatus)

	if err := client.WritePacket(&packets.StatusRequest{}); err != nil {
		return fmt.Errorf("client: write status request: %w", err)
	}
	respPacket, err := client.ReadPacket()
	if err != nil {
		return fmt.Errorf("client: read status response: %w", err)
	}
	resp, ok := respPacket.(*packets.StatusResponse)
	if !ok {
		return fmt.Errorf("client: got %T, want *packets.StatusResponse", respPacket)
	}
	if resp.JSON != `{"ok":true}` {
		return fmt.Errorf("client: got JSON %q, want %q", resp.JSON, `{"ok":true}`)
	}

	if err := client.WritePacket(&packets.PingRequest{Payload: 42}); err != nil {
		return fmt.Errorf("client: write ping: %w", err)
	}
	pongPacket, err := client.ReadPacket()
	if err != nil {
		return fmt.Errorf("client: read pong: %w", err)
	}
	pong, ok := pongPacket.(*packets.PongResponse)
	if !ok {
		return fmt.Errorf("client: got %T, want *packets.PongResponse", pongPacket)
	}
	if pong.Payload != 42 {
		return fmt.Errorf("client: got pong payload %d, want 42", pong.Payload)
	}
	return nil
}
