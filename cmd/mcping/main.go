// Command mcping performs a server-list-ping round trip against a
// Minecraft Java Edition 1.18.1 server: handshake into STATUS, request
// and print the status JSON, then ping/pong to measure latency.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/go-mcproto/corejava/conn"
	"github.com/go-mcproto/corejava/mcversion"
	"github.com/go-mcproto/corejava/packet"
	"github.com/go-mcproto/corejava/packets"
	"github.com/go-mcproto/corejava/proto757"
)

func main() {
	addr := flag.String("addr", "localhost:25565", "host:port of the server to ping")
	timeout := flag.Duration("timeout", 5*time.Second, "dial timeout")
	flag.Parse()

	if err := run(*addr, *timeout); err != nil {
		log.Fatal(err)
	}
}

func run(addr string, timeout time.Duration) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("mcping: %w", err)
	}
	var port int
	if _, err := fmt.Sscanf(portStr, "%d", &port); err != nil {
		return fmt.Errorf("mcping: invalid port %q: %w", portStr, err)
	}

	nc, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("mcping: dial %s: %w", addr, err)
	}
	defer nc.Close()

	packetMap, err := proto757.NewPacketMap(false)
	if err != nil {
		return fmt.Errorf("mcping: build packet map: %w", err)
	}

	ep := conn.NewEndpoint(conn.Client, nc, packetMap)

	if err := ep.WritePacket(&packets.Handshake{
		ProtocolVersion: mcversion.Protocol757,
		ServerAddress:   host,
		ServerPort:      uint16(port),
		NextState:       packets.NextStatus,
	}); err != nil {
		return fmt.Errorf("mcping: handshake: %w", err)
	}
	ep.SetState(packet.StateStatus)

	if err := ep.WritePacket(&packets.StatusRequest{}); err != nil {
		return fmt.Errorf("mcping: status request: %w", err)
	}

	respPacket, err := ep.ReadPacket()
	if err != nil {
		return fmt.Errorf("mcping: status response: %w", err)
	}
	resp, ok := respPacket.(*packets.StatusResponse)
	if !ok {
		return fmt.Errorf("mcping: expected StatusResponse, got %T", respPacket)
	}
	fmt.Println(resp.JSON)

	payload := time.Now().UnixNano()
	start := time.Now()
	if err := ep.WritePacket(&packets.PingRequest{Payload: payload}); err != nil {
		return fmt.Errorf("mcping: ping: %w", err)
	}

	pongPacket, err := ep.ReadPacket()
	if err != nil {
		return fmt.Errorf("mcping: pong: %w", err)
	}
	pong, ok := pongPacket.(*packets.PongResponse)
	if !ok {
		return fmt.Errorf("mcping: expected PongResponse, got %T", pongPacket)
	}
	if pong.Payload != payload {
		return fmt.Errorf("mcping: pong payload mismatch: sent %d, got %d", payload, pong.Payload)
	}

	fmt.Printf("latency: %s\n", time.Since(start))
	return nil
}
