// Package conn implements the connection endpoint: the transport wrapper
// (plain TCP plus an optional transparent AES/CFB8 stream), the
// HANDSHAKING -> STATUS|LOGIN -> PLAY state machine, and the two public
// operations a caller drives it with, read_packet and write_packet.
//
// Adapted from the teacher library's java_protocol.Conn (transparent
// encryption wrapper over net.Conn) combined with its accept-loop pattern.
package conn

import (
	"bufio"
	"fmt"
	"net"

	"github.com/go-mcproto/corejava/crypto"
	"github.com/go-mcproto/corejava/frame"
	"github.com/go-mcproto/corejava/packet"
	"github.com/go-mcproto/corejava/protoerr"
	"github.com/go-mcproto/corejava/registry"
)

// cryptoConn wraps a net.Conn, transparently encrypting writes and
// decrypting reads once its Session is enabled. Mirrors the teacher's
// java_protocol.Conn.
type cryptoConn struct {
	net.Conn
	session *crypto.Session
}

func (c *cryptoConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 && c.session.Enabled() {
		copy(p[:n], c.session.Decrypt(p[:n]))
	}
	return n, err
}

func (c *cryptoConn) Write(p []byte) (int, error) {
	data := p
	if c.session.Enabled() {
		data = c.session.Encrypt(p)
	}
	return c.Conn.Write(data)
}

// Side is which endpoint of the connection this Endpoint represents; it
// determines which direction read_packet dispatches against and which
// direction write_packet accepts.
type Side uint8

const (
	// Client reads clientbound packets and writes serverbound ones.
	Client Side = iota
	// Server reads serverbound packets and writes clientbound ones.
	Server
)

// Endpoint is one side of a connection: the byte stream, the packet
// dictionary it decodes against, and the mutable per-connection state
// (protocol state, compression threshold, encryption) the spec requires
// be owned by the endpoint and touched only from its own goroutine.
type Endpoint struct {
	side Side
	raw  net.Conn
	cc   *cryptoConn
	r    *bufio.Reader

	packets *registry.PacketMap

	state                packet.State
	compressionThreshold int // < 0 disables compression
}

// NewEndpoint wraps an already-established net.Conn as one side of the
// protocol, starting in HANDSHAKING with compression disabled.
func NewEndpoint(side Side, nc net.Conn, packets *registry.PacketMap) *Endpoint {
	cc := &cryptoConn{Conn: nc, session: crypto.NewSession()}
	return &Endpoint{
		side:                 side,
		raw:                  nc,
		cc:                   cc,
		r:                    bufio.NewReader(cc),
		packets:              packets,
		state:                packet.StateHandshaking,
		compressionThreshold: frame.DisableCompression,
	}
}

// State returns the endpoint's current protocol state.
func (e *Endpoint) State() packet.State { return e.state }

// SetState transitions the endpoint. read_packet does not call this
// itself — the spec requires the caller to inspect the packet it
// received (e.g. Handshake.NextState, LoginSuccess) and drive the
// transition explicitly.
func (e *Endpoint) SetState(s packet.State) { e.state = s }

// SetCompressionThreshold mutates the framing threshold for both
// directions on this connection, per LoginSetCompression semantics. A
// negative value disables compression.
func (e *Endpoint) SetCompressionThreshold(threshold int) {
	e.compressionThreshold = threshold
}

// EnableEncryption turns on the AES/CFB8 stream cipher for the remainder
// of the connection's lifetime. This is irreversible, per the LOGIN
// encryption handshake contract.
func (e *Endpoint) EnableEncryption(sharedSecret []byte) error {
	return e.cc.session.Enable(sharedSecret)
}

// Close closes the underlying transport.
func (e *Endpoint) Close() error { return e.raw.Close() }

// RemoteAddr returns the peer's network address.
func (e *Endpoint) RemoteAddr() net.Addr { return e.raw.RemoteAddr() }

// readDirection is the direction of packets this endpoint receives: a
// Client endpoint reads clientbound packets, a Server endpoint reads
// serverbound ones.
func (e *Endpoint) readDirection() packet.Direction {
	if e.side == Client {
		return packet.Clientbound
	}
	return packet.Serverbound
}

// writeDirection is the direction of packets this endpoint sends.
func (e *Endpoint) writeDirection() packet.Direction {
	if e.side == Client {
		return packet.Serverbound
	}
	return packet.Clientbound
}

// ReadPacket reads one frame, looks it up in the packet dictionary for
// the current state and this endpoint's read direction, and unpacks it.
// It does not mutate e.State(); the caller inspects the result and calls
// SetState/SetCompressionThreshold as the protocol dictates.
func (e *Endpoint) ReadPacket() (packet.Packet, error) {
	f, err := frame.Decode(e.r, e.compressionThreshold)
	if err != nil {
		return nil, err
	}

	p, err := e.packets.Get(e.readDirection(), e.state, f.ID)
	if err != nil {
		return nil, err
	}

	dec, ok := p.(packet.Decodable)
	if !ok {
		return nil, &protoerr.OperationNotSupportedError{Operation: "unpack", Packet: fmt.Sprintf("0x%02X", f.ID)}
	}
	if err := dec.Unpack(bufferFrom(f.Payload)); err != nil {
		return nil, err
	}
	return p, nil
}

// WritePacket packs p (which must be of this endpoint's write direction)
// and flushes the resulting frame.
func (e *Endpoint) WritePacket(p packet.Packet) error {
	if p.Direction() != e.writeDirection() {
		return fmt.Errorf("conn: wrong direction for write: packet is %s, endpoint writes %s", p.Direction(), e.writeDirection())
	}

	enc, ok := p.(packet.Encodable)
	if !ok {
		return &protoerr.OperationNotSupportedError{Operation: "pack", Packet: fmt.Sprintf("0x%02X", p.ID())}
	}

	buf := bufferFrom(nil)
	if err := enc.Pack(buf); err != nil {
		return err
	}

	wire, err := frame.Encode(p.ID(), buf.Bytes(), e.compressionThreshold)
	if err != nil {
		return err
	}
	if _, err := e.cc.Write(wire); err != nil {
		return &protoerr.TransportError{Op: "write frame", Err: err}
	}
	return nil
}
