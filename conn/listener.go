package conn

import (
	"net"

	"github.com/go-mcproto/corejava/registry"
)

// Listener accepts TCP connections and constructs a Server-side Endpoint
// for each, invoking a caller-supplied hook once per accepted connection.
// Mirrors the teacher library's accept-loop shape (base_tcp.go), adapted
// to hand back a typed Endpoint instead of a raw net.Conn.
type Listener struct {
	ln      net.Listener
	packets *registry.PacketMap
}

// Listen starts listening on addr (host:port form).
func Listen(addr string, packets *registry.PacketMap) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Listener{ln: ln, packets: packets}, nil
}

// Addr returns the listener's bound address.
func (l *Listener) Addr() net.Addr { return l.ln.Addr() }

// Close stops accepting new connections.
func (l *Listener) Close() error { return l.ln.Close() }

// Serve accepts connections in a loop, calling onConnect once per accepted
// connection with its freshly constructed Endpoint. Serve blocks until
// Accept returns an error (including after the listener is closed) and
// returns that error; temporary Accept errors are not retried.
//
// onConnect is invoked synchronously per accepted connection — it owns
// deciding whether to handle it inline or hand it off to its own
// goroutine, matching the parallel-threads transport variant; a
// single-threaded cooperative variant would instead multiplex Endpoints
// on one event loop without changing this contract.
func (l *Listener) Serve(onConnect func(*Endpoint)) error {
	for {
		nc, err := l.ln.Accept()
		if err != nil {
			return err
		}
		ep := NewEndpoint(Server, nc, l.packets)
		onConnect(ep)
	}
}
