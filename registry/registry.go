// Package registry implements the per-state, per-direction packet
// dictionary: a PacketMap binds a protocol identifier to four
// StatePacketMaps (one per packet.State), each partitioning its registered
// variants by direction and id.
package registry

import (
	"sort"

	"github.com/go-mcproto/corejava/packet"
	"github.com/go-mcproto/corejava/protoerr"
)

// Factory constructs a fresh zero-value instance of a packet variant, to be
// populated by Unpack (or returned as-is for callers that only need the
// variant's identity, e.g. to call Pack with already-set fields).
type Factory func() packet.Packet

// Variant is one entry in a StatePacketMap build list: the packet's id,
// direction, and a constructor for fresh instances.
type Variant struct {
	ID        int32
	Direction packet.Direction
	New       Factory
}

// StatePacketMap partitions the variants registered for a single protocol
// state into per-direction id -> Factory maps.
type StatePacketMap struct {
	state       packet.State
	serverbound map[int32]Factory
	clientbound map[int32]Factory
}

// NewStatePacketMap builds a StatePacketMap from a flat variant list.
// When checkDuplicates is true (debug/test mode), two variants sharing a
// direction and id raise DuplicatePacketIDError; discovery order does not
// otherwise affect the result, matching the "deterministic, order
// independent" requirement.
func NewStatePacketMap(protocol int, state packet.State, variants []Variant, checkDuplicates bool) (*StatePacketMap, error) {
	m := &StatePacketMap{
		state:       state,
		serverbound: make(map[int32]Factory),
		clientbound: make(map[int32]Factory),
	}

	for _, v := range variants {
		table := m.tableFor(v.Direction)
		if checkDuplicates {
			if _, exists := table[v.ID]; exists {
				return nil, &protoerr.DuplicatePacketIDError{
					Protocol:  protocol,
					State:     state.String(),
					ID:        v.ID,
					Direction: v.Direction,
				}
			}
		}
		table[v.ID] = v.New
	}

	return m, nil
}

func (m *StatePacketMap) tableFor(dir packet.Direction) map[int32]Factory {
	if dir == packet.Clientbound {
		return m.clientbound
	}
	return m.serverbound
}

// get looks up the factory for (direction, id) in this state.
func (m *StatePacketMap) get(protocol int, dir packet.Direction, id int32) (Factory, error) {
	f, ok := m.tableFor(dir)[id]
	if !ok {
		return nil, &protoerr.UnknownPacketIDError{
			Protocol:  protocol,
			State:     m.state.String(),
			ID:        id,
			Direction: dir,
		}
	}
	return f, nil
}

// PacketMap is the top-level registry: one StatePacketMap per protocol
// state, keyed to a single protocol version/name. It is immutable after
// construction and safe to share across every connection running that
// protocol.
type PacketMap struct {
	Protocol int
	Name     string

	states map[packet.State]*StatePacketMap
}

// NewPacketMap builds a PacketMap from a state -> variant list mapping.
// checkDuplicates enables DuplicatePacketIDError detection within each
// state (see NewStatePacketMap); leave false in production for speed once
// a build has passed debug-mode construction at least once.
func NewPacketMap(protocol int, name string, byState map[packet.State][]Variant, checkDuplicates bool) (*PacketMap, error) {
	pm := &PacketMap{
		Protocol: protocol,
		Name:     name,
		states:   make(map[packet.State]*StatePacketMap),
	}

	// Iterate states in a fixed order so construction is deterministic
	// regardless of map iteration order.
	for _, state := range sortedStates(byState) {
		spm, err := NewStatePacketMap(protocol, state, byState[state], checkDuplicates)
		if err != nil {
			return nil, err
		}
		pm.states[state] = spm
	}

	return pm, nil
}

func sortedStates(byState map[packet.State][]Variant) []packet.State {
	states := make([]packet.State, 0, len(byState))
	for s := range byState {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// Get looks up the registered variant for (direction, state, id) and
// returns a freshly constructed instance, or UnknownPacketIDError.
func (pm *PacketMap) Get(dir packet.Direction, state packet.State, id int32) (packet.Packet, error) {
	spm, ok := pm.states[state]
	if !ok {
		return nil, &protoerr.UnknownPacketIDError{
			Protocol:  pm.Protocol,
			State:     state.String(),
			ID:        id,
			Direction: dir,
		}
	}
	f, err := spm.get(pm.Protocol, dir, id)
	if err != nil {
		return nil, err
	}
	return f(), nil
}
