package buffer

// NodeType is the kind of command-graph node.
type NodeType uint8

const (
	NodeRoot NodeType = iota
	NodeLiteral
	NodeArgument
)

// Node flag bits, packed into the single flags byte.
const (
	nodeFlagTypeMask        = 0x03
	nodeFlagExecutable      = 0x04
	nodeFlagRedirect        = 0x08
	nodeFlagSuggestionsType = 0x10
)

// StringParserMode selects how brigadier:string consumes the remainder of
// a command line.
type StringParserMode int32

const (
	StringSingleWord     StringParserMode = 0
	StringQuotablePhrase StringParserMode = 1
	StringGreedyPhrase   StringParserMode = 2
)

// NumberRange carries the optional min/max bounds on a brigadier numeric
// argument; HasMin/HasMax gate whether Min/Max were present on the wire.
type NumberRange struct {
	HasMin bool
	Min    float64
	HasMax bool
	Max    float64
}

// Node is one vertex of the command-graph tree sent by the Commands packet.
// Children and Redirect are indices into the flat node array the tree is
// serialized as.
//
// Properties holds the parser-specific argument properties for the small
// set of parsers that carry any (the brigadier numeric/string parsers plus
// minecraft:entity and minecraft:score_holder); every other registered
// parser identifier has no extra payload and Properties is left nil.
type Node struct {
	Type NodeType

	Executable bool

	Children []int32

	HasRedirect bool
	Redirect    int32

	Name string // set for NodeLiteral and NodeArgument

	Parser     string // set for NodeArgument, e.g. "brigadier:integer"
	Properties any    // one of the NodeProps* types below, or nil

	HasSuggestionsType bool
	SuggestionsType    string
}

// NodePropsNumber is Properties for brigadier:integer/long/float/double.
type NodePropsNumber struct {
	Range NumberRange
}

// NodePropsString is Properties for brigadier:string.
type NodePropsString struct {
	Mode StringParserMode
}

// NodePropsEntity is Properties for minecraft:entity.
type NodePropsEntity struct {
	SingleTarget bool
	PlayersOnly  bool
}

// NodePropsScoreHolder is Properties for minecraft:score_holder.
type NodePropsScoreHolder struct {
	AllowMultiple bool
}

func (b *Buffer) WriteNode(n Node) error {
	flags := byte(n.Type) & nodeFlagTypeMask
	if n.Executable {
		flags |= nodeFlagExecutable
	}
	if n.HasRedirect {
		flags |= nodeFlagRedirect
	}
	if n.HasSuggestionsType {
		flags |= nodeFlagSuggestionsType
	}
	if err := b.WriteUint8(flags); err != nil {
		return err
	}

	if err := b.WriteVarInt(int64(len(n.Children)), 32); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := b.WriteVarInt(int64(c), 32); err != nil {
			return err
		}
	}

	if n.HasRedirect {
		if err := b.WriteVarInt(int64(n.Redirect), 32); err != nil {
			return err
		}
	}

	if n.Type == NodeLiteral || n.Type == NodeArgument {
		if err := b.WriteString(n.Name); err != nil {
			return err
		}
	}

	if n.Type == NodeArgument {
		if err := b.WriteString(n.Parser); err != nil {
			return err
		}
		if err := b.writeNodeProperties(n.Parser, n.Properties); err != nil {
			return err
		}
	}

	if n.HasSuggestionsType {
		if err := b.WriteString(n.SuggestionsType); err != nil {
			return err
		}
	}

	return nil
}

func (b *Buffer) ReadNode() (Node, error) {
	flags, err := b.ReadUint8()
	if err != nil {
		return Node{}, err
	}

	n := Node{
		Type:               NodeType(flags & nodeFlagTypeMask),
		Executable:         flags&nodeFlagExecutable != 0,
		HasRedirect:        flags&nodeFlagRedirect != 0,
		HasSuggestionsType: flags&nodeFlagSuggestionsType != 0,
	}

	count, err := b.ReadVarInt(32)
	if err != nil {
		return Node{}, err
	}
	if count > 0 {
		n.Children = make([]int32, count)
	}
	for i := range n.Children {
		c, err := b.ReadVarInt(32)
		if err != nil {
			return Node{}, err
		}
		n.Children[i] = int32(c)
	}

	if n.HasRedirect {
		r, err := b.ReadVarInt(32)
		if err != nil {
			return Node{}, err
		}
		n.Redirect = int32(r)
	}

	if n.Type == NodeLiteral || n.Type == NodeArgument {
		name, err := b.ReadString()
		if err != nil {
			return Node{}, err
		}
		n.Name = name
	}

	if n.Type == NodeArgument {
		parser, err := b.ReadString()
		if err != nil {
			return Node{}, err
		}
		n.Parser = parser
		props, err := b.readNodeProperties(parser)
		if err != nil {
			return Node{}, err
		}
		n.Properties = props
	}

	if n.HasSuggestionsType {
		st, err := b.ReadString()
		if err != nil {
			return Node{}, err
		}
		n.SuggestionsType = st
	}

	return n, nil
}

// Numeric brigadier parsers carry a one-byte bound-presence flag followed
// by min/max in the argument's own width; every other registered parser
// identifier has no extra properties on the wire.
const (
	numberFlagHasMin = 0x01
	numberFlagHasMax = 0x02
)

func (b *Buffer) writeNodeProperties(parser string, props any) error {
	switch parser {
	case "brigadier:float", "brigadier:double":
		p, _ := props.(NodePropsNumber)
		return b.writeNumberRangeWide(parser, p.Range)

	case "brigadier:integer", "brigadier:long":
		p, _ := props.(NodePropsNumber)
		return b.writeNumberRangeNarrow(parser, p.Range)

	case "brigadier:string":
		p, _ := props.(NodePropsString)
		return b.WriteVarInt(int64(p.Mode), 32)

	case "minecraft:entity":
		p, _ := props.(NodePropsEntity)
		var flags uint8
		if p.SingleTarget {
			flags |= 0x01
		}
		if p.PlayersOnly {
			flags |= 0x02
		}
		return b.WriteUint8(flags)

	case "minecraft:score_holder":
		p, _ := props.(NodePropsScoreHolder)
		var flags uint8
		if p.AllowMultiple {
			flags |= 0x01
		}
		return b.WriteUint8(flags)

	default:
		return nil
	}
}

func (b *Buffer) readNodeProperties(parser string) (any, error) {
	switch parser {
	case "brigadier:float", "brigadier:double":
		r, err := b.readNumberRangeWide(parser)
		return NodePropsNumber{Range: r}, err

	case "brigadier:integer", "brigadier:long":
		r, err := b.readNumberRangeNarrow(parser)
		return NodePropsNumber{Range: r}, err

	case "brigadier:string":
		v, err := b.ReadVarInt(32)
		return NodePropsString{Mode: StringParserMode(v)}, err

	case "minecraft:entity":
		flags, err := b.ReadUint8()
		return NodePropsEntity{SingleTarget: flags&0x01 != 0, PlayersOnly: flags&0x02 != 0}, err

	case "minecraft:score_holder":
		flags, err := b.ReadUint8()
		return NodePropsScoreHolder{AllowMultiple: flags&0x01 != 0}, err

	default:
		return nil, nil
	}
}

// writeNumberRangeWide handles brigadier:float (f32 bounds) and
// brigadier:double (f64 bounds) — both transmitted as float64 here and
// narrowed/widened at the wire boundary.
func (b *Buffer) writeNumberRangeWide(parser string, r NumberRange) error {
	flags := numberRangeFlags(r)
	if err := b.WriteUint8(flags); err != nil {
		return err
	}
	writeBound := func(v float64) error {
		if parser == "brigadier:float" {
			return b.WriteFloat32(float32(v))
		}
		return b.WriteFloat64(v)
	}
	if r.HasMin {
		if err := writeBound(r.Min); err != nil {
			return err
		}
	}
	if r.HasMax {
		if err := writeBound(r.Max); err != nil {
			return err
		}
	}
	return nil
}

func (b *Buffer) readNumberRangeWide(parser string) (NumberRange, error) {
	var r NumberRange
	flags, err := b.ReadUint8()
	if err != nil {
		return r, err
	}
	r.HasMin = flags&numberFlagHasMin != 0
	r.HasMax = flags&numberFlagHasMax != 0
	readBound := func() (float64, error) {
		if parser == "brigadier:float" {
			v, err := b.ReadFloat32()
			return float64(v), err
		}
		return b.ReadFloat64()
	}
	if r.HasMin {
		if r.Min, err = readBound(); err != nil {
			return r, err
		}
	}
	if r.HasMax {
		if r.Max, err = readBound(); err != nil {
			return r, err
		}
	}
	return r, nil
}

// writeNumberRangeNarrow handles brigadier:integer (i32 bounds) and
// brigadier:long (i64 bounds), both carried here as float64 and narrowed
// to the wire width by parser identifier.
func (b *Buffer) writeNumberRangeNarrow(parser string, r NumberRange) error {
	flags := numberRangeFlags(r)
	if err := b.WriteUint8(flags); err != nil {
		return err
	}
	writeBound := func(v float64) error {
		if parser == "brigadier:long" {
			return b.WriteInt64(int64(v))
		}
		return b.WriteInt32(int32(v))
	}
	if r.HasMin {
		if err := writeBound(r.Min); err != nil {
			return err
		}
	}
	if r.HasMax {
		if err := writeBound(r.Max); err != nil {
			return err
		}
	}
	return nil
}

func (b *Buffer) readNumberRangeNarrow(parser string) (NumberRange, error) {
	var r NumberRange
	flags, err := b.ReadUint8()
	if err != nil {
		return r, err
	}
	r.HasMin = flags&numberFlagHasMin != 0
	r.HasMax = flags&numberFlagHasMax != 0
	readBound := func() (float64, error) {
		if parser == "brigadier:long" {
			v, err := b.ReadInt64()
			return float64(v), err
		}
		v, err := b.ReadInt32()
		return float64(v), err
	}
	if r.HasMin {
		if r.Min, err = readBound(); err != nil {
			return r, err
		}
	}
	if r.HasMax {
		if r.Max, err = readBound(); err != nil {
			return r, err
		}
	}
	return r, nil
}

func numberRangeFlags(r NumberRange) uint8 {
	var flags uint8
	if r.HasMin {
		flags |= numberFlagHasMin
	}
	if r.HasMax {
		flags |= numberFlagHasMax
	}
	return flags
}
