package nbt_test

import (
	"bytes"
	"testing"

	"github.com/go-mcproto/corejava/nbt"
)

func TestEncodeDecodePrimitives(t *testing.T) {
	cases := []struct {
		name string
		tag  nbt.Tag
	}{
		{"byte", nbt.Byte(42)},
		{"byte negative", nbt.Byte(-1)},
		{"short", nbt.Short(12345)},
		{"short negative", nbt.Short(-12345)},
		{"int", nbt.Int(123456789)},
		{"int negative", nbt.Int(-123456789)},
		{"long", nbt.Long(9223372036854775807)},
		{"long negative", nbt.Long(-9223372036854775808)},
		{"float", nbt.Float(3.14159)},
		{"double", nbt.Double(3.141592653589793)},
		{"string", nbt.String("Hello, NBT!")},
		{"string unicode", nbt.String("日本語テスト")},
		{"byte array", nbt.ByteArray{1, 2, 3, 4, 5}},
		{"int array", nbt.IntArray{1, 2, 3, 4, 5}},
		{"long array", nbt.LongArray{1, 2, 3, 4, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name+"/network", func(t *testing.T) {
			compound := nbt.Compound{"value": tc.tag} // a bare tag is not valid top-level NBT

			data, err := nbt.EncodeNetwork(compound)
			if err != nil {
				t.Fatalf("EncodeNetwork: %v", err)
			}
			decoded, err := nbt.DecodeNetwork(data)
			if err != nil {
				t.Fatalf("DecodeNetwork: %v", err)
			}
			c, ok := decoded.(nbt.Compound)
			if !ok {
				t.Fatalf("got %T, want nbt.Compound", decoded)
			}
			if got := c["value"]; got.ID() != tc.tag.ID() {
				t.Errorf("tag id = %d, want %d", got.ID(), tc.tag.ID())
			}
		})

		t.Run(tc.name+"/file", func(t *testing.T) {
			compound := nbt.Compound{"value": tc.tag}

			data, err := nbt.EncodeFile(compound, "test")
			if err != nil {
				t.Fatalf("EncodeFile: %v", err)
			}
			decoded, rootName, err := nbt.DecodeFile(data)
			if err != nil {
				t.Fatalf("DecodeFile: %v", err)
			}
			if rootName != "test" {
				t.Errorf("root name = %q, want %q", rootName, "test")
			}
			c, ok := decoded.(nbt.Compound)
			if !ok {
				t.Fatalf("got %T, want nbt.Compound", decoded)
			}
			if got := c["value"]; got.ID() != tc.tag.ID() {
				t.Errorf("tag id = %d, want %d", got.ID(), tc.tag.ID())
			}
		})
	}
}

func TestEncodeDecodeCompound(t *testing.T) {
	original := nbt.Compound{
		"name":  nbt.String("Steve"),
		"x":     nbt.Double(100.5),
		"y":     nbt.Double(64.0),
		"z":     nbt.Double(-200.5),
		"level": nbt.Int(42),
		"items": nbt.List{
			ElementType: nbt.IDCompound,
			Elements: []nbt.Tag{
				nbt.Compound{"id": nbt.String("minecraft:diamond"), "count": nbt.Byte(64)},
				nbt.Compound{"id": nbt.String("minecraft:stick"), "count": nbt.Byte(32)},
			},
		},
	}

	data, err := nbt.EncodeNetwork(original)
	if err != nil {
		t.Fatalf("EncodeNetwork: %v", err)
	}
	decoded, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork: %v", err)
	}

	c := decoded.(nbt.Compound)
	if c.String("name") != "Steve" {
		t.Errorf("name = %q, want %q", c.String("name"), "Steve")
	}
	if c.Double("x") != 100.5 {
		t.Errorf("x = %v, want %v", c.Double("x"), 100.5)
	}
	if c.Int("level") != 42 {
		t.Errorf("level = %v, want %v", c.Int("level"), 42)
	}
	if items := c.List("items"); items.Len() != 2 {
		t.Errorf("items length = %d, want 2", items.Len())
	}
}

func TestNetworkVsFileFormatLength(t *testing.T) {
	compound := nbt.Compound{"test": nbt.Int(42)}

	networkData, _ := nbt.EncodeNetwork(compound)
	fileData, _ := nbt.EncodeFile(compound, "root")

	if len(fileData) <= len(networkData) {
		t.Errorf("file format (%d bytes) should be longer than network format (%d bytes)",
			len(fileData), len(networkData))
	}
	if networkData[0] != nbt.IDCompound || fileData[0] != nbt.IDCompound {
		t.Errorf("both forms should start with IDCompound (0x%02X)", nbt.IDCompound)
	}
	if fileData[1] != 0 || fileData[2] != 4 {
		t.Errorf("file format name length = %d, want 4", int(fileData[1])<<8|int(fileData[2]))
	}
	if string(fileData[3:7]) != "root" {
		t.Errorf("file format name = %q, want %q", string(fileData[3:7]), "root")
	}
}

func TestDepthLimit(t *testing.T) {
	var compound nbt.Tag = nbt.Compound{"end": nbt.Byte(1)}
	for range 600 {
		compound = nbt.Compound{"nested": compound}
	}

	data, err := nbt.EncodeNetwork(compound)
	if err != nil {
		t.Fatalf("EncodeNetwork: %v", err)
	}

	if _, err := nbt.DecodeNetwork(data); err == nil {
		t.Error("DecodeNetwork should fail past the default 512 depth limit")
	}
	if _, err := nbt.DecodeNetwork(data, nbt.WithMaxDepth(700)); err != nil {
		t.Errorf("DecodeNetwork with a raised limit: %v", err)
	}
}

func TestKnownBytes(t *testing.T) {
	// network-format compound { "test": Byte(42) }
	knownBytes := []byte{
		0x0A,               // TAG_Compound
		0x01,               // TAG_Byte
		0x00, 0x04,         // name length = 4
		't', 'e', 's', 't', // name = "test"
		0x2A, // value = 42
		0x00, // TAG_End
	}

	tag, err := nbt.DecodeNetwork(knownBytes)
	if err != nil {
		t.Fatalf("DecodeNetwork: %v", err)
	}
	compound, ok := tag.(nbt.Compound)
	if !ok {
		t.Fatalf("got %T, want nbt.Compound", tag)
	}
	if compound.Byte("test") != 42 {
		t.Errorf("test = %d, want 42", compound.Byte("test"))
	}

	reencoded, err := nbt.EncodeNetwork(compound)
	if err != nil {
		t.Fatalf("EncodeNetwork: %v", err)
	}
	if !bytes.Equal(reencoded, knownBytes) {
		t.Errorf("re-encoded = %v, want %v", reencoded, knownBytes)
	}
}

func TestEmptyCompound(t *testing.T) {
	data, err := nbt.EncodeNetwork(nbt.Compound{})
	if err != nil {
		t.Fatalf("EncodeNetwork: %v", err)
	}
	if want := []byte{0x0A, 0x00}; !bytes.Equal(data, want) {
		t.Errorf("empty compound = %v, want %v", data, want)
	}

	decoded, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork: %v", err)
	}
	if len(decoded.(nbt.Compound)) != 0 {
		t.Errorf("decoded compound length = %d, want 0", len(decoded.(nbt.Compound)))
	}
}

func TestEmptyList(t *testing.T) {
	compound := nbt.Compound{"list": nbt.List{ElementType: nbt.IDInt, Elements: nil}}

	data, err := nbt.EncodeNetwork(compound)
	if err != nil {
		t.Fatalf("EncodeNetwork: %v", err)
	}
	decoded, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork: %v", err)
	}
	if got := decoded.(nbt.Compound).List("list").Len(); got != 0 {
		t.Errorf("list length = %d, want 0", got)
	}
}
