package nbt_test

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/go-mcproto/corejava/nbt"
)

func TestDecodeGzipTransparent(t *testing.T) {
	root := nbt.Compound{"value": nbt.Int(42)}

	plain, err := nbt.EncodeFile(root, "root")
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	if _, err := gw.Write(plain); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	tag, name, err := nbt.Decode(gz.Bytes(), false)
	if err != nil {
		t.Fatalf("Decode(gzip): %v", err)
	}
	if name != "root" {
		t.Fatalf("got root name %q, want %q", name, "root")
	}
	compound, ok := tag.(nbt.Compound)
	if !ok {
		t.Fatalf("got %T, want nbt.Compound", tag)
	}
	if v, ok := compound["value"].(nbt.Int); !ok || v != 42 {
		t.Fatalf("got %v, want Int(42)", compound["value"])
	}
}

func TestDecodeUncompressedUnaffected(t *testing.T) {
	root := nbt.Compound{"a": nbt.Byte(1)}
	plain, err := nbt.EncodeFile(root, "")
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	tag, _, err := nbt.Decode(plain, false)
	if err != nil {
		t.Fatalf("Decode(plain): %v", err)
	}
	if _, ok := tag.(nbt.Compound); !ok {
		t.Fatalf("got %T, want nbt.Compound", tag)
	}
}
