package buffer

import (
	"github.com/go-mcproto/corejava/nbt"
	"github.com/go-mcproto/corejava/protoerr"
)

// WriteNBT writes tag in network format (nameless root). A nil tag is
// written as a bare TAG_End, matching vanilla's "no data" convention.
func (b *Buffer) WriteNBT(tag nbt.Tag) error {
	if tag == nil {
		tag = nbt.End{}
	}
	w := nbt.NewEncoder()
	if err := w.WriteTag(tag, "", true); err != nil {
		return protoerr.NewCorrupt("nbt", err)
	}
	b.WriteBytes(w.Bytes())
	return nil
}

// ReadNBT decodes a network-format NBT tag starting at the buffer's current
// position, advancing the cursor by exactly the number of bytes consumed.
// A bare TAG_End decodes to a nil Tag.
func (b *Buffer) ReadNBT() (nbt.Tag, error) {
	r := nbt.NewReader(b.data[b.pos:])
	tag, _, err := r.ReadTag(true)
	if err != nil {
		return nil, protoerr.NewCorrupt("nbt", err)
	}
	b.pos += int(r.BytesRead())
	if _, isEnd := tag.(nbt.End); isEnd {
		return nil, nil
	}
	return tag, nil
}
