package buffer

import (
	"encoding/json"

	"github.com/go-mcproto/corejava/protoerr"
)

// WriteString writes a UTF-8 string as varint16(byte length) + bytes.
func (b *Buffer) WriteString(s string) error {
	data := []byte(s)
	if err := b.WriteVarInt(int64(len(data)), 16); err != nil {
		return err
	}
	b.WriteBytes(data)
	return nil
}

// ReadString reads a varint16-length-prefixed UTF-8 string.
func (b *Buffer) ReadString() (string, error) {
	n, err := b.ReadVarInt(16)
	if err != nil {
		return "", err
	}
	raw, err := b.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// WriteJSON marshals v to JSON and writes it as a string.
func (b *Buffer) WriteJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return protoerr.NewCorrupt("json marshal", err)
	}
	return b.WriteString(string(data))
}

// ReadJSON reads a string and unmarshals it as JSON into v.
func (b *Buffer) ReadJSON(v any) error {
	s, err := b.ReadString()
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return protoerr.NewCorrupt("json unmarshal", err)
	}
	return nil
}

// Chat is a Minecraft chat component: JSON wrapping {"text": s} for bare
// strings, or an arbitrary JSON object/array for a rich component.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Data_types#Chat
type Chat struct {
	// Raw holds the component as a decoded JSON value (string, map, or
	// slice) exactly as it appeared on the wire.
	Raw any
}

// NewChatText builds a Chat wrapping a bare string as {"text": s}.
func NewChatText(s string) Chat {
	return Chat{Raw: map[string]any{"text": s}}
}

// WriteChat writes the chat component as JSON.
func (b *Buffer) WriteChat(c Chat) error {
	return b.WriteJSON(c.Raw)
}

// ReadChat reads a chat component from JSON.
func (b *Buffer) ReadChat() (Chat, error) {
	var raw any
	if err := b.ReadJSON(&raw); err != nil {
		return Chat{}, err
	}
	return Chat{Raw: raw}, nil
}
