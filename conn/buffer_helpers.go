package conn

import "github.com/go-mcproto/corejava/buffer"

// bufferFrom wraps data (or starts empty, for nil) in a *buffer.Buffer for
// a single Pack/Unpack call.
func bufferFrom(data []byte) *buffer.Buffer {
	if data == nil {
		return buffer.NewEmpty()
	}
	return buffer.New(data)
}
