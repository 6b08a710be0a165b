// Package mcversion resolves between the integer protocol version this
// library implements and its canonical name, mirroring how the original
// Python packet dictionary keyed its per-version packet directories.
package mcversion

import "fmt"

// Protocol757 is the only protocol version this library implements:
// Minecraft Java Edition 1.18.1.
const Protocol757 = 757

// Name757 is the canonical name for Protocol757, matching the directory
// name the reference implementation's packet dictionary used.
const Name757 = "v_1_18_1"

var byNumber = map[int]string{
	Protocol757: Name757,
}

var byName = map[string]int{
	Name757: Protocol757,
}

// Name returns the canonical name for a protocol version number.
func Name(version int) (string, error) {
	name, ok := byNumber[version]
	if !ok {
		return "", fmt.Errorf("mcversion: unknown protocol version %d", version)
	}
	return name, nil
}

// Version returns the protocol version number for a canonical name.
func Version(name string) (int, error) {
	version, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("mcversion: unknown protocol name %q", name)
	}
	return version, nil
}

// Resolve accepts either an int protocol version or a string canonical
// name and returns both forms, matching the spec's "protocol handle is
// either an integer version or a canonical name" contract.
func Resolve(handle any) (version int, name string, err error) {
	switch h := handle.(type) {
	case int:
		name, err = Name(h)
		return h, name, err
	case string:
		version, err = Version(h)
		return version, h, err
	default:
		return 0, "", fmt.Errorf("mcversion: invalid protocol handle type %T", handle)
	}
}
