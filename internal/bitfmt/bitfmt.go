// Package bitfmt renders integers as binary strings grouped in 4-bit
// nibbles, a development aid for inspecting Morton codes and packed tile
// IDs in debug logs.
package bitfmt

import (
	"strconv"
	"strings"
)

// Format returns the binary representation of v with a space every 4 bits,
// counted from the least significant bit.
func Format(v uint64) string {
	s := strconv.FormatUint(v, 2)
	if len(s) <= 4 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 4
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 4 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+4])
	}
	return b.String()
}

// Format32 renders a 32-bit value (such as a packed tile ID) through its
// unsigned bit pattern.
func Format32(v int32) string {
	return Format(uint64(uint32(v)))
}
