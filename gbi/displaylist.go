package gbi

import (
	"encoding/binary"
	"errors"
)

// ErrOverflow is the panic value raised when appending to a full display
// list.
var ErrOverflow = errors.New("gbi: display list overflow")

// DisplayList is an append-only command buffer with a fixed capacity. The
// write cursor is the number of commands appended so far.
type DisplayList struct {
	cmds []Command
}

// NewDisplayList returns an empty display list with room for capacity
// commands.
func NewDisplayList(capacity int) *DisplayList {
	return &DisplayList{
		cmds: make([]Command, 0, capacity),
	}
}

// Append writes c at the cursor and advances it by one. Appending to a full
// list panics with ErrOverflow.
func (dl *DisplayList) Append(c Command) {
	if len(dl.cmds) == cap(dl.cmds) {
		panic(ErrOverflow)
	}
	dl.cmds = append(dl.cmds, c)
}

// Len returns the position of the write cursor.
func (dl *DisplayList) Len() int {
	return len(dl.cmds)
}

// Cap returns the capacity of the list.
func (dl *DisplayList) Cap() int {
	return cap(dl.cmds)
}

// Commands returns the commands appended so far.
func (dl *DisplayList) Commands() []Command {
	return dl.cmds
}

// Reset rewinds the cursor, ready for the next frame.
func (dl *DisplayList) Reset() {
	dl.cmds = dl.cmds[:0]
}

// Encode expands every command in order into native words.
func (dl *DisplayList) Encode(addr AddressFunc) []Gfx {
	return Encode(dl.cmds, addr)
}

// Encode expands cmds in order into native words.
func Encode(cmds []Command, addr AddressFunc) []Gfx {
	var out []Gfx
	for _, c := range cmds {
		out = append(out, c.Encode(addr)...)
	}
	return out
}

// Marshal returns the big-endian binary form of words, as consumed by the
// RSP.
func Marshal(words []Gfx) []byte {
	b := make([]byte, len(words)*8)
	for i, g := range words {
		binary.BigEndian.PutUint32(b[i*8:], g.W0)
		binary.BigEndian.PutUint32(b[i*8+4:], g.W1)
	}
	return b
}
