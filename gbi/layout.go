package gbi

// Layout assigns physical addresses to buffers so that commands referring to
// them can be encoded. Buffers are placed one after another from a base
// address, each aligned to 8 bytes.
type Layout struct {
	next  uint32
	addrs map[*byte]uint32
}

// NewLayout returns a Layout placing buffers from base upwards.
func NewLayout(base uint32) *Layout {
	return &Layout{
		next:  align(base),
		addrs: make(map[*byte]uint32),
	}
}

func align(a uint32) uint32 {
	return (a + 7) &^ 7
}

// Place assigns an address to b, if it hasn't got one already, and returns
// it. Empty buffers have address zero.
func (l *Layout) Place(b []byte) uint32 {
	if len(b) == 0 {
		return 0
	}
	if a, ok := l.addrs[&b[0]]; ok {
		return a
	}
	a := l.next
	l.addrs[&b[0]] = a
	l.next = align(a + uint32(len(b)))
	return a
}

// Address is an AddressFunc which places buffers on first use.
func (l *Layout) Address(b []byte) uint32 {
	return l.Place(b)
}
