package attrib

// Flags is the host runtime's per-node status bitmask. Only the
// performed-work bit is consulted here; every other bit is opaque and
// carried through untouched.
type Flags uint32

const (
	FlagNone Flags = 0

	// FlagPerformedWork is the host's "this node did work" signal. A clear
	// bit is a hard guarantee of no render; a set bit is only a candidate
	// that still needs confirmation against the node's actual inputs.
	FlagPerformedWork Flags = 1 << 0
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

func (f *Flags) Set(flag Flags) {
	*f |= flag
}

func (f *Flags) Clear(flag Flags) {
	*f &^= flag
}
