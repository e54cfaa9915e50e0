package telnet

// CompatibilityEntry tracks, for a single option code, whether we support
// advertising it locally, whether we'll accept the peer advertising it, and
// whether each side currently has it active. The zero value is the default
// entry: everything off.
type CompatibilityEntry struct {
	// Local indicates we will advertise this option if asked.
	Local bool
	// Remote indicates we accept the peer advertising this option.
	Remote bool
	// LocalState indicates the option is currently active on our side.
	LocalState bool
	// RemoteState indicates the option is currently active on the peer's side.
	RemoteState bool
}

// Packed bit positions used when an entry is serialized to a single octet.
const (
	bitLocal = 1 << iota
	bitRemote
	bitLocalState
	bitRemoteState
)

// PackedByte serializes the entry into a single octet: bit0=Local,
// bit1=Remote, bit2=LocalState, bit3=RemoteState.
func (e CompatibilityEntry) PackedByte() byte {
	var b byte
	if e.Local {
		b |= bitLocal
	}
	if e.Remote {
		b |= bitRemote
	}
	if e.LocalState {
		b |= bitLocalState
	}
	if e.RemoteState {
		b |= bitRemoteState
	}
	return b
}

// EntryFromPackedByte deserializes an octet produced by PackedByte.
func EntryFromPackedByte(b byte) CompatibilityEntry {
	return CompatibilityEntry{
		Local:       b&bitLocal != 0,
		Remote:      b&bitRemote != 0,
		LocalState:  b&bitLocalState != 0,
		RemoteState: b&bitRemoteState != 0,
	}
}

// OptionSupport pairs an option code with its packed compatibility octet,
// the shape CompatibilityTable.FromOptions ingests.
type OptionSupport struct {
	Option byte
	Packed byte
}

// CompatibilityTable is a fixed mapping from every option code (0..255) to
// a CompatibilityEntry. Lookup and store are O(1); the zero value is an
// empty table (every option fully unsupported and inactive).
type CompatibilityTable struct {
	entries [256]CompatibilityEntry
}

// NewCompatibilityTable returns an empty table - every option defaulted to
// CompatibilityEntry{}.
func NewCompatibilityTable() *CompatibilityTable {
	return &CompatibilityTable{}
}

// NewCompatibilityTableFromOptions builds a table from explicit
// (option, packed-octet) pairs. Later entries for the same option overwrite
// earlier ones.
func NewCompatibilityTableFromOptions(options []OptionSupport) *CompatibilityTable {
	t := &CompatibilityTable{}
	for _, o := range options {
		t.entries[o.Option] = EntryFromPackedByte(o.Packed)
	}
	return t
}

// GetOption returns the entry currently recorded for opt.
func (t *CompatibilityTable) GetOption(opt byte) CompatibilityEntry {
	return t.entries[opt]
}

// SetOption overwrites the entry recorded for opt.
func (t *CompatibilityTable) SetOption(opt byte, entry CompatibilityEntry) {
	t.entries[opt] = entry
}

// SupportLocal marks opt as locally supported (Local=true) without
// disturbing its other flags.
func (t *CompatibilityTable) SupportLocal(opt byte) {
	e := t.entries[opt]
	e.Local = true
	t.entries[opt] = e
}

// SupportRemote marks opt as acceptable from the remote (Remote=true)
// without disturbing its other flags.
func (t *CompatibilityTable) SupportRemote(opt byte) {
	e := t.entries[opt]
	e.Remote = true
	t.entries[opt] = e
}

// Equal reports whether two tables agree on every one of the 256 option
// slots.
func (t *CompatibilityTable) Equal(other *CompatibilityTable) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.entries == other.entries
}

// Clone returns a deep (value) copy of the table.
func (t *CompatibilityTable) Clone() *CompatibilityTable {
	clone := *t
	return &clone
}
