package telnet

import "log/slog"

// DefaultCapacity is the initial size, in bytes, of a Parser's internal
// buffer when none is given explicitly.
const DefaultCapacity = 128

// Parser owns a growable input buffer and a CompatibilityTable. It is a
// single-threaded, cooperative value: Receive runs to completion
// synchronously and returns the full list of events for the bytes fed to
// it. A Parser's lifetime is meant to track a connection's lifetime;
// callers who need to share one across goroutines must provide their own
// mutual exclusion - the parser provides none.
type Parser struct {
	pending []byte
	table   *CompatibilityTable
	logger  *slog.Logger
}

// NewParser returns a Parser with the default buffer capacity and an empty
// (all-disabled) compatibility table.
func NewParser() *Parser {
	return NewParserWithSupportAndCapacity(DefaultCapacity, NewCompatibilityTable())
}

// NewParserWithCapacity returns a Parser with the given initial buffer
// capacity and an empty compatibility table.
func NewParserWithCapacity(capacity int) *Parser {
	return NewParserWithSupportAndCapacity(capacity, NewCompatibilityTable())
}

// NewParserWithSupport returns a Parser with the default buffer capacity,
// directly supplying its compatibility table.
func NewParserWithSupport(table *CompatibilityTable) *Parser {
	return NewParserWithSupportAndCapacity(DefaultCapacity, table)
}

// NewParserWithSupportAndCapacity returns a Parser with both the initial
// buffer capacity and the compatibility table supplied directly.
func NewParserWithSupportAndCapacity(capacity int, table *CompatibilityTable) *Parser {
	if table == nil {
		table = NewCompatibilityTable()
	}
	return &Parser{
		pending: make([]byte, 0, capacity),
		table:   table,
	}
}

// Options returns the parser's compatibility table, for direct inspection
// or mutation (e.g. SupportLocal/SupportRemote) before negotiation begins.
func (p *Parser) Options() *CompatibilityTable {
	return p.table
}

// Receive parses as many complete frames as it can out of any bytes left
// over from a previous call plus data, returning the resulting events in
// the order their first byte appeared in the stream. Only an unterminated
// trailing subnegotiation, if any, is left buffered afterward.
//
// Each call builds its snapshot in a fresh allocation rather than growing
// a buffer in place: every event below slices that snapshot, and a Parser
// never writes into a snapshot it has already handed slices out of, so
// events stay valid indefinitely - including across further Receive calls.
func (p *Parser) Receive(data []byte) []Event {
	snapshot := make([]byte, 0, len(p.pending)+len(data))
	snapshot = append(snapshot, p.pending...)
	snapshot = append(snapshot, data...)
	p.pending = nil

	events := make([]Event, 0, 2)
	for _, f := range extractFrames(snapshot) {
		events = append(events, p.dispatchFrame(f)...)
	}
	return events
}

// dispatchFrame turns one extracted frame into zero or more events,
// implementing spec.md §4.G's per-frame dispatch.
func (p *Parser) dispatchFrame(f frame) []Event {
	switch f.kind {
	case frameData:
		if len(f.data) == 0 {
			return nil
		}
		if f.data[0] == IAC {
			// A lone trailing IAC (or IAC plus a command byte with no
			// option yet) that never resolved into a command - see
			// spec.md §9's open question. Dropped: it yields no event and
			// is not kept for the next Receive call.
			return nil
		}
		return []Event{NewDataReceiveEvent(f.data)}

	case frameIac:
		// f.data is [IAC, cmd]; cmd is never SE here (the extractor only
		// reaches frameIac for GA/EOR/NOP).
		return []Event{NewCommandEvent(f.data[1])}

	case frameNeg:
		// f.data is [IAC, cmd, opt].
		if len(f.data) < 3 {
			return nil
		}
		return p.processNegotiation(f.data[1], f.data[2])

	case frameSub:
		return p.dispatchSubnegotiation(f)
	}

	return nil
}

func (p *Parser) dispatchSubnegotiation(f frame) []Event {
	if !f.complete {
		// Incomplete tail: hold onto it so the next Receive call resumes
		// parsing from here. f.data is a slice of this call's snapshot,
		// which Receive never writes to again, so aliasing it is safe.
		p.logBufferedSubnegotiation(subOption(f.data), len(f.data))
		p.pending = f.data
		return nil
	}

	option := f.data[2]
	payload := f.data[3 : len(f.data)-2]
	entry := p.table.GetOption(option)

	if !(entry.Local && entry.LocalState && len(payload) >= 1) {
		p.logDroppedSubnegotiation(option, len(payload))
		return nil
	}

	events := []Event{NewSubnegotiationEvent(option, UnescapeIAC(payload))}
	if f.tail != nil {
		events = append(events, NewDecompressImmediateEvent(f.tail))
	}
	return events
}

// subOption extracts the option byte from a (possibly incomplete)
// subnegotiation frame for logging purposes only.
func subOption(data []byte) byte {
	if len(data) < 3 {
		return 0
	}
	return data[2]
}

// Negotiate builds the DataSendEvent for an explicit `IAC <command> <option>`.
func (p *Parser) Negotiate(command, option byte) Event {
	return NewDataSendEvent(NewNegotiationEvent(command, option).ToBytes())
}

// Will indicates to the peer that we want to enable option locally. It does
// nothing (returning nil) unless the option is locally supported and not
// already active.
func (p *Parser) Will(option byte) Event {
	entry := p.table.GetOption(option)
	if !entry.Local || entry.LocalState {
		return nil
	}
	entry.LocalState = true
	p.table.SetOption(option, entry)
	return p.Negotiate(WILL, option)
}

// Wont indicates to the peer that we want to disable option locally. It
// does nothing (returning nil) unless the option is currently active
// locally.
func (p *Parser) Wont(option byte) Event {
	entry := p.table.GetOption(option)
	if !entry.LocalState {
		return nil
	}
	entry.LocalState = false
	p.table.SetOption(option, entry)
	return p.Negotiate(WONT, option)
}

// Do asks the peer to enable option. It does nothing (returning nil) unless
// the option is remotely supported and not already active; no local state
// changes here - confirmation arrives via the peer's WILL.
func (p *Parser) Do(option byte) Event {
	entry := p.table.GetOption(option)
	if !entry.Remote || entry.RemoteState {
		return nil
	}
	return p.Negotiate(DO, option)
}

// Dont asks the peer to disable option. It does nothing (returning nil)
// unless the option is currently active remotely.
func (p *Parser) Dont(option byte) Event {
	entry := p.table.GetOption(option)
	if !entry.RemoteState {
		return nil
	}
	return p.Negotiate(DONT, option)
}

// Subnegotiation builds a DataSendEvent carrying payload for a locally
// supported, currently-active option. It returns nil if the option isn't
// both locally supported and active.
func (p *Parser) Subnegotiation(option byte, payload []byte) Event {
	entry := p.table.GetOption(option)
	if !entry.Local || !entry.LocalState {
		return nil
	}
	return NewDataSendEvent(NewSubnegotiationEvent(option, payload).ToBytes())
}

// SubnegotiationText is Subnegotiation with the payload given as a string.
func (p *Parser) SubnegotiationText(option byte, text string) Event {
	return p.Subnegotiation(option, []byte(text))
}

// SendText wraps text in a trailing "\r\n" and IAC-escapes it for
// transmission.
func (p *Parser) SendText(text string) Event {
	return NewDataSendEvent(EscapeIAC([]byte(text + "\r\n")))
}

// LinemodeEnabled reports whether the peer has LINEMODE active.
func (p *Parser) LinemodeEnabled() bool {
	entry := p.table.GetOption(LINEMODE)
	return entry.Remote && entry.RemoteState
}
