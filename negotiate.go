package telnet

// processNegotiation implements the Q-Method-derived response table from
// spec.md §4.F: given a received `IAC <command> <option>`, it mutates the
// compatibility table as needed and returns zero or more events - any
// outgoing DataSendEvent always precedes the NegotiationEvent it triggered,
// per spec.md §5's ordering guarantee.
func (p *Parser) processNegotiation(command, option byte) []Event {
	entry := p.table.GetOption(option)
	negotiation := NewNegotiationEvent(command, option)

	switch command {
	case WILL:
		if entry.Remote && !entry.RemoteState {
			entry.RemoteState = true
			p.table.SetOption(option, entry)
			return []Event{
				NewDataSendEvent([]byte{IAC, DO, option}),
				negotiation,
			}
		}
		if !entry.Remote {
			p.logRefusedNegotiation(command, option)
			return []Event{NewDataSendEvent([]byte{IAC, DONT, option})}
		}
		// entry.Remote && entry.RemoteState: already active, no-op.
		return nil

	case WONT:
		if entry.RemoteState {
			entry.RemoteState = false
			p.table.SetOption(option, entry)
			return []Event{
				NewDataSendEvent([]byte{IAC, DONT, option}),
				negotiation,
			}
		}
		// Already inactive - still confirmed to the caller (spec.md §9).
		return []Event{negotiation}

	case DO:
		if entry.Local && !entry.LocalState {
			entry.LocalState = true
			entry.RemoteState = true
			p.table.SetOption(option, entry)
			return []Event{
				NewDataSendEvent([]byte{IAC, WILL, option}),
				negotiation,
			}
		}
		if !entry.Local {
			p.logRefusedNegotiation(command, option)
			return []Event{NewDataSendEvent([]byte{IAC, WONT, option})}
		}
		// entry.Local && entry.LocalState: already active, no-op.
		return nil

	case DONT:
		if entry.LocalState {
			entry.LocalState = false
			p.table.SetOption(option, entry)
			return []Event{
				NewDataSendEvent([]byte{IAC, WONT, option}),
				negotiation,
			}
		}
		return []Event{negotiation}
	}

	return nil
}
