package telnet

import "strconv"

// Event is the tagged union of everything Parser.Receive can hand back to a
// caller. Every concrete event type below implements it; callers are
// expected to type-switch on the concrete type, not call methods through
// the interface.
type Event interface {
	isEvent()
}

// CommandEvent is a bare two-byte `IAC <cmd>` sequence. Receive emits it
// only for GA, EOR and NOP; any other byte after IAC (besides IAC and SB)
// is read as the command of a three-byte negotiation.
type CommandEvent struct {
	OpCode byte
}

func NewCommandEvent(opCode byte) CommandEvent {
	return CommandEvent{OpCode: opCode}
}

func (CommandEvent) isEvent() {}

// ToBytes renders the wire representation: [IAC, OpCode].
func (c CommandEvent) ToBytes() []byte {
	return []byte{IAC, c.OpCode}
}

func (c CommandEvent) String() string {
	return "IAC " + commandName(c.OpCode)
}

// NegotiationEvent is a three-byte `IAC <WILL|WONT|DO|DONT> <opt>` sequence
// that was received and recognized.
type NegotiationEvent struct {
	Command byte
	Option  byte
}

func NewNegotiationEvent(command, option byte) NegotiationEvent {
	return NegotiationEvent{Command: command, Option: option}
}

func (NegotiationEvent) isEvent() {}

// ToBytes renders the wire representation: [IAC, Command, Option].
func (n NegotiationEvent) ToBytes() []byte {
	return []byte{IAC, n.Command, n.Option}
}

func (n NegotiationEvent) String() string {
	return "IAC " + commandName(n.Command) + " " + optionName(n.Option)
}

// SubnegotiationEvent is the decoded payload between `IAC SB <opt>` and the
// terminating `IAC SE`, with internal `IAC IAC` sequences already collapsed
// to a single IAC.
type SubnegotiationEvent struct {
	Option byte
	Buffer []byte
}

func NewSubnegotiationEvent(option byte, buffer []byte) SubnegotiationEvent {
	return SubnegotiationEvent{Option: option, Buffer: buffer}
}

func (SubnegotiationEvent) isEvent() {}

// ToBytes renders the wire representation: IAC SB <opt> <escaped payload> IAC SE.
func (s SubnegotiationEvent) ToBytes() []byte {
	out := make([]byte, 0, len(s.Buffer)+5)
	out = append(out, IAC, SB, s.Option)
	out = append(out, EscapeIAC(s.Buffer)...)
	out = append(out, IAC, SE)
	return out
}

func (s SubnegotiationEvent) String() string {
	return "IAC SB " + optionName(s.Option) + " " + strconv.Itoa(len(s.Buffer)) + " bytes IAC SE"
}

// DataReceiveEvent is a run of non-IAC application bytes read from the peer.
type DataReceiveEvent struct {
	Data []byte
}

func NewDataReceiveEvent(data []byte) DataReceiveEvent {
	return DataReceiveEvent{Data: data}
}

func (DataReceiveEvent) isEvent() {}

// DataSendEvent is bytes the caller must transmit to the peer verbatim;
// they're already framed and escaped.
type DataSendEvent struct {
	Data []byte
}

func NewDataSendEvent(data []byte) DataSendEvent {
	return DataSendEvent{Data: data}
}

func (DataSendEvent) isEvent() {}

// DecompressImmediateEvent is the tail of the buffer following a successful
// MCCP2/MCCP3 subnegotiation. The caller must decompress it and feed the
// result back into Parser.Receive; the parser itself never touches
// compression.
type DecompressImmediateEvent struct {
	Data []byte
}

func NewDecompressImmediateEvent(data []byte) DecompressImmediateEvent {
	return DecompressImmediateEvent{Data: data}
}

func (DecompressImmediateEvent) isEvent() {}
