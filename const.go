package telnet

import "strconv"

// Command codes as per RFC 854. IAC introduces every command; the byte
// following it is one of these.
const (
	SE   byte = 240 // Subnegotiation End
	NOP  byte = 241 // No-op
	EOR  byte = 239 // End Of Record (RFC 885)
	GA   byte = 249 // Go Ahead
	SB   byte = 250 // Subnegotiation Begin
	WILL byte = 251
	WONT byte = 252
	DO   byte = 253
	DONT byte = 254
	IAC  byte = 255 // Interpret As Command

	// IS and SEND are not commands in their own right - they're the first
	// byte of several options' subnegotiations (TTYPE, NAWS-adjacent, ...).
	// The parser core never branches on them; they're named here purely for
	// caller convenience when building subnegotiation payloads.
	IS   byte = 0
	SEND byte = 1
)

var commandNames = map[byte]string{
	SE:   "SE",
	NOP:  "NOP",
	EOR:  "EOR",
	GA:   "GA",
	SB:   "SB",
	WILL: "WILL",
	WONT: "WONT",
	DO:   "DO",
	DONT: "DONT",
	IAC:  "IAC",
}

// Option codes: those from the IANA telnet options registry
// (https://www.iana.org/assignments/telnet-options/telnet-options.xhtml)
// listed below, plus the MUD-community codes MSSP, MCCP2, MCCP3, ZMP and
// GMCP, which IANA does not assign.
const (
	BINARY         byte = 0
	ECHO           byte = 1
	RCP            byte = 2
	SGA            byte = 3
	NAMS           byte = 4
	STATUS         byte = 5
	TM             byte = 6
	RCTE           byte = 7
	NAOL           byte = 8
	NAOP           byte = 9
	NAOCRD         byte = 10
	NAOHTS         byte = 11
	NAOHTD         byte = 12
	NAOFFD         byte = 13
	NAOVTS         byte = 14
	NAOVTD         byte = 15
	NAOLFD         byte = 16
	XASCII         byte = 17
	LOGOUT         byte = 18
	BM             byte = 19
	DET            byte = 20
	SUPDUP         byte = 21
	SUPDUPOUTPUT   byte = 22
	SNDLOC         byte = 23
	TTYPE          byte = 24
	EOROPT         byte = 25 // End Of Record option (distinct from the EOR command byte)
	TUID           byte = 26
	OUTMRK         byte = 27
	TTYLOC         byte = 28
	REGIME3270     byte = 29
	X3PAD          byte = 30
	NAWS           byte = 31
	TSPEED         byte = 32
	LFLOW          byte = 33
	LINEMODE       byte = 34
	XDISPLOC       byte = 35
	ENVIRON        byte = 36
	AUTHENTICATION byte = 37
	ENCRYPT        byte = 38
	NEWENVIRON     byte = 39
	MSSP           byte = 70
	MCCP2          byte = 86
	MCCP3          byte = 87
	ZMP            byte = 93
	GMCP           byte = 201
	EXOPL          byte = 255
)

var optionNames = map[byte]string{
	BINARY:         "BINARY",
	ECHO:           "ECHO",
	RCP:            "RCP",
	SGA:            "SUPPRESS-GO-AHEAD",
	NAMS:           "NAMS",
	STATUS:         "STATUS",
	TM:             "TIMING-MARK",
	RCTE:           "RCTE",
	NAOL:           "NAOL",
	NAOP:           "NAOP",
	NAOCRD:         "NAOCRD",
	NAOHTS:         "NAOHTS",
	NAOHTD:         "NAOHTD",
	NAOFFD:         "NAOFFD",
	NAOVTS:         "NAOVTS",
	NAOVTD:         "NAOVTD",
	NAOLFD:         "NAOLFD",
	XASCII:         "XASCII",
	LOGOUT:         "LOGOUT",
	BM:             "BM",
	DET:            "DET",
	SUPDUP:         "SUPDUP",
	SUPDUPOUTPUT:   "SUPDUPOUTPUT",
	SNDLOC:         "SNDLOC",
	TTYPE:          "TERMINAL-TYPE",
	EOROPT:         "END-OF-RECORD",
	TUID:           "TUID",
	OUTMRK:         "OUTMRK",
	TTYLOC:         "TTYLOC",
	REGIME3270:     "3270-REGIME",
	X3PAD:          "X.3-PAD",
	NAWS:           "NAWS",
	TSPEED:         "TERMINAL-SPEED",
	LFLOW:          "TOGGLE-FLOW-CONTROL",
	LINEMODE:       "LINEMODE",
	XDISPLOC:       "X-DISPLAY-LOCATION",
	ENVIRON:        "ENVIRON",
	AUTHENTICATION: "AUTHENTICATION",
	ENCRYPT:        "ENCRYPT",
	NEWENVIRON:     "NEW-ENVIRON",
	MSSP:           "MSSP",
	MCCP2:          "MCCP2",
	MCCP3:          "MCCP3",
	ZMP:            "ZMP",
	GMCP:           "GMCP",
	EXOPL:          "EXOPL",
}

// optionName returns a legible name for an option code, falling back to the
// numeric code for anything not in the table above.
func optionName(opt byte) string {
	if name, ok := optionNames[opt]; ok {
		return name
	}
	return strconv.Itoa(int(opt))
}

// commandName returns a legible name for a command code, falling back to
// the numeric code for anything unrecognized.
func commandName(cmd byte) string {
	if name, ok := commandNames[cmd]; ok {
		return name
	}
	return strconv.Itoa(int(cmd))
}
