package telnet

// frameKind classifies a slice produced by extractFrames.
type frameKind byte

const (
	frameData frameKind = iota
	frameIac
	frameNeg
	frameSub
)

// frame is one output of the frame extractor: a typed slice into the buffer
// snapshot that was scanned. tail is only populated for a complete
// MCCP2/MCCP3 subnegotiation frame - the bytes left over after `IAC SE`
// that the caller must decompress before they can be parsed.
//
// complete is meaningful only for frameSub: it records whether the state
// machine actually walked through a terminating `IAC SE`, as opposed to
// running out of input mid-subnegotiation. It must never be re-derived by
// inspecting data's trailing bytes - a malformed, still-incomplete
// subnegotiation can coincidentally end in byte values that look like
// IAC,SE without any IAC having actually been seen (spec.md §8 scenario 9).
type frame struct {
	kind     frameKind
	data     []byte
	tail     []byte
	complete bool
}

// extractState is the frame extractor's state machine, carried alongside
// cmdBegin (the start index of the frame currently being accumulated).
type extractState byte

const (
	stNormal extractState = iota
	stIac
	stNeg
	stSub
	stSubOpt
	stSubIac
)

// extractFrames slices buf into an ordered list of frames. It never copies:
// every frame's data/tail is a sub-slice of buf. A subnegotiation that
// hasn't seen its terminating `IAC SE` yet is still emitted (as an
// incomplete frameSub, with tail == nil) so the caller (Parser) can splice
// it back into the front of its buffer and wait for more bytes.
func extractFrames(buf []byte) []frame {
	frames := make([]frame, 0, 4)

	state := stNormal
	cmdBegin := 0
	var subOpt byte

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		switch state {
		case stNormal:
			if b == IAC {
				if cmdBegin < i {
					frames = append(frames, frame{kind: frameData, data: buf[cmdBegin:i]})
				}
				cmdBegin = i
				state = stIac
			}

		case stIac:
			switch {
			case b == IAC:
				// Second consecutive IAC at top level: an escaped literal
				// IAC in the data stream. Ignored at the frame level - it
				// produces no event per spec, and is not forwarded as data.
				// Advance cmdBegin past both bytes so a later data flush
				// never re-includes them.
				cmdBegin = i + 1
				state = stNormal
			case b == GA || b == EOR || b == NOP:
				frames = append(frames, frame{kind: frameIac, data: buf[cmdBegin : i+1]})
				cmdBegin = i + 1
				state = stNormal
			case b == SB:
				state = stSub
			default:
				// WILL | WONT | DO | DONT | anything else treated as a
				// negotiation command.
				state = stNeg
			}

		case stNeg:
			frames = append(frames, frame{kind: frameNeg, data: buf[cmdBegin : i+1]})
			cmdBegin = i + 1
			state = stNormal

		case stSub:
			subOpt = b
			state = stSubOpt

		case stSubOpt:
			if b == IAC {
				state = stSubIac
			}

		case stSubIac:
			switch {
			case b == IAC:
				state = stSubOpt
			case b == SE && (subOpt == MCCP2 || subOpt == MCCP3):
				frames = append(frames, frame{
					kind:     frameSub,
					data:     buf[cmdBegin : i+1],
					tail:     buf[i+1:],
					complete: true,
				})
				return frames
			case b == SE:
				frames = append(frames, frame{kind: frameSub, data: buf[cmdBegin : i+1], complete: true})
				cmdBegin = i + 1
				state = stNormal
			default:
				state = stSubOpt
			}
		}
	}

	if cmdBegin < len(buf) {
		switch state {
		case stSub, stSubOpt, stSubIac:
			// Incomplete subnegotiation: no tail, caller re-buffers it.
			frames = append(frames, frame{kind: frameSub, data: buf[cmdBegin:]})
		default:
			// Covers a trailing lone IAC, retained as literal data - see
			// spec.md §9's open question on this behavior.
			frames = append(frames, frame{kind: frameData, data: buf[cmdBegin:]})
		}
	}

	return frames
}
