package telnet

import (
	"context"
	"log/slog"
)

// SetLogger attaches a structured logger the Parser will use for
// diagnostics - dropped subnegotiations, refused negotiations, and
// unterminated subnegotiations retained across Receive calls. None of this
// changes parsing outcomes (per spec.md §7, the parser never fails); it's
// purely an observability aid, following the same post-construction
// attachment style as the teacher's Register*Hook methods. A nil logger
// (the default) disables all of it.
func (p *Parser) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

func (p *Parser) logDroppedSubnegotiation(option byte, payloadLen int) {
	if p.logger == nil {
		return
	}
	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "dropped subnegotiation for inactive option or empty payload",
		slog.String("option", optionName(option)),
		slog.Int("payloadLen", payloadLen),
	)
}

func (p *Parser) logBufferedSubnegotiation(option byte, bufferedLen int) {
	if p.logger == nil {
		return
	}
	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "subnegotiation incomplete, buffering",
		slog.String("option", optionName(option)),
		slog.Int("bufferedLen", bufferedLen),
	)
}

func (p *Parser) logRefusedNegotiation(command, option byte) {
	if p.logger == nil {
		return
	}
	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "refused negotiation for unsupported option",
		slog.String("command", commandName(command)),
		slog.String("option", optionName(option)),
	)
}
