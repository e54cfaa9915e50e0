package telnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessNegotiation_WillUnsupportedOption(t *testing.T) {
	p := NewParser()
	events := p.processNegotiation(WILL, ECHO)
	require.Len(t, events, 1)
	send, ok := events[0].(DataSendEvent)
	require.True(t, ok)
	assert.Equal(t, []byte{IAC, DONT, ECHO}, send.Data)
}

func TestProcessNegotiation_WillSupportedOptionActivates(t *testing.T) {
	p := NewParser()
	p.Options().SupportRemote(NAWS)

	events := p.processNegotiation(WILL, NAWS)
	require.Len(t, events, 2)
	assert.Equal(t, DataSendEvent{Data: []byte{IAC, DO, NAWS}}, events[0])
	assert.Equal(t, NegotiationEvent{Command: WILL, Option: NAWS}, events[1])

	entry := p.Options().GetOption(NAWS)
	assert.True(t, entry.RemoteState)
}

func TestProcessNegotiation_WillAlreadyActiveIsNoop(t *testing.T) {
	p := NewParser()
	p.Options().SetOption(NAWS, CompatibilityEntry{Remote: true, RemoteState: true})

	events := p.processNegotiation(WILL, NAWS)
	assert.Empty(t, events)
}

func TestProcessNegotiation_WontWhenActive(t *testing.T) {
	p := NewParser()
	p.Options().SetOption(NAWS, CompatibilityEntry{Remote: true, RemoteState: true})

	events := p.processNegotiation(WONT, NAWS)
	require.Len(t, events, 2)
	assert.Equal(t, DataSendEvent{Data: []byte{IAC, DONT, NAWS}}, events[0])
	assert.Equal(t, NegotiationEvent{Command: WONT, Option: NAWS}, events[1])
	assert.False(t, p.Options().GetOption(NAWS).RemoteState)
}

func TestProcessNegotiation_WontWhenAlreadyInactiveStillConfirms(t *testing.T) {
	p := NewParser()
	events := p.processNegotiation(WONT, NAWS)
	require.Len(t, events, 1)
	assert.Equal(t, NegotiationEvent{Command: WONT, Option: NAWS}, events[0])
}

// Scenario 4: DO on a locally supported, currently inactive option.
func TestProcessNegotiation_DoOnLocallySupportedOption(t *testing.T) {
	p := NewParser()
	p.Options().SupportLocal(GMCP)

	events := p.processNegotiation(DO, GMCP)
	require.Len(t, events, 2)
	assert.Equal(t, DataSendEvent{Data: []byte{IAC, WILL, GMCP}}, events[0])
	assert.Equal(t, NegotiationEvent{Command: DO, Option: GMCP}, events[1])

	entry := p.Options().GetOption(GMCP)
	assert.Equal(t, CompatibilityEntry{Local: true, LocalState: true, RemoteState: true}, entry)
}

func TestProcessNegotiation_DoUnsupportedOptionRefuses(t *testing.T) {
	p := NewParser()
	events := p.processNegotiation(DO, ECHO)
	require.Len(t, events, 1)
	send, ok := events[0].(DataSendEvent)
	require.True(t, ok)
	assert.Equal(t, []byte{IAC, WONT, ECHO}, send.Data)
}

func TestProcessNegotiation_DoAlreadyActiveIsNoop(t *testing.T) {
	p := NewParser()
	p.Options().SetOption(GMCP, CompatibilityEntry{Local: true, LocalState: true})

	events := p.processNegotiation(DO, GMCP)
	assert.Empty(t, events)
}

func TestProcessNegotiation_DontWhenActive(t *testing.T) {
	p := NewParser()
	p.Options().SetOption(GMCP, CompatibilityEntry{Local: true, LocalState: true})

	events := p.processNegotiation(DONT, GMCP)
	require.Len(t, events, 2)
	assert.Equal(t, DataSendEvent{Data: []byte{IAC, WONT, GMCP}}, events[0])
	assert.False(t, p.Options().GetOption(GMCP).LocalState)
}

func TestProcessNegotiation_DontWhenAlreadyInactiveStillConfirms(t *testing.T) {
	p := NewParser()
	events := p.processNegotiation(DONT, GMCP)
	require.Len(t, events, 1)
	assert.Equal(t, NegotiationEvent{Command: DONT, Option: GMCP}, events[0])
}

// Universal invariant 4: for each command, with GMCP either wholly
// unsupported or supported both locally and remotely, *_state implies its
// corresponding support flag afterward. A DO on an option supported only
// locally sets RemoteState without Remote (see
// TestProcessNegotiation_DoOnLocallySupportedOption), so that case is not
// part of this check.
func TestPropertyNegotiation_StateImpliesSupport(t *testing.T) {
	commands := []byte{WILL, WONT, DO, DONT}
	for _, cmd := range commands {
		for _, supported := range []bool{false, true} {
			p := NewParser()
			if supported {
				p.Options().SupportLocal(GMCP)
				p.Options().SupportRemote(GMCP)
			}
			p.processNegotiation(cmd, GMCP)

			entry := p.Options().GetOption(GMCP)
			if entry.LocalState {
				assert.True(t, entry.Local)
			}
			if entry.RemoteState {
				assert.True(t, entry.Remote)
			}
		}
	}
}
