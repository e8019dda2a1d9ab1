package ta

import (
	"fmt"

	"desta/internal/core/domain"
	"desta/internal/ports"

	"github.com/pion/logging"
)

// CommandDispatcher routes decoded commands to their handlers.
type CommandDispatcher struct {
	provider ports.CryptoProvider
	log      logging.LeveledLogger
}

func ProvideCommandDispatcher(provider ports.CryptoProvider, loggerFactory logging.LoggerFactory) *CommandDispatcher {
	return &CommandDispatcher{
		provider: provider,
		log:      NewLogger(loggerFactory, "ta-command"),
	}
}

// Invoke decodes commandID and runs the matching handler against session.
// Unknown identifiers fail with ErrBadParameters before the session is touched.
func (d *CommandDispatcher) Invoke(session *CipherSession, commandID uint32, params *domain.Parameters) error {
	command, err := domain.ParseCommand(commandID)
	if err != nil {
		d.log.Warnf("rejected command: %v", err)
		return err
	}
	if params == nil {
		params = &domain.Parameters{}
	}
	d.log.Tracef("invoke %s", command)

	switch command {
	case domain.CommandPrepare:
		return d.prepare(session, params)
	case domain.CommandSetKey:
		return d.setKey(session, params)
	case domain.CommandSetIV:
		return d.setIV(session, params)
	case domain.CommandCipher:
		return d.cipher(session, params)
	default:
		return fmt.Errorf("%w: unhandled command %s", domain.ErrBadParameters, command)
	}
}

func errNotPrepared(command domain.Command) error {
	return fmt.Errorf("%w: %s requires a prepared session", domain.ErrBadParameters, command)
}
