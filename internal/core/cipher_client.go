package core

import (
	"fmt"

	"desta/internal/core/domain"
	"desta/internal/core/ta"

	"github.com/pion/logging"
)

// CipherClient is the host side of the DES trusted application. It encodes
// typed requests into command parameters.
type CipherClient struct {
	trustedApp *ta.TrustedApplication
	log        logging.LeveledLogger
}

func ProvideCipherClient(trustedApp *ta.TrustedApplication, loggerFactory logging.LoggerFactory) *CipherClient {
	return &CipherClient{
		trustedApp: trustedApp,
		log:        ta.NewLogger(loggerFactory, "client"),
	}
}

// OpenSession opens a new session with the trusted application.
func (c *CipherClient) OpenSession() (*ClientSession, error) {
	id, err := c.trustedApp.OpenSession(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open session with %s: %w", c.trustedApp.UUID(), err)
	}
	c.log.Debugf("opened session %d", id)
	return &ClientSession{trustedApp: c.trustedApp, id: id, log: c.log}, nil
}

// ClientSession is an open session. It is not safe for concurrent use.
type ClientSession struct {
	trustedApp *ta.TrustedApplication
	id         ta.SessionID
	log        logging.LeveledLogger
}

func (s *ClientSession) ID() ta.SessionID {
	return s.id
}

func (s *ClientSession) Prepare(algorithm domain.Algorithm, keySize domain.KeySize, mode domain.Mode) error {
	params := &domain.Parameters{
		domain.NewValueInput(uint32(algorithm), 0),
		domain.NewValueInput(uint32(keySize), 0),
		domain.NewValueInput(uint32(mode), 0),
	}
	return s.invoke(domain.CommandPrepare, params)
}

func (s *ClientSession) SetKey(key []byte) error {
	return s.invoke(domain.CommandSetKey, &domain.Parameters{domain.NewMemrefInput(key)})
}

func (s *ClientSession) SetIV(iv []byte) error {
	return s.invoke(domain.CommandSetIV, &domain.Parameters{domain.NewMemrefInput(iv)})
}

// Cipher transforms input and returns the bytes the trusted application produced.
func (s *ClientSession) Cipher(input []byte) ([]byte, error) {
	output := make([]byte, len(input))
	params := &domain.Parameters{domain.NewMemrefInput(input), domain.NewMemrefOutput(output)}
	if err := s.invoke(domain.CommandCipher, params); err != nil {
		return nil, err
	}
	memref, err := params[1].AsMemref()
	if err != nil {
		return nil, err
	}
	return output[:memref.UpdatedSize()], nil
}

func (s *ClientSession) Close() error {
	s.log.Debugf("closing session %d", s.id)
	return s.trustedApp.CloseSession(s.id)
}

func (s *ClientSession) invoke(command domain.Command, params *domain.Parameters) error {
	if err := s.trustedApp.InvokeCommand(s.id, uint32(command), params); err != nil {
		return fmt.Errorf("%s failed: %w", command, err)
	}
	return nil
}
