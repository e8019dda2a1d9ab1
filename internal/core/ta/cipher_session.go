package ta

import "desta/internal/ports"

// CipherSession is the state of one open connection. The operation and the key
// container are either both nil or both allocated for the same key length.
type CipherSession struct {
	keySize      int
	operation    ports.CipherOperation
	keyContainer ports.KeyContainer
}

func NewCipherSession() *CipherSession {
	return &CipherSession{}
}

// KeySize returns the negotiated key length in bytes, or 0 if unconfigured.
func (s *CipherSession) KeySize() int {
	return s.keySize
}

// IsReady reports whether Prepare has succeeded on this session.
func (s *CipherSession) IsReady() bool {
	return s.keySize > 0 && s.operation != nil && s.keyContainer != nil
}

// install swaps in a fully bound handle pair and releases the previous one.
func (s *CipherSession) install(keySize int, operation ports.CipherOperation, keyContainer ports.KeyContainer) {
	s.Close()
	s.keySize = keySize
	s.operation = operation
	s.keyContainer = keyContainer
}

// Close releases the session's handles and returns it to the unconfigured state.
func (s *CipherSession) Close() {
	if s.operation != nil {
		s.operation.Release()
	}
	if s.keyContainer != nil {
		s.keyContainer.Release()
	}
	s.keySize = 0
	s.operation = nil
	s.keyContainer = nil
}
