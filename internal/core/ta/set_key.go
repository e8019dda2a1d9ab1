package ta

import (
	"fmt"

	"desta/internal/core/domain"
)

// setKey replaces the key material of a prepared session. The key length must
// match the negotiated key size exactly.
func (d *CommandDispatcher) setKey(session *CipherSession, params *domain.Parameters) error {
	memref, err := params[0].AsMemref()
	if err != nil {
		return err
	}
	if !session.IsReady() {
		d.log.Warn("set key on unprepared session")
		return errNotPrepared(domain.CommandSetKey)
	}
	key := memref.Buffer()
	if len(key) != session.keySize {
		d.log.Warnf("invalid key size: expected %d, got %d", session.keySize, len(key))
		return fmt.Errorf("%w: key must be %d bytes, got %d", domain.ErrBadParameters, session.keySize, len(key))
	}

	session.keyContainer.Reset()
	return bindKey(session.operation, session.keyContainer, key)
}
