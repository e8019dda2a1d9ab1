package ta

import (
	"fmt"

	"desta/internal/core/domain"
)

// setIV restarts the engine's chain. The size check applies to ECB as well,
// even though ECB ignores the IV contents.
func (d *CommandDispatcher) setIV(session *CipherSession, params *domain.Parameters) error {
	memref, err := params[0].AsMemref()
	if err != nil {
		return err
	}
	if !session.IsReady() {
		d.log.Warn("set iv on unprepared session")
		return errNotPrepared(domain.CommandSetIV)
	}
	iv := memref.Buffer()
	if len(iv) != domain.DesBlockSize {
		d.log.Warnf("invalid IV size: expected %d, got %d", domain.DesBlockSize, len(iv))
		return fmt.Errorf("%w: iv must be %d bytes, got %d", domain.ErrBadParameters, domain.DesBlockSize, len(iv))
	}

	session.operation.Init(iv)
	d.log.Trace("IV reset")
	return nil
}
