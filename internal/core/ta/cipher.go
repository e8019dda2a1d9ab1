package ta

import (
	"fmt"

	"desta/internal/core/domain"
)

// cipher runs the input buffer through the engine into the output buffer and
// reports the produced length through the output parameter.
func (d *CommandDispatcher) cipher(session *CipherSession, params *domain.Parameters) error {
	input, err := params[0].AsMemref()
	if err != nil {
		return err
	}
	output, err := params[1].AsMemref()
	if err != nil {
		return err
	}
	if !session.IsReady() {
		d.log.Warn("cipher on unprepared session")
		return errNotPrepared(domain.CommandCipher)
	}
	if len(output.Buffer()) < len(input.Buffer()) {
		d.log.Warnf("output buffer too small: need %d, got %d", len(input.Buffer()), len(output.Buffer()))
		return fmt.Errorf(
			"%w: output buffer holds %d bytes, input is %d",
			domain.ErrBadParameters,
			len(output.Buffer()),
			len(input.Buffer()),
		)
	}

	d.log.Tracef("updating cipher with %d bytes", len(input.Buffer()))
	written, err := session.operation.Update(input.Buffer(), output.Buffer())
	if err != nil {
		d.log.Errorf("cipher update failed: %v", err)
		return err
	}
	output.SetUpdatedSize(written)
	return nil
}
