package ta

import (
	"desta/internal/core/domain"
	"desta/internal/ports"
)

type prepareRequest struct {
	algorithm domain.AlgorithmID
	mode      domain.OperationMode
	keyLength int
}

// decodePrepare validates all three selectors before anything is allocated.
func decodePrepare(params *domain.Parameters) (prepareRequest, error) {
	algorithmValue, err := params[0].AsValue()
	if err != nil {
		return prepareRequest{}, err
	}
	keySizeValue, err := params[1].AsValue()
	if err != nil {
		return prepareRequest{}, err
	}
	modeValue, err := params[2].AsValue()
	if err != nil {
		return prepareRequest{}, err
	}

	algorithm, err := domain.ParseAlgorithm(algorithmValue.A)
	if err != nil {
		return prepareRequest{}, err
	}
	engineAlgorithm, err := algorithm.EngineAlgorithm()
	if err != nil {
		return prepareRequest{}, err
	}
	keySize, err := domain.ParseKeySize(keySizeValue.A)
	if err != nil {
		return prepareRequest{}, err
	}
	keyLength, err := keySize.DesKeyLength()
	if err != nil {
		return prepareRequest{}, err
	}
	mode, err := domain.ParseMode(modeValue.A)
	if err != nil {
		return prepareRequest{}, err
	}

	return prepareRequest{
		algorithm: engineAlgorithm,
		mode:      mode.OperationMode(),
		keyLength: keyLength,
	}, nil
}

// prepare allocates a cipher engine and a key container, seeds the container
// with an all-zero key and binds it. The session is only updated once every
// step has succeeded.
func (d *CommandDispatcher) prepare(session *CipherSession, params *domain.Parameters) error {
	request, err := decodePrepare(params)
	if err != nil {
		d.log.Warnf("invalid prepare parameters: %v", err)
		return err
	}
	keyBits := request.keyLength * 8

	if err := d.provider.IsAlgorithmSupported(request.algorithm, domain.ElementNone); err != nil {
		d.log.Warnf("algorithm %s not supported: %v", request.algorithm, err)
		return err
	}

	operation, err := d.provider.AllocateOperation(request.algorithm, request.mode, keyBits)
	if err != nil {
		d.log.Errorf("failed to allocate %s operation: %v", request.algorithm, err)
		return err
	}
	keyContainer, err := d.provider.AllocateKeyContainer(domain.ObjectTypeDes, keyBits)
	if err != nil {
		d.log.Errorf("failed to allocate key container: %v", err)
		operation.Release()
		return err
	}
	if err := bindKey(operation, keyContainer, make([]byte, request.keyLength)); err != nil {
		d.log.Errorf("failed to bind default key: %v", err)
		operation.Release()
		keyContainer.Release()
		return err
	}

	session.install(request.keyLength, operation, keyContainer)
	d.log.Debugf("prepared %s %s with %d bit key", request.algorithm, request.mode, keyBits)
	return nil
}

func bindKey(operation ports.CipherOperation, keyContainer ports.KeyContainer, key []byte) error {
	if err := keyContainer.Populate(key); err != nil {
		return err
	}
	return operation.SetKey(keyContainer)
}
