package des_provider

import (
	"fmt"

	"desta/internal/core/domain"
	"desta/internal/ports"
)

const desKeyBits = 64

// Compile-time interface compliance check
var _ ports.CryptoProvider = (*DesProvider)(nil)

// DesProvider implements the DES ECB and CBC engines on top of crypto/des.
type DesProvider struct{}

func ProvideDesProvider() *DesProvider {
	return &DesProvider{}
}

func (p *DesProvider) IsAlgorithmSupported(algorithm domain.AlgorithmID, element domain.ElementID) error {
	if element != domain.ElementNone {
		return fmt.Errorf("%w: element %d", ErrNotSupported, element)
	}
	switch algorithm {
	case domain.AlgorithmDesEcbNopad, domain.AlgorithmDesCbcNopad:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrNotSupported, algorithm)
	}
}

func (p *DesProvider) AllocateOperation(
	algorithm domain.AlgorithmID,
	mode domain.OperationMode,
	maxKeyBits int,
) (ports.CipherOperation, error) {
	if err := p.IsAlgorithmSupported(algorithm, domain.ElementNone); err != nil {
		return nil, err
	}
	if mode != domain.OperationModeEncrypt && mode != domain.OperationModeDecrypt {
		return nil, fmt.Errorf("%w: operation mode %d", ErrNotSupported, mode)
	}
	if maxKeyBits != desKeyBits {
		return nil, fmt.Errorf("%w: %d bit key for %s", ErrNotSupported, maxKeyBits, algorithm)
	}
	return &Operation{algorithm: algorithm, mode: mode}, nil
}

func (p *DesProvider) AllocateKeyContainer(objectType domain.ObjectType, maxKeyBits int) (ports.KeyContainer, error) {
	if objectType != domain.ObjectTypeDes {
		return nil, fmt.Errorf("%w: object type %#x", ErrNotSupported, uint32(objectType))
	}
	if maxKeyBits != desKeyBits {
		return nil, fmt.Errorf("%w: %d bit DES key", ErrNotSupported, maxKeyBits)
	}
	return &KeyContainer{maxKeyBits: maxKeyBits}, nil
}
