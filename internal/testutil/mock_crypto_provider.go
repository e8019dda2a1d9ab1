package testutil

import (
	"desta/internal/core/domain"
	"desta/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.CryptoProvider = (*MockCryptoProvider)(nil)

// MockCryptoProvider provides a testify mock for ports.CryptoProvider
type MockCryptoProvider struct {
	mock.Mock
}

func (m *MockCryptoProvider) IsAlgorithmSupported(algorithm domain.AlgorithmID, element domain.ElementID) error {
	args := m.Called(algorithm, element)
	return args.Error(0)
}

func (m *MockCryptoProvider) AllocateOperation(
	algorithm domain.AlgorithmID,
	mode domain.OperationMode,
	maxKeyBits int,
) (ports.CipherOperation, error) {
	args := m.Called(algorithm, mode, maxKeyBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.CipherOperation), args.Error(1)
}

func (m *MockCryptoProvider) AllocateKeyContainer(objectType domain.ObjectType, maxKeyBits int) (ports.KeyContainer, error) {
	args := m.Called(objectType, maxKeyBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.KeyContainer), args.Error(1)
}
