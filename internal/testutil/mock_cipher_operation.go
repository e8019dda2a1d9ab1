package testutil

import (
	"desta/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.CipherOperation = (*MockCipherOperation)(nil)

// MockCipherOperation provides a testify mock for ports.CipherOperation
type MockCipherOperation struct {
	mock.Mock
}

func (m *MockCipherOperation) SetKey(key ports.KeyContainer) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCipherOperation) Init(iv []byte) {
	m.Called(iv)
}

func (m *MockCipherOperation) Update(input []byte, output []byte) (int, error) {
	args := m.Called(input, output)
	return args.Int(0), args.Error(1)
}

func (m *MockCipherOperation) Release() {
	m.Called()
}
