package testutil

import (
	"desta/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.KeyContainer = (*MockKeyContainer)(nil)

// MockKeyContainer provides a testify mock for ports.KeyContainer
type MockKeyContainer struct {
	mock.Mock
}

func (m *MockKeyContainer) Reset() {
	m.Called()
}

func (m *MockKeyContainer) Populate(secret []byte) error {
	args := m.Called(secret)
	return args.Error(0)
}

func (m *MockKeyContainer) Release() {
	m.Called()
}
