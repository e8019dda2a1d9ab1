package handler

import (
	"bytes"
	"errors"
	"testing"

	"desta/internal/adapters/des_provider"
	"desta/internal/core/domain"
	"desta/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCommandHandler_HandlePrintsIdentityAndAlgorithms(t *testing.T) {
	stdout := new(bytes.Buffer)
	sut := ProvideInfoCommandHandler(newTrustedApp(t), des_provider.ProvideDesProvider())
	sut.stdout = stdout

	err := sut.Handle()

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), domain.DefaultTrustedAppUUID)
	assert.Contains(t, stdout.String(), "Max sessions: 16")
	assert.Contains(t, stdout.String(), "ECB  DES_ECB_NOPAD (supported)")
	assert.Contains(t, stdout.String(), "CBC  DES_CBC_NOPAD (supported)")
}

func TestInfoCommandHandler_HandleReportsUnsupportedAlgorithms(t *testing.T) {
	stdout := new(bytes.Buffer)
	provider := new(testutil.MockCryptoProvider)
	provider.On("IsAlgorithmSupported", domain.AlgorithmDesEcbNopad, domain.ElementNone).Return(nil)
	provider.On("IsAlgorithmSupported", domain.AlgorithmDesCbcNopad, domain.ElementNone).Return(errors.New("not supported"))
	sut := ProvideInfoCommandHandler(newTrustedApp(t), provider)
	sut.stdout = stdout

	err := sut.Handle()

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "ECB  DES_ECB_NOPAD (supported)")
	assert.Contains(t, stdout.String(), "CBC  DES_CBC_NOPAD (unsupported)")
	provider.AssertExpectations(t)
}
