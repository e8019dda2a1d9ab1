package ta

import (
	"testing"

	"desta/internal/core/domain"
	"desta/internal/testutil"

	"github.com/stretchr/testify/require"
)

func prepareParams(algorithm domain.Algorithm, keySize domain.KeySize, mode domain.Mode) *domain.Parameters {
	return rawPrepareParams(uint32(algorithm), uint32(keySize), uint32(mode))
}

func rawPrepareParams(algorithm, keySize, mode uint32) *domain.Parameters {
	return &domain.Parameters{
		domain.NewValueInput(algorithm, 0),
		domain.NewValueInput(keySize, 0),
		domain.NewValueInput(mode, 0),
	}
}

func bufferParams(buffer []byte) *domain.Parameters {
	return &domain.Parameters{domain.NewMemrefInput(buffer)}
}

func cipherParams(input []byte, output []byte) *domain.Parameters {
	return &domain.Parameters{domain.NewMemrefInput(input), domain.NewMemrefOutput(output)}
}

// readySession returns a session holding the given mocks as if Prepare had succeeded.
func readySession(operation *testutil.MockCipherOperation, keyContainer *testutil.MockKeyContainer) *CipherSession {
	session := NewCipherSession()
	session.keySize = 8
	session.operation = operation
	session.keyContainer = keyContainer
	return session
}

func updatedSize(t *testing.T, params *domain.Parameters, index int) int {
	t.Helper()
	memref, err := params[index].AsMemref()
	require.NoError(t, err)
	return memref.UpdatedSize()
}
