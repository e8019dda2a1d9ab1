package handler

import (
	"bytes"
	"testing"

	"desta/internal/adapters/des_provider"
	"desta/internal/core"
	"desta/internal/core/domain"
	"desta/internal/core/ta"
	"desta/internal/testutil"

	"github.com/stretchr/testify/require"
)

const (
	testKeyHex       = "133457799bbcdff1"
	testPlainHex     = "0123456789abcdef"
	testCipherEcbHex = "85e813540f0ab405"
)

type cipherHarness struct {
	sut           CipherCommandHandler
	fileSystem    *testutil.SandboxFileSystem
	terminalInput *testutil.MockTerminalInput
	trustedApp    *ta.TrustedApplication
	stdout        *bytes.Buffer
}

func newTrustedApp(t *testing.T) *ta.TrustedApplication {
	t.Helper()
	config := domain.CreateDefaultConfig()
	trustedApp, err := ta.ProvideTrustedApplication(&config, ta.ProvideCommandDispatcher(des_provider.ProvideDesProvider(), nil), nil)
	require.NoError(t, err)
	return trustedApp
}

func newCipherHarness(t *testing.T) *cipherHarness {
	t.Helper()
	trustedApp := newTrustedApp(t)
	fileSystem := testutil.NewSandboxFileSystem(t)
	terminalInput := new(testutil.MockTerminalInput)
	stdout := new(bytes.Buffer)
	sut := ProvideCipherCommandHandler(core.ProvideCipherClient(trustedApp, nil), fileSystem, terminalInput)
	sut.stdout = stdout
	return &cipherHarness{
		sut:           sut,
		fileSystem:    fileSystem,
		terminalInput: terminalInput,
		trustedApp:    trustedApp,
		stdout:        stdout,
	}
}
