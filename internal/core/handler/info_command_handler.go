package handler

import (
	"fmt"
	"io"
	"os"

	"desta/internal/cli/output"
	"desta/internal/core/domain"
	"desta/internal/core/ta"
	"desta/internal/ports"
)

type InfoCommandHandler struct {
	trustedApp *ta.TrustedApplication
	provider   ports.CryptoProvider
	stdout     io.Writer
}

func ProvideInfoCommandHandler(
	trustedApp *ta.TrustedApplication,
	provider ports.CryptoProvider,
) InfoCommandHandler {
	return InfoCommandHandler{
		trustedApp: trustedApp,
		provider:   provider,
		stdout:     os.Stdout,
	}
}

func (h *InfoCommandHandler) Handle() error {
	fmt.Fprintln(h.stdout, output.Header("Trusted application"))
	fmt.Fprintf(h.stdout, "  %s %s\n", output.Bold("UUID:        "), h.trustedApp.UUID())
	fmt.Fprintf(h.stdout, "  %s %s\n", output.Bold("Name:        "), h.trustedApp.Name())
	fmt.Fprintf(h.stdout, "  %s %d\n", output.Bold("Max sessions:"), h.trustedApp.MaxSessions())

	fmt.Fprintln(h.stdout)
	fmt.Fprintln(h.stdout, output.Header("Algorithms"))
	for _, algorithm := range []domain.Algorithm{domain.AlgorithmECB, domain.AlgorithmCBC} {
		engineAlgorithm, err := algorithm.EngineAlgorithm()
		if err != nil {
			return err
		}
		status := output.Success("supported")
		if err := h.provider.IsAlgorithmSupported(engineAlgorithm, domain.ElementNone); err != nil {
			status = output.Dim("unsupported")
		}
		fmt.Fprintf(h.stdout, "  %s %-4s %s (%s)\n", output.SymbolBullet, algorithm, engineAlgorithm, status)
	}
	return nil
}
