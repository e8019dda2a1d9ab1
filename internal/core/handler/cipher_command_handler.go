package handler

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"desta/internal/cli/output"
	"desta/internal/core"
	"desta/internal/core/domain"
	"desta/internal/ports"
)

// CipherRequest carries the encrypt/decrypt flags.
type CipherRequest struct {
	Algorithm  string
	KeyHex     string
	PromptKey  bool
	IVHex      string
	InputPath  string
	Data       string
	HexInput   bool
	OutputPath string
}

type CipherCommandHandler struct {
	client        *core.CipherClient
	fileSystem    ports.FileSystem
	terminalInput ports.TerminalInput
	stdout        io.Writer
}

func ProvideCipherCommandHandler(
	client *core.CipherClient,
	fileSystem ports.FileSystem,
	terminalInput ports.TerminalInput,
) CipherCommandHandler {
	return CipherCommandHandler{
		client:        client,
		fileSystem:    fileSystem,
		terminalInput: terminalInput,
		stdout:        os.Stdout,
	}
}

func (h *CipherCommandHandler) HandleEncrypt(request CipherRequest) error {
	return h.handle(request, domain.ModeEncode)
}

func (h *CipherCommandHandler) HandleDecrypt(request CipherRequest) error {
	return h.handle(request, domain.ModeDecode)
}

func (h *CipherCommandHandler) handle(request CipherRequest, mode domain.Mode) error {
	algorithm, err := domain.ParseAlgorithmName(request.Algorithm)
	if err != nil {
		return err
	}
	if algorithm == domain.AlgorithmECB && request.IVHex != "" {
		output.PrintWarning("the IV is ignored in ECB mode")
	}

	key, err := h.readKey(request)
	if err != nil {
		return err
	}
	iv, err := readIV(request.IVHex)
	if err != nil {
		return err
	}
	input, err := h.readInput(request)
	if err != nil {
		return err
	}

	result, err := h.run(algorithm, mode, key, iv, input)
	if err != nil {
		return err
	}

	return h.writeOutput(request.OutputPath, result)
}

func (h *CipherCommandHandler) run(algorithm domain.Algorithm, mode domain.Mode, key, iv, input []byte) ([]byte, error) {
	session, err := h.client.OpenSession()
	if err != nil {
		return nil, err
	}
	defer session.Close()

	if err := session.Prepare(algorithm, domain.KeySizeBit64, mode); err != nil {
		return nil, err
	}
	if err := session.SetKey(key); err != nil {
		return nil, err
	}
	if err := session.SetIV(iv); err != nil {
		return nil, err
	}
	return session.Cipher(input)
}

func (h *CipherCommandHandler) readKey(request CipherRequest) ([]byte, error) {
	keyHex := request.KeyHex
	if request.PromptKey {
		if keyHex != "" {
			return nil, fmt.Errorf("use either --key or --prompt-key")
		}
		if !h.terminalInput.IsTerminal() {
			return nil, fmt.Errorf("cannot read key: no terminal available")
		}
		value, err := h.terminalInput.ReadSecret(fmt.Sprintf("Enter %s key (hex): ", output.Bold("DES")))
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
		keyHex = value
	}
	if keyHex == "" {
		return nil, fmt.Errorf("a key is required: use --key or --prompt-key")
	}

	key, err := hex.DecodeString(strings.TrimSpace(keyHex))
	if err != nil {
		return nil, fmt.Errorf("key is not valid hex: %w", err)
	}
	return key, nil
}

func readIV(ivHex string) ([]byte, error) {
	if ivHex == "" {
		return make([]byte, domain.DesBlockSize), nil
	}
	iv, err := hex.DecodeString(strings.TrimSpace(ivHex))
	if err != nil {
		return nil, fmt.Errorf("IV is not valid hex: %w", err)
	}
	return iv, nil
}

func (h *CipherCommandHandler) readInput(request CipherRequest) ([]byte, error) {
	switch {
	case request.Data != "" && request.InputPath != "":
		return nil, fmt.Errorf("use either --data or --in")
	case request.Data != "":
		input, err := hex.DecodeString(strings.TrimSpace(request.Data))
		if err != nil {
			return nil, fmt.Errorf("data is not valid hex: %w", err)
		}
		return input, nil
	case request.InputPath != "":
		content, err := h.fileSystem.ReadFile(request.InputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if !request.HexInput {
			return content, nil
		}
		input, err := hex.DecodeString(strings.TrimSpace(string(content)))
		if err != nil {
			return nil, fmt.Errorf("input file %s is not valid hex: %w", request.InputPath, err)
		}
		return input, nil
	default:
		return nil, fmt.Errorf("no input: use --data or --in")
	}
}

func (h *CipherCommandHandler) writeOutput(path string, result []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(h.stdout, hex.EncodeToString(result))
		return err
	}
	if err := h.fileSystem.WriteFile(path, result, ports.ReadAllWriteOwner); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	output.PrintSuccess(fmt.Sprintf("Wrote %d %s to %s", len(result), output.Plural(len(result), "byte", "bytes"), path))
	return nil
}
