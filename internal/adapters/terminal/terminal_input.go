package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"desta/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads keys from stdin using golang.org/x/term. Prompts go to
// stderr so that hex cipher output on stdout can be piped.
type TerminalInput struct {
	stdin  int
	prompt io.Writer
}

func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{
		stdin:  int(os.Stdin.Fd()),
		prompt: os.Stderr,
	}
}

func (t *TerminalInput) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(t.prompt, prompt)
	secret, err := term.ReadPassword(t.stdin)
	fmt.Fprintln(t.prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(t.stdin)
}
