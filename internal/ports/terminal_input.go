package ports

// TerminalInput reads key material typed by the user.
type TerminalInput interface {
	// ReadSecret prints prompt and reads one line without echo. Surrounding
	// whitespace is removed so a pasted hex key with a trailing newline decodes.
	ReadSecret(prompt string) (string, error)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
