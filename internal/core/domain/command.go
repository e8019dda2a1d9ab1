package domain

import "fmt"

// Command is the wire identifier of a trusted application command.
type Command uint32

const (
	CommandPrepare Command = iota
	CommandSetKey
	CommandSetIV
	CommandCipher
)

// ParseCommand decodes a raw command identifier.
func ParseCommand(id uint32) (Command, error) {
	switch c := Command(id); c {
	case CommandPrepare, CommandSetKey, CommandSetIV, CommandCipher:
		return c, nil
	default:
		return 0, fmt.Errorf("%w: unknown command %d", ErrBadParameters, id)
	}
}

func (c Command) String() string {
	switch c {
	case CommandPrepare:
		return "Prepare"
	case CommandSetKey:
		return "SetKey"
	case CommandSetIV:
		return "SetIV"
	case CommandCipher:
		return "Cipher"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(c))
	}
}
