package domain

import "fmt"

// Mode selects the cipher direction on the wire.
type Mode uint32

const (
	ModeDecode Mode = iota
	ModeEncode
)

// ParseMode decodes a raw mode selector.
func ParseMode(value uint32) (Mode, error) {
	switch m := Mode(value); m {
	case ModeDecode, ModeEncode:
		return m, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %d", ErrBadParameters, value)
	}
}

// OperationMode maps the wire mode to the engine direction.
func (m Mode) OperationMode() OperationMode {
	if m == ModeEncode {
		return OperationModeEncrypt
	}
	return OperationModeDecrypt
}

func (m Mode) String() string {
	switch m {
	case ModeDecode:
		return "Decode"
	case ModeEncode:
		return "Encode"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(m))
	}
}
