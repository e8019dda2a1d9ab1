package domain

import "fmt"

// KeySize is the symmetric key length in bytes as sent on the wire.
type KeySize uint32

const (
	KeySizeBit64  KeySize = 8
	KeySizeBit128 KeySize = 16
	KeySizeBit256 KeySize = 32
)

// ParseKeySize decodes a raw key size selector.
func ParseKeySize(value uint32) (KeySize, error) {
	switch k := KeySize(value); k {
	case KeySizeBit64, KeySizeBit128, KeySizeBit256:
		return k, nil
	default:
		return 0, fmt.Errorf("%w: unknown key size %d", ErrBadParameters, value)
	}
}

// DesKeyLength returns the key length in bytes if the DES engine accepts this
// size. Only the 64-bit size is valid for DES.
func (k KeySize) DesKeyLength() (int, error) {
	if k != KeySizeBit64 {
		return 0, fmt.Errorf("%w: key size %d is not supported by DES", ErrBadParameters, uint32(k))
	}
	return int(k), nil
}

// Bits returns the key length in bits.
func (k KeySize) Bits() int {
	return int(k) * 8
}
