package des_provider

import (
	"fmt"

	"desta/internal/ports"
)

var _ ports.KeyContainer = (*KeyContainer)(nil)

// KeyContainer holds a single DES secret value. The bytes are copied in and
// zeroed on Reset and Release.
type KeyContainer struct {
	maxKeyBits int
	secret     []byte
	populated  bool
	released   bool
}

func (k *KeyContainer) Populate(secret []byte) error {
	if k.released {
		return ErrReleased
	}
	if k.populated {
		return ErrKeyContainerPopulated
	}
	if len(secret)*8 != k.maxKeyBits {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBadKeyLength, len(secret), k.maxKeyBits/8)
	}
	k.secret = make([]byte, len(secret))
	copy(k.secret, secret)
	k.populated = true
	return nil
}

func (k *KeyContainer) Reset() {
	for i := range k.secret {
		k.secret[i] = 0
	}
	k.secret = nil
	k.populated = false
}

func (k *KeyContainer) Release() {
	k.Reset()
	k.released = true
}
