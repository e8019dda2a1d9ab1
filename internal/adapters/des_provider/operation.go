package des_provider

import (
	"crypto/cipher"
	"crypto/des"
	"fmt"

	"desta/internal/core/domain"
	"desta/internal/ports"
)

var _ ports.CipherOperation = (*Operation)(nil)

// Operation is a DES engine in ECB or CBC mode without padding.
type Operation struct {
	algorithm domain.AlgorithmID
	mode      domain.OperationMode
	block     cipher.Block
	blockMode cipher.BlockMode
	released  bool
}

// SetKey expands the container's key. Any running chain is dropped, so Init
// must be called before the next Update.
func (o *Operation) SetKey(key ports.KeyContainer) error {
	if o.released {
		return ErrReleased
	}
	container, ok := key.(*KeyContainer)
	if !ok {
		return ErrForeignKeyContainer
	}
	if container.released {
		return ErrReleased
	}
	if !container.populated {
		return ErrKeyContainerEmpty
	}
	block, err := des.NewCipher(container.secret)
	if err != nil {
		return fmt.Errorf("failed to expand DES key: %w", err)
	}
	o.block = block
	o.blockMode = nil
	return nil
}

// Init starts a new chain. ECB ignores the IV. A CBC IV that is not exactly one
// block long leaves the operation uninitialised.
func (o *Operation) Init(iv []byte) {
	o.blockMode = nil
	if o.released || o.block == nil {
		return
	}
	switch o.algorithm {
	case domain.AlgorithmDesEcbNopad:
		o.blockMode = newECB(o.block, o.mode == domain.OperationModeEncrypt)
	case domain.AlgorithmDesCbcNopad:
		if len(iv) != o.block.BlockSize() {
			return
		}
		chain := make([]byte, len(iv))
		copy(chain, iv)
		if o.mode == domain.OperationModeEncrypt {
			o.blockMode = cipher.NewCBCEncrypter(o.block, chain)
		} else {
			o.blockMode = cipher.NewCBCDecrypter(o.block, chain)
		}
	}
}

func (o *Operation) Update(input []byte, output []byte) (int, error) {
	if o.released {
		return 0, ErrReleased
	}
	if o.blockMode == nil {
		return 0, ErrOperationNotInitialized
	}
	if len(input)%des.BlockSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes", ErrNotBlockAligned, len(input))
	}
	if len(output) < len(input) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, len(input), len(output))
	}
	o.blockMode.CryptBlocks(output[:len(input)], input)
	return len(input), nil
}

func (o *Operation) Release() {
	o.block = nil
	o.blockMode = nil
	o.released = true
}

// ecb applies the block cipher to every block independently.
type ecb struct {
	block   cipher.Block
	encrypt bool
}

func newECB(block cipher.Block, encrypt bool) cipher.BlockMode {
	return &ecb{block: block, encrypt: encrypt}
}

func (e *ecb) BlockSize() int {
	return e.block.BlockSize()
}

func (e *ecb) CryptBlocks(dst, src []byte) {
	size := e.block.BlockSize()
	for len(src) > 0 {
		if e.encrypt {
			e.block.Encrypt(dst[:size], src[:size])
		} else {
			e.block.Decrypt(dst[:size], src[:size])
		}
		src = src[size:]
		dst = dst[size:]
	}
}
