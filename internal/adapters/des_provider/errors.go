package des_provider

import "errors"

var (
	ErrNotSupported            = errors.New("des: algorithm not supported")
	ErrReleased                = errors.New("des: handle already released")
	ErrForeignKeyContainer     = errors.New("des: key container was not allocated by this provider")
	ErrKeyContainerEmpty       = errors.New("des: key container holds no key")
	ErrKeyContainerPopulated   = errors.New("des: key container already populated, reset it first")
	ErrBadKeyLength            = errors.New("des: invalid key length")
	ErrOperationNotInitialized = errors.New("des: operation not initialized")
	ErrNotBlockAligned         = errors.New("des: input is not a multiple of the block size")
	ErrShortBuffer             = errors.New("des: output buffer too short")
)
