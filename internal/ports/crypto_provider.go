package ports

import "desta/internal/core/domain"

// CryptoProvider is the capability the trusted application consumes from its
// execution environment to obtain cipher engines and key containers.
type CryptoProvider interface {
	// IsAlgorithmSupported returns nil if the environment implements the algorithm
	// for the given element, and the environment's own error otherwise.
	IsAlgorithmSupported(algorithm domain.AlgorithmID, element domain.ElementID) error
	AllocateOperation(algorithm domain.AlgorithmID, mode domain.OperationMode, maxKeyBits int) (CipherOperation, error)
	AllocateKeyContainer(objectType domain.ObjectType, maxKeyBits int) (KeyContainer, error)
}

// CipherOperation is a stateful cipher engine bound to an algorithm, a
// direction and a key length.
type CipherOperation interface {
	// SetKey binds the key held by the container. The engine must be initialised
	// again before Update.
	SetKey(key KeyContainer) error
	// Init resets the chaining state with the given IV.
	Init(iv []byte)
	// Update transforms input into output and returns the number of bytes written.
	Update(input []byte, output []byte) (int, error)
	Release()
}

// KeyContainer is a secure holder of raw key material.
type KeyContainer interface {
	// Reset discards the key bytes held by the container.
	Reset()
	Populate(secret []byte) error
	Release()
}
