package domain

import "fmt"

// AlgorithmID identifies a cipher engine algorithm. Values follow the
// GlobalPlatform TEE internal core API encoding.
type AlgorithmID uint32

const (
	AlgorithmDesEcbNopad AlgorithmID = 0x10000011
	AlgorithmDesCbcNopad AlgorithmID = 0x10000111
)

func (a AlgorithmID) String() string {
	switch a {
	case AlgorithmDesEcbNopad:
		return "DES_ECB_NOPAD"
	case AlgorithmDesCbcNopad:
		return "DES_CBC_NOPAD"
	default:
		return fmt.Sprintf("AlgorithmID(%#x)", uint32(a))
	}
}

// ElementID identifies an elliptic curve element for support queries.
type ElementID uint32

const ElementNone ElementID = 0

// OperationMode is the direction of a cipher engine.
type OperationMode uint32

const (
	OperationModeEncrypt OperationMode = 0
	OperationModeDecrypt OperationMode = 1
)

func (m OperationMode) String() string {
	if m == OperationModeEncrypt {
		return "encrypt"
	}
	return "decrypt"
}

// ObjectType identifies the kind of key material a key container holds.
type ObjectType uint32

const ObjectTypeDes ObjectType = 0xA0000011

// DesBlockSize is the block size of the DES family in bytes.
const DesBlockSize = 8
