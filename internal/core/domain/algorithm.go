package domain

import (
	"fmt"
	"strings"
)

// Algorithm selects the DES mode of operation on the wire.
type Algorithm uint32

const (
	// AlgorithmDES is reserved and has no engine mapping.
	AlgorithmDES Algorithm = iota
	AlgorithmECB
	AlgorithmCBC
)

// ParseAlgorithm decodes a raw algorithm selector. The reserved DES tag decodes
// successfully; it is rejected when mapped to an engine algorithm.
func ParseAlgorithm(value uint32) (Algorithm, error) {
	switch a := Algorithm(value); a {
	case AlgorithmDES, AlgorithmECB, AlgorithmCBC:
		return a, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %d", ErrBadParameters, value)
	}
}

// ParseAlgorithmName decodes a case-insensitive algorithm name such as "cbc".
func ParseAlgorithmName(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "des":
		return AlgorithmDES, nil
	case "ecb":
		return AlgorithmECB, nil
	case "cbc":
		return AlgorithmCBC, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm '%s'", ErrBadParameters, name)
	}
}

// EngineAlgorithm maps the selector to the cipher engine algorithm identifier.
func (a Algorithm) EngineAlgorithm() (AlgorithmID, error) {
	switch a {
	case AlgorithmECB:
		return AlgorithmDesEcbNopad, nil
	case AlgorithmCBC:
		return AlgorithmDesCbcNopad, nil
	default:
		return 0, fmt.Errorf("%w: algorithm %s has no engine mapping", ErrBadParameters, a)
	}
}

func (a Algorithm) String() string {
	switch a {
	case AlgorithmDES:
		return "DES"
	case AlgorithmECB:
		return "ECB"
	case AlgorithmCBC:
		return "CBC"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(a))
	}
}
