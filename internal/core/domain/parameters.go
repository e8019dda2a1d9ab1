package domain

import "fmt"

// ParamType is the kind and direction of a single command parameter.
type ParamType uint32

const (
	ParamTypeNone         ParamType = 0
	ParamTypeValueInput   ParamType = 1
	ParamTypeValueOutput  ParamType = 2
	ParamTypeValueInout   ParamType = 3
	ParamTypeMemrefInput  ParamType = 5
	ParamTypeMemrefOutput ParamType = 6
	ParamTypeMemrefInout  ParamType = 7
)

func (t ParamType) isValue() bool {
	return t == ParamTypeValueInput || t == ParamTypeValueOutput || t == ParamTypeValueInout
}

func (t ParamType) isMemref() bool {
	return t == ParamTypeMemrefInput || t == ParamTypeMemrefOutput || t == ParamTypeMemrefInout
}

// Value is a scalar parameter made of two 32-bit words.
type Value struct {
	A uint32
	B uint32
}

// Memref is a caller-supplied buffer. Handlers report how many bytes they
// produced through SetUpdatedSize.
type Memref struct {
	buffer      []byte
	updatedSize int
}

// Buffer returns the shared buffer. Its length is the capacity granted by the caller.
func (m *Memref) Buffer() []byte {
	return m.buffer
}

func (m *Memref) SetUpdatedSize(size int) {
	m.updatedSize = size
}

func (m *Memref) UpdatedSize() int {
	return m.updatedSize
}

// Parameter is one of the four parameter slots of a command invocation.
type Parameter struct {
	Type   ParamType
	value  Value
	memref *Memref
}

func NewValueInput(a, b uint32) Parameter {
	return Parameter{Type: ParamTypeValueInput, value: Value{A: a, B: b}}
}

func NewMemrefInput(buffer []byte) Parameter {
	return Parameter{Type: ParamTypeMemrefInput, memref: &Memref{buffer: buffer, updatedSize: len(buffer)}}
}

func NewMemrefOutput(buffer []byte) Parameter {
	return Parameter{Type: ParamTypeMemrefOutput, memref: &Memref{buffer: buffer, updatedSize: len(buffer)}}
}

func NewMemrefInout(buffer []byte) Parameter {
	return Parameter{Type: ParamTypeMemrefInout, memref: &Memref{buffer: buffer, updatedSize: len(buffer)}}
}

// AsValue returns the scalar value, or ErrBadParameters if the slot does not hold one.
func (p *Parameter) AsValue() (Value, error) {
	if !p.Type.isValue() {
		return Value{}, fmt.Errorf("%w: expected value parameter, got type %d", ErrBadParameters, p.Type)
	}
	return p.value, nil
}

// AsMemref returns the buffer reference, or ErrBadParameters if the slot does not hold one.
func (p *Parameter) AsMemref() (*Memref, error) {
	if !p.Type.isMemref() || p.memref == nil {
		return nil, fmt.Errorf("%w: expected memref parameter, got type %d", ErrBadParameters, p.Type)
	}
	return p.memref, nil
}

// Parameters holds the fixed-arity parameter list of a command invocation.
type Parameters [4]Parameter

// Types returns the parameter type of every slot.
func (p *Parameters) Types() [4]ParamType {
	return [4]ParamType{p[0].Type, p[1].Type, p[2].Type, p[3].Type}
}
