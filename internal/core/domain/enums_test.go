package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_AcceptsKnownIdentifiers(t *testing.T) {
	expected := map[uint32]Command{0: CommandPrepare, 1: CommandSetKey, 2: CommandSetIV, 3: CommandCipher}
	for id, command := range expected {
		actual, err := ParseCommand(id)
		require.NoError(t, err)
		assert.Equal(t, command, actual)
	}
}

func TestParseCommand_RejectsUnknownIdentifiers(t *testing.T) {
	for _, id := range []uint32{4, 5, 42, 0xFFFFFFFF} {
		_, err := ParseCommand(id)
		assert.ErrorIs(t, err, ErrBadParameters)
	}
}

func TestParseAlgorithm_WireValues(t *testing.T) {
	tests := []struct {
		value    uint32
		expected Algorithm
		wantErr  bool
	}{
		{0, AlgorithmDES, false},
		{1, AlgorithmECB, false},
		{2, AlgorithmCBC, false},
		{3, 0, true},
		{100, 0, true},
	}

	for _, tt := range tests {
		actual, err := ParseAlgorithm(tt.value)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrBadParameters)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, actual)
	}
}

func TestAlgorithm_EngineAlgorithm(t *testing.T) {
	id, err := AlgorithmECB.EngineAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, AlgorithmDesEcbNopad, id)

	id, err = AlgorithmCBC.EngineAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, AlgorithmDesCbcNopad, id)

	_, err = AlgorithmDES.EngineAlgorithm()
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestParseAlgorithmName(t *testing.T) {
	algorithm, err := ParseAlgorithmName(" CBC ")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmCBC, algorithm)

	_, err = ParseAlgorithmName("gcm")
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestKeySize_OnlyBit64IsAcceptedByDes(t *testing.T) {
	for _, value := range []uint32{8, 16, 32} {
		_, err := ParseKeySize(value)
		require.NoError(t, err)
	}
	_, err := ParseKeySize(0)
	assert.ErrorIs(t, err, ErrBadParameters)
	_, err = ParseKeySize(24)
	assert.ErrorIs(t, err, ErrBadParameters)

	length, err := KeySizeBit64.DesKeyLength()
	require.NoError(t, err)
	assert.Equal(t, 8, length)
	assert.Equal(t, 64, KeySizeBit64.Bits())

	_, err = KeySizeBit128.DesKeyLength()
	assert.ErrorIs(t, err, ErrBadParameters)
	_, err = KeySizeBit256.DesKeyLength()
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode(0)
	require.NoError(t, err)
	assert.Equal(t, ModeDecode, mode)
	assert.Equal(t, OperationModeDecrypt, mode.OperationMode())

	mode, err = ParseMode(1)
	require.NoError(t, err)
	assert.Equal(t, ModeEncode, mode)
	assert.Equal(t, OperationModeEncrypt, mode.OperationMode())

	_, err = ParseMode(2)
	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestParameter_AsValueRejectsMemref(t *testing.T) {
	param := NewMemrefInput([]byte{1, 2, 3})

	_, err := param.AsValue()

	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestParameter_AsMemrefRejectsValue(t *testing.T) {
	param := NewValueInput(1, 0)

	_, err := param.AsMemref()

	assert.ErrorIs(t, err, ErrBadParameters)
}

func TestParameters_Types(t *testing.T) {
	params := Parameters{NewMemrefInput(nil), NewMemrefOutput(make([]byte, 8))}

	assert.Equal(t, [4]ParamType{ParamTypeMemrefInput, ParamTypeMemrefOutput, ParamTypeNone, ParamTypeNone}, params.Types())
}

func TestMemref_UpdatedSize(t *testing.T) {
	param := NewMemrefOutput(make([]byte, 16))
	memref, err := param.AsMemref()
	require.NoError(t, err)
	assert.Equal(t, 16, memref.UpdatedSize())

	memref.SetUpdatedSize(8)

	assert.Equal(t, 8, memref.UpdatedSize())
	assert.Len(t, memref.Buffer(), 16)
}

func TestAlgorithm_WireEncodingIsPinned(t *testing.T) {
	assert.Equal(t, uint32(0), uint32(AlgorithmDES))
	assert.Equal(t, uint32(1), uint32(AlgorithmECB))
	assert.Equal(t, uint32(2), uint32(AlgorithmCBC))
	assert.Equal(t, AlgorithmID(0x10000011), AlgorithmDesEcbNopad)
	assert.Equal(t, AlgorithmID(0x10000111), AlgorithmDesCbcNopad)
}

func TestParameter_AsValueAcceptsEveryValueDirection(t *testing.T) {
	for _, paramType := range []ParamType{ParamTypeValueInput, ParamTypeValueOutput, ParamTypeValueInout} {
		param := Parameter{Type: paramType}
		_, err := param.AsValue()
		assert.NoError(t, err, paramType)
	}
}

func TestParameter_NewMemrefInout(t *testing.T) {
	buffer := make([]byte, 8)
	param := NewMemrefInout(buffer)

	memref, err := param.AsMemref()

	require.NoError(t, err)
	assert.Equal(t, ParamTypeMemrefInout, param.Type)
	assert.Equal(t, 8, memref.UpdatedSize())
	_, err = param.AsValue()
	assert.ErrorIs(t, err, ErrBadParameters)
}
