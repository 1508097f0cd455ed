package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SetsCodeMessageAndStack(t *testing.T) {
	err := New(CodeModalityUnsupported, "unknown modality")
	require.NotNil(t, err)
	assert.Equal(t, CodeModalityUnsupported, err.Code)
	assert.Equal(t, "unknown modality", err.Message)
	assert.NotEmpty(t, err.Stack)
}

func TestError_FormatWithAndWithoutDetail(t *testing.T) {
	err := New(CodeInvalidParam, "descriptor required")
	assert.Equal(t, "[COMMON_002] descriptor required", err.Error())

	withDetail := err.WithDetail("field=descriptor")
	assert.Equal(t, "[COMMON_002] descriptor required: field=descriptor", withDetail.Error())
	// Original is not mutated.
	assert.Empty(t, err.Detail)
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
}

func TestWrap_PreservesCodeForUnknown(t *testing.T) {
	inner := New(CodeMoleculeNotFound, "no such molecule")
	wrapped := Wrap(inner, CodeUnknown, "lookup failed")
	assert.Equal(t, CodeMoleculeNotFound, wrapped.Code)
	assert.True(t, stderrors.Is(wrapped, stderrors.Unwrap(wrapped)))
}

func TestWrap_ChainTraversal(t *testing.T) {
	base := fmt.Errorf("dial tcp: connection refused")
	wrapped := Wrap(base, CodeCacheError, "cache unavailable")
	assert.ErrorIs(t, wrapped, base)

	var ae *AppError
	require.True(t, stderrors.As(wrapped, &ae))
	assert.Equal(t, CodeCacheError, ae.Code)
}

func TestIsCode(t *testing.T) {
	err := Wrap(New(CodeEmptyDescriptor, "nothing to display"), CodeInternal, "synthesis failed")
	assert.True(t, IsCode(err, CodeEmptyDescriptor))
	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeRateLimit))
	assert.False(t, IsCode(nil, CodeInternal))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(CodeNotFound, "gone")))
	assert.True(t, IsNotFound(New(CodeMoleculeNotFound, "no molecule")))
	assert.False(t, IsNotFound(New(CodeInternal, "boom")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain error")))
	assert.Equal(t, CodeRateLimit, GetCode(RateLimit("slow down")))
}

func TestHTTPStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatusForCode(CodeModalityUnsupported))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatusForCode(CodeEmptyDescriptor))
	assert.Equal(t, http.StatusNotFound, HTTPStatusForCode(CodeMoleculeNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusForCode(ErrorCode("SPC_999")))
}

func TestClientServerClassification(t *testing.T) {
	assert.True(t, IsClientError(CodeInvalidParam))
	assert.False(t, IsServerError(CodeInvalidParam))
	assert.True(t, IsServerError(CodeInternal))
	assert.False(t, IsClientError(CodeInternal))
}
