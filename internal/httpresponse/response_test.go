package httpresponse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "checkers/internal/errors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("game x: %w", apperrors.ErrGameNotFound), http.StatusNotFound},
		{apperrors.ErrUnknownPiece, http.StatusNotFound},
		{apperrors.ErrInvalidSquare, http.StatusBadRequest},
		{apperrors.ErrGameOver, http.StatusConflict},
		{apperrors.ErrNotYourTurn, http.StatusUnprocessableEntity},
		{apperrors.ErrForcedPiece, http.StatusUnprocessableEntity},
		{apperrors.ErrNotPending, http.StatusUnprocessableEntity},
		{apperrors.ErrIllegalMove, http.StatusUnprocessableEntity},
		{fmt.Errorf("redis down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperrors.ErrIllegalMove)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp Response[ErrorResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, apperrors.ErrIllegalMove.Error(), resp.Body.ErrorDescription)

	rec = httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestWriteMalformedJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteMalformedJSON(rec, fmt.Errorf("invalid JSON: unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp Response[ErrorResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MALFORMEDJSON_errorDesc+": invalid JSON: unexpected EOF", resp.Body.ErrorDescription)
}
