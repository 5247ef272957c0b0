package httpresponse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apperrors "checkers/internal/errors"
)

type Response[T any] struct {
	Status int `json:"Status"`
	Body   T   `json:"Body,omitempty"`
}

type ErrorResponse struct {
	ErrorDescription string `json:"ErrorDescription"`
}

const INTERNALERRORJSON = "{\"Status\": 500,\"Body\":{\"ErrorDescription\": \"Internal server error\"}}"

const MALFORMEDJSON_errorDesc = "json unmarshalling error"

func WriteResponseWithStatus(w http.ResponseWriter, status int, body any) {
	jsonByte, err := marshalStatusJson(status, body)
	if err != nil {
		WriteInternalErrorResponse(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(jsonByte)
}

func WriteMalformedJSON(w http.ResponseWriter, err error) {
	WriteResponseWithStatus(w, http.StatusBadRequest, ErrorResponse{ErrorDescription: MALFORMEDJSON_errorDesc + ": " + err.Error()})
}

// WriteError maps a domain error onto an HTTP status.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		WriteInternalErrorResponse(w)
		return
	}
	WriteResponseWithStatus(w, status, ErrorResponse{ErrorDescription: err.Error()})
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrGameNotFound), errors.Is(err, apperrors.ErrUnknownPiece):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidSquare):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrNotYourTurn),
		errors.Is(err, apperrors.ErrForcedPiece),
		errors.Is(err, apperrors.ErrNotPending),
		errors.Is(err, apperrors.ErrIllegalMove):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func marshalStatusJson(status int, body any) ([]byte, error) {
	response := Response[any]{
		Status: status,
		Body:   body,
	}
	marshal, err := json.Marshal(response)
	if err != nil {
		return nil, err
	}
	return marshal, nil
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	// implementation similar to http.Error, only difference is the Content-type
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintln(w, INTERNALERRORJSON)
}
