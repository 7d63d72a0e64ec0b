package http

import (
	"encoding/json"
	"net/http"

	apperrors "wanderbook/pkg/errors"
)

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) {
	status, response := apperrors.ResponseFor(err)
	WriteJSON(w, status, response)
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func WriteMessage(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: message, Data: data})
}

func WriteCreated(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusCreated, SuccessResponse{Success: true, Message: message, Data: data})
}
