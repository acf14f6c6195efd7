package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgo/roam/api/internal/model"
)

// DataResponse wraps a successful response
type DataResponse struct {
	Data interface{} `json:"data"`
}

// CollectionResponse wraps a collection response with pagination
type CollectionResponse struct {
	Data       interface{}     `json:"data"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// PaginationInfo contains offset-based pagination info
type PaginationInfo struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, DataResponse{Data: data})
}

// WriteCollection writes a collection response with pagination
func WriteCollection(w http.ResponseWriter, status int, data interface{}, pagination *PaginationInfo) {
	WriteJSON(w, status, CollectionResponse{Data: data, Pagination: pagination})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(err.Status)
	_ = json.NewEncoder(w).Encode(err)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
