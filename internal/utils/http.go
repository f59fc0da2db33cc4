package utils

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/icrc7-dapp/internal/codec"
)

// WriteEncoded serializes data with c and writes it to the HTTP response
// with c's media type and the given status code.
//
// If encoding fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
func WriteEncoded(w http.ResponseWriter, c codec.Codec, data any, statusCode int) (int, error) {
	payload, err := c.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding %s response: %w", c.Name(), err)
	}

	w.Header().Set("Content-Type", c.ContentType())
	w.WriteHeader(statusCode)

	return w.Write(payload)
}

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response. It is used by the endpoints that do not negotiate a codec
// (status, delegation).
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteEncoded(w, codec.NewJSON(), data, statusCode)
}
