package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBody bounds request bodies read by [ReadJSON].
const MaxJSONBody = 64 << 10

// ErrEmptyBody is returned by [ReadJSON] for a request without a body.
var ErrEmptyBody = errors.New("empty request body")

// WriteJSON serializes data and writes it with statusCode. If marshaling
// fails it answers 500 and returns the wrapped error.
//
//	WriteJSON(w, grant, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes a single JSON value from the request body into v.
// Unknown fields, trailing data and bodies over [MaxJSONBody] are errors.
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxJSONBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must hold a single JSON value")
	}
	return nil
}
