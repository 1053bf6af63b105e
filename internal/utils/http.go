package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-logistics/models"
)

// MaxJSONBodyBytes caps request bodies accepted by DecodeJSON.
const MaxJSONBodyBytes = 1 << 20

var ErrTrailingJSON = errors.New("request body must hold a single JSON value")

// WriteJSON encodes data and writes it with statusCode. The body is encoded
// before any header is sent, so an encoding failure still produces a clean
// 500 response.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	// Encoder appends a newline.
	body := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError writes {"message": message} with the given status code.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Message: message}, statusCode)
}

// DecodeJSON reads a single JSON value from the request body into dst.
// Bodies above MaxJSONBodyBytes and bodies with data after the value are
// rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingJSON
	}
	return nil
}
