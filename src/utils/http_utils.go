package utils

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/username/taxclarity/backend/src/logger"
)

// SendJSONError writes a JSON error response with the given status code.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(map[string]string{"error": message})
	if err != nil {
		logger.L.Error("failed to encode JSON error response", "error", err, "originalMessage", message)
	}
}

// GenerateETag returns a strong ETag for the given payload, derived from the
// SHA-256 of its JSON encoding.
func GenerateETag(data interface{}) (string, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal data for ETag generation: %w", err)
	}
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("\"%x\"", hash), nil
}
