package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goccy/go-yaml"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return write(w, jsonData, ContentTypeJSON, statusCode)
}

// WriteYAML is the YAML counterpart of [WriteJSON]. Struct fields are named
// by their yaml tags.
func WriteYAML(w http.ResponseWriter, data any, statusCode int) (int, error) {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to YAML", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to YAML: %w", err)
	}

	return write(w, yamlData, ContentTypeYAML, statusCode)
}

func write(w http.ResponseWriter, body []byte, contentType string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
