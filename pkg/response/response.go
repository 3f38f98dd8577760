package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorBody is written for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes data as the response body. Payloads are written as is; the
// frontend expects bare objects and arrays.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Error(w http.ResponseWriter, statusCode int, err string) {
	JSON(w, statusCode, ErrorBody{Error: err})
}

func BadRequest(w http.ResponseWriter, err string) {
	Error(w, http.StatusBadRequest, err)
}

// NotFound answers with an empty object, which is what clients check for a
// missing entity.
func NotFound(w http.ResponseWriter) {
	JSON(w, http.StatusNotFound, struct{}{})
}

func InternalError(w http.ResponseWriter, err string) {
	Error(w, http.StatusInternalServerError, err)
}
