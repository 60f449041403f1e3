package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/user-directory/utils/errors"
	"github.com/muhammadheryan/user-directory/utils/logger"
	"go.uber.org/zap"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

func writeCreated(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusCreated, body)
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// writeError renders any failure as the fixed {"error": message} shape.
// Errors outside the taxonomy are logged with their cause and reported as a
// generic internal error; the cause never reaches the caller.
func writeError(w http.ResponseWriter, err error) {
	if cerr, ok := err.(errors.CustomError); ok {
		writeJSON(w, cerr.ErrorHTTPCode(), errorBody{Error: cerr.Error()})
		return
	}

	logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}
