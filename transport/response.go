package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/vibecommerce/user-service/constant"
	"github.com/vibecommerce/user-service/utils/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError is the single place domain errors become HTTP responses.
// Unmodeled errors collapse to 500 without exposing internals.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	status := ce.ErrorHTTPCode()
	writeJSON(w, status, ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: ce.Error(),
	})
}
