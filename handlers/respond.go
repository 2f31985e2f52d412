package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"effica-project/backend/collab-service/apperrors"
	"effica-project/backend/collab-service/logging"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Logger.Errorf("Event ID: RESPONSE_ENCODE_ERROR, Description: Failed to encode response: %v", err)
	}
}

// respondError translates a service error into the HTTP taxonomy. Anything
// not recognized is a server fault reported with the operation-specific
// fallback message.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body := map[string]interface{}{"message": validationErr.Message}
		if len(validationErr.Required) > 0 {
			body["required"] = validationErr.Required
		}
		if len(validationErr.Fields) > 0 {
			body["errors"] = validationErr.Fields
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, apperrors.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Email already registered"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
	case errors.Is(err, apperrors.ErrProjectNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Project not found"})
	case errors.Is(err, apperrors.ErrTaskNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Task not found"})
	default:
		logging.Logger.Errorf("Event ID: INTERNAL_ERROR, Description: %s: %v", fallback, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": fallback})
	}
}
