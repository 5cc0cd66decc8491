package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"toll-road-service/internal/domain"
)

// envelope is the uniform response wrapper. Message is null on plain
// successes; timeResponse is an ISO-8601 timestamp.
type envelope struct {
	Data         any    `json:"data"`
	Message      any    `json:"message"`
	Status       int    `json:"status"`
	TimeResponse string `json:"timeResponse"`
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, data any, message any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := envelope{
		Data:         data,
		Message:      message,
		Status:       status,
		TimeResponse: time.Now().UTC().Format(time.RFC3339),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).Errorf("encode failed: method=%s path=%s", r.Method, r.URL.Path)
	}
}

func writeSuccess(w http.ResponseWriter, r *http.Request, data any) {
	writeEnvelope(w, r, http.StatusOK, data, nil)
}

func writeSuccessMessage(w http.ResponseWriter, r *http.Request, data any, message string) {
	writeEnvelope(w, r, http.StatusOK, data, message)
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeEnvelope(w, r, status, []any{}, message)
}

// writeServiceError maps core failures onto the envelope: missing entities to
// 404, malformed stored text to 422, anything else to 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *domain.ParseError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeFailure(w, r, http.StatusNotFound, "not found")
	case errors.As(err, &perr):
		writeFailure(w, r, http.StatusUnprocessableEntity, perr.Error())
	default:
		log.WithError(err).Errorf("request failed: method=%s path=%s", r.Method, r.URL.Path)
		writeFailure(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads a single strict JSON object from the request body.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}
