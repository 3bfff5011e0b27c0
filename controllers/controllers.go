package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/harishcmuthyala/app/models"
	"github.com/harishcmuthyala/app/services"
)

// maxBodyBytes bounds request bodies; the largest valid payload is a contact
// message of a few kilobytes
const maxBodyBytes = 64 << 10

// errorResponse is the body of every non-validation error
type errorResponse struct {
	Detail string `json:"detail"`
}

// validationResponse lists every field that failed validation
type validationResponse struct {
	Detail interface{} `json:"detail"`
}

// writeJSON encodes data with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.S().Errorf("Failed to write response: %v", err)
	}
}

// decodeJSON reads a JSON request body into dst. An empty body leaves dst
// zero valued so validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeDecodeError answers a body decodeJSON rejected. A value of the wrong
// type is a field error like any other; everything else is malformed JSON.
func writeDecodeError(w http.ResponseWriter, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Detail: models.ValidationErrors{{
			Field:   field,
			Message: fmt.Sprintf("%s must be of type %s", field, typeErr.Type),
		}}})
		return
	}

	writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid JSON body"})
}

// writeServiceError maps service error kinds to responses. Persistence
// details are logged and replaced with publicMessage.
func writeServiceError(w http.ResponseWriter, err error, publicMessage string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Detail: validationErr.Errors})
		return
	}

	zap.S().Errorw(publicMessage, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: publicMessage})
}

// Controllers holds all controller instances
type Controllers struct {
	Root    *RootController
	Status  *StatusController
	Contact *ContactController
	Resume  *ResumeController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Root:    NewRootController(),
		Status:  NewStatusController(services),
		Contact: NewContactController(services),
		Resume:  NewResumeController(services),
	}
}
