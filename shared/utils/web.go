package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ruralcrm/taskboard/shared/errors"
	"github.com/ruralcrm/taskboard/shared/logger"
)

// Envelope is the uniform response shape: status is "success" or "error",
// data carries the payload on success, message the human-readable error.
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// WriteError writes the error envelope using the status code carried by the
// error, or 500 for anything unrecognized.
func WriteError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		code = e.StatusCode
	}
	writeEnvelope(w, code, Envelope{Status: "error", Message: err.Error()})
}

// WriteSuccess writes a success envelope with HTTP 200.
func WriteSuccess(w http.ResponseWriter, data interface{}) {
	writeEnvelope(w, http.StatusOK, Envelope{Status: "success", Data: data})
}

// WriteCreated writes a success envelope with HTTP 201.
func WriteCreated(w http.ResponseWriter, data interface{}) {
	writeEnvelope(w, http.StatusCreated, Envelope{Status: "success", Data: data})
}

func writeEnvelope(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Log.Error(err.Error())
	}
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug(err.Error())
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug(err.Error())
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug(err.Error())
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}
