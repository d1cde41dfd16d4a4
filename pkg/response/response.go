package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"medical-appointments-api/pkg/apperror"
)

const internalErrorMessage = "Error interno en el servidor. Intente nuevamente más tarde."

// Response is the envelope every endpoint answers with.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"mensaje"`
	Data      interface{} `json:"data"`
	ErrorCode int         `json:"error_code,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success:   false,
		Message:   message,
		Data:      data,
		ErrorCode: statusCode,
	})
}

// ValidationError answers 400 with per-field messages in data.
func ValidationError(w http.ResponseWriter, fields interface{}) {
	Error(w, http.StatusBadRequest, "Datos de entrada inválidos", fields)
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Solicitud inválida"
	}
	Error(w, http.StatusBadRequest, message, nil)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "No autenticado"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Recurso no encontrado"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = internalErrorMessage
	}
	Error(w, http.StatusInternalServerError, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "No tiene permisos para realizar esta acción"
	}
	Error(w, http.StatusForbidden, message, nil)
}

// FromError translates a usecase error into the envelope. Anything that is
// not an *apperror.Error becomes a generic 500.
func FromError(w http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInternal {
		InternalServerError(w, "")
		return
	}
	Error(w, appErr.Kind.HTTPStatus(), appErr.Message, nil)
}
