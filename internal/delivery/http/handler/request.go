package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/pkg/response"
	"medical-appointments-api/pkg/validator"

	"github.com/gorilla/mux"
)

const invalidBodyMessage = "Cuerpo de la solicitud inválido"

// decodeAndValidate reads a JSON body into req and runs the validator. On
// failure the error envelope has already been written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, invalidBodyMessage)
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}

// pathID parses a positive integer path variable.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Identificador inválido")
		return 0, false
	}
	return id, true
}

// pageQuery reads skip/limit. Range checks happen in the usecase.
func pageQuery(w http.ResponseWriter, r *http.Request) (dto.PageQuery, bool) {
	var query dto.PageQuery
	values := r.URL.Query()

	if raw := values.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Parámetros de paginación inválidos")
			return query, false
		}
		query.Skip = skip
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit == 0 {
			response.BadRequest(w, "Parámetros de paginación inválidos")
			return query, false
		}
		query.Limit = limit
	}

	return query, true
}
