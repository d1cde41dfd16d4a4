package handler

import (
	"net/http"

	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/usecase"
	"medical-appointments-api/pkg/response"
	"medical-appointments-api/pkg/validator"
)

type ClinicalRecordHandler struct {
	recordUsecase usecase.ClinicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewClinicalRecordHandler(recordUsecase usecase.ClinicalRecordUsecase, validator *validator.CustomValidator) *ClinicalRecordHandler {
	return &ClinicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *ClinicalRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClinicalRecordRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	record, err := h.recordUsecase.CreateRecord(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Historia clínica registrada", record)
}

func (h *ClinicalRecordHandler) GetPatientRecords(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	records, err := h.recordUsecase.ListPatientRecords(r.Context(), patientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Historias clínicas obtenidas", records)
}
