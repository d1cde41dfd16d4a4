package converter

import (
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
)

func ClinicalRecordToResponse(record *entity.ClinicalRecord) *dto.ClinicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.ClinicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		DoctorID:      record.DoctorID,
		AppointmentID: record.AppointmentID,
		RecordedAt:    record.RecordedAt,
		Diagnosis:     record.Diagnosis,
		Treatment:     record.Treatment,
		Notes:         record.Notes,
	}
}

func ClinicalRecordsToResponses(records []entity.ClinicalRecord) []dto.ClinicalRecordResponse {
	responses := make([]dto.ClinicalRecordResponse, len(records))
	for i, record := range records {
		responses[i] = *ClinicalRecordToResponse(&record)
	}
	return responses
}
