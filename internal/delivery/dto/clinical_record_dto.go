package dto

import "time"

// Request DTOs

type CreateClinicalRecordRequest struct {
	PatientID     int64   `json:"id_paciente" validate:"required,gt=0"`
	DoctorID      int64   `json:"id_doctor" validate:"required,gt=0"`
	AppointmentID *int64  `json:"id_cita" validate:"omitempty,gt=0"`
	Diagnosis     string  `json:"diagnostico" validate:"required,min=5"`
	Treatment     *string `json:"tratamiento"`
	Notes         *string `json:"observaciones"`
}

// Response DTOs

type ClinicalRecordResponse struct {
	ID            int64     `json:"id_historia"`
	PatientID     int64     `json:"id_paciente"`
	DoctorID      int64     `json:"id_doctor"`
	AppointmentID *int64    `json:"id_cita"`
	RecordedAt    time.Time `json:"fecha_registro"`
	Diagnosis     string    `json:"diagnostico"`
	Treatment     *string   `json:"tratamiento"`
	Notes         *string   `json:"observaciones"`
}
