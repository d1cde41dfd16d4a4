package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID int64   `json:"id_paciente" validate:"required,gt=0"`
	DoctorID  int64   `json:"id_doctor" validate:"required,gt=0"`
	Date      string  `json:"fecha" validate:"required,isodate"` // Format: YYYY-MM-DD
	Time      string  `json:"hora" validate:"required,clock"`    // Format: HH:MM[:SS]
	Reason    string  `json:"motivo" validate:"required,min=5,max=255"`
	Notes     *string `json:"observaciones"`
}

type UpdateAppointmentRequest struct {
	Date   *string `json:"fecha" validate:"omitempty,isodate"`
	Time   *string `json:"hora" validate:"omitempty,clock"`
	Reason *string `json:"motivo" validate:"omitempty,min=5,max=255"`
	Notes  *string `json:"observaciones"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=pendiente confirmada completada cancelada"`
}

// UpdateAppointmentStatusByIDRequest carries the appointment id in the body.
type UpdateAppointmentStatusByIDRequest struct {
	AppointmentID int64  `json:"id_cita" validate:"required,gt=0"`
	Status        string `json:"estado" validate:"required,oneof=pendiente confirmada completada cancelada"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int64     `json:"id_cita"`
	PatientID   int64     `json:"id_paciente"`
	DoctorID    int64     `json:"id_doctor"`
	Date        string    `json:"fecha"`
	Time        string    `json:"hora"`
	Reason      string    `json:"motivo"`
	Status      string    `json:"estado"`
	Notes       *string   `json:"observaciones"`
	PatientName string    `json:"paciente,omitempty"`
	DoctorName  string    `json:"doctor,omitempty"`
	Specialty   string    `json:"especialidad,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentStatusResponse struct {
	ID     int64  `json:"id_cita"`
	Status string `json:"estado"`
}
