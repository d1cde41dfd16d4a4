package dto

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID  int64  `json:"id_doctor" validate:"required,gt=0"`
	Day       string `json:"dia_semana" validate:"required,oneof=Lunes Martes Miércoles Jueves Viernes Sábado Domingo"`
	StartTime string `json:"hora_inicio" validate:"required,clock"` // Format: HH:MM[:SS]
	EndTime   string `json:"hora_fin" validate:"required,clock"`
}

type UpdateScheduleRequest struct {
	Day       *string `json:"dia_semana" validate:"omitempty,oneof=Lunes Martes Miércoles Jueves Viernes Sábado Domingo"`
	StartTime *string `json:"hora_inicio" validate:"omitempty,clock"`
	EndTime   *string `json:"hora_fin" validate:"omitempty,clock"`
	Active    *bool   `json:"activo"`
}

// Response DTOs

type ScheduleResponse struct {
	ID        int64  `json:"id_horario"`
	DoctorID  int64  `json:"id_doctor"`
	Day       string `json:"dia_semana"`
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fin"`
	Active    bool   `json:"activo"`
}
